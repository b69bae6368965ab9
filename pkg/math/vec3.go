package math

import "math"

// Vec3 is a 3D vector.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v + other.
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Sub returns v - other.
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Scale returns v * scalar.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Dot returns the dot product.
func (v Vec3) Dot(other Vec3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product.
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		v.Y*other.Z - v.Z*other.Y,
		v.Z*other.X - v.X*other.Z,
		v.X*other.Y - v.Y*other.X,
	}
}

// Length returns the magnitude.
func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalize returns a unit vector.
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return Vec3{}
	}
	return Vec3{v.X / l, v.Y / l, v.Z / l}
}

// SafeNormal returns a unit vector, or zero if v is shorter than 1e-8.
func (v Vec3) SafeNormal() Vec3 {
	l := v.Length()
	if l < 1e-8 || !isFinite(l) {
		return Vec3{}
	}
	return Vec3{v.X / l, v.Y / l, v.Z / l}
}

// Distance returns the distance to another point.
func (v Vec3) Distance(other Vec3) float64 {
	return v.Sub(other).Length()
}

// IsNearlyZero reports whether every component is within tolerance of zero.
func (v Vec3) IsNearlyZero(tolerance float64) bool {
	return math.Abs(v.X) <= tolerance && math.Abs(v.Y) <= tolerance && math.Abs(v.Z) <= tolerance
}

// Equals reports whether every component is within tolerance of other.
func (v Vec3) Equals(other Vec3, tolerance float64) bool {
	return v.Sub(other).IsNearlyZero(tolerance)
}

// IsFinite reports whether no component is NaN or infinite.
func (v Vec3) IsFinite() bool {
	return isFinite(v.X) && isFinite(v.Y) && isFinite(v.Z)
}

// Sanitize replaces NaN and infinite components with zero.
func (v Vec3) Sanitize() Vec3 {
	return Vec3{SafeComponent(v.X), SafeComponent(v.Y), SafeComponent(v.Z)}
}

// BestAxisVectors returns two unit vectors that form an orthonormal basis
// with v. v should be normalized. The result is deterministic for a given v.
func (v Vec3) BestAxisVectors() (Vec3, Vec3) {
	nx, ny, nz := math.Abs(v.X), math.Abs(v.Y), math.Abs(v.Z)

	var axis1 Vec3
	if nz > nx && nz > ny {
		axis1 = Vec3{1, 0, 0}
	} else {
		axis1 = Vec3{0, 0, 1}
	}

	axis1 = axis1.Sub(v.Scale(axis1.Dot(v))).SafeNormal()
	axis2 := axis1.Cross(v)
	return axis1, axis2
}

// SafeComponent returns value, or zero when value is NaN or infinite.
func SafeComponent(value float64) float64 {
	if isFinite(value) {
		return value
	}
	return 0
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
