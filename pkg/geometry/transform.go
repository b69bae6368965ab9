package geometry

import "github.com/Faultbox/fragments-go/pkg/math"

// TransformRecord is a transform as stored in the model: a position and two
// basis directions, all in source space.
type TransformRecord struct {
	Position   math.Vec3
	XDirection math.Vec3
	YDirection math.Vec3
}

// RigidTransform is a rotation followed by a translation in target space.
// Basis holds the decoded axes as columns; Rotation is derived from them.
type RigidTransform struct {
	Translation math.Vec3
	Basis       math.Mat3
	Rotation    math.Quat
}

// IdentityTransform returns a transform that leaves points unchanged.
func IdentityTransform() RigidTransform {
	return RigidTransform{
		Basis:    math.Mat3FromBasis(math.Vec3{X: 1}, math.Vec3{Y: 1}, math.Vec3{Z: 1}),
		Rotation: math.QuatIdentity(),
	}
}

// DecodeTransform converts a transform record to target space.
//
// The source Y and Z axes are swapped and the position is scaled by
// UnitScale. The record's x direction becomes the X axis, its y direction
// becomes the Z (up) axis, and Y is their cross product Z × X. Every
// non-finite scalar is replaced with zero, so the result never carries NaN
// or Inf regardless of the input.
func DecodeTransform(rec TransformRecord) RigidTransform {
	x := RemapAxis(rec.XDirection).Sanitize()
	z := RemapAxis(rec.YDirection).Sanitize()
	y := z.Cross(x).Sanitize().SafeNormal()
	pos := ToTarget(rec.Position.Sanitize()).Sanitize()

	basis := math.Mat3FromBasis(x, y, z).Sanitize()
	rot := math.Mat3FromBasis(x.SafeNormal(), y, z.SafeNormal()).Quat().Normalize().Sanitize()

	return RigidTransform{
		Translation: pos,
		Basis:       basis,
		Rotation:    rot,
	}
}

// ApplyPoint rotates then translates p.
func (t RigidTransform) ApplyPoint(p math.Vec3) math.Vec3 {
	return t.Rotation.RotateVector(p).Add(t.Translation)
}

// ApplyDirection rotates d without translating it.
func (t RigidTransform) ApplyDirection(d math.Vec3) math.Vec3 {
	return t.Rotation.RotateVector(d)
}

// Compose returns the transform that applies local first, then t.
func (t RigidTransform) Compose(local RigidTransform) RigidTransform {
	return RigidTransform{
		Translation: t.ApplyPoint(local.Translation),
		Basis: math.Mat3FromBasis(
			t.ApplyDirection(local.Basis.Col(0)),
			t.ApplyDirection(local.Basis.Col(1)),
			t.ApplyDirection(local.Basis.Col(2)),
		),
		Rotation: t.Rotation.Mul(local.Rotation).Normalize(),
	}
}

// Mat4 returns the transform as a column-major matrix.
func (t RigidTransform) Mat4() math.Mat4 {
	return math.Translate(t.Translation.X, t.Translation.Y, t.Translation.Z).Mul(t.Rotation.ToMat4())
}
