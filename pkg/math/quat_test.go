package math

import (
	"math"
	"testing"
)

func TestQuatIdentity(t *testing.T) {
	q := QuatIdentity()
	if q.X != 0 || q.Y != 0 || q.Z != 0 || q.W != 1 {
		t.Errorf("Identity quaternion should be (0,0,0,1), got (%v,%v,%v,%v)", q.X, q.Y, q.Z, q.W)
	}
}

func TestQuatNormalize(t *testing.T) {
	q := Quat{X: 1, Y: 2, Z: 3, W: 4}
	n := q.Normalize()

	length := math.Sqrt(n.X*n.X + n.Y*n.Y + n.Z*n.Z + n.W*n.W)
	if math.Abs(length-1.0) > 0.0001 {
		t.Errorf("Normalized quaternion length should be 1, got %v", length)
	}
}

func TestQuatToMat4(t *testing.T) {
	// Identity quaternion should produce identity matrix
	q := QuatIdentity()
	m := q.ToMat4()

	identity := Identity()
	for i := 0; i < 16; i++ {
		if math.Abs(m[i]-identity[i]) > 0.0001 {
			t.Errorf("Identity quat should produce identity matrix, element %d: got %v, want %v", i, m[i], identity[i])
		}
	}
}

func TestQuatFromAxisAngle(t *testing.T) {
	// 90 degrees around Y axis
	q := QuatFromAxisAngle(Vec3{X: 0, Y: 1, Z: 0}, math.Pi/2)

	// Should have Y component and W = cos(45deg)
	expectedW := math.Cos(math.Pi / 4)
	expectedY := math.Sin(math.Pi / 4)

	if math.Abs(q.W-expectedW) > 0.001 {
		t.Errorf("QuatFromAxisAngle W: expected %v, got %v", expectedW, q.W)
	}
	if math.Abs(q.Y-expectedY) > 0.001 {
		t.Errorf("QuatFromAxisAngle Y: expected %v, got %v", expectedY, q.Y)
	}
}

func TestQuatFromBetweenNormals(t *testing.T) {
	tests := []struct {
		name string
		a, b Vec3
	}{
		{"same", Vec3{1, 0, 0}, Vec3{1, 0, 0}},
		{"quarter", Vec3{1, 0, 0}, Vec3{0, 1, 0}},
		{"oblique", Vec3{0, 0, 1}, Vec3{1, 1, 1}.Normalize()},
		{"opposite x", Vec3{1, 0, 0}, Vec3{-1, 0, 0}},
		{"opposite z", Vec3{0, 0, 1}, Vec3{0, 0, -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := QuatFromBetweenNormals(tt.a, tt.b)
			got := q.RotateVector(tt.a)
			if !got.Equals(tt.b, 1e-9) {
				t.Errorf("rotate %v = %v, want %v", tt.a, got, tt.b)
			}
		})
	}
}

func TestQuatRotateVectorMatchesMat4(t *testing.T) {
	q := QuatFromAxisAngle(Vec3{0, 1, 0}, math.Pi/3)
	v := Vec3{1, 2, 3}

	byQuat := q.RotateVector(v)
	byMat := q.ToMat4().TransformPoint(v)
	if !byQuat.Equals(byMat, 1e-9) {
		t.Errorf("RotateVector = %v, ToMat4 = %v", byQuat, byMat)
	}
}

func TestQuatSanitize(t *testing.T) {
	q := Quat{X: math.NaN(), Y: 1, Z: math.Inf(1), W: 2}.Sanitize()
	want := Quat{X: 0, Y: 1, Z: 0, W: 2}
	if q != want {
		t.Errorf("Sanitize = %+v, want %+v", q, want)
	}
}
