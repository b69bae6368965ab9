package geometry

import (
	"fmt"

	"github.com/Faultbox/fragments-go/pkg/math"
)

// planeEpsilon is the per-component tolerance under which a cross product
// counts as zero when searching for a projection plane.
const planeEpsilon = 1e-4

// PlaneProjection maps points between 3D and a 2D frame on a plane.
type PlaneProjection struct {
	Origin math.Vec3
	AxisX  math.Vec3
	AxisY  math.Vec3
	Normal math.Vec3
}

// BuildProjectionPlane fits a plane to the loop using its first point and
// the first following pair of points that is not collinear with it.
func BuildProjectionPlane(points []math.Vec3, loop []int) (PlaneProjection, error) {
	if len(loop) < 3 {
		return PlaneProjection{}, fmt.Errorf("%w: loop has %d points", ErrDegenerateProfile, len(loop))
	}

	a := points[loop[0]]
	for i := 1; i < len(loop)-1; i++ {
		b := points[loop[i]]
		c := points[loop[i+1]]

		normal := b.Sub(a).Cross(c.Sub(a))
		if normal.IsNearlyZero(planeEpsilon) || !normal.IsFinite() {
			continue
		}
		normal = normal.Normalize()
		axisX := b.Sub(a).SafeNormal()
		return PlaneProjection{
			Origin: a,
			AxisX:  axisX,
			AxisY:  normal.Cross(axisX).SafeNormal(),
			Normal: normal,
		}, nil
	}
	return PlaneProjection{}, fmt.Errorf("%w: no three non-collinear points", ErrDegenerateProfile)
}

// Project returns p in plane coordinates.
func (p PlaneProjection) Project(v math.Vec3) math.Vec2 {
	d := v.Sub(p.Origin)
	return math.Vec2{X: d.Dot(p.AxisX), Y: d.Dot(p.AxisY)}
}

// Unproject returns the 3D point for plane coordinates v.
func (p PlaneProjection) Unproject(v math.Vec2) math.Vec3 {
	return p.Origin.Add(p.AxisX.Scale(v.X)).Add(p.AxisY.Scale(v.Y))
}

// ProjectLoop projects the indexed points of a loop.
func (p PlaneProjection) ProjectLoop(points []math.Vec3, loop []int) []math.Vec2 {
	out := make([]math.Vec2, len(loop))
	for i, idx := range loop {
		out[i] = p.Project(points[idx])
	}
	return out
}
