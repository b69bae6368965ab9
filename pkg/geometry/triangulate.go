package geometry

import (
	"fmt"

	"github.com/Faultbox/fragments-go/pkg/math"
)

// TriangulationReport lists the loops left out of a triangulated profile.
type TriangulationReport struct {
	Skipped []SkipError
}

// HasSkips reports whether any loop was skipped.
func (r *TriangulationReport) HasSkips() bool {
	return len(r.Skipped) > 0
}

func (r *TriangulationReport) skip(kind string, index int, reason string) {
	r.Skipped = append(r.Skipped, SkipError{Kind: kind, Index: index, Reason: reason})
}

// ProjectedProfile is a profile flattened onto its plane, cleaned and wound:
// the outer loop counter-clockwise and every hole clockwise.
type ProjectedProfile struct {
	Plane PlaneProjection
	Outer []math.Vec2
	Holes [][]math.Vec2
}

// ProjectProfile builds the projection plane from the outer loop and
// prepares every loop for tessellation. Holes that are too short or
// collinear are dropped and recorded in the report. A degenerate outer loop
// fails the whole profile with ErrDegenerateProfile.
func ProjectProfile(points []math.Vec3, outer []int, holes [][]int) (*ProjectedProfile, TriangulationReport, error) {
	var report TriangulationReport

	if err := checkIndices(points, outer); err != nil {
		report.skip("outer", 0, err.Error())
		return nil, report, fmt.Errorf("%w: %v", ErrDegenerateProfile, err)
	}

	plane, err := BuildProjectionPlane(points, outer)
	if err != nil {
		report.skip("outer", 0, "no projection plane")
		return nil, report, err
	}

	out := &ProjectedProfile{Plane: plane}

	outer2D := dedupLoop(plane.ProjectLoop(points, outer), DedupEpsilon)
	if reason := loopDefect(outer2D); reason != "" {
		report.skip("outer", 0, reason)
		return nil, report, fmt.Errorf("%w: outer loop %s", ErrDegenerateProfile, reason)
	}
	if math.SignedArea(outer2D) < 0 {
		reverseLoop(outer2D)
	}
	out.Outer = outer2D

	for i, hole := range holes {
		if err := checkIndices(points, hole); err != nil {
			report.skip("hole", i, err.Error())
			continue
		}
		hole2D := dedupLoop(plane.ProjectLoop(points, hole), DedupEpsilon)
		if reason := loopDefect(hole2D); reason != "" {
			report.skip("hole", i, reason)
			continue
		}
		if math.SignedArea(hole2D) > 0 {
			reverseLoop(hole2D)
		}
		out.Holes = append(out.Holes, hole2D)
	}

	return out, report, nil
}

// TriangulateProfile triangulates a planar loop minus its holes.
//
// Every loop is projected onto the plane of the outer loop, cleaned, wound
// and tessellated; the output vertices are mapped back to 3D through the
// same plane. Vertices that no triangle uses are not emitted.
func TriangulateProfile(points []math.Vec3, outer []int, holes [][]int) (*Mesh, TriangulationReport, error) {
	profile, report, err := ProjectProfile(points, outer, holes)
	if err != nil {
		return &Mesh{}, report, err
	}

	mesh := profile.Tessellate()
	if len(mesh.Vertices) == 0 {
		return mesh, report, ErrTessellationFailed
	}
	return mesh, report, nil
}

// Tessellate fills the projected profile and returns the 3D mesh.
func (p *ProjectedProfile) Tessellate() *Mesh {
	rings := make([][]math.Vec2, 0, 1+len(p.Holes))
	rings = append(rings, p.Outer)
	rings = append(rings, p.Holes...)

	var flat []math.Vec2
	for _, r := range rings {
		flat = append(flat, r...)
	}

	tris := earcut(rings)

	mesh := &Mesh{}
	remap := make(map[int]uint32, len(flat))
	vertex := func(i int) uint32 {
		if v, ok := remap[i]; ok {
			return v
		}
		v := mesh.AddVertex(p.Plane.Unproject(flat[i]))
		remap[i] = v
		return v
	}
	for _, t := range tris {
		a, b, c := vertex(t[0]), vertex(t[1]), vertex(t[2])
		mesh.AddTriangle(a, b, c)
	}
	return mesh
}

// Area returns the outer loop area minus the hole areas.
func (p *ProjectedProfile) Area() float64 {
	area := math.SignedArea(p.Outer)
	for _, h := range p.Holes {
		area += math.SignedArea(h) // holes are clockwise, so negative
	}
	return area
}

func checkIndices(points []math.Vec3, loop []int) error {
	for _, idx := range loop {
		if idx < 0 || idx >= len(points) {
			return fmt.Errorf("point index %d out of range [0,%d)", idx, len(points))
		}
	}
	return nil
}

// dedupLoop drops points within eps of their predecessor, including the
// closing point when it repeats the first.
func dedupLoop(loop []math.Vec2, eps float64) []math.Vec2 {
	out := make([]math.Vec2, 0, len(loop))
	for _, p := range loop {
		if len(out) > 0 && p.Equals(out[len(out)-1], eps) {
			continue
		}
		out = append(out, p)
	}
	for len(out) > 1 && out[len(out)-1].Equals(out[0], eps) {
		out = out[:len(out)-1]
	}
	return out
}

// loopDefect returns why a loop cannot be tessellated, or "".
func loopDefect(loop []math.Vec2) string {
	if len(loop) < 3 {
		return fmt.Sprintf("%d distinct points", len(loop))
	}
	if collinear(loop, DedupEpsilon) {
		return "collinear points"
	}
	return ""
}

// collinear reports whether every point lies within eps of the line through
// the first point and the point farthest from it.
func collinear(loop []math.Vec2, eps float64) bool {
	origin := loop[0]
	far := origin
	var farDist float64
	for _, p := range loop[1:] {
		if d := p.Distance(origin); d > farDist {
			far, farDist = p, d
		}
	}
	if farDist <= eps {
		return true
	}

	dir := far.Sub(origin).Scale(1 / farDist)
	for _, p := range loop {
		if d := dir.Cross(p.Sub(origin)); d > eps || d < -eps {
			return false
		}
	}
	return true
}

func reverseLoop(loop []math.Vec2) {
	for i, j := 0, len(loop)-1; i < j; i, j = i+1, j-1 {
		loop[i], loop[j] = loop[j], loop[i]
	}
}
