package geometry

import (
	"fmt"
	gomath "math"
	"slices"

	"github.com/Faultbox/fragments-go/pkg/math"
)

// AxisPartKind selects which sub-array an axis part indexes. Values match
// the model's AxisPartClass enum.
type AxisPartKind uint8

const (
	PartNone AxisPartKind = iota
	PartWire
	PartWireSet
	PartCircleCurve
)

func (k AxisPartKind) String() string {
	switch k {
	case PartWire:
		return "wire"
	case PartWireSet:
		return "wire-set"
	case PartCircleCurve:
		return "circle-curve"
	}
	return "none"
}

// Arc is a circular arc in source space. The aperture is in degrees and is
// centered on XDirection.
type Arc struct {
	Center      math.Vec3
	XDirection  math.Vec3
	YDirection  math.Vec3
	ApertureDeg float64
	Radius      float64
}

// Wire is a straight segment in source space.
type Wire struct {
	P1, P2 math.Vec3
}

// AxisPart references one entry of the sub-array named by Kind.
type AxisPart struct {
	Kind  AxisPartKind
	Index int
}

// Axis is one swept path of a circle extrusion, in source space.
type Axis struct {
	Parts    []AxisPart
	Wires    []Wire
	WireSets [][]math.Vec3
	Arcs     []Arc
	Radius   float64
}

// ExtrusionReport counts what was left out of an extrusion mesh.
type ExtrusionReport struct {
	RejectedRings int
	SkippedParts  []SkipError
}

func (r *ExtrusionReport) merge(other ExtrusionReport) {
	r.RejectedRings += other.RejectedRings
	r.SkippedParts = append(r.SkippedParts, other.SkippedParts...)
}

// Extruder sweeps circular cross sections along axes.
type Extruder struct {
	Segments int
}

// NewExtruder returns an extruder with the given ring resolution. Values
// below 3 fall back to DefaultSegmentCount.
func NewExtruder(segments int) *Extruder {
	if segments < 3 {
		segments = DefaultSegmentCount
	}
	return &Extruder{Segments: segments}
}

// Extrude returns the union of every axis' tube mesh.
func (e *Extruder) Extrude(axes []Axis) (*Mesh, ExtrusionReport) {
	mesh := &Mesh{}
	var report ExtrusionReport
	for _, axis := range axes {
		m, r := e.ExtrudeAxis(axis)
		mesh.Append(m)
		report.merge(r)
	}
	return mesh, report
}

// ExtrudeAxis builds the tube for one axis, processing its parts in order.
func (e *Extruder) ExtrudeAxis(axis Axis) (*Mesh, ExtrusionReport) {
	t := &tube{mesh: &Mesh{}, segments: e.Segments}
	var report ExtrusionReport
	radius := axis.Radius * UnitScale

	for i, part := range axis.Parts {
		switch part.Kind {
		case PartCircleCurve:
			if part.Index < 0 || part.Index >= len(axis.Arcs) {
				report.SkippedParts = append(report.SkippedParts, partOutOfRange(i, part, len(axis.Arcs)))
				continue
			}
			t.sweep(SampleArc(axis.Arcs[part.Index]), radius)

		case PartWire:
			if part.Index < 0 || part.Index >= len(axis.Wires) {
				report.SkippedParts = append(report.SkippedParts, partOutOfRange(i, part, len(axis.Wires)))
				continue
			}
			w := axis.Wires[part.Index]
			p1, p2 := ToTarget(w.P1), ToTarget(w.P2)
			dir := p2.Sub(p1).SafeNormal()
			if dir.IsNearlyZero(0) {
				report.SkippedParts = append(report.SkippedParts, SkipError{Kind: "part", Index: i, Reason: "zero-length wire"})
				continue
			}
			x, y := dir.BestAxisVectors()
			t.stitch([][]math.Vec3{
				t.ring(p1, x, y, radius),
				t.ring(p2, x, y, radius),
			})

		case PartWireSet:
			if part.Index < 0 || part.Index >= len(axis.WireSets) {
				report.SkippedParts = append(report.SkippedParts, partOutOfRange(i, part, len(axis.WireSets)))
				continue
			}
			src := axis.WireSets[part.Index]
			if len(src) < 2 {
				continue
			}
			points := make([]math.Vec3, len(src))
			for j, p := range src {
				points[j] = ToTarget(p)
			}
			t.sweep(points, radius)

		default:
			report.SkippedParts = append(report.SkippedParts, SkipError{Kind: "part", Index: i, Reason: "unknown part kind"})
		}
	}

	report.RejectedRings = t.rejected
	return t.mesh, report
}

func partOutOfRange(i int, part AxisPart, n int) SkipError {
	return SkipError{
		Kind:   "part",
		Index:  i,
		Reason: fmt.Sprintf("%s index %d out of range [0,%d)", part.Kind, part.Index, n),
	}
}

// ArcDivisions returns the number of segments used to sample an arc.
// arcRadius is in target units.
func ArcDivisions(apertureRad, arcRadius float64) int {
	n := int(gomath.Round(apertureRad * arcRadius * 0.05))
	if n < 4 {
		return 4
	}
	if n > 32 {
		return 32
	}
	return n
}

// SampleArc returns ArcDivisions+1 target-space points along the arc,
// from -aperture/2 to +aperture/2 around its x direction.
func SampleArc(arc Arc) []math.Vec3 {
	center := ToTarget(arc.Center)
	xDir := RemapAxis(arc.XDirection)
	yDir := RemapAxis(arc.YDirection)
	ap := arc.ApertureDeg * gomath.Pi / 180
	r := arc.Radius * UnitScale

	divs := ArcDivisions(ap, r)
	points := make([]math.Vec3, 0, divs+1)
	for j := 0; j <= divs; j++ {
		t := float64(j) / float64(divs)
		angle := -ap/2 + t*ap
		offset := xDir.Scale(gomath.Cos(angle)).Add(yDir.Scale(gomath.Sin(angle)))
		points = append(points, center.Add(offset.Scale(r)))
	}
	return points
}

// PolylineTangents returns a unit tangent per point: forward difference at
// the start, backward at the end and central in between.
func PolylineTangents(points []math.Vec3) []math.Vec3 {
	n := len(points)
	tangents := make([]math.Vec3, n)
	if n < 2 {
		return tangents
	}
	for j := range points {
		switch j {
		case 0:
			tangents[j] = points[1].Sub(points[0]).SafeNormal()
		case n - 1:
			tangents[j] = points[j].Sub(points[j-1]).SafeNormal()
		default:
			tangents[j] = points[j+1].Sub(points[j-1]).SafeNormal()
		}
	}
	return tangents
}

// tube accumulates stitched rings into a mesh.
type tube struct {
	mesh     *Mesh
	segments int
	rejected int
}

// sweep places one ring per point, carrying the ring frame along the
// tangent chain with the minimal rotation between consecutive tangents.
// Repeated points are dropped first. The frame is seeded from the first
// non-zero tangent and a zero tangent reuses the previous one.
func (t *tube) sweep(points []math.Vec3, radius float64) {
	points = dropRepeated(points, DedupEpsilon)
	if len(points) < 2 {
		return
	}
	tangents := PolylineTangents(points)

	var zero math.Vec3
	first := slices.IndexFunc(tangents, func(v math.Vec3) bool { return v != zero })
	if first < 0 {
		return
	}
	prevT := tangents[first]
	prevX, prevY := prevT.BestAxisVectors()

	rings := make([][]math.Vec3, len(points))
	for k, p := range points {
		tk := tangents[k]
		if tk == zero {
			tk = prevT
		}
		align := math.QuatFromBetweenNormals(prevT, tk)
		x := align.RotateVector(prevX)
		y := align.RotateVector(prevY)

		rings[k] = t.ring(p, x, y, radius)

		prevT, prevX, prevY = tk, x, y
	}
	t.stitch(rings)
}

// dropRepeated removes points within eps of their predecessor.
func dropRepeated(points []math.Vec3, eps float64) []math.Vec3 {
	out := make([]math.Vec3, 0, len(points))
	for _, p := range points {
		if len(out) > 0 && p.Equals(out[len(out)-1], eps) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// ring returns the ring vertices around center, or nil when any vertex is
// not finite.
func (t *tube) ring(center, x, y math.Vec3, radius float64) []math.Vec3 {
	out := make([]math.Vec3, 0, t.segments)
	for j := 0; j < t.segments; j++ {
		angle := 2 * gomath.Pi * float64(j) / float64(t.segments)
		offset := x.Scale(gomath.Cos(angle)).Add(y.Scale(gomath.Sin(angle)))
		pos := center.Add(offset.Scale(radius))
		if !pos.IsFinite() {
			continue
		}
		out = append(out, pos)
	}
	if len(out) != t.segments {
		t.rejected++
		return nil
	}
	return out
}

// stitch joins each pair of consecutive valid rings with two triangles per
// segment. Ring vertices are emitted on first use.
func (t *tube) stitch(rings [][]math.Vec3) {
	base := make([]int, len(rings))
	for i := range base {
		base[i] = -1
	}
	emit := func(k int) uint32 {
		if base[k] < 0 {
			base[k] = len(t.mesh.Vertices)
			t.mesh.Vertices = append(t.mesh.Vertices, rings[k]...)
		}
		return uint32(base[k])
	}

	for k := 0; k+1 < len(rings); k++ {
		if rings[k] == nil || rings[k+1] == nil {
			continue
		}
		a, b := emit(k), emit(k+1)
		n := uint32(t.segments)
		for j := uint32(0); j < n; j++ {
			next := (j + 1) % n
			t.mesh.AddTriangle(a+j, b+j, a+next)
			t.mesh.AddTriangle(a+next, b+j, b+next)
		}
	}
}
