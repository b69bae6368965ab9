package fragments

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Faultbox/fragments-go/internal/logger"
	"github.com/Faultbox/fragments-go/pkg/fragments/schema"
	"github.com/Faultbox/fragments-go/pkg/geometry"
	"github.com/Faultbox/fragments-go/pkg/math"
)

// ItemMesh is the mesh of one sample of one item, in the sample's local
// space. Placed applies the item and sample transforms.
type ItemMesh struct {
	LocalID         int32
	SampleIndex     int
	Key             string
	Class           schema.RepresentationClass
	Mesh            *geometry.Mesh
	Material        Material
	LocalTransform  geometry.RigidTransform
	GlobalTransform geometry.RigidTransform
}

// Placed returns the mesh in model space.
func (m ItemMesh) Placed() *geometry.Mesh {
	return m.Mesh.Transformed(m.GlobalTransform.Compose(m.LocalTransform))
}

// ReconstructOptions tunes mesh reconstruction.
type ReconstructOptions struct {
	Segments int // Tube ring resolution, DefaultSegmentCount when < 3
	Workers  int // Parallel samples, one per CPU when <= 0
}

// Reconstructor builds sample meshes from a model's mesh bundle.
type Reconstructor struct {
	model    *Model
	meshes   *schema.Meshes
	extruder *geometry.Extruder
	workers  int
}

// NewReconstructor returns a reconstructor for m.
func NewReconstructor(m *Model, opts ReconstructOptions) *Reconstructor {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Reconstructor{
		model:    m,
		meshes:   m.Meshes(),
		extruder: geometry.NewExtruder(opts.Segments),
		workers:  workers,
	}
}

type sampleJob struct {
	item   *FragmentItem
	sample Sample
}

type sampleResult struct {
	mesh ItemMesh
	err  error
}

// Reconstruct builds the meshes of every sample in the subtree rooted at
// item, in depth-first item order and sample order within an item.
//
// Samples that fail are logged and skipped. An error is returned only when
// the subtree has samples and none of them produced a mesh; it joins every
// per-sample error. A non-nil cache is consulted before building and filled
// afterwards.
func (r *Reconstructor) Reconstruct(ctx context.Context, item *FragmentItem, cache *MeshCache) ([]ItemMesh, error) {
	var jobs []sampleJob
	item.Walk(func(it *FragmentItem, _ int) bool {
		for _, s := range it.Samples {
			jobs = append(jobs, sampleJob{item: it, sample: s})
		}
		return true
	})
	if len(jobs) == 0 {
		return nil, nil
	}

	results := make([]sampleResult, len(jobs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)
	for i, job := range jobs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = r.cachedSample(job, cache)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	meshes := make([]ItemMesh, 0, len(results))
	var errs []error
	for i, res := range results {
		if res.err != nil {
			logger.Warn("skipping sample",
				zap.String("model", r.model.GUID()),
				zap.Int32("localId", jobs[i].item.LocalID),
				zap.Int("sample", jobs[i].sample.SampleIndex),
				zap.Error(res.err))
			errs = append(errs, res.err)
			continue
		}
		meshes = append(meshes, res.mesh)
	}
	if len(meshes) == 0 {
		return nil, errors.Join(errs...)
	}
	return meshes, nil
}

func (r *Reconstructor) cachedSample(job sampleJob, cache *MeshCache) sampleResult {
	key := CacheKey(r.model.GUID(), job.item.LocalID, job.sample.SampleIndex)
	if cache != nil {
		if m, ok := cache.Get(key); ok {
			return sampleResult{mesh: m}
		}
	}
	m, err := r.BuildSample(job.item, job.sample)
	if err != nil {
		return sampleResult{err: err}
	}
	if cache != nil {
		cache.Put(m)
	}
	return sampleResult{mesh: m}
}

// BuildSample builds the mesh of one sample of item. References that point
// outside the mesh bundle yield ErrMissingReference, as do out-of-range
// reads of a malformed buffer. Any other panic is logged and re-raised.
func (r *Reconstructor) BuildSample(item *FragmentItem, s Sample) (out ItemMesh, err error) {
	defer func() {
		p := recover()
		if p == nil {
			return
		}
		var localID int32
		if item != nil {
			localID = item.LocalID
		}
		logger.Error("sample build panicked",
			zap.Int32("localId", localID),
			zap.Int("sample", s.SampleIndex),
			zap.Any("panic", p),
			zap.Stack("stack"))
		if !outOfRange(p) {
			panic(p)
		}
		err = fmt.Errorf("%w: sample %d of item %d: %v", ErrMissingReference, s.SampleIndex, localID, p)
	}()

	mb := r.meshes
	if mb == nil {
		return ItemMesh{}, fmt.Errorf("%w: model has no meshes", ErrMissingReference)
	}
	if int(s.MaterialIndex) >= mb.MaterialsLength() {
		return ItemMesh{}, fmt.Errorf("%w: material %d", ErrMissingReference, s.MaterialIndex)
	}
	if int(s.RepresentationIndex) >= mb.RepresentationsLength() {
		return ItemMesh{}, fmt.Errorf("%w: representation %d", ErrMissingReference, s.RepresentationIndex)
	}
	if int(s.LocalTransformIndex) >= mb.LocalTransformsLength() {
		return ItemMesh{}, fmt.Errorf("%w: local transform %d", ErrMissingReference, s.LocalTransformIndex)
	}

	var mat schema.Material
	var rep schema.Representation
	var local schema.Transform
	mb.Materials(&mat, int(s.MaterialIndex))
	mb.Representations(&rep, int(s.RepresentationIndex))
	mb.LocalTransforms(&local, int(s.LocalTransformIndex))

	out = ItemMesh{
		LocalID:         item.LocalID,
		SampleIndex:     s.SampleIndex,
		Key:             CacheKey(r.model.GUID(), item.LocalID, s.SampleIndex),
		Class:           rep.RepresentationClass(),
		Material:        materialFrom(&mat),
		LocalTransform:  geometry.DecodeTransform(transformRecord(&local)),
		GlobalTransform: item.GlobalTransform,
	}

	id := int(rep.Id())
	switch class := rep.RepresentationClass(); class {
	case schema.RepresentationClassSHELL:
		if id >= mb.ShellsLength() {
			return ItemMesh{}, fmt.Errorf("%w: shell %d", ErrMissingReference, id)
		}
		var shell schema.Shell
		mb.Shells(&shell, id)
		out.Mesh = r.buildShell(&shell, id)

	case schema.RepresentationClassCIRCLEEXTRUSION:
		if id >= mb.CircleExtrusionsLength() {
			return ItemMesh{}, fmt.Errorf("%w: circle extrusion %d", ErrMissingReference, id)
		}
		var ce schema.CircleExtrusion
		mb.CircleExtrusions(&ce, id)
		out.Mesh = r.buildExtrusion(&ce, id)

	default:
		return ItemMesh{}, fmt.Errorf("%w: representation %d has class %s", ErrMissingReference, s.RepresentationIndex, class)
	}

	if out.Mesh.IsEmpty() {
		return ItemMesh{}, fmt.Errorf("%w: %s %d", ErrEmptyMesh, out.Class, id)
	}
	return out, nil
}

// outOfRange reports whether p is a runtime index or slice bounds error.
func outOfRange(p any) bool {
	re, ok := p.(runtime.Error)
	if !ok {
		return false
	}
	msg := re.Error()
	return strings.Contains(msg, "index out of range") || strings.Contains(msg, "slice bounds out of range")
}

// buildShell triangulates every profile of a shell. Profiles that fail are
// logged and left out.
func (r *Reconstructor) buildShell(shell *schema.Shell, id int) *geometry.Mesh {
	var fv schema.FloatVector
	points := make([]math.Vec3, shell.PointsLength())
	for i := range points {
		shell.Points(&fv, i)
		points[i] = geometry.ToTarget(vec3(&fv))
	}

	holes := make(map[int][][]int)
	var hole schema.ShellHole
	for i := 0; i < shell.HolesLength(); i++ {
		shell.Holes(&hole, i)
		p := int(hole.ProfileId())
		holes[p] = append(holes[p], holeIndices(&hole))
	}

	mesh := &geometry.Mesh{}
	var profile schema.ShellProfile
	for p := 0; p < shell.ProfilesLength(); p++ {
		shell.Profiles(&profile, p)
		outer := make([]int, profile.IndicesLength())
		for j := range outer {
			outer[j] = int(profile.Indices(j))
		}

		m, report, err := geometry.TriangulateProfile(points, outer, holes[p])
		for _, skip := range report.Skipped {
			logger.Warn("profile loop skipped",
				zap.Int("shell", id),
				zap.Int("profile", p),
				zap.String("reason", skip.Error()))
		}
		if err != nil {
			logger.Warn("profile skipped",
				zap.Int("shell", id),
				zap.Int("profile", p),
				zap.Error(err))
			continue
		}
		mesh.Append(m)
	}
	return mesh
}

func holeIndices(h *schema.ShellHole) []int {
	out := make([]int, h.IndicesLength())
	for j := range out {
		out[j] = int(h.Indices(j))
	}
	return out
}

// buildExtrusion sweeps every axis of a circle extrusion.
func (r *Reconstructor) buildExtrusion(ce *schema.CircleExtrusion, id int) *geometry.Mesh {
	axes := make([]geometry.Axis, 0, ce.AxesLength())
	var axis schema.Axis
	for j := 0; j < ce.AxesLength(); j++ {
		if j >= ce.RadiusLength() {
			logger.Warn("axis without radius",
				zap.Int("extrusion", id),
				zap.Int("axis", j))
			continue
		}
		ce.Axes(&axis, j)
		axes = append(axes, axisFrom(&axis, ce.Radius(j)))
	}

	mesh, report := r.extruder.Extrude(axes)
	if report.RejectedRings > 0 || len(report.SkippedParts) > 0 {
		logger.Warn("extrusion incomplete",
			zap.Int("extrusion", id),
			zap.Int("rejectedRings", report.RejectedRings),
			zap.Int("skippedParts", len(report.SkippedParts)))
	}
	return mesh
}

func axisFrom(a *schema.Axis, radius float64) geometry.Axis {
	out := geometry.Axis{Radius: radius}

	for k := 0; k < a.PartsLength(); k++ {
		index := -1
		if k < a.OrderLength() {
			index = int(a.Order(k))
		}
		out.Parts = append(out.Parts, geometry.AxisPart{Kind: partKind(a.Parts(k)), Index: index})
	}

	var fv schema.FloatVector
	var w schema.Wire
	for k := 0; k < a.WiresLength(); k++ {
		a.Wires(&w, k)
		out.Wires = append(out.Wires, geometry.Wire{P1: vec3(w.P1(&fv)), P2: vec3(w.P2(&fv))})
	}

	var ws schema.WireSet
	for k := 0; k < a.WireSetsLength(); k++ {
		a.WireSets(&ws, k)
		points := make([]math.Vec3, ws.PsLength())
		for i := range points {
			ws.Ps(&fv, i)
			points[i] = vec3(&fv)
		}
		out.WireSets = append(out.WireSets, points)
	}

	var c schema.CircleCurve
	for k := 0; k < a.CircleCurvesLength(); k++ {
		a.CircleCurves(&c, k)
		out.Arcs = append(out.Arcs, geometry.Arc{
			Center:      vec3(c.Position(&fv)),
			XDirection:  vec3(c.XDirection(&fv)),
			YDirection:  vec3(c.YDirection(&fv)),
			ApertureDeg: float64(c.Aperture()),
			Radius:      float64(c.Radius()),
		})
	}
	return out
}

func partKind(c schema.AxisPartClass) geometry.AxisPartKind {
	switch c {
	case schema.AxisPartClassWIRE:
		return geometry.PartWire
	case schema.AxisPartClassWIRESET:
		return geometry.PartWireSet
	case schema.AxisPartClassCIRCLECURVE:
		return geometry.PartCircleCurve
	}
	return geometry.PartNone
}
