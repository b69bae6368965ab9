package schema

import flatbuffers "github.com/google/flatbuffers/go"

// The T types are plain Go mirrors of the tables and structs. Pack writes
// them into a builder; Finish wraps a whole model into a buffer.

type FloatVectorT struct {
	X, Y, Z float32
}

type DoubleVectorT struct {
	X, Y, Z float64
}

type TransformT struct {
	Position   DoubleVectorT
	XDirection FloatVectorT
	YDirection FloatVectorT
}

func (t TransformT) Pack(b *flatbuffers.Builder) flatbuffers.UOffsetT {
	return CreateTransform(b,
		t.Position.X, t.Position.Y, t.Position.Z,
		t.XDirection.X, t.XDirection.Y, t.XDirection.Z,
		t.YDirection.X, t.YDirection.Y, t.YDirection.Z,
	)
}

type MaterialT struct {
	R, G, B, A    byte
	RenderedFaces RenderedFaces
	Stroke        Stroke
}

type SampleT struct {
	Item           uint32
	Material       uint32
	Representation uint32
	LocalTransform uint32
}

type RepresentationT struct {
	Id                  uint32
	Min, Max            FloatVectorT
	RepresentationClass RepresentationClass
}

type CircleCurveT struct {
	Aperture   float32
	Position   FloatVectorT
	Radius     float32
	XDirection FloatVectorT
	YDirection FloatVectorT
}

type WireT struct {
	P1, P2 FloatVectorT
}

type WireSetT struct {
	Ps []FloatVectorT
}

func (t *WireSetT) Pack(b *flatbuffers.Builder) flatbuffers.UOffsetT {
	ps := floatVectorVector(b, t.Ps)
	b.StartObject(1)
	b.PrependUOffsetTSlot(0, ps, 0)
	return b.EndObject()
}

type AxisT struct {
	Wires        []WireT
	Order        []uint32
	Parts        []AxisPartClass
	WireSets     []*WireSetT
	CircleCurves []CircleCurveT
}

func (t *AxisT) Pack(b *flatbuffers.Builder) flatbuffers.UOffsetT {
	sets := make([]flatbuffers.UOffsetT, len(t.WireSets))
	for i, ws := range t.WireSets {
		sets[i] = ws.Pack(b)
	}
	setsOff := offsetVector(b, sets)

	b.StartVector(SizeWire, len(t.Wires), 4)
	for i := len(t.Wires) - 1; i >= 0; i-- {
		w := t.Wires[i]
		CreateWire(b, w.P1.X, w.P1.Y, w.P1.Z, w.P2.X, w.P2.Y, w.P2.Z)
	}
	wires := b.EndVector(len(t.Wires))

	order := uint32Vector(b, t.Order)

	b.StartVector(1, len(t.Parts), 1)
	for i := len(t.Parts) - 1; i >= 0; i-- {
		b.PrependByte(byte(t.Parts[i]))
	}
	parts := b.EndVector(len(t.Parts))

	b.StartVector(SizeCircleCurve, len(t.CircleCurves), 4)
	for i := len(t.CircleCurves) - 1; i >= 0; i-- {
		c := t.CircleCurves[i]
		CreateCircleCurve(b, c.Aperture,
			c.Position.X, c.Position.Y, c.Position.Z,
			c.Radius,
			c.XDirection.X, c.XDirection.Y, c.XDirection.Z,
			c.YDirection.X, c.YDirection.Y, c.YDirection.Z,
		)
	}
	curves := b.EndVector(len(t.CircleCurves))

	b.StartObject(5)
	b.PrependUOffsetTSlot(0, wires, 0)
	b.PrependUOffsetTSlot(1, order, 0)
	b.PrependUOffsetTSlot(2, parts, 0)
	b.PrependUOffsetTSlot(3, setsOff, 0)
	b.PrependUOffsetTSlot(4, curves, 0)
	return b.EndObject()
}

type CircleExtrusionT struct {
	Radius []float64
	Axes   []*AxisT
}

func (t *CircleExtrusionT) Pack(b *flatbuffers.Builder) flatbuffers.UOffsetT {
	axes := make([]flatbuffers.UOffsetT, len(t.Axes))
	for i, a := range t.Axes {
		axes[i] = a.Pack(b)
	}
	axesOff := offsetVector(b, axes)

	b.StartVector(8, len(t.Radius), 8)
	for i := len(t.Radius) - 1; i >= 0; i-- {
		b.PrependFloat64(t.Radius[i])
	}
	radius := b.EndVector(len(t.Radius))

	b.StartObject(2)
	b.PrependUOffsetTSlot(0, radius, 0)
	b.PrependUOffsetTSlot(1, axesOff, 0)
	return b.EndObject()
}

type ShellProfileT struct {
	Indices []uint16
}

func (t *ShellProfileT) Pack(b *flatbuffers.Builder) flatbuffers.UOffsetT {
	idx := uint16Vector(b, t.Indices)
	b.StartObject(1)
	b.PrependUOffsetTSlot(0, idx, 0)
	return b.EndObject()
}

type ShellHoleT struct {
	Indices   []uint16
	ProfileId uint16
}

func (t *ShellHoleT) Pack(b *flatbuffers.Builder) flatbuffers.UOffsetT {
	idx := uint16Vector(b, t.Indices)
	b.StartObject(2)
	b.PrependUOffsetTSlot(0, idx, 0)
	b.PrependUint16Slot(1, t.ProfileId, 0)
	return b.EndObject()
}

type ShellT struct {
	Profiles []*ShellProfileT
	Holes    []*ShellHoleT
	Points   []FloatVectorT
}

func (t *ShellT) Pack(b *flatbuffers.Builder) flatbuffers.UOffsetT {
	profiles := make([]flatbuffers.UOffsetT, len(t.Profiles))
	for i, p := range t.Profiles {
		profiles[i] = p.Pack(b)
	}
	profilesOff := offsetVector(b, profiles)

	holes := make([]flatbuffers.UOffsetT, len(t.Holes))
	for i, h := range t.Holes {
		holes[i] = h.Pack(b)
	}
	holesOff := offsetVector(b, holes)

	points := floatVectorVector(b, t.Points)

	b.StartObject(3)
	b.PrependUOffsetTSlot(0, profilesOff, 0)
	b.PrependUOffsetTSlot(1, holesOff, 0)
	b.PrependUOffsetTSlot(2, points, 0)
	return b.EndObject()
}

type MeshesT struct {
	Coordinates      *TransformT
	MeshesItems      []uint32
	Samples          []SampleT
	Representations  []RepresentationT
	Materials        []MaterialT
	CircleExtrusions []*CircleExtrusionT
	Shells           []*ShellT
	LocalTransforms  []TransformT
	GlobalTransforms []TransformT
}

func (t *MeshesT) Pack(b *flatbuffers.Builder) flatbuffers.UOffsetT {
	extrusions := make([]flatbuffers.UOffsetT, len(t.CircleExtrusions))
	for i, e := range t.CircleExtrusions {
		extrusions[i] = e.Pack(b)
	}
	extrusionsOff := offsetVector(b, extrusions)

	shells := make([]flatbuffers.UOffsetT, len(t.Shells))
	for i, s := range t.Shells {
		shells[i] = s.Pack(b)
	}
	shellsOff := offsetVector(b, shells)

	items := uint32Vector(b, t.MeshesItems)

	b.StartVector(SizeSample, len(t.Samples), 4)
	for i := len(t.Samples) - 1; i >= 0; i-- {
		s := t.Samples[i]
		CreateSample(b, s.Item, s.Material, s.Representation, s.LocalTransform)
	}
	samples := b.EndVector(len(t.Samples))

	b.StartVector(SizeRepresentation, len(t.Representations), 4)
	for i := len(t.Representations) - 1; i >= 0; i-- {
		r := t.Representations[i]
		CreateRepresentation(b, r.Id, r.Min.X, r.Min.Y, r.Min.Z, r.Max.X, r.Max.Y, r.Max.Z, r.RepresentationClass)
	}
	reps := b.EndVector(len(t.Representations))

	b.StartVector(SizeMaterial, len(t.Materials), 1)
	for i := len(t.Materials) - 1; i >= 0; i-- {
		m := t.Materials[i]
		CreateMaterial(b, m.R, m.G, m.B, m.A, m.RenderedFaces, m.Stroke)
	}
	materials := b.EndVector(len(t.Materials))

	local := transformVector(b, t.LocalTransforms)
	global := transformVector(b, t.GlobalTransforms)

	b.StartObject(meshesFieldCount)
	if t.Coordinates != nil {
		b.PrependStructSlot(0, t.Coordinates.Pack(b), 0)
	}
	b.PrependUOffsetTSlot(1, items, 0)
	b.PrependUOffsetTSlot(2, samples, 0)
	b.PrependUOffsetTSlot(3, reps, 0)
	b.PrependUOffsetTSlot(4, materials, 0)
	b.PrependUOffsetTSlot(5, extrusionsOff, 0)
	b.PrependUOffsetTSlot(6, shellsOff, 0)
	b.PrependUOffsetTSlot(7, local, 0)
	b.PrependUOffsetTSlot(8, global, 0)
	return b.EndObject()
}

type SpatialStructureT struct {
	LocalId  *int32
	Category string
	Children []*SpatialStructureT
}

func (t *SpatialStructureT) Pack(b *flatbuffers.Builder) flatbuffers.UOffsetT {
	children := make([]flatbuffers.UOffsetT, len(t.Children))
	for i, c := range t.Children {
		children[i] = c.Pack(b)
	}
	childrenOff := offsetVector(b, children)

	var category flatbuffers.UOffsetT
	if t.Category != "" {
		category = b.CreateString(t.Category)
	}

	b.StartObject(3)
	if t.LocalId != nil {
		b.PrependInt32(*t.LocalId)
		b.Slot(0)
	}
	if category != 0 {
		b.PrependUOffsetTSlot(1, category, 0)
	}
	b.PrependUOffsetTSlot(2, childrenOff, 0)
	return b.EndObject()
}

// ModelT is a whole model. Nil slices are written as absent fields.
type ModelT struct {
	Metadata         string
	Guid             string
	Guids            []string
	GuidsItems       []uint32
	MaxLocalId       uint32
	LocalIds         []int32
	Categories       []string
	Meshes           *MeshesT
	Attributes       [][]string
	Relations        [][]string
	RelationsItems   []int32
	SpatialStructure *SpatialStructureT

	// Alignments is the number of empty alignment tables to write.
	Alignments    int
	HasGeometries bool
}

func (t *ModelT) Pack(b *flatbuffers.Builder) flatbuffers.UOffsetT {
	var meshes flatbuffers.UOffsetT
	if t.Meshes != nil {
		meshes = t.Meshes.Pack(b)
	}
	var spatial flatbuffers.UOffsetT
	if t.SpatialStructure != nil {
		spatial = t.SpatialStructure.Pack(b)
	}

	var alignments, geometries flatbuffers.UOffsetT
	if t.Alignments > 0 {
		offs := make([]flatbuffers.UOffsetT, t.Alignments)
		for i := range offs {
			b.StartObject(3)
			offs[i] = b.EndObject()
		}
		alignments = offsetVector(b, offs)
	}
	if t.HasGeometries {
		b.StartObject(0)
		geometries = b.EndObject()
	}

	attributes := dataTables(b, t.Attributes)
	relations := dataTables(b, t.Relations)
	guids := stringVector(b, t.Guids)
	categories := stringVector(b, t.Categories)
	guidsItems := uint32Vector(b, t.GuidsItems)
	relationsItems := int32Vector(b, t.RelationsItems)
	localIDs := int32Vector(b, t.LocalIds)

	var metadata, guid flatbuffers.UOffsetT
	if t.Metadata != "" {
		metadata = b.CreateString(t.Metadata)
	}
	if t.Guid != "" {
		guid = b.CreateString(t.Guid)
	}

	b.StartObject(modelFieldCount)
	prependOffset(b, 0, metadata)
	prependOffset(b, 1, guids)
	prependOffset(b, 2, guidsItems)
	b.PrependUint32Slot(3, t.MaxLocalId, 0)
	prependOffset(b, 4, localIDs)
	prependOffset(b, 5, categories)
	prependOffset(b, 6, meshes)
	prependOffset(b, 7, attributes)
	prependOffset(b, 8, relations)
	prependOffset(b, 9, relationsItems)
	prependOffset(b, 10, guid)
	prependOffset(b, 11, spatial)
	prependOffset(b, 12, alignments)
	prependOffset(b, 13, geometries)
	return b.EndObject()
}

// Finish packs the model and returns the finished buffer.
func (t *ModelT) Finish() []byte {
	b := flatbuffers.NewBuilder(1024)
	b.Finish(t.Pack(b))
	return b.FinishedBytes()
}

func prependOffset(b *flatbuffers.Builder, slot int, off flatbuffers.UOffsetT) {
	if off != 0 {
		b.PrependUOffsetTSlot(slot, off, 0)
	}
}

func offsetVector(b *flatbuffers.Builder, offs []flatbuffers.UOffsetT) flatbuffers.UOffsetT {
	b.StartVector(4, len(offs), 4)
	for i := len(offs) - 1; i >= 0; i-- {
		b.PrependUOffsetT(offs[i])
	}
	return b.EndVector(len(offs))
}

// stringVector returns 0 for a nil slice so the field stays absent.
func stringVector(b *flatbuffers.Builder, values []string) flatbuffers.UOffsetT {
	if values == nil {
		return 0
	}
	offs := make([]flatbuffers.UOffsetT, len(values))
	for i, s := range values {
		offs[i] = b.CreateString(s)
	}
	return offsetVector(b, offs)
}

func dataTables(b *flatbuffers.Builder, records [][]string) flatbuffers.UOffsetT {
	if records == nil {
		return 0
	}
	offs := make([]flatbuffers.UOffsetT, len(records))
	for i, rec := range records {
		data := stringVector(b, rec)
		b.StartObject(1)
		prependOffset(b, 0, data)
		offs[i] = b.EndObject()
	}
	return offsetVector(b, offs)
}

func uint32Vector(b *flatbuffers.Builder, values []uint32) flatbuffers.UOffsetT {
	if values == nil {
		return 0
	}
	b.StartVector(4, len(values), 4)
	for i := len(values) - 1; i >= 0; i-- {
		b.PrependUint32(values[i])
	}
	return b.EndVector(len(values))
}

func int32Vector(b *flatbuffers.Builder, values []int32) flatbuffers.UOffsetT {
	if values == nil {
		return 0
	}
	b.StartVector(4, len(values), 4)
	for i := len(values) - 1; i >= 0; i-- {
		b.PrependInt32(values[i])
	}
	return b.EndVector(len(values))
}

func uint16Vector(b *flatbuffers.Builder, values []uint16) flatbuffers.UOffsetT {
	b.StartVector(2, len(values), 2)
	for i := len(values) - 1; i >= 0; i-- {
		b.PrependUint16(values[i])
	}
	return b.EndVector(len(values))
}

func floatVectorVector(b *flatbuffers.Builder, values []FloatVectorT) flatbuffers.UOffsetT {
	b.StartVector(SizeFloatVector, len(values), 4)
	for i := len(values) - 1; i >= 0; i-- {
		CreateFloatVector(b, values[i].X, values[i].Y, values[i].Z)
	}
	return b.EndVector(len(values))
}

func transformVector(b *flatbuffers.Builder, values []TransformT) flatbuffers.UOffsetT {
	b.StartVector(SizeTransform, len(values), 8)
	for i := len(values) - 1; i >= 0; i-- {
		values[i].Pack(b)
	}
	return b.EndVector(len(values))
}
