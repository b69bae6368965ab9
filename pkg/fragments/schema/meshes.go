package schema

import flatbuffers "github.com/google/flatbuffers/go"

// Meshes field slots.
var (
	meshesCoordinates      = Slot(0)
	meshesItems            = Slot(1)
	meshesSamples          = Slot(2)
	meshesRepresentations  = Slot(3)
	meshesMaterials        = Slot(4)
	meshesCircleExtrusions = Slot(5)
	meshesShells           = Slot(6)
	meshesLocalTransforms  = Slot(7)
	meshesGlobalTransforms = Slot(8)
)

const meshesFieldCount = 9

// Meshes is the geometry bundle of a model.
type Meshes struct {
	_tab flatbuffers.Table
}

func (rcv *Meshes) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

// Coordinates is the model's coordinate system, stored inline. Nil when absent.
func (rcv *Meshes) Coordinates(obj *Transform) *Transform {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(meshesCoordinates))
	if o == 0 {
		return nil
	}
	if obj == nil {
		obj = new(Transform)
	}
	obj.Init(rcv._tab.Bytes, o+rcv._tab.Pos)
	return obj
}

// MeshesItems maps an item index to its global transform index.
func (rcv *Meshes) MeshesItems(j int) uint32 { return uint32At(&rcv._tab, meshesItems, j) }
func (rcv *Meshes) MeshesItemsLength() int   { return vectorLen(&rcv._tab, meshesItems) }

func (rcv *Meshes) SamplesLength() int { return vectorLen(&rcv._tab, meshesSamples) }

func (rcv *Meshes) Samples(obj *Sample, j int) bool {
	x, ok := element(&rcv._tab, meshesSamples, j, SizeSample)
	if ok {
		obj.Init(rcv._tab.Bytes, x)
	}
	return ok
}

func (rcv *Meshes) RepresentationsLength() int { return vectorLen(&rcv._tab, meshesRepresentations) }

func (rcv *Meshes) Representations(obj *Representation, j int) bool {
	x, ok := element(&rcv._tab, meshesRepresentations, j, SizeRepresentation)
	if ok {
		obj.Init(rcv._tab.Bytes, x)
	}
	return ok
}

func (rcv *Meshes) MaterialsLength() int { return vectorLen(&rcv._tab, meshesMaterials) }

func (rcv *Meshes) Materials(obj *Material, j int) bool {
	x, ok := element(&rcv._tab, meshesMaterials, j, SizeMaterial)
	if ok {
		obj.Init(rcv._tab.Bytes, x)
	}
	return ok
}

func (rcv *Meshes) CircleExtrusionsLength() int { return vectorLen(&rcv._tab, meshesCircleExtrusions) }

func (rcv *Meshes) CircleExtrusions(obj *CircleExtrusion, j int) bool {
	x, ok := tableAt(&rcv._tab, meshesCircleExtrusions, j)
	if ok {
		obj.Init(rcv._tab.Bytes, x)
	}
	return ok
}

func (rcv *Meshes) ShellsLength() int { return vectorLen(&rcv._tab, meshesShells) }

func (rcv *Meshes) Shells(obj *Shell, j int) bool {
	x, ok := tableAt(&rcv._tab, meshesShells, j)
	if ok {
		obj.Init(rcv._tab.Bytes, x)
	}
	return ok
}

func (rcv *Meshes) LocalTransformsLength() int { return vectorLen(&rcv._tab, meshesLocalTransforms) }

func (rcv *Meshes) LocalTransforms(obj *Transform, j int) bool {
	x, ok := element(&rcv._tab, meshesLocalTransforms, j, SizeTransform)
	if ok {
		obj.Init(rcv._tab.Bytes, x)
	}
	return ok
}

func (rcv *Meshes) GlobalTransformsLength() int { return vectorLen(&rcv._tab, meshesGlobalTransforms) }

func (rcv *Meshes) GlobalTransforms(obj *Transform, j int) bool {
	x, ok := element(&rcv._tab, meshesGlobalTransforms, j, SizeTransform)
	if ok {
		obj.Init(rcv._tab.Bytes, x)
	}
	return ok
}

// Shell is a set of planar profiles over a shared point list.
type Shell struct {
	_tab flatbuffers.Table
}

func (rcv *Shell) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *Shell) ProfilesLength() int { return vectorLen(&rcv._tab, Slot(0)) }

func (rcv *Shell) Profiles(obj *ShellProfile, j int) bool {
	x, ok := tableAt(&rcv._tab, Slot(0), j)
	if ok {
		obj.Init(rcv._tab.Bytes, x)
	}
	return ok
}

func (rcv *Shell) HolesLength() int { return vectorLen(&rcv._tab, Slot(1)) }

func (rcv *Shell) Holes(obj *ShellHole, j int) bool {
	x, ok := tableAt(&rcv._tab, Slot(1), j)
	if ok {
		obj.Init(rcv._tab.Bytes, x)
	}
	return ok
}

func (rcv *Shell) PointsLength() int { return vectorLen(&rcv._tab, Slot(2)) }

func (rcv *Shell) Points(obj *FloatVector, j int) bool {
	x, ok := element(&rcv._tab, Slot(2), j, SizeFloatVector)
	if ok {
		obj.Init(rcv._tab.Bytes, x)
	}
	return ok
}

// ShellProfile is a closed loop of point indices.
type ShellProfile struct {
	_tab flatbuffers.Table
}

func (rcv *ShellProfile) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *ShellProfile) IndicesLength() int   { return vectorLen(&rcv._tab, Slot(0)) }
func (rcv *ShellProfile) Indices(j int) uint16 { return uint16At(&rcv._tab, Slot(0), j) }

// ShellHole is a loop subtracted from the profile ProfileId.
type ShellHole struct {
	_tab flatbuffers.Table
}

func (rcv *ShellHole) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *ShellHole) IndicesLength() int   { return vectorLen(&rcv._tab, Slot(0)) }
func (rcv *ShellHole) Indices(j int) uint16 { return uint16At(&rcv._tab, Slot(0), j) }

func (rcv *ShellHole) ProfileId() uint16 {
	if o := flatbuffers.UOffsetT(rcv._tab.Offset(Slot(1))); o != 0 {
		return rcv._tab.GetUint16(o + rcv._tab.Pos)
	}
	return 0
}

// CircleExtrusion is a set of axes swept with one radius per axis.
type CircleExtrusion struct {
	_tab flatbuffers.Table
}

func (rcv *CircleExtrusion) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *CircleExtrusion) RadiusLength() int    { return vectorLen(&rcv._tab, Slot(0)) }
func (rcv *CircleExtrusion) Radius(j int) float64 { return float64At(&rcv._tab, Slot(0), j) }
func (rcv *CircleExtrusion) AxesLength() int      { return vectorLen(&rcv._tab, Slot(1)) }

func (rcv *CircleExtrusion) Axes(obj *Axis, j int) bool {
	x, ok := tableAt(&rcv._tab, Slot(1), j)
	if ok {
		obj.Init(rcv._tab.Bytes, x)
	}
	return ok
}

// Axis lists its parts in sweep order. Parts(i) names the kind and Order(i)
// the index into that kind's array.
type Axis struct {
	_tab flatbuffers.Table
}

func (rcv *Axis) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *Axis) WiresLength() int { return vectorLen(&rcv._tab, Slot(0)) }

func (rcv *Axis) Wires(obj *Wire, j int) bool {
	x, ok := element(&rcv._tab, Slot(0), j, SizeWire)
	if ok {
		obj.Init(rcv._tab.Bytes, x)
	}
	return ok
}

func (rcv *Axis) OrderLength() int          { return vectorLen(&rcv._tab, Slot(1)) }
func (rcv *Axis) Order(j int) uint32        { return uint32At(&rcv._tab, Slot(1), j) }
func (rcv *Axis) PartsLength() int          { return vectorLen(&rcv._tab, Slot(2)) }
func (rcv *Axis) Parts(j int) AxisPartClass { return AxisPartClass(byteAt(&rcv._tab, Slot(2), j)) }
func (rcv *Axis) WireSetsLength() int       { return vectorLen(&rcv._tab, Slot(3)) }
func (rcv *Axis) CircleCurvesLength() int   { return vectorLen(&rcv._tab, Slot(4)) }

func (rcv *Axis) WireSets(obj *WireSet, j int) bool {
	x, ok := tableAt(&rcv._tab, Slot(3), j)
	if ok {
		obj.Init(rcv._tab.Bytes, x)
	}
	return ok
}

func (rcv *Axis) CircleCurves(obj *CircleCurve, j int) bool {
	x, ok := element(&rcv._tab, Slot(4), j, SizeCircleCurve)
	if ok {
		obj.Init(rcv._tab.Bytes, x)
	}
	return ok
}

// WireSet is a polyline.
type WireSet struct {
	_tab flatbuffers.Table
}

func (rcv *WireSet) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *WireSet) PsLength() int { return vectorLen(&rcv._tab, Slot(0)) }

func (rcv *WireSet) Ps(obj *FloatVector, j int) bool {
	x, ok := element(&rcv._tab, Slot(0), j, SizeFloatVector)
	if ok {
		obj.Init(rcv._tab.Bytes, x)
	}
	return ok
}
