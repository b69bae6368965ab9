package schema

import flatbuffers "github.com/google/flatbuffers/go"

// Model field slots.
var (
	modelMetadata         = Slot(0)
	modelGuids            = Slot(1)
	modelGuidsItems       = Slot(2)
	modelMaxLocalID       = Slot(3)
	modelLocalIDs         = Slot(4)
	modelCategories       = Slot(5)
	modelMeshes           = Slot(6)
	modelAttributes       = Slot(7)
	modelRelations        = Slot(8)
	modelRelationsItems   = Slot(9)
	modelGuid             = Slot(10)
	modelSpatialStructure = Slot(11)
	modelAlignments       = Slot(12)
	modelGeometries       = Slot(13)
)

const modelFieldCount = 14

// Model is the root table. Per-item arrays (local ids, guids, categories,
// attributes) share one index space.
type Model struct {
	_tab flatbuffers.Table
}

// GetRootAsModel reads the root table of a finished buffer.
func GetRootAsModel(buf []byte, offset flatbuffers.UOffsetT) *Model {
	n := flatbuffers.GetUOffsetT(buf[offset:])
	x := &Model{}
	x.Init(buf, n+offset)
	return x
}

func (rcv *Model) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *Model) Table() flatbuffers.Table {
	return rcv._tab
}

func (rcv *Model) Metadata() []byte { return fieldString(&rcv._tab, modelMetadata) }
func (rcv *Model) Guid() []byte     { return fieldString(&rcv._tab, modelGuid) }

// HasGuid reports whether the guid field is present.
func (rcv *Model) HasGuid() bool {
	return rcv._tab.Offset(modelGuid) != 0
}

func (rcv *Model) GuidsLength() int   { return vectorLen(&rcv._tab, modelGuids) }
func (rcv *Model) Guids(j int) []byte { return stringAt(&rcv._tab, modelGuids, j) }

func (rcv *Model) GuidsItemsLength() int     { return vectorLen(&rcv._tab, modelGuidsItems) }
func (rcv *Model) GuidsItems(j int) uint32   { return uint32At(&rcv._tab, modelGuidsItems, j) }
func (rcv *Model) LocalIdsLength() int       { return vectorLen(&rcv._tab, modelLocalIDs) }
func (rcv *Model) LocalIds(j int) int32      { return int32At(&rcv._tab, modelLocalIDs, j) }
func (rcv *Model) CategoriesLength() int     { return vectorLen(&rcv._tab, modelCategories) }
func (rcv *Model) Categories(j int) []byte   { return stringAt(&rcv._tab, modelCategories, j) }
func (rcv *Model) RelationsItemsLength() int { return vectorLen(&rcv._tab, modelRelationsItems) }
func (rcv *Model) RelationsItems(j int) int32 {
	return int32At(&rcv._tab, modelRelationsItems, j)
}

func (rcv *Model) MaxLocalId() uint32 {
	if o := flatbuffers.UOffsetT(rcv._tab.Offset(modelMaxLocalID)); o != 0 {
		return rcv._tab.GetUint32(o + rcv._tab.Pos)
	}
	return 0
}

func (rcv *Model) AttributesLength() int { return vectorLen(&rcv._tab, modelAttributes) }

func (rcv *Model) Attributes(obj *Attribute, j int) bool {
	x, ok := tableAt(&rcv._tab, modelAttributes, j)
	if ok {
		obj.Init(rcv._tab.Bytes, x)
	}
	return ok
}

func (rcv *Model) RelationsLength() int { return vectorLen(&rcv._tab, modelRelations) }

func (rcv *Model) Relations(obj *Relation, j int) bool {
	x, ok := tableAt(&rcv._tab, modelRelations, j)
	if ok {
		obj.Init(rcv._tab.Bytes, x)
	}
	return ok
}

func (rcv *Model) Meshes(obj *Meshes) *Meshes {
	x, ok := fieldTable(&rcv._tab, modelMeshes)
	if !ok {
		return nil
	}
	if obj == nil {
		obj = new(Meshes)
	}
	obj.Init(rcv._tab.Bytes, x)
	return obj
}

// AlignmentsLength counts the alignment tables. Their contents are not read.
func (rcv *Model) AlignmentsLength() int { return vectorLen(&rcv._tab, modelAlignments) }

// HasGeometries reports whether the geometries table is present.
func (rcv *Model) HasGeometries() bool {
	return rcv._tab.Offset(modelGeometries) != 0
}

func (rcv *Model) SpatialStructure(obj *SpatialStructure) *SpatialStructure {
	x, ok := fieldTable(&rcv._tab, modelSpatialStructure)
	if !ok {
		return nil
	}
	if obj == nil {
		obj = new(SpatialStructure)
	}
	obj.Init(rcv._tab.Bytes, x)
	return obj
}

// Attribute holds the raw attribute strings of one item.
type Attribute struct {
	_tab flatbuffers.Table
}

func (rcv *Attribute) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *Attribute) DataLength() int   { return vectorLen(&rcv._tab, Slot(0)) }
func (rcv *Attribute) Data(j int) []byte { return stringAt(&rcv._tab, Slot(0), j) }

// Relation holds the raw relation strings of one item.
type Relation struct {
	_tab flatbuffers.Table
}

func (rcv *Relation) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *Relation) DataLength() int   { return vectorLen(&rcv._tab, Slot(0)) }
func (rcv *Relation) Data(j int) []byte { return stringAt(&rcv._tab, Slot(0), j) }

// SpatialStructure is one node of the spatial tree. LocalId is optional.
type SpatialStructure struct {
	_tab flatbuffers.Table
}

func (rcv *SpatialStructure) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

// LocalId returns the node's local id and whether it is set.
func (rcv *SpatialStructure) LocalId() (int32, bool) {
	if o := flatbuffers.UOffsetT(rcv._tab.Offset(Slot(0))); o != 0 {
		return rcv._tab.GetInt32(o + rcv._tab.Pos), true
	}
	return 0, false
}

func (rcv *SpatialStructure) Category() []byte { return fieldString(&rcv._tab, Slot(1)) }

func (rcv *SpatialStructure) ChildrenLength() int { return vectorLen(&rcv._tab, Slot(2)) }

func (rcv *SpatialStructure) Children(obj *SpatialStructure, j int) bool {
	x, ok := tableAt(&rcv._tab, Slot(2), j)
	if ok {
		obj.Init(rcv._tab.Bytes, x)
	}
	return ok
}
