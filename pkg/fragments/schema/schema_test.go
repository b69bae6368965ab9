package schema

import (
	"testing"

	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int32Ptr(v int32) *int32 { return &v }

func sampleModel() *ModelT {
	return &ModelT{
		Guid:           "model-guid",
		Metadata:       `{"schema":"IFC4"}`,
		Guids:          []string{"g0", "g1"},
		LocalIds:       []int32{10, 20},
		MaxLocalId:     20,
		Categories:     []string{"IFCWALL", "IFCDOOR"},
		Attributes:     [][]string{{`["Name","Wall",1]`}, {`["Name","Door",1]`, `["Tag","D1",2]`}},
		Relations:      [][]string{{`["IsDefinedBy", 20]`}},
		RelationsItems: []int32{0},
		SpatialStructure: &SpatialStructureT{
			Category: "IFCPROJECT",
			Children: []*SpatialStructureT{
				{LocalId: int32Ptr(10)},
				{LocalId: int32Ptr(0), Category: "IFCDOOR"},
			},
		},
		Meshes: &MeshesT{
			MeshesItems: []uint32{0, 0},
			Samples:     []SampleT{{Item: 1, Material: 0, Representation: 0, LocalTransform: 0}},
			Representations: []RepresentationT{{
				Id:                  0,
				Min:                 FloatVectorT{-1, -2, -3},
				Max:                 FloatVectorT{1, 2, 3},
				RepresentationClass: RepresentationClassSHELL,
			}},
			Materials: []MaterialT{{R: 10, G: 20, B: 30, A: 255, RenderedFaces: RenderedFacesTWO}},
			Shells: []*ShellT{{
				Points:   []FloatVectorT{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}},
				Profiles: []*ShellProfileT{{Indices: []uint16{0, 1, 2}}},
				Holes:    []*ShellHoleT{{Indices: []uint16{2, 1, 0}, ProfileId: 0}},
			}},
			CircleExtrusions: []*CircleExtrusionT{{
				Radius: []float64{0.25},
				Axes: []*AxisT{{
					Order:        []uint32{0, 0, 0},
					Parts:        []AxisPartClass{AxisPartClassWIRE, AxisPartClassWIRESET, AxisPartClassCIRCLECURVE},
					Wires:        []WireT{{P1: FloatVectorT{0, 0, 0}, P2: FloatVectorT{0, 1, 0}}},
					WireSets:     []*WireSetT{{Ps: []FloatVectorT{{0, 0, 0}, {1, 0, 0}, {1, 0, 1}}}},
					CircleCurves: []CircleCurveT{{Aperture: 90, Position: FloatVectorT{1, 2, 3}, Radius: 2, XDirection: FloatVectorT{1, 0, 0}, YDirection: FloatVectorT{0, 0, 1}}},
				}},
			}},
			LocalTransforms:  []TransformT{{Position: DoubleVectorT{1, 2, 3}, XDirection: FloatVectorT{1, 0, 0}, YDirection: FloatVectorT{0, 1, 0}}},
			GlobalTransforms: []TransformT{{Position: DoubleVectorT{4, 5, 6}, XDirection: FloatVectorT{0, 0, 1}, YDirection: FloatVectorT{0, 1, 0}}},
		},
	}
}

func TestModelRoot(t *testing.T) {
	buf := sampleModel().Finish()
	m := GetRootAsModel(buf, 0)

	assert.True(t, m.HasGuid())
	assert.Equal(t, "model-guid", string(m.Guid()))
	assert.Equal(t, `{"schema":"IFC4"}`, string(m.Metadata()))
	assert.Equal(t, uint32(20), m.MaxLocalId())

	require.Equal(t, 2, m.LocalIdsLength())
	assert.Equal(t, int32(10), m.LocalIds(0))
	assert.Equal(t, int32(20), m.LocalIds(1))

	require.Equal(t, 2, m.GuidsLength())
	assert.Equal(t, "g1", string(m.Guids(1)))
	require.Equal(t, 2, m.CategoriesLength())
	assert.Equal(t, "IFCDOOR", string(m.Categories(1)))
	assert.Equal(t, 0, m.GuidsItemsLength())

	var attr Attribute
	require.Equal(t, 2, m.AttributesLength())
	require.True(t, m.Attributes(&attr, 1))
	require.Equal(t, 2, attr.DataLength())
	assert.Equal(t, `["Tag","D1",2]`, string(attr.Data(1)))

	var rel Relation
	require.Equal(t, 1, m.RelationsLength())
	require.True(t, m.Relations(&rel, 0))
	assert.Equal(t, `["IsDefinedBy", 20]`, string(rel.Data(0)))
	assert.Equal(t, int32(0), m.RelationsItems(0))
}

func TestModelMissingFields(t *testing.T) {
	buf := (&ModelT{}).Finish()
	m := GetRootAsModel(buf, 0)

	assert.False(t, m.HasGuid())
	assert.Nil(t, m.Guid())
	assert.Equal(t, 0, m.LocalIdsLength())
	assert.Nil(t, m.Meshes(nil))
	assert.Nil(t, m.SpatialStructure(nil))

	var attr Attribute
	assert.False(t, m.Attributes(&attr, 0))
}

func TestSpatialStructureOptionalLocalID(t *testing.T) {
	m := GetRootAsModel(sampleModel().Finish(), 0)
	root := m.SpatialStructure(nil)
	require.NotNil(t, root)

	_, ok := root.LocalId()
	assert.False(t, ok)
	assert.Equal(t, "IFCPROJECT", string(root.Category()))
	require.Equal(t, 2, root.ChildrenLength())

	var child SpatialStructure
	require.True(t, root.Children(&child, 0))
	id, ok := child.LocalId()
	assert.True(t, ok)
	assert.Equal(t, int32(10), id)
	assert.Nil(t, child.Category())

	// A zero local id is still present.
	require.True(t, root.Children(&child, 1))
	id, ok = child.LocalId()
	assert.True(t, ok)
	assert.Equal(t, int32(0), id)
	assert.Equal(t, "IFCDOOR", string(child.Category()))
}

func TestMeshesStructs(t *testing.T) {
	m := GetRootAsModel(sampleModel().Finish(), 0)
	meshes := m.Meshes(nil)
	require.NotNil(t, meshes)

	var s Sample
	require.True(t, meshes.Samples(&s, 0))
	assert.Equal(t, uint32(1), s.Item())

	var r Representation
	require.True(t, meshes.Representations(&r, 0))
	assert.Equal(t, RepresentationClassSHELL, r.RepresentationClass())
	bbox := r.Bbox(nil)
	assert.Equal(t, float32(-2), bbox.Min(nil).Y())
	assert.Equal(t, float32(3), bbox.Max(nil).Z())

	var mat Material
	require.True(t, meshes.Materials(&mat, 0))
	assert.Equal(t, []byte{10, 20, 30, 255}, []byte{mat.R(), mat.G(), mat.B(), mat.A()})
	assert.Equal(t, RenderedFacesTWO, mat.RenderedFaces())

	var tr Transform
	require.True(t, meshes.GlobalTransforms(&tr, 0))
	assert.Equal(t, 5.0, tr.Position(nil).Y())
	assert.Equal(t, float32(1), tr.XDirection(nil).Z())
	assert.Equal(t, float32(1), tr.YDirection(nil).Y())
	require.True(t, meshes.LocalTransforms(&tr, 0))
	assert.Equal(t, 3.0, tr.Position(nil).Z())
}

func TestShellAccessors(t *testing.T) {
	meshes := GetRootAsModel(sampleModel().Finish(), 0).Meshes(nil)

	var shell Shell
	require.True(t, meshes.Shells(&shell, 0))
	require.Equal(t, 3, shell.PointsLength())

	var p FloatVector
	require.True(t, shell.Points(&p, 2))
	assert.Equal(t, [3]float32{1, 1, 0}, [3]float32{p.X(), p.Y(), p.Z()})

	var prof ShellProfile
	require.True(t, shell.Profiles(&prof, 0))
	require.Equal(t, 3, prof.IndicesLength())
	assert.Equal(t, uint16(2), prof.Indices(2))

	var hole ShellHole
	require.True(t, shell.Holes(&hole, 0))
	assert.Equal(t, uint16(2), hole.Indices(0))
	assert.Equal(t, uint16(0), hole.ProfileId())
}

func TestCircleExtrusionAccessors(t *testing.T) {
	meshes := GetRootAsModel(sampleModel().Finish(), 0).Meshes(nil)

	var ext CircleExtrusion
	require.True(t, meshes.CircleExtrusions(&ext, 0))
	require.Equal(t, 1, ext.RadiusLength())
	assert.Equal(t, 0.25, ext.Radius(0))

	var axis Axis
	require.True(t, ext.Axes(&axis, 0))
	require.Equal(t, 3, axis.PartsLength())
	assert.Equal(t, AxisPartClassWIRESET, axis.Parts(1))
	assert.Equal(t, uint32(0), axis.Order(2))

	var w Wire
	require.True(t, axis.Wires(&w, 0))
	assert.Equal(t, float32(1), w.P2(nil).Y())

	var ws WireSet
	require.True(t, axis.WireSets(&ws, 0))
	require.Equal(t, 3, ws.PsLength())
	var p FloatVector
	require.True(t, ws.Ps(&p, 2))
	assert.Equal(t, float32(1), p.Z())

	var c CircleCurve
	require.True(t, axis.CircleCurves(&c, 0))
	assert.Equal(t, float32(90), c.Aperture())
	assert.Equal(t, float32(2), c.Radius())
	assert.Equal(t, float32(3), c.Position(nil).Z())
	assert.Equal(t, float32(1), c.XDirection(nil).X())
	assert.Equal(t, float32(1), c.YDirection(nil).Z())
}

func TestEnumStrings(t *testing.T) {
	assert.Equal(t, "CIRCLE_EXTRUSION", RepresentationClassCIRCLEEXTRUSION.String())
	assert.Equal(t, "RepresentationClass(9)", RepresentationClass(9).String())
	assert.Equal(t, "WIRE_SET", AxisPartClassWIRESET.String())
}

func TestSlot(t *testing.T) {
	assert.Equal(t, flatbuffers.VOffsetT(4), Slot(0))
	assert.Equal(t, flatbuffers.VOffsetT(26), Slot(11))
}

// Vtable offsets follow field declaration order in index.fbs.
func TestFieldSlots(t *testing.T) {
	tests := []struct {
		name string
		got  flatbuffers.VOffsetT
		want flatbuffers.VOffsetT
	}{
		{"Model.metadata", modelMetadata, 4},
		{"Model.guids", modelGuids, 6},
		{"Model.guids_items", modelGuidsItems, 8},
		{"Model.max_local_id", modelMaxLocalID, 10},
		{"Model.local_ids", modelLocalIDs, 12},
		{"Model.categories", modelCategories, 14},
		{"Model.meshes", modelMeshes, 16},
		{"Model.attributes", modelAttributes, 18},
		{"Model.relations", modelRelations, 20},
		{"Model.relations_items", modelRelationsItems, 22},
		{"Model.guid", modelGuid, 24},
		{"Model.spatial_structure", modelSpatialStructure, 26},
		{"Model.alignments", modelAlignments, 28},
		{"Model.geometries", modelGeometries, 30},
		{"Meshes.coordinates", meshesCoordinates, 4},
		{"Meshes.meshes_items", meshesItems, 6},
		{"Meshes.samples", meshesSamples, 8},
		{"Meshes.representations", meshesRepresentations, 10},
		{"Meshes.materials", meshesMaterials, 12},
		{"Meshes.circle_extrusions", meshesCircleExtrusions, 14},
		{"Meshes.shells", meshesShells, 16},
		{"Meshes.local_transforms", meshesLocalTransforms, 18},
		{"Meshes.global_transforms", meshesGlobalTransforms, 20},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.got, tt.name)
	}
	assert.Equal(t, 14, modelFieldCount)
	assert.Equal(t, 9, meshesFieldCount)
}

// A buffer laid out by field index alone, with the coordinates slot filled,
// must read back through the accessors.
func TestMeshesRawLayout(t *testing.T) {
	b := flatbuffers.NewBuilder(256)
	items := uint32Vector(b, []uint32{7, 9})
	global := transformVector(b, []TransformT{{Position: DoubleVectorT{1, 2, 3}}})
	b.StartObject(9)
	b.PrependStructSlot(0, CreateTransform(b, 10, 20, 30, 1, 0, 0, 0, 1, 0), 0)
	b.PrependUOffsetTSlot(1, items, 0)
	b.PrependUOffsetTSlot(8, global, 0)
	meshes := b.EndObject()

	b.StartObject(14)
	b.PrependUOffsetTSlot(6, meshes, 0)
	b.Finish(b.EndObject())

	m := GetRootAsModel(b.FinishedBytes(), 0).Meshes(nil)
	require.NotNil(t, m)
	require.Equal(t, 2, m.MeshesItemsLength())
	assert.Equal(t, uint32(9), m.MeshesItems(1))
	assert.Equal(t, 0, m.SamplesLength())

	c := m.Coordinates(nil)
	require.NotNil(t, c)
	assert.Equal(t, 20.0, c.Position(nil).Y())

	var tr Transform
	require.Equal(t, 1, m.GlobalTransformsLength())
	require.True(t, m.GlobalTransforms(&tr, 0))
	assert.Equal(t, 3.0, tr.Position(nil).Z())
}

func TestModelTrailingFields(t *testing.T) {
	mt := sampleModel()
	mt.Alignments = 2
	mt.HasGeometries = true
	mt.Meshes.Coordinates = &TransformT{Position: DoubleVectorT{5, 6, 7}, XDirection: FloatVectorT{1, 0, 0}, YDirection: FloatVectorT{0, 1, 0}}
	m := GetRootAsModel(mt.Finish(), 0)

	assert.Equal(t, 2, m.AlignmentsLength())
	assert.True(t, m.HasGeometries())
	assert.Equal(t, "model-guid", string(m.Guid()))
	c := m.Meshes(nil).Coordinates(nil)
	require.NotNil(t, c)
	assert.Equal(t, 7.0, c.Position(nil).Z())

	bare := GetRootAsModel((&ModelT{}).Finish(), 0)
	assert.Equal(t, 0, bare.AlignmentsLength())
	assert.False(t, bare.HasGeometries())
	assert.Nil(t, GetRootAsModel(sampleModel().Finish(), 0).Meshes(nil).Coordinates(nil))
}
