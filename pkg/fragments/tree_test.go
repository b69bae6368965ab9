package fragments

import (
	gomath "math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/fragments-go/pkg/fragments/schema"
	"github.com/Faultbox/fragments-go/pkg/math"
)

// shape is the part of an item tree the inheritance tests compare.
type shape struct {
	ID       int32
	Category string
	Children []shape
}

func shapeOf(item *FragmentItem) shape {
	s := shape{ID: item.LocalID, Category: item.Category}
	for _, c := range item.Children {
		s.Children = append(s.Children, shapeOf(c))
	}
	return s
}

// inheritanceModel exercises both sides of category inheritance: category
// only nodes donate their category, materialized nodes reset it.
func inheritanceModel() *schema.ModelT {
	return &schema.ModelT{
		Guid:     "tree",
		LocalIds: []int32{10, 20, 21, 22, 30},
		SpatialStructure: &schema.SpatialStructureT{
			Children: []*schema.SpatialStructureT{
				{Category: "Wall", Children: []*schema.SpatialStructureT{
					{LocalId: localID(10)},
				}},
				{LocalId: localID(20), Category: "Slab", Children: []*schema.SpatialStructureT{
					{LocalId: localID(21), Children: []*schema.SpatialStructureT{
						{LocalId: localID(22), Category: "Door"},
					}},
				}},
				{Category: "Storey", Children: []*schema.SpatialStructureT{
					{Category: "Space", Children: []*schema.SpatialStructureT{
						{LocalId: localID(30)},
					}},
				}},
			},
		},
	}
}

func TestBuildItemTreeInheritance(t *testing.T) {
	root := BuildItemTree(decodeModel(t, inheritanceModel()))

	want := shape{ID: RootLocalID, Category: "tree", Children: []shape{
		{ID: 10, Category: "Wall"},
		// 21 has no category of its own and its parent materialized, so it
		// is dropped and 22 attaches to 20.
		{ID: 20, Category: "Slab", Children: []shape{
			{ID: 22, Category: "Door"},
		}},
		{ID: 30, Category: "Space"},
	}}
	if diff := cmp.Diff(want, shapeOf(root)); diff != "" {
		t.Errorf("tree mismatch (-want +got):\n%s", diff)
	}
	assert.Nil(t, root.Find(21))
}

func TestBuildItemTreeRoot(t *testing.T) {
	root := BuildItemTree(decodeModel(t, inheritanceModel()))

	assert.True(t, root.IsRoot())
	assert.Equal(t, "tree", root.GUID)
	assert.Equal(t, "tree", root.ModelGUID)
	assert.Equal(t, -1, root.ItemIndex())
	for _, c := range root.Children {
		assert.Equal(t, "tree", c.ModelGUID)
	}
}

func TestBuildItemTreeWithoutStructure(t *testing.T) {
	root := BuildItemTree(decodeModel(t, &schema.ModelT{Guid: "flat", LocalIds: []int32{1}}))
	assert.Empty(t, root.Children)
	assert.Equal(t, 1, root.Count())
}

func TestBuildItemTreeZeroLocalID(t *testing.T) {
	root := BuildItemTree(decodeModel(t, &schema.ModelT{
		Guid:     "zero",
		LocalIds: []int32{0},
		SpatialStructure: &schema.SpatialStructureT{
			Children: []*schema.SpatialStructureT{{LocalId: localID(0), Category: "Site"}},
		},
	}))
	require.Len(t, root.Children, 1)
	assert.Equal(t, int32(0), root.Children[0].LocalID)
}

func TestFindAndWalk(t *testing.T) {
	root := BuildItemTree(decodeModel(t, inheritanceModel()))

	door := root.Find(22)
	require.NotNil(t, door)
	assert.Equal(t, "Door", door.Category)
	assert.Nil(t, root.Find(404))

	var order []int32
	var depths []int
	root.Walk(func(item *FragmentItem, depth int) bool {
		order = append(order, item.LocalID)
		depths = append(depths, depth)
		return item.LocalID != 20
	})
	assert.Equal(t, []int32{-1, 10, 20, 30}, order)
	assert.Equal(t, []int{0, 1, 1, 1}, depths)
	assert.Equal(t, 5, root.Count())
}

func TestAttachItemData(t *testing.T) {
	model := &schema.ModelT{
		Guid:       "attached",
		LocalIds:   []int32{5, 6},
		Categories: []string{"IFCWALLSTANDARDCASE", ""},
		Guids:      []string{"g-5", "g-6"},
		Attributes: [][]string{{`["Name","W",1]`}, {}},
		SpatialStructure: &schema.SpatialStructureT{
			Children: []*schema.SpatialStructureT{
				{LocalId: localID(5), Category: "IFCWALL"},
				{LocalId: localID(6), Category: "IFCSLAB"},
				{LocalId: localID(99), Category: "IFCGHOST"},
			},
		},
		Meshes: &schema.MeshesT{
			MeshesItems: []uint32{1, 0},
			Samples: []schema.SampleT{
				{Item: 0, Material: 0, Representation: 1, LocalTransform: 2},
				{Item: 1, Material: 3, Representation: 4, LocalTransform: 5},
				{Item: 0, Material: 6, Representation: 7, LocalTransform: 8},
			},
			GlobalTransforms: []schema.TransformT{identityTransform(), translated(1, 2, 3)},
		},
	}
	m := decodeModel(t, model)
	root := BuildItemTree(m)
	AttachItemData(m, root)

	wall := root.Find(5)
	require.NotNil(t, wall)
	assert.Equal(t, 0, wall.ItemIndex())
	assert.Equal(t, "g-5", wall.GUID)
	assert.Equal(t, "IFCWALLSTANDARDCASE", wall.Category, "category array wins when present")
	assert.Equal(t, []Attribute{{Key: "Name", Value: "W", TypeHash: 1}}, wall.Attributes)
	assert.Equal(t, []Sample{
		{SampleIndex: 0, MaterialIndex: 0, RepresentationIndex: 1, LocalTransformIndex: 2},
		{SampleIndex: 1, MaterialIndex: 6, RepresentationIndex: 7, LocalTransformIndex: 8},
	}, wall.Samples)
	// meshes_items[0] = 1 -> translated(1, 2, 3), remapped and scaled.
	assert.True(t, wall.GlobalTransform.Translation.Equals(math.Vec3{X: 100, Y: 300, Z: 200}, 1e-9),
		"translation %v", wall.GlobalTransform.Translation)

	slab := root.Find(6)
	require.NotNil(t, slab)
	assert.Equal(t, "IFCSLAB", slab.Category, "empty category keeps the tree category")
	assert.Equal(t, "g-6", slab.GUID)
	assert.Empty(t, slab.Attributes)
	require.Len(t, slab.Samples, 1)
	assert.Equal(t, 0, slab.Samples[0].SampleIndex)
	assert.True(t, slab.GlobalTransform.Translation.IsNearlyZero(1e-9))

	ghost := root.Find(99)
	require.NotNil(t, ghost)
	assert.Equal(t, -1, ghost.ItemIndex())
	assert.Empty(t, ghost.GUID)
}

func TestAttachItemDataSanitizesTransforms(t *testing.T) {
	bad := identityTransform()
	bad.Position.X = gomath.NaN()
	bad.XDirection.Y = float32(gomath.Inf(1))

	m := decodeModel(t, &schema.ModelT{
		Guid:     "nan",
		LocalIds: []int32{1},
		SpatialStructure: &schema.SpatialStructureT{
			Children: []*schema.SpatialStructureT{{LocalId: localID(1), Category: "Beam"}},
		},
		Meshes: &schema.MeshesT{
			MeshesItems:      []uint32{0},
			GlobalTransforms: []schema.TransformT{bad},
		},
	})
	root := BuildItemTree(m)
	AttachItemData(m, root)

	tr := root.Find(1).GlobalTransform
	assert.True(t, tr.Translation.IsFinite())
	assert.Equal(t, 0.0, tr.Translation.X)
	for _, c := range []float64{tr.Rotation.X, tr.Rotation.Y, tr.Rotation.Z, tr.Rotation.W} {
		assert.False(t, gomath.IsNaN(c) || gomath.IsInf(c, 0))
	}
}
