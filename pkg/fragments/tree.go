package fragments

import (
	"go.uber.org/zap"

	"github.com/Faultbox/fragments-go/internal/logger"
	"github.com/Faultbox/fragments-go/pkg/fragments/schema"
	"github.com/Faultbox/fragments-go/pkg/geometry"
	"github.com/Faultbox/fragments-go/pkg/math"
)

// BuildItemTree walks the spatial structure and materializes one item per
// node that has both a local id and an effective category.
//
// A node's effective category is its own, or else the one inherited from
// its parent. A node that is not materialized passes its own category (if
// it declares one) down to its children and adopts nothing else; a node
// that is materialized passes an empty category down. Children of skipped
// nodes attach to the nearest materialized ancestor.
//
// The returned root stands for the model: it carries the model guid as its
// guid and category and has local id RootLocalID.
func BuildItemTree(m *Model) *FragmentItem {
	root := &FragmentItem{
		ModelGUID:       m.GUID(),
		LocalID:         RootLocalID,
		Category:        m.GUID(),
		GUID:            m.GUID(),
		GlobalTransform: geometry.IdentityTransform(),
		itemIndex:       -1,
	}
	if node := m.SpatialRoot(); node != nil {
		buildNode(m.GUID(), node, root, "")
	}
	return root
}

func buildNode(modelGUID string, node *schema.SpatialStructure, parent *FragmentItem, inherited string) {
	own := string(node.Category())
	effective := own
	if effective == "" {
		effective = inherited
	}

	next, childCategory := parent, inherited
	if localID, ok := node.LocalId(); ok && effective != "" {
		item := &FragmentItem{
			ModelGUID:       modelGUID,
			LocalID:         localID,
			Category:        effective,
			GlobalTransform: geometry.IdentityTransform(),
			itemIndex:       -1,
		}
		parent.Children = append(parent.Children, item)
		next, childCategory = item, ""
	} else if own != "" {
		childCategory = own
	}

	var child schema.SpatialStructure
	for i := 0; i < node.ChildrenLength(); i++ {
		if node.Children(&child, i) {
			buildNode(modelGUID, &child, next, childCategory)
		}
	}
}

// AttachItemData fills every materialized item below root with its guid,
// parsed attributes, category, global transform and geometry samples.
//
// The category from the model's category array replaces the tree category
// when it is present and non-empty. Items whose local id is not in the
// model are left as built.
func AttachItemData(m *Model, root *FragmentItem) {
	index := m.Index()
	meshes := m.Meshes()
	samples := samplesByItem(meshes)

	unresolved := 0
	root.Walk(func(item *FragmentItem, _ int) bool {
		if item.IsRoot() {
			return true
		}
		i, ok := index[item.LocalID]
		if !ok {
			unresolved++
			return true
		}
		item.itemIndex = i
		item.GUID = m.ItemGUID(i)
		item.Attributes = ParseAttribute(m.RawAttributes(i))
		if c := m.Category(i); c != "" {
			item.Category = c
		}
		item.Samples = samples[i]
		if t, ok := globalTransform(meshes, i); ok {
			item.GlobalTransform = t
		}
		return true
	})

	if unresolved > 0 {
		logger.Warn("items without model data",
			zap.String("model", m.GUID()),
			zap.Int("count", unresolved))
	}
}

// samplesByItem groups the mesh samples by item index, numbering them in
// file order within each item.
func samplesByItem(meshes *schema.Meshes) map[int][]Sample {
	grouped := make(map[int][]Sample)
	if meshes == nil {
		return grouped
	}
	var s schema.Sample
	for j := 0; j < meshes.SamplesLength(); j++ {
		if !meshes.Samples(&s, j) {
			continue
		}
		item := int(s.Item())
		grouped[item] = append(grouped[item], Sample{
			SampleIndex:         len(grouped[item]),
			LocalTransformIndex: s.LocalTransform(),
			RepresentationIndex: s.Representation(),
			MaterialIndex:       s.Material(),
		})
	}
	return grouped
}

func globalTransform(meshes *schema.Meshes, item int) (geometry.RigidTransform, bool) {
	if meshes == nil || item >= meshes.MeshesItemsLength() {
		return geometry.RigidTransform{}, false
	}
	ti := int(meshes.MeshesItems(item))
	if ti >= meshes.GlobalTransformsLength() {
		return geometry.RigidTransform{}, false
	}
	var t schema.Transform
	meshes.GlobalTransforms(&t, ti)
	return geometry.DecodeTransform(transformRecord(&t)), true
}

func transformRecord(t *schema.Transform) geometry.TransformRecord {
	var pos schema.DoubleVector
	var fv schema.FloatVector
	t.Position(&pos)
	rec := geometry.TransformRecord{Position: math.Vec3{X: pos.X(), Y: pos.Y(), Z: pos.Z()}}
	rec.XDirection = vec3(t.XDirection(&fv))
	rec.YDirection = vec3(t.YDirection(&fv))
	return rec
}

func vec3(fv *schema.FloatVector) math.Vec3 {
	return math.Vec3{X: float64(fv.X()), Y: float64(fv.Y()), Z: float64(fv.Z())}
}
