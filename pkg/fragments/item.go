package fragments

import "github.com/Faultbox/fragments-go/pkg/geometry"

// RootLocalID is the local id of the item standing for the model itself.
const RootLocalID int32 = -1

// Sample attaches one geometric instance to an item. SampleIndex is the
// ordinal of the sample within its item.
type Sample struct {
	SampleIndex         int
	LocalTransformIndex uint32
	RepresentationIndex uint32
	MaterialIndex       uint32
}

// FragmentItem is one materialized node of the item hierarchy. Children are
// owned by their parent; there are no back references.
type FragmentItem struct {
	ModelGUID       string
	LocalID         int32
	Category        string
	GUID            string
	Attributes      []Attribute
	Samples         []Sample
	GlobalTransform geometry.RigidTransform
	Children        []*FragmentItem

	itemIndex int // -1 until AttachItemData resolves it
}

// ItemIndex returns the index of the item in the model's per-item arrays,
// or -1 if it has none.
func (f *FragmentItem) ItemIndex() int { return f.itemIndex }

// IsRoot reports whether f stands for the model itself.
func (f *FragmentItem) IsRoot() bool { return f.LocalID == RootLocalID }

// Find returns the first item with localID in depth-first order.
func (f *FragmentItem) Find(localID int32) *FragmentItem {
	if f.LocalID == localID {
		return f
	}
	for _, child := range f.Children {
		if found := child.Find(localID); found != nil {
			return found
		}
	}
	return nil
}

// Walk calls fn for f and its descendants in depth-first order. Returning
// false from fn skips that item's children.
func (f *FragmentItem) Walk(fn func(item *FragmentItem, depth int) bool) {
	f.walk(fn, 0)
}

func (f *FragmentItem) walk(fn func(*FragmentItem, int) bool, depth int) {
	if !fn(f, depth) {
		return
	}
	for _, child := range f.Children {
		child.walk(fn, depth+1)
	}
}

// Count returns the number of items in the subtree rooted at f.
func (f *FragmentItem) Count() int {
	n := 0
	f.Walk(func(*FragmentItem, int) bool {
		n++
		return true
	})
	return n
}

// Attribute returns the value of the first attribute named key.
func (f *FragmentItem) Attribute(key string) (string, bool) {
	for _, a := range f.Attributes {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}
