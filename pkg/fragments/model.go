package fragments

import (
	"fmt"

	flatbuffers "github.com/google/flatbuffers/go"
	"go.uber.org/zap"

	"github.com/Faultbox/fragments-go/internal/logger"
	"github.com/Faultbox/fragments-go/pkg/fragments/schema"
)

// MaxTreeDepth bounds the spatial structure nesting accepted by Decode.
const MaxTreeDepth = 1024

// Model is a validated view over a decoded model buffer. Strings are copied
// out of the buffer only when an accessor is called.
type Model struct {
	buf  []byte
	root *schema.Model
	guid string

	items      int
	guidByItem []int // item index -> guids index, nil when guids is per item
}

// Decode parses and validates a decompressed model buffer.
//
// The buffer is retained; callers must not modify it while the model is in
// use. Structural problems, including offsets that point outside the buffer,
// are reported as ErrInvalidSchema.
func Decode(data []byte) (m *Model, err error) {
	defer func() {
		if r := recover(); r != nil {
			m = nil
			err = fmt.Errorf("%w: %v", ErrInvalidSchema, r)
		}
	}()

	if len(data) < flatbuffers.SizeUOffsetT+flatbuffers.SizeSOffsetT {
		return nil, fmt.Errorf("%w: buffer too short (%d bytes)", ErrInvalidSchema, len(data))
	}
	if err := checkRoot(data); err != nil {
		return nil, err
	}

	root := schema.GetRootAsModel(data, 0)
	guid := string(root.Guid())
	if guid == "" {
		return nil, fmt.Errorf("%w: model guid is missing", ErrInvalidSchema)
	}

	m = &Model{
		buf:   data,
		root:  root,
		guid:  guid,
		items: root.LocalIdsLength(),
	}
	if err := m.validate(); err != nil {
		return nil, err
	}

	logger.Debug("decoded model",
		zap.String("guid", guid),
		zap.Int("items", m.items),
		zap.Int("relations", root.RelationsLength()))
	return m, nil
}

// checkRoot verifies that the root table and its vtable lie inside data.
func checkRoot(data []byte) error {
	rootPos := int(flatbuffers.GetUOffsetT(data))
	if rootPos+flatbuffers.SizeSOffsetT > len(data) {
		return fmt.Errorf("%w: root offset %d out of bounds", ErrInvalidSchema, rootPos)
	}
	vtable := rootPos - int(flatbuffers.GetSOffsetT(data[rootPos:]))
	if vtable < 0 || vtable+2*flatbuffers.SizeVOffsetT > len(data) {
		return fmt.Errorf("%w: vtable offset %d out of bounds", ErrInvalidSchema, vtable)
	}
	if size := int(flatbuffers.GetVOffsetT(data[vtable:])); vtable+size > len(data) {
		return fmt.Errorf("%w: vtable size %d out of bounds", ErrInvalidSchema, size)
	}
	return nil
}

func (m *Model) validate() error {
	n := m.items
	perItem := []struct {
		name string
		size int
	}{
		{"categories", m.root.CategoriesLength()},
		{"attributes", m.root.AttributesLength()},
	}
	for _, f := range perItem {
		if f.size != 0 && f.size != n {
			return fmt.Errorf("%w: %s has %d entries, local_ids has %d", ErrInvalidSchema, f.name, f.size, n)
		}
	}

	guids, guidsItems := m.root.GuidsLength(), m.root.GuidsItemsLength()
	switch {
	case guidsItems == 0:
		if guids != 0 && guids != n {
			return fmt.Errorf("%w: guids has %d entries, local_ids has %d", ErrInvalidSchema, guids, n)
		}
	case guidsItems != guids:
		return fmt.Errorf("%w: guids_items has %d entries, guids has %d", ErrInvalidSchema, guidsItems, guids)
	default:
		m.guidByItem = make([]int, n)
		for i := range m.guidByItem {
			m.guidByItem[i] = -1
		}
		for k := 0; k < guidsItems; k++ {
			item := int(m.root.GuidsItems(k))
			if item >= n {
				return fmt.Errorf("%w: guids_items[%d] = %d out of range", ErrInvalidSchema, k, item)
			}
			m.guidByItem[item] = k
		}
	}

	if r, ri := m.root.RelationsLength(), m.root.RelationsItemsLength(); r != ri {
		return fmt.Errorf("%w: relations has %d entries, relations_items has %d", ErrInvalidSchema, r, ri)
	}

	// Touch every per-item string so a bad offset fails here, not later.
	for i := 0; i < n; i++ {
		m.root.LocalIds(i)
		m.Category(i)
		m.ItemGUID(i)
		m.RawAttributes(i)
	}
	for i := 0; i < m.root.RelationsLength(); i++ {
		m.RawRelation(i)
	}

	if node := m.root.SpatialStructure(nil); node != nil {
		if err := validateNode(node, 0); err != nil {
			return err
		}
	}
	if meshes := m.root.Meshes(nil); meshes != nil {
		touchMeshes(meshes)
	}
	return nil
}

// touchMeshes reads every element of the mesh bundle once. Out of bounds
// reads panic and are turned into ErrInvalidSchema by Decode.
func touchMeshes(mb *schema.Meshes) {
	var (
		sample schema.Sample
		rep    schema.Representation
		mat    schema.Material
		tr     schema.Transform
		shell  schema.Shell
		ce     schema.CircleExtrusion
	)
	for i := 0; i < mb.MeshesItemsLength(); i++ {
		mb.MeshesItems(i)
	}
	for i := 0; i < mb.SamplesLength(); i++ {
		mb.Samples(&sample, i)
		sample.LocalTransform()
	}
	for i := 0; i < mb.RepresentationsLength(); i++ {
		mb.Representations(&rep, i)
		rep.RepresentationClass()
	}
	for i := 0; i < mb.MaterialsLength(); i++ {
		mb.Materials(&mat, i)
		mat.Stroke()
	}
	for i := 0; i < mb.LocalTransformsLength(); i++ {
		mb.LocalTransforms(&tr, i)
		transformRecord(&tr)
	}
	for i := 0; i < mb.GlobalTransformsLength(); i++ {
		mb.GlobalTransforms(&tr, i)
		transformRecord(&tr)
	}
	for i := 0; i < mb.ShellsLength(); i++ {
		mb.Shells(&shell, i)
		touchShell(&shell)
	}
	for i := 0; i < mb.CircleExtrusionsLength(); i++ {
		mb.CircleExtrusions(&ce, i)
		touchExtrusion(&ce)
	}
}

func touchShell(shell *schema.Shell) {
	var (
		fv      schema.FloatVector
		profile schema.ShellProfile
		hole    schema.ShellHole
	)
	for i := 0; i < shell.PointsLength(); i++ {
		shell.Points(&fv, i)
		vec3(&fv)
	}
	for i := 0; i < shell.ProfilesLength(); i++ {
		shell.Profiles(&profile, i)
		for j := 0; j < profile.IndicesLength(); j++ {
			profile.Indices(j)
		}
	}
	for i := 0; i < shell.HolesLength(); i++ {
		shell.Holes(&hole, i)
		holeIndices(&hole)
		hole.ProfileId()
	}
}

func touchExtrusion(ce *schema.CircleExtrusion) {
	var axis schema.Axis
	for i := 0; i < ce.RadiusLength(); i++ {
		ce.Radius(i)
	}
	for i := 0; i < ce.AxesLength(); i++ {
		ce.Axes(&axis, i)
		axisFrom(&axis, 0)
	}
}

func validateNode(node *schema.SpatialStructure, depth int) error {
	if depth > MaxTreeDepth {
		return fmt.Errorf("%w: spatial structure deeper than %d", ErrInvalidSchema, MaxTreeDepth)
	}
	node.LocalId()
	node.Category()
	var child schema.SpatialStructure
	for i := 0; i < node.ChildrenLength(); i++ {
		if !node.Children(&child, i) {
			continue
		}
		if err := validateNode(&child, depth+1); err != nil {
			return err
		}
	}
	return nil
}

// GUID returns the model guid.
func (m *Model) GUID() string { return m.guid }

// Metadata returns the free-form metadata string, usually JSON.
func (m *Model) Metadata() string { return string(m.root.Metadata()) }

// Len returns the number of items.
func (m *Model) Len() int { return m.items }

// MaxLocalID returns the largest local id the writer assigned.
func (m *Model) MaxLocalID() uint32 { return m.root.MaxLocalId() }

// LocalID returns the local id of item i.
func (m *Model) LocalID(i int) int32 { return m.root.LocalIds(i) }

// Category returns the category of item i, or "" if the model has none.
func (m *Model) Category(i int) string {
	if i < 0 || i >= m.root.CategoriesLength() {
		return ""
	}
	return string(m.root.Categories(i))
}

// ItemGUID returns the guid of item i, or "" if it has none.
func (m *Model) ItemGUID(i int) string {
	k := i
	if m.guidByItem != nil {
		if i < 0 || i >= len(m.guidByItem) {
			return ""
		}
		k = m.guidByItem[i]
	}
	if k < 0 || k >= m.root.GuidsLength() {
		return ""
	}
	return string(m.root.Guids(k))
}

// RawAttributes returns the unparsed attribute strings of item i.
func (m *Model) RawAttributes(i int) []string {
	if i < 0 || i >= m.root.AttributesLength() {
		return nil
	}
	var attr schema.Attribute
	if !m.root.Attributes(&attr, i) {
		return nil
	}
	out := make([]string, attr.DataLength())
	for j := range out {
		out[j] = string(attr.Data(j))
	}
	return out
}

// RelationCount returns the number of relation records.
func (m *Model) RelationCount() int { return m.root.RelationsLength() }

// RelationOwner returns the item index that owns relation record r.
func (m *Model) RelationOwner(r int) int { return int(m.root.RelationsItems(r)) }

// RawRelation returns the unparsed strings of relation record r.
func (m *Model) RawRelation(r int) []string {
	var rel schema.Relation
	if !m.root.Relations(&rel, r) {
		return nil
	}
	out := make([]string, rel.DataLength())
	for j := range out {
		out[j] = string(rel.Data(j))
	}
	return out
}

// IndexOf returns the item index of localID by linear scan. Local ids are
// not sorted, so callers doing repeated lookups should use Index instead.
func (m *Model) IndexOf(localID int32) (int, bool) {
	for i := 0; i < m.items; i++ {
		if m.root.LocalIds(i) == localID {
			return i, true
		}
	}
	return -1, false
}

// Index builds a local id -> item index map. The first occurrence wins for
// duplicated ids, matching IndexOf.
func (m *Model) Index() map[int32]int {
	index := make(map[int32]int, m.items)
	for i := m.items - 1; i >= 0; i-- {
		index[m.root.LocalIds(i)] = i
	}
	return index
}

// Schema exposes the underlying table view.
func (m *Model) Schema() *schema.Model { return m.root }

// Meshes returns the mesh bundle, or nil if the model has no geometry.
func (m *Model) Meshes() *schema.Meshes { return m.root.Meshes(nil) }

// SpatialRoot returns the root of the spatial structure, or nil.
func (m *Model) SpatialRoot() *schema.SpatialStructure { return m.root.SpatialStructure(nil) }

// Size returns the length of the decoded buffer.
func (m *Model) Size() int { return len(m.buf) }
