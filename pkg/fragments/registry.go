package fragments

import (
	"context"
	"fmt"
	"os"
	"slices"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/Faultbox/fragments-go/internal/logger"
)

// Options configures loading and reconstruction.
type Options struct {
	ChunkSize int // Inflate chunk in bytes, DefaultChunkSize when <= 0
	Segments  int // Tube ring resolution
	Workers   int // Parallel samples during reconstruction
}

// Handle is one loaded model and its item tree. Closing it drops the model
// and tree; accessors then return zero values.
type Handle struct {
	guid string

	mu       sync.RWMutex
	model    *Model
	root     *FragmentItem
	recon    *Reconstructor
	registry *Registry
}

// Load decompresses, decodes and builds the item tree of one model without
// registering it anywhere. Meshes are not built.
func Load(data []byte) (*Handle, error) {
	return LoadWithOptions(data, Options{})
}

// LoadWithOptions is Load with explicit options.
func LoadWithOptions(data []byte, opts Options) (*Handle, error) {
	raw, err := DecompressChunked(data, opts.ChunkSize)
	if err != nil {
		return nil, err
	}
	model, err := Decode(raw)
	if err != nil {
		return nil, err
	}

	root := BuildItemTree(model)
	AttachItemData(model, root)

	h := &Handle{
		guid:  model.GUID(),
		model: model,
		root:  root,
		recon: NewReconstructor(model, ReconstructOptions{Segments: opts.Segments, Workers: opts.Workers}),
	}
	logger.Info("loaded model",
		zap.String("guid", model.GUID()),
		zap.Int("items", model.Len()),
		zap.Int("treeItems", root.Count()-1))
	return h, nil
}

// GUID returns the model guid. It stays valid after Close.
func (h *Handle) GUID() string { return h.guid }

func (h *Handle) state() (*Model, *FragmentItem, *Reconstructor) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.model, h.root, h.recon
}

// Model returns the decoded model, or nil once closed.
func (h *Handle) Model() *Model {
	m, _, _ := h.state()
	return m
}

// Root returns the item standing for the whole model, or nil once closed.
func (h *Handle) Root() *FragmentItem {
	_, root, _ := h.state()
	return root
}

// FindItem returns the materialized item with localID, or nil.
func (h *Handle) FindItem(localID int32) *FragmentItem {
	_, root, _ := h.state()
	if root == nil {
		return nil
	}
	return root.Find(localID)
}

// ItemsByCategory returns the local ids of every item whose category equals
// category, ignoring case, in item order.
func (h *Handle) ItemsByCategory(category string) []int32 {
	m, _, _ := h.state()
	if m == nil {
		return nil
	}
	var ids []int32
	for i := 0; i < m.Len(); i++ {
		if strings.EqualFold(m.Category(i), category) {
			ids = append(ids, m.LocalID(i))
		}
	}
	return ids
}

// Categories returns the distinct non-empty categories in item order.
func (h *Handle) Categories() []string {
	m, _, _ := h.state()
	if m == nil {
		return nil
	}
	seen := make(map[string]bool)
	var out []string
	for i := 0; i < m.Len(); i++ {
		c := m.Category(i)
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}

// ResolveAttributes returns the parsed attributes of the item with localID,
// or nil if no such item exists.
func (h *Handle) ResolveAttributes(localID int32) []Attribute {
	m, _, _ := h.state()
	if m == nil {
		return nil
	}
	i, ok := m.IndexOf(localID)
	if !ok {
		return nil
	}
	return ParseAttribute(m.RawAttributes(i))
}

// ResolveRelations returns the parsed relations owned by the item with
// localID.
func (h *Handle) ResolveRelations(localID int32) []Relation {
	m, _, _ := h.state()
	if m == nil {
		return nil
	}
	i, ok := m.IndexOf(localID)
	if !ok {
		return nil
	}
	var out []Relation
	for r := 0; r < m.RelationCount(); r++ {
		if m.RelationOwner(r) == i {
			out = append(out, ParseRelations(m.RawRelation(r))...)
		}
	}
	return out
}

// ResolvePropertyClosure returns the attributes reachable from localID
// through property relations.
func (h *Handle) ResolvePropertyClosure(localID int32) []Attribute {
	m, _, _ := h.state()
	if m == nil {
		return nil
	}
	return CollectPropertyClosure(m, localID)
}

// ReconstructGeometry builds the meshes of item and its descendants.
func (h *Handle) ReconstructGeometry(item *FragmentItem, cache *MeshCache) ([]ItemMesh, error) {
	return h.ReconstructGeometryContext(context.Background(), item, cache)
}

// ReconstructGeometryContext is ReconstructGeometry with a context that
// stops scheduling further samples once done.
func (h *Handle) ReconstructGeometryContext(ctx context.Context, item *FragmentItem, cache *MeshCache) ([]ItemMesh, error) {
	_, root, recon := h.state()
	if recon == nil {
		return nil, fmt.Errorf("%w: %s", ErrHandleClosed, h.guid)
	}
	if item == nil {
		item = root
	}
	return recon.Reconstruct(ctx, item, cache)
}

// Close removes the handle from its registry, if any, and drops the model.
// It is safe to call more than once and concurrently with Registry.Unload.
func (h *Handle) Close() error {
	h.mu.Lock()
	r := h.registry
	h.registry = nil
	h.mu.Unlock()

	if r != nil {
		r.remove(h)
	}
	h.release()
	return nil
}

// detach clears the registry link.
func (h *Handle) detach() {
	h.mu.Lock()
	h.registry = nil
	h.mu.Unlock()
}

func (h *Handle) release() {
	h.mu.Lock()
	h.model, h.root, h.recon = nil, nil, nil
	h.mu.Unlock()
}

// Registry keeps loaded models by guid. It is safe for concurrent use; each
// load itself runs synchronously.
type Registry struct {
	mu      sync.RWMutex
	opts    Options
	handles map[string]*Handle
}

// NewRegistry returns an empty registry whose loads use opts.
func NewRegistry(opts Options) *Registry {
	return &Registry{
		opts:    opts,
		handles: make(map[string]*Handle),
	}
}

// Load loads a model from memory and registers it. A model with the same
// guid is replaced.
func (r *Registry) Load(data []byte) (*Handle, error) {
	h, err := LoadWithOptions(data, r.opts)
	if err != nil {
		return nil, err
	}
	h.registry = r

	r.mu.Lock()
	defer r.mu.Unlock()
	if old, ok := r.handles[h.GUID()]; ok {
		old.detach()
		logger.Info("replacing model", zap.String("guid", h.GUID()))
	}
	r.handles[h.GUID()] = h
	return h, nil
}

// LoadFile reads path and loads it.
func (r *Registry) LoadFile(path string) (*Handle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIO, err)
	}
	return r.Load(data)
}

// Get returns the handle of a loaded model.
func (r *Registry) Get(guid string) (*Handle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.handles[guid]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrModelNotLoaded, guid)
	}
	return h, nil
}

// Unload removes a model and drops its data. It reports whether the model
// was loaded.
func (r *Registry) Unload(guid string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	h, ok := r.handles[guid]
	if !ok {
		return false
	}
	delete(r.handles, guid)
	h.detach()
	h.release()
	logger.Debug("unloaded model", zap.String("guid", guid))
	return true
}

// Guids returns the guids of every loaded model, sorted.
func (r *Registry) Guids() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	guids := make([]string, 0, len(r.handles))
	for g := range r.handles {
		guids = append(guids, g)
	}
	slices.Sort(guids)
	return guids
}

// Len returns the number of loaded models.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.handles)
}

func (r *Registry) remove(h *Handle) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.handles[h.GUID()] == h {
		delete(r.handles, h.GUID())
	}
}
