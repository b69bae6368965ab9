// Package fragments loads Fragments model files and rebuilds their item
// hierarchy, attributes and meshes.
//
// A load runs Decompress, Decode, BuildItemTree and AttachItemData in that
// order and returns a Handle. Meshes are only built on request through
// Handle.ReconstructGeometry.
package fragments

import (
	"errors"

	"github.com/Faultbox/fragments-go/pkg/geometry"
)

// Decode errors. Any of them fails the whole load.
var (
	ErrCorrupt       = errors.New("corrupt compressed stream")
	ErrInvalidSchema = errors.New("invalid model schema")
	ErrIO            = errors.New("reading model")
)

// Geometry errors are scoped to one sample and never fail a load.
var (
	ErrMissingReference   = errors.New("missing mesh reference")
	ErrEmptyMesh          = errors.New("sample produced no triangles")
	ErrDegenerateProfile  = geometry.ErrDegenerateProfile
	ErrTessellationFailed = geometry.ErrTessellationFailed
)

// Registry and handle errors.
var (
	ErrModelNotLoaded = errors.New("model not loaded")
	ErrHandleClosed   = errors.New("handle closed")
)
