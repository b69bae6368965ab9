// Package geometry reconstructs triangle meshes from Fragments shell profiles
// and circle extrusions, and decodes the format's transform records.
package geometry

import (
	"errors"
	"fmt"

	"github.com/Faultbox/fragments-go/pkg/math"
)

// Geometry errors. They are scoped to a single profile, part or sample.
var (
	ErrDegenerateProfile  = errors.New("degenerate profile")
	ErrTessellationFailed = errors.New("tessellation produced no vertices")
)

// Source-to-target conversion.
const (
	UnitScale           = 100.0 // meters -> centimeters
	DefaultSegmentCount = 16
	DedupEpsilon        = 0.001
)

// SkipError describes a loop, ring or part that was left out of a mesh.
type SkipError struct {
	Kind   string // "hole", "outer", "ring", "part"
	Index  int
	Reason string
}

func (e *SkipError) Error() string {
	return fmt.Sprintf("skipped %s %d: %s", e.Kind, e.Index, e.Reason)
}

// RemapAxis swaps the source Y and Z axes.
func RemapAxis(v math.Vec3) math.Vec3 {
	return math.Vec3{X: v.X, Y: v.Z, Z: v.Y}
}

// ToTarget converts a source-space point into target space.
func ToTarget(v math.Vec3) math.Vec3 {
	return RemapAxis(v).Scale(UnitScale)
}
