package fragments

import (
	"fmt"
	"image/color"

	"github.com/Faultbox/fragments-go/pkg/fragments/schema"
)

// Material is the surface description shared by every triangle of a sample.
type Material struct {
	Color       color.NRGBA
	DoubleSided bool
	Stroke      schema.Stroke
}

func materialFrom(m *schema.Material) Material {
	return Material{
		Color:       color.NRGBA{R: m.R(), G: m.G(), B: m.B(), A: m.A()},
		DoubleSided: m.RenderedFaces() == schema.RenderedFacesTWO,
		Stroke:      m.Stroke(),
	}
}

// IsTransparent reports whether the material needs a blended surface.
func (m Material) IsTransparent() bool {
	return m.Color.A < 0xff
}

// Normalized returns the color channels scaled to [0, 1].
func (m Material) Normalized() (r, g, b, a float64) {
	return float64(m.Color.R) / 255, float64(m.Color.G) / 255, float64(m.Color.B) / 255, float64(m.Color.A) / 255
}

// Name returns a stable identifier derived from the color, suitable for
// material libraries.
func (m Material) Name() string {
	return fmt.Sprintf("mat_%02x%02x%02x%02x", m.Color.R, m.Color.G, m.Color.B, m.Color.A)
}
