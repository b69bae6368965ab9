package preview

import (
	"image"
	"image/color"
	gomath "math"
)

// frameBuffer holds the render target as flat slices.
type frameBuffer struct {
	width  int
	height int
	color  []uint8   // RGBA interleaved, len = w*h*4
	depth  []float64 // per pixel, larger is closer, -inf when empty
}

func newFrameBuffer(w, h int, bg color.NRGBA) *frameBuffer {
	n := w * h
	fb := &frameBuffer{
		width:  w,
		height: h,
		color:  make([]uint8, n*4),
		depth:  make([]float64, n),
	}
	for i := 0; i < n; i++ {
		fb.depth[i] = gomath.Inf(-1)
		fb.color[i*4] = bg.R
		fb.color[i*4+1] = bg.G
		fb.color[i*4+2] = bg.B
		fb.color[i*4+3] = bg.A
	}
	return fb
}

func (fb *frameBuffer) image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fb.width, fb.height))
	copy(img.Pix, fb.color)
	return img
}
