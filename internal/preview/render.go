// Package preview renders reconstructed item meshes into small shaded
// images for inspection.
package preview

import (
	"image"
	"image/color"
	gomath "math"
	"slices"

	"go.uber.org/zap"

	"github.com/Faultbox/fragments-go/internal/config"
	"github.com/Faultbox/fragments-go/internal/logger"
	"github.com/Faultbox/fragments-go/pkg/fragments"
	"github.com/Faultbox/fragments-go/pkg/math"
)

// Options controls Render.
type Options struct {
	Width       int
	Height      int
	Supersample int
	Yaw         float64 // Degrees around the up axis
	Pitch       float64 // Degrees above the horizon
	Background  color.NRGBA
}

const (
	defaultSize = 512
	margin      = 8 // Output pixels kept free around the model

	ambient = 0.35
	direct  = 0.65
)

var lightDir = math.Vec3{X: -0.35, Y: -0.75, Z: 0.55}.Normalize()

// OptionsFromConfig converts the preview section of the configuration.
func OptionsFromConfig(cfg config.PreviewConfig) (Options, error) {
	bg, err := ParseColor(cfg.Background)
	if err != nil {
		return Options{}, err
	}
	return Options{
		Width:       cfg.Width,
		Height:      cfg.Height,
		Supersample: cfg.Supersample,
		Yaw:         cfg.Yaw,
		Pitch:       cfg.Pitch,
		Background:  bg,
	}, nil
}

func (o Options) normalized() Options {
	if o.Width <= 0 {
		o.Width = defaultSize
	}
	if o.Height <= 0 {
		o.Height = defaultSize
	}
	if o.Supersample < 1 {
		o.Supersample = 1
	}
	return o
}

type viewMesh struct {
	verts    []math.Vec3
	tris     [][3]uint32
	material fragments.Material
}

// Render draws meshes, placed by their transforms, with an orthographic
// camera fitted to their bounds. Opaque meshes are drawn before transparent
// ones.
func Render(meshes []fragments.ItemMesh, opts Options) *image.NRGBA {
	opts = opts.normalized()
	w, h := opts.Width*opts.Supersample, opts.Height*opts.Supersample
	fb := newFrameBuffer(w, h, opts.Background)

	view := math.RotateX(opts.Pitch * gomath.Pi / 180).Mul(math.RotateZ(opts.Yaw * gomath.Pi / 180))

	lo := math.Vec3{X: gomath.Inf(1), Y: gomath.Inf(1), Z: gomath.Inf(1)}
	hi := math.Vec3{X: gomath.Inf(-1), Y: gomath.Inf(-1), Z: gomath.Inf(-1)}
	scene := make([]viewMesh, 0, len(meshes))
	for _, m := range meshes {
		if m.Mesh.IsEmpty() {
			continue
		}
		placed := m.Placed()
		verts := make([]math.Vec3, len(placed.Vertices))
		for i, v := range placed.Vertices {
			p := view.TransformPoint(v)
			verts[i] = p
			lo = math.Vec3{X: gomath.Min(lo.X, p.X), Y: gomath.Min(lo.Y, p.Y), Z: gomath.Min(lo.Z, p.Z)}
			hi = math.Vec3{X: gomath.Max(hi.X, p.X), Y: gomath.Max(hi.Y, p.Y), Z: gomath.Max(hi.Z, p.Z)}
		}
		scene = append(scene, viewMesh{verts: verts, tris: placed.Triangles, material: m.Material})
	}
	if len(scene) == 0 {
		return downsample(fb.image(), opts.Width, opts.Height)
	}

	slices.SortStableFunc(scene, func(a, b viewMesh) int {
		switch {
		case a.material.IsTransparent() == b.material.IsTransparent():
			return 0
		case a.material.IsTransparent():
			return 1
		default:
			return -1
		}
	})

	pad := float64(2 * margin * opts.Supersample)
	scale := gomath.Min(
		(float64(w)-pad)/gomath.Max(hi.X-lo.X, 1e-3),
		(float64(h)-pad)/gomath.Max(hi.Z-lo.Z, 1e-3))
	if scale <= 0 {
		scale = 1
	}
	cx, cz := (lo.X+hi.X)/2, (lo.Z+hi.Z)/2

	triangles := 0
	for _, vm := range scene {
		n := len(vm.verts)
		px := make([]float64, n)
		py := make([]float64, n)
		pz := make([]float64, n)
		for i, v := range vm.verts {
			px[i] = float64(w)/2 + (v.X-cx)*scale
			py[i] = float64(h)/2 - (v.Z-cz)*scale
			pz[i] = -v.Y
		}
		for _, tri := range vm.tris {
			rasterize(fb, vm.verts, px, py, pz, tri, vm.material)
		}
		triangles += len(vm.tris)
	}

	logger.Debug("rendered preview",
		zap.Int("meshes", len(scene)),
		zap.Int("triangles", triangles),
		zap.Int("width", w),
		zap.Int("height", h))

	return downsample(fb.image(), opts.Width, opts.Height)
}

// rasterize fills one flat-shaded triangle. Opaque pixels write depth;
// transparent ones blend over what is there and leave depth untouched.
func rasterize(fb *frameBuffer, view []math.Vec3, px, py, pz []float64, tri [3]uint32, mat fragments.Material) {
	n := len(px)
	for _, i := range tri {
		if int(i) >= n {
			return
		}
	}
	if mat.Color.A == 0 {
		return
	}
	a, b, c := tri[0], tri[1], tri[2]

	normal := view[b].Sub(view[a]).Cross(view[c].Sub(view[a]))
	if normal.Length() < 1e-12 {
		return
	}
	shade := ambient + direct*gomath.Abs(normal.Normalize().Dot(lightDir))
	cr := clamp8(float64(mat.Color.R) * shade)
	cg := clamp8(float64(mat.Color.G) * shade)
	cb := clamp8(float64(mat.Color.B) * shade)
	ca := mat.Color.A

	x0, y0, z0 := px[a], py[a], pz[a]
	x1, y1, z1 := px[b], py[b], pz[b]
	x2, y2, z2 := px[c], py[c], pz[c]

	minX := max(int(gomath.Floor(gomath.Min(gomath.Min(x0, x1), x2))), 0)
	maxX := min(int(gomath.Ceil(gomath.Max(gomath.Max(x0, x1), x2))), fb.width-1)
	minY := max(int(gomath.Floor(gomath.Min(gomath.Min(y0, y1), y2))), 0)
	maxY := min(int(gomath.Ceil(gomath.Max(gomath.Max(y0, y1), y2))), fb.height-1)
	if minX > maxX || minY > maxY {
		return
	}

	det := (y1-y2)*(x0-x2) + (x2-x1)*(y0-y2)
	if gomath.Abs(det) < 1e-12 {
		return
	}
	invDet := 1.0 / det

	dy12 := y1 - y2
	dx21 := x2 - x1
	dy20 := y2 - y0
	dx02 := x0 - x2

	for sy := minY; sy <= maxY; sy++ {
		dsy := float64(sy) + 0.5 - y2
		row := sy * fb.width
		for sx := minX; sx <= maxX; sx++ {
			dsx := float64(sx) + 0.5 - x2
			w0 := (dy12*dsx + dx21*dsy) * invDet
			w1 := (dy20*dsx + dx02*dsy) * invDet
			w2 := 1.0 - w0 - w1
			if w0 < -1e-6 || w1 < -1e-6 || w2 < -1e-6 {
				continue
			}

			z := w0*z0 + w1*z1 + w2*z2
			i := row + sx
			if z <= fb.depth[i] {
				continue
			}

			p := i * 4
			if ca == 255 {
				fb.depth[i] = z
				fb.color[p] = cr
				fb.color[p+1] = cg
				fb.color[p+2] = cb
				fb.color[p+3] = 255
				continue
			}
			blend(fb.color[p:p+4], cr, cg, cb, ca)
		}
	}
}

// blend composites a non-premultiplied source over dst in place.
func blend(dst []uint8, r, g, b, a uint8) {
	sa := float64(a) / 255
	da := float64(dst[3]) / 255
	oa := sa + da*(1-sa)
	if oa <= 0 {
		return
	}
	mix := func(s, d uint8) uint8 {
		return clamp8((float64(s)*sa + float64(d)*da*(1-sa)) / oa)
	}
	dst[0] = mix(r, dst[0])
	dst[1] = mix(g, dst[1])
	dst[2] = mix(b, dst[2])
	dst[3] = clamp8(oa * 255)
}
