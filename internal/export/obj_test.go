package export

import (
	"bytes"
	"errors"
	"image/color"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/fragments-go/pkg/fragments"
	"github.com/Faultbox/fragments-go/pkg/geometry"
	"github.com/Faultbox/fragments-go/pkg/math"
)

func triangle() *geometry.Mesh {
	return &geometry.Mesh{
		Vertices:  []math.Vec3{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}},
		Triangles: [][3]uint32{{0, 1, 2}},
	}
}

func meshAt(localID int32, sample int, x float64, c color.NRGBA) fragments.ItemMesh {
	global := geometry.IdentityTransform()
	global.Translation = math.Vec3{X: x}
	return fragments.ItemMesh{
		LocalID:         localID,
		SampleIndex:     sample,
		Mesh:            triangle(),
		Material:        fragments.Material{Color: c},
		LocalTransform:  geometry.IdentityTransform(),
		GlobalTransform: global,
	}
}

func TestWriteOBJ(t *testing.T) {
	red := color.NRGBA{R: 255, A: 255}
	meshes := []fragments.ItemMesh{
		meshAt(7, 0, 0, red),
		{LocalID: 8}, // nothing built
		meshAt(9, 1, 10, red),
	}

	var buf bytes.Buffer
	st, err := WriteOBJ(&buf, "model.mtl", meshes)
	require.NoError(t, err)
	assert.Equal(t, Stats{Objects: 2, Vertices: 6, Faces: 2}, st)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	var faces, objects []string
	for _, l := range lines {
		switch {
		case strings.HasPrefix(l, "f "):
			faces = append(faces, l)
		case strings.HasPrefix(l, "o "):
			objects = append(objects, l)
		}
	}
	assert.Equal(t, []string{"f 1 2 3", "f 4 5 6"}, faces)
	assert.Equal(t, []string{"o sample_7_0", "o sample_9_1"}, objects)
	assert.Contains(t, buf.String(), "mtllib model.mtl\n")
	assert.Contains(t, buf.String(), "usemtl mat_ff0000ff\n")
	assert.Contains(t, buf.String(), "v 11 0 0\n")
}

func TestWriteMTL(t *testing.T) {
	meshes := []fragments.ItemMesh{
		meshAt(1, 0, 0, color.NRGBA{R: 255, A: 255}),
		meshAt(2, 0, 0, color.NRGBA{R: 255, A: 255}),
		meshAt(3, 0, 0, color.NRGBA{G: 255, A: 51}),
	}

	var buf bytes.Buffer
	require.NoError(t, WriteMTL(&buf, meshes))

	out := buf.String()
	assert.Equal(t, 2, strings.Count(out, "newmtl "))
	assert.Contains(t, out, "newmtl mat_ff0000ff\nKd 1 0 0\nd 1\n")
	assert.Contains(t, out, "newmtl mat_00ff0033\nKd 0 1 0\nd 0.2\n")
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteOBJError(t *testing.T) {
	_, err := WriteOBJ(failWriter{}, "", []fragments.ItemMesh{meshAt(1, 0, 0, color.NRGBA{A: 255})})
	assert.ErrorContains(t, err, "disk full")
}
