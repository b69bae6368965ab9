package fragments

import (
	"bytes"
	"testing"

	"github.com/klauspost/compress/zlib"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/fragments-go/pkg/fragments/schema"
)

const testModelGUID = "2f1c-model"

func localID(v int32) *int32 { return &v }

func identityTransform() schema.TransformT {
	return schema.TransformT{
		XDirection: schema.FloatVectorT{X: 1},
		YDirection: schema.FloatVectorT{Y: 1},
	}
}

func translated(x, y, z float64) schema.TransformT {
	t := identityTransform()
	t.Position = schema.DoubleVectorT{X: x, Y: y, Z: z}
	return t
}

// cubeShell is a unit cube with one quad profile per face.
func cubeShell() *schema.ShellT {
	return &schema.ShellT{
		Points: []schema.FloatVectorT{
			{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 0}, {X: 0, Y: 1, Z: 0},
			{X: 0, Y: 0, Z: 1}, {X: 1, Y: 0, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: 0, Y: 1, Z: 1},
		},
		Profiles: []*schema.ShellProfileT{
			{Indices: []uint16{0, 3, 2, 1}},
			{Indices: []uint16{4, 5, 6, 7}},
			{Indices: []uint16{0, 1, 5, 4}},
			{Indices: []uint16{1, 2, 6, 5}},
			{Indices: []uint16{2, 3, 7, 6}},
			{Indices: []uint16{3, 0, 4, 7}},
		},
	}
}

// cubeModel is one wall item with a single cube shell sample.
func cubeModel() *schema.ModelT {
	return &schema.ModelT{
		Guid:       testModelGUID,
		Metadata:   `{"schema":"IFC4"}`,
		LocalIds:   []int32{7},
		MaxLocalId: 7,
		Categories: []string{"IFCWALL"},
		Guids:      []string{"wall-guid"},
		Attributes: [][]string{{`["Name","Basic Wall",1234]`}},
		Relations:  [][]string{},
		SpatialStructure: &schema.SpatialStructureT{
			Children: []*schema.SpatialStructureT{
				{Category: "IFCBUILDINGSTOREY", Children: []*schema.SpatialStructureT{
					{LocalId: localID(7), Category: "IFCWALL"},
				}},
			},
		},
		Meshes: &schema.MeshesT{
			MeshesItems:      []uint32{0},
			Samples:          []schema.SampleT{{Item: 0, Material: 0, Representation: 0, LocalTransform: 0}},
			Representations:  []schema.RepresentationT{{Id: 0, Max: schema.FloatVectorT{X: 1, Y: 1, Z: 1}, RepresentationClass: schema.RepresentationClassSHELL}},
			Materials:        []schema.MaterialT{{R: 200, G: 180, B: 160, A: 255}},
			Shells:           []*schema.ShellT{cubeShell()},
			LocalTransforms:  []schema.TransformT{identityTransform()},
			GlobalTransforms: []schema.TransformT{identityTransform()},
		},
	}
}

func compress(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := zlib.NewWriter(&buf)
	_, err := w.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func loadModel(t *testing.T, m *schema.ModelT) *Handle {
	t.Helper()
	h, err := Load(compress(t, m.Finish()))
	require.NoError(t, err)
	return h
}

func decodeModel(t *testing.T, m *schema.ModelT) *Model {
	t.Helper()
	model, err := Decode(m.Finish())
	require.NoError(t, err)
	return model
}
