// Package export writes reconstructed meshes to interchange formats.
package export

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/Faultbox/fragments-go/pkg/fragments"
)

// Stats summarizes what WriteOBJ emitted.
type Stats struct {
	Objects  int
	Vertices int
	Faces    int
}

// ObjectName names the OBJ group of one item mesh.
func ObjectName(m fragments.ItemMesh) string {
	return "sample_" + strconv.Itoa(int(m.LocalID)) + "_" + strconv.Itoa(m.SampleIndex)
}

// WriteOBJ writes meshes as Wavefront OBJ, each placed by its transforms,
// one object per item mesh. mtllib may be empty. Coordinates stay Z-up in
// centimeters.
func WriteOBJ(w io.Writer, mtllib string, meshes []fragments.ItemMesh) (Stats, error) {
	var st Stats
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "# fragments-go export, Z up, centimeters")
	if mtllib != "" {
		fmt.Fprintf(bw, "mtllib %s\n", mtllib)
	}

	base := 1
	for _, m := range meshes {
		if m.Mesh.IsEmpty() {
			continue
		}
		placed := m.Placed()

		fmt.Fprintf(bw, "o %s\n", ObjectName(m))
		fmt.Fprintf(bw, "usemtl %s\n", m.Material.Name())
		for _, v := range placed.Vertices {
			fmt.Fprintf(bw, "v %s %s %s\n", num(v.X), num(v.Y), num(v.Z))
		}
		for _, t := range placed.Triangles {
			fmt.Fprintf(bw, "f %d %d %d\n", base+int(t[0]), base+int(t[1]), base+int(t[2]))
		}

		base += len(placed.Vertices)
		st.Objects++
		st.Vertices += len(placed.Vertices)
		st.Faces += len(placed.Triangles)
	}

	if err := bw.Flush(); err != nil {
		return st, fmt.Errorf("write obj: %w", err)
	}
	return st, nil
}

// WriteMTL writes one material per distinct color used by meshes, in first
// use order.
func WriteMTL(w io.Writer, meshes []fragments.ItemMesh) error {
	bw := bufio.NewWriter(w)
	seen := make(map[string]bool)
	for _, m := range meshes {
		if m.Mesh.IsEmpty() {
			continue
		}
		name := m.Material.Name()
		if seen[name] {
			continue
		}
		seen[name] = true

		r, g, b, a := m.Material.Normalized()
		fmt.Fprintf(bw, "newmtl %s\n", name)
		fmt.Fprintf(bw, "Kd %s %s %s\n", num(r), num(g), num(b))
		fmt.Fprintf(bw, "d %s\n\n", num(a))
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write mtl: %w", err)
	}
	return nil
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
