// fragtool is a CLI utility for inspecting Fragments models.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/Faultbox/fragments-go/internal/config"
	"github.com/Faultbox/fragments-go/internal/export"
	"github.com/Faultbox/fragments-go/internal/logger"
	"github.com/Faultbox/fragments-go/internal/preview"
	"github.com/Faultbox/fragments-go/pkg/fragments"
)

var cfg *config.Config

func main() {
	config.ParseFlags()

	var err error
	cfg, err = config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	args := config.Args()
	if len(args) < 1 {
		printUsage()
		os.Exit(1)
	}

	command := args[0]
	args = args[1:]

	switch command {
	case "info":
		cmdInfo(args)
	case "tree":
		cmdTree(args)
	case "attrs":
		cmdAttrs(args)
	case "props":
		cmdProps(args)
	case "category", "cat":
		cmdCategory(args)
	case "export":
		cmdExport(args)
	case "preview":
		cmdPreview(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`fragtool - Fragments model utility

Usage:
  fragtool [global options] <command> [options]

Commands:
  info <file.frag>                      Show model information
  tree <file.frag>                      Print the spatial item tree
  attrs <file.frag> <localId>           Show attributes and relations of an item
  props <file.frag> <localId>           Show attributes reachable through property relations
  category <file.frag> <category>       List items of a category
  export <file.frag> [output.obj]       Export placed meshes as OBJ + MTL
  preview <file.frag> [output.webp]     Render a shaded WebP preview

Global options:
  -config <path>   Config file
  -debug           Debug logging
  -log <path>      Log file
  -log-json        Log JSON lines
  -workers <n>     Geometry workers
  -segments <n>    Tube cross-section segments
  -no-cache        Disable the mesh cache
  -width, -height  Preview size

Examples:
  fragtool info model.frag
  fragtool tree -depth 3 model.frag
  fragtool category model.frag IFCWALL
  fragtool export -id 186 model.frag wall.obj
  fragtool -width 1024 preview model.frag`)
}

func loadModel(path string) *fragments.Handle {
	reg := fragments.NewRegistry(fragments.Options{
		ChunkSize: cfg.Decode.ChunkSize(),
		Segments:  cfg.Geometry.SegmentCount,
		Workers:   cfg.Geometry.Workers,
	})
	h, err := reg.LoadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return h
}

func parseLocalID(s string) int32 {
	id, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid local id: %s\n", s)
		os.Exit(1)
	}
	return int32(id)
}

func cmdInfo(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: fragtool info <file.frag>")
		os.Exit(1)
	}

	h := loadModel(args[0])
	defer h.Close()
	m := h.Model()

	fmt.Printf("Model:     %s\n", h.GUID())
	fmt.Printf("Size:      %.2f MB (decompressed)\n", float64(m.Size())/(1024*1024))
	fmt.Printf("Items:     %d (max local id %d)\n", m.Len(), m.MaxLocalID())
	fmt.Printf("Tree:      %d items\n", h.Root().Count()-1)
	fmt.Printf("Relations: %d\n", m.RelationCount())
	if md := m.Metadata(); md != "" {
		fmt.Printf("Metadata:  %s\n", md)
	}
	if meshes := m.Meshes(); meshes != nil {
		fmt.Println()
		fmt.Println("Geometry:")
		fmt.Printf("  %-18s %d\n", "samples", meshes.SamplesLength())
		fmt.Printf("  %-18s %d\n", "representations", meshes.RepresentationsLength())
		fmt.Printf("  %-18s %d\n", "shells", meshes.ShellsLength())
		fmt.Printf("  %-18s %d\n", "circle extrusions", meshes.CircleExtrusionsLength())
		fmt.Printf("  %-18s %d\n", "materials", meshes.MaterialsLength())
	}

	counts := make(map[string]int)
	for i := 0; i < m.Len(); i++ {
		if c := m.Category(i); c != "" {
			counts[c]++
		}
	}
	type catStat struct {
		name  string
		count int
	}
	stats := make([]catStat, 0, len(counts))
	for name, count := range counts {
		stats = append(stats, catStat{name, count})
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].count != stats[j].count {
			return stats[i].count > stats[j].count
		}
		return stats[i].name < stats[j].name
	})

	fmt.Println()
	fmt.Println("Items by category:")
	for _, s := range stats {
		fmt.Printf("  %-28s %d\n", s.name, s.count)
	}
}

func cmdTree(args []string) {
	fs := flag.NewFlagSet("tree", flag.ExitOnError)
	maxDepth := fs.Int("depth", 0, "Limit depth (0 = all)")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: fragtool tree [-depth N] <file.frag>")
		os.Exit(1)
	}

	h := loadModel(fs.Arg(0))
	defer h.Close()

	h.Root().Walk(func(item *fragments.FragmentItem, depth int) bool {
		indent := strings.Repeat("  ", depth)
		if item.IsRoot() {
			fmt.Printf("%s%s\n", indent, item.ModelGUID)
		} else {
			fmt.Printf("%s%d %s", indent, item.LocalID, item.Category)
			if item.GUID != "" {
				fmt.Printf(" %s", item.GUID)
			}
			if n := len(item.Samples); n > 0 {
				fmt.Printf(" (%d samples)", n)
			}
			fmt.Println()
		}
		return *maxDepth == 0 || depth < *maxDepth
	})
}

func cmdAttrs(args []string) {
	if len(args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: fragtool attrs <file.frag> <localId>")
		os.Exit(1)
	}

	h := loadModel(args[0])
	defer h.Close()
	id := parseLocalID(args[1])

	if _, ok := h.Model().IndexOf(id); !ok {
		fmt.Fprintf(os.Stderr, "Item not found: %d\n", id)
		os.Exit(1)
	}

	fmt.Println("Attributes:")
	for _, a := range h.ResolveAttributes(id) {
		fmt.Printf("  %-24s %s\n", a.Key, a.Value)
	}
	fmt.Println()
	fmt.Println("Relations:")
	for _, r := range h.ResolveRelations(id) {
		ids := make([]string, len(r.IDs))
		for i, v := range r.IDs {
			ids[i] = strconv.Itoa(int(v))
		}
		fmt.Printf("  %-24s %s\n", r.Name, strings.Join(ids, ", "))
	}
}

func cmdProps(args []string) {
	if len(args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: fragtool props <file.frag> <localId>")
		os.Exit(1)
	}

	h := loadModel(args[0])
	defer h.Close()

	props := h.ResolvePropertyClosure(parseLocalID(args[1]))
	for _, a := range props {
		fmt.Printf("%-32s %s\n", a.Key, a.Value)
	}
	fmt.Fprintf(os.Stderr, "\n(%d properties)\n", len(props))
}

func cmdCategory(args []string) {
	if len(args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: fragtool category <file.frag> <category>")
		os.Exit(1)
	}

	h := loadModel(args[0])
	defer h.Close()

	ids := h.ItemsByCategory(args[1])
	for _, id := range ids {
		fmt.Println(id)
	}
	if len(ids) == 0 {
		fmt.Fprintln(os.Stderr, "No items found")
	} else {
		fmt.Fprintf(os.Stderr, "\n(%d items found)\n", len(ids))
	}
}

// reconstruct builds the meshes under the item picked by -id, or the whole
// model. Ctrl-C stops scheduling further samples.
func reconstruct(h *fragments.Handle, id int) []fragments.ItemMesh {
	item := h.Root()
	if id >= 0 {
		item = h.FindItem(int32(id))
		if item == nil {
			fmt.Fprintf(os.Stderr, "Item not in tree: %d\n", id)
			os.Exit(1)
		}
	}

	var cache *fragments.MeshCache
	if cfg.Geometry.Cache {
		cache = fragments.NewMeshCache()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	meshes, err := h.ReconstructGeometryContext(ctx, item, cache)
	if err != nil {
		if len(meshes) == 0 {
			logger.Error("reconstruction failed", zap.Int32("item", item.LocalID), zap.Error(err))
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		logger.Warn("some samples failed", zap.Error(err))
	}
	return meshes
}

func cmdExport(args []string) {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	id := fs.Int("id", -1, "Export only this item and its descendants")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: fragtool export [-id N] <file.frag> [output.obj]")
		os.Exit(1)
	}

	h := loadModel(fs.Arg(0))
	defer h.Close()

	objPath := strings.TrimSuffix(filepath.Base(fs.Arg(0)), filepath.Ext(fs.Arg(0))) + ".obj"
	if fs.NArg() > 1 {
		objPath = fs.Arg(1)
	}
	mtlPath := strings.TrimSuffix(objPath, filepath.Ext(objPath)) + ".mtl"

	meshes := reconstruct(h, *id)

	objFile, err := os.Create(objPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating file: %v\n", err)
		os.Exit(1)
	}
	defer objFile.Close()

	st, err := export.WriteOBJ(objFile, filepath.Base(mtlPath), meshes)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	mtlFile, err := os.Create(mtlPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating file: %v\n", err)
		os.Exit(1)
	}
	defer mtlFile.Close()

	if err := export.WriteMTL(mtlFile, meshes); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Exported: %s (%d objects, %d vertices, %d faces)\n", objPath, st.Objects, st.Vertices, st.Faces)
}

func cmdPreview(args []string) {
	fs := flag.NewFlagSet("preview", flag.ExitOnError)
	id := fs.Int("id", -1, "Render only this item and its descendants")
	yaw := fs.Float64("yaw", cfg.Preview.Yaw, "Degrees around the up axis")
	pitch := fs.Float64("pitch", cfg.Preview.Pitch, "Degrees above the horizon")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: fragtool preview [-id N] [-yaw D] [-pitch D] <file.frag> [output.webp]")
		os.Exit(1)
	}

	opts, err := preview.OptionsFromConfig(cfg.Preview)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}
	opts.Yaw, opts.Pitch = *yaw, *pitch

	h := loadModel(fs.Arg(0))
	defer h.Close()

	outPath := strings.TrimSuffix(filepath.Base(fs.Arg(0)), filepath.Ext(fs.Arg(0))) + ".webp"
	if fs.NArg() > 1 {
		outPath = fs.Arg(1)
	}

	img := preview.Render(reconstruct(h, *id), opts)

	f, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating file: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	if err := preview.Encode(f, img); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Rendered: %s (%dx%d)\n", outPath, img.Bounds().Dx(), img.Bounds().Dy())
}
