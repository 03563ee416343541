package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"
	"strings"

	"github.com/etwyniel/aoc-framework/geom"
	"github.com/unixpickle/essentials"
)

func main() {
	var scale float64
	var fill string
	flag.Float64Var(&scale, "scale", 8.0, "pixels per grid cell")
	flag.StringVar(&fill, "fill", "#", "characters treated as filled cells")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: grid_render [flags] <input.txt> <output.png>")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
	}
	flag.Parse()

	args := flag.Args()
	if len(args) != 2 {
		flag.Usage()
		os.Exit(1)
	}
	inputPath, outputPath := args[0], args[1]

	log.Println("Loading grid...")
	data, err := os.ReadFile(inputPath)
	essentials.Must(err)
	lines := strings.Split(strings.Trim(string(data), "\n"), "\n")
	grid := geom.FromLines(lines, func(b byte) byte { return b })
	log.Println("Grid size:", grid.Size())

	log.Println("Rasterizing...")
	img := geom.Rasterize(grid.Borrow(), func(b byte) bool {
		return b != 0 && strings.IndexByte(fill, b) >= 0
	}, scale)

	log.Println("Saving image...")
	f, err := os.Create(outputPath)
	essentials.Must(err)
	defer f.Close()
	essentials.Must(png.Encode(f, img))
}
