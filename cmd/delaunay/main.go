package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/kr/pretty"
	"github.com/logrusorgru/aurora"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/delaunay"
	"github.com/osuushi/delaunay/internal/pointio"
	"github.com/osuushi/delaunay/mesh"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Triangulate a point set. Input is newline separated points in the form
// "x y", an SVG file whose circle centres and polygon vertices are the points,
// or a YAML document with a list of {x, y} points.
var (
	app = kingpin.New("delaunay", "Delaunay triangulation of a set of 2D points.")

	input       = app.Arg("input", "Point file. Reads stdin if omitted.").ExistingFile()
	inputFormat = app.Flag("format", "Input format.").Short('f').Default("text").Enum("text", "svg", "yaml")
	output      = app.Flag("output", "Output format.").Short('o').Default("text").Enum("text", "yaml", "mesh")
	margin      = app.Flag("margin", "Supra triangle margin.").Default("3").Float64()
	tolerance   = app.Flag("tolerance", "Merge points closer than this on both axes.").Default("0").Float64()
	timeout     = app.Flag("timeout", "Give up after this long. Zero means never.").Default("0s").Duration()
	verbose     = app.Flag("verbose", "Log every insertion.").Short('v').Bool()
	pngPath     = app.Flag("png", "Render the triangulation to a PNG file.").String()
	scale       = app.Flag("scale", "Pixels per unit when rendering.").Default("10").Float64()
	showImage   = app.Flag("imgcat", "Print the rendering to the terminal (iTerm only).").Bool()
	dump        = app.Flag("dump", "Dump the triangles as Go values instead of writing output.").Bool()
)

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	logger := zap.NewNop()
	if *verbose {
		var err error
		logger, err = zap.NewDevelopment()
		app.FatalIfError(err, "creating logger")
	}
	defer logger.Sync()

	err := run(logger)
	app.FatalIfError(err, "")
}

func run(logger *zap.Logger) error {
	points, err := readPoints()
	if err != nil {
		return err
	}
	logger.Debug("read points", zap.Int("count", len(points)))

	ctx := context.Background()
	if *timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *timeout)
		defer cancel()
	}

	triangulator, err := delaunay.NewTriangulator(
		delaunay.WithMargin(*margin),
		delaunay.WithTolerance(*tolerance),
		delaunay.WithLogger(logger),
	)
	if err != nil {
		return err
	}
	start := time.Now()
	triangles, err := triangulator.Triangulate(ctx, points)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	if *dump {
		pretty.Println(triangles)
	} else if err := writeTriangles(os.Stdout, triangles); err != nil {
		return err
	}

	if *pngPath != "" || *showImage {
		if err := render(triangles, points); err != nil {
			return err
		}
	}

	stats := triangulator.Stats()
	fmt.Fprintf(os.Stderr, "%s %d points (%d duplicates) into %s in %s\n",
		aurora.Green("Triangulated"),
		stats.Points,
		stats.Duplicates,
		aurora.Cyan(fmt.Sprintf("%d triangles", len(triangles))),
		elapsed,
	)
	return nil
}

func readPoints() ([]delaunay.Point, error) {
	var in io.Reader = os.Stdin
	if *input != "" {
		file, err := os.Open(*input)
		if err != nil {
			return nil, errors.Wrap(err, "opening input")
		}
		defer file.Close()
		in = file
	}
	return pointio.Read(in, pointio.Format(*inputFormat))
}

func writeTriangles(w io.Writer, triangles delaunay.Triangulation) error {
	switch *output {
	case "yaml":
		return pointio.WriteYAML(w, triangles)
	case "mesh":
		return mesh.Indexed(triangles).WriteYAML(w)
	default:
		return pointio.WriteText(w, triangles)
	}
}

func render(triangles delaunay.Triangulation, points []delaunay.Point) error {
	path := *pngPath
	if path == "" {
		file, err := os.CreateTemp("", "triangulation-*.png")
		if err != nil {
			return errors.Wrap(err, "creating temp file")
		}
		file.Close()
		path = file.Name()
	}
	c := triangles.Render(points, *scale)
	if err := c.SavePNG(path); err != nil {
		return errors.Wrapf(err, "saving %s", path)
	}
	if *showImage {
		return errors.Wrap(imgcat.CatFile(path, os.Stdout), "printing image")
	}
	return nil
}
