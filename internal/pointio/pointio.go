// Package pointio reads point sets and writes triangulations in the formats the
// command line tool understands.
package pointio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/osuushi/delaunay/internal"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatText Format = "text"
	FormatSVG  Format = "svg"
	FormatYAML Format = "yaml"
)

func Read(r io.Reader, format Format) ([]internal.Point, error) {
	switch format {
	case FormatText:
		return ReadText(r)
	case FormatSVG:
		return internal.PointsFromSVG(r)
	case FormatYAML:
		return ReadYAMLPoints(r)
	default:
		return nil, errors.Errorf("unknown input format %q", format)
	}
}

// One point per line, in the form "x y". Blank lines and lines starting with #
// are skipped. Errors carry the line number.
func ReadText(r io.Reader) ([]internal.Point, error) {
	var points []internal.Point
	scanner := bufio.NewScanner(r)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		point, err := parsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading points")
	}
	return points, nil
}

func parsePoint(line string) (internal.Point, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return internal.Point{}, errors.Errorf("expected \"x y\", got %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return internal.Point{}, errors.Wrapf(err, "invalid x value %q", parts[0])
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return internal.Point{}, errors.Wrapf(err, "invalid y value %q", parts[1])
	}
	return internal.Point{X: x, Y: y}, nil
}

// One triangle per line, as six numbers "ax ay bx by cx cy".
func WriteText(w io.Writer, triangles internal.Triangulation) error {
	bw := bufio.NewWriter(w)
	for _, tri := range triangles {
		_, err := fmt.Fprintf(bw, "%s %s %s %s %s %s\n",
			formatFloat(tri.A.X), formatFloat(tri.A.Y),
			formatFloat(tri.B.X), formatFloat(tri.B.Y),
			formatFloat(tri.C.X), formatFloat(tri.C.Y),
		)
		if err != nil {
			return errors.Wrap(err, "writing triangles")
		}
	}
	return errors.Wrap(bw.Flush(), "writing triangles")
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

type yamlPoint struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type yamlPointList struct {
	Points []yamlPoint `yaml:"points"`
}

// A document with a single "points" list of {x, y} maps.
func ReadYAMLPoints(r io.Reader) ([]internal.Point, error) {
	var doc yamlPointList
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, errors.Wrap(err, "decoding points")
	}
	points := make([]internal.Point, 0, len(doc.Points))
	for _, p := range doc.Points {
		points = append(points, internal.Point{X: p.X, Y: p.Y})
	}
	return points, nil
}

type yamlTriangle struct {
	Vertices     [3]yamlPoint `yaml:"vertices,flow"`
	Circumcentre yamlPoint    `yaml:"circumcentre,flow"`
	Circumradius float64      `yaml:"circumradius"`
}

type yamlDocument struct {
	Triangles []yamlTriangle `yaml:"triangles"`
}

// The triangles as a YAML document, circumcircles included.
func WriteYAML(w io.Writer, triangles internal.Triangulation) error {
	doc := yamlDocument{Triangles: make([]yamlTriangle, 0, len(triangles))}
	for _, tri := range triangles {
		doc.Triangles = append(doc.Triangles, yamlTriangle{
			Vertices: [3]yamlPoint{
				{tri.A.X, tri.A.Y},
				{tri.B.X, tri.B.Y},
				{tri.C.X, tri.C.Y},
			},
			Circumcentre: yamlPoint{tri.Circumcentre.X, tri.Circumcentre.Y},
			Circumradius: tri.Circumradius,
		})
	}
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(doc); err != nil {
		return errors.Wrap(err, "encoding triangles")
	}
	return errors.Wrap(encoder.Close(), "encoding triangles")
}

// Read back a document written by WriteYAML. Circumcircles are recomputed
// rather than trusted.
func ReadYAML(r io.Reader) (internal.Triangulation, error) {
	var doc yamlDocument
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(err, "decoding triangles")
	}
	triangles := make(internal.Triangulation, 0, len(doc.Triangles))
	for _, t := range doc.Triangles {
		v := t.Vertices
		triangles = append(triangles, internal.NewTriangle(
			internal.Point{X: v[0].X, Y: v[0].Y},
			internal.Point{X: v[1].X, Y: v[1].Y},
			internal.Point{X: v[2].X, Y: v[2].Y},
		))
	}
	return triangles, nil
}
