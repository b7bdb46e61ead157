package internal

import (
	"io"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/pkg/errors"
)

// Read a point set out of an SVG document. This is not a full (or even
// correct) SVG reader. Every <circle> contributes its centre, and every
// <polygon> and <polyline> contributes its vertices, in document order.
// Transforms are ignored.
func PointsFromSVG(r io.Reader) ([]Point, error) {
	rootEl, err := svgparser.Parse(r, false)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}

	var points []Point
	var walk func(el *svgparser.Element) error
	walk = func(el *svgparser.Element) error {
		switch el.Name {
		case "circle":
			p, err := parseCircle(el)
			if err != nil {
				return err
			}
			points = append(points, p)
		case "polygon", "polyline":
			ps, err := parsePointList(el.Attributes["points"])
			if err != nil {
				return errors.Wrapf(err, "in <%s>", el.Name)
			}
			points = append(points, ps...)
		}
		for _, child := range el.Children {
			if err := walk(child); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(rootEl); err != nil {
		return nil, err
	}
	return points, nil
}

func parseCircle(el *svgparser.Element) (Point, error) {
	x, err := strconv.ParseFloat(el.Attributes["cx"], 64)
	if err != nil {
		return Point{}, errors.Wrapf(err, "invalid cx %q", el.Attributes["cx"])
	}
	y, err := strconv.ParseFloat(el.Attributes["cy"], 64)
	if err != nil {
		return Point{}, errors.Wrapf(err, "invalid cy %q", el.Attributes["cy"])
	}
	return Point{x, y}, nil
}

// Points attributes are "x,y x,y ...". Commas and whitespace are both accepted
// as separators, so "x y x y" works too.
func parsePointList(s string) ([]Point, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(fields)%2 != 0 {
		return nil, errors.Errorf("odd number of coordinates in %q", s)
	}
	points := make([]Point, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		x, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid x value %q", fields[i])
		}
		y, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid y value %q", fields[i+1])
		}
		points = append(points, Point{x, y})
	}
	return points, nil
}
