package internal

import (
	"io"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/pkg/errors"
)

// Sites read from an SVG drawing. This is not a general SVG reader: each
// <circle> is a site at its center, and the first <rect>, if any, is the
// bounds. Transforms are ignored.
type SVGSites struct {
	Points    []Point
	Bounds    Rectangle
	HasBounds bool
}

func ParseSVGSites(r io.Reader) (*SVGSites, error) {
	root, err := svgparser.Parse(r, true)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}

	result := &SVGSites{}
	for _, circle := range root.FindAll("circle") {
		x, err := svgNumber(circle, "cx")
		if err != nil {
			return nil, err
		}
		y, err := svgNumber(circle, "cy")
		if err != nil {
			return nil, err
		}
		result.Points = append(result.Points, Point{x, y})
	}

	if rects := root.FindAll("rect"); len(rects) > 0 {
		var values [4]float64
		for i, name := range []string{"x", "y", "width", "height"} {
			if values[i], err = svgNumber(rects[0], name); err != nil {
				return nil, err
			}
		}
		result.Bounds = Rectangle{values[0], values[1], values[2], values[3]}
		result.HasBounds = true
	}
	return result, nil
}

// A numeric attribute. Missing attributes are zero, as in SVG. Units other
// than bare numbers or px are rejected.
func svgNumber(el *svgparser.Element, name string) (float64, error) {
	raw, ok := el.Attributes[name]
	if !ok {
		return 0, nil
	}
	value, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(raw), "px"), 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid %s attribute %q on <%s>", name, raw, el.Name)
	}
	return value, nil
}
