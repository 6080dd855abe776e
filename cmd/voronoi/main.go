package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/kr/pretty"
	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/osuushi/voronoi"
	"github.com/osuushi/voronoi/advanced"
)

// Compute a Voronoi diagram and render it. Sites come from an SVG drawing
// (every <circle> is a site, the first <rect> is the bounds), from newline
// separated "x y" points, or from the seeded random generator.
var (
	app = kingpin.New("voronoi", "Compute and draw Voronoi diagrams.")

	input  = app.Flag("input", "Read sites from an .svg file, or a file of \"x y\" lines. Use - for stdin.").Short('i').String()
	random = app.Flag("random", "Generate this many random sites instead of reading them.").Short('n').Int()
	seed   = app.Flag("seed", "Seed for --random.").Default("1").Int64()
	width  = app.Flag("width", "Width of the bounds, unless the input SVG has a <rect>.").Default("400").Float64()
	height = app.Flag("height", "Height of the bounds, unless the input SVG has a <rect>.").Default("400").Float64()
	relax  = app.Flag("relax", "Lloyd relaxation passes to run before drawing.").Int()

	output   = app.Flag("output", "Write the drawing to this .png or .svg file.").Short('o').String()
	scale    = app.Flag("scale", "Pixels per unit.").Default("1").Float64()
	delaunay = app.Flag("delaunay", "Draw the Delaunay edges.").Bool()
	hull     = app.Flag("hull", "Draw the convex hull.").Bool()
	mst      = app.Flag("mst", "Draw the minimum spanning tree.").Bool()
	fill     = app.Flag("fill", "Fill the regions.").Bool()
	preview  = app.Flag("preview", "Print the drawing to the terminal (iTerm).").Bool()

	trace = app.Flag("trace", "Log every sweep event.").Bool()
	dump  = app.Flag("dump", "Pretty print the regions, hull and spanning tree.").Bool()
)

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	logger := zap.NewNop()
	if *trace {
		var err error
		logger, err = zap.NewDevelopment()
		app.FatalIfError(err, "building logger")
		defer logger.Sync()
	}

	points, bounds, err := loadSites()
	app.FatalIfError(err, "loading sites")

	if *relax > 0 {
		points, err = voronoi.Relax(points, bounds, *relax, voronoi.Options{Logger: logger})
		app.FatalIfError(err, "relaxing sites")
	}

	diagram, err := voronoi.Compute(points, bounds, voronoi.Options{Logger: logger})
	app.FatalIfError(err, "computing diagram")
	printSummary(diagram)

	if *dump {
		pretty.Println(map[string]interface{}{
			"regions":      diagram.Regions(),
			"hull":         diagram.HullPointsInOrder(),
			"spanningTree": diagram.SpanningTree(voronoi.Minimum),
		})
	}

	opts := voronoi.RenderOptions{
		Scale:        *scale,
		Padding:      10,
		FillRegions:  *fill,
		Sites:        true,
		Voronoi:      true,
		Delaunay:     *delaunay,
		Hull:         *hull,
		SpanningTree: *mst,
	}
	if *output != "" {
		app.FatalIfError(writeOutput(diagram, *output, opts), "writing %s", *output)
	}
	if *preview {
		app.FatalIfError(diagram.DbgDraw(os.Stdout, opts), "drawing preview")
	}
}

func loadSites() ([]voronoi.Point, voronoi.Rectangle, error) {
	bounds := voronoi.Rectangle{Width: *width, Height: *height}
	if *random > 0 {
		src := advanced.NewParkMiller(*seed)
		return advanced.RandomPoints(*random, bounds, 0, src), bounds, nil
	}
	if *input == "" {
		return nil, bounds, errors.New("need --input or --random")
	}

	var in io.Reader = os.Stdin
	if *input != "-" {
		file, err := os.Open(*input)
		if err != nil {
			return nil, bounds, errors.WithStack(err)
		}
		defer file.Close()
		in = file
	}

	if strings.EqualFold(filepath.Ext(*input), ".svg") {
		sites, err := advanced.ParseSVGSites(in)
		if err != nil {
			return nil, bounds, err
		}
		if sites.HasBounds {
			bounds = sites.Bounds
		}
		return sites.Points, bounds, nil
	}
	points, err := readPoints(in)
	return points, bounds, err
}

// Read newline separated "x y" points. Blank lines are skipped.
func readPoints(in io.Reader) ([]voronoi.Point, error) {
	points := []voronoi.Point{}
	scanner := bufio.NewScanner(in)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		point, err := parsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	return points, errors.WithStack(scanner.Err())
}

func parsePoint(line string) (voronoi.Point, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return voronoi.Point{}, errors.Errorf("expected \"x y\", got %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return voronoi.Point{}, errors.WithStack(err)
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return voronoi.Point{}, errors.WithStack(err)
	}
	return voronoi.Point{X: x, Y: y}, nil
}

func writeOutput(diagram *voronoi.Diagram, path string, opts voronoi.RenderOptions) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return diagram.SavePNG(path, opts)
	case ".svg":
		file, err := os.Create(path)
		if err != nil {
			return errors.WithStack(err)
		}
		if err := diagram.WriteSVG(file, opts); err != nil {
			file.Close()
			return err
		}
		return errors.WithStack(file.Close())
	default:
		return errors.Errorf("unknown output format %q", filepath.Ext(path))
	}
}

func printSummary(diagram *voronoi.Diagram) {
	fmt.Println(aurora.Sprintf(
		"%d sites, %d Voronoi edges, %d Delaunay edges, %d on the hull",
		aurora.Cyan(len(diagram.Sites())),
		aurora.Green(len(diagram.VoronoiEdges())),
		aurora.Yellow(len(diagram.DelaunayEdges())),
		aurora.Red(len(diagram.HullPointsInOrder())),
	))
}
