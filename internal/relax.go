package internal

import "go.uber.org/zap"

// Lloyd relaxation: each pass computes the diagram and moves every point to
// the average of its region's corners. A few passes turn clumpy random points
// into an even, organic looking spread. The input slice is not modified.
func Relax(points []Point, bounds Rectangle, iterations int, opts Options) []Point {
	relaxed := append([]Point(nil), points...)
	for i := 0; i < iterations; i++ {
		d := NewDiagram(relaxed, bounds, opts)
		for j, p := range relaxed {
			region := d.Region(p)
			if len(region) == 0 {
				continue
			}
			var sum Point
			for _, q := range region {
				sum.X += q.X
				sum.Y += q.Y
			}
			relaxed[j] = Point{sum.X / float64(len(region)), sum.Y / float64(len(region))}
		}
		if opts.Logger != nil {
			opts.Logger.Debug("relaxation pass", zap.Int("pass", i+1), zap.Int("points", len(relaxed)))
		}
	}
	return relaxed
}
