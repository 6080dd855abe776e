package internal

import "math/rand"

const (
	parkMillerModulus    = 2147483647
	parkMillerMultiplier = 16807
)

// The Park-Miller "minimal standard" generator. It's a poor generator, but
// it's tiny and reproduces the same point sets on every platform for a given
// seed. It satisfies rand.Source.
type ParkMiller struct {
	seed int64
}

func NewParkMiller(seed int64) *ParkMiller {
	p := &ParkMiller{}
	p.Seed(seed)
	return p
}

func (p *ParkMiller) Seed(seed int64) {
	seed %= parkMillerModulus
	if seed < 0 {
		seed += parkMillerModulus
	}
	// Zero is a fixed point
	if seed == 0 {
		seed = 1
	}
	p.seed = seed
}

// The next raw value, in [1, 2^31 - 2].
func (p *ParkMiller) NextInt() int64 {
	p.seed = p.seed * parkMillerMultiplier % parkMillerModulus
	return p.seed
}

func (p *ParkMiller) NextFloat() float64 {
	return float64(p.NextInt()) / parkMillerModulus
}

func (p *ParkMiller) NextFloatRange(min, max float64) float64 {
	return min + (max-min)*p.NextFloat()
}

// Two raw values glued together, so rand.Rand sees 63 varying bits.
func (p *ParkMiller) Int63() int64 {
	return p.NextInt()<<32 | p.NextInt()<<1
}

// Uniform random points inside bounds, keeping margin away from every edge.
func RandomPoints(n int, bounds Rectangle, margin float64, src rand.Source) []Point {
	r := rand.New(src)
	inner := bounds.Inset(margin)
	points := make([]Point, n)
	for i := range points {
		points[i] = Point{
			X: inner.X + r.Float64()*inner.Width,
			Y: inner.Y + r.Float64()*inner.Height,
		}
	}
	return points
}
