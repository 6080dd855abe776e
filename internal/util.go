package internal

import "math"

const Tolerance = 1e-9

// To compensate for imprecision in floats, equality is tolerance based.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}

// The sweep runs in increasing y. If two points have the same Y value, the
// one with the smaller X value comes first. This is the only ordering used for
// events, so site events and circle events never tie in an undefined way.
func CompareByYThenX(a, b Point) int {
	switch {
	case a.Y < b.Y:
		return -1
	case a.Y > b.Y:
		return 1
	case a.X < b.X:
		return -1
	case a.X > b.X:
		return 1
	}
	return 0
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

// Cross product of (b - a) and (c - a). Positive when a, b, c turn
// counterclockwise.
func cross(a, b, c Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// Bucket index for value in [min, min+delta), clamped to [0, size). A zero
// extent (all sites on one line) puts everything in the first bucket.
func bucketIndex(value, min, delta float64, size int) int {
	if !(delta > 0) {
		return 0
	}
	f := (value - min) / delta * float64(size)
	if math.IsNaN(f) || f < 0 {
		return 0
	}
	if f >= float64(size) {
		return size - 1
	}
	return int(f)
}
