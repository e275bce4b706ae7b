package editor

import "math"

// Normalization divides, so normalized coordinates are only compared within
// this tolerance.
const Tolerance = 1e-9

// Linearly remap pos from [min, max] to [-1, 1].
func Normalize(pos, min, max float64) float64 {
	return 2*(pos-min)/(max-min) - 1
}

// Clamp to the normalized range. Pointer events outside the canvas would
// otherwise push vertices out of clip space.
func clampUnit(v float64) float64 {
	return math.Max(-1, math.Min(1, v))
}

func (b Bounds) normalizeX(x float64) float64 {
	return clampUnit(Normalize(x, b.MinX, b.MaxX))
}

func (b Bounds) normalizeY(y float64) float64 {
	return clampUnit(Normalize(y, b.MinY, b.MaxY))
}

func (b Bounds) valid() bool {
	for _, f := range []float64{b.MinX, b.MaxX, b.MinY, b.MaxY} {
		if !finite(f) {
			return false
		}
	}
	return b.MaxX > b.MinX && b.MaxY > b.MinY
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}
