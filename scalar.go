package geom

import "math/rand"

// Sqr returns val squared.
func Sqr(val float64) float64 {
	return val * val
}

// NextPowerOfTwo returns the smallest power of two >= val.
func NextPowerOfTwo(val uint32) uint32 {
	val--
	val |= val >> 1
	val |= val >> 2
	val |= val >> 4
	val |= val >> 8
	val |= val >> 16
	return val + 1
}

// UnitRandom returns a uniform sample in [0, 1). The generator is passed in
// explicitly so the package holds no process-wide random state.
func UnitRandom(rng *rand.Rand) float64 {
	return rng.Float64()
}
