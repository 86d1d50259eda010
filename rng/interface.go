package rng

// Source describes random number generator the bag draws priorities from.
//
// Float64 must return uniformly distributed values in [0, 1) and must never return NaN.
type Source interface {
	Float64() float64
}
