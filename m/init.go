package m

import (
	"fmt"

	"gonum.org/v1/gonum/stat/distuv"
)

// UniformEdges returns an initializer drawing from the uniform distribution on [lo, hi].
func UniformEdges(lo, hi float64) func() float64 {
	dist := distuv.Uniform{
		Min: lo,
		Max: hi,
	}
	return dist.Rand
}

// Constant returns an initializer that always yields v.
func Constant(v float64) func() float64 {
	return func() float64 { return v }
}

// Sequence returns an initializer replaying values in order. It is meant for
// tests and panics once the values are exhausted, so a caller drawing more
// values than recorded fails loudly.
func Sequence(values ...float64) func() float64 {
	i := 0
	return func() float64 {
		if i >= len(values) {
			panic(fmt.Sprintf("Sequence: exhausted after %d values", len(values)))
		}
		v := values[i]
		i++
		return v
	}
}
