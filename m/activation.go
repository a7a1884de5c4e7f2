package m

import (
	"math"
	"sort"
)

// Normalizer maps a biased weighted sum to a neuron output.
type Normalizer func(float64) float64

var NormalizerLookup = map[string]Normalizer{
	"sigmoid":  Sigmoid,
	"tanh":     Tanh,
	"relu":     ReLU,
	"identity": Identity,
}

// NormalizerNames returns the keys of NormalizerLookup in sorted order.
func NormalizerNames() []string {
	names := make([]string, 0, len(NormalizerLookup))
	for name := range NormalizerLookup {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func Sigmoid(x float64) float64 {
	return 1.0 / (1.0 + math.Exp(-x))
}

func Tanh(x float64) float64 {
	return math.Tanh(x)
}

// ReLU is leaky below zero.
func ReLU(x float64) float64 {
	if x < 0 {
		return 0.0001 * x
	}
	return x
}

func Identity(x float64) float64 {
	return x
}
