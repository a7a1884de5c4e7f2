package nn

import "ffnet/m"

// Default range of the uniform edge initializer.
const (
	DefaultEdgeMin = -5.0
	DefaultEdgeMax = 5.0
)

// EdgeInit yields one edge weight per call.
type EdgeInit func() float64

// BiasInit yields one neuron bias per call.
type BiasInit func() float64

// Normalize is applied elementwise to a layer's biased weighted sums.
type Normalize func(float64) float64

// DefaultEdgeInit draws uniformly from [DefaultEdgeMin, DefaultEdgeMax].
func DefaultEdgeInit() EdgeInit {
	return EdgeInit(m.UniformEdges(DefaultEdgeMin, DefaultEdgeMax))
}

// DefaultBiasInit always yields 0.
func DefaultBiasInit() BiasInit {
	return BiasInit(m.Constant(0))
}

// DefaultNormalize is the logistic sigmoid.
func DefaultNormalize() Normalize {
	return Normalize(m.Sigmoid)
}
