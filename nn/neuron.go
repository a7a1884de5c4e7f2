package nn

import "fmt"

// Neuron holds a bias and one outgoing edge weight per neuron of the next layer.
// Edges is empty until the next layer is known.
type Neuron struct {
	Bias  float64
	Edges []float64
}

func newNeuron(biasInit BiasInit) *Neuron {
	return &Neuron{
		Bias:  biasInit(),
		Edges: []float64{},
	}
}

// InitializeEdges draws nextLayerSize weights from edgeInit, in index order.
// Calling it again with the same size leaves the existing weights in place.
func (n *Neuron) InitializeEdges(nextLayerSize int, edgeInit EdgeInit) error {
	if nextLayerSize < 0 {
		return fmt.Errorf("%w: negative edge count %d", ErrConfiguration, nextLayerSize)
	}
	if len(n.Edges) != 0 {
		if len(n.Edges) != nextLayerSize {
			return fmt.Errorf("%w: neuron already has %d edges, cannot initialize %d", ErrPrecondState, len(n.Edges), nextLayerSize)
		}
		return nil
	}
	edges := make([]float64, nextLayerSize)
	for i := range edges {
		edges[i] = edgeInit()
	}
	n.Edges = edges
	return nil
}

// Initialized reports whether the outgoing edges have been populated.
func (n *Neuron) Initialized() bool {
	return len(n.Edges) > 0
}
