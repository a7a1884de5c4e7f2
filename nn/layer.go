package nn

import (
	"fmt"

	"ffnet/m"

	"gonum.org/v1/gonum/mat"
)

const noLayer = -1

type cacheState int

const (
	cacheEmpty cacheState = iota
	cacheBuilt
)

// Layer is one stage of a Network. Neighbors are indices into the owning
// network's layer slice; noLayer marks an absent neighbor.
type Layer struct {
	net     *Network
	index   int
	prev    int
	next    int
	neurons []*Neuron

	// weights is prev's edge table transposed: row i, column k holds
	// prev.neurons[k].Edges[i]. Only valid while cache == cacheBuilt.
	cache   cacheState
	weights *mat.Dense
}

func newLayer(net *Network, index int, neurons []*Neuron) *Layer {
	return &Layer{
		net:     net,
		index:   index,
		prev:    noLayer,
		next:    noLayer,
		neurons: neurons,
	}
}

func (l *Layer) link(prev, next int) {
	l.prev = prev
	l.next = next
}

func (l *Layer) Size() int {
	return len(l.neurons)
}

// Index is the position of the layer in its network.
func (l *Layer) Index() int {
	return l.index
}

func (l *Layer) Neurons() []*Neuron {
	return append([]*Neuron(nil), l.neurons...)
}

// Neuron returns the i-th neuron, or nil if i is out of range.
func (l *Layer) Neuron(i int) *Neuron {
	if i < 0 || i >= len(l.neurons) {
		return nil
	}
	return l.neurons[i]
}

// Prev returns the preceding layer, or nil for the input layer.
func (l *Layer) Prev() *Layer {
	return l.net.layerAt(l.prev)
}

// Next returns the following layer, or nil for the output layer.
func (l *Layer) Next() *Layer {
	return l.net.layerAt(l.next)
}

// InitializeEdges gives every neuron one edge per neuron of the next layer.
// It does nothing when there is no next layer.
func (l *Layer) InitializeEdges(edgeInit EdgeInit) error {
	next := l.Next()
	if next == nil {
		return nil
	}
	for i, neuron := range l.neurons {
		if err := neuron.InitializeEdges(next.Size(), edgeInit); err != nil {
			return fmt.Errorf("layer %d neuron %d: %w", l.index, i, err)
		}
	}
	return nil
}

// Cached reports whether the weight matrix is currently built.
func (l *Layer) Cached() bool {
	return l.cache == cacheBuilt
}

// InvalidateCache drops the weight matrix. It must be called after editing
// the edges of the previous layer directly; the next Output rebuilds it.
func (l *Layer) InvalidateCache() {
	l.cache = cacheEmpty
	l.weights = nil
}

// WeightMatrix returns a copy of the Size()×Prev().Size() matrix of incoming
// edge weights, building the cache on first use after construction or
// InvalidateCache. Writing to the copy does not affect the layer.
func (l *Layer) WeightMatrix() (mat.Matrix, error) {
	w, err := l.weightMatrix()
	if err != nil {
		return nil, err
	}
	return mat.DenseCopyOf(w), nil
}

func (l *Layer) weightMatrix() (*mat.Dense, error) {
	prev := l.Prev()
	if prev == nil {
		return nil, fmt.Errorf("%w: layer %d has no previous layer", ErrPrecondState, l.index)
	}
	if l.cache == cacheBuilt {
		return l.weights, nil
	}

	cols := make([][]float64, prev.Size())
	for k, neuron := range prev.neurons {
		if len(neuron.Edges) != l.Size() {
			return nil, fmt.Errorf("%w: layer %d neuron %d has %d edges, expected %d",
				ErrPrecondState, prev.index, k, len(neuron.Edges), l.Size())
		}
		cols[k] = neuron.Edges
	}
	w, err := m.FromColumns(l.Size(), cols)
	if err != nil {
		return nil, fmt.Errorf("building weight matrix for layer %d: %w", l.index, err)
	}

	l.weights = w
	l.cache = cacheBuilt
	return l.weights, nil
}

// Output computes this layer's values from the previous layer's output.
// The input layer passes the network inputs through unchanged.
func (l *Layer) Output(normalize Normalize) ([]float64, error) {
	prev := l.Prev()
	if prev == nil {
		return append([]float64{}, l.net.inputs...), nil
	}

	p, err := prev.Output(normalize)
	if err != nil {
		return nil, err
	}
	w, err := l.weightMatrix()
	if err != nil {
		return nil, err
	}
	raw, err := m.Dot(w, p)
	if err != nil {
		return nil, fmt.Errorf("%w: layer %d: %v", ErrPrecondState, l.index, err)
	}

	biases := make([]float64, len(l.neurons))
	for i, neuron := range l.neurons {
		biases[i] = neuron.Bias
	}
	biased, err := m.Add(raw, biases)
	if err != nil {
		return nil, fmt.Errorf("layer %d: %w", l.index, err)
	}

	return m.Apply(normalize, biased), nil
}
