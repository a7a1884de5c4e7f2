package nn

import "fmt"

// Network is an ordered chain of layers evaluated by a single forward pass.
//
// To build one:
//   - create it with NewNetwork and optionally replace the hooks,
//   - append layers with CreateLayer, input layer first.
//
// Each CreateLayer call initializes the edges of the layer before it, since
// their count depends on the new layer's size. A Network is not safe for
// concurrent use; Run writes the stored inputs before reading them back.
type Network struct {
	layers []*Layer
	inputs []float64

	edgeInit  EdgeInit
	biasInit  BiasInit
	normalize Normalize
}

func NewNetwork() *Network {
	return &Network{
		layers:    []*Layer{},
		inputs:    []float64{},
		edgeInit:  DefaultEdgeInit(),
		biasInit:  DefaultBiasInit(),
		normalize: DefaultNormalize(),
	}
}

// SetEdgeInit replaces the edge initializer used by later CreateLayer calls.
// A nil fn restores the default.
func (n *Network) SetEdgeInit(fn EdgeInit) {
	if fn == nil {
		fn = DefaultEdgeInit()
	}
	n.edgeInit = fn
}

// SetBiasInit replaces the bias initializer used by later CreateLayer calls.
// A nil fn restores the default.
func (n *Network) SetBiasInit(fn BiasInit) {
	if fn == nil {
		fn = DefaultBiasInit()
	}
	n.biasInit = fn
}

// SetNormalize replaces the normalization applied by Run.
// A nil fn restores the default.
func (n *Network) SetNormalize(fn Normalize) {
	if fn == nil {
		fn = DefaultNormalize()
	}
	n.normalize = fn
}

func (n *Network) ResetEdgeInit()  { n.SetEdgeInit(nil) }
func (n *Network) ResetBiasInit()  { n.SetBiasInit(nil) }
func (n *Network) ResetNormalize() { n.SetNormalize(nil) }

func (n *Network) EdgeInit() EdgeInit   { return n.edgeInit }
func (n *Network) BiasInit() BiasInit   { return n.biasInit }
func (n *Network) Normalize() Normalize { return n.normalize }

func (n *Network) layerAt(i int) *Layer {
	if i < 0 || i >= len(n.layers) {
		return nil
	}
	return n.layers[i]
}

// Layer returns the i-th layer, or nil if i is out of range.
func (n *Network) Layer(i int) *Layer {
	return n.layerAt(i)
}

func (n *Network) Layers() []*Layer {
	return append([]*Layer(nil), n.layers...)
}

// Inputs returns a copy of the input vector of the last successful Run.
func (n *Network) Inputs() []float64 {
	return append([]float64{}, n.inputs...)
}

// appendLayer adds neurons as a new last layer and links it to the previous one.
func (n *Network) appendLayer(neurons []*Neuron) *Layer {
	l := newLayer(n, len(n.layers), neurons)
	if last := n.layerAt(len(n.layers) - 1); last != nil {
		last.link(last.prev, l.index)
		l.link(last.index, noLayer)
	}
	n.layers = append(n.layers, l)
	return l
}

// CreateLayer appends a layer of neuronCount neurons, with biases drawn from
// the bias initializer, and initializes the previous layer's edges toward it.
func (n *Network) CreateLayer(neuronCount int) (*Layer, error) {
	if neuronCount <= 0 {
		return nil, fmt.Errorf("%w: layer size must be positive, got %d", ErrConfiguration, neuronCount)
	}
	if last := n.layerAt(len(n.layers) - 1); last != nil {
		for i, neuron := range last.neurons {
			if neuron.Initialized() && len(neuron.Edges) != neuronCount {
				return nil, fmt.Errorf("%w: layer %d neuron %d already has %d edges, cannot link layer of %d",
					ErrPrecondState, last.index, i, len(neuron.Edges), neuronCount)
			}
		}
	}

	neurons := make([]*Neuron, neuronCount)
	for i := range neurons {
		neurons[i] = newNeuron(n.biasInit)
	}
	l := n.appendLayer(neurons)

	if prev := l.Prev(); prev != nil {
		if err := prev.InitializeEdges(n.edgeInit); err != nil {
			return nil, err
		}
	}
	return l, nil
}

func (n *Network) InputSize() (int, error) {
	if len(n.layers) == 0 {
		return 0, ErrEmptyNetwork
	}
	return n.layers[0].Size(), nil
}

func (n *Network) OutputSize() (int, error) {
	if len(n.layers) == 0 {
		return 0, ErrEmptyNetwork
	}
	return n.layers[len(n.layers)-1].Size(), nil
}

// ClearEdgeCaches invalidates the weight matrix of every layer.
func (n *Network) ClearEdgeCaches() {
	for _, l := range n.layers {
		l.InvalidateCache()
	}
}

// Run evaluates the network on input, which must have InputSize values, each
// in [0, 1]. The stored inputs are left untouched when input is rejected.
func (n *Network) Run(input []float64) ([]float64, error) {
	size, err := n.InputSize()
	if err != nil {
		return nil, err
	}
	if len(input) != size {
		return nil, &InvalidInputError{
			Input:    append([]float64(nil), input...),
			Expected: size,
			Details:  "wrong input length",
		}
	}
	for i, x := range input {
		if !(x >= 0 && x <= 1) {
			return nil, &InvalidInputError{
				Input:    append([]float64(nil), input...),
				Expected: size,
				Details:  fmt.Sprintf("input %d = %v outside [0, 1]", i, x),
			}
		}
	}

	n.inputs = append([]float64(nil), input...)
	return n.layers[len(n.layers)-1].Output(n.normalize)
}
