package nn

import (
	"encoding/json"
	"fmt"
)

// Serialized shapes. Pointers on the decode side tell a missing field apart
// from a zero value.

type neuronData struct {
	Bias  float64   `json:"bias"`
	Edges []float64 `json:"edges"`
}

type layerData struct {
	Neurons []neuronData `json:"neurons"`
}

type networkData struct {
	Layers []layerData `json:"layers"`
}

type neuronDoc struct {
	Bias  *float64   `json:"bias"`
	Edges *[]float64 `json:"edges"`
}

type layerDoc struct {
	Neurons *[]neuronDoc `json:"neurons"`
}

type networkDoc struct {
	Layers *[]layerDoc `json:"layers"`
}

func (n *Network) toData() networkData {
	d := networkData{Layers: make([]layerData, len(n.layers))}
	for li, l := range n.layers {
		ld := layerData{Neurons: make([]neuronData, len(l.neurons))}
		for ni, neuron := range l.neurons {
			ld.Neurons[ni] = neuronData{
				Bias:  neuron.Bias,
				Edges: append([]float64{}, neuron.Edges...),
			}
		}
		d.Layers[li] = ld
	}
	return d
}

// Serialize encodes every layer's biases and edge weights as JSON.
// The hooks are not part of the document. It fails only when a weight or
// bias is NaN or infinite.
func (n *Network) Serialize() (string, error) {
	b, err := json.Marshal(n.toData())
	if err != nil {
		return "", fmt.Errorf("serializing network: %w", err)
	}
	return string(b), nil
}

// Deserialize rebuilds a network from a Serialize document. Biases and edges
// are assigned as stored; the hooks are the defaults.
func Deserialize(text string) (*Network, error) {
	var doc networkDoc
	if err := json.Unmarshal([]byte(text), &doc); err != nil {
		return nil, &DeserializationError{Layer: -1, Neuron: -1, Details: "decoding document", Err: err}
	}
	if doc.Layers == nil {
		return nil, &DeserializationError{Layer: -1, Neuron: -1, Details: `missing "layers"`}
	}
	layers := *doc.Layers

	sizes := make([]int, len(layers))
	for li, ld := range layers {
		if ld.Neurons == nil {
			return nil, &DeserializationError{Layer: li, Neuron: -1, Details: `missing "neurons"`}
		}
		if len(*ld.Neurons) == 0 {
			return nil, &DeserializationError{Layer: li, Neuron: -1, Details: "layer has no neurons"}
		}
		sizes[li] = len(*ld.Neurons)
	}

	n := NewNetwork()
	for li, ld := range layers {
		want := 0
		if li < len(layers)-1 {
			want = sizes[li+1]
		}

		neurons := make([]*Neuron, sizes[li])
		for ni, nd := range *ld.Neurons {
			if nd.Bias == nil {
				return nil, &DeserializationError{Layer: li, Neuron: ni, Details: `missing "bias"`}
			}
			if nd.Edges == nil {
				return nil, &DeserializationError{Layer: li, Neuron: ni, Details: `missing "edges"`}
			}
			if len(*nd.Edges) != want {
				return nil, &DeserializationError{
					Layer:   li,
					Neuron:  ni,
					Details: fmt.Sprintf("has %d edges, expected %d", len(*nd.Edges), want),
				}
			}
			neurons[ni] = &Neuron{
				Bias:  *nd.Bias,
				Edges: append([]float64{}, *nd.Edges...),
			}
		}
		n.appendLayer(neurons)
	}
	return n, nil
}
