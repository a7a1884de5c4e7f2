package nn

import (
	"encoding/json"
	"math"
	"math/rand"
	"testing"

	"ffnet/m"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerializeFormat(t *testing.T) {
	n := identityNetwork()
	n.SetEdgeInit(EdgeInit(m.Constant(0.5)))
	mustLayer(t, n, 1)
	mustLayer(t, n, 1)

	text, err := n.Serialize()
	require.NoError(t, err)
	assert.JSONEq(t, `{"layers":[
		{"neurons":[{"bias":1,"edges":[0.5]}]},
		{"neurons":[{"bias":1,"edges":[]}]}
	]}`, text)
}

func TestSerializeGeneratesValidJSON(t *testing.T) {
	n := NewNetwork()
	mustLayer(t, n, 3)
	mustLayer(t, n, 2)

	text, err := n.Serialize()
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(text)))
}

func TestSerializeEmptyNetwork(t *testing.T) {
	text, err := NewNetwork().Serialize()
	require.NoError(t, err)
	assert.JSONEq(t, `{"layers":[]}`, text)

	n, err := Deserialize(text)
	require.NoError(t, err)
	assert.Empty(t, n.Layers())
}

func TestSerializeRejectsNaN(t *testing.T) {
	n := identityNetwork()
	mustLayer(t, n, 1)
	n.Layer(0).Neuron(0).Bias = math.NaN()

	_, err := n.Serialize()
	require.Error(t, err)
}

func TestDeserializeBuildsLinkedNetwork(t *testing.T) {
	n, err := Deserialize(`{"layers":[
		{"neurons":[{"bias":0,"edges":[1,2,3]},{"bias":0,"edges":[4,5,6]}]},
		{"neurons":[{"bias":1,"edges":[]},{"bias":2,"edges":[]},{"bias":3,"edges":[]}]}
	]}`)
	require.NoError(t, err)
	require.Len(t, n.Layers(), 2)

	first, second := n.Layer(0), n.Layer(1)
	assert.Same(t, second, first.Next())
	assert.Same(t, first, second.Prev())
	assert.Equal(t, 2, first.Size())
	assert.Equal(t, 3, second.Size())
	assert.Equal(t, []float64{4, 5, 6}, first.Neuron(1).Edges)
	assert.Equal(t, 3.0, second.Neuron(2).Bias)

	w, err := second.WeightMatrix()
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}, m.MatrixToRows(w))
}

func TestDeserializedNetworkUsesDefaultHooks(t *testing.T) {
	n := identityNetwork()
	n.SetNormalize(func(x float64) float64 { return 2 * x })
	mustLayer(t, n, 1)
	mustLayer(t, n, 1)

	text, err := n.Serialize()
	require.NoError(t, err)
	restored, err := Deserialize(text)
	require.NoError(t, err)

	assert.Equal(t, 0.5, restored.Normalize()(0))
	assert.Equal(t, 0.0, restored.BiasInit()())

	out, err := restored.Run([]float64{1})
	require.NoError(t, err)
	// sigmoid((1*1)+1), not 2*((1*1)+1)
	assert.InDelta(t, m.Sigmoid(2), out[0], 1e-12)
}

func TestDeserializedNetworkBehavesTheSame(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	n := NewNetwork()
	n.SetEdgeInit(func() float64 { return rng.Float64()*2 - 1 })
	n.SetBiasInit(func() float64 { return rng.Float64()*2 - 1 })
	mustLayer(t, n, 5)
	mustLayer(t, n, 50)
	mustLayer(t, n, 50)

	input := []float64{0.5, 0.5, 0.5, 0.5, 0.5}
	want, err := n.Run(input)
	require.NoError(t, err)

	text, err := n.Serialize()
	require.NoError(t, err)
	restored, err := Deserialize(text)
	require.NoError(t, err)

	got, err := restored.Run(input)
	require.NoError(t, err)
	assert.InDeltaSlice(t, want, got, 1e-12)

	for trial := 0; trial < 10; trial++ {
		x := make([]float64, 5)
		for i := range x {
			x[i] = rng.Float64()
		}
		want, err := n.Run(x)
		require.NoError(t, err)
		got, err := restored.Run(x)
		require.NoError(t, err)
		assert.InDeltaSlice(t, want, got, 1e-12)
	}
}

func TestDeserializeErrors(t *testing.T) {
	tests := []struct {
		name   string
		doc    string
		layer  int
		neuron int
	}{
		{"not json", `not valid json`, -1, -1},
		{"missing layers", `{}`, -1, -1},
		{"missing neurons", `{"layers":[{}]}`, 0, -1},
		{"empty layer", `{"layers":[{"neurons":[]}]}`, 0, -1},
		{"missing bias", `{"layers":[{"neurons":[{"edges":[]}]}]}`, 0, 0},
		{"missing edges", `{"layers":[{"neurons":[{"bias":1}]}]}`, 0, 0},
		{"null edges", `{"layers":[{"neurons":[{"bias":1,"edges":null}]}]}`, 0, 0},
		{"non-numeric bias", `{"layers":[{"neurons":[{"bias":"x","edges":[]}]}]}`, -1, -1},
		{"non-numeric edge", `{"layers":[{"neurons":[{"bias":1,"edges":[true]}]},{"neurons":[{"bias":1,"edges":[]}]}]}`, -1, -1},
		{"too few edges", `{"layers":[
			{"neurons":[{"bias":0,"edges":[1,2]},{"bias":0,"edges":[1]}]},
			{"neurons":[{"bias":0,"edges":[]},{"bias":0,"edges":[]}]}]}`, 0, 1},
		{"edges on last layer", `{"layers":[{"neurons":[{"bias":0,"edges":[1]}]}]}`, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Deserialize(tt.doc)
			require.ErrorIs(t, err, ErrDeserialization)

			var derr *DeserializationError
			require.ErrorAs(t, err, &derr)
			assert.Equal(t, tt.layer, derr.Layer)
			assert.Equal(t, tt.neuron, derr.Neuron)
		})
	}
}
