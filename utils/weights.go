package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"ffnet/nn"
)

// SaveNetwork writes the serialized network to an indented JSON file
func SaveNetwork(filepath string, net *nn.Network) error {
	text, err := net.Serialize()
	if err != nil {
		return fmt.Errorf("failed to serialize network: %w", err)
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(text), "", "  "); err != nil {
		return fmt.Errorf("failed to indent network: %w", err)
	}
	buf.WriteByte('\n')
	return os.WriteFile(filepath, buf.Bytes(), 0644)
}

// LoadNetwork reads a network written by SaveNetwork.
// The returned network has the default hooks.
func LoadNetwork(filepath string) (*nn.Network, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read network file: %w", err)
	}
	net, err := nn.Deserialize(string(data))
	if err != nil {
		return nil, fmt.Errorf("failed to load network: %w", err)
	}
	return net, nil
}

// LoadInput reads a JSON array of input values
func LoadInput(filepath string) ([]float64, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}
	var input []float64
	if err := json.Unmarshal(data, &input); err != nil {
		return nil, fmt.Errorf("failed to unmarshal input: %w", err)
	}
	return input, nil
}
