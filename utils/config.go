package utils

import (
	"fmt"
	"strconv"
	"strings"

	"ffnet/m"
	"ffnet/nn"
)

// Config holds network construction settings
type Config struct {
	Architecture []int
	Normalizer   string
	EdgeMin      float64
	EdgeMax      float64
	Bias         float64
}

// DefaultConfig returns the default hooks with an empty architecture
func DefaultConfig() Config {
	return Config{
		Normalizer: "sigmoid",
		EdgeMin:    nn.DefaultEdgeMin,
		EdgeMax:    nn.DefaultEdgeMax,
	}
}

// ParseArchitecture parses architecture string into slice of integers
func ParseArchitecture(archStr string) ([]int, error) {
	archParts := strings.Fields(archStr)
	arch := make([]int, len(archParts))
	for i, s := range archParts {
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("layer %d: %w", i, err)
		}
		arch[i] = n
	}
	return arch, nil
}

// ValidateConfig validates network configuration
func ValidateConfig(config *Config) error {
	if len(config.Architecture) < 1 {
		return fmt.Errorf("%w: architecture must have at least 1 layer", nn.ErrConfiguration)
	}

	for i, size := range config.Architecture {
		if size <= 0 {
			return fmt.Errorf("%w: layer %d size must be positive, got %d", nn.ErrConfiguration, i, size)
		}
	}

	if _, ok := m.NormalizerLookup[config.Normalizer]; !ok {
		return fmt.Errorf("%w: unknown normalizer %q (want one of %s)",
			nn.ErrConfiguration, config.Normalizer, strings.Join(m.NormalizerNames(), ", "))
	}

	if config.EdgeMin > config.EdgeMax {
		return fmt.Errorf("%w: edge range [%g, %g] is empty", nn.ErrConfiguration, config.EdgeMin, config.EdgeMax)
	}

	return nil
}

// BuildNetwork creates a network with hooks and layers taken from config
func BuildNetwork(config *Config) (*nn.Network, error) {
	if err := ValidateConfig(config); err != nil {
		return nil, err
	}

	net := nn.NewNetwork()
	net.SetEdgeInit(nn.EdgeInit(m.UniformEdges(config.EdgeMin, config.EdgeMax)))
	net.SetBiasInit(nn.BiasInit(m.Constant(config.Bias)))
	net.SetNormalize(nn.Normalize(m.NormalizerLookup[config.Normalizer]))

	for _, size := range config.Architecture {
		if _, err := net.CreateLayer(size); err != nil {
			return nil, err
		}
	}
	return net, nil
}
