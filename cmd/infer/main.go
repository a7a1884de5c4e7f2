// ffnet-infer: evaluate a feed-forward network on one input vector
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"

	"ffnet/m"
	"ffnet/nn"
	"ffnet/utils"
)

var (
	networkFile = flag.String("network", "", "Network JSON file to load")
	inputFile   = flag.String("input", "", "Input JSON file (array of values in [0, 1])")
	arch        = flag.String("arch", "4 8 2", "Layer sizes for a new random network")
	normalizer  = flag.String("normalize", "sigmoid", "Normalization function (sigmoid, tanh, relu, identity)")
	edgeMin     = flag.Float64("edge-min", nn.DefaultEdgeMin, "Lower bound of random edge weights")
	edgeMax     = flag.Float64("edge-max", nn.DefaultEdgeMax, "Upper bound of random edge weights")
	bias        = flag.Float64("bias", 0, "Initial bias of every neuron")
	saveFile    = flag.String("save", "", "Write the network to this JSON file")
	verbose     = flag.Bool("verbose", true, "Print timing statistics")
)

func main() {
	flag.Parse()
	utils.Verbose = *verbose

	var stats utils.TimingStats
	start := time.Now()

	net, err := loadOrBuild(&stats)
	if err != nil {
		log.Fatalf("Failed to prepare network: %v", err)
	}

	inputSize, err := net.InputSize()
	if err != nil {
		log.Fatalf("Network has no input layer: %v", err)
	}

	var input []float64
	if *inputFile != "" {
		input, err = utils.LoadInput(*inputFile)
		if err != nil {
			log.Fatalf("Failed to load input: %v", err)
		}
	} else {
		input = make([]float64, inputSize)
		for i := range input {
			input[i] = rand.Float64()
		}
	}
	fmt.Printf("Input (%d): %v\n", len(input), input)

	t := time.Now()
	output, err := net.Run(input)
	stats.ForwardTime += time.Since(t)
	stats.Runs++
	if err != nil {
		log.Fatalf("Forward pass failed: %v", err)
	}
	fmt.Printf("Output (%d): %v\n", len(output), output)

	if *saveFile != "" {
		t := time.Now()
		if err := utils.SaveNetwork(*saveFile, net); err != nil {
			log.Fatalf("Failed to save network: %v", err)
		}
		stats.SerializeTime = time.Since(t)
		fmt.Printf("Saved network to %s\n", *saveFile)
	}

	stats.TotalTime = time.Since(start)
	utils.PrintTimingStats(&stats)
}

func loadOrBuild(stats *utils.TimingStats) (*nn.Network, error) {
	t := time.Now()
	if *networkFile != "" {
		net, err := utils.LoadNetwork(*networkFile)
		stats.LoadTime = time.Since(t)
		if err != nil {
			return nil, err
		}
		// hooks are not stored with the network
		fn, ok := m.NormalizerLookup[*normalizer]
		if !ok {
			return nil, fmt.Errorf("unknown normalizer %q", *normalizer)
		}
		net.SetNormalize(nn.Normalize(fn))
		fmt.Printf("Loaded %d layers from %s\n", len(net.Layers()), *networkFile)
		return net, nil
	}

	layers, err := utils.ParseArchitecture(*arch)
	if err != nil {
		return nil, fmt.Errorf("parsing -arch: %w", err)
	}
	config := utils.Config{
		Architecture: layers,
		Normalizer:   *normalizer,
		EdgeMin:      *edgeMin,
		EdgeMax:      *edgeMax,
		Bias:         *bias,
	}
	net, err := utils.BuildNetwork(&config)
	stats.BuildTime = time.Since(t)
	if err != nil {
		return nil, err
	}
	fmt.Printf("Built network %v\n", layers)
	return net, nil
}
