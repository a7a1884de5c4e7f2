package utils

import (
	"fmt"
	"io"
	"os"
	"time"
)

// Verbose controls whether timing statistics are printed.
// Set to false to suppress output.
var Verbose = true

// Output is the writer where timing statistics are printed.
// Defaults to os.Stdout.
var Output io.Writer = os.Stdout

// TimingStats holds timing information for one inference session
type TimingStats struct {
	TotalTime     time.Duration
	BuildTime     time.Duration
	LoadTime      time.Duration
	ForwardTime   time.Duration
	SerializeTime time.Duration
	Runs          int
}

func percent(part, total time.Duration) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}

// PrintTimingStats prints detailed timing statistics.
// Respects the Verbose flag - does nothing if Verbose is false.
func PrintTimingStats(stats *TimingStats) {
	if !Verbose {
		return
	}
	fmt.Fprintln(Output, "\n=== TIMING STATISTICS ===")
	fmt.Fprintf(Output, "Total time: %v\n", stats.TotalTime)
	fmt.Fprintf(Output, "Forward passes: %d\n", stats.Runs)
	fmt.Fprintln(Output, "\nBreakdown by operation:")
	fmt.Fprintf(Output, "  Network build: %v (%.1f%%)\n", stats.BuildTime, percent(stats.BuildTime, stats.TotalTime))
	fmt.Fprintf(Output, "  Network load: %v (%.1f%%)\n", stats.LoadTime, percent(stats.LoadTime, stats.TotalTime))
	fmt.Fprintf(Output, "  Forward pass: %v (%.1f%%)\n", stats.ForwardTime, percent(stats.ForwardTime, stats.TotalTime))
	fmt.Fprintf(Output, "  Serialization: %v (%.1f%%)\n", stats.SerializeTime, percent(stats.SerializeTime, stats.TotalTime))
	if stats.Runs > 0 {
		fmt.Fprintf(Output, "  Average forward pass: %.3fµs\n", DurationUS(stats.ForwardTime)/float64(stats.Runs))
	}
}

// DurationUS converts any time.Duration to micro-seconds as float64
func DurationUS(d time.Duration) float64 {
	return float64(d.Nanoseconds()) / 1_000.0
}
