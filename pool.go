package mom2pdf

import "runtime"

// Worker pool sizing constants.
const (
	// MinPoolSize ensures at least one worker is available.
	MinPoolSize = 1

	// MaxPoolSize caps parallel conversions; each holds a whole PDF in memory.
	MaxPoolSize = 8

	// cpuDivisor leaves headroom for the rest of the process.
	cpuDivisor = 2
)

// ResolvePoolSize determines how many documents to convert in parallel.
// Priority: explicit workers > GOMAXPROCS-based calculation.
// A single Converter can be shared by every worker.
func ResolvePoolSize(workers int) int {
	if workers > 0 {
		return workers
	}

	// GOMAXPROCS is adjusted by automaxprocs in containers.
	n := runtime.GOMAXPROCS(0) / cpuDivisor
	return min(max(n, MinPoolSize), MaxPoolSize)
}
