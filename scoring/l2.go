package scoring

import (
	"math"
	"runtime"
	"sync"

	"github.com/botirk38/bowscore/bow"
)

// Entries of a per worker below which L2 stays sequential.
const l2ParallelThreshold = 512

// L2 scores two vectors with the same inverted-distance formula as L1,
// evaluating matched words through an order-independent reduction:
// each entry of a is looked up in b and contributes independently, so
// the terms are summed in parallel when a is large enough. Results
// agree with a sequential pass up to floating-point rounding.
// Symmetric; in [0,1] for normalized inputs.
func L2(a, b bow.Vector) float64 {
	workers := runtime.GOMAXPROCS(0)
	if len(a) < 2*l2ParallelThreshold || workers < 2 {
		return -l2Partial(a, b) / 2
	}

	chunk := (len(a) + workers - 1) / workers
	partial := make([]float64, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := min(lo+chunk, len(a))
		if lo >= hi {
			break
		}
		wg.Add(1)
		go func(w int, part bow.Vector) {
			defer wg.Done()
			partial[w] = l2Partial(part, b)
		}(w, a[lo:hi])
	}
	wg.Wait()

	var sum float64
	for _, p := range partial {
		sum += p
	}
	return -sum / 2
}

func l2Partial(a, b bow.Vector) float64 {
	var sum float64
	for _, e := range a {
		wi, ok := b.Get(e.ID)
		if !ok {
			continue
		}
		// stored zeros on both sides contribute nothing
		if e.Weight == 0 && wi == 0 {
			continue
		}
		sum += math.Abs(e.Weight-wi) - math.Abs(e.Weight) - math.Abs(wi)
	}
	return sum
}
