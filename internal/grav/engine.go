package grav

import (
	"runtime"
	"sync"

	"github.com/aprato/gravbox/internal/kernel"
)

// accumulateRange fills out[start:end] with the ordered per-point prism
// sums. Both execution paths funnel through this function, so a point's sum
// is accumulated in the same order regardless of parallelism and the serial
// and parallel results are bit-for-bit identical. If prisms is empty every
// value stays exactly zero.
func accumulateRange(points Points, prisms []Prism, densities []float64, k kernel.Func, out []float64, start, end int, sink ProgressSink) {
	for l := start; l < end; l++ {
		e, n, u := points.At(l)
		var sum float64
		for m := range prisms {
			sum += k(e, n, u, prisms[m], densities[m])
		}
		out[l] = sum
		if sink != nil {
			sink.Add(1)
		}
	}
}

func accumulateSerial(points Points, prisms []Prism, densities []float64, k kernel.Func, out []float64, sink ProgressSink) {
	accumulateRange(points, prisms, densities, k, out, 0, points.Len(), sink)
}

// accumulateParallel chunks the observation points over worker goroutines.
// Workers share the read-only model and each owns a disjoint slice of out,
// so no synchronization is needed beyond the final join. The sink must
// tolerate concurrent increments.
func accumulateParallel(points Points, prisms []Prism, densities []float64, k kernel.Func, out []float64, workers int, sink ProgressSink) {
	n := points.Len()
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		accumulateSerial(points, prisms, densities, k, out, sink)
		return
	}

	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		start := w * chunk
		end := start + chunk
		if end > n {
			end = n
		}
		go func(start, end int) {
			defer wg.Done()
			accumulateRange(points, prisms, densities, k, out, start, end, sink)
		}(start, end)
	}
	wg.Wait()
}
