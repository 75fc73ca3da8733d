package grav

import "fmt"

// Config controls one forward computation.
type Config struct {
	// Parallel spreads the observation points over worker goroutines.
	// Disable when the caller is already parallelized.
	Parallel bool

	// Workers caps the number of goroutines in the parallel path.
	// Zero means one per available CPU.
	Workers int

	// Progress requests one Sink increment per completed point. Forward
	// fails with ErrNoProgressSink if it is set without a Sink.
	Progress bool
	Sink     ProgressSink

	// SkipChecks bypasses geometry validation and the singularity scan.
	// Only for inputs known to be valid; behavior on invalid geometry is
	// then undefined. Length checks always run, they are O(1).
	SkipChecks bool

	// OnWarning receives non-fatal advisories, currently only singular
	// observation points for tensor fields. Nil disables the scan.
	OnWarning func(Warning)
}

// DefaultConfig returns the configuration used by the CLI: parallel
// execution with one worker per CPU and all checks enabled.
func DefaultConfig() Config {
	return Config{Parallel: true}
}

// Forward computes the selected gravitational field of a prism model on
// every observation point. The returned slice has one value per point, in
// the field's conventional unit (mGal for accelerations, Eötvös for tensor
// components, J/kg for the potential).
//
// Structural problems with the inputs abort the call before any numerical
// work: an unknown field tag, ragged coordinate slices, a missing progress
// sink, a density count mismatch or inverted prism boundaries. The geometry
// check can be skipped via cfg.SkipChecks. An observation point sitting on
// a tensor-field singularity is never an error; it is reported through
// cfg.OnWarning and the computation completes.
func Forward(points Points, prisms []Prism, densities []float64, field Field, cfg Config) ([]float64, error) {
	spec, ok := fields[field]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	if !points.consistent() {
		return nil, fmt.Errorf("%w: easting %d, northing %d, upward %d",
			ErrPointsMismatch, len(points.Easting), len(points.Northing), len(points.Upward))
	}
	if cfg.Progress && cfg.Sink == nil {
		return nil, ErrNoProgressSink
	}
	if len(densities) != len(prisms) {
		return nil, fmt.Errorf("%w: %d densities for %d prisms",
			ErrDensityMismatch, len(densities), len(prisms))
	}
	if !cfg.SkipChecks {
		if err := CheckPrisms(prisms); err != nil {
			return nil, err
		}
		warnSingularPoints(points, prisms, field, cfg.OnWarning)
	}
	prisms, densities = DiscardNullPrisms(prisms, densities)

	var sink ProgressSink
	if cfg.Progress {
		sink = cfg.Sink
	}

	result := make([]float64, points.Len())
	if cfg.Parallel {
		accumulateParallel(points, prisms, densities, spec.kernel, result, cfg.Workers, sink)
	} else {
		accumulateSerial(points, prisms, densities, spec.kernel, result, sink)
	}

	normalize(result, spec)
	return result, nil
}

// normalize applies the field's sign convention and unit conversion to the
// raw SI accumulation, exactly once.
func normalize(result []float64, spec fieldSpec) {
	factor := spec.scale
	if spec.negate {
		factor = -factor
	}
	if factor == 1 {
		return
	}
	for i := range result {
		result[i] *= factor
	}
}
