// Package detector partitions a rendered page's layout snapshot into an
// ordered list of visually coherent sections. The pipeline is a pure,
// single-pass computation: filter insignificant elements, group the rest by
// vertical proximity and style discontinuities, classify each group with
// positional heuristics, then reconstruct bounds, text and markup.
package detector

// Options are the tunable thresholds of one detection run. They are passed
// explicitly into every call so concurrent runs with different tuning never
// interfere.
type Options struct {
	// GapThresholdPx is the minimum vertical whitespace, in pixels, treated
	// as a section boundary. A gap of exactly this value does not split.
	GapThresholdPx float64
	// MinWidthPx and MinHeightPx gate elements out of the pipeline before
	// grouping; anything smaller is considered decorative.
	MinWidthPx  float64
	MinHeightPx float64
}

// DefaultOptions returns the tuning used when callers pass no overrides.
func DefaultOptions() Options {
	return Options{
		GapThresholdPx: 20,
		MinWidthPx:     100,
		MinHeightPx:    30,
	}
}
