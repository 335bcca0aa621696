package detector

import (
	"strings"

	"github.com/user/section-detector/internal/entity"
)

// Candidate is an ordered, non-empty run of elements deemed visually
// contiguous. Elements within a candidate are contiguous in document order.
type Candidate struct {
	Elements []entity.LayoutElement
}

// sweepState is the fold state of the grouping pass: the candidate being
// grown and the candidates already closed.
type sweepState struct {
	current []entity.LayoutElement
	closed  []Candidate
}

// GroupElements partitions a filtered, document-ordered element sequence
// into candidates with a single left-to-right sweep. Every input element
// lands in exactly one candidate; an empty input yields no candidates.
func GroupElements(elements []entity.LayoutElement, opts Options) []Candidate {
	if len(elements) == 0 {
		return nil
	}

	state := sweepState{current: []entity.LayoutElement{elements[0]}}
	for _, el := range elements[1:] {
		state = advance(state, el, opts)
	}
	return append(state.closed, Candidate{Elements: state.current})
}

func advance(state sweepState, el entity.LayoutElement, opts Options) sweepState {
	prev := state.current[len(state.current)-1]
	if isBoundary(prev, el, opts) {
		state.closed = append(state.closed, Candidate{Elements: state.current})
		state.current = []entity.LayoutElement{el}
		return state
	}
	state.current = append(state.current, el)
	return state
}

// isBoundary decides whether el starts a new section relative to the last
// element placed in the current candidate. Overlapping elements (negative
// gap) never split: overlap indicates shared visual composition. For the
// rest, an explicit border divider is the strongest signal and wins even
// when the gap is small; then whitespace beyond the threshold; then a
// background discontinuity between two non-transparent colors.
func isBoundary(prev, el entity.LayoutElement, opts Options) bool {
	gap := el.Box.Top - prev.Box.Bottom()
	if gap < 0 {
		return false
	}
	if prev.Style.BorderBottomWidth > 0 || el.Style.BorderTopWidth > 0 {
		return true
	}
	if gap > opts.GapThresholdPx {
		return true
	}
	return backgroundDiscontinuity(prev.Style.BackgroundColor, el.Style.BackgroundColor)
}

// backgroundDiscontinuity reports a visual background change between two
// adjacent elements. An undefined or transparent color on either side is
// never a discontinuity; merging is the conservative choice.
func backgroundDiscontinuity(a, b string) bool {
	if isTransparent(a) || isTransparent(b) {
		return false
	}
	return normalizeColor(a) != normalizeColor(b)
}

func isTransparent(color string) bool {
	switch normalizeColor(color) {
	case "", "transparent", "rgba(0, 0, 0, 0)", "rgba(0,0,0,0)":
		return true
	}
	return false
}

func normalizeColor(color string) string {
	return strings.ToLower(strings.TrimSpace(color))
}
