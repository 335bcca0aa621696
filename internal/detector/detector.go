package detector

import (
	"sort"

	"github.com/user/section-detector/internal/entity"
)

// DetectSections runs the full pipeline over a layout snapshot and returns
// the page's sections in top-to-bottom order. It is deterministic and has no
// side effects; an empty snapshot (or one where nothing survives filtering)
// yields an empty list, not an error.
func DetectSections(snapshot []entity.LayoutElement, opts Options) ([]entity.Section, error) {
	ordered := make([]entity.LayoutElement, len(snapshot))
	copy(ordered, snapshot)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].DOMOrder < ordered[j].DOMOrder
	})

	filtered, err := FilterElements(ordered, opts)
	if err != nil {
		return nil, err
	}

	candidates := GroupElements(filtered, opts)
	types := ClassifyCandidates(candidates, pageContextOf(filtered, len(candidates)))
	return ReconstructSections(candidates, types), nil
}

// pageContextOf derives page extents from the filtered snapshot itself: the
// engine never sees the browser, so the page is as wide and tall as its
// surviving content.
func pageContextOf(elements []entity.LayoutElement, candidateCount int) PageContext {
	ctx := PageContext{CandidateCount: candidateCount}
	for _, el := range elements {
		ctx.Width = max(ctx.Width, el.Box.Right())
		ctx.Height = max(ctx.Height, el.Box.Bottom())
	}
	return ctx
}
