package detector

import (
	"fmt"
	"math"
	"strings"

	"github.com/user/section-detector/internal/entity"
)

// FilterElements reduces a raw snapshot to the subsequence of elements worth
// grouping: non-degenerate boxes, at least one kind of content, and no
// wrapper/descendant double counting. Order is preserved.
//
// The wrapper policy: when a pure layout container's entire content is
// already represented by a descendant in the list, keep the innermost
// element — unless the wrapper itself carries distinguishing background or
// border styling, in which case the wrapper wins and the nested duplicate is
// dropped.
func FilterElements(elements []entity.LayoutElement, opts Options) ([]entity.LayoutElement, error) {
	for i := range elements {
		if err := validateElement(elements[i]); err != nil {
			return nil, err
		}
	}

	significant := make([]entity.LayoutElement, 0, len(elements))
	for _, el := range elements {
		if el.Box.Width < opts.MinWidthPx || el.Box.Height < opts.MinHeightPx {
			continue
		}
		if !el.HasText && !el.HasImage && !el.HasVideo {
			continue
		}
		significant = append(significant, el)
	}

	return dropWrapperDuplicates(significant), nil
}

func validateElement(el entity.LayoutElement) error {
	dims := [...]float64{el.Box.Top, el.Box.Left, el.Box.Width, el.Box.Height}
	for _, v := range dims {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: element %d has non-finite geometry", ErrInvalidLayoutData, el.DOMOrder)
		}
	}
	if el.Box.Width < 0 || el.Box.Height < 0 {
		return fmt.Errorf("%w: element %d has negative dimensions", ErrInvalidLayoutData, el.DOMOrder)
	}
	if el.Style.BorderTopWidth < 0 || el.Style.BorderBottomWidth < 0 {
		return fmt.Errorf("%w: element %d has negative border width", ErrInvalidLayoutData, el.DOMOrder)
	}
	return nil
}

// dropWrapperDuplicates removes one half of each wrapper/descendant pair
// whose text content is identical, so a container and its sole meaningful
// child are not both counted.
func dropWrapperDuplicates(elements []entity.LayoutElement) []entity.LayoutElement {
	if len(elements) < 2 {
		return elements
	}

	drop := make(map[int]bool)
	for i, outer := range elements {
		if drop[i] {
			continue
		}
		for j := i + 1; j < len(elements); j++ {
			if drop[j] {
				continue
			}
			inner := elements[j]
			if !contains(outer.Box, inner.Box) {
				continue
			}
			if normalizeText(outer.Text) != normalizeText(inner.Text) {
				continue
			}
			if outer.HasImage != inner.HasImage || outer.HasVideo != inner.HasVideo {
				continue
			}
			// Same content, nested boxes: one of the two is redundant.
			if hasDistinguishingStyle(outer) {
				drop[j] = true
			} else {
				drop[i] = true
			}
		}
	}

	kept := elements[:0]
	for i, el := range elements {
		if !drop[i] {
			kept = append(kept, el)
		}
	}
	return kept
}

// contains reports whether outer fully encloses inner.
func contains(outer, inner entity.Box) bool {
	return inner.Top >= outer.Top &&
		inner.Left >= outer.Left &&
		inner.Bottom() <= outer.Bottom() &&
		inner.Right() <= outer.Right()
}

func hasDistinguishingStyle(el entity.LayoutElement) bool {
	return !isTransparent(el.Style.BackgroundColor) ||
		el.Style.BorderTopWidth > 0 ||
		el.Style.BorderBottomWidth > 0
}

func normalizeText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
