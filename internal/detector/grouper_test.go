package detector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/section-detector/internal/entity"
)

func textElement(order int, top, height float64) entity.LayoutElement {
	return entity.LayoutElement{
		Tag:      "p",
		Box:      entity.Box{Top: top, Left: 0, Width: 800, Height: height},
		Text:     "some text",
		HasText:  true,
		DOMOrder: order,
		RawHTML:  "<p>some text</p>",
	}
}

func TestGroupElements_Empty(t *testing.T) {
	assert.Empty(t, GroupElements(nil, DefaultOptions()))
}

func TestGroupElements_SingleElement(t *testing.T) {
	groups := GroupElements([]entity.LayoutElement{textElement(0, 0, 60)}, DefaultOptions())
	require.Len(t, groups, 1)
	assert.Len(t, groups[0].Elements, 1)
}

func TestGroupElements_GapAboveThresholdSplits(t *testing.T) {
	// Gaps of 40px and 160px, both above the 20px default.
	elements := []entity.LayoutElement{
		textElement(0, 0, 60),
		textElement(1, 100, 40),
		textElement(2, 300, 200),
	}

	groups := GroupElements(elements, DefaultOptions())
	require.Len(t, groups, 3)
	for _, g := range groups {
		assert.Len(t, g.Elements, 1)
	}
}

func TestGroupElements_SmallGapMerges(t *testing.T) {
	elements := []entity.LayoutElement{
		textElement(0, 0, 60),
		textElement(1, 65, 40), // 5px gap
	}

	groups := GroupElements(elements, DefaultOptions())
	require.Len(t, groups, 1)
	assert.Len(t, groups[0].Elements, 2)
}

func TestGroupElements_ThresholdBoundary(t *testing.T) {
	opts := DefaultOptions()

	tests := []struct {
		name       string
		gap        float64
		wantGroups int
	}{
		{"exactly at threshold merges", opts.GapThresholdPx, 1},
		{"one past threshold splits", opts.GapThresholdPx + 1, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			elements := []entity.LayoutElement{
				textElement(0, 0, 60),
				textElement(1, 60+tt.gap, 40),
			}
			assert.Len(t, GroupElements(elements, opts), tt.wantGroups)
		})
	}
}

func TestGroupElements_OverlapNeverSplits(t *testing.T) {
	first := textElement(0, 0, 100)
	overlay := textElement(1, 50, 200) // starts inside the previous element
	overlay.Style.BackgroundColor = "rgb(255, 0, 0)"
	first.Style.BackgroundColor = "rgb(0, 0, 255)"
	overlay.Style.BorderTopWidth = 2

	groups := GroupElements([]entity.LayoutElement{first, overlay}, DefaultOptions())
	require.Len(t, groups, 1)
	assert.Len(t, groups[0].Elements, 2)
}

func TestGroupElements_BackgroundDiscontinuitySplits(t *testing.T) {
	a := textElement(0, 0, 60)
	a.Style.BackgroundColor = "rgb(255, 255, 255)"
	b := textElement(1, 65, 40) // 5px gap, below threshold
	b.Style.BackgroundColor = "rgb(240, 240, 240)"

	groups := GroupElements([]entity.LayoutElement{a, b}, DefaultOptions())
	assert.Len(t, groups, 2)
}

func TestGroupElements_TransparentBackgroundMerges(t *testing.T) {
	// An undefined/transparent background is never a discontinuity.
	a := textElement(0, 0, 60)
	a.Style.BackgroundColor = "rgb(255, 255, 255)"
	b := textElement(1, 65, 40)
	b.Style.BackgroundColor = "rgba(0, 0, 0, 0)"

	groups := GroupElements([]entity.LayoutElement{a, b}, DefaultOptions())
	assert.Len(t, groups, 1)
}

func TestGroupElements_BorderDividerWinsOverSmallGap(t *testing.T) {
	a := textElement(0, 0, 60)
	a.Style.BorderBottomWidth = 1
	b := textElement(1, 62, 40) // 2px gap

	groups := GroupElements([]entity.LayoutElement{a, b}, DefaultOptions())
	assert.Len(t, groups, 2)

	// Top border on the incoming element is an equally valid divider.
	a.Style.BorderBottomWidth = 0
	b.Style.BorderTopWidth = 3
	groups = GroupElements([]entity.LayoutElement{a, b}, DefaultOptions())
	assert.Len(t, groups, 2)
}

func TestGroupElements_SplitsOnlyOncePerBoundary(t *testing.T) {
	// Background discontinuity and a large gap fire together; there must be
	// exactly one boundary, not two.
	a := textElement(0, 0, 60)
	a.Style.BackgroundColor = "rgb(0, 0, 0)"
	b := textElement(1, 120, 40)
	b.Style.BackgroundColor = "rgb(255, 255, 255)"

	groups := GroupElements([]entity.LayoutElement{a, b}, DefaultOptions())
	require.Len(t, groups, 2)
	assert.Len(t, groups[0].Elements, 1)
	assert.Len(t, groups[1].Elements, 1)
}

func TestGroupElements_CoversInputExactly(t *testing.T) {
	elements := []entity.LayoutElement{
		textElement(0, 0, 60),
		textElement(1, 65, 40),
		textElement(2, 300, 100),
		textElement(3, 405, 50),
		textElement(4, 700, 80),
	}

	groups := GroupElements(elements, DefaultOptions())

	var seen []int
	for _, g := range groups {
		require.NotEmpty(t, g.Elements)
		for _, el := range g.Elements {
			seen = append(seen, el.DOMOrder)
		}
	}
	assert.Equal(t, []int{0, 1, 2, 3, 4}, seen)
}
