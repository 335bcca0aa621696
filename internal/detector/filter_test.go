package detector

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/section-detector/internal/entity"
)

func TestFilterElements_SizeGate(t *testing.T) {
	opts := DefaultOptions()

	tests := []struct {
		name   string
		width  float64
		height float64
		kept   bool
	}{
		{"meets both minimums", 100, 30, true},
		{"too narrow", 99, 30, false},
		{"too short", 100, 29, false},
		{"comfortably large", 800, 400, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			el := entity.LayoutElement{
				Tag:     "div",
				Box:     entity.Box{Width: tt.width, Height: tt.height},
				HasText: true,
				Text:    "hello",
			}
			out, err := FilterElements([]entity.LayoutElement{el}, opts)
			require.NoError(t, err)
			assert.Equal(t, tt.kept, len(out) == 1)
		})
	}
}

func TestFilterElements_ContentGate(t *testing.T) {
	box := entity.Box{Width: 500, Height: 100}
	empty := entity.LayoutElement{Tag: "div", Box: box}
	withImage := entity.LayoutElement{Tag: "figure", Box: box, HasImage: true, DOMOrder: 1}
	withVideo := entity.LayoutElement{Tag: "div", Box: box, HasVideo: true, DOMOrder: 2}

	out, err := FilterElements([]entity.LayoutElement{empty, withImage, withVideo}, DefaultOptions())
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, 1, out[0].DOMOrder)
	assert.Equal(t, 2, out[1].DOMOrder)
}

func TestFilterElements_WrapperPrefersInnermost(t *testing.T) {
	wrapper := entity.LayoutElement{
		Tag:      "div",
		Box:      entity.Box{Top: 0, Left: 0, Width: 800, Height: 200},
		Text:     "article body",
		HasText:  true,
		DOMOrder: 0,
	}
	child := entity.LayoutElement{
		Tag:      "article",
		Box:      entity.Box{Top: 10, Left: 10, Width: 780, Height: 180},
		Text:     "article body",
		HasText:  true,
		DOMOrder: 1,
	}

	out, err := FilterElements([]entity.LayoutElement{wrapper, child}, DefaultOptions())
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "article", out[0].Tag)
}

func TestFilterElements_StyledWrapperWins(t *testing.T) {
	wrapper := entity.LayoutElement{
		Tag:      "div",
		Box:      entity.Box{Top: 0, Left: 0, Width: 800, Height: 200},
		Style:    entity.ComputedStyle{BackgroundColor: "rgb(250, 250, 250)"},
		Text:     "article body",
		HasText:  true,
		DOMOrder: 0,
	}
	child := entity.LayoutElement{
		Tag:      "article",
		Box:      entity.Box{Top: 10, Left: 10, Width: 780, Height: 180},
		Text:     "article body",
		HasText:  true,
		DOMOrder: 1,
	}

	out, err := FilterElements([]entity.LayoutElement{wrapper, child}, DefaultOptions())
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "div", out[0].Tag)
}

func TestFilterElements_DistinctContentNotDeduped(t *testing.T) {
	wrapper := entity.LayoutElement{
		Tag:      "div",
		Box:      entity.Box{Top: 0, Left: 0, Width: 800, Height: 400},
		Text:     "intro plus article body",
		HasText:  true,
		DOMOrder: 0,
	}
	child := entity.LayoutElement{
		Tag:      "article",
		Box:      entity.Box{Top: 50, Left: 10, Width: 780, Height: 300},
		Text:     "article body",
		HasText:  true,
		DOMOrder: 1,
	}

	out, err := FilterElements([]entity.LayoutElement{wrapper, child}, DefaultOptions())
	require.NoError(t, err)
	assert.Len(t, out, 2)
}

func TestFilterElements_MalformedGeometry(t *testing.T) {
	tests := []struct {
		name string
		box  entity.Box
	}{
		{"NaN top", entity.Box{Top: math.NaN(), Width: 200, Height: 100}},
		{"negative width", entity.Box{Width: -1, Height: 100}},
		{"infinite height", entity.Box{Width: 200, Height: math.Inf(1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			el := entity.LayoutElement{Tag: "div", Box: tt.box, HasText: true, Text: "x"}
			_, err := FilterElements([]entity.LayoutElement{el}, DefaultOptions())
			assert.ErrorIs(t, err, ErrInvalidLayoutData)
		})
	}
}

func TestFilterElements_PreservesOrder(t *testing.T) {
	var elements []entity.LayoutElement
	for i := 0; i < 5; i++ {
		el := textElement(i, float64(i*100), 50)
		elements = append(elements, el)
	}

	out, err := FilterElements(elements, DefaultOptions())
	require.NoError(t, err)
	require.Len(t, out, 5)
	for i, el := range out {
		assert.Equal(t, i, el.DOMOrder)
	}
}
