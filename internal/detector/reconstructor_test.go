package detector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/section-detector/internal/entity"
)

func TestReconstructSections_UnionBounds(t *testing.T) {
	a := entity.LayoutElement{
		Box:     entity.Box{Top: 10, Left: 20, Width: 300, Height: 100},
		RawHTML: "<p>a</p>", Text: "a", HasText: true,
	}
	b := entity.LayoutElement{
		Box:     entity.Box{Top: 120, Left: 5, Width: 200, Height: 80},
		RawHTML: "<p>b</p>", Text: "b", HasText: true, DOMOrder: 1,
	}

	sections := ReconstructSections(
		[]Candidate{candidateOf(a, b)},
		[]entity.SectionType{entity.SectionContent},
	)

	require.Len(t, sections, 1)
	assert.Equal(t, entity.Bounds{Top: 10, Left: 5, Width: 315, Height: 190}, sections[0].Bounds)
}

func TestReconstructSections_ContentAndMarkup(t *testing.T) {
	a := entity.LayoutElement{
		Box:     entity.Box{Width: 500, Height: 50},
		RawHTML: "<h1>Title</h1>", Text: "  Title \n\n", HasText: true,
	}
	b := entity.LayoutElement{
		Box:     entity.Box{Top: 60, Width: 500, Height: 50},
		RawHTML: "<p>Body text</p>", Text: "Body\ttext ", HasText: true, DOMOrder: 1,
		HasImage: true,
	}

	sections := ReconstructSections(
		[]Candidate{candidateOf(a, b)},
		[]entity.SectionType{entity.SectionContent},
	)

	require.Len(t, sections, 1)
	s := sections[0]
	assert.Equal(t, "Title Body text", s.Content)
	assert.Equal(t, "<h1>Title</h1>\n<p>Body text</p>", s.HTML)
	assert.Equal(t, 2, s.Metadata.ElementCount)
	assert.True(t, s.Metadata.HasImages)
	assert.False(t, s.Metadata.HasVideos)
}

func TestReconstructSections_SequentialIDs(t *testing.T) {
	candidates := []Candidate{
		candidateOf(textElement(0, 0, 50)),
		candidateOf(textElement(1, 100, 50)),
		candidateOf(textElement(2, 200, 50)),
	}
	types := []entity.SectionType{entity.SectionHeader, entity.SectionContent, entity.SectionFooter}

	sections := ReconstructSections(candidates, types)
	require.Len(t, sections, 3)
	for i, s := range sections {
		assert.Equal(t, i+1, s.ID)
		assert.Equal(t, types[i], s.Type)
	}
}

func TestSection_WrappedHTML(t *testing.T) {
	s := entity.Section{ID: 2, Type: entity.SectionHero, HTML: "<img src=\"x.jpg\">"}
	assert.Equal(t,
		"<div class=\"section section-hero\" data-section-id=\"2\">\n<img src=\"x.jpg\">\n</div>",
		s.WrappedHTML())

	assert.Empty(t, entity.Section{ID: 1, Type: entity.SectionGeneric}.WrappedHTML())
}
