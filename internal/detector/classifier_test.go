package detector

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/section-detector/internal/entity"
)

func candidateOf(elements ...entity.LayoutElement) Candidate {
	return Candidate{Elements: elements}
}

func TestClassify_RuleTable(t *testing.T) {
	page := PageContext{Width: 1280, Height: 3000}

	tests := []struct {
		name string
		f    candidateFeatures
		want entity.SectionType
	}{
		{
			name: "first short candidate near top is a header",
			f: candidateFeatures{
				index: 0, total: 3, page: page,
				bounds:       entity.Bounds{Top: 0, Width: 1280, Height: 80},
				elementCount: 1,
			},
			want: entity.SectionHeader,
		},
		{
			name: "tall media candidate near top is a hero",
			f: candidateFeatures{
				index: 1, total: 3, page: page,
				bounds:       entity.Bounds{Top: 100, Width: 1280, Height: 500},
				hasImages:    true,
				elementCount: 2,
			},
			want: entity.SectionHero,
		},
		{
			name: "last media-free candidate of short elements is a footer",
			f: candidateFeatures{
				index: 2, total: 3, page: page,
				bounds:          entity.Bounds{Top: 2800, Width: 1280, Height: 120},
				elementCount:    3,
				maxMemberHeight: 40,
			},
			want: entity.SectionFooter,
		},
		{
			name: "narrow column is a sidebar",
			f: candidateFeatures{
				index: 1, total: 4, page: page,
				bounds:          entity.Bounds{Top: 400, Width: 300, Height: 900},
				elementCount:    2,
				maxMemberHeight: 400,
			},
			want: entity.SectionSidebar,
		},
		{
			name: "multi-element wide candidate defaults to content",
			f: candidateFeatures{
				index: 1, total: 4, page: page,
				bounds:          entity.Bounds{Top: 600, Width: 1000, Height: 800},
				elementCount:    4,
				maxMemberHeight: 300,
			},
			want: entity.SectionContent,
		},
		{
			name: "substantial text alone is content",
			f: candidateFeatures{
				index: 1, total: 4, page: page,
				bounds:          entity.Bounds{Top: 600, Width: 1000, Height: 200},
				elementCount:    1,
				textLen:         250,
				maxMemberHeight: 200,
			},
			want: entity.SectionContent,
		},
		{
			name: "single sparse candidate falls through to generic",
			f: candidateFeatures{
				index: 1, total: 4, page: page,
				bounds:          entity.Bounds{Top: 600, Width: 1000, Height: 200},
				elementCount:    1,
				textLen:         20,
				maxMemberHeight: 200,
			},
			want: entity.SectionGeneric,
		},
		{
			name: "tall first candidate is not a header",
			f: candidateFeatures{
				index: 0, total: 2, page: page,
				bounds:          entity.Bounds{Top: 0, Width: 1280, Height: 400},
				elementCount:    3,
				maxMemberHeight: 200,
			},
			want: entity.SectionContent,
		},
		{
			name: "sole candidate is never a footer",
			f: candidateFeatures{
				index: 0, total: 1, page: page,
				bounds:          entity.Bounds{Top: 200, Width: 1280, Height: 100},
				elementCount:    2,
				maxMemberHeight: 40,
			},
			want: entity.SectionContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classify(tt.f))
		})
	}
}

func TestClassifyCandidates_HeaderThenHero(t *testing.T) {
	header := textElement(0, 0, 100)
	heroImage := entity.LayoutElement{
		Tag:      "img",
		Box:      entity.Box{Top: 160, Left: 0, Width: 1280, Height: 450},
		HasImage: true,
		DOMOrder: 1,
		RawHTML:  `<img src="hero.jpg">`,
	}

	candidates := []Candidate{candidateOf(header), candidateOf(heroImage)}
	types := ClassifyCandidates(candidates, PageContext{Width: 1280, Height: 700, CandidateCount: 2})

	require.Len(t, types, 2)
	assert.Equal(t, entity.SectionHeader, types[0])
	assert.Equal(t, entity.SectionHero, types[1])
}

func TestClassifyCandidates_SpecificRulesBeatDefault(t *testing.T) {
	// A narrow last candidate with media is a sidebar, not footer or content.
	el := entity.LayoutElement{
		Tag:      "aside",
		Box:      entity.Box{Top: 500, Left: 1000, Width: 280, Height: 800},
		Text:     strings.Repeat("related link ", 20),
		HasText:  true,
		HasImage: true,
		DOMOrder: 5,
	}

	types := ClassifyCandidates([]Candidate{candidateOf(el)}, PageContext{Width: 1280, Height: 2000, CandidateCount: 1})
	require.Len(t, types, 1)
	assert.Equal(t, entity.SectionSidebar, types[0])
}
