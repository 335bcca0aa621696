package detector

import "github.com/user/section-detector/internal/entity"

// PageContext is the page-level information the classifier may consult in
// addition to a candidate's own geometry.
type PageContext struct {
	Width          float64
	Height         float64
	CandidateCount int
}

const (
	headerMaxTop    = 150
	headerMaxHeight = 150
	heroMinHeight   = 300
	// footerMaxElementHeight caps member height for the footer rule:
	// link rows and legal text, not content blocks.
	footerMaxElementHeight = 120
	sidebarWidthRatio      = 0.3
	substantialTextLen     = 100
)

// candidateFeatures are the precomputed facts a classification rule may
// consult. Rules never see raw elements, which keeps them independently
// testable.
type candidateFeatures struct {
	index           int
	total           int
	bounds          entity.Bounds
	page            PageContext
	hasImages       bool
	hasVideos       bool
	elementCount    int
	textLen         int
	maxMemberHeight float64
}

// classificationRule pairs a label with the predicate that earns it.
type classificationRule struct {
	name    string
	matches func(candidateFeatures) bool
	label   entity.SectionType
}

// classificationRules is evaluated in order; the first match wins. Specific
// positional signals come before the generic content fallback, and no rule
// inspects text semantics — classification is purely geometric/structural.
var classificationRules = []classificationRule{
	{
		name: "header",
		matches: func(f candidateFeatures) bool {
			return f.index == 0 && f.bounds.Top < headerMaxTop && f.bounds.Height < headerMaxHeight
		},
		label: entity.SectionHeader,
	},
	{
		name: "hero",
		matches: func(f candidateFeatures) bool {
			return f.index <= 1 && (f.hasImages || f.hasVideos) && f.bounds.Height > heroMinHeight
		},
		label: entity.SectionHero,
	},
	{
		name: "footer",
		matches: func(f candidateFeatures) bool {
			return f.index == f.total-1 && f.index > 0 &&
				!f.hasImages && !f.hasVideos &&
				f.maxMemberHeight <= footerMaxElementHeight
		},
		label: entity.SectionFooter,
	},
	{
		name: "sidebar",
		matches: func(f candidateFeatures) bool {
			return f.page.Width > 0 && f.bounds.Width < sidebarWidthRatio*f.page.Width
		},
		label: entity.SectionSidebar,
	},
	{
		name: "content",
		matches: func(f candidateFeatures) bool {
			return f.elementCount > 1 || f.textLen > substantialTextLen
		},
		label: entity.SectionContent,
	},
}

// ClassifyCandidates assigns a section type to each candidate independently,
// using only its list position, geometry and media flags.
func ClassifyCandidates(candidates []Candidate, page PageContext) []entity.SectionType {
	types := make([]entity.SectionType, len(candidates))
	for i, c := range candidates {
		types[i] = classify(featuresOf(c, i, len(candidates), page))
	}
	return types
}

func classify(f candidateFeatures) entity.SectionType {
	for _, rule := range classificationRules {
		if rule.matches(f) {
			return rule.label
		}
	}
	return entity.SectionGeneric
}

func featuresOf(c Candidate, index, total int, page PageContext) candidateFeatures {
	f := candidateFeatures{
		index:        index,
		total:        total,
		bounds:       unionBounds(c.Elements),
		page:         page,
		elementCount: len(c.Elements),
	}
	for _, el := range c.Elements {
		f.hasImages = f.hasImages || el.HasImage
		f.hasVideos = f.hasVideos || el.HasVideo
		f.textLen += len(normalizeText(el.Text))
		if el.Box.Height > f.maxMemberHeight {
			f.maxMemberHeight = el.Box.Height
		}
	}
	return f
}
