package entity

import (
	"fmt"
	"strings"
)

// SectionType is the semantic classification assigned to a detected section.
type SectionType string

const (
	SectionHeader  SectionType = "header"
	SectionHero    SectionType = "hero"
	SectionContent SectionType = "content"
	SectionSidebar SectionType = "sidebar"
	SectionFooter  SectionType = "footer"
	SectionGeneric SectionType = "section"
)

// Bounds is the minimal axis-aligned box covering every element of a section.
type Bounds struct {
	Top    float64 `json:"top"`
	Left   float64 `json:"left"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// SectionMetadata carries structural facts about a section's members.
type SectionMetadata struct {
	HasImages    bool `json:"hasImages"`
	HasVideos    bool `json:"hasVideos"`
	ElementCount int  `json:"elementCount"`
}

// Section is one visually coherent region of a page, reconstructed from the
// layout elements the detection engine grouped together.
type Section struct {
	ID       int             `json:"id"`
	Type     SectionType     `json:"type"`
	Bounds   Bounds          `json:"bounds"`
	Content  string          `json:"content"`
	Metadata SectionMetadata `json:"metadata"`
	HTML     string          `json:"html"`
}

// WrappedHTML returns the section's markup inside a container div that
// records the section's type and id, suitable for standalone rendering.
func (s Section) WrappedHTML() string {
	if s.HTML == "" {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "<div class=\"section section-%s\" data-section-id=\"%d\">\n", s.Type, s.ID)
	b.WriteString(s.HTML)
	b.WriteString("\n</div>")
	return b.String()
}
