package detector

import (
	"strings"

	"github.com/user/section-detector/internal/entity"
)

// ReconstructSections materializes classified candidates into the final
// Section records: union bounds, whitespace-normalized text, raw markup
// concatenated in document order, and 1-based sequential ids.
func ReconstructSections(candidates []Candidate, types []entity.SectionType) []entity.Section {
	sections := make([]entity.Section, 0, len(candidates))
	for i, c := range candidates {
		sections = append(sections, reconstruct(c, types[i], i+1))
	}
	return sections
}

func reconstruct(c Candidate, sectionType entity.SectionType, id int) entity.Section {
	texts := make([]string, 0, len(c.Elements))
	markup := make([]string, 0, len(c.Elements))
	meta := entity.SectionMetadata{ElementCount: len(c.Elements)}

	for _, el := range c.Elements {
		if t := normalizeText(el.Text); t != "" {
			texts = append(texts, t)
		}
		if el.RawHTML != "" {
			markup = append(markup, el.RawHTML)
		}
		meta.HasImages = meta.HasImages || el.HasImage
		meta.HasVideos = meta.HasVideos || el.HasVideo
	}

	return entity.Section{
		ID:       id,
		Type:     sectionType,
		Bounds:   unionBounds(c.Elements),
		Content:  strings.Join(texts, " "),
		Metadata: meta,
		HTML:     strings.Join(markup, "\n"),
	}
}

// unionBounds is the minimal axis-aligned box covering every element.
func unionBounds(elements []entity.LayoutElement) entity.Bounds {
	if len(elements) == 0 {
		return entity.Bounds{}
	}
	top, left := elements[0].Box.Top, elements[0].Box.Left
	bottom, right := elements[0].Box.Bottom(), elements[0].Box.Right()
	for _, el := range elements[1:] {
		top = min(top, el.Box.Top)
		left = min(left, el.Box.Left)
		bottom = max(bottom, el.Box.Bottom())
		right = max(right, el.Box.Right())
	}
	return entity.Bounds{Top: top, Left: left, Width: right - left, Height: bottom - top}
}
