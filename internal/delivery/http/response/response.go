package response

import (
	"time"

	"github.com/user/section-detector/internal/entity"
)

// SectionResponse is the wire form of one detected section. HTML carries the
// reconstructed markup inside its section wrapper.
type SectionResponse struct {
	ID       int                    `json:"id"`
	Type     string                 `json:"type"`
	Content  string                 `json:"content"`
	Bounds   entity.Bounds          `json:"bounds"`
	Metadata entity.SectionMetadata `json:"metadata"`
	HTML     string                 `json:"html"`
}

// DetectionResponse is the wire form of one completed analysis.
type DetectionResponse struct {
	ID            string            `json:"id"`
	Source        string            `json:"source"`
	Sections      []SectionResponse `json:"sections"`
	TotalSections int               `json:"total_sections"`
	AnalyzedAt    time.Time         `json:"analyzed_at"`
	DurationMS    int64             `json:"duration_ms"`
}

// FromResult maps a detection result entity onto its wire form.
func FromResult(result *entity.DetectionResult) DetectionResponse {
	sections := make([]SectionResponse, 0, len(result.Sections))
	for _, s := range result.Sections {
		sections = append(sections, SectionResponse{
			ID:       s.ID,
			Type:     string(s.Type),
			Content:  s.Content,
			Bounds:   s.Bounds,
			Metadata: s.Metadata,
			HTML:     s.WrappedHTML(),
		})
	}
	return DetectionResponse{
		ID:            result.ID,
		Source:        result.Source,
		Sections:      sections,
		TotalSections: result.TotalSections,
		AnalyzedAt:    result.AnalyzedAt,
		DurationMS:    result.DurationMS,
	}
}
