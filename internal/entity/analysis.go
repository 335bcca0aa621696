package entity

import "time"

// DetectionResult is the stored and served outcome of analyzing one page.
// Source is the analyzed URL, or "inline:<sha256>" for direct HTML input.
type DetectionResult struct {
	ID            string    `json:"id"`
	Source        string    `json:"source"`
	Sections      []Section `json:"sections"`
	TotalSections int       `json:"total_sections"`
	AnalyzedAt    time.Time `json:"analyzed_at"`
	DurationMS    int64     `json:"duration_ms"`
}
