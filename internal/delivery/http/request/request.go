package request

// DetectSectionsRequest submits a live URL for section detection.
type DetectSectionsRequest struct {
	URL          string `json:"url"`
	ForceRefresh bool   `json:"force_refresh"`
}

// AnalyzeHTMLRequest submits an HTML document directly.
type AnalyzeHTMLRequest struct {
	HTML string `json:"html"`
}
