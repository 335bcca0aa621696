package entity

// Box is an element's bounding box in page pixel coordinates.
type Box struct {
	Top    float64 `json:"top"`
	Left   float64 `json:"left"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Bottom returns the page-space Y coordinate of the box's lower edge.
func (b Box) Bottom() float64 {
	return b.Top + b.Height
}

// Right returns the page-space X coordinate of the box's right edge.
func (b Box) Right() float64 {
	return b.Left + b.Width
}

// ComputedStyle is the subset of an element's computed style that the
// detection engine consults for boundary signals.
type ComputedStyle struct {
	BackgroundColor   string  `json:"backgroundColor"`
	BorderTopWidth    float64 `json:"borderTopWidth"`
	BorderBottomWidth float64 `json:"borderBottomWidth"`
	MarginTop         float64 `json:"marginTop"`
	MarginBottom      float64 `json:"marginBottom"`
	PaddingTop        float64 `json:"paddingTop"`
	PaddingBottom     float64 `json:"paddingBottom"`
}

// LayoutElement is one visible rendered DOM node as reported by a layout
// provider. Elements are read-only snapshots; DOMOrder is the only identity
// carried across pipeline stages.
type LayoutElement struct {
	Tag      string        `json:"tag"`
	Box      Box           `json:"box"`
	Style    ComputedStyle `json:"style"`
	Text     string        `json:"text"`
	HasText  bool          `json:"hasText"`
	HasImage bool          `json:"hasImage"`
	HasVideo bool          `json:"hasVideo"`
	DOMOrder int           `json:"domOrder"`
	RawHTML  string        `json:"rawHtml"`
}
