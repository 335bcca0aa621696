// Package staticlayout approximates a layout snapshot from static HTML
// without a browser. Geometry is estimated from tag identity and text
// length, so positions are coarse: the provider exists for environments
// without Chrome and for exercising the detection pipeline in tests, not
// for faithful measurement.
package staticlayout

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/user/section-detector/internal/entity"
	"github.com/user/section-detector/internal/repository"
)

const (
	defaultPageWidth = 1280
	horizontalMargin = 40
	lineHeight       = 24
	charsPerLine     = 90
	siblingGap       = 8
	// containerGap separates blocks that live in different parent
	// containers; it is deliberately larger than the default gap threshold
	// so container boundaries become section boundaries.
	containerGap = 40
)

// blockTags are the elements the static provider measures. Inline content is
// represented through its nearest block ancestor.
var blockTags = map[string]bool{
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"p": true, "blockquote": true, "pre": true, "ul": true, "ol": true,
	"table": true, "figure": true, "img": true, "video": true, "iframe": true,
}

var headingHeights = map[string]float64{
	"h1": 56, "h2": 48, "h3": 40, "h4": 36, "h5": 32, "h6": 30,
}

// StaticProvider implements the LayoutProvider interface by parsing HTML
// with goquery and synthesizing plausible geometry.
type StaticProvider struct{}

// NewStaticProvider creates a browserless layout provider.
func NewStaticProvider() repository.LayoutProvider {
	return &StaticProvider{}
}

// SnapshotURL is unsupported: the static provider never navigates. Callers
// that need live pages use the Chrome-backed provider.
func (p *StaticProvider) SnapshotURL(ctx context.Context, url string, cfg repository.RenderConfig) ([]entity.LayoutElement, error) {
	return nil, fmt.Errorf("%w: static provider cannot render URLs", repository.ErrNavigationFailed)
}

// SnapshotHTML parses the document and lays its block elements out top to
// bottom in document order.
func (p *StaticProvider) SnapshotHTML(ctx context.Context, html string, cfg repository.RenderConfig) ([]entity.LayoutElement, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", repository.ErrSnapshotFailed, err)
	}

	width := float64(cfg.ViewportWidth)
	if width <= 0 {
		width = defaultPageWidth
	}
	contentWidth := width - 2*horizontalMargin

	var (
		elements   []entity.LayoutElement
		cursor     float64
		lastParent *goquery.Selection
	)

	doc.Find("body *").Each(func(i int, sel *goquery.Selection) {
		tag := goquery.NodeName(sel)
		if !blockTags[tag] {
			return
		}
		// Nested blocks (a list inside a blockquote, an img inside a
		// figure) are represented by their outermost block alone.
		if sel.ParentsFiltered(blockSelector).Length() > 0 {
			return
		}

		parent := sel.Parent()
		if len(elements) > 0 {
			if lastParent != nil && lastParent.Length() > 0 && parent.Length() > 0 && lastParent.Get(0) == parent.Get(0) {
				cursor += siblingGap
			} else {
				cursor += containerGap
			}
		}
		lastParent = parent

		text := strings.TrimSpace(sel.Text())
		raw, _ := goquery.OuterHtml(sel)

		el := entity.LayoutElement{
			Tag: tag,
			Box: entity.Box{
				Top:    cursor,
				Left:   horizontalMargin,
				Width:  contentWidth,
				Height: estimateHeight(tag, text),
			},
			Style:    styleFromAttr(sel),
			Text:     text,
			HasText:  text != "",
			HasImage: tag == "img" || sel.Find("img").Length() > 0,
			HasVideo: tag == "video" || tag == "iframe" || sel.Find("video, iframe").Length() > 0,
			DOMOrder: len(elements),
			RawHTML:  strings.TrimSpace(raw),
		}
		elements = append(elements, el)
		cursor = el.Box.Bottom()
	})

	return elements, nil
}

var blockSelector = func() string {
	tags := make([]string, 0, len(blockTags))
	for tag := range blockTags {
		tags = append(tags, tag)
	}
	return strings.Join(tags, ", ")
}()

func estimateHeight(tag, text string) float64 {
	if h, ok := headingHeights[tag]; ok {
		return h
	}
	switch tag {
	case "img", "figure":
		return 300
	case "video", "iframe":
		return 360
	}
	lines := math.Ceil(float64(len(text)) / charsPerLine)
	if lines < 1 {
		lines = 1
	}
	return lines * lineHeight
}

// styleFromAttr recovers the style subset from an inline style attribute,
// the only styling a static document exposes without a CSS engine.
func styleFromAttr(sel *goquery.Selection) entity.ComputedStyle {
	var style entity.ComputedStyle
	attr, ok := sel.Attr("style")
	if !ok {
		return style
	}
	for _, decl := range strings.Split(attr, ";") {
		name, value, found := strings.Cut(decl, ":")
		if !found {
			continue
		}
		name = strings.ToLower(strings.TrimSpace(name))
		value = strings.TrimSpace(value)
		switch name {
		case "background-color", "background":
			style.BackgroundColor = value
		case "border-top-width":
			style.BorderTopWidth = parsePx(value)
		case "border-bottom-width":
			style.BorderBottomWidth = parsePx(value)
		case "border-top":
			if parts := strings.Fields(value); len(parts) > 0 {
				style.BorderTopWidth = parsePx(parts[0])
			}
		case "border-bottom":
			if parts := strings.Fields(value); len(parts) > 0 {
				style.BorderBottomWidth = parsePx(parts[0])
			}
		}
	}
	return style
}

func parsePx(s string) float64 {
	s = strings.TrimSuffix(strings.TrimSpace(s), "px")
	var v float64
	if _, err := fmt.Sscanf(s, "%f", &v); err != nil {
		return 0
	}
	return v
}
