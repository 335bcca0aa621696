package repository

import (
	"context"
	"errors"
	"time"

	"github.com/user/section-detector/internal/entity"
)

// Render failure kinds, propagated unchanged to callers. The engine never
// retries; retry policy, if any, belongs to whoever invoked it.
var (
	ErrRenderTimeout    = errors.New("page render timed out")
	ErrNavigationFailed = errors.New("navigation failed")
	ErrSnapshotFailed   = errors.New("layout snapshot extraction failed")
)

// RenderConfig controls how a layout provider renders a page before taking
// the snapshot.
type RenderConfig struct {
	ViewportWidth  int
	ViewportHeight int
	Timeout        time.Duration
}

// LayoutProvider defines the contract for turning a URL or an HTML document
// into a layout snapshot: the page's visible elements in document order,
// with geometry, computed style subset and content flags.
type LayoutProvider interface {
	// SnapshotURL renders a live URL and extracts its layout snapshot.
	SnapshotURL(ctx context.Context, url string, cfg RenderConfig) ([]entity.LayoutElement, error)
	// SnapshotHTML renders an HTML string and extracts its layout snapshot.
	SnapshotHTML(ctx context.Context, html string, cfg RenderConfig) ([]entity.LayoutElement, error)
}
