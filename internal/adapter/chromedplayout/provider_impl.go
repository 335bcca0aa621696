package chromedplayout

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"github.com/user/section-detector/internal/entity"
	"github.com/user/section-detector/internal/repository"
)

// layoutScript runs inside the rendered page and serializes every visible
// element into the layout snapshot shape: geometry, the computed-style
// subset the engine consults, content flags and document-order index.
// Display:none, visibility:hidden and near-zero-area nodes are dropped at
// the source; structural roots never carry section content.
const layoutScript = `
(() => {
	const skip = new Set(['html', 'head', 'body', 'script', 'style', 'noscript', 'link', 'meta', 'title']);
	const out = [];
	const elements = document.querySelectorAll('*');
	for (let i = 0; i < elements.length; i++) {
		const el = elements[i];
		const tag = el.tagName.toLowerCase();
		if (skip.has(tag)) continue;
		const rect = el.getBoundingClientRect();
		const style = window.getComputedStyle(el);
		if (style.display === 'none' || style.visibility === 'hidden') continue;
		if (rect.width < 1 || rect.height < 1) continue;
		const text = (el.textContent || '').trim();
		out.push({
			tag: tag,
			box: {
				top: rect.top + window.scrollY,
				left: rect.left + window.scrollX,
				width: rect.width,
				height: rect.height
			},
			style: {
				backgroundColor: style.backgroundColor,
				borderTopWidth: parseFloat(style.borderTopWidth) || 0,
				borderBottomWidth: parseFloat(style.borderBottomWidth) || 0,
				marginTop: parseFloat(style.marginTop) || 0,
				marginBottom: parseFloat(style.marginBottom) || 0,
				paddingTop: parseFloat(style.paddingTop) || 0,
				paddingBottom: parseFloat(style.paddingBottom) || 0
			},
			text: text,
			hasText: text.length > 0,
			hasImage: tag === 'img' || el.querySelector('img') !== null,
			hasVideo: tag === 'video' || tag === 'iframe' || el.querySelector('video, iframe') !== null,
			domOrder: i,
			rawHtml: el.outerHTML
		});
	}
	return out;
})()
`

// ChromedpProvider implements the LayoutProvider interface with a headless
// Chrome rendered through chromedp.
type ChromedpProvider struct {
	allocatorPool *sync.Pool
}

// NewChromedpProvider creates a layout provider backed by a pool of
// pre-warmed browser allocators.
func NewChromedpProvider(maxConcurrency int) (repository.LayoutProvider, error) {
	pool := &sync.Pool{
		New: func() interface{} {
			opts := append(chromedp.DefaultExecAllocatorOptions[:],
				chromedp.Flag("headless", true),
				chromedp.Flag("disable-gpu", true),
				chromedp.Flag("no-sandbox", true),
				chromedp.Flag("disable-dev-shm-usage", true),
			)
			allocCtx, _ := chromedp.NewExecAllocator(context.Background(), opts...)
			return allocCtx
		},
	}

	// Pre-warm the pool
	for i := 0; i < maxConcurrency; i++ {
		allocCtx := pool.Get().(context.Context)
		pool.Put(allocCtx)
	}

	return &ChromedpProvider{allocatorPool: pool}, nil
}

// SnapshotURL navigates to a live URL and extracts its layout snapshot.
func (p *ChromedpProvider) SnapshotURL(ctx context.Context, url string, cfg repository.RenderConfig) ([]entity.LayoutElement, error) {
	return p.snapshot(ctx, cfg, chromedp.Navigate(url))
}

// SnapshotHTML renders an HTML string in a blank page and extracts its
// layout snapshot.
func (p *ChromedpProvider) SnapshotHTML(ctx context.Context, html string, cfg repository.RenderConfig) ([]entity.LayoutElement, error) {
	setContent := chromedp.ActionFunc(func(ctx context.Context) error {
		frameTree, err := page.GetFrameTree().Do(ctx)
		if err != nil {
			return err
		}
		return page.SetDocumentContent(frameTree.Frame.ID, html).Do(ctx)
	})
	return p.snapshot(ctx, cfg, chromedp.Navigate("about:blank"), setContent)
}

func (p *ChromedpProvider) snapshot(ctx context.Context, cfg repository.RenderConfig, load ...chromedp.Action) ([]entity.LayoutElement, error) {
	allocCtx := p.allocatorPool.Get().(context.Context)
	defer p.allocatorPool.Put(allocCtx)

	taskCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	if cfg.Timeout > 0 {
		taskCtx, cancel = context.WithTimeout(taskCtx, cfg.Timeout)
		defer cancel()
	}

	width, height := int64(cfg.ViewportWidth), int64(cfg.ViewportHeight)
	if width <= 0 {
		width = 1280
	}
	if height <= 0 {
		height = 800
	}

	if err := chromedp.Run(taskCtx, chromedp.EmulateViewport(width, height)); err != nil {
		return nil, fmt.Errorf("%w: %v", repository.ErrSnapshotFailed, err)
	}

	if err := chromedp.Run(taskCtx, load...); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: %v", repository.ErrRenderTimeout, err)
		}
		return nil, fmt.Errorf("%w: %v", repository.ErrNavigationFailed, err)
	}

	// Give late-loading resources a moment to settle before measuring.
	_ = chromedp.Run(taskCtx, chromedp.Sleep(250*time.Millisecond))

	var elements []entity.LayoutElement
	if err := chromedp.Run(taskCtx, chromedp.Evaluate(layoutScript, &elements)); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: %v", repository.ErrRenderTimeout, err)
		}
		return nil, fmt.Errorf("%w: %v", repository.ErrSnapshotFailed, err)
	}

	return elements, nil
}
