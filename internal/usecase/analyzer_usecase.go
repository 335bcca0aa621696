package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/user/section-detector/internal/detector"
	"github.com/user/section-detector/internal/entity"
	"github.com/user/section-detector/internal/repository"
	"github.com/user/section-detector/pkg/metrics"
	"github.com/user/section-detector/pkg/utils"
)

// Analyzer defines the interface for running section detection against URLs
// or raw HTML and retrieving stored results.
type Analyzer interface {
	// AnalyzeURL renders a live URL and detects its sections. When force is
	// false a cached result is served if present.
	AnalyzeURL(ctx context.Context, url string, force bool) (*entity.DetectionResult, error)
	// AnalyzeHTML detects sections in an HTML document. Identical documents
	// share a cache entry keyed by content hash.
	AnalyzeHTML(ctx context.Context, html string) (*entity.DetectionResult, error)
	// GetResult returns the stored result for a previously analyzed source.
	GetResult(ctx context.Context, source string) (*entity.DetectionResult, error)
}

type analyzerUseCase struct {
	provider   repository.LayoutProvider
	resultRepo repository.DetectionResultRepository
	cacheRepo  repository.ResultCacheRepository
	opts       detector.Options
	renderCfg  repository.RenderConfig
	cacheTTL   time.Duration
}

// NewAnalyzer creates the analysis use case. Thresholds and render settings
// are fixed per instance; concurrent calls share nothing else.
func NewAnalyzer(
	provider repository.LayoutProvider,
	resultRepo repository.DetectionResultRepository,
	cacheRepo repository.ResultCacheRepository,
	opts detector.Options,
	renderCfg repository.RenderConfig,
	cacheTTL time.Duration,
) Analyzer {
	return &analyzerUseCase{
		provider:   provider,
		resultRepo: resultRepo,
		cacheRepo:  cacheRepo,
		opts:       opts,
		renderCfg:  renderCfg,
		cacheTTL:   cacheTTL,
	}
}

func (uc *analyzerUseCase) AnalyzeURL(ctx context.Context, url string, force bool) (*entity.DetectionResult, error) {
	if force {
		if err := uc.cacheRepo.Invalidate(ctx, url); err != nil {
			slog.Warn("Failed to invalidate cached result for forced analysis", "source", url, "error", err)
		}
		metrics.CacheHitsTotal.WithLabelValues("bypass").Inc()
	} else if cached := uc.cachedResult(ctx, url); cached != nil {
		return cached, nil
	}

	return uc.analyze(ctx, url, "url", func(ctx context.Context) ([]entity.LayoutElement, error) {
		return uc.provider.SnapshotURL(ctx, url, uc.renderCfg)
	})
}

func (uc *analyzerUseCase) AnalyzeHTML(ctx context.Context, html string) (*entity.DetectionResult, error) {
	source := "inline:" + utils.HashSource(html)
	if cached := uc.cachedResult(ctx, source); cached != nil {
		return cached, nil
	}

	return uc.analyze(ctx, source, "html", func(ctx context.Context) ([]entity.LayoutElement, error) {
		return uc.provider.SnapshotHTML(ctx, html, uc.renderCfg)
	})
}

func (uc *analyzerUseCase) GetResult(ctx context.Context, source string) (*entity.DetectionResult, error) {
	return uc.resultRepo.FindBySource(ctx, source)
}

// cachedResult returns a cached result or nil; cache errors degrade to a
// miss rather than failing the analysis.
func (uc *analyzerUseCase) cachedResult(ctx context.Context, source string) *entity.DetectionResult {
	cached, err := uc.cacheRepo.Get(ctx, source)
	if err != nil {
		slog.Warn("Result cache lookup failed, treating as miss", "source", source, "error", err)
		return nil
	}
	if cached == nil {
		metrics.CacheHitsTotal.WithLabelValues("miss").Inc()
		return nil
	}
	metrics.CacheHitsTotal.WithLabelValues("hit").Inc()
	slog.Info("Serving cached detection result", "source", source, "sections", cached.TotalSections)
	return cached
}

func (uc *analyzerUseCase) analyze(
	ctx context.Context,
	source, sourceKind string,
	snapshot func(context.Context) ([]entity.LayoutElement, error),
) (*entity.DetectionResult, error) {
	startTime := time.Now()

	elements, err := snapshot(ctx)
	if err != nil {
		uc.recordFailure(sourceKind, err)
		return nil, fmt.Errorf("failed to take layout snapshot for %s: %w", source, err)
	}

	sections, err := detector.DetectSections(elements, uc.opts)
	if err != nil {
		uc.recordFailure(sourceKind, err)
		return nil, fmt.Errorf("section detection failed for %s: %w", source, err)
	}

	duration := time.Since(startTime)
	metrics.DetectionsTotal.WithLabelValues("success", sourceKind).Inc()
	metrics.DetectionDuration.WithLabelValues(sourceKind).Observe(duration.Seconds())
	metrics.SectionsPerPage.Observe(float64(len(sections)))

	result := &entity.DetectionResult{
		ID:            uuid.NewString(),
		Source:        source,
		Sections:      sections,
		TotalSections: len(sections),
		AnalyzedAt:    time.Now().UTC(),
		DurationMS:    duration.Milliseconds(),
	}

	slog.Info("Section detection completed",
		"source", source,
		"sections", result.TotalSections,
		"elements", len(elements),
		"duration_ms", result.DurationMS,
	)

	// Persistence and caching are best-effort: the caller still gets the
	// result when either store is unavailable.
	if err := uc.resultRepo.Save(ctx, result); err != nil {
		slog.Warn("Failed to persist detection result", "source", source, "error", err)
	}
	if err := uc.cacheRepo.Set(ctx, result, uc.cacheTTL); err != nil {
		slog.Warn("Failed to cache detection result", "source", source, "error", err)
	}

	return result, nil
}

func (uc *analyzerUseCase) recordFailure(sourceKind string, err error) {
	errorType := "unknown"
	switch {
	case errors.Is(err, repository.ErrRenderTimeout):
		errorType = "timeout"
	case errors.Is(err, repository.ErrNavigationFailed):
		errorType = "navigation"
	case errors.Is(err, repository.ErrSnapshotFailed):
		errorType = "snapshot"
	case errors.Is(err, detector.ErrInvalidLayoutData):
		errorType = "invalid_layout"
	}
	metrics.DetectionsTotal.WithLabelValues("failure", sourceKind).Inc()
	slog.Error("Analysis failed", "source_kind", sourceKind, "error_type", errorType, "error", err)
}
