package repository

import (
	"context"
	"errors"

	"github.com/user/section-detector/internal/entity"
)

// ErrResultNotFound is returned when no stored result exists for a source.
var ErrResultNotFound = errors.New("detection result not found")

// DetectionResultRepository defines the interface for persisting and
// retrieving completed analyses.
type DetectionResultRepository interface {
	// Save stores the result for a source. An existing result for the same
	// source is replaced.
	Save(ctx context.Context, result *entity.DetectionResult) error
	// FindBySource retrieves the most recent result for a source.
	FindBySource(ctx context.Context, source string) (*entity.DetectionResult, error)
}
