package postgres

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/user/section-detector/internal/entity"
	"github.com/user/section-detector/internal/repository"
)

// DetectionResultRepoImpl provides a concrete implementation for the
// DetectionResultRepository interface using PostgreSQL.
type DetectionResultRepoImpl struct {
	db *pgxpool.Pool
}

// NewDetectionResultRepo creates a new instance of DetectionResultRepoImpl.
func NewDetectionResultRepo(db *pgxpool.Pool) *DetectionResultRepoImpl {
	return &DetectionResultRepoImpl{db: db}
}

// Save stores or replaces the detection result for a source.
func (r *DetectionResultRepoImpl) Save(ctx context.Context, result *entity.DetectionResult) error {
	sectionsJSON, err := json.Marshal(result.Sections)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO detection_results (id, source, sections, total_sections, duration_ms, analyzed_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (source) DO UPDATE SET
			id = EXCLUDED.id,
			sections = EXCLUDED.sections,
			total_sections = EXCLUDED.total_sections,
			duration_ms = EXCLUDED.duration_ms,
			analyzed_at = EXCLUDED.analyzed_at;
	`

	_, err = r.db.Exec(ctx, query,
		result.ID,
		result.Source,
		sectionsJSON,
		result.TotalSections,
		result.DurationMS,
		result.AnalyzedAt,
	)
	return err
}

// FindBySource retrieves the stored detection result for a source.
func (r *DetectionResultRepoImpl) FindBySource(ctx context.Context, source string) (*entity.DetectionResult, error) {
	query := `
		SELECT id, source, sections, total_sections, duration_ms, analyzed_at
		FROM detection_results
		WHERE source = $1;
	`
	row := r.db.QueryRow(ctx, query, source)

	var result entity.DetectionResult
	var sectionsJSON []byte

	err := row.Scan(
		&result.ID,
		&result.Source,
		&sectionsJSON,
		&result.TotalSections,
		&result.DurationMS,
		&result.AnalyzedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrResultNotFound
		}
		return nil, err
	}

	if err := json.Unmarshal(sectionsJSON, &result.Sections); err != nil {
		return nil, err
	}

	return &result, nil
}
