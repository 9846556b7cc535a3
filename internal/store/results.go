package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"golang.org/x/mod/semver"

	"github.com/ahleksu/gail-prac-app/internal/scoring"
)

// ErrIncompatibleVersion is returned when a stored payload was written by a
// format this build cannot read.
var ErrIncompatibleVersion = errors.New("incompatible result payload version")

// ResultRepo persists finalized quiz results. Absence of a stored result is
// reported as a nil result, not an error.
type ResultRepo interface {
	// Save stores a finalized result.
	Save(ctx context.Context, res *scoring.Result) error

	// Latest returns the most recent result, or nil if none exist.
	Latest(ctx context.Context) (*scoring.Result, error)

	// List returns up to limit results, newest first (0 = no limit).
	List(ctx context.Context, limit int) ([]*scoring.Result, error)

	// Clear deletes all stored results.
	Clear(ctx context.Context) error
}

type resultRepo struct {
	db *sql.DB
}

func (r *resultRepo) Save(ctx context.Context, res *scoring.Result) error {
	payload, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO results (id, version, topic_key, taken_at, total, correct, payload)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		res.ID, res.Version, res.TopicKey, res.TakenAt.Format(time.RFC3339Nano),
		res.Total, res.Correct, string(payload),
	)
	if err != nil {
		return fmt.Errorf("insert result: %w", err)
	}
	return nil
}

func (r *resultRepo) Latest(ctx context.Context) (*scoring.Result, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT version, payload FROM results ORDER BY taken_at DESC LIMIT 1`)

	var version, payload string
	if err := row.Scan(&version, &payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("query latest result: %w", err)
	}
	return decodeResult(version, payload)
}

func (r *resultRepo) List(ctx context.Context, limit int) ([]*scoring.Result, error) {
	query := `SELECT version, payload FROM results ORDER BY taken_at DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query results: %w", err)
	}
	defer rows.Close()

	var results []*scoring.Result
	for rows.Next() {
		var version, payload string
		if err := rows.Scan(&version, &payload); err != nil {
			return nil, fmt.Errorf("scan result: %w", err)
		}
		res, err := decodeResult(version, payload)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, rows.Err()
}

func (r *resultRepo) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM results`); err != nil {
		return fmt.Errorf("clear results: %w", err)
	}
	return nil
}

// decodeResult validates the payload format version and decodes the stored
// JSON. A different major version cannot be read by this build.
func decodeResult(version, payload string) (*scoring.Result, error) {
	if !semver.IsValid(version) || semver.Major(version) != semver.Major(scoring.ResultVersion) {
		return nil, fmt.Errorf("%w: got %q, want %s", ErrIncompatibleVersion, version, semver.Major(scoring.ResultVersion))
	}
	var res scoring.Result
	if err := json.Unmarshal([]byte(payload), &res); err != nil {
		return nil, fmt.Errorf("decode result payload: %w", err)
	}
	return &res, nil
}
