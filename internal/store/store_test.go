package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahleksu/gail-prac-app/internal/scoring"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "results.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleResult(id string, takenAt time.Time) *scoring.Result {
	return &scoring.Result{
		Version:  scoring.ResultVersion,
		ID:       id,
		TopicKey: "all",
		TakenAt:  takenAt,
		Total:    2,
		Correct:  1,
		Domains: map[string]scoring.DomainSummary{
			"A": {Correct: 1, Total: 1},
			"B": {Total: 1, Skipped: 1},
		},
	}
}

func TestResultRepo_SaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.ResultRepo()
	ctx := context.Background()

	older := sampleResult("r-old", time.Now().Add(-time.Hour))
	newer := sampleResult("r-new", time.Now())
	require.NoError(t, repo.Save(ctx, older))
	require.NoError(t, repo.Save(ctx, newer))

	latest, err := repo.Latest(ctx)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, "r-new", latest.ID)
	assert.Equal(t, 2, latest.Total)
	assert.Equal(t, 1, latest.Domains["A"].Correct)
}

func TestResultRepo_LatestEmptyIsNilNil(t *testing.T) {
	s := openTestStore(t)

	latest, err := s.ResultRepo().Latest(context.Background())
	require.NoError(t, err)
	assert.Nil(t, latest)
}

func TestResultRepo_ListNewestFirst(t *testing.T) {
	s := openTestStore(t)
	repo := s.ResultRepo()
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	for i, id := range []string{"r-1", "r-2", "r-3"} {
		require.NoError(t, repo.Save(ctx, sampleResult(id, base.Add(time.Duration(i)*time.Minute))))
	}

	results, err := repo.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, "r-3", results[0].ID)
	assert.Equal(t, "r-1", results[2].ID)

	limited, err := repo.List(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestResultRepo_SaveSameIDReplaces(t *testing.T) {
	s := openTestStore(t)
	repo := s.ResultRepo()
	ctx := context.Background()

	res := sampleResult("r-1", time.Now())
	require.NoError(t, repo.Save(ctx, res))
	res.Correct = 2
	require.NoError(t, repo.Save(ctx, res))

	results, err := repo.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 2, results[0].Correct)
}

func TestResultRepo_Clear(t *testing.T) {
	s := openTestStore(t)
	repo := s.ResultRepo()
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, sampleResult("r-1", time.Now())))
	require.NoError(t, repo.Clear(ctx))

	latest, err := repo.Latest(ctx)
	require.NoError(t, err)
	assert.Nil(t, latest)
}

func TestResultRepo_IncompatibleMajorVersion(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	// Write a row from a hypothetical future format directly.
	_, err := s.DB().ExecContext(ctx, `
		INSERT INTO results (id, version, topic_key, taken_at, total, correct, payload)
		VALUES ('r-future', 'v2', 'all', ?, 1, 1, '{}')`,
		time.Now().Format(time.RFC3339Nano))
	require.NoError(t, err)

	_, err = s.ResultRepo().Latest(ctx)
	assert.True(t, errors.Is(err, ErrIncompatibleVersion), "err = %v", err)
}

func TestDefaultDBPath_EnvOverride(t *testing.T) {
	want := filepath.Join(t.TempDir(), "custom", "results.db")
	t.Setenv("GAIL_PRAC_DB", want)

	got, err := DefaultDBPath()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
