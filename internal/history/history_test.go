// Copyright Speech Synthesis Lab, 2026. All rights reserved.

package history

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/speechlab/slidegen/pkg/types"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	cfg := types.HistoryConfig{DBPath: filepath.Join(t.TempDir(), "state", "history.db")}
	s, err := Open(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func record(id string, ok bool) *types.BuildRecord {
	return &types.BuildRecord{
		TextDir:    "text/" + id,
		OutputPath: "out/" + id + ".pdf",
		Snippets:   []string{"intro", "outro"},
		Passes:     []types.PassResult{{Pass: 1}, {Pass: 2}},
		Succeeded:  ok,
		StartedAt:  time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC),
		Duration:   1500 * time.Millisecond,
	}
}

func TestOpenCreatesParentDirs(t *testing.T) {
	s := openTestStore(t)
	builds, err := s.Recent(10)
	require.NoError(t, err)
	assert.Empty(t, builds)
}

func TestRecordAndRecent(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.Record(record("first", true)))
	require.NoError(t, s.Record(record("second", false)))

	builds, err := s.Recent(10)
	require.NoError(t, err)
	require.Len(t, builds, 2)

	// Newest first.
	assert.Equal(t, "out/second.pdf", builds[0].OutputPath)
	assert.False(t, builds[0].Succeeded)
	assert.Equal(t, "out/first.pdf", builds[1].OutputPath)
	assert.True(t, builds[1].Succeeded)

	got := builds[1]
	assert.Equal(t, "text/first", got.TextDir)
	assert.Equal(t, []string{"intro", "outro"}, got.Snippets)
	assert.Equal(t, 2, got.Passes)
	assert.Equal(t, 1500*time.Millisecond, got.Duration)
	assert.Equal(t, time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC), got.StartedAt)
}

func TestRecentLimit(t *testing.T) {
	s := openTestStore(t)
	for i := 0; i < 5; i++ {
		require.NoError(t, s.Record(record("run", true)))
	}

	builds, err := s.Recent(3)
	require.NoError(t, err)
	assert.Len(t, builds, 3)

	// Non-positive limit falls back to the default.
	builds, err = s.Recent(0)
	require.NoError(t, err)
	assert.Len(t, builds, 5)
}

func TestRecordEmptySnippets(t *testing.T) {
	s := openTestStore(t)
	rec := record("empty", true)
	rec.Snippets = nil
	require.NoError(t, s.Record(rec))

	builds, err := s.Recent(1)
	require.NoError(t, err)
	require.Len(t, builds, 1)
	assert.Nil(t, builds[0].Snippets)
}
