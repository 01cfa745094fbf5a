package history

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TurnsService/internal/domain"
)

func TestRepository_SaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	repo := NewRepository(path)

	start := time.Date(2025, time.October, 15, 10, 0, 0, 0, time.Local)
	entries := []domain.HistoryEntry{
		{
			ID:        "e1",
			Service:   domain.ServiceCorte,
			Speed:     domain.SpeedNormal,
			StartedAt: start,
			EndedAt:   start.Add(28 * time.Minute),
			Actual:    28 * time.Minute,
		},
		{
			ID:        "e2",
			Service:   domain.ServiceColor,
			Speed:     domain.SpeedLento,
			StartedAt: start.Add(30 * time.Minute),
			EndedAt:   start.Add(30*time.Minute + 190*time.Minute),
			Actual:    190 * time.Minute,
		},
	}

	require.NoError(t, repo.Save(entries))

	loaded, err := repo.Load()
	require.NoError(t, err)
	require.Len(t, loaded, 2)

	for i := range entries {
		assert.Equal(t, entries[i].ID, loaded[i].ID)
		assert.Equal(t, entries[i].Service, loaded[i].Service)
		assert.Equal(t, entries[i].Speed, loaded[i].Speed)
		assert.True(t, entries[i].StartedAt.Equal(loaded[i].StartedAt))
		assert.True(t, entries[i].EndedAt.Equal(loaded[i].EndedAt))
		assert.Equal(t, entries[i].Actual, loaded[i].Actual)
	}
}

func TestRepository_LoadMissingFileReturnsEmpty(t *testing.T) {
	repo := NewRepository(filepath.Join(t.TempDir(), "history.json"))

	entries, err := repo.Load()
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRepository_LoadCorruptBlob(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	require.NoError(t, os.WriteFile(path, []byte("[{"), 0644))

	repo := NewRepository(path)
	_, err := repo.Load()
	assert.True(t, errors.Is(err, ErrDecode))
}

func TestRepository_SaveEmptyListOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	repo := NewRepository(path)

	require.NoError(t, repo.Save([]domain.HistoryEntry{{ID: "e1"}}))
	require.NoError(t, repo.Save([]domain.HistoryEntry{}))

	loaded, err := repo.Load()
	require.NoError(t, err)
	assert.Empty(t, loaded)
}
