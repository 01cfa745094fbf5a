package settings

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TurnsService/internal/domain"
)

func TestRepository_SaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	repo := NewRepository(path)

	rules := domain.DefaultRuleSet()
	rules.BaseMinutes[string(domain.ServiceCorte)] = 25
	rules.SpeedAdjustMinutes[domain.AdjustKeyLentoLargo] = 20

	require.NoError(t, repo.Save(rules))

	loaded, err := repo.Load()
	require.NoError(t, err)
	assert.Equal(t, rules, loaded)
}

func TestRepository_LoadMissingFile(t *testing.T) {
	repo := NewRepository(filepath.Join(t.TempDir(), "settings.json"))

	_, err := repo.Load()
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestRepository_LoadCorruptBlob(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	repo := NewRepository(path)
	_, err := repo.Load()
	assert.True(t, errors.Is(err, ErrDecode))
}

func TestRepository_LoadPartialBlob(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	blob := `{"baseMinutes": {"Corte": 35}}`
	require.NoError(t, os.WriteFile(path, []byte(blob), 0644))

	repo := NewRepository(path)
	loaded, err := repo.Load()
	require.NoError(t, err)

	// the repository returns the blob as stored; filling in defaults is
	// the settings service's job
	assert.Equal(t, 35, loaded.BaseMinutes[string(domain.ServiceCorte)])
	assert.Nil(t, loaded.SelladoDeltaMinutes)

	loaded.MergeDefaults()
	assert.Equal(t, 20, loaded.SelladoDeltaMinutes[string(domain.SpeedNormal)])
}

func TestRepository_SaveCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "settings.json")
	repo := NewRepository(path)

	require.NoError(t, repo.Save(domain.DefaultRuleSet()))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}
