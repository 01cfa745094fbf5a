package settings

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TurnsService/internal/domain"
	settingsRepo "github.com/m04kA/SMC-TurnsService/internal/infra/storage/settings"
	"github.com/m04kA/SMC-TurnsService/internal/service/settings/models"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type failingRepo struct{}

func (failingRepo) Load() (domain.RuleSet, error) { return domain.RuleSet{}, errors.New("disk gone") }
func (failingRepo) Save(domain.RuleSet) error     { return errors.New("disk gone") }

func newFileService(t *testing.T) (*Service, *settingsRepo.Repository) {
	t.Helper()
	repo := settingsRepo.NewRepository(filepath.Join(t.TempDir(), "settings.json"))
	return NewService(repo, nopLogger{}), repo
}

func TestNewService_FirstRunUsesDefaults(t *testing.T) {
	svc, _ := newFileService(t)
	assert.Equal(t, domain.DefaultRuleSet(), svc.Current())
}

func TestNewService_BrokenStorageDegradesToDefaults(t *testing.T) {
	svc := NewService(failingRepo{}, nopLogger{})
	assert.Equal(t, domain.DefaultRuleSet(), svc.Current())
}

func TestSave_RoundTripsThroughStorage(t *testing.T) {
	svc, repo := newFileService(t)

	req := &models.UpdateSettingsRequest{
		BaseMinutes: map[string]int{string(domain.ServiceCorte): 35},
	}
	resp := svc.Save(req)

	// missing keys were filled in from the defaults
	assert.Equal(t, 35, resp.BaseMinutes[string(domain.ServiceCorte)])
	assert.Equal(t, 45, resp.BaseMinutes[string(domain.ServiceCorteBarba)])
	assert.Equal(t, 20, resp.SelladoDeltaMinutes[string(domain.SpeedNormal)])

	// a fresh service over the same file sees the saved set
	reloaded := NewService(repo, nopLogger{})
	assert.Equal(t, svc.Current(), reloaded.Current())
}

func TestSave_PersistFailureKeepsInMemoryRules(t *testing.T) {
	svc := NewService(failingRepo{}, nopLogger{})

	req := &models.UpdateSettingsRequest{
		BaseMinutes: map[string]int{string(domain.ServiceColor): 200},
	}
	svc.Save(req)

	assert.Equal(t, 200, svc.Current().BaseMinutes[string(domain.ServiceColor)])
}

func TestRestoreDefaults(t *testing.T) {
	svc, _ := newFileService(t)

	svc.Save(&models.UpdateSettingsRequest{
		BaseMinutes: map[string]int{string(domain.ServiceCorte): 99},
	})
	require.Equal(t, 99, svc.Current().BaseMinutes[string(domain.ServiceCorte)])

	svc.RestoreDefaults()
	assert.Equal(t, domain.DefaultRuleSet(), svc.Current())
}

func TestCurrent_ReturnsIsolatedCopy(t *testing.T) {
	svc, _ := newFileService(t)

	rules := svc.Current()
	rules.BaseMinutes[string(domain.ServiceCorte)] = 1

	assert.Equal(t, 30, svc.Current().BaseMinutes[string(domain.ServiceCorte)])
}
