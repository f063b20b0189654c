package repositories

import (
	"time"

	"github.com/rommsen/BudgetBuddy-sub000/internal/common"
	"github.com/rommsen/BudgetBuddy-sub000/internal/common/localstorage"
	"github.com/rommsen/BudgetBuddy-sub000/internal/models"
)

// SettingRepository persists per-instance settings outside the relational
// store. Values live in a local key-value bucket so the service keeps its
// configuration across restarts without a migration.
type SettingRepository interface {
	Get(key string) (models.Setting, error)
	Upsert(setting models.Setting) (models.Setting, error)
	Delete(key string) error
	List() ([]models.Setting, error)
	Close() error
}

type settingRepository struct {
	storage localstorage.LocalStorage[models.Setting]
}

var _ SettingRepository = (*settingRepository)(nil)

func NewSettingRepository(storage localstorage.LocalStorage[models.Setting]) *settingRepository {
	return &settingRepository{storage: storage}
}

func (sr *settingRepository) Get(key string) (models.Setting, error) {
	setting, err := sr.storage.Get(key)
	if err != nil {
		return models.Setting{}, err
	}
	if setting.Key == "" {
		return models.Setting{}, common.ErrDataNotFound
	}

	return setting, nil
}

func (sr *settingRepository) Upsert(setting models.Setting) (models.Setting, error) {
	now := time.Now()
	setting.UpdatedAt = &now

	if err := sr.storage.Set(setting.Key, setting); err != nil {
		return models.Setting{}, err
	}

	return setting, nil
}

func (sr *settingRepository) Delete(key string) error {
	setting, err := sr.storage.Get(key)
	if err != nil {
		return err
	}
	if setting.Key == "" {
		return common.ErrDataNotFound
	}

	return sr.storage.Delete(key)
}

func (sr *settingRepository) List() (out []models.Setting, err error) {
	err = sr.storage.ForEach(func(_ string, setting models.Setting) error {
		out = append(out, setting)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

func (sr *settingRepository) Close() error {
	return sr.storage.Close()
}
