package services

import (
	"context"
	"errors"
	"sort"
	"strconv"

	"github.com/rommsen/BudgetBuddy-sub000/internal/common"
	"github.com/rommsen/BudgetBuddy-sub000/internal/models"
)

type SettingService interface {
	Get(ctx context.Context, key string) (*models.SettingOut, error)
	Upsert(ctx context.Context, key string, req models.UpsertSettingRequest) (*models.SettingOut, error)
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) ([]*models.SettingOut, error)

	IntOrDefault(key string, fallback int) int
	StringOrDefault(key, fallback string) string
}

type setting service

var _ SettingService = (*setting)(nil)

func (s *setting) Get(_ context.Context, key string) (*models.SettingOut, error) {
	res, err := s.srv.settingRepo.Get(key)
	if err != nil {
		if errors.Is(err, common.ErrDataNotFound) {
			return nil, models.GetErrMap(models.ErrKeySettingNotFound, key)
		}
		return nil, err
	}

	return res.ConvertToSettingOut(), nil
}

func (s *setting) Upsert(_ context.Context, key string, req models.UpsertSettingRequest) (*models.SettingOut, error) {
	res, err := s.srv.settingRepo.Upsert(models.Setting{
		Key:       key,
		Value:     req.Value,
		Encrypted: req.Encrypted,
	})
	if err != nil {
		return nil, err
	}

	return res.ConvertToSettingOut(), nil
}

func (s *setting) Delete(_ context.Context, key string) error {
	err := s.srv.settingRepo.Delete(key)
	if errors.Is(err, common.ErrDataNotFound) {
		return models.GetErrMap(models.ErrKeySettingNotFound, key)
	}

	return err
}

func (s *setting) List(_ context.Context) ([]*models.SettingOut, error) {
	settings, err := s.srv.settingRepo.List()
	if err != nil {
		return nil, err
	}

	sort.Slice(settings, func(i, j int) bool { return settings[i].Key < settings[j].Key })

	out := make([]*models.SettingOut, 0, len(settings))
	for i := range settings {
		out = append(out, settings[i].ConvertToSettingOut())
	}

	return out, nil
}

// IntOrDefault resolves a numeric knob: the stored setting wins when present
// and parseable, the config-supplied fallback otherwise.
func (s *setting) IntOrDefault(key string, fallback int) int {
	res, err := s.srv.settingRepo.Get(key)
	if err != nil {
		return fallback
	}
	n, err := strconv.Atoi(res.Value)
	if err != nil {
		return fallback
	}

	return n
}

func (s *setting) StringOrDefault(key, fallback string) string {
	res, err := s.srv.settingRepo.Get(key)
	if err != nil || res.Value == "" {
		return fallback
	}

	return res.Value
}
