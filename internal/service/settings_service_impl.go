package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/martinhruska/scopeburn/internal/domain"
	"github.com/martinhruska/scopeburn/internal/repository"
)

type settingsService struct {
	settings repository.SettingsRepo
}

func NewSettingsService(settings repository.SettingsRepo) SettingsService {
	return &settingsService{settings: settings}
}

func (s *settingsService) Get(ctx context.Context) (domain.ScopeSettings, error) {
	return s.settings.Get(ctx)
}

func (s *settingsService) Update(ctx context.Context, settings domain.ScopeSettings) error {
	settings.Country = strings.ToUpper(strings.TrimSpace(settings.Country))
	settings.Subdivision = strings.ToUpper(strings.TrimSpace(settings.Subdivision))
	if settings.IncludeHolidays && settings.Country == "" {
		return fmt.Errorf("country is required when holidays are observed")
	}
	if settings.Country != "" && len(settings.Country) != 2 {
		return fmt.Errorf("country must be an ISO 3166-1 alpha-2 code, got %q", settings.Country)
	}
	return s.settings.Upsert(ctx, settings)
}
