package settings

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/settings"
)

// StoreProvider re-reads the settings document on every call so edits apply
// to the next evaluation. A missing or malformed document yields the
// defaults; only store failures are returned.
type StoreProvider struct {
	settings.SettingsRepository
}

func NewStoreProvider(settingsRepository settings.SettingsRepository) *StoreProvider {
	return &StoreProvider{SettingsRepository: settingsRepository}
}

// Current implements settings.Provider.
func (p *StoreProvider) Current(ctx context.Context) (settings.Settings, error) {
	doc, err := p.SettingsRepository.Get(ctx, settings.Key)
	if err != nil {
		if errors.Is(err, settings.ErrSettingsNotFound) {
			slog.Warn("Settings document not found, using defaults", "key", settings.Key)
			return settings.Defaults(), nil
		}
		if errors.Is(err, settings.ErrSettingsMalformed) {
			slog.Warn("Settings document is unreadable, using defaults", "key", settings.Key, "error", err)
			return settings.Defaults(), nil
		}
		return settings.Settings{}, fmt.Errorf("failed to load settings: %w", err)
	}

	parsed, err := doc.Parse()
	if err != nil {
		slog.Warn("Settings document is invalid, using defaults", "key", settings.Key, "error", err)
		return settings.Defaults(), nil
	}
	return parsed, nil
}

// Static always returns the same settings.
type Static settings.Settings

func (s Static) Current(context.Context) (settings.Settings, error) {
	return settings.Settings(s), nil
}
