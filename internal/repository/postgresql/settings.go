package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/settings"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type settingsRepository struct {
	db *database.DB
}

// Get implements settings.SettingsRepository.
func (r *settingsRepository) Get(ctx context.Context, key string) (settings.Document, error) {
	q := GetQuerier(ctx, r.db)

	var raw []byte
	err := q.QueryRow(ctx, `SELECT document FROM settings WHERE key = $1`, key).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return settings.Document{}, settings.ErrSettingsNotFound
		}
		return settings.Document{}, fmt.Errorf("failed to get settings: %w", err)
	}

	var doc settings.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return settings.Document{}, fmt.Errorf("%w: %v", settings.ErrSettingsMalformed, err)
	}
	return doc, nil
}

func NewSettingsRepository(db *database.DB) settings.SettingsRepository {
	return &settingsRepository{db: db}
}
