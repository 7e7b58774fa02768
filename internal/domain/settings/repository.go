package settings

import "context"

type SettingsRepository interface {
	// Get returns ErrSettingsNotFound when no document is stored.
	Get(ctx context.Context, key string) (Document, error)
}
