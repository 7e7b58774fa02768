package settings

import "context"

// Provider returns the settings in force for the next evaluation.
type Provider interface {
	Current(ctx context.Context) (Settings, error)
}
