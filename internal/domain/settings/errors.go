package settings

import "errors"

var (
	ErrSettingsNotFound    = errors.New("settings document not found")
	ErrSettingsMalformed   = errors.New("settings document is not valid JSON")
	ErrThresholdsUnordered = errors.New("lateAfter < lateThreshold1 < lateThreshold2 must hold")
)
