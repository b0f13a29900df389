package config

import (
	"github.com/pamplemousse-io/pamplemousse/internal/models"
)

// LoadSettings loads the timer settings from ~/.pamplemousse/settings.yaml.
// If the file doesn't exist, returns default settings. Loaded values are
// normalized so a broken file can't produce a zero-length interval.
func LoadSettings() (*models.Settings, error) {
	path, err := SettingsFile()
	if err != nil {
		return nil, err
	}
	settings, err := LoadYAMLOrDefault(path, models.NewSettings)
	if err != nil {
		return nil, err
	}
	settings.Normalize()
	return settings, nil
}

// SaveSettings saves the timer settings to ~/.pamplemousse/settings.yaml.
func SaveSettings(settings *models.Settings) error {
	path, err := SettingsFile()
	if err != nil {
		return err
	}
	return SaveYAML(path, settings)
}
