package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"tapsound/internal/ui/preferences"

	"gopkg.in/yaml.v3"
)

const settingsFileName = "settings.yaml"

type yamlSettings struct {
	SoftSeconds   int      `yaml:"soft_seconds,omitempty"`
	MediumSeconds int      `yaml:"medium_seconds,omitempty"`
	HardSeconds   int      `yaml:"hard_seconds,omitempty"`
	DoneText      string   `yaml:"done_text,omitempty"`
	NotifyOnDone  *bool    `yaml:"notify_on_done,omitempty"`
	PressDelayMs  int      `yaml:"press_delay_ms,omitempty"`
	Volume        *float64 `yaml:"volume,omitempty"`
	SoundDir      string   `yaml:"sound_dir,omitempty"`
}

// SettingsPath returns the default settings file for appName.
func SettingsPath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, settingsFileName), nil
}

// LoadSettings reads user preferences for appName from YAML.
// If the config file does not exist, default settings are returned.
func LoadSettings(appName string) (preferences.Settings, error) {
	configPath, err := SettingsPath(appName)
	if err != nil {
		return preferences.DefaultSettings(), err
	}
	return LoadSettingsFile(configPath)
}

// LoadSettingsFile reads user preferences from configPath. Values that are
// out of range keep their defaults.
func LoadSettingsFile(configPath string) (preferences.Settings, error) {
	settings := preferences.DefaultSettings()

	rawData, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	return settings, nil
}

// SaveSettings writes user preferences for appName to YAML.
func SaveSettings(appName string, settings preferences.Settings) error {
	configPath, err := SettingsPath(appName)
	if err != nil {
		return err
	}
	return SaveSettingsFile(configPath, settings)
}

// SaveSettingsFile writes user preferences to configPath.
func SaveSettingsFile(configPath string, settings preferences.Settings) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	notify := settings.NotifyOnDone
	volume := settings.Volume
	fileData := yamlSettings{
		SoftSeconds:   int(settings.SoftDuration / time.Second),
		MediumSeconds: int(settings.MediumDuration / time.Second),
		HardSeconds:   int(settings.HardDuration / time.Second),
		DoneText:      settings.DoneText,
		NotifyOnDone:  &notify,
		PressDelayMs:  int(settings.PressDelay / time.Millisecond),
		Volume:        &volume,
		SoundDir:      settings.SoundDir,
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(configPath, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

func applyYamlSettings(settings *preferences.Settings, fileData yamlSettings) {
	if fileData.SoftSeconds > 0 {
		settings.SoftDuration = time.Duration(fileData.SoftSeconds) * time.Second
	}
	if fileData.MediumSeconds > 0 {
		settings.MediumDuration = time.Duration(fileData.MediumSeconds) * time.Second
	}
	if fileData.HardSeconds > 0 {
		settings.HardDuration = time.Duration(fileData.HardSeconds) * time.Second
	}
	if fileData.PressDelayMs > 0 {
		settings.PressDelay = time.Duration(fileData.PressDelayMs) * time.Millisecond
	}
	if fileData.Volume != nil && *fileData.Volume >= 0 && *fileData.Volume <= 1 {
		settings.Volume = *fileData.Volume
	}
	if fileData.NotifyOnDone != nil {
		settings.NotifyOnDone = *fileData.NotifyOnDone
	}
	if fileData.DoneText != "" {
		settings.DoneText = fileData.DoneText
	}
	settings.SoundDir = fileData.SoundDir
}
