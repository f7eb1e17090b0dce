package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"tapsound/internal/ui/preferences"

	"github.com/stretchr/testify/require"
)

func TestLoadSettingsFile_MissingFileReturnsDefaults(t *testing.T) {
	settings, err := LoadSettingsFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	require.Equal(t, preferences.DefaultSettings(), settings)
}

func TestSaveSettingsFile_Roundtrip(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "eggtimer", settingsFileName)

	original := preferences.DefaultSettings()
	original.MediumDuration = 390 * time.Second
	original.Volume = 0
	original.NotifyOnDone = false
	original.SoundDir = "/home/cook/sounds"
	require.NoError(t, SaveSettingsFile(configPath, original))

	data, err := os.ReadFile(configPath)
	require.NoError(t, err)
	require.Contains(t, string(data), "medium_seconds: 390")
	require.Contains(t, string(data), "notify_on_done: false")

	loaded, err := LoadSettingsFile(configPath)
	require.NoError(t, err)
	require.Equal(t, original, loaded)
}

func TestLoadSettingsFile_IgnoresOutOfRangeValues(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), settingsFileName)
	content := `soft_seconds: -3
hard_seconds: 600
volume: 4
press_delay_ms: 0
`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o644))

	settings, err := LoadSettingsFile(configPath)
	require.NoError(t, err)
	defaults := preferences.DefaultSettings()
	require.Equal(t, defaults.SoftDuration, settings.SoftDuration)
	require.Equal(t, 600*time.Second, settings.HardDuration)
	require.Equal(t, defaults.Volume, settings.Volume)
	require.Equal(t, defaults.PressDelay, settings.PressDelay)
	require.True(t, settings.NotifyOnDone)
}

func TestLoadSettingsFile_InvalidYaml(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), settingsFileName)
	require.NoError(t, os.WriteFile(configPath, []byte("soft_seconds: [oops"), 0o644))

	settings, err := LoadSettingsFile(configPath)
	require.Error(t, err)
	require.Contains(t, err.Error(), "parse settings yaml")
	require.Equal(t, preferences.DefaultSettings(), settings)
}
