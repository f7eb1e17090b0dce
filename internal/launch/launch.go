// Package launch holds the startup wiring shared by the xylophone and egg
// timer commands.
package launch

import (
	"fmt"
	"io/fs"
	"log"
	"os"

	"tapsound/internal/audio"
	"tapsound/internal/storage"
	"tapsound/internal/ui/preferences"
	"tapsound/resources"

	"github.com/spf13/cobra"
)

// Options are the flags common to both commands.
type Options struct {
	AppName    string
	ConfigPath string
	SoundDir   string
	Debug      bool
	Mute       bool
}

// BindFlags registers the common flags on cmd.
func (options *Options) BindFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&options.ConfigPath, "config", "", "settings file (default: user config dir)")
	flags.StringVar(&options.SoundDir, "sound-dir", "", "directory searched for sounds before the built-in set")
	flags.BoolVar(&options.Debug, "debug", false, "log every playback attempt")
	flags.BoolVar(&options.Mute, "mute", false, "run without an audio device")
}

// SetupLogging sets the log prefix for the command.
func (options Options) SetupLogging() {
	log.SetPrefix(fmt.Sprintf("[%s] ", options.AppName))
	if options.Debug {
		log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	}
}

// LoadSettings reads settings from --config or the user config dir. A
// --sound-dir flag overrides the stored directory. Defaults are returned
// alongside any read error.
func (options Options) LoadSettings() (preferences.Settings, error) {
	var (
		settings preferences.Settings
		err      error
	)
	if options.ConfigPath != "" {
		settings, err = storage.LoadSettingsFile(options.ConfigPath)
	} else {
		settings, err = storage.LoadSettings(options.AppName)
	}
	if options.SoundDir != "" {
		settings.SoundDir = options.SoundDir
	}
	return settings, err
}

// SaveSettings writes settings back to where LoadSettings read them.
func (options Options) SaveSettings(settings preferences.Settings) error {
	if options.ConfigPath != "" {
		return storage.SaveSettingsFile(options.ConfigPath, settings)
	}
	return storage.SaveSettings(options.AppName, settings)
}

// NewPlayer builds a player that searches soundDir, when set, before the
// embedded sounds.
func NewPlayer(settings preferences.Settings, backend audio.Backend, verbose bool) *audio.Player {
	var layers []fs.FS
	if settings.SoundDir != "" {
		layers = append(layers, os.DirFS(settings.SoundDir))
	}
	layers = append(layers, resources.Sounds())

	player := audio.NewPlayer(audio.NewFSResolver(layers...), backend)
	player.SetVerbose(verbose)
	player.SetVolume(settings.Volume)
	return player
}
