package main

import (
	"log"
	"os"

	"tapsound/internal/audio"
	"tapsound/internal/audio/ebitensound"
	"tapsound/internal/core/schedule"
	"tapsound/internal/core/xylophone"
	"tapsound/internal/launch"
	"tapsound/internal/midiin"
	"tapsound/internal/platform"
	"tapsound/internal/ui/panel"
	"tapsound/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv"
)

const (
	appName  = "Xylophone"
	appID    = "io.tapsound.xylophone"
	appTitle = "Xylophone"
)

type midiOptions struct {
	enabled bool
	port    string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	options := launch.Options{AppName: appName}
	var midi midiOptions

	cmd := &cobra.Command{
		Use:          "xylophone",
		Short:        "Tap the bars to play notes",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(options, midi)
		},
	}
	options.BindFlags(cmd)
	cmd.Flags().BoolVar(&midi.enabled, "midi", false, "play keys from a MIDI keyboard")
	cmd.Flags().StringVar(&midi.port, "midi-port", "", "MIDI input name to match (default: first input)")
	return cmd
}

func run(options launch.Options, midi midiOptions) error {
	options.SetupLogging()

	lock, err := platform.AcquireInstanceLock(appID)
	if err != nil {
		return err
	}
	defer func() {
		_ = lock.Release()
	}()

	settings, err := options.LoadSettings()
	if err != nil {
		log.Printf("load settings: %v", err)
	}

	var backend audio.Backend = audio.Silent{}
	if !options.Mute {
		backend = ebitensound.New(ebitensound.DefaultSampleRate)
	}
	player := launch.NewPlayer(settings, backend, options.Debug)
	defer player.Stop()

	fyneApp := app.NewWithID(appID)
	fyneApp.SetIcon(resources.Icon())

	handler := xylophone.New(settings.XylophoneConfig(), schedule.NewReal(fyne.Do), player, nil)
	keys := panel.NewXylophone(handler.Triggers(), func(label string) {
		handler.Activate(label)
	})
	handler.SetView(keys)

	if midi.enabled || midi.port != "" {
		keyboard, err := midiin.Open(midi.port, func(label string) {
			fyne.Do(func() {
				handler.Activate(label)
			})
		})
		if err != nil {
			log.Printf("midi: %v", err)
		} else {
			log.Printf("listening on %s", keyboard.Port())
			defer midiin.Shutdown()
			defer func() {
				_ = keyboard.Close()
			}()
		}
	}

	window := fyneApp.NewWindow(appTitle)
	window.SetContent(keys.Content())
	window.Resize(fyne.NewSize(480, 760))
	window.ShowAndRun()
	return nil
}
