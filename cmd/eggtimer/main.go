package main

import (
	"log"
	"os"
	"sync/atomic"

	"tapsound/internal/audio"
	"tapsound/internal/audio/ebitensound"
	"tapsound/internal/core/eggtimer"
	"tapsound/internal/core/model"
	"tapsound/internal/core/schedule"
	"tapsound/internal/launch"
	"tapsound/internal/platform"
	"tapsound/internal/tui"
	"tapsound/internal/ui/panel"
	"tapsound/internal/ui/preferences"
	"tapsound/internal/ui/tray"
	"tapsound/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

const (
	appName  = "EggTimer"
	appID    = "io.tapsound.eggtimer"
	appTitle = "Egg Timer"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	options := launch.Options{AppName: appName}
	terminal := false

	cmd := &cobra.Command{
		Use:          "eggtimer",
		Short:        "Boil an egg soft, medium or hard",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(options, terminal)
		},
	}
	options.BindFlags(cmd)
	cmd.Flags().BoolVar(&terminal, "tui", false, "run in the terminal instead of a window")
	return cmd
}

func run(options launch.Options, terminal bool) error {
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

	if terminal {
		return runTerminal(settings, player)
	}
	runDesktop(options, settings, player)
	return nil
}

func runTerminal(settings preferences.Settings, player *audio.Player) error {
	var program *tea.Program
	clock := schedule.NewReal(tui.Dispatcher(func(msg tea.Msg) {
		program.Send(msg)
	}))

	timer := eggtimer.New(settings.EggTimerConfig(), clock, player, nil)
	defer timer.Stop()

	view := tui.NewEggModel(model.EggTriggers(), timer.Prompt(), timer.Activate)
	timer.SetView(view)

	notifier := platform.NewDesktopNotifier(appTitle, resources.Icon().Content())
	go launch.WatchEggEvents(timer.Subscribe(8), notifier, func() bool {
		return settings.NotifyOnDone
	}, nil)

	program = tea.NewProgram(view, tea.WithAltScreen())
	_, err := program.Run()
	return err
}

func runDesktop(options launch.Options, settings preferences.Settings, player *audio.Player) {
	fyneApp := app.NewWithID(appID)
	fyneApp.SetIcon(resources.Icon())

	timer := eggtimer.New(settings.EggTimerConfig(), schedule.NewReal(fyne.Do), player, nil)
	defer timer.Stop()

	eggs := panel.NewEggs(model.EggTriggers(), timer.Prompt(), resources.Image, timer.Activate)
	timer.SetView(eggs)

	var notifyOnDone atomic.Bool
	notifyOnDone.Store(settings.NotifyOnDone)

	prefsWindow := preferences.New(fyneApp, settings, func(updated preferences.Settings) {
		if updated.SoundDir != settings.SoundDir {
			log.Printf("sound folder %q applies after restart", updated.SoundDir)
		}
		settings = updated
		timer.UpdateConfig(updated.EggTimerConfig())
		player.SetVolume(updated.Volume)
		notifyOnDone.Store(updated.NotifyOnDone)
		if err := options.SaveSettings(updated); err != nil {
			log.Printf("save settings: %v", err)
		}
	})

	window := fyneApp.NewWindow(appTitle)
	window.SetContent(eggs.Content())
	window.SetMainMenu(fyne.NewMainMenu(fyne.NewMenu("Timer",
		fyne.NewMenuItem("Preferences", prefsWindow.Show),
	)))
	window.Resize(fyne.NewSize(600, 420))
	window.SetMaster()

	var trayManager *tray.Manager
	if desktopApp, ok := fyneApp.(desktop.App); ok {
		labels := make([]string, 0, 3)
		for _, trigger := range model.EggTriggers() {
			labels = append(labels, trigger.Label)
		}
		trayManager = tray.New(desktopApp, appTitle, labels, tray.Callbacks{
			OnStart: func(label string) {
				window.Show()
				timer.Activate(label)
			},
			OnPreferences: prefsWindow.Show,
			OnQuit:        fyneApp.Quit,
		})
		desktopApp.SetSystemTrayIcon(resources.Icon())
	} else {
		log.Printf("system tray unsupported on this platform")
	}

	notifier := platform.NewDesktopNotifier(appTitle, resources.Icon().Content())
	go launch.WatchEggEvents(timer.Subscribe(8), notifier, notifyOnDone.Load, func(status string) {
		if trayManager == nil {
			return
		}
		fyne.Do(func() {
			trayManager.SetStatus(status)
		})
	})

	window.ShowAndRun()
}
