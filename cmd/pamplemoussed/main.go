// Package main is the entry point for the pamplemoussed daemon.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/pamplemousse-io/pamplemousse/internal/buildinfo"
	"github.com/pamplemousse-io/pamplemousse/internal/config"
	"github.com/pamplemousse-io/pamplemousse/internal/daemon/notify"
	"github.com/pamplemousse-io/pamplemousse/internal/daemon/tray"
	"github.com/pamplemousse-io/pamplemousse/internal/daemon/watcher"
	"github.com/pamplemousse-io/pamplemousse/internal/models"
	"github.com/pamplemousse-io/pamplemousse/internal/registry"
	"github.com/pamplemousse-io/pamplemousse/internal/session"
)

func main() {
	foreground := flag.Bool("foreground", false, "Run in foreground (no menu bar icon, for development)")
	flag.Parse()

	if err := config.EnsureGlobalDir(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to create global directory: %v\n", err)
		os.Exit(1)
	}

	logger, logCloser, err := config.OpenDaemonLog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open daemon log: %v\n", err)
		os.Exit(1)
	}
	defer logCloser.Close()

	// Probe clears any stale record; Register is the atomic gate. When
	// two invocations race, exactly one daemon wins the exclusive
	// create and the other exits here.
	if record, err := registry.Probe(); err == nil && record != nil {
		logger.Error().Int("pid", record.PID).Msg("daemon already running")
		fmt.Fprintf(os.Stderr, "daemon already running (PID %d)\n", record.PID)
		os.Exit(1)
	}
	if err := registry.Register(os.Getpid()); err != nil {
		if errors.Is(err, registry.ErrAlreadyActive) {
			logger.Error().Msg("lost registration race, exiting")
			os.Exit(1)
		}
		logger.Error().Err(err).Msg("failed to register instance")
		fmt.Fprintf(os.Stderr, "failed to register instance: %v\n", err)
		os.Exit(1)
	}

	settings, err := config.LoadSettings()
	if err != nil {
		logger.Warn().Err(err).Msg("failed to load settings, using defaults")
		settings = models.NewSettings()
	}

	notifier := notify.New(logger, settings.Notifications)
	machine := session.New(session.ConfigFromSettings(settings))
	loop := session.NewLoop(session.LoopOptions{
		Machine:  machine,
		Notifier: notifier,
		Log:      logger,
		OnTransition: func(state models.SessionState) {
			if err := config.SaveStatus(state); err != nil {
				logger.Warn().Err(err).Msg("failed to write status snapshot")
			}
		},
	})

	logger.Info().
		Int("pid", os.Getpid()).
		Str("version", buildinfo.Version).
		Bool("foreground", *foreground).
		Msg("daemon started")
	_ = config.SaveStatus(machine.State())

	if *foreground {
		runForeground(logger, loop, notifier)
	} else {
		runWithTray(logger, loop, notifier)
	}
}

// runForeground runs the daemon without the menu bar icon, blocking on
// signals. Used for development and tests.
func runForeground(logger zerolog.Logger, loop *session.Loop, notifier *notify.Notifier) {
	w := startWatcher(logger, loop, notifier)

	go loop.Run()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.Info().Str("signal", sig.String()).Msg("shutting down")
	case <-loop.Done():
		logger.Info().Msg("session loop stopped")
	}

	shutdown(logger, loop, w)
}

// runWithTray runs the daemon with the menu bar icon on the main
// goroutine. systray.Run must occupy the main goroutine on macOS
// (Cocoa requirement).
func runWithTray(logger zerolog.Logger, loop *session.Loop, notifier *notify.Notifier) {
	var w *watcher.Watcher

	onStart := func() {
		loop.SetPresenter(trayPresenter{})
		w = startWatcher(logger, loop, notifier)
		go loop.Run()

		// Stop from the menu tears the whole daemon down.
		go func() {
			<-loop.Done()
			tray.Quit()
		}()

		go func() {
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			sig := <-sigCh
			logger.Info().Str("signal", sig.String()).Msg("shutting down")
			tray.Quit()
		}()
	}

	onExit := func() {
		shutdown(logger, loop, w)
	}

	// This blocks the main goroutine until the tray exits.
	tray.Run(loop, logger, onStart, onExit)
}

// startWatcher wires settings hot-reload into the session loop.
func startWatcher(logger zerolog.Logger, loop *session.Loop, notifier *notify.Notifier) *watcher.Watcher {
	w, err := watcher.New(logger)
	if err != nil {
		logger.Warn().Err(err).Msg("settings watcher unavailable")
		return nil
	}
	if err := w.Start(); err != nil {
		logger.Warn().Err(err).Msg("settings watcher failed to start")
		return nil
	}

	go func() {
		for settings := range w.Settings() {
			notifier.SetEnabled(settings.Notifications)
			loop.UpdateConfig(session.ConfigFromSettings(settings))
		}
	}()
	return w
}

// shutdown unwinds daemon state: stop the loop, drop the status
// snapshot, and remove the instance record.
func shutdown(logger zerolog.Logger, loop *session.Loop, w *watcher.Watcher) {
	loop.Stop()
	if w != nil {
		w.Stop()
	}

	if err := config.RemoveStatus(); err != nil {
		logger.Warn().Err(err).Msg("failed to remove status snapshot")
	}
	if err := registry.Unregister(); err != nil {
		logger.Warn().Err(err).Msg("failed to remove instance record")
	}
	logger.Info().Msg("daemon stopped")
}

// trayPresenter adapts the tray package functions to session.Presenter.
type trayPresenter struct{}

func (trayPresenter) Present(state models.SessionState) {
	tray.Present(state)
}
