// Package watcher hot-reloads settings.yaml while the daemon runs.
package watcher

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/pamplemousse-io/pamplemousse/internal/config"
	"github.com/pamplemousse-io/pamplemousse/internal/models"
)

// Watcher watches the global directory for settings changes.
type Watcher struct {
	fsWatcher  *fsnotify.Watcher
	settingsCh chan *models.Settings
	log        zerolog.Logger
	done       chan struct{}

	debounceMu sync.Mutex
	debounce   *time.Timer
}

// New creates a settings watcher.
func New(log zerolog.Logger) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &Watcher{
		fsWatcher:  fsWatcher,
		settingsCh: make(chan *models.Settings, 1),
		log:        log,
		done:       make(chan struct{}),
	}, nil
}

// Settings returns the channel delivering reloaded settings.
func (w *Watcher) Settings() <-chan *models.Settings {
	return w.settingsCh
}

// Start begins watching the global directory.
func (w *Watcher) Start() error {
	dir, err := config.GlobalDir()
	if err != nil {
		return err
	}
	if err := w.fsWatcher.Add(dir); err != nil {
		return err
	}

	go w.processEvents()
	return nil
}

// Stop stops the watcher.
func (w *Watcher) Stop() {
	close(w.done)
	_ = w.fsWatcher.Close()
}

func (w *Watcher) processEvents() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.log.Warn().Err(err).Msg("settings watcher error")
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	// Accept write, create, and rename events. Rename matters: atomic
	// writes (write tmp, rename over target) produce Rename/Create on
	// the target file.
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return
	}
	if filepath.Base(event.Name) != config.SettingsFileName {
		return
	}

	// Debounce bursts from editors writing in multiple steps.
	w.debounceMu.Lock()
	if w.debounce != nil {
		w.debounce.Stop()
	}
	w.debounce = time.AfterFunc(100*time.Millisecond, w.reload)
	w.debounceMu.Unlock()
}

func (w *Watcher) reload() {
	settings, err := config.LoadSettings()
	if err != nil {
		w.log.Warn().Err(err).Msg("settings reload failed")
		return
	}

	w.log.Info().
		Int("work_minutes", settings.WorkMinutes).
		Int("short_break_minutes", settings.ShortBreakMinutes).
		Msg("settings reloaded")

	// Keep only the freshest pending reload.
	select {
	case w.settingsCh <- settings:
	default:
		select {
		case <-w.settingsCh:
		default:
		}
		select {
		case w.settingsCh <- settings:
		default:
		}
	}
}
