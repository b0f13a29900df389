package tray

import (
	"fmt"
	"sync/atomic"

	"github.com/getlantern/systray"
	"github.com/rs/zerolog"

	"github.com/pamplemousse-io/pamplemousse/internal/config"
	"github.com/pamplemousse-io/pamplemousse/internal/models"
)

var (
	controller SessionController
	onStart    func()
	onExit     func()
	log        zerolog.Logger

	remainingItem *systray.MenuItem
	pauseItem     *systray.MenuItem
	stopItem      *systray.MenuItem

	workItems  []*systray.MenuItem
	breakItems []*systray.MenuItem

	paused atomic.Bool
)

// Run starts the menu bar presenter. This blocks the calling goroutine
// (must be main on macOS). onStartFn is called when the tray is ready
// (start the session loop there), onExitFn when the tray exits.
func Run(c SessionController, logger zerolog.Logger, onStartFn, onExitFn func()) {
	controller = c
	log = logger
	onStart = onStartFn
	onExit = onExitFn
	systray.Run(onReady, onQuit)
}

// Quit signals the tray to exit.
func Quit() {
	systray.Quit()
}

// Present renders a session state snapshot into the icon and menu.
// Called by the session loop on every progress tick and transition.
func Present(state models.SessionState) {
	paused.Store(state.Phase == models.PhasePaused)

	systray.SetTitle(phaseGlyph(state) + " " + models.FormatRemaining(state.Remaining))
	systray.SetTooltip(formatTooltip(state))

	if remainingItem != nil {
		remainingItem.SetTitle(models.FormatRemaining(state.Remaining) + " remaining")
	}
	if pauseItem != nil {
		if paused.Load() {
			pauseItem.SetTitle("Resume")
		} else {
			pauseItem.SetTitle("Pause")
		}
	}
}

func onReady() {
	systray.SetTemplateIcon(iconData, iconData)
	systray.SetTitle("🍅")
	systray.SetTooltip("Pamplemousse")

	remainingItem = systray.AddMenuItem("--:-- remaining", "")
	remainingItem.Disable()

	pauseItem = systray.AddMenuItem("Pause", "Pause the timer")
	stopItem = systray.AddMenuItem("Stop", "Stop the timer and quit")

	systray.AddSeparator()

	settings, err := config.LoadSettings()
	if err != nil {
		log.Error().Err(err).Msg("load settings for menu")
		settings = models.NewSettings()
	}

	settingsMenu := systray.AddMenuItem("Settings", "")
	workMenu := settingsMenu.AddSubMenuItem("Work Duration", "")
	for _, mins := range models.WorkDurationOptions {
		item := workMenu.AddSubMenuItem(fmt.Sprintf("%d min", mins), "")
		if mins == settings.WorkMinutes {
			item.Check()
		}
		workItems = append(workItems, item)
	}
	breakMenu := settingsMenu.AddSubMenuItem("Break Duration", "")
	for _, mins := range models.BreakDurationOptions {
		item := breakMenu.AddSubMenuItem(fmt.Sprintf("%d min", mins), "")
		if mins == settings.ShortBreakMinutes {
			item.Check()
		}
		breakItems = append(breakItems, item)
	}

	if onStart != nil {
		onStart()
	}

	go handleClicks()
}

func onQuit() {
	if onExit != nil {
		onExit()
	}
}

func handleClicks() {
	for {
		select {
		case <-pauseItem.ClickedCh:
			if controller == nil {
				continue
			}
			if paused.Load() {
				controller.Resume()
			} else {
				controller.Pause()
			}

		case <-stopItem.ClickedCh:
			if controller != nil {
				controller.Stop()
			}

		// Work duration options
		case <-workItems[0].ClickedCh:
			setWorkMinutes(0)
		case <-workItems[1].ClickedCh:
			setWorkMinutes(1)
		case <-workItems[2].ClickedCh:
			setWorkMinutes(2)
		case <-workItems[3].ClickedCh:
			setWorkMinutes(3)
		case <-workItems[4].ClickedCh:
			setWorkMinutes(4)
		case <-workItems[5].ClickedCh:
			setWorkMinutes(5)
		case <-workItems[6].ClickedCh:
			setWorkMinutes(6)

		// Break duration options
		case <-breakItems[0].ClickedCh:
			setBreakMinutes(0)
		case <-breakItems[1].ClickedCh:
			setBreakMinutes(1)
		case <-breakItems[2].ClickedCh:
			setBreakMinutes(2)
		case <-breakItems[3].ClickedCh:
			setBreakMinutes(3)
		case <-breakItems[4].ClickedCh:
			setBreakMinutes(4)
		case <-breakItems[5].ClickedCh:
			setBreakMinutes(5)
		}
	}
}

// setWorkMinutes persists a new work duration. The daemon's settings
// watcher picks up the write and applies it to the running session.
func setWorkMinutes(slot int) {
	mins := models.WorkDurationOptions[slot]
	settings, err := config.LoadSettings()
	if err != nil {
		log.Error().Err(err).Msg("load settings")
		return
	}
	settings.WorkMinutes = mins
	if err := config.SaveSettings(settings); err != nil {
		log.Error().Err(err).Msg("save settings")
		return
	}
	for i, item := range workItems {
		if i == slot {
			item.Check()
		} else {
			item.Uncheck()
		}
	}
	log.Info().Int("minutes", mins).Msg("work duration changed")
}

func setBreakMinutes(slot int) {
	mins := models.BreakDurationOptions[slot]
	settings, err := config.LoadSettings()
	if err != nil {
		log.Error().Err(err).Msg("load settings")
		return
	}
	settings.ShortBreakMinutes = mins
	if err := config.SaveSettings(settings); err != nil {
		log.Error().Err(err).Msg("save settings")
		return
	}
	for i, item := range breakItems {
		if i == slot {
			item.Check()
		} else {
			item.Uncheck()
		}
	}
	log.Info().Int("minutes", mins).Msg("break duration changed")
}

func phaseGlyph(state models.SessionState) string {
	switch state.ActivePhase() {
	case models.PhaseShortBreak, models.PhaseLongBreak:
		if state.Phase == models.PhasePaused {
			return "⏸"
		}
		return "☕"
	default:
		if state.Phase == models.PhasePaused {
			return "⏸"
		}
		return "🍅"
	}
}

func formatTooltip(state models.SessionState) string {
	return fmt.Sprintf("Pamplemousse — %s, %s remaining (%d cycles done)",
		phaseLabel(state), models.FormatRemaining(state.Remaining), state.CyclesCompleted)
}

func phaseLabel(state models.SessionState) string {
	switch state.Phase {
	case models.PhaseWork:
		return "work"
	case models.PhaseShortBreak:
		return "short break"
	case models.PhaseLongBreak:
		return "long break"
	case models.PhasePaused:
		return "paused"
	default:
		return string(state.Phase)
	}
}
