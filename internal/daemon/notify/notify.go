// Package notify surfaces phase changes through the OS notification
// center. Delivery is fire-and-forget: failures are logged and never
// reach the session loop.
package notify

import (
	"sync/atomic"

	"github.com/gen2brain/beeep"
	"github.com/rs/zerolog"

	"github.com/pamplemousse-io/pamplemousse/internal/models"
)

const appTitle = "Pamplemousse"

// Notifier sends phase-change notifications.
type Notifier struct {
	log     zerolog.Logger
	enabled atomic.Bool
}

// New creates a notifier. A disabled notifier swallows all events.
func New(log zerolog.Logger, enabled bool) *Notifier {
	n := &Notifier{log: log}
	n.enabled.Store(enabled)
	return n
}

// SetEnabled toggles notification delivery (settings hot-reload).
func (n *Notifier) SetEnabled(enabled bool) {
	n.enabled.Store(enabled)
}

// PhaseChanged announces a work<->break transition.
func (n *Notifier) PhaseChanged(state models.SessionState) {
	if !n.enabled.Load() {
		return
	}

	var message string
	switch state.Phase {
	case models.PhaseWork:
		message = "Break over — back to work 🍅"
	case models.PhaseShortBreak:
		message = "Time for a short break ☕"
	case models.PhaseLongBreak:
		message = "Time for a long break ☕"
	default:
		return
	}

	if err := beeep.Notify(appTitle, message, ""); err != nil {
		n.log.Warn().Err(err).Msg("notification failed")
	}
}
