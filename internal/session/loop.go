package session

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/pamplemousse-io/pamplemousse/internal/models"
)

// Command is a user action relayed from the presenter.
type Command int

// Presenter commands.
const (
	CmdPause Command = iota
	CmdResume
	CmdStop
)

// Presenter renders session state. Implemented by the tray menu;
// decouples the state machine from any concrete UI toolkit.
type Presenter interface {
	Present(models.SessionState)
}

// Notifier surfaces work<->break transitions to the user.
// Fire-and-forget: failures are logged, never propagated.
type Notifier interface {
	PhaseChanged(models.SessionState)
}

// Loop serializes all session state mutation onto one goroutine.
// Ticks, presenter commands, and config reloads are consumed from
// channels; the machine itself never sees concurrent access.
type Loop struct {
	machine   *Machine
	presenter Presenter
	notifier  Notifier
	log       zerolog.Logger

	interval time.Duration
	commands chan Command
	configCh chan Config

	// onTransition runs on every phase change (status persistence).
	onTransition func(models.SessionState)

	done     chan struct{}
	stopOnce sync.Once
}

// LoopOptions configures a Loop.
type LoopOptions struct {
	Machine      *Machine
	Presenter    Presenter
	Notifier     Notifier
	Log          zerolog.Logger
	TickInterval time.Duration
	OnTransition func(models.SessionState)
}

// NewLoop creates a loop around the given machine.
func NewLoop(opts LoopOptions) *Loop {
	if opts.TickInterval <= 0 {
		opts.TickInterval = time.Second
	}
	return &Loop{
		machine:      opts.Machine,
		presenter:    opts.Presenter,
		notifier:     opts.Notifier,
		log:          opts.Log,
		interval:     opts.TickInterval,
		commands:     make(chan Command, 8),
		configCh:     make(chan Config, 1),
		onTransition: opts.OnTransition,
		done:         make(chan struct{}),
	}
}

// SetPresenter attaches the presenter. Must be called before Run; the
// tray only exists once systray is ready.
func (l *Loop) SetPresenter(presenter Presenter) {
	l.presenter = presenter
}

// Run consumes tick and command events until Stop. Blocks; callers run
// it on its own goroutine.
func (l *Loop) Run() {
	if l.presenter != nil {
		l.presenter.Present(l.machine.State())
	}

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-l.done:
			return
		case <-ticker.C:
			if event, ok := l.machine.Tick(l.interval); ok {
				l.dispatch(event)
			}
		case config := <-l.configCh:
			if event, ok := l.machine.UpdateConfig(config); ok {
				l.dispatch(event)
			}
		case command := <-l.commands:
			switch command {
			case CmdPause:
				if event, ok := l.machine.Pause(); ok {
					l.log.Info().Msg("session paused")
					l.dispatch(event)
				}
			case CmdResume:
				if event, ok := l.machine.Resume(); ok {
					l.log.Info().Msg("session resumed")
					l.dispatch(event)
				}
			case CmdStop:
				l.Stop()
				return
			}
		}
	}
}

func (l *Loop) dispatch(event Event) {
	if l.presenter != nil {
		l.presenter.Present(event.State)
	}

	if event.Type != EventPhaseChanged {
		return
	}

	l.log.Info().
		Str("phase", string(event.State.Phase)).
		Int("cycles", event.State.CyclesCompleted).
		Msg("phase changed")

	if l.onTransition != nil {
		l.onTransition(event.State)
	}
	if event.Notify && l.notifier != nil {
		// Notification delivery can block on the OS; keep it off the
		// event loop goroutine.
		state := event.State
		go l.notifier.PhaseChanged(state)
	}
}

// Pause enqueues a pause command.
func (l *Loop) Pause() { l.enqueue(CmdPause) }

// Resume enqueues a resume command.
func (l *Loop) Resume() { l.enqueue(CmdResume) }

// UpdateConfig enqueues a config reload, replacing any pending one.
func (l *Loop) UpdateConfig(config Config) {
	select {
	case l.configCh <- config:
		return
	default:
	}
	// Channel full: displace the stale pending config.
	select {
	case <-l.configCh:
	default:
	}
	select {
	case l.configCh <- config:
	default:
	}
}

// Stop terminates the loop. Safe to call from any goroutine and in any
// phase; idempotent.
func (l *Loop) Stop() {
	l.stopOnce.Do(func() {
		close(l.done)
	})
}

// Done is closed when the loop has been stopped.
func (l *Loop) Done() <-chan struct{} {
	return l.done
}

func (l *Loop) enqueue(command Command) {
	select {
	case l.commands <- command:
	case <-l.done:
	}
}
