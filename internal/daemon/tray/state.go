// Package tray implements the menu bar icon and menu for the daemon.
package tray

// SessionController relays user commands from the menu into the
// session event loop. The presenter never mutates session state
// directly; it only posts commands.
type SessionController interface {
	Pause()
	Resume()
	Stop()
}
