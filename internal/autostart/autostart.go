// Package autostart installs and removes the login item that starts
// the daemon automatically. Install and Uninstall are idempotent:
// installing twice overwrites the same definition, keyed by the
// application label, and uninstalling an absent definition succeeds.
package autostart

// Label is the stable application identifier used to key the login item.
const Label = "com.pamplemousse"

// Install writes the login item for the given daemon executable,
// overwriting any existing definition.
func Install(execPath string) error {
	return install(execPath)
}

// Uninstall removes the login item if present.
func Uninstall() error {
	return uninstall()
}

// Installed reports whether the login item currently exists.
func Installed() (bool, error) {
	return installed()
}
