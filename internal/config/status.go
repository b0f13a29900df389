package config

import (
	"os"

	"github.com/pamplemousse-io/pamplemousse/internal/models"
)

// LoadStatus loads the daemon's last session snapshot.
// Returns nil if the daemon has never written one.
func LoadStatus() (*models.SessionState, error) {
	path, err := StatusFile()
	if err != nil {
		return nil, err
	}
	if !FileExists(path) {
		return nil, nil
	}

	var state models.SessionState
	if err := LoadYAML(path, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

// SaveStatus writes the daemon's session snapshot for the status command.
func SaveStatus(state models.SessionState) error {
	path, err := StatusFile()
	if err != nil {
		return err
	}
	return SaveYAML(path, state)
}

// RemoveStatus removes the status.yaml snapshot.
func RemoveStatus() error {
	path, err := StatusFile()
	if err != nil {
		return err
	}
	if !FileExists(path) {
		return nil
	}
	return os.Remove(path)
}
