package models

import "time"

// InstanceRecord identifies the running daemon process.
// This corresponds to ~/.pamplemousse/instance.yaml.
type InstanceRecord struct {
	Version   int       `yaml:"version"`
	PID       int       `yaml:"pid"`
	StartedAt time.Time `yaml:"started_at"`
}

// NewInstanceRecord creates an instance record for the given PID.
func NewInstanceRecord(pid int) *InstanceRecord {
	return &InstanceRecord{
		Version:   1,
		PID:       pid,
		StartedAt: time.Now().UTC(),
	}
}
