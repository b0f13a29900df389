package config

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

// OpenDaemonLog sets up the daemon's structured logger, appending to
// ~/.pamplemousse/logs/daemon.log. The returned closer must be closed
// on shutdown.
func OpenDaemonLog() (zerolog.Logger, io.Closer, error) {
	if err := EnsureLogsDir(); err != nil {
		return zerolog.Nop(), nil, err
	}

	dir, err := LogsDir()
	if err != nil {
		return zerolog.Nop(), nil, err
	}

	f, err := os.OpenFile(filepath.Join(dir, DaemonLogName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), nil, err
	}

	zerolog.TimeFieldFormat = time.RFC3339
	logger := zerolog.New(f).With().Timestamp().Logger()
	return logger, f, nil
}
