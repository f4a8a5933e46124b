package coefficients

import (
	"sync"

	"github.com/rs/zerolog"
)

var (
	loggerMu sync.RWMutex
	logger   = zerolog.Nop()
)

// SetLogger sets the logger used while parsing coefficient tables.
// Callers normally pass the application logger once at startup.
func SetLogger(l zerolog.Logger) {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	logger = l.With().Str("component", "coefficients").Logger()
}

func log() *zerolog.Logger {
	loggerMu.RLock()
	defer loggerMu.RUnlock()
	l := logger
	return &l
}
