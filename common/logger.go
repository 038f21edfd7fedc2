package common

import (
	"sync"

	"go.uber.org/zap"
)

var (
	logger   *zap.Logger
	loggerMu sync.RWMutex
)

// Logger returns the logger shared by every package in this module.
// A no-op logger is used until SetLogger is called.
//
// Returns:
//   - *zap.Logger: the active logger, never nil
func Logger() *zap.Logger {
	loggerMu.RLock()
	l := logger
	loggerMu.RUnlock()
	if l == nil {
		return zap.NewNop()
	}
	return l
}

// SetLogger replaces the shared logger. Passing nil restores the no-op logger.
//
// Parameters:
//   - l: the logger to use for all subsequent log output
func SetLogger(l *zap.Logger) {
	loggerMu.Lock()
	logger = l
	loggerMu.Unlock()
}
