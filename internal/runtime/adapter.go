package runtime

import "github.com/charmbracelet/log"

// LoggerAdapter lets a charm log.Logger, whose methods take an untyped
// message, serve as a LoggerProvider.
type LoggerAdapter struct {
	logger *log.Logger
}

// NewLoggerAdapter wraps logger.
func NewLoggerAdapter(logger *log.Logger) LoggerProvider {
	return &LoggerAdapter{logger: logger}
}

// Debug implements LoggerProvider.
func (la *LoggerAdapter) Debug(msg string, keyvals ...interface{}) {
	la.logger.Debug(msg, keyvals...)
}

// Info implements LoggerProvider.
func (la *LoggerAdapter) Info(msg string, keyvals ...interface{}) {
	la.logger.Info(msg, keyvals...)
}
