package client

import (
	"fmt"
	"log/slog"
)

// restyLogger routes resty's internal messages through slog
type restyLogger struct {
	source string
}

func newRestyLogger(source string) *restyLogger {
	return &restyLogger{source: source}
}

func (l *restyLogger) Errorf(format string, v ...interface{}) {
	slog.Error(fmt.Sprintf(format, v...), "client", l.source)
}

func (l *restyLogger) Warnf(format string, v ...interface{}) {
	slog.Warn(fmt.Sprintf(format, v...), "client", l.source)
}

func (l *restyLogger) Debugf(format string, v ...interface{}) {
	slog.Debug(fmt.Sprintf(format, v...), "client", l.source)
}
