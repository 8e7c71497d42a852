package partyapi

import "time"

// Logger is the logging subset the client needs.
type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// MetricsObserver receives one observation per remote store call.
// Nil when metrics are disabled.
type MetricsObserver interface {
	ObserveUpstream(upstream, operation, outcome string, elapsed time.Duration)
}
