package logging

import (
	log "github.com/sirupsen/logrus"
)

// SetVerbosity maps the number of -v flags onto logging levels. Without
// the flag only warnings and worse are logged; every repetition adds one
// level of detail, up to trace.
func SetVerbosity(v []bool) {
	verbosity := log.WarnLevel + log.Level(len(v))
	if verbosity > log.TraceLevel {
		verbosity = log.TraceLevel
	}
	log.SetLevel(verbosity)
}

func VerbosityName() string {
	switch log.GetLevel() {
	case log.PanicLevel:
		return "PANIC"
	case log.FatalLevel:
		return "FATAL"
	case log.ErrorLevel:
		return "ERROR"
	case log.WarnLevel:
		return "WARN"
	case log.InfoLevel:
		return "INFO"
	case log.DebugLevel:
		return "DEBUG"
	default:
		return "TRACE"
	}
}
