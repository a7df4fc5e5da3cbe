package logging

import (
	"path"
	"runtime"
	"strings"

	"github.com/sirupsen/logrus"
)

// ContextHook adds go source information (file, line, func) to every entry.
type ContextHook struct{}

// Levels defines which logging levels fire the hook. In our case, all levels.
func (hook ContextHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire walks back the call stack past logrus and this package and records
// the first caller it finds there.
func (hook ContextHook) Fire(entry *logrus.Entry) error {
	pcs := make([]uintptr, 24)
	n := runtime.Callers(1, pcs)
	frames := runtime.CallersFrames(pcs[:n])

	for {
		frame, more := frames.Next()
		name := frame.Function
		if !strings.Contains(name, "github.com/sirupsen/logrus") && !strings.Contains(name, "internal/logging") {
			entry.Data["file"] = path.Base(frame.File)
			entry.Data["line"] = frame.Line
			entry.Data["func"] = path.Base(name)
			break
		}
		if !more {
			break
		}
	}

	return nil
}
