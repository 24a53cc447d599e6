package balloons

import (
	"io"
	"log"
	"os"
)

// NewDebugLogger returns a stderr logger with the package prefix, or nil when
// debug output is disabled. Every debug helper treats a nil logger as off.
func NewDebugLogger(enabled bool) *log.Logger {
	if !enabled {
		return nil
	}
	return newLogger(os.Stderr)
}

func newLogger(w io.Writer) *log.Logger {
	return log.New(w, "[balloons] ", log.Ltime|log.Lmicroseconds)
}

// debugf logs through the scene logger when debug output is enabled.
func (s *Scene) debugf(format string, args ...any) {
	if s.logger == nil {
		return
	}
	s.logger.Printf(format, args...)
}

// debugf logs through the component logger when debug output is enabled.
func (c *Component) debugf(format string, args ...any) {
	if c.logger == nil {
		return
	}
	c.logger.Printf(format, args...)
}
