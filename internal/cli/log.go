package cli

import (
	"io"

	"github.com/charmbracelet/log"
)

// newLogger creates a leveled logger writing to w. Timestamps are omitted:
// the CLI runs one short-lived command at a time, so levels matter and
// wall-clock noise does not.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level: level,
	})
}
