package internal

import (
	"io"

	"github.com/sirupsen/logrus"
)

// NewLogger creates a logger writing to w, which should be stderr so diagnostics never mix with command output.
// Only warnings and errors are emitted unless verbose is true.
func NewLogger(w io.Writer, verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		DisableColors:    true,
	})
	log.SetLevel(logrus.WarnLevel)
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}
