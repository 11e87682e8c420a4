package internal

import (
	"fmt"
	"io"
	"os"
	"strings"
)

const (
	ExitOK      = 0
	ExitUsage   = 1
	ExitFailure = 2
)

// Exit will call os.Exit with the given code if it isn't ExitOK.
func Exit(code int) {
	if code != ExitOK {
		os.Exit(code)
	}
}

// Echo will emit the given message to w without any logging formatting.
func Echo(w io.Writer, msg string, args ...any) {
	if !strings.HasSuffix(msg, "\n") {
		msg += "\n"
	}
	_, _ = fmt.Fprintf(w, msg, args...)
}
