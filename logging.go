package streamtext

import (
	"io"

	"github.com/charmbracelet/log"
)

// debugLog is the package-wide debug logger for the adapters; at present
// it records which read mode NewReader's terminal probe selected. It
// discards output until SetDebugOutput is called, the
// discarding by default keeps library callers silent unless they opt in.
var debugLog = log.NewWithOptions(io.Discard, log.Options{Prefix: "streamtext"})

// SetDebugOutput routes the package's internal debug logging to w at the
// given level. Pass io.Discard to silence it again. Intended for CLI
// front ends (see cmd/streamcat) that want to surface adapter internals
// under a --debug flag; library callers that don't care can ignore this
// entirely.
func SetDebugOutput(w io.Writer, level log.Level) {
	debugLog.SetOutput(w)
	debugLog.SetLevel(level)
}
