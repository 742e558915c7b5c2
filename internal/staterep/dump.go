package staterep

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "staterep",
})

// SetLogOutput redirects diagnostic output, mainly for tests and callers
// that collect simulator traces somewhere other than stderr.
func SetLogOutput(w io.Writer) {
	logger.SetOutput(w)
}

// Dump logs the full state, tagged with label, to the diagnostic sink.
// Debug aid only; the output format is not stable.
func (r *StateRep) Dump(label string) {
	if r.released {
		logger.Warn(label, "dim", r.Dim(), "released", true)
		return
	}
	logger.Info(label, "dim", r.Dim(), "data", r.data)
}
