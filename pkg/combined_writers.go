package pkg

import (
	"io"

	"go.uber.org/multierr"
)

// CombinedWriter tees log output to the rotated log file and stdout.
// A failing writer does not stop the others.
type CombinedWriter struct {
	writers []io.Writer
}

func NewCombinedWriter(writers ...io.Writer) *CombinedWriter {
	return &CombinedWriter{
		writers: writers,
	}
}

// Write reports len(p) when at least one writer took the whole message,
// along with the errors of the ones that did not.
func (cw *CombinedWriter) Write(p []byte) (int, error) {
	var errs error
	delivered := false
	for _, w := range cw.writers {
		n, err := w.Write(p)
		if err == nil && n < len(p) {
			err = io.ErrShortWrite
		}
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		delivered = true
	}

	if !delivered {
		return 0, errs
	}
	return len(p), errs
}
