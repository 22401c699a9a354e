package remote

import (
	"fmt"
	"io"
)

// NewProgressReporter returns a ProgressFunc that writes the completed percentage to w
// every time another step percent of the total has been transferred
func NewProgressReporter(w io.Writer, step int) ProgressFunc {
	if step <= 0 {
		step = 10
	}
	next := step
	return func(transferred int64, total int64) {
		if w == nil || total <= 0 {
			return
		}
		percent := int(transferred * 100 / total)
		if percent < next {
			return
		}
		_, _ = fmt.Fprintf(w, "%d%% ", percent-percent%step)
		next = percent - percent%step + step
		if percent == 100 {
			_, _ = io.WriteString(w, "\n")
		}
	}
}
