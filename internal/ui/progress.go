package ui

import (
	"io"

	"github.com/cheggaaa/pb/v3"
)

const progressTemplate = `{{ string . "source" }} {{ counters . }} {{ bar . }} {{ percent . }} {{ string . "language" }}`

// Progress tracks languages completed for one source.
type Progress struct {
	bar *pb.ProgressBar
}

// NewProgress starts a progress bar on w for total languages. A nil result is returned
// when disabled, and all Progress methods accept a nil receiver.
func NewProgress(w io.Writer, source string, total int, disabled bool) *Progress {
	if disabled {
		return nil
	}
	bar := pb.New(total)
	bar.SetWriter(w)
	bar.SetTemplateString(progressTemplate)
	bar.Set("source", source)
	bar.Start()
	return &Progress{bar: bar}
}

// Done marks one language as finished.
func (p *Progress) Done(language string) {
	if p == nil {
		return
	}
	p.bar.Set("language", language)
	p.bar.Increment()
}

// Finish stops the bar.
func (p *Progress) Finish() {
	if p == nil {
		return
	}
	p.bar.Finish()
}
