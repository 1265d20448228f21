package discover

import (
	"fmt"
	"io"
)

// Observer is notified around each stage of a run.
type Observer interface {
	StageStarted(stage Stage, prompt string)
	StageCompleted(result StageResult)
	StageFailed(err *StageError)
}

// TextPrinter writes the plain-text transcript as stages complete:
// a "STAGE n" marker when a phase opens, then "<LABEL>: " and the output.
type TextPrinter struct {
	w io.Writer
}

// NewTextPrinter returns a TextPrinter writing to w.
func NewTextPrinter(w io.Writer) *TextPrinter {
	return &TextPrinter{w: w}
}

func (p *TextPrinter) StageStarted(stage Stage, _ string) {
	if stage.opensPhase() {
		fmt.Fprintf(p.w, "STAGE %d\n", stage.Phase())
	}
}

func (p *TextPrinter) StageCompleted(result StageResult) {
	if result.Stage == StageExecute {
		fmt.Fprintf(p.w, "%s: \n%s\n", result.Stage.Label(), result.Output)
		return
	}
	fmt.Fprintf(p.w, "%s: \n%s\n\n", result.Stage.Label(), result.Output)
}

func (p *TextPrinter) StageFailed(*StageError) {}
