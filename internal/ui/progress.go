package ui

import (
	"fmt"
	"io"
	"sync"

	"github.com/josephgoksu/selfdiscover/internal/discover"
)

// Progress reports stage progress on stderr. It implements discover.Observer.
// With animate set, a spinner runs while the model is working on a stage.
type Progress struct {
	w       io.Writer
	animate bool

	mu      sync.Mutex
	spinner *Spinner
}

// NewProgress returns a Progress writing to w.
func NewProgress(w io.Writer, animate bool) *Progress {
	return &Progress{w: w, animate: animate}
}

func (p *Progress) StageStarted(stage discover.Stage, _ string) {
	if !p.animate {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.spinner = NewSpinner(p.w, StyleSubtle.Render(fmt.Sprintf("%s...", stage)))
	p.spinner.Start()
}

func (p *Progress) StageCompleted(result discover.StageResult) {
	p.stopSpinner()
	fmt.Fprintf(p.w, "%s %s %s\n",
		Icon("✓", StylePrefixDone),
		StyleStageName.Render(string(result.Stage)),
		StyleSubtle.Render("("+FormatDuration(result.Duration)+")"),
	)
}

func (p *Progress) StageFailed(err *discover.StageError) {
	p.stopSpinner()
	fmt.Fprintf(p.w, "%s %s %s\n",
		Icon("✗", StylePrefixError),
		StyleStageName.Render(string(err.Stage)),
		StyleError.Render(err.Err.Error()),
	)
}

func (p *Progress) stopSpinner() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.spinner != nil {
		p.spinner.Stop()
		p.spinner = nil
	}
}
