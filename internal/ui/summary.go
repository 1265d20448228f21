package ui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/josephgoksu/selfdiscover/internal/llm"
)

// RenderUsageSummary writes a boxed summary of model calls, token usage and
// estimated cost. Models without registry pricing show no cost line.
func RenderUsageSummary(w io.Writer, modelID string, usage llm.Usage, elapsed time.Duration) {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", StyleTitle.Render("Model:"), modelID)
	fmt.Fprintf(&b, "%s %d\n", StyleTitle.Render("Calls:"), usage.Calls)
	fmt.Fprintf(&b, "%s %d in / %d out\n", StyleTitle.Render("Tokens:"), usage.PromptTokens, usage.CompletionTokens)
	if llm.GetModel(modelID) != nil {
		fmt.Fprintf(&b, "%s $%.4f\n", StyleTitle.Render("Est. cost:"), usage.Cost(modelID))
	}
	fmt.Fprintf(&b, "%s %s", StyleTitle.Render("Elapsed:"), FormatDuration(elapsed))

	fmt.Fprintln(w, StyleSummaryBox.Render(b.String()))
}
