package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/josephgoksu/selfdiscover/internal/discover"
	"github.com/josephgoksu/selfdiscover/internal/llm"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func TestProgressStageLines(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	var buf bytes.Buffer
	p := NewProgress(&buf, false)

	p.StageStarted(discover.StageSelect, "prompt")
	assert.Empty(t, buf.String(), "no spinner output without animation")

	p.StageCompleted(discover.StageResult{Stage: discover.StageSelect, Duration: 1200 * time.Millisecond})
	assert.Equal(t, "✓ select (1.2s)\n", buf.String())

	buf.Reset()
	p.StageFailed(&discover.StageError{Stage: discover.StageAdapt, Calls: 2, Err: errors.New("rate limited")})
	assert.Equal(t, "✗ adapt rate limited\n", buf.String())
}

func TestProgressAnimatedSpinnerStops(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	var buf bytes.Buffer
	p := NewProgress(&buf, true)

	p.StageStarted(discover.StageImplement, "prompt")
	spinner := p.spinner
	assert.True(t, spinner.Active())

	p.StageCompleted(discover.StageResult{Stage: discover.StageImplement, Duration: 40 * time.Millisecond})
	assert.False(t, spinner.Active())
	assert.Nil(t, p.spinner)
	assert.True(t, strings.HasSuffix(buf.String(), "✓ implement (40ms)\n"))
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "250ms", FormatDuration(250*time.Millisecond))
	assert.Equal(t, "1.0s", FormatDuration(time.Second))
	assert.Equal(t, "12.3s", FormatDuration(12300*time.Millisecond))
}

func TestRenderUsageSummary(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	var buf bytes.Buffer
	usage := llm.Usage{Calls: 4, PromptTokens: 1_000_000, CompletionTokens: 100_000}
	RenderUsageSummary(&buf, "gpt-4o", usage, 3*time.Second)

	out := buf.String()
	assert.Contains(t, out, "gpt-4o")
	assert.Contains(t, out, "Calls: 4")
	assert.Contains(t, out, "1000000 in / 100000 out")
	assert.Contains(t, out, "$3.5000")
	assert.Contains(t, out, "3.0s")

	buf.Reset()
	RenderUsageSummary(&buf, "my-local-model", usage, time.Second)
	assert.NotContains(t, buf.String(), "Est. cost")
}

func TestIsTerminalNil(t *testing.T) {
	assert.False(t, IsTerminal(nil))
}
