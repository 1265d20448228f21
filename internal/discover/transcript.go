package discover

import (
	"encoding/json"
	"io"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Format selects how a finished run is written to stdout.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a --format value.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatText, FormatJSON, FormatYAML:
		return Format(s), nil
	case "":
		return FormatText, nil
	default:
		return "", errors.Newf("unsupported output format: %s (supported: text, json, yaml)", s)
	}
}

// Transcript records one run of the pipeline.
type Transcript struct {
	RunID      string        `json:"run_id" yaml:"run_id"`
	Task       string        `json:"task" yaml:"task"`
	StartedAt  time.Time     `json:"started_at" yaml:"started_at"`
	DurationMS int64         `json:"duration_ms" yaml:"duration_ms"`
	Results    []StageResult `json:"stages" yaml:"stages"`
}

func newTranscript(task string) *Transcript {
	return &Transcript{
		RunID:     uuid.NewString(),
		Task:      task,
		StartedAt: time.Now(),
		Results:   make([]StageResult, 0, len(Stages())),
	}
}

// Output returns the raw output of stage, or "" if it has not run.
func (t *Transcript) Output(stage Stage) string {
	for _, r := range t.Results {
		if r.Stage == stage {
			return r.Output
		}
	}
	return ""
}

// Solution returns the output of the execute stage.
func (t *Transcript) Solution() string {
	return t.Output(StageExecute)
}

// Encode writes the transcript as JSON or YAML.
func (t *Transcript) Encode(w io.Writer, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(t)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(t); err != nil {
			return err
		}
		return enc.Close()
	default:
		return errors.Newf("transcript cannot be encoded as %q", format)
	}
}
