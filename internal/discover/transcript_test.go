package discover

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleTranscript() *Transcript {
	t := newTranscript("find the flow velocity")
	for _, stage := range Stages() {
		t.Results = append(t.Results, StageResult{
			Stage:      stage,
			Prompt:     "prompt for " + string(stage),
			Output:     "line one\nline two for " + string(stage),
			DurationMS: 12,
		})
	}
	return t
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{in: "", want: FormatText},
		{in: "text", want: FormatText},
		{in: "json", want: FormatJSON},
		{in: "yaml", want: FormatYAML},
		{in: "xml", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTranscriptOutputLookup(t *testing.T) {
	tr := sampleTranscript()
	assert.Equal(t, "line one\nline two for adapt", tr.Output(StageAdapt))
	assert.Equal(t, "line one\nline two for execute", tr.Solution())

	partial := newTranscript("x")
	assert.Empty(t, partial.Solution())
}

func TestTranscriptEncodeJSON(t *testing.T) {
	tr := sampleTranscript()
	var buf bytes.Buffer
	require.NoError(t, tr.Encode(&buf, FormatJSON))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, tr.RunID, decoded["run_id"])
	assert.Equal(t, "find the flow velocity", decoded["task"])

	stages, ok := decoded["stages"].([]any)
	require.True(t, ok)
	require.Len(t, stages, 4)
	first := stages[0].(map[string]any)
	assert.Equal(t, "select", first["stage"])
	assert.NotContains(t, first, "Duration")
}

func TestTranscriptEncodeYAML(t *testing.T) {
	tr := sampleTranscript()
	var buf bytes.Buffer
	require.NoError(t, tr.Encode(&buf, FormatYAML))

	var decoded struct {
		RunID  string `yaml:"run_id"`
		Stages []struct {
			Stage  string `yaml:"stage"`
			Output string `yaml:"output"`
		} `yaml:"stages"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, tr.RunID, decoded.RunID)
	require.Len(t, decoded.Stages, 4)
	assert.Equal(t, "execute", decoded.Stages[3].Stage)
	assert.Equal(t, "line one\nline two for execute", decoded.Stages[3].Output)
}

func TestTranscriptEncodeText(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, sampleTranscript().Encode(&buf, FormatText))
}
