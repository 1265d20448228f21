package cmd

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/josephgoksu/selfdiscover/internal/discover"
	"github.com/josephgoksu/selfdiscover/internal/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadTask(t *testing.T) {
	tests := []struct {
		name    string
		stdin   string
		args    []string
		want    string
		wantErr bool
	}{
		{name: "single line", stdin: "solve x\n", want: "solve x"},
		{name: "no trailing newline", stdin: "solve x", want: "solve x"},
		{name: "crlf", stdin: "solve x\r\n", want: "solve x"},
		{name: "first line only", stdin: "one\ntwo\n", want: "one"},
		{name: "args joined", stdin: "ignored\n", args: []string{"a", "b"}, want: "a b"},
		{name: "empty stdin", stdin: "", wantErr: true},
		{name: "blank line", stdin: " \t\n", wantErr: true},
		{name: "blank args", args: []string{" "}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var prompt bytes.Buffer
			got, err := readTask(strings.NewReader(tt.stdin), &prompt, tt.args)
			assert.Empty(t, prompt.String(), "prompt is only shown on a terminal")
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, discover.ErrEmptyTask))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadTaskInteractive(t *testing.T) {
	tests := []struct {
		name      string
		reply     string
		replyErr  error
		want      string
		wantEmpty bool
		wantIntr  bool
	}{
		{name: "typed task", reply: "plan a trip", want: "plan a trip"},
		{name: "blank task", reply: "   ", wantEmpty: true},
		{name: "cancelled", replyErr: ui.ErrInputCancelled, wantIntr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			origInteractive, origPrompt := interactiveInput, promptTask
			t.Cleanup(func() { interactiveInput, promptTask = origInteractive, origPrompt })

			var gotTitle string
			interactiveInput = func(io.Reader) bool { return true }
			promptTask = func(_ io.Reader, out io.Writer, title string) (string, error) {
				gotTitle = title
				return tt.reply, tt.replyErr
			}

			var prompt bytes.Buffer
			got, err := readTask(strings.NewReader("piped line is not read\n"), &prompt, nil)
			assert.Equal(t, taskPrompt, gotTitle)
			switch {
			case tt.wantEmpty:
				require.Error(t, err)
				assert.True(t, errors.Is(err, discover.ErrEmptyTask))
			case tt.wantIntr:
				require.Error(t, err)
				assert.True(t, errors.Is(err, context.Canceled))
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestReadTaskArgsSkipEditor(t *testing.T) {
	origInteractive, origPrompt := interactiveInput, promptTask
	t.Cleanup(func() { interactiveInput, promptTask = origInteractive, origPrompt })

	interactiveInput = func(io.Reader) bool { return true }
	promptTask = func(io.Reader, io.Writer, string) (string, error) {
		t.Fatal("editor opened although the task was given as arguments")
		return "", nil
	}

	got, err := readTask(strings.NewReader(""), io.Discard, []string{"plan", "a", "trip"})
	require.NoError(t, err)
	assert.Equal(t, "plan a trip", got)
}
