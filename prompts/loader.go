// Package prompts holds the stage prompt templates and loads per-stage
// overrides from a prompts directory.
package prompts

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/josephgoksu/selfdiscover/internal/logger"
	"github.com/spf13/afero"
)

// Key identifies the prompt of one pipeline stage.
type Key string

const (
	KeySelect    Key = "select"
	KeyAdapt     Key = "adapt"
	KeyImplement Key = "implement"
	KeyExecute   Key = "execute"
)

// SourceBuiltin marks a template that came from the compiled-in defaults.
const SourceBuiltin = "builtin"

// promptConfig defines the default content and override filename for a prompt.
type promptConfig struct {
	defaultContent string
	filename       string
}

var promptRegistry = map[Key]promptConfig{
	KeySelect:    {defaultContent: SelectPrompt, filename: "select_prompt.tmpl"},
	KeyAdapt:     {defaultContent: AdaptPrompt, filename: "adapt_prompt.tmpl"},
	KeyImplement: {defaultContent: ImplementPrompt, filename: "implement_prompt.tmpl"},
	KeyExecute:   {defaultContent: ExecutePrompt, filename: "execute_prompt.tmpl"},
}

// Keys returns the prompt keys in pipeline order.
func Keys() []Key {
	return []Key{KeySelect, KeyAdapt, KeyImplement, KeyExecute}
}

// Filename returns the override filename for key, or "" if key is unknown.
func Filename(key Key) string {
	return promptRegistry[key].filename
}

// Data is the value a stage template is rendered with.
type Data struct {
	Task    string // The problem statement
	Modules string // Formatted reasoning-module catalog (select)
	Input   string // Previous stage output (adapt, implement, execute)
	Example string // Reasoning structure example (implement)
}

// Loader resolves stage templates, preferring files in dir over the defaults.
// It uses an afero.Fs so tests can run against an in-memory filesystem.
type Loader struct {
	fs  afero.Fs
	dir string
}

// NewLoader creates a Loader reading overrides from dir on fs.
// An empty dir disables overrides.
func NewLoader(fs afero.Fs, dir string) *Loader {
	return &Loader{fs: fs, dir: dir}
}

// NewOsLoader creates a Loader on the operating system filesystem.
func NewOsLoader(dir string) *Loader {
	return NewLoader(afero.NewOsFs(), dir)
}

// Get returns the template text for key and where it came from
// (SourceBuiltin or the override file path).
func (l *Loader) Get(key Key) (content string, source string, err error) {
	cfg, ok := promptRegistry[key]
	if !ok {
		return "", "", fmt.Errorf("unrecognized prompt key: %s", key)
	}

	if strings.TrimSpace(l.dir) == "" {
		return cfg.defaultContent, SourceBuiltin, nil
	}

	path := filepath.Join(l.dir, cfg.filename)
	exists, err := afero.Exists(l.fs, path)
	if err != nil {
		return "", "", fmt.Errorf("check prompt override %s: %w", path, err)
	}
	if !exists {
		return cfg.defaultContent, SourceBuiltin, nil
	}

	data, err := afero.ReadFile(l.fs, path)
	if err != nil {
		return "", "", fmt.Errorf("read prompt override %s: %w", path, err)
	}
	logger.Logger.Infow("using prompt override", logger.FieldKey, string(key), logger.FieldFile, path)
	return string(data), path, nil
}

// Load parses the templates of every stage and renders each once with empty
// Data, so a reference to a field Data lacks fails here rather than mid-run.
func (l *Loader) Load() (*Set, error) {
	set := &Set{
		templates: make(map[Key]*template.Template, len(promptRegistry)),
		sources:   make(map[Key]string, len(promptRegistry)),
	}
	for _, key := range Keys() {
		content, source, err := l.Get(key)
		if err != nil {
			return nil, err
		}
		tmpl, err := template.New(string(key)).Option("missingkey=error").Parse(content)
		if err != nil {
			return nil, fmt.Errorf("parse %s prompt (%s): %w", key, source, err)
		}
		if err := tmpl.Execute(io.Discard, Data{}); err != nil {
			return nil, fmt.Errorf("render %s prompt (%s): %w", key, source, err)
		}
		set.templates[key] = tmpl
		set.sources[key] = source
	}
	return set, nil
}

// Set is a parsed template per stage.
type Set struct {
	templates map[Key]*template.Template
	sources   map[Key]string
}

// DefaultSet returns the compiled-in templates.
func DefaultSet() *Set {
	set, err := NewLoader(afero.NewMemMapFs(), "").Load()
	if err != nil {
		panic(fmt.Sprintf("builtin prompts: %v", err))
	}
	return set
}

// Render executes the template for key with data.
func (s *Set) Render(key Key, data Data) (string, error) {
	tmpl, ok := s.templates[key]
	if !ok {
		return "", fmt.Errorf("no template for prompt key: %s", key)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("execute %s template: %w", key, err)
	}
	return buf.String(), nil
}

// Source reports where the template for key was loaded from.
func (s *Set) Source(key Key) string {
	return s.sources[key]
}
