package discover

import (
	"time"

	"github.com/josephgoksu/selfdiscover/prompts"
)

// Stage is one prompt-build-and-generate round trip of the pipeline.
type Stage string

const (
	StageSelect    Stage = "select"
	StageAdapt     Stage = "adapt"
	StageImplement Stage = "implement"
	StageExecute   Stage = "execute"
)

// Stages returns the stages in the order they run.
func Stages() []Stage {
	return []Stage{StageSelect, StageAdapt, StageImplement, StageExecute}
}

// Label is the heading printed above the stage output.
func (s Stage) Label() string {
	switch s {
	case StageSelect:
		return "SELECT"
	case StageAdapt:
		return "ADAPT"
	case StageImplement:
		return "IMPLEMENT"
	case StageExecute:
		return "OUTPUT"
	default:
		return string(s)
	}
}

// Phase returns 1 for the structure-discovery stages and 2 for execute.
func (s Stage) Phase() int {
	if s == StageExecute {
		return 2
	}
	return 1
}

// opensPhase reports whether s is the first stage of its phase.
func (s Stage) opensPhase() bool {
	return s == StageSelect || s == StageExecute
}

// previous returns the stage whose output feeds s.
func (s Stage) previous() (Stage, bool) {
	switch s {
	case StageAdapt:
		return StageSelect, true
	case StageImplement:
		return StageAdapt, true
	case StageExecute:
		return StageImplement, true
	default:
		return "", false
	}
}

func (s Stage) promptKey() prompts.Key {
	return prompts.Key(s)
}

// Request is the typed input of one stage.
type Request struct {
	Stage   Stage
	Task    string
	Input   string   // Previous stage output; empty for select
	Modules []string // Catalog offered to select
	Example string   // Structure example shown to implement
}

// StageResult is the typed output of one stage. Output is the raw model text.
type StageResult struct {
	Stage      Stage         `json:"stage" yaml:"stage"`
	Prompt     string        `json:"prompt" yaml:"prompt"`
	Output     string        `json:"output" yaml:"output"`
	DurationMS int64         `json:"duration_ms" yaml:"duration_ms"`
	Duration   time.Duration `json:"-" yaml:"-"`
}

// BuildPrompt renders the prompt for req with the templates in set.
func BuildPrompt(set *prompts.Set, req Request) (string, error) {
	data := prompts.Data{Task: req.Task}
	switch req.Stage {
	case StageSelect:
		data.Modules = FormatModules(req.Modules)
	case StageImplement:
		data.Input = req.Input
		data.Example = req.Example
	default:
		data.Input = req.Input
	}
	return set.Render(req.Stage.promptKey(), data)
}
