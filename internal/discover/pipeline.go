// Package discover implements the SELF-DISCOVER prompting pipeline:
// select, adapt and implement compose a task-specific reasoning structure
// from a catalog of generic reasoning modules, and execute follows that
// structure to solve the task.
package discover

import (
	"context"
	"strings"
	"time"

	"github.com/cloudwego/eino/compose"
	"github.com/cockroachdb/errors"
	"github.com/josephgoksu/selfdiscover/internal/llm"
	"github.com/josephgoksu/selfdiscover/internal/logger"
	"github.com/josephgoksu/selfdiscover/prompts"
)

// Pipeline runs the four stages against a single generator.
type Pipeline struct {
	gen       llm.Generator
	prompts   *prompts.Set
	modules   []string
	example   string
	observers []Observer
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithPrompts replaces the builtin stage templates.
func WithPrompts(set *prompts.Set) Option {
	return func(p *Pipeline) { p.prompts = set }
}

// WithModules replaces the reasoning-module catalog.
func WithModules(modules []string) Option {
	return func(p *Pipeline) { p.modules = modules }
}

// WithExample replaces the reasoning structure example.
func WithExample(example string) Option {
	return func(p *Pipeline) { p.example = example }
}

// WithObserver adds an observer notified around every stage.
func WithObserver(o Observer) Option {
	return func(p *Pipeline) { p.observers = append(p.observers, o) }
}

// New creates a Pipeline that sends every prompt to gen.
func New(gen llm.Generator, opts ...Option) *Pipeline {
	p := &Pipeline{
		gen:     gen,
		modules: ReasoningModules(),
		example: StructureExample,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.prompts == nil {
		p.prompts = prompts.DefaultSet()
	}
	return p
}

// Select asks the model which catalog modules matter for task.
func (p *Pipeline) Select(ctx context.Context, task string) (StageResult, error) {
	return p.single(ctx, Request{Stage: StageSelect, Task: task, Modules: p.modules})
}

// Adapt asks the model to make the selected modules specific to task.
func (p *Pipeline) Adapt(ctx context.Context, task, selected string) (StageResult, error) {
	return p.single(ctx, Request{Stage: StageAdapt, Task: task, Input: selected})
}

// Implement asks the model to turn the adapted modules into a reasoning plan.
func (p *Pipeline) Implement(ctx context.Context, task, adapted string) (StageResult, error) {
	return p.single(ctx, Request{Stage: StageImplement, Task: task, Input: adapted, Example: p.example})
}

// Execute asks the model to solve task by following plan.
func (p *Pipeline) Execute(ctx context.Context, task, plan string) (StageResult, error) {
	return p.single(ctx, Request{Stage: StageExecute, Task: task, Input: plan})
}

func (p *Pipeline) single(ctx context.Context, req Request) (StageResult, error) {
	var calls int
	res, serr := p.runStage(ctx, req, "", &calls)
	if serr != nil {
		return res, serr
	}
	return res, nil
}

// runState is threaded through the compiled chain.
type runState struct {
	transcript *Transcript
	calls      int
	failure    *StageError
}

// Run executes select, adapt, implement and execute in order, each exactly
// once. The first failure stops the run and is returned as a *StageError
// together with the partial transcript.
func (p *Pipeline) Run(ctx context.Context, task string) (*Transcript, error) {
	if strings.TrimSpace(task) == "" {
		return nil, ErrEmptyTask
	}

	runnable, err := p.compile(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "compile pipeline")
	}

	state := &runState{transcript: newTranscript(task)}
	logger.SetRun(state.transcript.RunID, task)
	logger.Logger.Debugw("run started", logger.FieldRunID, state.transcript.RunID)

	trace := newTraceHandler(state.transcript.RunID)
	_, err = runnable.Invoke(ctx, state, compose.WithCallbacks(trace.Build()))
	state.transcript.DurationMS = time.Since(state.transcript.StartedAt).Milliseconds()

	if state.failure != nil {
		return state.transcript, state.failure
	}
	if err != nil {
		return state.transcript, errors.Wrap(err, "run pipeline")
	}

	logger.Logger.Debugw("run finished",
		logger.FieldRunID, state.transcript.RunID,
		logger.FieldCalls, state.calls,
		logger.FieldDurationMS, state.transcript.DurationMS,
	)
	return state.transcript, nil
}

// compile builds a linear Eino chain with one lambda node per stage.
func (p *Pipeline) compile(ctx context.Context) (compose.Runnable[*runState, *runState], error) {
	chain := compose.NewChain[*runState, *runState]()
	for _, stage := range Stages() {
		chain.AppendLambda(compose.InvokableLambda(p.step(stage)), compose.WithNodeName(string(stage)))
	}
	return chain.Compile(ctx, compose.WithGraphName("self-discover"))
}

func (p *Pipeline) step(stage Stage) func(context.Context, *runState) (*runState, error) {
	return func(ctx context.Context, state *runState) (*runState, error) {
		req := Request{Stage: stage, Task: state.transcript.Task}
		switch stage {
		case StageSelect:
			req.Modules = p.modules
		case StageImplement:
			req.Example = p.example
		}
		if prev, ok := stage.previous(); ok {
			req.Input = state.transcript.Output(prev)
		}

		res, serr := p.runStage(ctx, req, state.transcript.RunID, &state.calls)
		if serr != nil {
			state.failure = serr
			return nil, serr
		}
		state.transcript.Results = append(state.transcript.Results, res)
		return state, nil
	}
}

// runStage builds the prompt for req, calls the generator once and notifies observers.
func (p *Pipeline) runStage(ctx context.Context, req Request, runID string, calls *int) (StageResult, *StageError) {
	result := StageResult{Stage: req.Stage}

	prompt, err := BuildPrompt(p.prompts, req)
	if err != nil {
		return result, p.fail(req.Stage, *calls, err)
	}
	result.Prompt = prompt

	logger.SetStage(string(req.Stage), prompt)
	logger.Logger.Debugw("stage started",
		logger.FieldRunID, runID,
		logger.FieldStage, string(req.Stage),
		logger.FieldPromptChars, len(prompt),
	)
	for _, o := range p.observers {
		o.StageStarted(req.Stage, prompt)
	}

	start := time.Now()
	*calls++
	output, err := p.gen.Generate(ctx, prompt)
	result.Duration = time.Since(start)
	result.DurationMS = result.Duration.Milliseconds()
	if err != nil {
		return result, p.fail(req.Stage, *calls, err)
	}
	result.Output = output

	logger.Logger.Debugw("stage finished",
		logger.FieldRunID, runID,
		logger.FieldStage, string(req.Stage),
		logger.FieldDurationMS, result.DurationMS,
		logger.FieldOutputChars, len(output),
	)
	for _, o := range p.observers {
		o.StageCompleted(result)
	}
	return result, nil
}

func (p *Pipeline) fail(stage Stage, calls int, err error) *StageError {
	serr := &StageError{Stage: stage, Calls: calls, Err: err}
	logger.Logger.Debugw("stage failed", logger.FieldStage, string(stage), logger.FieldCalls, calls, logger.FieldError, err)
	for _, o := range p.observers {
		o.StageFailed(serr)
	}
	return serr
}
