package cmd

import (
	"bufio"
	"context"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/josephgoksu/selfdiscover/internal/config"
	"github.com/josephgoksu/selfdiscover/internal/discover"
	"github.com/josephgoksu/selfdiscover/internal/llm"
	"github.com/josephgoksu/selfdiscover/internal/logger"
	"github.com/josephgoksu/selfdiscover/internal/ui"
	"github.com/josephgoksu/selfdiscover/prompts"
	"github.com/spf13/cobra"
)

const taskPrompt = "Enter the task description:"

// interactiveInput reports whether the task should be read with the line editor.
var interactiveInput = func(in io.Reader) bool {
	f, ok := in.(*os.File)
	return ok && ui.IsTerminal(f)
}

// promptTask reads the task on a terminal. Tests replace it.
var promptTask = ui.PromptTask

// newGenerator builds the text generator for a run. Tests replace it.
var newGenerator = func(ctx context.Context, cfg llm.Config) (llm.Generator, error) {
	return llm.NewChatGenerator(ctx, cfg)
}

// usageReporter is implemented by generators that track token usage.
type usageReporter interface {
	Usage() llm.Usage
	Model() string
}

func runDiscover(cmd *cobra.Command, args []string) error {
	// Graceful shutdown context listening for SIGINT (Ctrl+C)
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	appCfg := GetConfig()
	stdout := cmd.OutOrStdout()
	stderr := cmd.ErrOrStderr()

	format, err := discover.ParseFormat(appCfg.Output.Format)
	if err != nil {
		return err
	}

	task, err := readTask(cmd.InOrStdin(), stderr, args)
	if err != nil {
		return err
	}

	llmCfg, err := config.LoadLLMConfig()
	if err != nil {
		return errors.Wrap(err, "llm config")
	}
	logger.Logger.Debugw("llm configured",
		logger.FieldProvider, string(llmCfg.Provider),
		logger.FieldModel, llmCfg.Model,
	)

	set, err := prompts.NewOsLoader(appCfg.Prompts.Dir).Load()
	if err != nil {
		return errors.WithHint(errors.Wrap(err, "load prompts"), "check the templates in --prompts-dir")
	}

	gen, err := newGenerator(ctx, llmCfg)
	if err != nil {
		return errors.Wrapf(err, "create %s generator", llmCfg.Provider)
	}

	opts := []discover.Option{discover.WithPrompts(set)}
	if format == discover.FormatText {
		opts = append(opts, discover.WithObserver(discover.NewTextPrinter(stdout)))
	}
	animate := isTerminalWriter(stderr)
	if animate || appCfg.Verbose {
		opts = append(opts, discover.WithObserver(ui.NewProgress(stderr, animate)))
	}

	start := time.Now()
	transcript, runErr := discover.New(gen, opts...).Run(ctx, task)

	if format != discover.FormatText && transcript != nil {
		if err := transcript.Encode(stdout, format); err != nil {
			return errors.CombineErrors(runErr, errors.Wrap(err, "write transcript"))
		}
	}
	if appCfg.Verbose {
		if u, ok := gen.(usageReporter); ok {
			ui.RenderUsageSummary(stderr, u.Model(), u.Usage(), time.Since(start))
		}
	}
	return runErr
}

// readTask returns the task from args, or one line read from in.
// On a terminal the line is read with an editor drawn on promptOut.
func readTask(in io.Reader, promptOut io.Writer, args []string) (string, error) {
	if len(args) > 0 {
		task := strings.Join(args, " ")
		if strings.TrimSpace(task) == "" {
			return "", discover.ErrEmptyTask
		}
		return task, nil
	}

	var task string
	if interactiveInput(in) {
		line, err := promptTask(in, promptOut, taskPrompt)
		if errors.Is(err, ui.ErrInputCancelled) {
			return "", errors.Wrap(context.Canceled, "read task")
		}
		if err != nil {
			return "", err
		}
		task = line
	} else {
		line, err := bufio.NewReader(in).ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return "", errors.Wrap(err, "read task from stdin")
		}
		task = strings.TrimRight(line, "\r\n")
	}
	if strings.TrimSpace(task) == "" {
		return "", errors.WithHint(discover.ErrEmptyTask, "pass the task as an argument or pipe it on stdin")
	}
	return task, nil
}

func isTerminalWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && ui.IsTerminal(f)
}
