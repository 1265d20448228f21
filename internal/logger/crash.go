package logger

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"strings"
	"sync"
	"time"
)

const (
	// CrashLogDir is the directory for crash logs relative to the base path.
	CrashLogDir = "crash_logs"

	// MaxCrashLogs is the maximum number of crash logs to keep.
	MaxCrashLogs = 10
)

// CrashContext stores what the run was doing when it panicked.
type CrashContext struct {
	mu         sync.RWMutex
	runID      string
	stage      string
	task       string
	lastPrompt string
	version    string
	basePath   string
}

// globalContext is the singleton crash context.
var globalContext = &CrashContext{}

// SetBasePath sets the directory crash logs are written under.
func SetBasePath(path string) {
	globalContext.mu.Lock()
	defer globalContext.mu.Unlock()
	globalContext.basePath = path
}

// SetVersion sets the application version for crash logs.
func SetVersion(version string) {
	globalContext.mu.Lock()
	defer globalContext.mu.Unlock()
	globalContext.version = version
}

// SetRun records the run id and task of the current pipeline run.
func SetRun(runID, task string) {
	globalContext.mu.Lock()
	defer globalContext.mu.Unlock()
	globalContext.runID = runID
	globalContext.task = truncateForLog(strings.TrimSpace(task), 500)
}

// SetStage records the stage in flight and the prompt it sent.
func SetStage(stage, prompt string) {
	globalContext.mu.Lock()
	defer globalContext.mu.Unlock()
	globalContext.stage = stage
	globalContext.lastPrompt = truncateForLog(prompt, 2000)
}

func truncateForLog(value string, maxLen int) string {
	if len(value) <= maxLen {
		return value
	}
	return value[:maxLen] + "... [truncated]"
}

// CrashLog represents a crash log entry.
type CrashLog struct {
	Timestamp  time.Time `json:"timestamp"`
	Version    string    `json:"version"`
	RunID      string    `json:"run_id,omitempty"`
	Stage      string    `json:"stage,omitempty"`
	Task       string    `json:"task,omitempty"`
	LastPrompt string    `json:"last_prompt,omitempty"`
	PanicValue string    `json:"panic_value"`
	StackTrace string    `json:"stack_trace"`
	GoVersion  string    `json:"go_version"`
	OS         string    `json:"os"`
	Arch       string    `json:"arch"`
}

// HandlePanic recovers from a panic, writes a crash log and exits with status 1.
// Usage: defer logger.HandlePanic()
func HandlePanic() {
	r := recover()
	if r == nil {
		return
	}

	crash := createCrashLog(r)
	path, err := writeCrashLog(crash)
	if err != nil {
		fmt.Fprintf(os.Stderr, "\n[CRASH] Failed to write crash log: %v\n", err)
		fmt.Fprintf(os.Stderr, "[CRASH] Panic: %v\n%s\n", r, crash.StackTrace)
		os.Exit(1)
	}

	Logger.Errorw("panic recovered", FieldRunID, crash.RunID, FieldStage, crash.Stage, FieldFile, path)
	fmt.Fprintf(os.Stderr, "\nselfdiscover crashed unexpectedly. A crash log has been saved to:\n  %s\n", path)
	os.Exit(1)
}

func createCrashLog(panicValue any) CrashLog {
	globalContext.mu.RLock()
	defer globalContext.mu.RUnlock()

	return CrashLog{
		Timestamp:  time.Now(),
		Version:    globalContext.version,
		RunID:      globalContext.runID,
		Stage:      globalContext.stage,
		Task:       globalContext.task,
		LastPrompt: globalContext.lastPrompt,
		PanicValue: fmt.Sprintf("%v", panicValue),
		StackTrace: string(debug.Stack()),
		GoVersion:  runtime.Version(),
		OS:         runtime.GOOS,
		Arch:       runtime.GOARCH,
	}
}

// writeCrashLog writes the crash log as JSON and returns its path.
func writeCrashLog(crash CrashLog) (string, error) {
	dir := getCrashLogDir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create crash log dir: %w", err)
	}

	if err := cleanOldCrashLogs(dir); err != nil {
		fmt.Fprintf(os.Stderr, "[WARN] Failed to clean old crash logs: %v\n", err)
	}

	content, err := json.MarshalIndent(crash, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode crash log: %w", err)
	}

	path := getCrashLogPath(crash.Timestamp)
	if err := os.WriteFile(path, content, 0644); err != nil {
		return "", fmt.Errorf("write crash log: %w", err)
	}
	return path, nil
}

func getCrashLogDir() string {
	globalContext.mu.RLock()
	basePath := globalContext.basePath
	globalContext.mu.RUnlock()

	if basePath == "" {
		basePath = ".selfdiscover"
	}
	return filepath.Join(basePath, CrashLogDir)
}

func getCrashLogPath(t time.Time) string {
	filename := fmt.Sprintf("crash_%s.json", t.Format("20060102_150405.000"))
	return filepath.Join(getCrashLogDir(), filename)
}

// cleanOldCrashLogs removes old crash logs so that, after the next write,
// at most MaxCrashLogs remain.
func cleanOldCrashLogs(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	// os.ReadDir returns entries sorted by name, and names sort by timestamp.
	var crashLogs []os.DirEntry
	for _, e := range entries {
		if !e.IsDir() && strings.HasPrefix(e.Name(), "crash_") && strings.HasSuffix(e.Name(), ".json") {
			crashLogs = append(crashLogs, e)
		}
	}

	if len(crashLogs) < MaxCrashLogs {
		return nil
	}

	toRemove := len(crashLogs) - MaxCrashLogs + 1
	for i := range toRemove {
		path := filepath.Join(dir, crashLogs[i].Name())
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("remove old crash log %s: %w", crashLogs[i].Name(), err)
		}
	}
	return nil
}
