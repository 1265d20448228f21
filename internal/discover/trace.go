package discover

import (
	"context"
	"sync"
	"time"

	"github.com/cloudwego/eino/callbacks"
	"github.com/josephgoksu/selfdiscover/internal/logger"
)

// traceHandler logs the lifecycle of the compiled chain and its nodes at
// debug level. Stage-level reporting belongs to observers; this exposes what
// Eino itself runs.
type traceHandler struct {
	runID      string
	mu         sync.Mutex
	startTimes map[string]time.Time
}

func newTraceHandler(runID string) *traceHandler {
	return &traceHandler{
		runID:      runID,
		startTimes: make(map[string]time.Time),
	}
}

// Build creates an Eino-compatible callback handler
func (h *traceHandler) Build() callbacks.Handler {
	return callbacks.NewHandlerBuilder().
		OnStartFn(func(ctx context.Context, info *callbacks.RunInfo, _ callbacks.CallbackInput) context.Context {
			h.mu.Lock()
			h.startTimes[info.Name] = time.Now()
			h.mu.Unlock()

			logger.Logger.Debugw("node started",
				logger.FieldRunID, h.runID,
				logger.FieldNode, info.Name,
				logger.FieldComponent, string(info.Component),
			)
			return ctx
		}).
		OnEndFn(func(ctx context.Context, info *callbacks.RunInfo, _ callbacks.CallbackOutput) context.Context {
			logger.Logger.Debugw("node finished",
				logger.FieldRunID, h.runID,
				logger.FieldNode, info.Name,
				logger.FieldDurationMS, h.elapsed(info.Name).Milliseconds(),
			)
			return ctx
		}).
		OnErrorFn(func(ctx context.Context, info *callbacks.RunInfo, err error) context.Context {
			logger.Logger.Debugw("node failed",
				logger.FieldRunID, h.runID,
				logger.FieldNode, info.Name,
				logger.FieldDurationMS, h.elapsed(info.Name).Milliseconds(),
				logger.FieldError, err,
			)
			return ctx
		}).
		Build()
}

// elapsed returns the time since name started and forgets the start.
func (h *traceHandler) elapsed(name string) time.Duration {
	h.mu.Lock()
	defer h.mu.Unlock()
	start, ok := h.startTimes[name]
	if !ok {
		return 0
	}
	delete(h.startTimes, name)
	return time.Since(start)
}

// pending reports how many nodes have started without finishing.
func (h *traceHandler) pending() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.startTimes)
}
