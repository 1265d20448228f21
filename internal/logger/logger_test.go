package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLoggerDefaultsToNop(t *testing.T) {
	assert.NotNil(t, Logger)
	assert.NotPanics(t, func() { Logger.Infow("before init", FieldStage, "select") })
}

func TestInitialize(t *testing.T) {
	original := Logger
	t.Cleanup(func() { Logger = original })

	tests := []struct {
		name      string
		opts      Options
		wantDebug bool
	}{
		{name: "console warn", opts: Options{}},
		{name: "console verbose", opts: Options{Verbose: true}, wantDebug: true},
		{name: "json", opts: Options{JSON: true}},
		{name: "json verbose", opts: Options{JSON: true, Verbose: true}, wantDebug: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, Initialize(tt.opts))
			assert.Equal(t, tt.wantDebug, Logger.Desugar().Core().Enabled(zap.DebugLevel))
			assert.True(t, Logger.Desugar().Core().Enabled(zap.WarnLevel))
		})
	}
}
