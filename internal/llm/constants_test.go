package llm

import (
	"math"
	"testing"
)

func TestInferProviderFromModel(t *testing.T) {
	tests := []struct {
		name         string
		model        string
		wantProvider string
		wantOk       bool
	}{
		// Registry hits
		{"gpt-4o", "gpt-4o", ProviderOpenAI, true},
		{"dated alias", "gpt-4o-mini-2024-07-18", ProviderOpenAI, true},
		{"claude registry", "claude-3-5-haiku-latest", ProviderAnthropic, true},
		{"gemini registry", "gemini-2.0-flash", ProviderGemini, true},

		// Prefix inference
		{"o1 model", "o1-preview", ProviderOpenAI, true},
		{"claude-sonnet-4-5", "claude-sonnet-4-5", ProviderAnthropic, true},
		{"gemini-2.5-pro", "gemini-2.5-pro", ProviderGemini, true},
		{"mistral local", "mistral-medium", ProviderOllama, true},
		{"phi", "phi3", ProviderOllama, true},

		// Unknown models
		{"unknown model", "some-random-model", "", false},
		{"empty string", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider, ok := InferProviderFromModel(tt.model)
			if ok != tt.wantOk {
				t.Errorf("InferProviderFromModel(%q) ok = %v, want %v", tt.model, ok, tt.wantOk)
			}
			if provider != tt.wantProvider {
				t.Errorf("InferProviderFromModel(%q) = %q, want %q", tt.model, provider, tt.wantProvider)
			}
		})
	}
}

func TestCalculateCost(t *testing.T) {
	got := CalculateCost("gpt-4o", 1_000_000, 500_000)
	if math.Abs(got-7.50) > 1e-9 {
		t.Errorf("CalculateCost(gpt-4o) = %v, want 7.50", got)
	}
	if got := CalculateCost("llama3.2", 1000, 1000); got != 0 {
		t.Errorf("CalculateCost(llama3.2) = %v, want 0", got)
	}
	if got := CalculateCost("unknown", 1000, 1000); got != 0 {
		t.Errorf("CalculateCost(unknown) = %v, want 0", got)
	}
}
