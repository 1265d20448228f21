/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package types

// AppConfig represents the complete application configuration
type AppConfig struct {
	Verbose bool          `mapstructure:"verbose"`
	Config  string        `mapstructure:"config"`
	LLM     LLMConfig     `mapstructure:"llm" validate:"required"`
	Prompts PromptsConfig `mapstructure:"prompts"`
	Output  OutputConfig  `mapstructure:"output" validate:"required"`
	Log     LogConfig     `mapstructure:"log"`
}

// LLMConfig holds the settings shared by every stage of a run
type LLMConfig struct {
	Provider    string            `mapstructure:"provider" validate:"omitempty,oneof=openai anthropic gemini ollama"`
	Model       string            `mapstructure:"model" validate:"omitempty,min=1"`
	Temperature float64           `mapstructure:"temperature" validate:"min=0,max=2"`
	MaxTokens   int               `mapstructure:"maxTokens" validate:"min=1"`
	BaseURL     string            `mapstructure:"baseURL" validate:"omitempty,url"`
	APIKeys     map[string]string `mapstructure:"apiKeys"`
}

// PromptsConfig points at optional stage template overrides
type PromptsConfig struct {
	Dir string `mapstructure:"dir"`
}

// OutputConfig controls how a finished run is written to stdout
type OutputConfig struct {
	Format string `mapstructure:"format" validate:"required,oneof=text json yaml"`
}

// LogConfig controls the diagnostic log on stderr
type LogConfig struct {
	JSON bool `mapstructure:"json"`
}
