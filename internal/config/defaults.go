// Package config provides centralized configuration constants for selfdiscover.
// All default values should be defined here to ensure a single source of truth.
package config

import (
	"github.com/josephgoksu/selfdiscover/internal/llm"
	"github.com/spf13/viper"
)

const (
	// ConfigName is the config file name without extension (.selfdiscover.yaml)
	ConfigName = ".selfdiscover"

	// EnvPrefix prefixes every environment override, e.g. SELFDISCOVER_LLM_PROVIDER
	EnvPrefix = "SELFDISCOVER"

	// DefaultFormat is the stdout format when none is configured
	DefaultFormat = "text"
)

// SetDefaults registers the default value of every config key.
func SetDefaults() {
	viper.SetDefault("llm.model", "")
	viper.SetDefault("llm.temperature", llm.DefaultTemperature)
	viper.SetDefault("llm.maxTokens", llm.DefaultMaxTokens)
	viper.SetDefault("llm.baseURL", "")
	viper.SetDefault("prompts.dir", "")
	viper.SetDefault("output.format", DefaultFormat)
	viper.SetDefault("log.json", false)
}
