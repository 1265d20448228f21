package cmd

import (
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/josephgoksu/selfdiscover/internal/config"
	"github.com/josephgoksu/selfdiscover/types"
	"github.com/spf13/viper"
)

// GlobalAppConfig holds the global application configuration instance.
var GlobalAppConfig types.AppConfig

// configErr is the outcome of the last InitConfig, surfaced by setupRun.
var configErr error

// validate is a single instance of Validate, it caches struct info
var validate = validator.New()

// flagBindings maps config keys to the flags that override them.
var flagBindings = map[string]string{
	"config":          "config",
	"verbose":         "verbose",
	"log.json":        "log-json",
	"llm.provider":    "provider",
	"llm.model":       "model",
	"llm.temperature": "temperature",
	"llm.maxTokens":   "max-tokens",
	"prompts.dir":     "prompts-dir",
	"output.format":   "format",
}

// InitConfig reads in config file and ENV variables if set.
func InitConfig() {
	configErr = loadConfig()
}

func loadConfig() error {
	// Load .env file first if present; a missing file is fine.
	_ = godotenv.Load()

	viper.SetEnvPrefix(config.EnvPrefix)                   // e.g., SELFDISCOVER_VERBOSE
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // llm.maxTokens -> SELFDISCOVER_LLM_MAXTOKENS
	viper.AutomaticEnv()
	config.SetDefaults()

	if err := bindFlags(); err != nil {
		return err
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
		viper.SetConfigName(config.ConfigName)
		viper.SetConfigType("yaml")
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return errors.WithHint(
				errors.Wrapf(err, "read config file %s", viper.ConfigFileUsed()),
				"fix the file or pass another one with --config",
			)
		}
	}

	GlobalAppConfig = types.AppConfig{}
	if err := viper.Unmarshal(&GlobalAppConfig); err != nil {
		return errors.Wrap(err, "unmarshal config")
	}
	if err := validate.Struct(&GlobalAppConfig); err != nil {
		return errors.WithHint(
			errors.Wrap(err, "invalid configuration"),
			"check .selfdiscover.yaml, SELFDISCOVER_* environment variables and flags",
		)
	}
	return nil
}

// bindFlags binds flags to Viper keys. It runs on every InitConfig so
// bindings survive viper.Reset in tests.
func bindFlags() error {
	for key, name := range flagBindings {
		flag := rootCmd.Flags().Lookup(name)
		if flag == nil {
			flag = rootCmd.PersistentFlags().Lookup(name)
		}
		if flag == nil {
			return errors.Newf("flag --%s is not defined", name)
		}
		if err := viper.BindPFlag(key, flag); err != nil {
			return errors.Wrapf(err, "bind --%s", name)
		}
	}
	return nil
}

// GetConfig returns a pointer to the global types.AppConfig instance.
func GetConfig() *types.AppConfig {
	return &GlobalAppConfig
}
