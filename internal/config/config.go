// Package config loads application settings from defaults, an optional YAML
// file and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/dakia/mathquiz/internal/i18n"
	"github.com/dakia/mathquiz/internal/llm"
	"github.com/dakia/mathquiz/internal/logging"
	"github.com/dakia/mathquiz/internal/uploads"
)

// EnvPrefix is prepended to every environment variable, e.g.
// MATHQUIZ_LLM_PROVIDER.
const EnvPrefix = "MATHQUIZ"

// Disabled turns off an optional file-backed feature (db, log.file).
const Disabled = "none"

// Config is the fully resolved application configuration.
type Config struct {
	LLM     llm.Config
	Log     logging.Config
	Uploads uploads.Config
	Locale  string

	// DBPath is the history database. Empty selects the default location,
	// Disabled turns history off.
	DBPath string
}

// HistoryEnabled reports whether results should be persisted.
func (c *Config) HistoryEnabled() bool {
	return c.DBPath != Disabled
}

// Options control where configuration is read from.
type Options struct {
	// File is an explicit config file. It must exist when set.
	File string
}

// Load resolves the configuration. A missing default config file is not an
// error; neither is a missing API key.
func Load(opts Options) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := bindEnv(v); err != nil {
		return nil, err
	}

	if opts.File != "" {
		v.SetConfigFile(opts.File)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", opts.File, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if dir := configDir(); dir != "" {
			v.AddConfigPath(dir)
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	return build(v), nil
}

func configDir() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "mathquiz")
}

func setDefaults(v *viper.Viper) {
	l := llm.DefaultConfig()
	v.SetDefault("llm.provider", "")
	v.SetDefault("llm.timeout", l.Timeout)
	v.SetDefault("llm.gemini.model", l.Gemini.Model)
	v.SetDefault("llm.openai.model", l.OpenAI.Model)
	v.SetDefault("llm.openai.base_url", "")
	v.SetDefault("llm.anthropic.model", l.Anthropic.Model)
	v.SetDefault("llm.openrouter.model", l.OpenRouter.Model)
	v.SetDefault("llm.openrouter.base_url", "")
	v.SetDefault("llm.ollama.server_url", l.Ollama.ServerURL)
	v.SetDefault("llm.ollama.model", l.Ollama.Model)
	v.SetDefault("llm.retry.max_attempts", l.Retry.MaxAttempts)
	v.SetDefault("llm.retry.initial_wait", l.Retry.InitialWait)
	v.SetDefault("llm.retry.max_wait", l.Retry.MaxWait)
	v.SetDefault("llm.retry.multiplier", l.Retry.Multiplier)

	lg := logging.DefaultConfig()
	v.SetDefault("log.level", lg.Level)
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size_mb", lg.MaxSizeMB)
	v.SetDefault("log.max_backups", lg.MaxBackups)
	v.SetDefault("log.max_age_days", lg.MaxAgeDays)

	u := uploads.DefaultConfig()
	v.SetDefault("uploads.backend", u.Backend)
	v.SetDefault("uploads.dir", u.Dir)
	v.SetDefault("uploads.minio.endpoint", "")
	v.SetDefault("uploads.minio.access_key", "")
	v.SetDefault("uploads.minio.secret_key", "")
	v.SetDefault("uploads.minio.bucket", u.Minio.Bucket)
	v.SetDefault("uploads.minio.use_ssl", false)

	v.SetDefault("locale", i18n.DefaultLocale)
	v.SetDefault("db", "")
}

// bindEnv adds the short and conventional names for credentials on top of
// the automatic MATHQUIZ_<KEY> mapping. The first variable set wins.
func bindEnv(v *viper.Viper) error {
	bindings := map[string][]string{
		"llm.gemini.api_key":     {"MATHQUIZ_LLM_GEMINI_API_KEY", "MATHQUIZ_GEMINI_API_KEY", "GEMINI_API_KEY", "API_KEY"},
		"llm.openai.api_key":     {"MATHQUIZ_LLM_OPENAI_API_KEY", "MATHQUIZ_OPENAI_API_KEY", "OPENAI_API_KEY"},
		"llm.anthropic.api_key":  {"MATHQUIZ_LLM_ANTHROPIC_API_KEY", "MATHQUIZ_ANTHROPIC_API_KEY", "ANTHROPIC_API_KEY"},
		"llm.openrouter.api_key": {"MATHQUIZ_LLM_OPENROUTER_API_KEY", "MATHQUIZ_OPENROUTER_API_KEY", "OPENROUTER_API_KEY"},
		"llm.ollama.server_url":  {"MATHQUIZ_LLM_OLLAMA_SERVER_URL", "OLLAMA_HOST"},
		"llm.provider":           {"MATHQUIZ_LLM_PROVIDER", "MATHQUIZ_PROVIDER"},
	}
	for key, names := range bindings {
		if err := v.BindEnv(append([]string{key}, names...)...); err != nil {
			return fmt.Errorf("bind env %s: %w", key, err)
		}
	}
	return nil
}

func build(v *viper.Viper) *Config {
	cfg := &Config{
		LLM: llm.Config{
			Provider: strings.ToLower(strings.TrimSpace(v.GetString("llm.provider"))),
			Timeout:  v.GetDuration("llm.timeout"),
			Gemini: llm.GeminiConfig{
				APIKey: v.GetString("llm.gemini.api_key"),
				Model:  v.GetString("llm.gemini.model"),
			},
			OpenAI: llm.OpenAIConfig{
				APIKey:  v.GetString("llm.openai.api_key"),
				Model:   v.GetString("llm.openai.model"),
				BaseURL: v.GetString("llm.openai.base_url"),
			},
			Anthropic: llm.AnthropicConfig{
				APIKey: v.GetString("llm.anthropic.api_key"),
				Model:  v.GetString("llm.anthropic.model"),
			},
			OpenRouter: llm.OpenRouterConfig{
				APIKey:  v.GetString("llm.openrouter.api_key"),
				Model:   v.GetString("llm.openrouter.model"),
				BaseURL: v.GetString("llm.openrouter.base_url"),
			},
			Ollama: llm.OllamaConfig{
				ServerURL: v.GetString("llm.ollama.server_url"),
				Model:     v.GetString("llm.ollama.model"),
			},
			Retry: llm.RetryConfig{
				MaxAttempts: v.GetInt("llm.retry.max_attempts"),
				InitialWait: v.GetDuration("llm.retry.initial_wait"),
				MaxWait:     v.GetDuration("llm.retry.max_wait"),
				Multiplier:  v.GetFloat64("llm.retry.multiplier"),
			},
		},
		Log: logging.Config{
			Level:      v.GetString("log.level"),
			File:       v.GetString("log.file"),
			MaxSizeMB:  v.GetInt("log.max_size_mb"),
			MaxBackups: v.GetInt("log.max_backups"),
			MaxAgeDays: v.GetInt("log.max_age_days"),
		},
		Uploads: uploads.Config{
			Backend: strings.ToLower(v.GetString("uploads.backend")),
			Dir:     v.GetString("uploads.dir"),
			Minio: uploads.MinioConfig{
				Endpoint:  v.GetString("uploads.minio.endpoint"),
				AccessKey: v.GetString("uploads.minio.access_key"),
				SecretKey: v.GetString("uploads.minio.secret_key"),
				Bucket:    v.GetString("uploads.minio.bucket"),
				UseSSL:    v.GetBool("uploads.minio.use_ssl"),
			},
		},
		Locale: i18n.Normalize(v.GetString("locale")),
		DBPath: strings.TrimSpace(v.GetString("db")),
	}

	switch cfg.Log.File {
	case "":
		cfg.Log.File, _ = logging.DefaultLogPath()
	case Disabled:
		cfg.Log.File = ""
	}

	cfg.LLM.Discover()
	return cfg
}
