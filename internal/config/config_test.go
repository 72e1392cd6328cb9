package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var credentialVars = []string{
	"MATHQUIZ_LLM_PROVIDER", "MATHQUIZ_PROVIDER",
	"MATHQUIZ_LLM_GEMINI_API_KEY", "MATHQUIZ_GEMINI_API_KEY", "GEMINI_API_KEY", "API_KEY",
	"MATHQUIZ_LLM_OPENAI_API_KEY", "MATHQUIZ_OPENAI_API_KEY", "OPENAI_API_KEY",
	"MATHQUIZ_LLM_ANTHROPIC_API_KEY", "MATHQUIZ_ANTHROPIC_API_KEY", "ANTHROPIC_API_KEY",
	"MATHQUIZ_LLM_OPENROUTER_API_KEY", "MATHQUIZ_OPENROUTER_API_KEY", "OPENROUTER_API_KEY",
	"MATHQUIZ_LLM_OLLAMA_SERVER_URL", "OLLAMA_HOST",
	"MATHQUIZ_DB", "MATHQUIZ_LOCALE", "MATHQUIZ_LOG_FILE", "MATHQUIZ_LOG_LEVEL",
	"MATHQUIZ_LLM_TIMEOUT", "MATHQUIZ_UPLOADS_BACKEND",
}

// isolate clears every variable Load reads and points XDG dirs at a temp dir.
func isolate(t *testing.T) string {
	t.Helper()
	for _, name := range credentialVars {
		t.Setenv(name, "")
	}
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("XDG_STATE_HOME", dir)
	t.Setenv("XDG_DATA_HOME", dir)
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	dir := isolate(t)

	cfg, err := Load(Options{})
	require.NoError(t, err)

	assert.Equal(t, "gemini", cfg.LLM.Provider)
	assert.Equal(t, "gemini-2.5-flash", cfg.LLM.Gemini.Model)
	assert.Empty(t, cfg.LLM.Gemini.APIKey)
	assert.Zero(t, cfg.LLM.Timeout)
	assert.Equal(t, 1, cfg.LLM.Retry.MaxAttempts)
	assert.False(t, cfg.LLM.Retry.Enabled())
	assert.Equal(t, "vi", cfg.Locale)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, filepath.Join(dir, "mathquiz", "mathquiz.log"), cfg.Log.File)
	assert.Equal(t, "none", cfg.Uploads.Backend)
	assert.Empty(t, cfg.DBPath)
	assert.True(t, cfg.HistoryEnabled())

	// No key: the app still loads and the provider fails validation.
	assert.Error(t, cfg.LLM.Validate())
}

func TestLoad_CredentialDiscovery(t *testing.T) {
	tests := []struct {
		name         string
		env          map[string]string
		wantProvider string
	}{
		{"gemini conventional", map[string]string{"GEMINI_API_KEY": "g"}, "gemini"},
		{"gemini generic", map[string]string{"API_KEY": "g"}, "gemini"},
		{"openai", map[string]string{"OPENAI_API_KEY": "o"}, "openai"},
		{"anthropic prefixed", map[string]string{"MATHQUIZ_ANTHROPIC_API_KEY": "a"}, "anthropic"},
		{"openrouter", map[string]string{"OPENROUTER_API_KEY": "r"}, "openrouter"},
		{"gemini wins over openai", map[string]string{"OPENAI_API_KEY": "o", "GEMINI_API_KEY": "g"}, "gemini"},
		{"explicit provider", map[string]string{"OPENAI_API_KEY": "o", "GEMINI_API_KEY": "g", "MATHQUIZ_LLM_PROVIDER": "OpenAI"}, "openai"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			cfg, err := Load(Options{})
			require.NoError(t, err)
			assert.Equal(t, tt.wantProvider, cfg.LLM.Provider)
			assert.NoError(t, cfg.LLM.Validate())
		})
	}
}

func TestLoad_PrefixedKeyWinsOverConventional(t *testing.T) {
	isolate(t)
	t.Setenv("GEMINI_API_KEY", "plain")
	t.Setenv("MATHQUIZ_GEMINI_API_KEY", "prefixed")

	cfg, err := Load(Options{})
	require.NoError(t, err)
	assert.Equal(t, "prefixed", cfg.LLM.Gemini.APIKey)
}

func TestLoad_File(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.yaml")
	yaml := `
llm:
  provider: ollama
  timeout: 45s
  ollama:
    model: llava:13b
  retry:
    max_attempts: 3
locale: en
db: none
log:
  file: none
uploads:
  backend: local
  dir: /srv/uploads
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	cfg, err := Load(Options{File: path})
	require.NoError(t, err)

	assert.Equal(t, "ollama", cfg.LLM.Provider)
	assert.Equal(t, 45*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, "llava:13b", cfg.LLM.Ollama.Model)
	assert.Equal(t, "http://localhost:11434", cfg.LLM.Ollama.ServerURL)
	assert.Equal(t, 3, cfg.LLM.Retry.MaxAttempts)
	assert.Equal(t, "en", cfg.Locale)
	assert.False(t, cfg.HistoryEnabled())
	assert.Empty(t, cfg.Log.File)
	assert.Equal(t, "local", cfg.Uploads.Backend)
	assert.Equal(t, "/srv/uploads", cfg.Uploads.Dir)
}

func TestLoad_DefaultFileLocation(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "mathquiz"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "mathquiz", "config.yaml"), []byte("locale: en\n"), 0o644))

	cfg, err := Load(Options{})
	require.NoError(t, err)
	assert.Equal(t, "en", cfg.Locale)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "c.yaml")
	require.NoError(t, os.WriteFile(path, []byte("db: /from/file.db\n"), 0o644))
	t.Setenv("MATHQUIZ_DB", "/from/env.db")

	cfg, err := Load(Options{File: path})
	require.NoError(t, err)
	assert.Equal(t, "/from/env.db", cfg.DBPath)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	dir := isolate(t)
	_, err := Load(Options{File: filepath.Join(dir, "nope.yaml")})
	require.Error(t, err)
}
