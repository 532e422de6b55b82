package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leonardinius/loxfront/internal/config"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	assert.Equal(t, "> ", cfg.Prompt)
	assert.Empty(t, cfg.HistoryFile)
	assert.Equal(t, config.ModeAST, cfg.Mode)
	assert.NoError(t, cfg.Validate())

	level, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, zerolog.WarnLevel, level)
}

func TestLoad(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		name    string
		file    string
		content string
	}{
		{
			name: "toml",
			file: "loxfront.toml",
			content: `prompt = "lox> "
history_file = "/tmp/lox_history"
mode = "rpn"
log_level = "debug"
`,
		},
		{
			name: "yaml",
			file: "loxfront.yaml",
			content: `prompt: "lox> "
history_file: /tmp/lox_history
mode: rpn
log_level: debug
`,
		},
		{
			name: "yml",
			file: "loxfront.yml",
			content: `prompt: "lox> "
history_file: /tmp/lox_history
mode: rpn
log_level: debug
`,
		},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := config.Load(writeFile(t, tc.file, tc.content))
			require.NoError(t, err)
			assert.Equal(t, &config.Config{
				Prompt:      "lox> ",
				HistoryFile: "/tmp/lox_history",
				Mode:        config.ModeRPN,
				LogLevel:    "debug",
			}, cfg)
		})
	}
}

func TestLoadKeepsDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := config.Load(writeFile(t, "partial.toml", `mode = "eval"`))
	require.NoError(t, err)
	assert.Equal(t, config.ModeEval, cfg.Mode)
	assert.Equal(t, "> ", cfg.Prompt)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		name    string
		file    string
		content string
		is      error
	}{
		{name: "unsupported extension", file: "loxfront.json", content: `{}`, is: config.ErrUnsupportedFormat},
		{name: "invalid mode", file: "bad.toml", content: `mode = "bytecode"`, is: config.ErrInvalidMode},
		{name: "invalid level", file: "bad.yaml", content: `log_level: loud`, is: config.ErrInvalidLogLevel},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Load(writeFile(t, tc.file, tc.content))
			assert.ErrorIs(t, err, tc.is)
		})
	}
}

func TestLoadMalformed(t *testing.T) {
	t.Parallel()

	_, err := config.Load(writeFile(t, "broken.toml", `mode = `))
	assert.Error(t, err)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidateJoinsErrors(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{Mode: "x", LogLevel: ""}
	err := cfg.Validate()
	assert.ErrorIs(t, err, config.ErrInvalidMode)
	assert.ErrorIs(t, err, config.ErrInvalidLogLevel)
}

func TestModes(t *testing.T) {
	t.Parallel()

	for _, mode := range config.Modes() {
		assert.True(t, mode.Valid(), mode)
	}
	assert.False(t, config.Mode("").Valid())
}

func TestLoadOrDefaultFromEnv(t *testing.T) {
	path := writeFile(t, "env.yml", "mode: tokens\n")
	t.Setenv(config.EnvConfigFile, path)

	cfg, err := config.LoadOrDefault("")
	require.NoError(t, err)
	assert.Equal(t, config.ModeTokens, cfg.Mode)

	t.Setenv(config.EnvConfigFile, "")
	cfg, err = config.LoadOrDefault("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}
