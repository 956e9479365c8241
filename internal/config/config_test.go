package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		App:    AppConfig{Environment: "development"},
		Logger: LoggerConfig{Level: "info"},
		Database: DatabaseConfig{
			Path: "/some/path",
		},
		Server: ServerConfig{
			Port:         "3000",
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		Providers: ProvidersConfig{
			PhotoEndpoint: defaultPhotoEndpoint,
			VideoEndpoint: defaultVideoEndpoint,
			FetchTimeout:  10 * time.Second,
		},
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	err := validConfig().Validate()
	assert.NoError(t, err)
}

func TestValidate_AllEnvironments(t *testing.T) {
	tests := []struct {
		env   string
		valid bool
	}{
		{"development", true},
		{"staging", true},
		{"production", true},
		{"test", false},
		{"", false},
		{"DEVELOPMENT", false}, // case sensitive
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			cfg := validConfig()
			cfg.App.Environment = tt.env

			err := cfg.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidate_LogLevels(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error", "WARN"} {
		cfg := validConfig()
		cfg.Logger.Level = level
		assert.NoError(t, cfg.Validate(), "level %q", level)
	}

	cfg := validConfig()
	cfg.Logger.Level = "verbose"
	assert.Error(t, cfg.Validate())
}

func TestValidate_MissingDatabasePath(t *testing.T) {
	cfg := validConfig()
	cfg.Database.Path = ""
	assert.Error(t, cfg.Validate())
}

func TestValidate_MissingProviderEndpoints(t *testing.T) {
	cfg := validConfig()
	cfg.Providers.VideoEndpoint = ""
	assert.Error(t, cfg.Validate())
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	got, err := expandPath("~/bookmarks/db", "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "bookmarks", "db"), got)

	got, err = expandPath("", "/default/path")
	require.NoError(t, err)
	assert.Equal(t, "/default/path", got)

	got, err = expandPath("/abs/path/../db", "")
	require.NoError(t, err)
	assert.Equal(t, "/abs/db", got)
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	content := "# comment\nBOOKMARKS_TEST_KEY=value1\nBOOKMARKS_TEST_QUOTED=\"quoted\"\n"
	require.NoError(t, os.WriteFile(envPath, []byte(content), 0o600))

	t.Cleanup(func() {
		os.Unsetenv("BOOKMARKS_TEST_KEY")
		os.Unsetenv("BOOKMARKS_TEST_QUOTED")
	})

	require.NoError(t, loadEnvFile(envPath))
	assert.Equal(t, "value1", os.Getenv("BOOKMARKS_TEST_KEY"))
	assert.Equal(t, "quoted", os.Getenv("BOOKMARKS_TEST_QUOTED"))
}

func TestLoadEnvFile_EnvVarPrecedence(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envPath, []byte("BOOKMARKS_TEST_PRECEDENCE=file\n"), 0o600))

	t.Setenv("BOOKMARKS_TEST_PRECEDENCE", "env")
	require.NoError(t, loadEnvFile(envPath))
	assert.Equal(t, "env", os.Getenv("BOOKMARKS_TEST_PRECEDENCE"))
}

func TestLoadEnvFile_InvalidFormat(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envPath, []byte("NOT A PAIR\n"), 0o600))

	assert.Error(t, loadEnvFile(envPath))
}

func TestGetConfigValue_Precedence(t *testing.T) {
	t.Setenv("BOOKMARKS_TEST_VALUE", "from-env")

	assert.Equal(t, "from-flag", getConfigValue("from-flag", "BOOKMARKS_TEST_VALUE", "default"))
	assert.Equal(t, "from-env", getConfigValue("", "BOOKMARKS_TEST_VALUE", "default"))
	assert.Equal(t, "default", getConfigValue("", "BOOKMARKS_TEST_MISSING", "default"))
}

func TestParseDurationValue(t *testing.T) {
	d, err := parseDurationValue("30s", "UNUSED", "15s")
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, d)

	d, err = parseDurationValue("", "UNUSED", "15s")
	require.NoError(t, err)
	assert.Equal(t, 15*time.Second, d)

	_, err = parseDurationValue("not-a-duration", "UNUSED", "15s")
	assert.Error(t, err)
}
