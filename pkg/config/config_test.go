package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every variable the loader reads so ambient values from
// the test environment cannot leak into assertions.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		"BIND_ADDRESS", "PORT", "DATABASE_URL",
		"PRESSROOM_TOKEN_SECRET", "PRESSROOM_TOKEN_TTL", "PRESSROOM_LOG_LEVEL",
	} {
		t.Setenv(name, "")
	}
}

func TestDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadFile(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.BindAddress)
	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "0.0.0.0:8000", cfg.Addr())
}

func TestLoadFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), ConfigFileName)
	contents := `
port: "9000"
database_url: postgres://localhost/pressroom
token_secret: file-secret
token_ttl: 1h
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "postgres://localhost/pressroom", cfg.DatabaseURL)
	assert.Equal(t, "file-secret", cfg.TokenSecret)
	assert.Equal(t, time.Hour, cfg.TokenTTL)
	// untouched by file
	assert.Equal(t, "0.0.0.0", cfg.BindAddress)
}

func TestEnvOverridesFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("port: \"9000\"\n"), 0o644))

	t.Setenv("PORT", "7000")
	t.Setenv("DATABASE_URL", "postgres://env/pressroom")

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "7000", cfg.Port)
	assert.Equal(t, "postgres://env/pressroom", cfg.DatabaseURL)
}

func TestBadTTL(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("token_ttl: tomorrow\n"), 0o644))

	_, err := LoadFile(path)
	assert.Error(t, err)
}

func TestBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("port: [\n"), 0o644))

	_, err := LoadFile(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadFile(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)

	assert.Error(t, cfg.Validate(), "database_url missing")

	cfg.DatabaseURL = "postgres://localhost/pressroom"
	assert.Error(t, cfg.Validate(), "token_secret missing")

	cfg.TokenSecret = "secret"
	assert.NoError(t, cfg.Validate())

	cfg.TokenTTL = 0
	assert.Error(t, cfg.Validate())
}

func TestAttributesTrackSourcesAndRedactSecrets(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("token_secret: super-secret\n"), 0o644))

	t.Setenv("PORT", "7000")

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	byName := map[string]Attribute{}
	for _, a := range cfg.Attributes() {
		byName[a.Name] = a
	}

	assert.Equal(t, "env", byName["port"].Source)
	assert.Equal(t, "file", byName["token_secret"].Source)
	assert.Equal(t, "[REDACTED]", byName["token_secret"].Value)
	assert.Equal(t, "default", byName["bind_address"].Source)
	assert.Equal(t, "unset", byName["database_url"].Source)
	assert.Equal(t, "", byName["database_url"].Value)
}
