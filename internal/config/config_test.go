package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mapSource map[string]string

func (m mapSource) GetSetting(key string) (string, error) {
	return m[key], nil
}

func TestLoader_Defaults(t *testing.T) {
	l := NewLoader(mapSource{})

	assert.Equal(t, 7, l.Int("missing", 7))
	assert.True(t, l.Bool("missing", true))
	assert.Equal(t, "x", l.String("missing", "x"))
	assert.Equal(t, time.Minute, l.Duration("missing", time.Minute))
}

func TestLoader_ParsesValues(t *testing.T) {
	l := NewLoader(mapSource{
		"int":      "42",
		"bool":     "false",
		"string":   "hello",
		"duration": "1500ms",
		"bad_int":  "forty",
		"bad_dur":  "soon",
	})

	assert.Equal(t, 42, l.Int("int", 0))
	assert.False(t, l.Bool("bool", true))
	assert.Equal(t, "hello", l.String("string", ""))
	assert.Equal(t, 1500*time.Millisecond, l.Duration("duration", 0))
	assert.Equal(t, 3, l.Int("bad_int", 3))
	assert.Equal(t, time.Second, l.Duration("bad_dur", time.Second))
}

func TestLoad_Defaults(t *testing.T) {
	v, err := NewViper("")
	require.NoError(t, err)

	cfg := Load(NewLoader(NewViperSource(v)))

	assert.Equal(t, DefaultDBPath, cfg.DBPath)
	assert.Equal(t, 5*time.Second, cfg.BusyTimeout)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.LogFile)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("ROSTER_DB_PATH", "/tmp/staff.db")
	t.Setenv("ROSTER_LOG_LEVEL", "debug")

	v, err := NewViper("")
	require.NoError(t, err)

	cfg := Load(NewLoader(NewViperSource(v)))

	assert.Equal(t, "/tmp/staff.db", cfg.DBPath)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.yaml")
	content := "db:\n  path: office.db\n  busy_timeout: 2s\nlog:\n  file: /var/log/roster.log\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	v, err := NewViper(path)
	require.NoError(t, err)

	cfg := Load(NewLoader(NewViperSource(v)))

	assert.Equal(t, "office.db", cfg.DBPath)
	assert.Equal(t, 2*time.Second, cfg.BusyTimeout)
	assert.Equal(t, "/var/log/roster.log", cfg.LogFile)
}

func TestNewViper_MissingConfigFile(t *testing.T) {
	_, err := NewViper(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
