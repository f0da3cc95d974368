package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("T_STR", "hello")
	t.Setenv("T_INT", "42")
	t.Setenv("T_BAD_INT", "forty")
	t.Setenv("T_FLOAT", "0.25")
	t.Setenv("T_BOOL", "false")
	t.Setenv("T_BAD_BOOL", "nope")
	t.Setenv("T_DUR", "90s")
	t.Setenv("T_LIST", " a, ,b ,c")

	assert.Equal(t, "hello", GetEnvString("T_STR", "x"))
	assert.Equal(t, "x", GetEnvString("T_UNSET", "x"))
	assert.Equal(t, 42, GetEnvInt("T_INT", 1))
	assert.Equal(t, 1, GetEnvInt("T_BAD_INT", 1))
	assert.Equal(t, 0.25, GetEnvFloat("T_FLOAT", 1))
	assert.False(t, GetEnvBool("T_BOOL", true))
	assert.True(t, GetEnvBool("T_BAD_BOOL", true))
	assert.Equal(t, 90*time.Second, GetEnvDuration("T_DUR", time.Second))
	assert.Equal(t, []string{"a", "b", "c"}, GetEnvStringList("T_LIST", nil))
}

func TestValidators(t *testing.T) {
	assert.NoError(t, ValidatePositiveDuration(time.Second))
	assert.Error(t, ValidatePositiveDuration(0))
	assert.NoError(t, ValidateDurationRange(5*time.Second, time.Second, time.Minute))
	assert.Error(t, ValidateDurationRange(2*time.Minute, time.Second, time.Minute))
	assert.Error(t, ValidateDurationRange(time.Second, time.Minute, time.Second))

	assert.NoError(t, ValidateIntRange(3, 1, 100))
	assert.Error(t, ValidateIntRange(0, 1, 100))

	assert.NoError(t, ValidateCronSchedule("*/10 * * * *"))
	assert.Error(t, ValidateCronSchedule(""))
	assert.Error(t, ValidateCronSchedule("every minute"))

	assert.NoError(t, ValidateTimezone("UTC"))
	assert.NoError(t, ValidateTimezone("Asia/Tokyo"))
	assert.Error(t, ValidateTimezone(""))
	assert.Error(t, ValidateTimezone("Mars/Olympus"))
}

func TestLoadYAML(t *testing.T) {
	type sample struct {
		Sentiment struct {
			Provider string        `yaml:"provider"`
			Timeout  time.Duration `yaml:"timeout"`
		} `yaml:"sentiment"`
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sentiment:\n  provider: claude\n  timeout: 3s\n"), 0o600))

	var got sample
	found, err := LoadYAML(path, &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "claude", got.Sentiment.Provider)
	assert.Equal(t, 3*time.Second, got.Sentiment.Timeout)

	found, err = LoadYAML(filepath.Join(dir, "missing.yaml"), &got)
	assert.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, os.WriteFile(path, []byte("sentiment: [unclosed"), 0o600))
	_, err = LoadYAML(path, &got)
	assert.Error(t, err)
}
