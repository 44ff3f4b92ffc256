package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load("")

	assert.Equal(t, DefaultDataDir, cfg.DataDir)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Equal(t, DefaultLogFile, cfg.LogFile)
	assert.Equal(t, DefaultLegendWidth, cfg.LegendWidth)
	assert.Equal(t, DefaultLegendHeight, cfg.LegendHeight)
}

func TestLoad_WithEnvVars(t *testing.T) {
	t.Setenv("CMLIB_DATA_DIR", "/srv/cmlib/data")
	t.Setenv("CMLIB_LOG_LEVEL", "debug")
	t.Setenv("CMLIB_LOG_FILE", "/tmp/cmlib.log")
	t.Setenv("CMLIB_LEGEND_WIDTH", "1024")
	t.Setenv("CMLIB_LEGEND_HEIGHT", "64")

	cfg := Load("")

	assert.Equal(t, "/srv/cmlib/data", cfg.DataDir)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/tmp/cmlib.log", cfg.LogFile)
	assert.Equal(t, 1024, cfg.LegendWidth)
	assert.Equal(t, 64, cfg.LegendHeight)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		expectError bool
	}{
		{
			name:        "valid dimensions",
			config:      Config{LegendWidth: 512, LegendHeight: 32},
			expectError: false,
		},
		{
			name:        "zero width",
			config:      Config{LegendWidth: 0, LegendHeight: 32},
			expectError: true,
		},
		{
			name:        "negative height",
			config:      Config{LegendWidth: 512, LegendHeight: -1},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGetEnvInt(t *testing.T) {
	tests := []struct {
		name     string
		envValue string
		setEnv   bool
		fallback int
		expected int
	}{
		{"Valid int", "42", true, 0, 42},
		{"Negative int", "-10", true, 0, -10},
		{"Invalid uses fallback", "not-a-number", true, 99, 99},
		{"Empty uses fallback", "", true, 7, 7},
		{"Unset uses fallback", "", false, 123, 123},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := "TEST_INT_VAR"
			os.Unsetenv(key)
			if tt.setEnv {
				t.Setenv(key, tt.envValue)
			}
			result := getEnvInt(key, tt.fallback)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestGetEnv(t *testing.T) {
	key := "TEST_STRING_VAR"
	os.Unsetenv(key)

	result := getEnv(key, "fallback_value")
	assert.Equal(t, "fallback_value", result)

	t.Setenv(key, "actual_value")
	result = getEnv(key, "fallback_value")
	assert.Equal(t, "actual_value", result)
}
