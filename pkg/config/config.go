package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	// ConstantConfigFilename is the optional env file read at startup.
	ConstantConfigFilename = ".cmlib"

	// Data defaults
	DefaultDataDir = "data"

	// Legend defaults
	DefaultLegendWidth  = 512
	DefaultLegendHeight = 32

	// Logger defaults
	DefaultLogLevel = "warn"
	DefaultLogFile  = "" // empty means stderr
)

// Config holds the runtime settings of the library and the CLI.
type Config struct {
	DataDir      string
	LogLevel     string
	LogFile      string
	LegendWidth  int
	LegendHeight int
}

// Validate checks settings that would otherwise only fail deep inside the
// legend renderer.
func (c *Config) Validate() error {
	if c.LegendWidth <= 0 {
		return fmt.Errorf("legend width must be positive, got %d", c.LegendWidth)
	}
	if c.LegendHeight <= 0 {
		return fmt.Errorf("legend height must be positive, got %d", c.LegendHeight)
	}
	return nil
}

// Load reads the env file (if present) and builds the configuration from
// environment variables, falling back to the defaults above.
func Load(filename string) *Config {
	if filename == "" {
		filename = ConstantConfigFilename
	}
	_ = godotenv.Load(filename)

	return &Config{
		DataDir:      getEnv("CMLIB_DATA_DIR", DefaultDataDir),
		LogLevel:     getEnv("CMLIB_LOG_LEVEL", DefaultLogLevel),
		LogFile:      getEnv("CMLIB_LOG_FILE", DefaultLogFile),
		LegendWidth:  getEnvInt("CMLIB_LEGEND_WIDTH", DefaultLegendWidth),
		LegendHeight: getEnvInt("CMLIB_LEGEND_HEIGHT", DefaultLegendHeight),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}
