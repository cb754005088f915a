package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment overrides, e.g. WEALTHCOACH_LOG_LEVEL.
const EnvPrefix = "WEALTHCOACH"

// Settings holds application settings. Plans are loaded separately by InputParser.
type Settings struct {
	Log    LogSettings    `mapstructure:"log"`
	Server ServerSettings `mapstructure:"server"`
	Output OutputSettings `mapstructure:"output"`
	Engine EngineSettings `mapstructure:"engine"`
}

// LogSettings configures the logrus logger.
type LogSettings struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // "text" or "json"
}

// ServerSettings configures the HTTP API.
type ServerSettings struct {
	Addr         string        `mapstructure:"addr"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

// OutputSettings configures report rendering.
type OutputSettings struct {
	Format   string `mapstructure:"format"`
	Currency string `mapstructure:"currency"`
	Dir      string `mapstructure:"dir"`
}

// EngineSettings tunes the projection engine.
type EngineSettings struct {
	SolverIterations int `mapstructure:"solver_iterations"`
	Concurrency      int `mapstructure:"concurrency"`
}

// LoadSettings reads settings from defaults, an optional settings file and the
// environment. With an empty path it searches ./wealthcoach.yaml and
// ~/.wealthcoach/wealthcoach.yaml; a missing file is not an error.
func LoadSettings(path string) (*Settings, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("wealthcoach")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".wealthcoach"))
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading settings file: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("error unmarshaling settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() *Settings {
	v := viper.New()
	setDefaults(v)
	var s Settings
	_ = v.Unmarshal(&s)
	return &s
}

// Validate rejects settings the binaries cannot run with.
func (s *Settings) Validate() error {
	switch strings.ToLower(s.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format %q (use text or json)", s.Log.Format)
	}
	if s.Engine.SolverIterations < 1 {
		return fmt.Errorf("engine.solver_iterations must be positive, got %d", s.Engine.SolverIterations)
	}
	if s.Engine.Concurrency < 0 {
		return fmt.Errorf("engine.concurrency cannot be negative, got %d", s.Engine.Concurrency)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.read_timeout", "10s")
	v.SetDefault("server.write_timeout", "30s")

	v.SetDefault("output.format", "console-lite")
	v.SetDefault("output.currency", "lei")
	v.SetDefault("output.dir", "")

	v.SetDefault("engine.solver_iterations", 60)
	v.SetDefault("engine.concurrency", 0) // 0 means GOMAXPROCS
}
