package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	EnvPrefix     = "ROSTER"
	DefaultDBPath = "worker.db"
)

// Setting keys
const (
	KeyDBPath      = "db.path"
	KeyBusyTimeout = "db.busy_timeout"
	KeyLogLevel    = "log.level"
	KeyLogFile     = "log.file"
)

// Config is the resolved process configuration.
type Config struct {
	DBPath      string
	BusyTimeout time.Duration
	LogLevel    string
	LogFile     string
}

// NewViper returns a viper instance with defaults and ROSTER_* environment
// overrides. configFile is optional; when set it must exist and parse.
func NewViper(configFile string) (*viper.Viper, error) {
	v := viper.New()

	v.SetDefault(KeyDBPath, DefaultDBPath)
	v.SetDefault(KeyBusyTimeout, "5s")
	v.SetDefault(KeyLogLevel, "info")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
	}

	return v, nil
}

// ViperSource adapts a viper instance to SettingsGetter.
type ViperSource struct {
	v *viper.Viper
}

// NewViperSource wraps v.
func NewViperSource(v *viper.Viper) *ViperSource {
	return &ViperSource{v: v}
}

// GetSetting returns the string form of key, or "" when unset.
func (s *ViperSource) GetSetting(key string) (string, error) {
	if !s.v.IsSet(key) {
		return "", nil
	}
	return s.v.GetString(key), nil
}

// Load resolves the process configuration from loader.
func Load(loader *Loader) Config {
	return Config{
		DBPath:      loader.String(KeyDBPath, DefaultDBPath),
		BusyTimeout: loader.Duration(KeyBusyTimeout, 5*time.Second),
		LogLevel:    loader.String(KeyLogLevel, "info"),
		LogFile:     loader.String(KeyLogFile, ""),
	}
}
