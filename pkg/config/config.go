package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of the environment variables overriding the configuration,
// e.g. RUNETRIE_SERVER_ADDR.
const EnvPrefix = "RUNETRIE"

// Config holds all configuration for the runetrie tools
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Log    LogConfig    `mapstructure:"log"`
	Words  WordsConfig  `mapstructure:"words"`
	Bench  BenchConfig  `mapstructure:"bench"`
}

// ServerConfig holds HTTP server related configuration
type ServerConfig struct {
	Addr        string   `mapstructure:"addr"`
	CORSOrigins []string `mapstructure:"cors_origins"`
	// WriteTimeout bounds every websocket message sent to a stream client
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

// LogConfig holds logging related configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Pretty bool   `mapstructure:"pretty"`
}

// WordsConfig describes how word list files are read
type WordsConfig struct {
	Format string `mapstructure:"format"`
	Column string `mapstructure:"column"`
}

// BenchConfig holds the defaults of the bench command
type BenchConfig struct {
	Count    int    `mapstructure:"count"`
	MinLen   int    `mapstructure:"min_len"`
	MaxLen   int    `mapstructure:"max_len"`
	Alphabet string `mapstructure:"alphabet"`
	Seed     uint64 `mapstructure:"seed"`
}

// Load loads configuration from an optional file and environment variables
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.cors_origins", []string{})
	v.SetDefault("server.write_timeout", "10s")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", true)

	v.SetDefault("words.format", "auto")
	v.SetDefault("words.column", "word")

	v.SetDefault("bench.count", 10000)
	v.SetDefault("bench.min_len", 30)
	v.SetDefault("bench.max_len", 60)
	v.SetDefault("bench.alphabet", "abcdefghijklmnopqrstuvwxyz")
	v.SetDefault("bench.seed", 0)
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server addr is required")
	}
	if c.Server.WriteTimeout < 0 {
		return fmt.Errorf("invalid server write timeout: %s", c.Server.WriteTimeout)
	}
	if c.Bench.Count < 0 {
		return fmt.Errorf("invalid bench count: %d", c.Bench.Count)
	}
	if c.Bench.MinLen < 0 || c.Bench.MaxLen < c.Bench.MinLen {
		return fmt.Errorf("invalid bench length range: [%d, %d]", c.Bench.MinLen, c.Bench.MaxLen)
	}
	if c.Bench.Alphabet == "" {
		return fmt.Errorf("bench alphabet cannot be empty")
	}
	return nil
}
