package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/pauladam94/Stars-Gapa/game"
)

type Config struct {
	Seed     uint64        `mapstructure:"seed" yaml:"seed"`
	Catalog  string        `mapstructure:"catalog" yaml:"catalog"`
	Database string        `mapstructure:"database" yaml:"database"`
	Log      LoggingConfig `mapstructure:"log" yaml:"log"`
	Rules    RulesConfig   `mapstructure:"rules" yaml:"rules"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
	File   string `mapstructure:"file" yaml:"file"`
}

type RulesConfig struct {
	HandSize     int            `mapstructure:"hand_size" yaml:"hand_size"`
	ShopSize     int            `mapstructure:"shop_size" yaml:"shop_size"`
	StartingLife int            `mapstructure:"starting_life" yaml:"starting_life"`
	Explorer     string         `mapstructure:"explorer" yaml:"explorer"`
	Starter      map[string]int `mapstructure:"starter" yaml:"starter"`
}

// SetDefaults registers the default of every key on v.
func SetDefaults(v *viper.Viper) {
	rules := game.DefaultRules()
	v.SetDefault("seed", 0)
	v.SetDefault("catalog", "")
	v.SetDefault("database", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.file", "stars.log")
	v.SetDefault("rules.hand_size", rules.HandSize)
	v.SetDefault("rules.shop_size", rules.ShopSize)
	v.SetDefault("rules.starting_life", rules.StartingLife)
	v.SetDefault("rules.explorer", rules.Explorer)
	v.SetDefault("rules.starter", rules.Starter)
}

// New returns a viper instance reading STARS_ prefixed environment variables.
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix("stars")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the optional config file and decodes the configuration.
func Load(v *viper.Viper, file string) (*Config, error) {
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", file, err)
		}
	}
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Rules.HandSize <= 0 {
		return fmt.Errorf("rules.hand_size must be positive, got %d", c.Rules.HandSize)
	}
	if c.Rules.ShopSize <= 0 {
		return fmt.Errorf("rules.shop_size must be positive, got %d", c.Rules.ShopSize)
	}
	if c.Rules.StartingLife <= 0 {
		return fmt.Errorf("rules.starting_life must be positive, got %d", c.Rules.StartingLife)
	}
	for name, n := range c.Rules.Starter {
		if n < 0 {
			return fmt.Errorf("rules.starter.%s must not be negative", name)
		}
	}
	return nil
}

func (c *Config) GameRules() game.Rules {
	starter := map[string]int{}
	for name, n := range c.Rules.Starter {
		starter[name] = n
	}
	return game.Rules{
		HandSize:     c.Rules.HandSize,
		ShopSize:     c.Rules.ShopSize,
		StartingLife: c.Rules.StartingLife,
		Explorer:     c.Rules.Explorer,
		Starter:      starter,
	}
}

// NewLogger builds the zap logger described by the logging config. An empty
// file logs to stderr.
func NewLogger(cfg LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	switch cfg.Level {
	case "debug":
		level = zapcore.DebugLevel
	case "info":
		level = zapcore.InfoLevel
	case "warn":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	default:
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	if cfg.File != "" {
		zapCfg.OutputPaths = []string{cfg.File}
		zapCfg.ErrorOutputPaths = []string{cfg.File}
	}
	return zapCfg.Build()
}
