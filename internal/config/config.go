package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Minesweeper struct {
	Width     int    `mapstructure:"width"`
	Height    int    `mapstructure:"height"`
	MineCount int    `mapstructure:"mine_count"`
	Rule      string `mapstructure:"rule"`
}

type Memory struct {
	Width         int           `mapstructure:"width"`
	Height        int           `mapstructure:"height"`
	Theme         string        `mapstructure:"theme"`
	TimeLimit     time.Duration `mapstructure:"time_limit"`
	Bonus         time.Duration `mapstructure:"bonus"`
	MismatchDelay time.Duration `mapstructure:"mismatch_delay"`
}

type Hangman struct {
	Theme string `mapstructure:"theme"`
}

type Snake struct {
	Width        int `mapstructure:"width"`
	Height       int `mapstructure:"height"`
	InitialSpeed int `mapstructure:"initial_speed"`
	MaxSpeed     int `mapstructure:"max_speed"`
}

type Config struct {
	Development bool   `mapstructure:"development"`
	LogFile     string `mapstructure:"log_file"`
	LogLevel    string `mapstructure:"log_level"`
	TickRate    int    `mapstructure:"tick_rate"`
	// Seed makes every game deterministic; 0 seeds from the runtime.
	Seed uint64 `mapstructure:"seed"`

	Minesweeper Minesweeper `mapstructure:"minesweeper"`
	Memory      Memory      `mapstructure:"memory"`
	Hangman     Hangman     `mapstructure:"hangman"`
	Snake       Snake       `mapstructure:"snake"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("development", false)
	v.SetDefault("log_file", "arcade.log")
	v.SetDefault("log_level", "")
	v.SetDefault("tick_rate", 30)
	v.SetDefault("seed", 0)

	v.SetDefault("minesweeper.width", 10)
	v.SetDefault("minesweeper.height", 10)
	v.SetDefault("minesweeper.mine_count", 9)
	v.SetDefault("minesweeper.rule", "strict")

	v.SetDefault("memory.width", 5)
	v.SetDefault("memory.height", 4)
	v.SetDefault("memory.theme", "default")
	v.SetDefault("memory.time_limit", 3*time.Minute)
	v.SetDefault("memory.bonus", 40*time.Second)
	v.SetDefault("memory.mismatch_delay", time.Second)

	v.SetDefault("hangman.theme", "")

	v.SetDefault("snake.width", 40)
	v.SetDefault("snake.height", 20)
	v.SetDefault("snake.initial_speed", 10)
	v.SetDefault("snake.max_speed", 25)
}

// NewFlagSet declares the command line flags understood by [Load].
func NewFlagSet(name string) *pflag.FlagSet {
	flags := pflag.NewFlagSet(name, pflag.ContinueOnError)
	flags.StringP("config", "c", "", "config file path (yaml, json or toml)")
	flags.String("log-file", "arcade.log", "log file path")
	flags.String("log-level", "", "log level (default info, debug in development)")
	flags.Bool("development", false, "development mode")
	flags.Int("tick-rate", 30, "frames per second")
	flags.Uint64("seed", 0, "random seed, 0 for a random one")
	return flags
}

var flagKeys = map[string]string{
	"log-file":    "log_file",
	"log-level":   "log_level",
	"development": "development",
	"tick-rate":   "tick_rate",
	"seed":        "seed",
}

// Load merges defaults, the optional config file, ARCADE_* environment
// variables and command line flags, in increasing priority.
func Load(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("ARCADE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("development", "ARCADE_DEVELOPMENT", "DEVELOPMENT"); err != nil {
		return nil, err
	}

	if flags != nil {
		for flag, key := range flagKeys {
			if f := flags.Lookup(flag); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("unable to bind flag %s: %w", flag, err)
				}
			}
		}
		if path, err := flags.GetString("config"); err == nil && path != "" {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("unable to read config %s: %w", path, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c Config) Validate() error {
	if c.TickRate <= 0 {
		return fmt.Errorf("tick_rate must be positive, got %d", c.TickRate)
	}
	if c.LogFile == "" {
		return fmt.Errorf("log_file must be set")
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	if _, err := c.Minesweeper.GameParams(); err != nil {
		return fmt.Errorf("invalid minesweeper config: %w", err)
	}
	if c.Memory.Width*c.Memory.Height%2 != 0 {
		return fmt.Errorf("memory board must have an even number of boxes, got %dx%d",
			c.Memory.Width, c.Memory.Height)
	}
	if c.Snake.InitialSpeed <= 0 || c.Snake.MaxSpeed < c.Snake.InitialSpeed {
		return fmt.Errorf("invalid snake speeds %d..%d", c.Snake.InitialSpeed, c.Snake.MaxSpeed)
	}
	return nil
}

// Level is the configured log level, info by default and debug in
// development mode.
func (c Config) Level() (logrus.Level, error) {
	if c.LogLevel != "" {
		lvl, err := logrus.ParseLevel(c.LogLevel)
		if err != nil {
			return logrus.InfoLevel, fmt.Errorf("invalid log_level: %w", err)
		}
		return lvl, nil
	}
	if c.Development {
		return logrus.DebugLevel, nil
	}
	return logrus.InfoLevel, nil
}

// Ticks converts a duration to a number of frames at the configured rate.
func (c Config) Ticks(d time.Duration) int {
	return int(d * time.Duration(c.TickRate) / time.Second)
}

func (c Config) Fields() logrus.Fields {
	return map[string]any{
		"development":     c.Development,
		"log_file":        c.LogFile,
		"log_level":       c.LogLevel,
		"tick_rate":       c.TickRate,
		"seed":            c.Seed,
		"mines_width":     c.Minesweeper.Width,
		"mines_height":    c.Minesweeper.Height,
		"mines_count":     c.Minesweeper.MineCount,
		"mines_rule":      c.Minesweeper.Rule,
		"memory_board":    fmt.Sprintf("%dx%d", c.Memory.Width, c.Memory.Height),
		"memory_theme":    c.Memory.Theme,
		"memory_limit":    c.Memory.TimeLimit.String(),
		"hangman_theme":   c.Hangman.Theme,
		"snake_board":     fmt.Sprintf("%dx%d", c.Snake.Width, c.Snake.Height),
		"snake_max_speed": c.Snake.MaxSpeed,
	}
}
