package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string   `yaml:"log-level" env:"LOG_LEVEL" env-default:"info" validate:"oneof=debug info"`
	Engine   Engine   `yaml:"engine"`
	SelfPlay SelfPlay `yaml:"self-play"`
}

// Engine runs at full strength unless a disable flag is set.
type Engine struct {
	ConnectFourDepth       int  `yaml:"connect-four-depth" env:"ENGINE_CONNECT_FOUR_DEPTH" env-default:"4" validate:"min=1,max=5"`
	DisableOpeningShortcut bool `yaml:"disable-opening-shortcut" env:"ENGINE_DISABLE_OPENING_SHORTCUT"`
	DisableImmediateCheck  bool `yaml:"disable-immediate-check" env:"ENGINE_DISABLE_IMMEDIATE_CHECK"`
}

// SelfPlay levels default to 0 (random) when omitted.
type SelfPlay struct {
	Game       string        `yaml:"game" env:"SELF_PLAY_GAME" env-default:"tictactoe" validate:"oneof=tictactoe connectfour"`
	Matches    int           `yaml:"matches" env:"SELF_PLAY_MATCHES" env-default:"10" validate:"min=1"`
	Workers    int           `yaml:"workers" env:"SELF_PLAY_WORKERS" env-default:"4" validate:"min=1"`
	XLevel     int           `yaml:"x-level" env:"SELF_PLAY_X_LEVEL" validate:"min=0,max=2"`
	OLevel     int           `yaml:"o-level" env:"SELF_PLAY_O_LEVEL" validate:"min=0,max=2"`
	ThinkDelay time.Duration `yaml:"think-delay" env:"SELF_PLAY_THINK_DELAY" env-default:"0s" validate:"min=0"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

// Load reads the file, applies env overrides and defaults, then validates the result.
func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Config) Validate() error {
	if err := validator.New().Struct(that); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	return nil
}
