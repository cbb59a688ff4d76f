package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/ilyakaznacheev/cleanenv"
)

const (
	FirstTurnHuman = "human"
	FirstTurnAI    = "ai"

	fileName = "config.yml"
	appDir   = "tictactoe"
)

var ErrInvalidFirstTurn = errors.New("first-turn must be human or ai")

type Config struct {
	LogLevel  string `yaml:"log-level" env:"TICTACTOE_LOG_LEVEL" env-default:"warn"`
	FirstTurn string `yaml:"first-turn" env:"TICTACTOE_FIRST_TURN" env-default:"human"`
}

// MustLoad - load all configurations, panics on failure.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

// Load reads the yml file at path, or only the environment when path is empty.
func Load(path string) (*Config, error) {
	config := &Config{}

	var err error
	if path == "" {
		err = cleanenv.ReadEnv(config)
	} else {
		err = cleanenv.ReadConfig(path, config)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if config.FirstTurn != FirstTurnHuman && config.FirstTurn != FirstTurnAI {
		return nil, fmt.Errorf("%w: got %q", ErrInvalidFirstTurn, config.FirstTurn)
	}

	return config, nil
}

// Locate returns config.yml from workDir if present, then from the XDG config
// directories. An empty string means no file was found.
func Locate(workDir string) string {
	local := filepath.Join(workDir, fileName)
	if _, err := os.Stat(local); err == nil {
		return local
	}

	path, err := xdg.SearchConfigFile(filepath.Join(appDir, fileName))
	if err != nil {
		return ""
	}

	return path
}

func (that *Config) AIMovesFirst() bool {
	return that.FirstTurn == FirstTurnAI
}
