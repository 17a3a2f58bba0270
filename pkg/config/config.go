// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config loads the player setup and the ambient settings of
// tictactoe from a YAML file, with environment variable overrides.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"time"
	"unicode/utf8"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"laptudirm.com/x/tictactoe/pkg/board"
	"laptudirm.com/x/tictactoe/pkg/player"
)

// DefaultFile is written to File the first time tictactoe runs.
//
//go:embed config.yaml
var DefaultFile []byte

const (
	KindHuman   = "human"
	KindMachine = "machine"
)

var (
	ErrPlayerCount   = errors.New("config: exactly two players are required")
	ErrInvalidKind   = errors.New("config: player kind must be human or machine")
	ErrInvalidSymbol = errors.New("config: player symbol must be a single character")
	ErrMissingName   = errors.New("config: player name is missing")
)

type Config struct {
	LogLevel string        `yaml:"log-level" env:"TICTACTOE_LOG_LEVEL" env-default:"info" env-description:"logging level"`
	Think    time.Duration `yaml:"think" env:"TICTACTOE_THINK" env-default:"0s" env-description:"machine thinking time"`
	Players  []Player      `yaml:"players"`
}

type Player struct {
	Name     string `yaml:"name"`
	Symbol   string `yaml:"symbol"`
	Kind     string `yaml:"kind"`
	Strategy string `yaml:"strategy,omitempty"`
}

// Default returns the configuration stored in DefaultFile.
func Default() (*Config, error) {
	var config Config
	if err := yaml.Unmarshal(DefaultFile, &config); err != nil {
		return nil, fmt.Errorf("config: default: %w", err)
	}

	return &config, nil
}

// Load reads the configuration at path. An empty path selects File,
// which is created from DefaultFile if it is missing.
func Load(path string) (*Config, error) {
	if path == "" {
		path = File

		if err := TryMkdir(Directory); err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}

		if err := TryCreate(File, DefaultFile); err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
	}

	var config Config
	if err := cleanenv.ReadConfig(path, &config); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	logrus.Debugf("loaded configuration from %s", path)
	return &config, nil
}

// Validate checks the player setup and the log level.
func (config *Config) Validate() error {
	if _, err := logrus.ParseLevel(config.LogLevel); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	if len(config.Players) != 2 {
		return fmt.Errorf("%w, found %d", ErrPlayerCount, len(config.Players))
	}

	for i, p := range config.Players {
		switch {
		case p.Name == "":
			return fmt.Errorf("%w: player %d", ErrMissingName, i+1)
		case p.Kind != KindHuman && p.Kind != KindMachine:
			return fmt.Errorf("%w: %s is %q", ErrInvalidKind, p.Name, p.Kind)
		case utf8.RuneCountInString(p.Symbol) != 1:
			return fmt.Errorf("%w: %s has %q", ErrInvalidSymbol, p.Name, p.Symbol)
		}
	}

	// players sharing a symbol can still play, but their wins are ambiguous
	if config.Players[0].Symbol == config.Players[1].Symbol {
		logrus.Warnf("players %s and %s share the symbol %s",
			config.Players[0].Name, config.Players[1].Name, config.Players[0].Symbol)
	}

	return nil
}

// Level returns the configured logging level.
func (config *Config) Level() logrus.Level {
	level, err := logrus.ParseLevel(config.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}

	return level
}

// Dump writes the configuration to w as YAML.
func (config *Config) Dump(w io.Writer) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)

	if err := encoder.Encode(config); err != nil {
		return err
	}

	return encoder.Close()
}

// Build creates the two configured players in seat order. Humans read
// their moves from in, and prompts and spinners are written to out.
func (config *Config) Build(in io.Reader, out io.Writer, opts ...player.MachineOption) [2]player.Player {
	var players [2]player.Player
	for i, p := range config.Players[:2] {
		symbol := board.Symbol(p.Symbol)

		if p.Kind == KindHuman {
			players[i] = player.NewHuman(p.Name, symbol, in, out)
			continue
		}

		machineOpts := append([]player.MachineOption{player.WithThinking(config.Think, out)}, opts...)
		players[i] = player.NewMachine(p.Name, symbol, p.Strategy, machineOpts...)
	}

	return players
}
