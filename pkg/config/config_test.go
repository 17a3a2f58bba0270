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

package config

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laptudirm.com/x/tictactoe/pkg/player"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), FilePermissions))
	return path
}

func TestDefault(t *testing.T) {
	// When: reading the embedded default configuration
	config, err := Default()
	require.NoError(t, err)

	// Then: it is the classic machine against human setup
	require.NoError(t, config.Validate())
	assert.Equal(t, []Player{
		{Name: "Sapo", Symbol: "X", Kind: KindMachine, Strategy: "random"},
		{Name: "Perereca", Symbol: "O", Kind: KindHuman},
	}, config.Players)
	assert.Equal(t, logrus.InfoLevel, config.Level())
	assert.Equal(t, 500*time.Millisecond, config.Think)
}

func TestLoad(t *testing.T) {
	t.Run("Reads the default file", func(t *testing.T) {
		path := writeConfig(t, string(DefaultFile))

		config, err := Load(path)
		require.NoError(t, err)

		expected, err := Default()
		require.NoError(t, err)
		assert.Equal(t, expected, config)
	})

	t.Run("Fills in missing settings", func(t *testing.T) {
		path := writeConfig(t, `
players:
  - {name: A, symbol: A, kind: machine}
  - {name: B, symbol: B, kind: machine}
`)

		config, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "info", config.LogLevel)
		assert.Zero(t, config.Think)
	})

	t.Run("Environment overrides the file", func(t *testing.T) {
		// Given: environment variables for both ambient settings
		t.Setenv("TICTACTOE_LOG_LEVEL", "trace")
		t.Setenv("TICTACTOE_THINK", "2s")
		path := writeConfig(t, string(DefaultFile))

		// When: loading the configuration
		config, err := Load(path)

		// Then: the environment wins
		require.NoError(t, err)
		assert.Equal(t, logrus.TraceLevel, config.Level())
		assert.Equal(t, 2*time.Second, config.Think)
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			LogLevel: "info",
			Players: []Player{
				{Name: "Sapo", Symbol: "X", Kind: KindMachine},
				{Name: "Perereca", Symbol: "O", Kind: KindHuman},
			},
		}
	}

	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr error
	}{
		{name: "valid", modify: func(*Config) {}},
		{name: "one player", modify: func(c *Config) { c.Players = c.Players[:1] }, wantErr: ErrPlayerCount},
		{name: "unknown kind", modify: func(c *Config) { c.Players[0].Kind = "robot" }, wantErr: ErrInvalidKind},
		{name: "long symbol", modify: func(c *Config) { c.Players[1].Symbol = "OO" }, wantErr: ErrInvalidSymbol},
		{name: "empty symbol", modify: func(c *Config) { c.Players[1].Symbol = "" }, wantErr: ErrInvalidSymbol},
		{name: "missing name", modify: func(c *Config) { c.Players[1].Name = "" }, wantErr: ErrMissingName},
		{name: "multibyte symbol", modify: func(c *Config) { c.Players[0].Symbol = "✗" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := valid()
			tt.modify(config)

			err := config.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}

	t.Run("bad log level", func(t *testing.T) {
		config := valid()
		config.LogLevel = "loud"
		assert.Error(t, config.Validate())
	})
}

func TestConfig_Dump(t *testing.T) {
	config, err := Default()
	require.NoError(t, err)

	var out strings.Builder
	require.NoError(t, config.Dump(&out))

	assert.Contains(t, out.String(), "log-level: info")
	assert.Contains(t, out.String(), "think: 500ms")
	assert.Contains(t, out.String(), "name: Perereca")

	// Then: the dump can be loaded back
	loaded, err := Load(writeConfig(t, out.String()))
	require.NoError(t, err)
	assert.Equal(t, config, loaded)
}

func TestConfig_Build(t *testing.T) {
	config, err := Default()
	require.NoError(t, err)

	players := config.Build(strings.NewReader(""), io.Discard)

	require.IsType(t, &player.Machine{}, players[0])
	require.IsType(t, &player.Human{}, players[1])
	assert.Equal(t, "Sapo", players[0].Name())
	assert.Equal(t, "O", string(players[1].Symbol()))
}

func TestTryCreate(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	file := filepath.Join(dir, "config.yaml")

	require.NoError(t, TryMkdir(dir))
	require.NoError(t, TryCreate(file, []byte("first")))
	require.NoError(t, TryCreate(file, []byte("second")))

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, "first", string(data))
}
