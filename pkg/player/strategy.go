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

package player

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"laptudirm.com/x/tictactoe/pkg/board"
)

var ErrUnknownStrategy = errors.New("player: unknown strategy")

// Strategy decides which of the empty cells a Machine plays.
type Strategy int

const (
	// Random picks uniformly among the empty cells.
	Random Strategy = iota
)

// ParseStrategy parses a strategy name. The empty name selects Random.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "random", "":
		return Random, nil
	default:
		return Random, fmt.Errorf("%w: %s", ErrUnknownStrategy, name)
	}
}

// String returns the name of the strategy.
func (strategy Strategy) String() string {
	switch strategy {
	case Random:
		return "random"
	default:
		return "unknown"
	}
}

// Choose picks one of cells, which must not be empty.
func (strategy Strategy) Choose(rng *rand.Rand, cells []board.Position) board.Position {
	switch strategy {
	case Random:
		return cells[rng.IntN(len(cells))]
	default:
		panic("player: choose: invalid strategy " + strategy.String())
	}
}
