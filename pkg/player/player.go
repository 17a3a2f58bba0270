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

	"laptudirm.com/x/tictactoe/pkg/board"
)

var (
	// ErrMalformedInput is returned when a human enters something which
	// is not a valid coordinate. The game asks again.
	ErrMalformedInput = errors.New("player: malformed input")

	// ErrNoLegalMoves is returned when a move is requested on a full board.
	ErrNoLegalMoves = errors.New("player: no legal moves left")
)

// Player is a participant of a game which can choose moves. ChooseMove
// only selects a position, applying it to the board is left to the caller.
type Player interface {
	Name() string
	Symbol() board.Symbol
	ChooseMove(b *board.Board) (board.Position, error)
}

// identity is the part common to every kind of player.
type identity struct {
	name   string
	symbol board.Symbol
}

func (id identity) Name() string {
	return id.name
}

func (id identity) Symbol() board.Symbol {
	return id.symbol
}
