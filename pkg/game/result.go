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

package game

import (
	"fmt"

	"laptudirm.com/x/tictactoe/pkg/player"
)

// Result is the terminal condition a game ended with.
type Result int

const (
	Draw Result = iota
	Win
)

// String returns a string representation of the given Result.
func (result Result) String() string {
	switch result {
	case Win:
		return "win"
	case Draw:
		return "draw"
	default:
		return "?"
	}
}

// Outcome describes how a finished game ended.
type Outcome struct {
	Result Result

	// Winner and Line are only set for a Win; Seat is the winner's index
	// in the game's player list.
	Winner player.Player
	Seat   int
	Line   Line

	// Moves is the number of marks on the final board.
	Moves int
}

// Score returns the outcome from the first seat's point of view.
func (outcome Outcome) Score() string {
	switch {
	case outcome.Result == Draw:
		return "1/2-1/2"
	case outcome.Seat == 0:
		return "1-0"
	default:
		return "0-1"
	}
}

// String returns a human readable description of the outcome.
func (outcome Outcome) String() string {
	if outcome.Result == Draw {
		return fmt.Sprintf("draw after %d moves", outcome.Moves)
	}

	return fmt.Sprintf(
		"%s (%s) won on the %s after %d moves",
		outcome.Winner.Name(), outcome.Winner.Symbol(), outcome.Line, outcome.Moves,
	)
}
