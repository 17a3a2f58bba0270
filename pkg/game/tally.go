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
	"io"
)

// Tally accumulates the outcomes of a series of games played by the same
// two seats.
type Tally struct {
	Names [2]string

	Games int
	Draws int

	Scores [2]struct {
		Wins, Losses, Starts int
	}

	// Lines counts how often each winning line ended a game.
	Lines map[Line]int
}

// NewTally creates an empty tally for two seats with the given names.
func NewTally(names [2]string) *Tally {
	return &Tally{
		Names: names,
		Lines: make(map[Line]int),
	}
}

// Add records the outcome of a game in which seat first moved first.
func (tally *Tally) Add(outcome Outcome, first int) {
	tally.Games++
	tally.Scores[first].Starts++

	switch outcome.Result {
	case Win:
		tally.Scores[outcome.Seat].Wins++
		tally.Scores[1-outcome.Seat].Losses++
		tally.Lines[outcome.Line]++
	case Draw:
		tally.Draws++
	}
}

// Print writes a summary of the tally to w. The Elo difference is given
// from the point of view of the first seat.
func (tally *Tally) Print(w io.Writer) {
	fmt.Fprintf(w, "Games played: %d (%d drawn)\n\n", tally.Games, tally.Draws)

	for seat, score := range tally.Scores {
		fmt.Fprintf(w,
			"- %-20s wins %-6d losses %-6d started %-6d\n",
			tally.Names[seat]+":", score.Wins, score.Losses, score.Starts,
		)
	}

	score := tally.Scores[0]
	lower, mu, upper := Elo(score.Wins, tally.Draws, score.Losses)
	fmt.Fprintf(w, "\nElo difference: %+.1f [%+.1f, %+.1f]\n", mu, lower, upper)

	if len(tally.Lines) == 0 {
		return
	}

	fmt.Fprintln(w, "\nWinning lines:")
	for _, line := range Lines {
		if n := tally.Lines[line]; n > 0 {
			fmt.Fprintf(w, "- %-15s %d\n", line.String()+":", n)
		}
	}
}
