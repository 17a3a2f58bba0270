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

// Package game runs a single game of tic-tac-toe between two players,
// from the choice of the starting player to a win or a draw.
package game

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"

	"github.com/sirupsen/logrus"

	"laptudirm.com/x/tictactoe/pkg/board"
	"laptudirm.com/x/tictactoe/pkg/player"
)

var ErrGameFinished = errors.New("game: game is already finished")

// State is the stage of a game's lifecycle.
type State int

const (
	NotStarted State = iota
	InProgress
	Finished
)

func (state State) String() string {
	switch state {
	case NotStarted:
		return "not started"
	case InProgress:
		return "in progress"
	case Finished:
		return "finished"
	default:
		return "unknown"
	}
}

// Game owns a board and the two players taking turns on it.
type Game struct {
	board   *board.Board
	players [2]player.Player

	// turn selects the current player by its parity. It starts at 0 or 1
	// at random and grows by one after every round without a result.
	turn  int
	first int

	state   State
	outcome Outcome

	out io.Writer
	rng *rand.Rand
	log logrus.FieldLogger
}

type Option func(*Game)

// WithOutput sets where the board and the game's messages are written.
func WithOutput(w io.Writer) Option {
	return func(game *Game) {
		game.out = w
	}
}

// WithRand sets the source used to pick the starting player.
func WithRand(rng *rand.Rand) Option {
	return func(game *Game) {
		game.rng = rng
	}
}

// WithLogger sets the logger diagnostics are reported to.
func WithLogger(log logrus.FieldLogger) Option {
	return func(game *Game) {
		game.log = log
	}
}

// New creates a game between p1 and p2 on an empty board. Which of them
// starts is decided at random.
func New(p1, p2 player.Player, opts ...Option) *Game {
	game := &Game{
		board:   board.New(),
		players: [2]player.Player{p1, p2},

		out: os.Stdout,
		log: logrus.StandardLogger(),
	}

	for _, opt := range opts {
		opt(game)
	}

	if game.rng == nil {
		game.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	game.turn = game.rng.IntN(2)
	game.first = game.turn
	return game
}

// Board returns the game's board.
func (game *Game) Board() *board.Board {
	return game.board
}

// Players returns the players in seat order.
func (game *Game) Players() [2]player.Player {
	return game.players
}

// Turn returns the turn counter.
func (game *Game) Turn() int {
	return game.turn
}

// First returns the seat of the player who moves first.
func (game *Game) First() int {
	return game.first
}

// Current returns the player whose turn it is.
func (game *Game) Current() player.Player {
	return game.players[game.turn%2]
}

// State returns the game's lifecycle stage.
func (game *Game) State() State {
	return game.state
}

// Play runs the game until a player wins or the board is full.
func (game *Game) Play() (Outcome, error) {
	if game.state == Finished {
		return game.outcome, ErrGameFinished
	}

	if game.state == NotStarted {
		game.state = InProgress
		game.printf("%s starts!\n", game.Current().Name())
	}

	for {
		current := game.Current()
		game.printf("It's your turn, %s.\n", current.Name())

		if err := game.move(current); err != nil {
			return Outcome{}, err
		}

		if err := game.board.Render(game.out); err != nil {
			return Outcome{}, err
		}
		game.printf("\n")

		if outcome, over := game.result(); over {
			game.state = Finished
			game.outcome = outcome
			game.announce(outcome)
			return outcome, nil
		}

		game.printf("%s played!\n\n", current.Name())
		game.turn++
	}
}

// move asks p for moves until one of them can be applied to the board.
func (game *Game) move(p player.Player) error {
	for {
		pos, err := p.ChooseMove(game.board)
		if err == nil {
			err = game.board.Mark(pos, p.Symbol())
		}

		switch {
		case err == nil:
			game.log.WithFields(logrus.Fields{
				"turn":   game.turn,
				"player": p.Name(),
				"symbol": p.Symbol(),
			}).Debugf("marked %s", pos)
			return nil

		case errors.Is(err, board.ErrCellOccupied):
			game.log.Debug(err)
			game.printf("That cell is already taken, choose another one.\n")

		case errors.Is(err, player.ErrMalformedInput), errors.Is(err, board.ErrInvalidPosition):
			game.log.Debug(err)
			game.printf("Invalid move, enter a row and a column between 1 and 3.\n")

		default:
			return fmt.Errorf("game: turn %d: %w", game.turn, err)
		}
	}
}

// result checks the board for a terminal condition.
func (game *Game) result() (Outcome, bool) {
	grid := game.board.Grid()

	if line, symbol, won := CheckWin(grid); won {
		seat := game.turn % 2
		if symbol != game.players[seat].Symbol() {
			// only possible if both players share a symbol
			game.log.Warnf("line %s completed with %s by %s", line, symbol, game.players[seat].Name())
		}

		return Outcome{
			Result: Win,
			Winner: game.players[seat],
			Seat:   seat,
			Line:   line,
			Moves:  game.board.Marked(),
		}, true
	}

	if IsDraw(grid) {
		return Outcome{Result: Draw, Moves: game.board.Marked()}, true
	}

	return Outcome{}, false
}

func (game *Game) announce(outcome Outcome) {
	switch outcome.Result {
	case Win:
		game.printf("%s wins! Victory! The player filled the %s!\n", outcome.Winner.Name(), outcome.Line)
		game.printf("Game over\n")
	case Draw:
		game.printf("The game is over. There are no more cells to fill.\n")
		game.printf("Draw!\n")
	}

	game.log.WithField("moves", outcome.Moves).Debugf("game finished: %s", outcome)
}

func (game *Game) printf(format string, a ...any) {
	_, _ = fmt.Fprintf(game.out, format, a...)
}
