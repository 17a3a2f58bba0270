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
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/sirupsen/logrus"

	"laptudirm.com/x/tictactoe/pkg/board"
)

// spin is the spinner.CharSets index used while a machine is thinking.
const spin = 14

// Machine is a computer controlled player.
type Machine struct {
	identity

	strategy Strategy
	rng      *rand.Rand

	// think is how long the machine pretends to deliberate, with
	// a spinner running on out. Zero disables it.
	think time.Duration
	out   io.Writer
}

var _ Player = (*Machine)(nil)

type MachineOption func(*Machine)

// WithRand makes the machine draw its choices from rng.
func WithRand(rng *rand.Rand) MachineOption {
	return func(machine *Machine) {
		machine.rng = rng
	}
}

// WithThinking shows a spinner on out for d before every move.
func WithThinking(d time.Duration, out io.Writer) MachineOption {
	return func(machine *Machine) {
		machine.think = d
		machine.out = out
	}
}

// NewMachine creates a machine player. An unknown strategy name is logged
// and replaced with Random, which is the only strategy there is.
func NewMachine(name string, symbol board.Symbol, strategy string, opts ...MachineOption) *Machine {
	parsed, err := ParseStrategy(strategy)
	if err != nil {
		logrus.WithField("player", name).Warnf(
			"%v: currently the only defined strategy is %q", err, Random,
		)
	}

	machine := &Machine{
		identity: identity{name: name, symbol: symbol},
		strategy: parsed,
		out:      os.Stdout,
	}

	for _, opt := range opts {
		opt(machine)
	}

	if machine.rng == nil {
		machine.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	return machine
}

// Strategy returns the strategy the machine plays with.
func (machine *Machine) Strategy() Strategy {
	return machine.strategy
}

// ChooseMove picks one of the empty cells of b. It never returns an
// occupied cell, and fails with ErrNoLegalMoves if b is full.
func (machine *Machine) ChooseMove(b *board.Board) (board.Position, error) {
	cells := b.EmptyCells()
	if len(cells) == 0 {
		return board.Position{}, fmt.Errorf("%w: %s cannot move", ErrNoLegalMoves, machine.name)
	}

	machine.deliberate()

	pos := machine.strategy.Choose(machine.rng, cells)
	logrus.WithFields(logrus.Fields{
		"player":   machine.name,
		"strategy": machine.strategy,
		"choices":  len(cells),
	}).Debugf("machine chose %s", pos)

	return pos, nil
}

func (machine *Machine) deliberate() {
	if machine.think <= 0 {
		return
	}

	s := spinner.New(
		spinner.CharSets[spin], 100*time.Millisecond,
		spinner.WithWriter(machine.out),
		spinner.WithSuffix(" "+machine.name+" is thinking..."),
	)

	s.Start()
	time.Sleep(machine.think)
	s.Stop()
}
