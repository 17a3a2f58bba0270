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
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"laptudirm.com/x/tictactoe/pkg/board"
)

const (
	rowPrompt    = "Which row do you want to play? (1, 2 or 3): "
	columnPrompt = "Which column do you want to play? (1, 2 or 3): "
)

// Human is a player whose moves are read line by line from an input
// source, usually a terminal.
type Human struct {
	identity

	reader *bufio.Reader
	writer io.Writer
}

var _ Player = (*Human)(nil)

// NewHuman creates a human player which reads coordinates from in and
// writes its prompts to out.
func NewHuman(name string, symbol board.Symbol, in io.Reader, out io.Writer) *Human {
	return &Human{
		identity: identity{name: name, symbol: symbol},

		reader: bufio.NewReader(in),
		writer: out,
	}
}

// ChooseMove asks for a row and a column, both 1-indexed. A coordinate
// which is not a number between 1 and 3 results in ErrMalformedInput.
func (human *Human) ChooseMove(*board.Board) (board.Position, error) {
	row, err := human.readCoordinate(rowPrompt)
	if err != nil {
		return board.Position{}, err
	}

	col, err := human.readCoordinate(columnPrompt)
	if err != nil {
		return board.Position{}, err
	}

	pos := board.Position{Row: row - 1, Col: col - 1}
	logrus.Tracef("human %s entered %s", human.name, pos)

	if !pos.Valid() {
		return pos, fmt.Errorf("%w: %w %s", ErrMalformedInput, board.ErrInvalidPosition, pos)
	}

	return pos, nil
}

func (human *Human) readCoordinate(prompt string) (int, error) {
	if _, err := io.WriteString(human.writer, prompt); err != nil {
		return 0, err
	}

	line, err := human.reader.ReadString('\n')
	switch {
	// the last line of the input may lack a newline
	case errors.Is(err, io.EOF) && line != "":
	case err != nil:
		return 0, fmt.Errorf("human %s: %w", human.name, err)
	}

	line = strings.Trim(line, " \n\t\r")
	n, err := strconv.Atoi(line)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrMalformedInput, line)
	}

	return n, nil
}
