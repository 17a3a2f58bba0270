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

// Package board implements the 3x3 tic-tac-toe grid and its single
// placement rule: a cell can be marked once and is never unmarked.
package board

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Size is the number of rows and columns of the board.
const Size = 3

var (
	ErrInvalidPosition = errors.New("board: invalid position")
	ErrCellOccupied    = errors.New("board: cell is already occupied")
	ErrInvalidSymbol   = errors.New("board: invalid symbol")
)

// Symbol is the marker a player leaves on the cells it marks.
type Symbol string

// Empty is the Symbol of an unmarked cell.
const Empty Symbol = ""

// Cell is a single grid position, either Empty or marked by a Symbol.
type Cell = Symbol

// Grid is a read-only snapshot of the board's cells.
type Grid [Size][Size]Cell

// Position is a 0-indexed (row, column) pair.
type Position struct {
	Row, Col int
}

// Valid reports whether the position lies on the board.
func (pos Position) Valid() bool {
	return pos.Row >= 0 && pos.Row < Size && pos.Col >= 0 && pos.Col < Size
}

// String returns the position 1-indexed, the way players see it.
func (pos Position) String() string {
	return fmt.Sprintf("(%d, %d)", pos.Row+1, pos.Col+1)
}

// Board holds the state of a single game.
type Board struct {
	cells Grid
}

// New creates a board with every cell Empty.
func New() *Board {
	return &Board{}
}

// Grid returns a copy of the current cells.
func (board *Board) Grid() Grid {
	return board.cells
}

// At returns the cell at the given position.
func (board *Board) At(pos Position) (Cell, error) {
	if !pos.Valid() {
		return Empty, fmt.Errorf("%w: %s", ErrInvalidPosition, pos)
	}

	return board.cells[pos.Row][pos.Col], nil
}

// Mark marks the cell at pos with symbol, which must be a single
// character. Marking an occupied cell fails with ErrCellOccupied and
// leaves the board untouched.
func (board *Board) Mark(pos Position, symbol Symbol) error {
	if !pos.Valid() {
		return fmt.Errorf("%w: %s", ErrInvalidPosition, pos)
	}

	if utf8.RuneCountInString(string(symbol)) != 1 {
		return fmt.Errorf("%w: %q", ErrInvalidSymbol, symbol)
	}

	if board.cells[pos.Row][pos.Col] != Empty {
		return fmt.Errorf("%w: %s", ErrCellOccupied, pos)
	}

	board.cells[pos.Row][pos.Col] = symbol
	return nil
}

// EmptyCells lists the unmarked positions in row-major order.
func (board *Board) EmptyCells() []Position {
	var cells []Position
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if board.cells[row][col] == Empty {
				cells = append(cells, Position{Row: row, Col: col})
			}
		}
	}

	return cells
}

// Full reports whether no empty cell remains.
func (board *Board) Full() bool {
	return board.Marked() == Size*Size
}

// Marked returns the number of non-empty cells.
func (board *Board) Marked() int {
	marked := 0
	for _, row := range board.cells {
		for _, cell := range row {
			if cell != Empty {
				marked++
			}
		}
	}

	return marked
}

// separator is the line drawn above, between and below the rows.
var separator = strings.Repeat("-", 4*Size+1) + "\n"

// Render writes the board as a text grid to w.
func (board *Board) Render(w io.Writer) error {
	var str strings.Builder

	str.WriteString(separator)
	for _, row := range board.cells {
		for _, cell := range row {
			mark := string(cell)
			if cell == Empty {
				mark = " "
			}

			fmt.Fprintf(&str, "| %s ", mark)
		}

		str.WriteString("|\n")
		str.WriteString(separator)
	}

	_, err := io.WriteString(w, str.String())
	return err
}

// String returns the rendered board.
func (board *Board) String() string {
	var str strings.Builder
	_ = board.Render(&str)
	return str.String()
}
