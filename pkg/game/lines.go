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

	"laptudirm.com/x/tictactoe/pkg/board"
)

// LineKind is the direction of a winning line.
type LineKind int

const (
	MainDiagonal LineKind = iota // (0,0) (1,1) (2,2)
	AntiDiagonal                 // (0,2) (1,1) (2,0)
	Row
	Column
)

// Line is one of the eight lines which win the game when filled with the
// same symbol. Index is only meaningful for rows and columns.
type Line struct {
	Kind  LineKind
	Index int
}

// Lines lists every winning line in the order they are checked: diagonals
// first, then rows from the top, then columns from the left. The order
// only decides which line is reported when a move completes several.
var Lines = func() []Line {
	lines := []Line{{Kind: MainDiagonal}, {Kind: AntiDiagonal}}
	for i := 0; i < board.Size; i++ {
		lines = append(lines, Line{Kind: Row, Index: i})
	}
	for i := 0; i < board.Size; i++ {
		lines = append(lines, Line{Kind: Column, Index: i})
	}
	return lines
}()

// Cells returns the positions that make up the line.
func (line Line) Cells() [board.Size]board.Position {
	var cells [board.Size]board.Position
	for i := range cells {
		switch line.Kind {
		case MainDiagonal:
			cells[i] = board.Position{Row: i, Col: i}
		case AntiDiagonal:
			cells[i] = board.Position{Row: i, Col: board.Size - 1 - i}
		case Row:
			cells[i] = board.Position{Row: line.Index, Col: i}
		case Column:
			cells[i] = board.Position{Row: i, Col: line.Index}
		}
	}

	return cells
}

// String describes the line, numbering rows and columns from 1.
func (line Line) String() string {
	switch line.Kind {
	case MainDiagonal:
		return "main diagonal"
	case AntiDiagonal:
		return "anti-diagonal"
	case Row:
		return fmt.Sprintf("row %d", line.Index+1)
	case Column:
		return fmt.Sprintf("column %d", line.Index+1)
	default:
		return "unknown line"
	}
}

// CheckWin returns the first line of grid filled with a single symbol.
func CheckWin(grid board.Grid) (Line, board.Symbol, bool) {
	for _, line := range Lines {
		cells := line.Cells()

		first := grid[cells[0].Row][cells[0].Col]
		if first == board.Empty {
			continue
		}

		complete := true
		for _, pos := range cells[1:] {
			if grid[pos.Row][pos.Col] != first {
				complete = false
				break
			}
		}

		if complete {
			return line, first, true
		}
	}

	return Line{}, board.Empty, false
}

// IsDraw reports whether grid is full without any winning line.
func IsDraw(grid board.Grid) bool {
	if _, _, won := CheckWin(grid); won {
		return false
	}

	for _, row := range grid {
		for _, cell := range row {
			if cell == board.Empty {
				return false
			}
		}
	}

	return true
}
