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

package board

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allPositions() []Position {
	var positions []Position
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			positions = append(positions, Position{Row: row, Col: col})
		}
	}
	return positions
}

func TestNew(t *testing.T) {
	// When: a new board is created
	board := New()

	// Then: every cell is empty
	assert.Equal(t, Grid{}, board.Grid())
	assert.Len(t, board.EmptyCells(), Size*Size)
	assert.Zero(t, board.Marked())
	assert.False(t, board.Full())
}

func TestBoard_Mark(t *testing.T) {
	t.Run("Each position can be marked exactly once", func(t *testing.T) {
		for _, pos := range allPositions() {
			// Given: a fresh board
			board := New()

			// When: the position is marked
			require.NoError(t, board.Mark(pos, "X"))

			// Then: a second mark fails regardless of the symbol
			assert.ErrorIs(t, board.Mark(pos, "X"), ErrCellOccupied)
			assert.ErrorIs(t, board.Mark(pos, "O"), ErrCellOccupied)

			// Then: the first mark is kept
			cell, err := board.At(pos)
			require.NoError(t, err)
			assert.Equal(t, Symbol("X"), cell)
		}
	})

	t.Run("Out of range positions are rejected", func(t *testing.T) {
		board := New()

		for _, pos := range []Position{{-1, 0}, {0, -1}, {3, 0}, {0, 3}, {5, 5}} {
			err := board.Mark(pos, "X")
			assert.ErrorIs(t, err, ErrInvalidPosition, "position %v", pos)
		}

		assert.Equal(t, Grid{}, board.Grid())
	})

	t.Run("Symbols other than a single character are rejected", func(t *testing.T) {
		board := New()

		for _, symbol := range []Symbol{Empty, "XX", "OXO"} {
			assert.ErrorIs(t, board.Mark(Position{1, 1}, symbol), ErrInvalidSymbol, "symbol %q", symbol)
		}
		assert.Zero(t, board.Marked())

		// a multi-byte rune is still one character
		require.NoError(t, board.Mark(Position{1, 1}, "✕"))
		assert.Equal(t, 1, board.Marked())
	})

	t.Run("Marked count follows successful marks", func(t *testing.T) {
		// Given: a sequence of marks, some of them on occupied cells
		board := New()
		moves := []Position{{0, 0}, {1, 1}, {0, 0}, {2, 2}, {1, 1}, {0, 2}}

		successes := 0
		for i, pos := range moves {
			symbol := Symbol("X")
			if i%2 == 1 {
				symbol = "O"
			}
			if board.Mark(pos, symbol) == nil {
				successes++
			}

			// Then: the number of non-empty cells matches after every call
			assert.Equal(t, successes, board.Marked())
		}

		assert.Equal(t, 4, successes)
	})
}

func TestBoard_Grid(t *testing.T) {
	// Given: a board with one mark
	board := New()
	require.NoError(t, board.Mark(Position{0, 0}, "X"))

	// When: the returned grid is modified
	grid := board.Grid()
	grid[1][1] = "O"

	// Then: the board is unaffected
	cell, err := board.At(Position{1, 1})
	require.NoError(t, err)
	assert.Equal(t, Empty, cell)
}

func TestBoard_Full(t *testing.T) {
	board := New()
	for i, pos := range allPositions() {
		assert.False(t, board.Full())
		assert.Len(t, board.EmptyCells(), Size*Size-i)
		require.NoError(t, board.Mark(pos, "X"))
	}

	assert.True(t, board.Full())
	assert.Empty(t, board.EmptyCells())
}

func TestBoard_Render(t *testing.T) {
	// Given: a partially marked board
	board := New()
	require.NoError(t, board.Mark(Position{0, 0}, "X"))
	require.NoError(t, board.Mark(Position{1, 1}, "O"))
	require.NoError(t, board.Mark(Position{2, 2}, "X"))

	// When: rendering it
	var out strings.Builder
	require.NoError(t, board.Render(&out))

	// Then: empty cells are blank and rows are separated
	expected := "" +
		"-------------\n" +
		"| X |   |   |\n" +
		"-------------\n" +
		"|   | O |   |\n" +
		"-------------\n" +
		"|   |   | X |\n" +
		"-------------\n"
	assert.Equal(t, expected, out.String())
	assert.Equal(t, expected, board.String())
}

func TestPosition_String(t *testing.T) {
	assert.Equal(t, "(1, 3)", Position{Row: 0, Col: 2}.String())
}
