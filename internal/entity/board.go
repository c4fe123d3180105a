package entity

import (
	"errors"
	"fmt"
	"strings"
)

// Size - the board is always Size x Size.
const Size = 3

type Cell uint8

const (
	Empty Cell = iota
	PlayerX
	PlayerO
)

var ErrInvalidBoard = errors.New("invalid board")

// Move - a (row, col) pair on the board, zero based.
type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (that Move) InRange() bool {
	return inRange(that.Row, that.Col)
}

func (that Move) String() string {
	return fmt.Sprintf("(%d, %d)", that.Row, that.Col)
}

// Board - fixed 3x3 grid. The zero value is an empty board.
type Board struct {
	cells [Size][Size]Cell
}

// lines - every winning line in scan order: row i is followed by column i, then both diagonals.
var lines = [2*Size + 2][Size]Move{
	{{0, 0}, {0, 1}, {0, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

func NewBoard() Board {
	return Board{}
}

func inRange(row, col int) bool {
	return row >= 0 && row < Size && col >= 0 && col < Size
}

// Place - puts player on an empty in-range cell. Returns false and leaves the board untouched otherwise.
func (that *Board) Place(row, col int, player Cell) bool {
	if !inRange(row, col) || that.cells[row][col] != Empty {
		return false
	}

	that.cells[row][col] = player

	return true
}

// Remove - resets the cell to Empty. Out of range coordinates are ignored.
func (that *Board) Remove(row, col int) {
	if !inRange(row, col) {
		return
	}

	that.cells[row][col] = Empty
}

// At - returns the cell at (row, col), Empty when out of range.
func (that *Board) At(row, col int) Cell {
	if !inRange(row, col) {
		return Empty
	}

	return that.cells[row][col]
}

func (that *Board) IsFull() bool {
	for _, row := range that.cells {
		for _, cell := range row {
			if cell == Empty {
				return false
			}
		}
	}

	return true
}

// Winner - returns the owner of the first complete line in scan order.
func (that *Board) Winner() (Cell, bool) {
	for _, line := range lines {
		a := that.cells[line[0].Row][line[0].Col]
		b := that.cells[line[1].Row][line[1].Col]
		c := that.cells[line[2].Row][line[2].Col]

		if a != Empty && a == b && b == c {
			return a, true
		}
	}

	return Empty, false
}

// EmptyCells - all empty coordinates in row-major order.
func (that *Board) EmptyCells() []Move {
	moves := make([]Move, 0, Size*Size)
	for row := range Size {
		for col := range Size {
			if that.cells[row][col] == Empty {
				moves = append(moves, Move{Row: row, Col: col})
			}
		}
	}

	return moves
}

func (that *Board) OccupiedCount() int {
	return Size*Size - len(that.EmptyCells())
}

// Symbol - display token for a cell.
func Symbol(cell Cell) string {
	switch cell {
	case PlayerX:
		return "X"
	case PlayerO:
		return "O"
	default:
		return "."
	}
}

// Opponent - the other player's mark. Empty has no opponent.
func Opponent(cell Cell) Cell {
	switch cell {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return Empty
	}
}

// ParseCell - accepts "X", "O" in either case.
func ParseCell(s string) (Cell, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "X":
		return PlayerX, nil
	case "O":
		return PlayerO, nil
	default:
		return Empty, fmt.Errorf("%w: unknown mark %q", ErrInvalidBoard, s)
	}
}

// ParseBoard - reads nine symbols (X, O and one of . _ - for empty) in row-major order. Whitespace, '/' and '|' are skipped.
func ParseBoard(s string) (Board, error) {
	var board Board

	i := 0
	for _, r := range s {
		var cell Cell

		switch r {
		case ' ', '\t', '\n', '\r', '/', '|':
			continue
		case 'X', 'x':
			cell = PlayerX
		case 'O', 'o':
			cell = PlayerO
		case '.', '_', '-':
			cell = Empty
		default:
			return Board{}, fmt.Errorf("%w: unexpected symbol %q", ErrInvalidBoard, r)
		}

		if i >= Size*Size {
			return Board{}, fmt.Errorf("%w: more than %d cells", ErrInvalidBoard, Size*Size)
		}

		board.cells[i/Size][i%Size] = cell
		i++
	}

	if i != Size*Size {
		return Board{}, fmt.Errorf("%w: got %d cells, want %d", ErrInvalidBoard, i, Size*Size)
	}

	return board, nil
}

// Key - compact row-major encoding, e.g. "X...X....".
func (that *Board) Key() string {
	var sb strings.Builder
	sb.Grow(Size * Size)

	for _, row := range that.cells {
		for _, cell := range row {
			sb.WriteString(Symbol(cell))
		}
	}

	return sb.String()
}

// String - renders rows as "X | . | ." separated by a rule line.
func (that *Board) String() string {
	var sb strings.Builder

	for i, row := range that.cells {
		for j, cell := range row {
			sb.WriteString(Symbol(cell))
			if j < Size-1 {
				sb.WriteString(" | ")
			}
		}
		sb.WriteByte('\n')

		if i < Size-1 {
			sb.WriteString("---------\n")
		}
	}

	return sb.String()
}
