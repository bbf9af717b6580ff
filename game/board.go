package game

import (
	"fmt"
	"strings"
)

// Connected discs needed to win.
const WinLength = 4

var (
	// ErrOutOfBounds signals a row/column query outside the grid. Bounds
	// violations are contract violations, so board queries panic with an
	// error wrapping this sentinel rather than returning it.
	ErrOutOfBounds = fmt.Errorf("out of bounds")

	// ErrColumnFull is returned by Place when the column has no empty slot.
	ErrColumnFull = fmt.Errorf("column is full")
)

// Board is one snapshot of the game grid. Row 0 is the bottom row, so a
// placed disc falls to the lowest empty row of its column. Snapshots are
// never mutated after creation except by the single Place call that follows
// a Clone; discs are never removed within a board's lineage.
type Board struct {
	rows int
	cols int
	grid []Slot // row-major, grid[r*cols+c]
}

// NewBoard returns an empty rows-by-cols board.
func NewBoard(rows, cols int) (*Board, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("board dimensions %dx%d must be positive", rows, cols)
	}
	return &Board{
		rows: rows,
		cols: cols,
		grid: make([]Slot, rows*cols),
	}, nil
}

func (b *Board) Rows() int { return b.rows }

func (b *Board) Cols() int { return b.cols }

func (b *Board) checkBounds(row, col int) {
	if row < 0 || row >= b.rows || col < 0 || col >= b.cols {
		panic(fmt.Errorf("%w: cell (%d,%d) on %dx%d board", ErrOutOfBounds, row, col, b.rows, b.cols))
	}
}

// Occupied reports whether the cell at (row, col) holds a disc.
func (b *Board) Occupied(row, col int) bool {
	return b.Get(row, col) != EmptySlot
}

// Get returns the slot value at (row, col). Row 0 is the bottom row.
func (b *Board) Get(row, col int) Slot {
	b.checkBounds(row, col)
	return b.grid[row*b.cols+col]
}

// Row returns row r left to right.
func (b *Board) Row(r int) []Slot {
	b.checkBounds(r, 0)
	row := make([]Slot, b.cols)
	copy(row, b.grid[r*b.cols:(r+1)*b.cols])
	return row
}

// Column returns column c bottom to top.
func (b *Board) Column(c int) []Slot {
	b.checkBounds(0, c)
	col := make([]Slot, b.rows)
	for r := 0; r < b.rows; r++ {
		col[r] = b.grid[r*b.cols+c]
	}
	return col
}

// Placeable reports whether column col still has an empty slot.
func (b *Board) Placeable(col int) bool {
	return b.Get(b.rows-1, col) == EmptySlot
}

// Place drops a disc for player into column col, filling the lowest empty
// row. It returns ErrColumnFull when the column is full; callers are
// expected to check Placeable first. Place is only ever applied once to a
// fresh clone, which is what keeps snapshots immutable and the gravity
// invariant intact.
func (b *Board) Place(player Slot, col int) error {
	if player != Player1 && player != Player2 {
		return fmt.Errorf("cannot place disc for %v", player)
	}
	b.checkBounds(0, col)
	for r := 0; r < b.rows; r++ {
		if b.grid[r*b.cols+col] == EmptySlot {
			b.grid[r*b.cols+col] = player
			return nil
		}
	}
	return fmt.Errorf("%w: column %d", ErrColumnFull, col)
}

// Clone returns an independent deep copy of the board.
func (b *Board) Clone() *Board {
	grid := make([]Slot, len(b.grid))
	copy(grid, b.grid)
	return &Board{rows: b.rows, cols: b.cols, grid: grid}
}

// Terminal reports whether the game is over: someone won or the board
// is a draw.
func (b *Board) Terminal() bool {
	return b.WhoWins() != EmptySlot || b.HasDraw()
}

// HasDraw reports whether every cell is occupied with no winner.
func (b *Board) HasDraw() bool {
	for _, s := range b.grid {
		if s == EmptySlot {
			return false
		}
	}
	return b.WhoWins() == EmptySlot
}

// WhoWins scans every 4-length segment (horizontal, vertical, both
// diagonals) and returns the player holding four in a row, or EmptySlot if
// nobody does. Two simultaneous winners cannot arise under alternating
// play; if such a board is ever presented the first winner in scan order
// is returned.
func (b *Board) WhoWins() Slot {
	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.cols; c++ {
			first := b.grid[r*b.cols+c]
			if first == EmptySlot {
				continue
			}
			for _, d := range segmentDirections {
				if !b.segmentInBounds(r, c, d) {
					continue
				}
				if b.segmentOwnedBy(r, c, d, first) {
					return first
				}
			}
		}
	}
	return EmptySlot
}

func (b *Board) segmentOwnedBy(r, c int, d direction, player Slot) bool {
	for i := 1; i < WinLength; i++ {
		if b.grid[(r+i*d.dr)*b.cols+(c+i*d.dc)] != player {
			return false
		}
	}
	return true
}

// Dump renders the board top row first, one rune per slot.
func (b *Board) Dump() string {
	var sb strings.Builder
	for r := b.rows - 1; r >= 0; r-- {
		for c := 0; c < b.cols; c++ {
			sb.WriteString(b.grid[r*b.cols+c].String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

type direction struct {
	dr, dc int
}

// The four segment families: row, column, slash and backslash diagonals.
var segmentDirections = [4]direction{
	{0, 1},
	{1, 0},
	{1, 1},
	{1, -1},
}

// segmentInBounds reports whether the 4-cell run starting at (r, c) along d
// stays on the grid. Runs that would extend past the boundary are invalid.
func (b *Board) segmentInBounds(r, c int, d direction) bool {
	endR := r + (WinLength-1)*d.dr
	endC := c + (WinLength-1)*d.dc
	return endR >= 0 && endR < b.rows && endC >= 0 && endC < b.cols
}
