package game

import "fmt"

// Slot is the occupancy value of one board cell.
type Slot uint8

const (
	EmptySlot Slot = iota
	Player1
	Player2
)

// Opponent returns the other player. Calling it on EmptySlot is a
// programming error.
func (s Slot) Opponent() Slot {
	switch s {
	case Player1:
		return Player2
	case Player2:
		return Player1
	default:
		panic(fmt.Sprintf("slot %d has no opponent", s))
	}
}

func (s Slot) String() string {
	switch s {
	case EmptySlot:
		return "."
	case Player1:
		return "X"
	case Player2:
		return "O"
	default:
		return fmt.Sprintf("Slot(%d)", uint8(s))
	}
}
