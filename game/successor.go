package game

// Successor is one legal placement and the board snapshot it produces.
type Successor struct {
	Column int
	Board  *Board
}

// Successors enumerates every legal placement for player in increasing
// column order. Each successor board is an independent clone with exactly
// one new disc; the input board is never touched. An empty result means the
// position has no further play.
func Successors(player Slot, b *Board) []Successor {
	succs := make([]Successor, 0, b.cols)
	for c := 0; c < b.cols; c++ {
		if !b.Placeable(c) {
			continue
		}
		child := b.Clone()
		if err := child.Place(player, c); err != nil {
			panic(err) // Placeable just held
		}
		succs = append(succs, Successor{Column: c, Board: child})
	}
	return succs
}
