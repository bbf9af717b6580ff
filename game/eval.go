package game

// Evaluate is a static heuristic scoring a board from player's perspective;
// higher is better for player.
type Evaluate func(player Slot, b *Board) float64

// segmentWeights[n] is the value of a 4-slot segment holding n of one
// side's discs and none of the other's. The 4-disc weight dominates the sum
// of every lower bucket across the whole board, so a completed four in a
// row always scores as decisive rather than merely good.
var segmentWeights = [WinLength + 1]float64{0, 1, 4, 16, 1000}

// EvaluateSegments scores a board by tallying every valid 4-slot segment.
// A segment free of opponent discs counts toward player under the number of
// player discs it holds; symmetrically, a segment free of player discs
// counts toward the opponent. The final score is player's weighted tally
// minus the opponent's.
//
// The two scans filter segments independently, so
// EvaluateSegments(p, b) == -EvaluateSegments(p.Opponent(), b) does not
// hold in general (an all-empty segment counts in bucket 0 for both sides).
// The double scan is deliberate and must not be collapsed into one pass
// that assumes antisymmetry.
func EvaluateSegments(player Slot, b *Board) float64 {
	opponent := player.Opponent()

	var counts, oppCounts [WinLength + 1]int
	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.cols; c++ {
			for _, d := range segmentDirections {
				if !b.segmentInBounds(r, c, d) {
					continue
				}
				mine, theirs := b.segmentTally(r, c, d, player, opponent)
				if theirs == 0 {
					counts[mine]++
				}
				if mine == 0 {
					oppCounts[theirs]++
				}
			}
		}
	}

	var reward, penalty float64
	for n, w := range segmentWeights {
		reward += float64(counts[n]) * w
		penalty += float64(oppCounts[n]) * w
	}
	return reward - penalty
}

// segmentTally counts player's and opponent's discs in the 4-cell run
// starting at (r, c) along d, which must be in bounds.
func (b *Board) segmentTally(r, c int, d direction, player, opponent Slot) (mine, theirs int) {
	for i := 0; i < WinLength; i++ {
		switch b.grid[(r+i*d.dr)*b.cols+(c+i*d.dc)] {
		case player:
			mine++
		case opponent:
			theirs++
		}
	}
	return mine, theirs
}
