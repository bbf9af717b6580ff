package searcher

/*
AlphaBeta must be indistinguishable from Minimax on results: pruning skips
only subtrees that provably cannot change the outcome. Checked across an
empty board, shallow openings and a near-full endgame, for both starting
players and every depth small enough to search exhaustively.
*/

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"connectfour/experiments/metrics"
	"connectfour/game"
)

func TestAlphaBetaMatchesMinimax(t *testing.T) {
	boards := map[string]func(t *testing.T) *game.Board{
		"empty board": func(t *testing.T) *game.Board {
			return testBoard(t, 6, 7)
		},
		"one ply played": func(t *testing.T) *game.Board {
			b := testBoard(t, 6, 7)
			drop(t, b, game.Player1, 3)
			return b
		},
		"two plies played": func(t *testing.T) *game.Board {
			b := testBoard(t, 6, 7)
			drop(t, b, game.Player1, 3)
			drop(t, b, game.Player2, 2)
			return b
		},
		"near-full board": nearFullBoard,
	}

	minimax := NewMinimax()
	alphabeta := NewAlphaBeta()

	for name, build := range boards {
		for _, player := range []game.Slot{game.Player1, game.Player2} {
			for depth := 1; depth <= 4; depth++ {
				t.Run(fmt.Sprintf("%s/player %v/depth %d", name, player, depth), func(t *testing.T) {
					b := build(t)

					wantCol, wantScore, wantOK := minimax.search(player, b, depth)
					gotCol, gotScore, gotOK := alphabeta.search(player, b, depth)

					require.Equal(t, wantOK, gotOK)
					require.Equal(t, wantCol, gotCol, "pruning must not change the chosen column")
					require.Equal(t, wantScore, gotScore, "pruning must not change the best score")
				})
			}
		}
	}
}

// nearFullBoard is the drawn 4x4 pattern with the top two cells of column 3
// still open.
func nearFullBoard(t *testing.T) *game.Board {
	t.Helper()
	b := testBoard(t, 4, 4)
	layers := [][]game.Slot{
		{game.Player1, game.Player2, game.Player1, game.Player2},
		{game.Player1, game.Player2, game.Player1, game.Player2},
		{game.Player2, game.Player1, game.Player2, game.Player1},
		{game.Player2, game.Player1, game.Player2, game.Player1},
	}
	for r, layer := range layers {
		for c, player := range layer {
			if c == 3 && r >= 2 {
				continue
			}
			drop(t, b, player, c)
		}
	}
	require.False(t, b.Terminal(), "fixture must still be playable")
	return b
}

func TestAlphaBetaPrunes(t *testing.T) {
	collectorAB := metrics.NewCollector()
	alphabeta := NewAlphaBeta(WithCollector(collectorAB))
	collectorMM := metrics.NewCollector()
	minimax := NewMinimax(WithCollector(collectorMM))

	b := testBoard(t, 6, 7)
	_, ok := alphabeta.FindMove(game.Player1, b, 3)
	require.True(t, ok)
	abMetric := collectorAB.Complete()

	_, ok = minimax.FindMove(game.Player1, b, 3)
	require.True(t, ok)
	mmMetric := collectorMM.Complete()

	require.Positive(t, abMetric.Cutoffs, "depth 3 search should hit at least one cutoff")
	require.Less(t, abMetric.Leaves, mmMetric.Leaves, "pruning should evaluate fewer leaves")
	require.Zero(t, mmMetric.Cutoffs, "minimax never cuts off")
}
