package searcher

/*
Shared strategy behavior:
- depth limit <= 0 -> no move (no expansion happens at the top level)
- full board -> no move
- empty 6x7 board, depth 1 -> center column (center sits in the most
  4-slot segments, so it strictly outscores the edges)
- ties at the top level -> first column encountered wins
*/

import (
	"testing"

	"github.com/stretchr/testify/require"

	"connectfour/game"
)

func testBoard(t *testing.T, rows, cols int) *game.Board {
	t.Helper()
	b, err := game.NewBoard(rows, cols)
	require.NoError(t, err)
	return b
}

func drop(t *testing.T, b *game.Board, player game.Slot, cols ...int) {
	t.Helper()
	for _, col := range cols {
		require.NoError(t, b.Place(player, col), "column %d should accept a disc", col)
	}
}

// fullDrawBoard returns a full 4x4 board with no winner.
func fullDrawBoard(t *testing.T) *game.Board {
	t.Helper()
	b := testBoard(t, 4, 4)
	layers := [][]game.Slot{
		{game.Player1, game.Player2, game.Player1, game.Player2},
		{game.Player1, game.Player2, game.Player1, game.Player2},
		{game.Player2, game.Player1, game.Player2, game.Player1},
		{game.Player2, game.Player1, game.Player2, game.Player1},
	}
	for _, layer := range layers {
		for c, player := range layer {
			drop(t, b, player, c)
		}
	}
	require.True(t, b.HasDraw(), "fixture must be a full drawn board")
	return b
}

func allStrategies(opts ...Option) []Strategy {
	return []Strategy{
		NewMinimax(opts...),
		NewAlphaBeta(opts...),
		NewExpectimax(opts...),
	}
}

func TestNew(t *testing.T) {
	for _, name := range []string{"minimax", "alphabeta", "expectimax"} {
		s, err := New(name)
		require.NoError(t, err)
		require.Equal(t, name, s.Name())
	}

	_, err := New("montecarlo")
	require.Error(t, err, "unknown strategy names should be rejected")
}

func TestChooseMoveDepthZero(t *testing.T) {
	b := testBoard(t, 6, 7)
	for _, s := range allStrategies() {
		_, ok := ChooseMove(s, game.Player1, b, 0)
		require.False(t, ok, "%s should return no move at depth 0", s.Name())
	}
}

func TestChooseMoveFullBoard(t *testing.T) {
	b := fullDrawBoard(t)
	for _, s := range allStrategies() {
		for _, player := range []game.Slot{game.Player1, game.Player2} {
			_, ok := ChooseMove(s, player, b, 3)
			require.False(t, ok, "%s should return no move on a full board", s.Name())
		}
	}
}

func TestChooseMovePrefersCenter(t *testing.T) {
	b := testBoard(t, 6, 7)
	for _, s := range allStrategies() {
		column, ok := ChooseMove(s, game.Player1, b, 1)
		require.True(t, ok)
		require.Equal(t, 3, column, "%s should open in the center column", s.Name())
	}
}

func TestChooseMoveTieBreak(t *testing.T) {
	// With a constant evaluation every successor ties, so the first legal
	// column must win and keep winning.
	flat := func(player game.Slot, b *game.Board) float64 { return 0 }

	t.Run("first column wins ties", func(t *testing.T) {
		b := testBoard(t, 6, 7)
		for _, s := range allStrategies(WithEvaluationFn(flat)) {
			column, ok := ChooseMove(s, game.Player1, b, 2)
			require.True(t, ok)
			require.Equal(t, 0, column, "%s should keep the first tied column", s.Name())
		}
	})

	t.Run("skips full leading column", func(t *testing.T) {
		b := testBoard(t, 2, 4)
		drop(t, b, game.Player1, 0)
		drop(t, b, game.Player2, 0)
		for _, s := range allStrategies(WithEvaluationFn(flat)) {
			column, ok := ChooseMove(s, game.Player1, b, 1)
			require.True(t, ok)
			require.Equal(t, 1, column, "%s should pick the first placeable column", s.Name())
		}
	})
}

func TestChooseMoveTakesImmediateWin(t *testing.T) {
	// Player1 has three in the bottom row; completing at column 3 is the
	// only decisive move at depth 1.
	for _, s := range allStrategies() {
		b := testBoard(t, 6, 7)
		drop(t, b, game.Player1, 0, 1, 2)
		drop(t, b, game.Player2, 0, 1)

		column, ok := ChooseMove(s, game.Player1, b, 1)
		require.True(t, ok)
		require.Equal(t, 3, column, "%s should complete four in a row", s.Name())
	}
}

func TestMinimaxAndAlphaBetaBlockThreat(t *testing.T) {
	// Player1 threatens to win at column 3. At depth 2 an adversarial
	// searcher for Player2 must block; anything else loses on the spot.
	// Expectimax is excluded: a random adversary model may gamble instead.
	for _, s := range []Strategy{NewMinimax(), NewAlphaBeta()} {
		b := testBoard(t, 6, 7)
		drop(t, b, game.Player1, 0, 1, 2)
		drop(t, b, game.Player2, 0, 1)

		column, ok := ChooseMove(s, game.Player2, b, 2)
		require.True(t, ok)
		require.Equal(t, 3, column, "%s should block the open three", s.Name())
	}
}
