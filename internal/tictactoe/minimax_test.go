package tictactoe

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, s string) entity.Board {
	t.Helper()

	board, err := entity.ParseBoard(s)
	require.NoError(t, err)

	return board
}

func TestEvaluate(t *testing.T) {
	searcher := NewSearcher(entity.PlayerO)

	won := parse(t, "OOO XX. X..")
	lost := parse(t, "XXX OO. O..")
	open := parse(t, "XO. ... ...")
	drawn := parse(t, "XOX XOO OXX")

	assert.Equal(t, WinScore, searcher.Evaluate(&won))
	assert.Equal(t, LossScore, searcher.Evaluate(&lost))
	assert.Equal(t, DrawScore, searcher.Evaluate(&open))
	assert.Equal(t, DrawScore, searcher.Evaluate(&drawn))
}

func TestMinimax(t *testing.T) {
	t.Run("Empty board is a draw under optimal play", func(t *testing.T) {
		board := entity.NewBoard()

		assert.Equal(t, DrawScore, Minimax(&board, true))
		assert.Equal(t, DrawScore, Minimax(&board, false))
		assert.Equal(t, entity.NewBoard(), board)
	})

	t.Run("Terminal board scores without recursing", func(t *testing.T) {
		// Given: X already won but empty cells remain
		board := parse(t, "XXX OO. ...")

		// Then: the static score is returned for either side to move
		assert.Equal(t, LossScore, Minimax(&board, true))
		assert.Equal(t, LossScore, Minimax(&board, false))
	})

	t.Run("Immediate win available to the maximizer", func(t *testing.T) {
		board := parse(t, "OO. XX. X..")

		assert.Equal(t, WinScore, Minimax(&board, true))
	})
}

func TestFindBestMove(t *testing.T) {
	tests := []struct {
		name  string
		board string
		want  entity.Move
	}{
		{
			name:  "Blocks the diagonal",
			board: "X.. .X. O..",
			want:  entity.Move{Row: 2, Col: 2},
		},
		{
			name:  "Takes the win",
			board: "OO. XX. X..",
			want:  entity.Move{Row: 0, Col: 2},
		},
		{
			name:  "Takes the center against a corner opening",
			board: "X.. ... ...",
			want:  entity.Move{Row: 1, Col: 1},
		},
		{
			name:  "Only one empty cell",
			board: "XOX OXO OX.",
			want:  entity.Move{Row: 2, Col: 2},
		},
		{
			name:  "Empty board keeps the first of equal moves",
			board: "... ... ...",
			want:  entity.Move{Row: 0, Col: 0},
		},
		{
			// Two X marks on the diagonal with no O reply is a forced loss:
			// every move scores -10 and row-major order picks the first.
			name:  "Lost position keeps the first of equal moves",
			board: "X.. .X. ...",
			want:  entity.Move{Row: 0, Col: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Given: a board with O to move
			board := parse(t, tt.board)
			before := board

			// When: looking for the best move
			move, ok := FindBestMove(&board)

			// Then: the expected move is returned and the board is untouched
			require.True(t, ok)
			assert.Equal(t, tt.want, move)
			assert.Equal(t, before, board)
		})
	}
}

func TestFindBestMove_FullBoard(t *testing.T) {
	board := parse(t, "XOX XOO OXX")

	_, ok := FindBestMove(&board)

	assert.False(t, ok)
}

func TestFindBestMove_Deterministic(t *testing.T) {
	board := parse(t, ".X. ... ...")

	first, ok := FindBestMove(&board)
	require.True(t, ok)

	for range 5 {
		move, ok := FindBestMove(&board)
		require.True(t, ok)
		assert.Equal(t, first, move)
	}
}

func TestSearcher_PlaysX(t *testing.T) {
	// Given: O threatens the main diagonal and X is to move
	board := parse(t, "O.. .O. ..X")

	// When: searching for X
	move, ok := NewSearcher(entity.PlayerX).FindBestMove(&board)

	// Then: X takes the first non-losing reply
	require.True(t, ok)
	assert.Equal(t, entity.Move{Row: 0, Col: 2}, move)
}

func TestSelfPlay_EndsInDraw(t *testing.T) {
	for _, first := range []entity.Cell{entity.PlayerX, entity.PlayerO} {
		// Given: two optimal players on an empty board
		board := entity.NewBoard()
		searchers := map[entity.Cell]*Searcher{
			entity.PlayerX: NewSearcher(entity.PlayerX),
			entity.PlayerO: NewSearcher(entity.PlayerO),
		}

		// When: they alternate until the game ends
		turn := first
		for {
			if _, won := board.Winner(); won || board.IsFull() {
				break
			}

			move, ok := searchers[turn].FindBestMove(&board)
			require.True(t, ok)
			require.True(t, board.Place(move.Row, move.Col, turn))

			turn = entity.Opponent(turn)
		}

		// Then: nobody wins
		_, won := board.Winner()
		assert.False(t, won, "first=%s board:\n%s", entity.Symbol(first), board.String())
		assert.True(t, board.IsFull())
	}
}

func TestSpeculate_RestoresOnPanic(t *testing.T) {
	// Given: a board and a search step that aborts
	board := parse(t, "X.. ... ...")
	before := board

	// When: the step panics while a mark is placed
	func() {
		defer func() { _ = recover() }()

		speculate(&board, entity.Move{Row: 1, Col: 1}, entity.PlayerO, func() int {
			panic("aborted")
		})
	}()

	// Then: the speculative mark is gone
	assert.Equal(t, before, board)
}
