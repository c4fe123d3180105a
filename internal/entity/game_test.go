package entity

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGame(t *testing.T) {
	t.Run("X moves first by default", func(t *testing.T) {
		game := NewGame("123", ModeOptimal, Empty)

		assert.Equal(t, PlayerX, game.Turn)
		assert.Equal(t, StatusOngoing, game.Status)
		assert.Equal(t, NewBoard(), game.Board)
	})

	t.Run("O can move first", func(t *testing.T) {
		game := NewGame("123", ModeHuman, PlayerO)

		assert.Equal(t, PlayerO, game.Turn)
	})
}

func TestGameStatusMethods(t *testing.T) {
	t.Run("IsFinished returns true when game status is finished", func(t *testing.T) {
		// Given: a game with StatusFinished
		game := &Game{Status: StatusFinished}

		// Then: it is finished and not ongoing
		assert.True(t, game.IsFinished())
		assert.False(t, game.IsOngoing())
	})

	t.Run("IsTie returns true only for a tie", func(t *testing.T) {
		assert.True(t, (&Game{Winner: ResultTie}).IsTie())
		assert.False(t, (&Game{Winner: ResultX}).IsTie())
	})
}

func TestGame_DetermineGameResult(t *testing.T) {
	t.Run("Returns X when Player X wins", func(t *testing.T) {
		// Given: a game where Player X has a winning combination
		game := &Game{Board: mustParse(t, "XXX OO. ...")}

		// When: determining the game result
		result := game.DetermineGameResult()

		// Then: it should return X as the winner
		assert.Equal(t, ResultX, result)
	})

	t.Run("Returns tie when the board is full without a line", func(t *testing.T) {
		game := &Game{Board: mustParse(t, "XOX XOO OXX")}

		assert.Equal(t, ResultTie, game.DetermineGameResult())
	})

	t.Run("Returns empty string when the game is ongoing", func(t *testing.T) {
		game := &Game{Board: mustParse(t, "XO. .X. ..O")}

		assert.Equal(t, "", game.DetermineGameResult())
	})
}

func TestGame_MakeTurn(t *testing.T) {
	t.Run("Successful Turn", func(t *testing.T) {
		// Given: a new game
		game := NewGame("123", ModeHuman, PlayerX)

		// When: Player X makes a valid turn
		err := game.MakeTurn(PlayerX, Move{Row: 0, Col: 0})
		require.NoError(t, err)

		// Then: the board reflects the turn and the turn switches
		expected := &Game{
			ID:     "123",
			Board:  mustParse(t, "X.. ... ..."),
			Turn:   PlayerO,
			Status: StatusOngoing,
			Mode:   ModeHuman,
		}

		require.Equal(t, expected, game)
	})

	t.Run("Error on Cell Already Occupied", func(t *testing.T) {
		// Given: a game where (0,0) is taken by X
		game := NewGame("123", ModeHuman, PlayerX)
		require.NoError(t, game.MakeTurn(PlayerX, Move{Row: 0, Col: 0}))

		// When: Player O moves to the same cell
		err := game.MakeTurn(PlayerO, Move{Row: 0, Col: 0})

		// Then: ErrCellOccupied is returned and it is still O's turn
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Equal(t, PlayerO, game.Turn)
		assert.Equal(t, 1, game.Board.OccupiedCount())
	})

	t.Run("Error on Playing Out of Turn", func(t *testing.T) {
		game := NewGame("123", ModeHuman, PlayerX)

		err := game.MakeTurn(PlayerO, Move{Row: 1, Col: 1})

		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
		assert.Equal(t, NewBoard(), game.Board)
	})

	t.Run("Error on Invalid Cell", func(t *testing.T) {
		game := NewGame("123", ModeHuman, PlayerX)

		err := game.MakeTurn(PlayerX, Move{Row: 3, Col: 0})
		require.ErrorIs(t, err, apperror.ErrInvalidCell)

		err = game.MakeTurn(PlayerX, Move{Row: 0, Col: -1})
		require.ErrorIs(t, err, apperror.ErrInvalidCell)
	})

	t.Run("Winning turn finishes the game", func(t *testing.T) {
		// Given: X is one move from completing the top row
		game := NewGame("123", ModeHuman, PlayerX)
		game.Board = mustParse(t, "XX. OO. ...")

		// When: X completes the row
		err := game.MakeTurn(PlayerX, Move{Row: 0, Col: 2})
		require.NoError(t, err)

		// Then: the game is finished with X as the winner
		assert.Equal(t, StatusFinished, game.Status)
		assert.Equal(t, ResultX, game.Winner)
		assert.Equal(t, Empty, game.Turn)
	})

	t.Run("Move After Game Finished", func(t *testing.T) {
		game := &Game{Board: mustParse(t, "XXX .O. .O."), Status: StatusFinished, Winner: ResultX}

		err := game.MakeTurn(PlayerO, Move{Row: 1, Col: 0})

		assert.ErrorIs(t, err, apperror.ErrGameFinished)
	})
}
