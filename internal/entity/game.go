package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"

	ResultX   = "X"
	ResultO   = "O"
	ResultTie = "-"
)

const (
	ModeHuman   = "human"
	ModeRandom  = "random"
	ModeOptimal = "optimal"
)

// Game - one session on a single board. Unlike Board it enforces turn order.
type Game struct {
	ID     string
	Board  Board
	Turn   Cell
	Winner string
	Status string
	Mode   string
}

func NewGame(id, mode string, first Cell) *Game {
	if first != PlayerO {
		first = PlayerX
	}

	return &Game{
		ID:     id,
		Board:  NewBoard(),
		Turn:   first,
		Status: StatusOngoing,
		Mode:   mode,
	}
}

// DetermineGameResult - "X" or "O" for a winner, "-" for a tie, "" while the game goes on.
func (that *Game) DetermineGameResult() string {
	if winner, ok := that.Board.Winner(); ok {
		return Symbol(winner)
	}

	if that.Board.IsFull() {
		return ResultTie
	}

	return ""
}

func (that *Game) UpdateGameState() {
	switch result := that.DetermineGameResult(); result {
	case ResultX, ResultO, ResultTie:
		that.Winner = result
		that.Status = StatusFinished
		that.Turn = Empty
	default:
		that.Status = StatusOngoing
	}
}

func (that *Game) MakeTurn(mark Cell, move Move) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if that.Turn != mark {
		return apperror.ErrNotYourTurn
	}

	if !move.InRange() {
		return fmt.Errorf("%w: %s", apperror.ErrInvalidCell, move)
	}

	if !that.Board.Place(move.Row, move.Col, mark) {
		return apperror.ErrCellOccupied
	}

	that.Turn = Opponent(mark)

	that.UpdateGameState()

	return nil
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsTie() bool {
	return that.Winner == ResultTie
}
