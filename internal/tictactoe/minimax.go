package tictactoe

import (
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const (
	WinScore  = 10
	LossScore = -WinScore
	DrawScore = 0
)

// Searcher - exhaustive minimax for one side. The board it is given is used as scratch
// space and is always restored before a call returns.
type Searcher struct {
	max entity.Cell
	min entity.Cell
}

// NewSearcher - a searcher that maximizes for mark.
func NewSearcher(mark entity.Cell) *Searcher {
	return &Searcher{
		max: mark,
		min: entity.Opponent(mark),
	}
}

// FindBestMove - optimal move for PlayerO, the computer side by convention.
func FindBestMove(board *entity.Board) (entity.Move, bool) {
	return NewSearcher(entity.PlayerO).FindBestMove(board)
}

// Minimax - score of board for PlayerO with the given side to move.
func Minimax(board *entity.Board, maximizing bool) int {
	return NewSearcher(entity.PlayerO).Minimax(board, maximizing)
}

// Evaluate - static score: +10 when the maximizing side has a line, -10 for the opponent, 0 otherwise.
func (that *Searcher) Evaluate(board *entity.Board) int {
	winner, ok := board.Winner()
	if !ok {
		return DrawScore
	}

	if winner == that.max {
		return WinScore
	}

	return LossScore
}

func (that *Searcher) Minimax(board *entity.Board, maximizing bool) int {
	if _, ok := board.Winner(); ok {
		return that.Evaluate(board)
	}

	if board.IsFull() {
		return DrawScore
	}

	mark, best := that.min, WinScore+1
	if maximizing {
		mark, best = that.max, LossScore-1
	}

	for _, move := range board.EmptyCells() {
		score := speculate(board, move, mark, func() int {
			return that.Minimax(board, !maximizing)
		})

		if maximizing {
			best = max(best, score)
		} else {
			best = min(best, score)
		}
	}

	return best
}

// FindBestMove - first move in row-major order with the strictly greatest score.
// Returns false when the board has no empty cells.
func (that *Searcher) FindBestMove(board *entity.Board) (entity.Move, bool) {
	var (
		bestMove  entity.Move
		bestScore = LossScore - 1
		found     bool
	)

	for _, move := range board.EmptyCells() {
		score := speculate(board, move, that.max, func() int {
			return that.Minimax(board, false)
		})

		if score > bestScore {
			bestScore = score
			bestMove = move
			found = true
		}
	}

	return bestMove, found
}

// speculate - places mark, runs fn and removes the mark again on every exit path.
func speculate(board *entity.Board, move entity.Move, mark entity.Cell, fn func() int) int {
	if !board.Place(move.Row, move.Col, mark) {
		panic("tictactoe: speculative move on occupied cell " + move.String())
	}
	defer board.Remove(move.Row, move.Col)

	return fn()
}
