package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

var ErrUnknownStrategy = errors.New("unknown bot strategy")

type BotService interface {
	ChooseMove(ctx context.Context, board *entity.Board, mark entity.Cell) (entity.Move, error)
	MakeTurn(ctx context.Context, game *entity.Game) (entity.Move, error)
}

// Random - source of uniform choices, replaceable in tests.
type Random interface {
	Intn(n int) int
}

type mathRandom struct{}

func (mathRandom) Intn(n int) int {
	return rand.Intn(n) //nolint: gosec // it's ok
}

type moveCache interface {
	Save(ctx context.Context, mark entity.Cell, board *entity.Board, move entity.Move) error
	Get(ctx context.Context, mark entity.Cell, board *entity.Board) (entity.Move, error)
	Delete(ctx context.Context, mark entity.Cell, board *entity.Board) error
}

type randomBot struct {
	random Random
}

// NewRandomBot - picks uniformly among the empty cells. A nil random uses math/rand.
func NewRandomBot(random Random) BotService {
	if random == nil {
		random = mathRandom{}
	}

	return &randomBot{random: random}
}

func (that *randomBot) ChooseMove(_ context.Context, board *entity.Board, _ entity.Cell) (entity.Move, error) {
	availableCells := board.EmptyCells()
	if len(availableCells) == 0 {
		return entity.Move{}, apperror.ErrNoAvailableMoves
	}

	return availableCells[that.random.Intn(len(availableCells))], nil
}

func (that *randomBot) MakeTurn(ctx context.Context, game *entity.Game) (entity.Move, error) {
	return makeTurn(ctx, that, game)
}

type optimalBot struct {
	logger *slog.Logger
	cache  moveCache
}

// NewOptimalBot - minimax player. cache may be nil.
func NewOptimalBot(logger *slog.Logger, cache moveCache) BotService {
	return &optimalBot{
		logger: logger.With("component", "optimal-bot"),
		cache:  cache,
	}
}

func (that *optimalBot) ChooseMove(ctx context.Context, board *entity.Board, mark entity.Cell) (entity.Move, error) {
	log := that.logger.With("method", "ChooseMove", "board", board.Key(), "mark", entity.Symbol(mark))

	if that.cache != nil {
		move, err := that.cache.Get(ctx, mark, board)
		switch {
		case err == nil && move.InRange() && board.At(move.Row, move.Col) == entity.Empty:
			log.Debug("cache hit", "move", move.String())
			return move, nil
		case err == nil:
			log.Warn("dropping stale cached move", "move", move.String())

			if err = that.cache.Delete(ctx, mark, board); err != nil {
				log.Warn("could not drop cached move", "error", err)
			}
		case !errors.Is(err, repository.ErrMoveNotCached):
			log.Warn("move cache unavailable", "error", err)
		}
	}

	move, ok := tictactoe.NewSearcher(mark).FindBestMove(board)
	if !ok {
		return entity.Move{}, apperror.ErrNoAvailableMoves
	}

	log.Debug("search finished", "move", move.String())

	if that.cache != nil {
		if err := that.cache.Save(ctx, mark, board, move); err != nil {
			log.Warn("could not cache move", "error", err)
		}
	}

	return move, nil
}

func (that *optimalBot) MakeTurn(ctx context.Context, game *entity.Game) (entity.Move, error) {
	return makeTurn(ctx, that, game)
}

// NewBotService - builds the bot for a game mode.
func NewBotService(logger *slog.Logger, mode string, random Random, cache moveCache) (BotService, error) {
	switch mode {
	case entity.ModeRandom:
		return NewRandomBot(random), nil
	case entity.ModeOptimal:
		return NewOptimalBot(logger, cache), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownStrategy, mode)
	}
}

func makeTurn(ctx context.Context, bot BotService, game *entity.Game) (entity.Move, error) {
	if game.IsFinished() {
		return entity.Move{}, apperror.ErrGameFinished
	}

	move, err := bot.ChooseMove(ctx, &game.Board, game.Turn)
	if err != nil {
		return entity.Move{}, err
	}

	if err = game.MakeTurn(game.Turn, move); err != nil {
		return entity.Move{}, fmt.Errorf("bot failed to make turn: %w", err)
	}

	return move, nil
}
