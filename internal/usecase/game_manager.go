package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

var ErrBotRequired = errors.New("bot is required for this mode")

// Console - the terminal side of a session.
type Console interface {
	ShowBoard(board *entity.Board)
	ReadMove(ctx context.Context, mark entity.Cell) (entity.Move, error)
	ShowMessage(msg string)
	ShowResult(game *entity.Game)
}

type bot interface {
	MakeTurn(ctx context.Context, game *entity.Game) (entity.Move, error)
}

type GameManager struct {
	logger    *slog.Logger
	console   Console
	bot       bot
	humanMark entity.Cell
}

// NewGameManager - bot may be nil for human against human games.
func NewGameManager(logger *slog.Logger, console Console, bot bot, humanMark entity.Cell) *GameManager {
	if humanMark != entity.PlayerO {
		humanMark = entity.PlayerX
	}

	return &GameManager{
		logger:    logger.With("component", "game-manager"),
		console:   console,
		bot:       bot,
		humanMark: humanMark,
	}
}

func (that *GameManager) CreateGame(mode string, first entity.Cell) (*entity.Game, error) {
	if mode != entity.ModeHuman && that.bot == nil {
		return nil, fmt.Errorf("%w: %s", ErrBotRequired, mode)
	}

	game := entity.NewGame(uuid.NewString(), mode, first)

	that.logger.Info("game created", "game_id", game.ID, "mode", mode, "first", entity.Symbol(game.Turn))

	return game, nil
}

// IsHumanTurn - every turn is human in human mode; otherwise only the configured mark is.
func (that *GameManager) IsHumanTurn(game *entity.Game) bool {
	return game.Mode == entity.ModeHuman || game.Turn == that.humanMark
}

func (that *GameManager) PlayHuman(game *entity.Game, move entity.Move) error {
	if !that.IsHumanTurn(game) {
		return apperror.ErrNotYourTurn
	}

	if err := game.MakeTurn(game.Turn, move); err != nil {
		return fmt.Errorf("failed make turn: %w", err)
	}

	return nil
}

func (that *GameManager) PlayBot(ctx context.Context, game *entity.Game) (entity.Move, error) {
	if that.IsHumanTurn(game) {
		return entity.Move{}, apperror.ErrNotYourTurn
	}

	mark := game.Turn

	move, err := that.bot.MakeTurn(ctx, game)
	if err != nil {
		return entity.Move{}, fmt.Errorf("failed bot turn: %w", err)
	}

	that.logger.Debug("bot moved", "game_id", game.ID, "mark", entity.Symbol(mark), "move", move.String())

	return move, nil
}

// Run - drives the game until it is finished or the console gives up.
func (that *GameManager) Run(ctx context.Context, game *entity.Game) error {
	log := that.logger.With("method", "Run", "game_id", game.ID)

	for game.IsOngoing() {
		if err := ctx.Err(); err != nil {
			return err
		}

		if !that.IsHumanTurn(game) {
			mark := game.Turn

			move, err := that.PlayBot(ctx, game)
			if err != nil {
				return err
			}

			that.console.ShowMessage(fmt.Sprintf("Computer (%s) plays %d %d", entity.Symbol(mark), move.Row+1, move.Col+1))

			continue
		}

		that.console.ShowBoard(&game.Board)

		move, err := that.console.ReadMove(ctx, game.Turn)
		if errors.Is(err, apperror.ErrInvalidInput) {
			that.console.ShowMessage(err.Error())
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to read move: %w", err)
		}

		if err = that.PlayHuman(game, move); err != nil {
			if errors.Is(err, apperror.ErrCellOccupied) || errors.Is(err, apperror.ErrInvalidCell) {
				that.console.ShowMessage("Invalid move, try again.")
				continue
			}

			return err
		}
	}

	that.console.ShowBoard(&game.Board)
	that.console.ShowResult(game)

	log.Info("game finished", "winner", game.Winner)

	return nil
}
