package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-engine/internal/service"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-engine/transport/console"
)

// RunApp - plays one game on the terminal.
func RunApp(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	humanMark, err := entity.ParseCell(conf.Game.HumanMark)
	if err != nil {
		return fmt.Errorf("invalid human mark: %w", err)
	}

	first, err := entity.ParseCell(conf.Game.First)
	if err != nil {
		return fmt.Errorf("invalid first mark: %w", err)
	}

	bot, closeBot, err := NewBot(ctx, logger, conf)
	if err != nil {
		return err
	}
	defer closeBot()

	term := console.New(logger, in, out)
	defer term.Close()

	manager := usecase.NewGameManager(logger, term, bot, humanMark)

	game, err := manager.CreateGame(conf.Game.Mode, first)
	if err != nil {
		return fmt.Errorf("could not create game: %w", err)
	}

	if err = manager.Run(ctx, game); err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, io.EOF) {
			log.Info("game abandoned", "game_id", game.ID)
			return nil
		}

		return fmt.Errorf("game failed: %w", err)
	}

	return nil
}

// NewBot - the bot for conf.Game.Mode, or nil in human mode. The returned func releases the cache connection.
func NewBot(ctx context.Context, logger *slog.Logger, conf *config.Config) (service.BotService, func(), error) {
	log := logger.With("component", "app")
	noop := func() {}

	if conf.Game.Mode == entity.ModeHuman {
		return nil, noop, nil
	}

	var cache repository.MoveCache
	closeFn := noop

	if conf.Game.Mode == entity.ModeOptimal && conf.Cache.Enabled {
		redisStorage, err := storage.NewRedisStorage(ctx, conf.Redis.GetRedisAddr())
		if err != nil {
			log.Warn("move cache disabled, could not connect to redis storage", "error", err)
		} else {
			cache = repository.NewMoveCache(redisStorage.Connection, conf.Cache.TTL)
			closeFn = func() {
				if err := redisStorage.Close(); err != nil {
					log.Error("could not close redis storage", "error", err)
				}
			}
		}
	}

	bot, err := service.NewBotService(logger, conf.Game.Mode, nil, cache)
	if err != nil {
		closeFn()
		return nil, noop, fmt.Errorf("could not create bot: %w", err)
	}

	return bot, closeFn, nil
}
