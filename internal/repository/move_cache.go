package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

var ErrMoveNotCached = errors.New("move not cached")

// MoveCache - remembers search results per (mark, board) so repeated positions skip the search.
type MoveCache interface {
	Save(ctx context.Context, mark entity.Cell, board *entity.Board, move entity.Move) error
	Get(ctx context.Context, mark entity.Cell, board *entity.Board) (entity.Move, error)
	Delete(ctx context.Context, mark entity.Cell, board *entity.Board) error
}

type dbMoveCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewMoveCache(client *redis.Client, ttl time.Duration) MoveCache {
	return &dbMoveCache{
		client: client,
		ttl:    ttl,
	}
}

func moveKey(mark entity.Cell, board *entity.Board) string {
	return "move:" + entity.Symbol(mark) + ":" + board.Key()
}

func (that *dbMoveCache) Save(ctx context.Context, mark entity.Cell, board *entity.Board, move entity.Move) error {
	moveJSON, err := json.Marshal(move)
	if err != nil {
		return fmt.Errorf("could not marshal move: %w", err)
	}

	err = that.client.Set(ctx, moveKey(mark, board), moveJSON, that.ttl).Err()
	if err != nil {
		return fmt.Errorf("failed to set move: %w", err)
	}

	return nil
}

func (that *dbMoveCache) Get(ctx context.Context, mark entity.Cell, board *entity.Board) (entity.Move, error) {
	response, err := that.client.Get(ctx, moveKey(mark, board)).Result()

	if errors.Is(err, redis.Nil) {
		return entity.Move{}, ErrMoveNotCached
	}

	if err != nil {
		return entity.Move{}, fmt.Errorf("failed to get move: %w", err)
	}

	var move entity.Move
	if err = json.Unmarshal([]byte(response), &move); err != nil {
		return entity.Move{}, fmt.Errorf("failed to unmarshal move: %w", err)
	}

	return move, nil
}

func (that *dbMoveCache) Delete(ctx context.Context, mark entity.Cell, board *entity.Board) error {
	if err := that.client.Del(ctx, moveKey(mark, board)).Err(); err != nil {
		return fmt.Errorf("failed to delete move: %w", err)
	}

	return nil
}
