package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// Console - line based terminal front end. Moves are entered as two 1-based numbers: "row col".
type Console struct {
	logger *slog.Logger
	reader *bufio.Scanner
	writer io.Writer

	once      sync.Once
	closeOnce sync.Once
	lines     chan string
	done      chan struct{}
	readErr   error
}

func New(logger *slog.Logger, in io.Reader, out io.Writer) *Console {
	return &Console{
		logger: logger.With("component", "console"),
		reader: bufio.NewScanner(in),
		writer: out,
		done:   make(chan struct{}),
	}
}

// Close - lets the input goroutine exit. It does not close the underlying reader.
func (that *Console) Close() {
	that.closeOnce.Do(func() {
		close(that.done)
	})
}

func (that *Console) ShowBoard(board *entity.Board) {
	that.printf("\n%s\n", board.String())
}

func (that *Console) ShowMessage(msg string) {
	that.printf("%s\n", msg)
}

func (that *Console) ShowResult(game *entity.Game) {
	switch {
	case game.IsTie():
		that.printf("It's a draw!\n")
	case game.Winner == entity.ResultX, game.Winner == entity.ResultO:
		that.printf("Player %s wins!\n", game.Winner)
	}
}

// ReadMove - prompts for one move. Malformed lines yield apperror.ErrInvalidInput, end of input io.EOF.
func (that *Console) ReadMove(ctx context.Context, mark entity.Cell) (entity.Move, error) {
	if err := ctx.Err(); err != nil {
		return entity.Move{}, err
	}

	that.printf("Player %s, enter row and column (1-%d): ", entity.Symbol(mark), entity.Size)

	that.once.Do(that.startReader)

	select {
	case <-ctx.Done():
		return entity.Move{}, ctx.Err()
	case line, ok := <-that.lines:
		if !ok {
			if that.readErr != nil {
				return entity.Move{}, fmt.Errorf("failed to read input: %w", that.readErr)
			}

			return entity.Move{}, io.EOF
		}

		that.logger.Debug("input", "line", line)

		return ParseMove(line)
	}
}

// startReader - a single goroutine owns the scanner so a pending read can be abandoned on cancel.
func (that *Console) startReader() {
	that.lines = make(chan string)

	go func() {
		defer close(that.lines)

		for that.reader.Scan() {
			select {
			case <-that.done:
				return
			default:
			}

			select {
			case that.lines <- that.reader.Text():
			case <-that.done:
				return
			}
		}

		that.readErr = that.reader.Err()
	}()
}

// ParseMove - converts "row col" (1-based, comma or space separated) into a 0-based move.
func ParseMove(line string) (entity.Move, error) {
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})
	if len(fields) != 2 {
		return entity.Move{}, fmt.Errorf("%w: expected two numbers, got %q", apperror.ErrInvalidInput, strings.TrimSpace(line))
	}

	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return entity.Move{}, fmt.Errorf("%w: row %q is not a number", apperror.ErrInvalidInput, fields[0])
	}

	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return entity.Move{}, fmt.Errorf("%w: column %q is not a number", apperror.ErrInvalidInput, fields[1])
	}

	return entity.Move{Row: row - 1, Col: col - 1}, nil
}

func (that *Console) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(that.writer, format, args...); err != nil {
		that.logger.Error("failed to write output", "error", err)
	}
}
