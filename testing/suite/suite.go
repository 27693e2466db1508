package suite

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/rocketscienceinc/gameai/internal/entity"
)

const maxWaitDuration = 60 * time.Second

type Suite struct {
	*testing.T
	Logger *slog.Logger
}

// New returns a context bounded by maxWaitDuration and a logger. Set TEST_LOG=1 to see engine logs.
func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	handler := slog.DiscardHandler
	if os.Getenv("TEST_LOG") != "" {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	}

	return ctx, &Suite{
		T:      t,
		Logger: slog.New(handler),
	}
}

// ParseBoard builds a board from rows of marks where '.' is an empty cell.
func ParseBoard(rows ...string) entity.Board {
	board := make(entity.Board, len(rows))
	for i, row := range rows {
		board[i] = make([]string, len(row))
		for j, cell := range row {
			if cell != '.' {
				board[i][j] = string(cell)
			}
		}
	}

	return board
}
