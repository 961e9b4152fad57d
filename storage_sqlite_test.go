package infoagent_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	infoagent "github.com/muhammadjavediqbal/info-agent-langraph"
)

func TestSQLiteStorage(t *testing.T) {
	storage, err := infoagent.NewSQLiteStorage(filepath.Join(t.TempDir(), "exchanges.db"))
	require.NoError(t, err)
	defer storage.Close()

	ctx := context.Background()

	t.Run("SaveExchange", func(t *testing.T) {
		require.NoError(t, storage.SaveExchange(ctx, "session-a", "What is 2+2?", "2+2 = 4"))
		require.NoError(t, storage.SaveExchange(ctx, "session-a", "And 3+3?", "3+3 = 6"))
		require.NoError(t, storage.SaveExchange(ctx, "session-b", "Weather in London?", "Partly cloudy"))
	})

	t.Run("History", func(t *testing.T) {
		history, err := storage.History(ctx, "session-a", 10)
		require.NoError(t, err)
		require.Len(t, history, 2)
		for _, exchange := range history {
			assert.NotEmpty(t, exchange.ID)
			assert.Equal(t, "session-a", exchange.SessionID)
			assert.False(t, exchange.CreatedAt.IsZero())
		}
	})

	t.Run("HistoryRespectsLimit", func(t *testing.T) {
		history, err := storage.History(ctx, "session-a", 1)
		require.NoError(t, err)
		assert.Len(t, history, 1)
	})

	t.Run("HistoryUnknownSession", func(t *testing.T) {
		history, err := storage.History(ctx, "session-missing", 10)
		require.NoError(t, err)
		assert.Empty(t, history)
	})
}
