package ingest

import (
	"context"
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/angelmondragon/orderflow-etl/pkg/config"
	"github.com/angelmondragon/orderflow-etl/pkg/db"
	"github.com/angelmondragon/orderflow-etl/pkg/logger"
	"github.com/angelmondragon/orderflow-etl/pkg/migrate"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
}

// newTestClient opens a throwaway destination store with the full schema
// applied, the same way a real run boots.
func newTestClient(t *testing.T) *db.Client {
	t.Helper()

	cfg := config.DBConfig{
		Path:         filepath.Join(t.TempDir(), "orders.db"),
		BusyTimeout:  5 * time.Second,
		JournalMode:  "WAL",
		Synchronous:  "NORMAL",
		MaxOpenConns: 1,
		MaxIdleConns: 1,
	}

	logg := testLogger()
	client, err := db.New(context.Background(), cfg, logg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	require.NoError(t, migrate.AutoRun(context.Background(), logg, client))
	return client
}

func countRows(t *testing.T, client *db.Client, table string) int64 {
	t.Helper()
	var count int64
	require.NoError(t, client.DB().Table(table).Count(&count).Error)
	return count
}
