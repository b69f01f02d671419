package seed

import (
	"context"
	"testing"
	"time"

	"assettrack/internal/core/config"
	"assettrack/internal/core/container"
	"assettrack/internal/core/metrics"
	"assettrack/internal/repository"
	"assettrack/internal/repository/testdb"
	"assettrack/pkg/metadata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRunSeedsOnce(t *testing.T) {
	ctx := context.Background()
	cfg := &config.Config{JWTSecret: "secret", JWTExpiration: time.Hour, LoginRateLimit: 10, LoginRateWindow: time.Minute}
	c := container.NewAppContainer(cfg, testdb.New(t).DB, repository.DialectSQLite, zap.NewNop(), metrics.New())
	t.Cleanup(c.Close)

	account := AdminAccount{Username: "admin", Password: "admin123", Email: "admin@example.com", FullName: "Administrator"}

	summary, err := Run(ctx, c, account, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, Summary{AdminCreated: true, Departments: 6, Users: 4, Assets: 5}, summary)

	macbook, err := c.AssetService.Get(ctx, "IT-001")
	require.NoError(t, err)
	assert.Equal(t, "Alice Johnson", macbook.AssignedUserName)
	require.Len(t, macbook.History, 1)
	assert.Equal(t, "Asset created", macbook.History[0].Notes)

	inStorage, err := c.AssetService.ListByStatus(ctx, metadata.StatusInStorage)
	require.NoError(t, err)
	assert.Len(t, inStorage, 1)

	again, err := Run(ctx, c, account, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, Summary{}, again)
}
