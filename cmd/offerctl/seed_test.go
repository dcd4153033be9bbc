package main

import (
	"context"
	"path/filepath"
	"testing"

	"offer_agent/internal/adapter/persistence"
	"offer_agent/internal/config"
	"offer_agent/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeed_SQLite(t *testing.T) {
	ctx := context.Background()
	repos, err := persistence.Open(ctx, config.Config{
		StorageDriver: config.StorageSQLite,
		SQLitePath:    filepath.Join(t.TempDir(), "seed.db"),
	})
	require.NoError(t, err)
	defer repos.Close()
	require.NoError(t, repos.Migrate(ctx))

	summary, err := Seed(ctx, repos)
	require.NoError(t, err)
	require.Len(t, summary, 5)
	assert.Equal(t, SeedRow{Table: "payments", Rows: 6}, summary[4])

	james, err := repos.Users.GetByEmail(ctx, "james.davis@example.com")
	require.NoError(t, err)
	subs, err := repos.Subscriptions.ListByUserID(ctx, james.ID)
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, entities.SubscriptionStatusActive, subs[0].Status)

	pending, err := repos.Payments.GetBySessionID(ctx, "cs_mock_offer4_pending")
	require.NoError(t, err)
	assert.Equal(t, entities.PaymentStatusPending, pending.Status)
	assert.Nil(t, pending.PaidAt)

	prop, err := repos.Properties.GetBySourceURL(ctx, "https://www.redfin.com/TX/Houston/456-Oak-Ave-77002/12345678")
	require.NoError(t, err)
	assert.Equal(t, "condo", prop.PropertyType)

	require.NoError(t, repos.Reset(ctx))
	_, err = Seed(ctx, repos)
	require.NoError(t, err, "seeding after a reset must not hit unique constraints")
}
