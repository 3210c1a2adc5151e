package service

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	activitydomain "github.com/thelightspeed/crm/internal/activity/domain"
	contactdomain "github.com/thelightspeed/crm/internal/contact/domain"
	"github.com/thelightspeed/crm/internal/dashboard/domain"
	"github.com/thelightspeed/crm/internal/dashboard/repository"
	"github.com/thelightspeed/crm/internal/migration"
	opportunitydomain "github.com/thelightspeed/crm/internal/opportunity/domain"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) (domain.Service, *gorm.DB, *snowflake.Node) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, migration.AutoMigrate(db))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	svc := New(Params{
		DB:   db,
		Log:  zap.NewNop(),
		Repo: repository.Provide(),
	})
	return svc, db, node
}

func TestSummary_EmptyDatabase(t *testing.T) {
	svc, _, _ := newTestService(t)

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)

	assert.Zero(t, summary.ContactCount)
	assert.Zero(t, summary.OpportunityCount)
	assert.Zero(t, summary.PipelineValueCents)
	assert.Empty(t, summary.RecentActivities)
	for _, state := range opportunitydomain.States() {
		count, ok := summary.CountsByState[state]
		assert.True(t, ok, "state %s present even when empty", state)
		assert.Zero(t, count)
	}
}

func TestSummary_AggregatesAndExcludesLost(t *testing.T) {
	svc, db, node := newTestService(t)

	contact := contactdomain.Contact{
		ID:        node.Generate(),
		Name:      "Jane Doe",
		Email:     "jane@acme.com",
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	require.NoError(t, db.Create(&contact).Error)

	opportunities := []struct {
		state string
		cents int64
	}{
		{opportunitydomain.StateNew, 100000},
		{opportunitydomain.StateInProgress, 50000},
		{opportunitydomain.StateWon, 25000},
		{opportunitydomain.StateLost, 999900},
	}
	for _, o := range opportunities {
		opp := opportunitydomain.Opportunity{
			ID:         node.Generate(),
			Title:      "Oportunidad " + o.state,
			ValueCents: o.cents,
			State:      o.state,
			CloseDate:  datatypes.Date(time.Now().UTC()),
			ContactID:  contact.ID,
			CreatedAt:  time.Now().UTC(),
			UpdatedAt:  time.Now().UTC(),
		}
		require.NoError(t, db.Create(&opp).Error)
	}

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(1), summary.ContactCount)
	assert.Equal(t, int64(4), summary.OpportunityCount)
	assert.Equal(t, int64(175000), summary.PipelineValueCents, "lost opportunities do not count")
	assert.Equal(t, int64(1), summary.CountsByState[opportunitydomain.StateWon])
	assert.Equal(t, int64(1), summary.CountsByState[opportunitydomain.StateLost])
}

func TestSummary_RecentActivitiesLimitedAndOrdered(t *testing.T) {
	svc, db, node := newTestService(t)

	base := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	for i := 0; i < domain.RecentActivityLimit+3; i++ {
		activity := activitydomain.Activity{
			ID:        node.Generate(),
			Type:      activitydomain.TypeCall,
			Title:     "Actividad",
			OccursAt:  base.Add(time.Duration(i) * time.Hour),
			CreatedAt: time.Now().UTC(),
		}
		require.NoError(t, db.Create(&activity).Error)
	}

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)

	require.Len(t, summary.RecentActivities, domain.RecentActivityLimit)
	for i := 1; i < len(summary.RecentActivities); i++ {
		previous := summary.RecentActivities[i-1].OccursAt
		current := summary.RecentActivities[i].OccursAt
		assert.False(t, current.After(previous), "newest first")
	}
}
