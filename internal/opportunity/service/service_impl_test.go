package service

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	contactdomain "github.com/thelightspeed/crm/internal/contact/domain"
	"github.com/thelightspeed/crm/internal/migration"
	"github.com/thelightspeed/crm/internal/opportunity/domain"
	"github.com/thelightspeed/crm/internal/opportunity/repository"
	"go.uber.org/zap"
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
		DB:    db,
		Log:   zap.NewNop(),
		GenID: node,
		Repo:  repository.Provide(),
	})
	return svc, db, node
}

func seedContact(t *testing.T, db *gorm.DB, node *snowflake.Node) contactdomain.Contact {
	t.Helper()
	contact := contactdomain.Contact{
		ID:        node.Generate(),
		Name:      "Jane Doe",
		Email:     "jane@acme.com",
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	require.NoError(t, db.Create(&contact).Error)
	return contact
}

func TestCreateOpportunity_ParsesDecimalValue(t *testing.T) {
	svc, db, node := newTestService(t)
	ctx := context.Background()
	contact := seedContact(t, db, node)

	created, err := svc.Create(ctx, domain.CreateOpportunityRequest{
		Title:     "Licencia anual",
		Value:     "1000",
		CloseDate: "2026-10-01",
		ContactID: contact.ID.String(),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(100000), created.ValueCents)
	assert.Equal(t, domain.StateNew, created.State, "empty state defaults to nuevo")

	_, err = svc.Create(ctx, domain.CreateOpportunityRequest{
		Title:     "Mal importe",
		Value:     "12,50",
		CloseDate: "2026-10-01",
		ContactID: contact.ID.String(),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidValue)
}

func TestCreateOpportunity_RequiresKnownContact(t *testing.T) {
	svc, _, node := newTestService(t)

	_, err := svc.Create(context.Background(), domain.CreateOpportunityRequest{
		Title:     "Sin contacto",
		Value:     "10",
		CloseDate: "2026-10-01",
		ContactID: node.Generate().String(),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidContact)
}

func TestPipeline_PartitionsEveryOpportunity(t *testing.T) {
	svc, db, node := newTestService(t)
	ctx := context.Background()
	contact := seedContact(t, db, node)

	states := []string{domain.StateNew, domain.StateNew, domain.StateInProgress, domain.StateWon, domain.StateLost}
	for i, state := range states {
		_, err := svc.Create(ctx, domain.CreateOpportunityRequest{
			Title:     "Oportunidad " + string(rune('a'+i)),
			Value:     "100",
			State:     state,
			CloseDate: "2026-10-01",
			ContactID: contact.ID.String(),
		})
		require.NoError(t, err)
	}

	pipeline, err := svc.Pipeline(ctx)
	require.NoError(t, err)
	require.Len(t, pipeline.Buckets, 4)

	seen := map[snowflake.ID]int{}
	total := 0
	for i, bucket := range pipeline.Buckets {
		assert.Equal(t, domain.States()[i], bucket.State, "buckets keep the fixed state order")
		for _, opp := range bucket.Opportunities {
			assert.Equal(t, bucket.State, opp.State)
			seen[opp.ID]++
			total++
		}
	}
	assert.Equal(t, len(states), total, "the union of buckets is the full set")
	for id, n := range seen {
		assert.Equal(t, 1, n, "opportunity %s appears in exactly one bucket", id)
	}
}

func TestUpdateState_MovesBetweenBuckets(t *testing.T) {
	svc, db, node := newTestService(t)
	ctx := context.Background()
	contact := seedContact(t, db, node)

	created, err := svc.Create(ctx, domain.CreateOpportunityRequest{
		Title:     "Licencia anual",
		Value:     "1000",
		State:     domain.StateNew,
		CloseDate: "2026-10-01",
		ContactID: contact.ID.String(),
	})
	require.NoError(t, err)

	require.NoError(t, svc.UpdateState(ctx, created.ID.String(), domain.StateWon))

	pipeline, err := svc.Pipeline(ctx)
	require.NoError(t, err)
	byState := map[string][]domain.Opportunity{}
	for _, bucket := range pipeline.Buckets {
		byState[bucket.State] = bucket.Opportunities
	}
	require.Len(t, byState[domain.StateWon], 1)
	assert.Equal(t, created.ID, byState[domain.StateWon][0].ID)
	assert.Empty(t, byState[domain.StateNew])
}

func TestUpdateState_UnknownStateChangesNothing(t *testing.T) {
	svc, db, node := newTestService(t)
	ctx := context.Background()
	contact := seedContact(t, db, node)

	created, err := svc.Create(ctx, domain.CreateOpportunityRequest{
		Title:     "Licencia anual",
		Value:     "1000",
		State:     domain.StateNew,
		CloseDate: "2026-10-01",
		ContactID: contact.ID.String(),
	})
	require.NoError(t, err)

	err = svc.UpdateState(ctx, created.ID.String(), "inexistente")
	assert.ErrorIs(t, err, domain.ErrInvalidState)

	reloaded, err := svc.GetByID(ctx, created.ID.String())
	require.NoError(t, err)
	assert.Equal(t, domain.StateNew, reloaded.State)
}

func TestUpdateOpportunity_StoresStateAsTyped(t *testing.T) {
	svc, db, node := newTestService(t)
	ctx := context.Background()
	contact := seedContact(t, db, node)

	created, err := svc.Create(ctx, domain.CreateOpportunityRequest{
		Title:     "Licencia anual",
		Value:     "1000",
		State:     domain.StateNew,
		CloseDate: "2026-10-01",
		ContactID: contact.ID.String(),
	})
	require.NoError(t, err)

	// The general edit path does not restrict the state to the enum.
	updated, err := svc.Update(ctx, domain.UpdateOpportunityRequest{
		ID:        created.ID.String(),
		Title:     "Licencia anual",
		Value:     "1000",
		State:     "negociacion",
		CloseDate: "2026-10-01",
		ContactID: contact.ID.String(),
	})
	require.NoError(t, err)
	assert.Equal(t, "negociacion", updated.State)
}

func TestListOpportunities_FilterByState(t *testing.T) {
	svc, db, node := newTestService(t)
	ctx := context.Background()
	contact := seedContact(t, db, node)

	for _, state := range []string{domain.StateNew, domain.StateWon} {
		_, err := svc.Create(ctx, domain.CreateOpportunityRequest{
			Title:     "Oportunidad " + state,
			Value:     "100",
			State:     state,
			CloseDate: "2026-10-01",
			ContactID: contact.ID.String(),
		})
		require.NoError(t, err)
	}

	resp, err := svc.List(ctx, domain.ListOpportunityRequest{State: domain.StateWon})
	require.NoError(t, err)
	require.Len(t, resp.Opportunities, 1)
	assert.Equal(t, domain.StateWon, resp.Opportunities[0].State)

	// An unknown state is not applied as a filter.
	resp, err = svc.List(ctx, domain.ListOpportunityRequest{State: "inexistente"})
	require.NoError(t, err)
	assert.Len(t, resp.Opportunities, 2)
}
