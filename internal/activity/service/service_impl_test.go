package service

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thelightspeed/crm/internal/activity/domain"
	"github.com/thelightspeed/crm/internal/activity/repository"
	contactdomain "github.com/thelightspeed/crm/internal/contact/domain"
	"github.com/thelightspeed/crm/internal/migration"
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

func TestCreateActivity_ValidatesTypeMembership(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, domain.CreateActivityRequest{
		Type:  "videollamada",
		Title: "Kickoff",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidType)

	created, err := svc.Create(ctx, domain.CreateActivityRequest{
		Type:  domain.TypeCall,
		Title: "Kickoff",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.TypeCall, created.Type)
	assert.WithinDuration(t, time.Now().UTC(), created.OccursAt, time.Minute, "empty date defaults to now")
}

func TestCreateActivity_ParsesSubmittedDate(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, domain.CreateActivityRequest{
		Type:  domain.TypeMeeting,
		Title: "Demo",
		When:  "2026-09-15T10:30",
	})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 9, 15, 10, 30, 0, 0, time.UTC), created.OccursAt)

	_, err = svc.Create(ctx, domain.CreateActivityRequest{
		Type:  domain.TypeMeeting,
		Title: "Demo",
		When:  "mañana",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidWhen)
}

func TestCreateActivity_OptionalReferencesValidated(t *testing.T) {
	svc, db, node := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, domain.CreateActivityRequest{
		Type:      domain.TypeTask,
		Title:     "Seguimiento",
		ContactID: node.Generate().String(),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidContact)

	contact := contactdomain.Contact{
		ID:        node.Generate(),
		Name:      "Jane Doe",
		Email:     "jane@acme.com",
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	require.NoError(t, db.Create(&contact).Error)

	created, err := svc.Create(ctx, domain.CreateActivityRequest{
		Type:      domain.TypeTask,
		Title:     "Seguimiento",
		ContactID: contact.ID.String(),
	})
	require.NoError(t, err)
	require.NotNil(t, created.ContactID)
	assert.Equal(t, contact.ID, *created.ContactID)
}

func TestListActivities_InclusiveDateRange(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	for _, when := range []string{
		"2023-12-31T23:59",
		"2024-01-01T00:00",
		"2024-01-31T23:30",
		"2024-02-01T00:00",
	} {
		_, err := svc.Create(ctx, domain.CreateActivityRequest{
			Type:  domain.TypeCall,
			Title: "Actividad " + when,
			When:  when,
		})
		require.NoError(t, err)
	}

	resp, err := svc.List(ctx, domain.ListActivityRequest{
		DateFrom: "2024-01-01",
		DateTo:   "2024-01-31",
	})
	require.NoError(t, err)
	require.Len(t, resp.Activities, 2, "both range ends are inclusive")
	for _, activity := range resp.Activities {
		assert.Equal(t, 2024, activity.OccursAt.Year())
		assert.Equal(t, time.January, activity.OccursAt.Month())
	}
}

func TestListActivities_UnparsableDatesIgnored(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, domain.CreateActivityRequest{
		Type:  domain.TypeCall,
		Title: "Actividad",
		When:  "2024-06-01",
	})
	require.NoError(t, err)

	resp, err := svc.List(ctx, domain.ListActivityRequest{
		DateFrom: "hace un mes",
		DateTo:   "31/01/2024",
	})
	require.NoError(t, err)
	assert.Len(t, resp.Activities, 1)
}

func TestListActivities_CompletedTriState(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, domain.CreateActivityRequest{Type: domain.TypeCall, Title: "Hecha", Completed: true})
	require.NoError(t, err)
	_, err = svc.Create(ctx, domain.CreateActivityRequest{Type: domain.TypeCall, Title: "Pendiente"})
	require.NoError(t, err)

	yes, no := true, false

	resp, err := svc.List(ctx, domain.ListActivityRequest{Completed: &yes})
	require.NoError(t, err)
	require.Len(t, resp.Activities, 1)
	assert.Equal(t, "Hecha", resp.Activities[0].Title)

	resp, err = svc.List(ctx, domain.ListActivityRequest{Completed: &no})
	require.NoError(t, err)
	require.Len(t, resp.Activities, 1)
	assert.Equal(t, "Pendiente", resp.Activities[0].Title)

	resp, err = svc.List(ctx, domain.ListActivityRequest{})
	require.NoError(t, err)
	assert.Len(t, resp.Activities, 2)
}

func TestToggleCompleted_FlipsFlag(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, domain.CreateActivityRequest{Type: domain.TypeTask, Title: "Seguimiento"})
	require.NoError(t, err)
	require.False(t, created.Completed)

	require.NoError(t, svc.ToggleCompleted(ctx, created.ID.String()))
	reloaded, err := svc.GetByID(ctx, created.ID.String())
	require.NoError(t, err)
	assert.True(t, reloaded.Completed)

	require.NoError(t, svc.ToggleCompleted(ctx, created.ID.String()))
	reloaded, err = svc.GetByID(ctx, created.ID.String())
	require.NoError(t, err)
	assert.False(t, reloaded.Completed)
}
