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
	"github.com/thelightspeed/crm/internal/tag/domain"
	"github.com/thelightspeed/crm/internal/tag/repository"
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

func TestCreateTag_DefaultColorAndDuplicateName(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, domain.CreateTagRequest{Name: "VIP"})
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultColor, created.Color)

	_, err = svc.Create(ctx, domain.CreateTagRequest{Name: "VIP", Color: "#000000"})
	assert.ErrorIs(t, err, domain.ErrDuplicateName)
}

func TestDeleteTag_RemovesAssignmentsFirst(t *testing.T) {
	svc, db, node := newTestService(t)
	ctx := context.Background()

	tag, err := svc.Create(ctx, domain.CreateTagRequest{Name: "Cliente"})
	require.NoError(t, err)

	contact := contactdomain.Contact{
		ID:        node.Generate(),
		Name:      "Jane Doe",
		Email:     "jane@acme.com",
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	require.NoError(t, db.Create(&contact).Error)
	require.NoError(t, db.Exec(
		"INSERT INTO contact_tags (contact_id, tag_id) VALUES (?, ?)", contact.ID, tag.ID,
	).Error)

	require.NoError(t, svc.Delete(ctx, tag.ID.String()))

	var links int64
	require.NoError(t, db.Table("contact_tags").Count(&links).Error)
	assert.Zero(t, links)

	var contacts int64
	require.NoError(t, db.Model(&contactdomain.Contact{}).Count(&contacts).Error)
	assert.Equal(t, int64(1), contacts, "the contact itself is untouched")
}

func TestListAllTags_OrderedByName(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	for _, name := range []string{"VIP", "Cliente", "Prospecto"} {
		_, err := svc.Create(ctx, domain.CreateTagRequest{Name: name})
		require.NoError(t, err)
	}

	tags, err := svc.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, tags, 3)
	assert.Equal(t, "Cliente", tags[0].Name)
	assert.Equal(t, "Prospecto", tags[1].Name)
	assert.Equal(t, "VIP", tags[2].Name)
}
