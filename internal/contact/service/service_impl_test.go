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
	companydomain "github.com/thelightspeed/crm/internal/company/domain"
	"github.com/thelightspeed/crm/internal/contact/domain"
	"github.com/thelightspeed/crm/internal/contact/repository"
	"github.com/thelightspeed/crm/internal/migration"
	opportunitydomain "github.com/thelightspeed/crm/internal/opportunity/domain"
	tagdomain "github.com/thelightspeed/crm/internal/tag/domain"
	"github.com/thelightspeed/crm/pkg/db/pagination"
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
		DB:    db,
		Log:   zap.NewNop(),
		GenID: node,
		Repo:  repository.Provide(),
	})
	return svc, db, node
}

func TestCreateContact_RejectsMalformedEmail(t *testing.T) {
	svc, db, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, domain.CreateContactRequest{
		Name:  "Jane Doe",
		Email: "not-an-email",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidEmail)

	var count int64
	require.NoError(t, db.Model(&domain.Contact{}).Count(&count).Error)
	assert.Zero(t, count, "nothing should be persisted on validation failure")
}

func TestCreateContact_RequiresName(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Create(context.Background(), domain.CreateContactRequest{
		Name:  "   ",
		Email: "jane@acme.com",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidName)
}

func TestCreateContact_UnknownCompanyRejected(t *testing.T) {
	svc, _, node := newTestService(t)

	_, err := svc.Create(context.Background(), domain.CreateContactRequest{
		Name:      "Jane Doe",
		Email:     "jane@acme.com",
		CompanyID: node.Generate().String(),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCompany)
}

func TestListContacts_FilterByCompany(t *testing.T) {
	svc, db, node := newTestService(t)
	ctx := context.Background()

	acme := companydomain.Company{ID: node.Generate(), Name: "Acme", CreatedAt: time.Now().UTC()}
	globex := companydomain.Company{ID: node.Generate(), Name: "Globex", CreatedAt: time.Now().UTC()}
	require.NoError(t, db.Create(&acme).Error)
	require.NoError(t, db.Create(&globex).Error)

	jane, err := svc.Create(ctx, domain.CreateContactRequest{
		Name:      "Jane Doe",
		Email:     "jane@acme.com",
		CompanyID: acme.ID.String(),
	})
	require.NoError(t, err)
	_, err = svc.Create(ctx, domain.CreateContactRequest{
		Name:      "John Roe",
		Email:     "john@globex.com",
		CompanyID: globex.ID.String(),
	})
	require.NoError(t, err)

	resp, err := svc.List(ctx, domain.ListContactRequest{CompanyID: acme.ID.String()})
	require.NoError(t, err)
	require.Len(t, resp.Contacts, 1)
	assert.Equal(t, jane.ID, resp.Contacts[0].ID)
	assert.Equal(t, "Acme", resp.Contacts[0].CompanyName())
}

func TestListContacts_SearchMatchesCompanyName(t *testing.T) {
	svc, db, node := newTestService(t)
	ctx := context.Background()

	acme := companydomain.Company{ID: node.Generate(), Name: "Acme", CreatedAt: time.Now().UTC()}
	require.NoError(t, db.Create(&acme).Error)

	_, err := svc.Create(ctx, domain.CreateContactRequest{
		Name:      "Jane Doe",
		Email:     "jane@acme.com",
		CompanyID: acme.ID.String(),
	})
	require.NoError(t, err)
	_, err = svc.Create(ctx, domain.CreateContactRequest{
		Name:  "John Roe",
		Email: "john@globex.com",
	})
	require.NoError(t, err)

	resp, err := svc.List(ctx, domain.ListContactRequest{Query: "acm"})
	require.NoError(t, err)
	require.Len(t, resp.Contacts, 1)
	assert.Equal(t, "Jane Doe", resp.Contacts[0].Name)
}

func TestListContacts_MalformedFiltersIgnored(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, domain.CreateContactRequest{Name: "Jane Doe", Email: "jane@acme.com"})
	require.NoError(t, err)

	resp, err := svc.List(ctx, domain.ListContactRequest{
		CompanyID: "garbage",
		TagID:     "also-garbage",
		Group:     "unknown-mode",
	})
	require.NoError(t, err)
	assert.Len(t, resp.Contacts, 1)
	assert.Empty(t, resp.Group)
}

func TestUpdateContact_ReplacesTagsWholesale(t *testing.T) {
	svc, db, node := newTestService(t)
	ctx := context.Background()

	red := tagdomain.Tag{ID: node.Generate(), Name: "VIP", Color: "#e67e22"}
	blue := tagdomain.Tag{ID: node.Generate(), Name: "Cliente", Color: "#2ecc71"}
	require.NoError(t, db.Create(&red).Error)
	require.NoError(t, db.Create(&blue).Error)

	created, err := svc.Create(ctx, domain.CreateContactRequest{
		Name:   "Jane Doe",
		Email:  "jane@acme.com",
		TagIDs: []string{red.ID.String()},
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, domain.UpdateContactRequest{
		ID:     created.ID.String(),
		Name:   "Jane Doe",
		Email:  "jane@acme.com",
		TagIDs: []string{blue.ID.String()},
	})
	require.NoError(t, err)
	require.Len(t, updated.Tags, 1)
	assert.Equal(t, blue.ID, updated.Tags[0].ID)

	// An empty submitted set clears everything.
	updated, err = svc.Update(ctx, domain.UpdateContactRequest{
		ID:    created.ID.String(),
		Name:  "Jane Doe",
		Email: "jane@acme.com",
	})
	require.NoError(t, err)
	assert.Empty(t, updated.Tags)
}

func TestDeleteContact_CascadesToChildren(t *testing.T) {
	svc, db, node := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, domain.CreateContactRequest{Name: "Jane Doe", Email: "jane@acme.com"})
	require.NoError(t, err)

	opp := opportunitydomain.Opportunity{
		ID:         node.Generate(),
		Title:      "Licencia anual",
		ValueCents: 100000,
		State:      opportunitydomain.StateNew,
		CloseDate:  datatypes.Date(time.Now().UTC()),
		ContactID:  created.ID,
		CreatedAt:  time.Now().UTC(),
		UpdatedAt:  time.Now().UTC(),
	}
	require.NoError(t, db.Create(&opp).Error)

	oppID := opp.ID
	contactID := created.ID
	activities := []activitydomain.Activity{
		{ID: node.Generate(), Type: activitydomain.TypeCall, Title: "Llamada inicial", OccursAt: time.Now().UTC(), ContactID: &contactID, CreatedAt: time.Now().UTC()},
		{ID: node.Generate(), Type: activitydomain.TypeMeeting, Title: "Demo", OccursAt: time.Now().UTC(), OpportunityID: &oppID, CreatedAt: time.Now().UTC()},
	}
	for i := range activities {
		require.NoError(t, db.Create(&activities[i]).Error)
	}

	require.NoError(t, svc.Delete(ctx, created.ID.String()))

	var contacts, opportunities, acts int64
	require.NoError(t, db.Model(&domain.Contact{}).Count(&contacts).Error)
	require.NoError(t, db.Model(&opportunitydomain.Opportunity{}).Count(&opportunities).Error)
	require.NoError(t, db.Model(&activitydomain.Activity{}).Count(&acts).Error)
	assert.Zero(t, contacts)
	assert.Zero(t, opportunities)
	assert.Zero(t, acts, "activities hanging off the contact or its opportunities go too")
}

func TestListContacts_Pagination(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	for i := 0; i < 25; i++ {
		_, err := svc.Create(ctx, domain.CreateContactRequest{
			Name:  "Contacto " + string(rune('a'+i)),
			Email: "c" + string(rune('a'+i)) + "@acme.com",
		})
		require.NoError(t, err)
	}

	resp, err := svc.List(ctx, domain.ListContactRequest{})
	require.NoError(t, err)
	assert.Len(t, resp.Contacts, 20)
	assert.Equal(t, 2, resp.TotalPages)
	assert.Equal(t, int64(25), resp.TotalItems)

	resp, err = svc.List(ctx, domain.ListContactRequest{Page: pagination.Pagination{Page: 99}})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Page, "out-of-range pages clamp to the last page")
	assert.Len(t, resp.Contacts, 5)
}
