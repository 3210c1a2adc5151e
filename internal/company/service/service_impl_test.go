package service

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thelightspeed/crm/internal/company/domain"
	"github.com/thelightspeed/crm/internal/company/repository"
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

func TestCreateCompany_RequiresName(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Create(context.Background(), domain.CreateCompanyRequest{Name: "  "})
	assert.ErrorIs(t, err, domain.ErrInvalidName)
}

func TestDeleteCompany_DetachesContacts(t *testing.T) {
	svc, db, node := newTestService(t)
	ctx := context.Background()

	company, err := svc.Create(ctx, domain.CreateCompanyRequest{Name: "Acme"})
	require.NoError(t, err)

	companyID := company.ID
	contact := contactdomain.Contact{
		ID:        node.Generate(),
		Name:      "Jane Doe",
		Email:     "jane@acme.com",
		CompanyID: &companyID,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	require.NoError(t, db.Create(&contact).Error)

	require.NoError(t, svc.Delete(ctx, company.ID.String()))

	var reloaded contactdomain.Contact
	require.NoError(t, db.First(&reloaded, "id = ?", contact.ID).Error)
	assert.Nil(t, reloaded.CompanyID, "the contact survives with no company")

	_, err = svc.GetByID(ctx, company.ID.String())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListCompanies_OrderedByName(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	for _, name := range []string{"Globex", "Acme", "Initech"} {
		_, err := svc.Create(ctx, domain.CreateCompanyRequest{Name: name})
		require.NoError(t, err)
	}

	resp, err := svc.List(ctx, domain.ListCompanyRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Companies, 3)
	assert.Equal(t, "Acme", resp.Companies[0].Name)
	assert.Equal(t, "Globex", resp.Companies[1].Name)
	assert.Equal(t, "Initech", resp.Companies[2].Name)
}
