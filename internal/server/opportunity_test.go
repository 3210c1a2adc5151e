package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	activitydomain "github.com/thelightspeed/crm/internal/activity/domain"
	"github.com/thelightspeed/crm/internal/config"
	opportunitydomain "github.com/thelightspeed/crm/internal/opportunity/domain"
)

type fakeOpportunityService struct {
	updateStateID    string
	updateStateValue string
	updateStateErr   error
}

func (f *fakeOpportunityService) Create(context.Context, opportunitydomain.CreateOpportunityRequest) (opportunitydomain.Opportunity, error) {
	return opportunitydomain.Opportunity{}, nil
}
func (f *fakeOpportunityService) Update(context.Context, opportunitydomain.UpdateOpportunityRequest) (opportunitydomain.Opportunity, error) {
	return opportunitydomain.Opportunity{}, nil
}
func (f *fakeOpportunityService) Delete(context.Context, string) error { return nil }
func (f *fakeOpportunityService) GetByID(context.Context, string) (opportunitydomain.Opportunity, error) {
	return opportunitydomain.Opportunity{}, nil
}
func (f *fakeOpportunityService) List(context.Context, opportunitydomain.ListOpportunityRequest) (opportunitydomain.ListOpportunityResponse, error) {
	return opportunitydomain.ListOpportunityResponse{}, nil
}
func (f *fakeOpportunityService) ListByContact(context.Context, string) ([]opportunitydomain.Opportunity, error) {
	return nil, nil
}
func (f *fakeOpportunityService) ListAll(context.Context) ([]opportunitydomain.Opportunity, error) {
	return nil, nil
}
func (f *fakeOpportunityService) Pipeline(context.Context) (opportunitydomain.Pipeline, error) {
	return opportunitydomain.Pipeline{}, nil
}
func (f *fakeOpportunityService) UpdateState(_ context.Context, id, state string) error {
	f.updateStateID = id
	f.updateStateValue = state
	return f.updateStateErr
}

type fakeActivityService struct {
	toggledID string
}

func (f *fakeActivityService) Create(context.Context, activitydomain.CreateActivityRequest) (activitydomain.Activity, error) {
	return activitydomain.Activity{}, nil
}
func (f *fakeActivityService) Update(context.Context, activitydomain.UpdateActivityRequest) (activitydomain.Activity, error) {
	return activitydomain.Activity{}, nil
}
func (f *fakeActivityService) Delete(context.Context, string) error { return nil }
func (f *fakeActivityService) GetByID(context.Context, string) (activitydomain.Activity, error) {
	return activitydomain.Activity{}, nil
}
func (f *fakeActivityService) List(context.Context, activitydomain.ListActivityRequest) (activitydomain.ListActivityResponse, error) {
	return activitydomain.ListActivityResponse{}, nil
}
func (f *fakeActivityService) ListByContact(context.Context, string) ([]activitydomain.Activity, error) {
	return nil, nil
}
func (f *fakeActivityService) ToggleCompleted(_ context.Context, id string) error {
	f.toggledID = id
	return nil
}

func newTestServer(t *testing.T, opportunitySvc opportunitydomain.Service, activitySvc activitydomain.Service) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	engine := gin.New()
	engine.SetHTMLTemplate(pageTemplates())

	srv := &Server{
		engine:         engine,
		cfg:            config.Config{SiteName: "The Light Speed"},
		opportunitySvc: opportunitySvc,
		activitySvc:    activitySvc,
	}
	srv.RegisterWebRoutes()
	return srv
}

func postForm(t *testing.T, srv *Server, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	srv.Engine().ServeHTTP(rec, req)
	return rec
}

func TestUpdateOpportunityState_RedirectsToPipeline(t *testing.T) {
	fake := &fakeOpportunityService{}
	srv := newTestServer(t, fake, &fakeActivityService{})

	rec := postForm(t, srv, "/crm/oportunidades/123/actualizar-estado/", url.Values{
		"estado": {opportunitydomain.StateWon},
	})

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/crm/oportunidades/pipeline/", rec.Header().Get("Location"))
	assert.Equal(t, "123", fake.updateStateID)
	assert.Equal(t, opportunitydomain.StateWon, fake.updateStateValue)
}

func TestUpdateOpportunityState_UnknownStateStillRedirects(t *testing.T) {
	fake := &fakeOpportunityService{updateStateErr: opportunitydomain.ErrInvalidState}
	srv := newTestServer(t, fake, &fakeActivityService{})

	rec := postForm(t, srv, "/crm/oportunidades/123/actualizar-estado/", url.Values{
		"estado": {"inexistente"},
	})

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/crm/oportunidades/pipeline/", rec.Header().Get("Location"))
	assert.Empty(t, rec.Header().Get("Set-Cookie"), "no success notice on a silent no-op")
}

func TestToggleActivityCompleted_AnyMethodRedirects(t *testing.T) {
	fake := &fakeActivityService{}
	srv := newTestServer(t, &fakeOpportunityService{}, fake)

	req := httptest.NewRequest(http.MethodGet, "/crm/actividades/456/toggle-completada/", nil)
	rec := httptest.NewRecorder()
	srv.Engine().ServeHTTP(rec, req)

	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/crm/actividades/", rec.Header().Get("Location"))
	assert.Equal(t, "456", fake.toggledID)
}
