package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlash_SurvivesRedirectRoundTrip(t *testing.T) {
	gin.SetMode(gin.TestMode)
	srv := &Server{}

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/crm/contactos/nuevo/", nil)
	srv.setFlash(c, flashSuccess, "Contacto creado correctamente.")

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)

	next := httptest.NewRequest(http.MethodGet, "/crm/contactos/", nil)
	next.AddCookie(cookies[0])
	rec2 := httptest.NewRecorder()
	c2, _ := gin.CreateTestContext(rec2)
	c2.Request = next

	flash := srv.popFlash(c2)
	require.NotNil(t, flash)
	assert.Equal(t, flashSuccess, flash.Level)
	assert.Equal(t, "Contacto creado correctamente.", flash.Message)
}

func TestFlash_ConsumedOnFirstRead(t *testing.T) {
	gin.SetMode(gin.TestMode)
	srv := &Server{}

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/crm/etiquetas/crear/", nil)
	srv.setFlash(c, flashError, "Ya existe una etiqueta con ese nombre.")

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)

	next := httptest.NewRequest(http.MethodGet, "/crm/etiquetas/", nil)
	next.AddCookie(cookies[0])
	rec2 := httptest.NewRecorder()
	c2, _ := gin.CreateTestContext(rec2)
	c2.Request = next

	require.NotNil(t, srv.popFlash(c2))

	cleared := rec2.Result().Cookies()
	require.Len(t, cleared, 1)
	assert.Equal(t, flashCookie, cleared[0].Name)
	assert.Negative(t, cleared[0].MaxAge)
}
