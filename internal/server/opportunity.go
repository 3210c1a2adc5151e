package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	contactdomain "github.com/thelightspeed/crm/internal/contact/domain"
	opportunitydomain "github.com/thelightspeed/crm/internal/opportunity/domain"
	"github.com/thelightspeed/crm/pkg/db/pagination"
	"github.com/thelightspeed/crm/pkg/money"
)

type opportunityForm struct {
	Title     string `form:"titulo"`
	Value     string `form:"valor"`
	State     string `form:"estado"`
	CloseDate string `form:"fecha_estimada_cierre"`
	ContactID string `form:"contacto"`
	Notes     string `form:"notas"`
}

type opportunityListQuery struct {
	State     string `form:"estado"`
	ContactID string `form:"contacto"`
	pagination.Pagination
}

func (s *Server) ListOpportunities(c *gin.Context) {
	var query opportunityListQuery
	_ = c.ShouldBindQuery(&query)

	resp, err := s.opportunitySvc.List(c.Request.Context(), opportunitydomain.ListOpportunityRequest{
		State:     query.State,
		ContactID: query.ContactID,
		Page:      query.Pagination,
	})
	if err != nil {
		s.renderError(c, err)
		return
	}

	contacts, err := s.listContactOptions(c)
	if err != nil {
		s.renderError(c, err)
		return
	}

	s.render(c, http.StatusOK, "opportunity_list.html", gin.H{
		"Titulo":        "Oportunidades",
		"Oportunidades": resp.Opportunities,
		"Pagina":        resp.PageInfo,
		"Estados":       opportunitydomain.States(),
		"Contactos":     contacts,
		"Filtros": gin.H{
			"Estado":   query.State,
			"Contacto": query.ContactID,
		},
	})
}

func (s *Server) PipelineBoard(c *gin.Context) {
	pipeline, err := s.opportunitySvc.Pipeline(c.Request.Context())
	if err != nil {
		s.renderError(c, err)
		return
	}

	s.render(c, http.StatusOK, "pipeline.html", gin.H{
		"Titulo":   "Pipeline",
		"Columnas": pipeline.Buckets,
		"Estados":  opportunitydomain.States(),
	})
}

func (s *Server) NewOpportunityForm(c *gin.Context) {
	form := opportunityForm{
		State:     opportunitydomain.StateNew,
		CloseDate: time.Now().UTC().Format("2006-01-02"),
		ContactID: c.Query("contacto"),
	}
	s.renderOpportunityForm(c, http.StatusOK, "Nueva oportunidad", "/crm/oportunidades/nueva/", form, "")
}

func (s *Server) CreateOpportunity(c *gin.Context) {
	var form opportunityForm
	_ = c.ShouldBind(&form)

	_, err := s.opportunitySvc.Create(c.Request.Context(), opportunitydomain.CreateOpportunityRequest{
		Title:     form.Title,
		Value:     form.Value,
		State:     form.State,
		CloseDate: form.CloseDate,
		ContactID: form.ContactID,
		Notes:     form.Notes,
	})
	if err != nil {
		if isValidationError(err) {
			s.renderOpportunityForm(c, http.StatusOK, "Nueva oportunidad", "/crm/oportunidades/nueva/", form, validationMessage(err))
			return
		}
		s.renderError(c, err)
		return
	}

	s.setFlash(c, flashSuccess, "Oportunidad creada correctamente.")
	c.Redirect(http.StatusFound, "/crm/oportunidades/")
}

func (s *Server) EditOpportunityForm(c *gin.Context) {
	id := c.Param("id")

	opp, err := s.opportunitySvc.GetByID(c.Request.Context(), id)
	if err != nil {
		s.renderError(c, err)
		return
	}

	form := opportunityForm{
		Title:     opp.Title,
		Value:     money.FormatCents(opp.ValueCents),
		State:     opp.State,
		CloseDate: time.Time(opp.CloseDate).Format("2006-01-02"),
		ContactID: opp.ContactID.String(),
		Notes:     opp.Notes,
	}

	s.renderOpportunityForm(c, http.StatusOK, "Editar oportunidad", "/crm/oportunidades/"+id+"/editar/", form, "")
}

func (s *Server) UpdateOpportunity(c *gin.Context) {
	id := c.Param("id")

	var form opportunityForm
	_ = c.ShouldBind(&form)

	_, err := s.opportunitySvc.Update(c.Request.Context(), opportunitydomain.UpdateOpportunityRequest{
		ID:        id,
		Title:     form.Title,
		Value:     form.Value,
		State:     form.State,
		CloseDate: form.CloseDate,
		ContactID: form.ContactID,
		Notes:     form.Notes,
	})
	if err != nil {
		if isValidationError(err) {
			s.renderOpportunityForm(c, http.StatusOK, "Editar oportunidad", "/crm/oportunidades/"+id+"/editar/", form, validationMessage(err))
			return
		}
		s.renderError(c, err)
		return
	}

	s.setFlash(c, flashSuccess, "Oportunidad actualizada correctamente.")
	c.Redirect(http.StatusFound, "/crm/oportunidades/")
}

func (s *Server) ConfirmDeleteOpportunity(c *gin.Context) {
	id := c.Param("id")

	opp, err := s.opportunitySvc.GetByID(c.Request.Context(), id)
	if err != nil {
		s.renderError(c, err)
		return
	}

	s.render(c, http.StatusOK, "confirm_delete.html", gin.H{
		"Titulo":      "Eliminar oportunidad",
		"Descripcion": opp.Title,
		"Accion":      "/crm/oportunidades/" + id + "/eliminar/",
		"Volver":      "/crm/oportunidades/",
	})
}

func (s *Server) DeleteOpportunity(c *gin.Context) {
	if err := s.opportunitySvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		s.renderError(c, err)
		return
	}

	s.setFlash(c, flashSuccess, "Oportunidad eliminada.")
	c.Redirect(http.StatusFound, "/crm/oportunidades/")
}

// UpdateOpportunityState applies a pipeline state change. An unrecognized
// state leaves the opportunity untouched; either way the client goes back
// to the board.
func (s *Server) UpdateOpportunityState(c *gin.Context) {
	id := c.Param("id")
	state := c.PostForm("estado")

	err := s.opportunitySvc.UpdateState(c.Request.Context(), id, state)
	switch {
	case err == nil:
		s.setFlash(c, flashSuccess, "Estado actualizado.")
	case errors.Is(err, opportunitydomain.ErrInvalidState):
		// no-op
	default:
		s.renderError(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/crm/oportunidades/pipeline/")
}

func (s *Server) renderOpportunityForm(c *gin.Context, status int, title, action string, form opportunityForm, errMsg string) {
	contacts, err := s.listContactOptions(c)
	if err != nil {
		s.renderError(c, err)
		return
	}

	data := gin.H{
		"Titulo":     "Oportunidades: " + title,
		"Encabezado": title,
		"Accion":     action,
		"Form":       form,
		"Estados":    opportunitydomain.States(),
		"Contactos":  contacts,
	}
	if errMsg != "" {
		data["Flash"] = &Flash{Level: flashError, Message: errMsg}
	}
	s.render(c, status, "opportunity_form.html", data)
}

func (s *Server) listContactOptions(c *gin.Context) ([]contactdomain.Contact, error) {
	return s.contactSvc.ListAll(c.Request.Context())
}
