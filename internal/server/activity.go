package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	activitydomain "github.com/thelightspeed/crm/internal/activity/domain"
	"github.com/thelightspeed/crm/pkg/db/pagination"
)

type activityForm struct {
	Type          string `form:"tipo"`
	Title         string `form:"titulo"`
	Description   string `form:"descripcion"`
	When          string `form:"fecha"`
	ContactID     string `form:"contacto"`
	OpportunityID string `form:"oportunidad"`
	Completed     string `form:"completada"`
}

type activityListQuery struct {
	Type          string `form:"tipo"`
	ContactID     string `form:"contacto"`
	OpportunityID string `form:"oportunidad"`
	DateFrom      string `form:"fecha_desde"`
	DateTo        string `form:"fecha_hasta"`
	Completed     string `form:"completadas"`
	pagination.Pagination
}

func (s *Server) ListActivities(c *gin.Context) {
	var query activityListQuery
	_ = c.ShouldBindQuery(&query)

	resp, err := s.activitySvc.List(c.Request.Context(), activitydomain.ListActivityRequest{
		Type:          query.Type,
		ContactID:     query.ContactID,
		OpportunityID: query.OpportunityID,
		DateFrom:      query.DateFrom,
		DateTo:        query.DateTo,
		Completed:     parseTriState(query.Completed),
		Page:          query.Pagination,
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

	s.render(c, http.StatusOK, "activity_list.html", gin.H{
		"Titulo":      "Actividades",
		"Actividades": resp.Activities,
		"Pagina":      resp.PageInfo,
		"Tipos":       activitydomain.Types(),
		"Contactos":   contacts,
		"Filtros": gin.H{
			"Tipo":        query.Type,
			"Contacto":    query.ContactID,
			"Oportunidad": query.OpportunityID,
			"FechaDesde":  query.DateFrom,
			"FechaHasta":  query.DateTo,
			"Completadas": query.Completed,
		},
	})
}

func (s *Server) NewActivityForm(c *gin.Context) {
	form := activityForm{
		Type:          c.Query("tipo"),
		ContactID:     c.Query("contacto"),
		OpportunityID: c.Query("oportunidad"),
	}
	s.renderActivityForm(c, http.StatusOK, "Nueva actividad", "/crm/actividades/nueva/", form, "")
}

func (s *Server) CreateActivity(c *gin.Context) {
	var form activityForm
	_ = c.ShouldBind(&form)

	_, err := s.activitySvc.Create(c.Request.Context(), activitydomain.CreateActivityRequest{
		Type:          form.Type,
		Title:         form.Title,
		Description:   form.Description,
		When:          form.When,
		ContactID:     form.ContactID,
		OpportunityID: form.OpportunityID,
		Completed:     checkboxChecked(form.Completed),
	})
	if err != nil {
		if isValidationError(err) {
			s.renderActivityForm(c, http.StatusOK, "Nueva actividad", "/crm/actividades/nueva/", form, validationMessage(err))
			return
		}
		s.renderError(c, err)
		return
	}

	s.setFlash(c, flashSuccess, "Actividad creada correctamente.")
	c.Redirect(http.StatusFound, "/crm/actividades/")
}

func (s *Server) EditActivityForm(c *gin.Context) {
	id := c.Param("id")

	activity, err := s.activitySvc.GetByID(c.Request.Context(), id)
	if err != nil {
		s.renderError(c, err)
		return
	}

	form := activityForm{
		Type:        activity.Type,
		Title:       activity.Title,
		Description: activity.Description,
		When:        activity.OccursAt.Format("2006-01-02T15:04"),
	}
	if activity.ContactID != nil {
		form.ContactID = activity.ContactID.String()
	}
	if activity.OpportunityID != nil {
		form.OpportunityID = activity.OpportunityID.String()
	}
	if activity.Completed {
		form.Completed = "on"
	}

	s.renderActivityForm(c, http.StatusOK, "Editar actividad", "/crm/actividades/"+id+"/editar/", form, "")
}

func (s *Server) UpdateActivity(c *gin.Context) {
	id := c.Param("id")

	var form activityForm
	_ = c.ShouldBind(&form)

	_, err := s.activitySvc.Update(c.Request.Context(), activitydomain.UpdateActivityRequest{
		ID:            id,
		Type:          form.Type,
		Title:         form.Title,
		Description:   form.Description,
		When:          form.When,
		ContactID:     form.ContactID,
		OpportunityID: form.OpportunityID,
		Completed:     checkboxChecked(form.Completed),
	})
	if err != nil {
		if isValidationError(err) {
			s.renderActivityForm(c, http.StatusOK, "Editar actividad", "/crm/actividades/"+id+"/editar/", form, validationMessage(err))
			return
		}
		s.renderError(c, err)
		return
	}

	s.setFlash(c, flashSuccess, "Actividad actualizada correctamente.")
	c.Redirect(http.StatusFound, "/crm/actividades/")
}

func (s *Server) ConfirmDeleteActivity(c *gin.Context) {
	id := c.Param("id")

	activity, err := s.activitySvc.GetByID(c.Request.Context(), id)
	if err != nil {
		s.renderError(c, err)
		return
	}

	s.render(c, http.StatusOK, "confirm_delete.html", gin.H{
		"Titulo":      "Eliminar actividad",
		"Descripcion": activity.Title,
		"Accion":      "/crm/actividades/" + id + "/eliminar/",
		"Volver":      "/crm/actividades/",
	})
}

func (s *Server) DeleteActivity(c *gin.Context) {
	if err := s.activitySvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		s.renderError(c, err)
		return
	}

	s.setFlash(c, flashSuccess, "Actividad eliminada.")
	c.Redirect(http.StatusFound, "/crm/actividades/")
}

// ToggleActivityCompleted flips the completed flag and goes back to the
// list, whatever the request method was.
func (s *Server) ToggleActivityCompleted(c *gin.Context) {
	if err := s.activitySvc.ToggleCompleted(c.Request.Context(), c.Param("id")); err != nil {
		s.renderError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/crm/actividades/")
}

func (s *Server) renderActivityForm(c *gin.Context, status int, title, action string, form activityForm, errMsg string) {
	contacts, err := s.listContactOptions(c)
	if err != nil {
		s.renderError(c, err)
		return
	}
	opportunities, err := s.opportunitySvc.ListAll(c.Request.Context())
	if err != nil {
		s.renderError(c, err)
		return
	}

	data := gin.H{
		"Titulo":        "Actividades: " + title,
		"Encabezado":    title,
		"Accion":        action,
		"Form":          form,
		"Tipos":         activitydomain.Types(),
		"Contactos":     contacts,
		"Oportunidades": opportunities,
	}
	if errMsg != "" {
		data["Flash"] = &Flash{Level: flashError, Message: errMsg}
	}
	s.render(c, status, "activity_form.html", data)
}
