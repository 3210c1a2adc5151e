package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	contactdomain "github.com/thelightspeed/crm/internal/contact/domain"
	"github.com/thelightspeed/crm/pkg/db/pagination"
)

type contactForm struct {
	Name      string   `form:"nombre"`
	Email     string   `form:"correo"`
	Phone     string   `form:"telefono"`
	CompanyID string   `form:"empresa"`
	Notes     string   `form:"notas"`
	TagIDs    []string `form:"etiquetas"`
}

type contactListQuery struct {
	Query     string `form:"q"`
	CompanyID string `form:"empresa"`
	TagID     string `form:"etiqueta"`
	Group     string `form:"grupo"`
	pagination.Pagination
}

func (s *Server) ListContacts(c *gin.Context) {
	var query contactListQuery
	_ = c.ShouldBindQuery(&query)

	resp, err := s.contactSvc.List(c.Request.Context(), contactdomain.ListContactRequest{
		Query:     query.Query,
		CompanyID: query.CompanyID,
		TagID:     query.TagID,
		Group:     query.Group,
		Page:      query.Pagination,
	})
	if err != nil {
		s.renderError(c, err)
		return
	}

	companies, err := s.companySvc.ListAll(c.Request.Context())
	if err != nil {
		s.renderError(c, err)
		return
	}
	tags, err := s.tagSvc.ListAll(c.Request.Context())
	if err != nil {
		s.renderError(c, err)
		return
	}

	s.render(c, http.StatusOK, "contact_list.html", gin.H{
		"Titulo":    "Contactos",
		"Contactos": resp.Contacts,
		"Pagina":    resp.PageInfo,
		"Grupo":     resp.Group,
		"Empresas":  companies,
		"Etiquetas": tags,
		"Filtros": gin.H{
			"Q":        query.Query,
			"Empresa":  query.CompanyID,
			"Etiqueta": query.TagID,
			"Grupo":    query.Group,
		},
	})
}

func (s *Server) NewContactForm(c *gin.Context) {
	s.renderContactForm(c, http.StatusOK, "Nuevo contacto", "/crm/contactos/nuevo/", contactForm{}, "")
}

func (s *Server) CreateContact(c *gin.Context) {
	var form contactForm
	_ = c.ShouldBind(&form)

	_, err := s.contactSvc.Create(c.Request.Context(), contactdomain.CreateContactRequest{
		Name:      form.Name,
		Email:     form.Email,
		Phone:     form.Phone,
		CompanyID: form.CompanyID,
		Notes:     form.Notes,
		TagIDs:    form.TagIDs,
	})
	if err != nil {
		if isValidationError(err) {
			s.renderContactForm(c, http.StatusOK, "Nuevo contacto", "/crm/contactos/nuevo/", form, validationMessage(err))
			return
		}
		s.renderError(c, err)
		return
	}

	s.setFlash(c, flashSuccess, "Contacto creado correctamente.")
	c.Redirect(http.StatusFound, "/crm/contactos/")
}

func (s *Server) ContactDetail(c *gin.Context) {
	id := c.Param("id")

	contact, err := s.contactSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		s.renderError(c, err)
		return
	}

	opportunities, err := s.opportunitySvc.ListByContact(c.Request.Context(), id)
	if err != nil {
		s.renderError(c, err)
		return
	}
	activities, err := s.activitySvc.ListByContact(c.Request.Context(), id)
	if err != nil {
		s.renderError(c, err)
		return
	}

	s.render(c, http.StatusOK, "contact_detail.html", gin.H{
		"Titulo":        contact.Name,
		"Contacto":      contact,
		"Oportunidades": opportunities,
		"Actividades":   activities,
	})
}

func (s *Server) EditContactForm(c *gin.Context) {
	id := c.Param("id")

	contact, err := s.contactSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		s.renderError(c, err)
		return
	}

	form := contactForm{
		Name:  contact.Name,
		Email: contact.Email,
		Phone: contact.Phone,
		Notes: contact.Notes,
	}
	if contact.CompanyID != nil {
		form.CompanyID = contact.CompanyID.String()
	}
	for _, tag := range contact.Tags {
		form.TagIDs = append(form.TagIDs, tag.ID.String())
	}

	s.renderContactForm(c, http.StatusOK, "Editar contacto", "/crm/contactos/"+id+"/editar/", form, "")
}

func (s *Server) UpdateContact(c *gin.Context) {
	id := c.Param("id")

	var form contactForm
	_ = c.ShouldBind(&form)

	_, err := s.contactSvc.Update(c.Request.Context(), contactdomain.UpdateContactRequest{
		ID:        id,
		Name:      form.Name,
		Email:     form.Email,
		Phone:     form.Phone,
		CompanyID: form.CompanyID,
		Notes:     form.Notes,
		TagIDs:    form.TagIDs,
	})
	if err != nil {
		if isValidationError(err) {
			s.renderContactForm(c, http.StatusOK, "Editar contacto", "/crm/contactos/"+id+"/editar/", form, validationMessage(err))
			return
		}
		s.renderError(c, err)
		return
	}

	s.setFlash(c, flashSuccess, "Contacto actualizado correctamente.")
	c.Redirect(http.StatusFound, "/crm/contactos/")
}

func (s *Server) ConfirmDeleteContact(c *gin.Context) {
	id := c.Param("id")

	contact, err := s.contactSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		s.renderError(c, err)
		return
	}

	s.render(c, http.StatusOK, "confirm_delete.html", gin.H{
		"Titulo":      "Eliminar contacto",
		"Descripcion": contact.Name,
		"Accion":      "/crm/contactos/" + id + "/eliminar/",
		"Volver":      "/crm/contactos/",
	})
}

func (s *Server) DeleteContact(c *gin.Context) {
	if err := s.contactSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		s.renderError(c, err)
		return
	}

	s.setFlash(c, flashSuccess, "Contacto eliminado.")
	c.Redirect(http.StatusFound, "/crm/contactos/")
}

func (s *Server) renderContactForm(c *gin.Context, status int, title, action string, form contactForm, errMsg string) {
	companies, err := s.companySvc.ListAll(c.Request.Context())
	if err != nil {
		s.renderError(c, err)
		return
	}
	tags, err := s.tagSvc.ListAll(c.Request.Context())
	if err != nil {
		s.renderError(c, err)
		return
	}

	selected := make(map[string]bool, len(form.TagIDs))
	for _, id := range form.TagIDs {
		selected[id] = true
	}

	data := gin.H{
		"Titulo":                 "Contactos: " + title,
		"Encabezado":             title,
		"Accion":                 action,
		"Form":                   form,
		"Empresas":               companies,
		"Etiquetas":              tags,
		"EtiquetasSeleccionadas": selected,
	}
	if errMsg != "" {
		data["Flash"] = &Flash{Level: flashError, Message: errMsg}
	}
	s.render(c, status, "contact_form.html", data)
}
