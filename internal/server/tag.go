package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	tagdomain "github.com/thelightspeed/crm/internal/tag/domain"
)

type tagForm struct {
	Name  string `form:"nombre"`
	Color string `form:"color"`
}

func (s *Server) ListTags(c *gin.Context) {
	tags, err := s.tagSvc.ListAll(c.Request.Context())
	if err != nil {
		s.renderError(c, err)
		return
	}

	s.render(c, http.StatusOK, "tag_list.html", gin.H{
		"Titulo":    "Etiquetas",
		"Etiquetas": tags,
	})
}

func (s *Server) NewTagForm(c *gin.Context) {
	s.renderTagForm(c, http.StatusOK, "Nueva etiqueta", "/crm/etiquetas/crear/", tagForm{Color: tagdomain.DefaultColor}, "")
}

func (s *Server) CreateTag(c *gin.Context) {
	var form tagForm
	_ = c.ShouldBind(&form)

	_, err := s.tagSvc.Create(c.Request.Context(), tagdomain.CreateTagRequest{
		Name:  form.Name,
		Color: form.Color,
	})
	if err != nil {
		if isValidationError(err) {
			s.renderTagForm(c, http.StatusOK, "Nueva etiqueta", "/crm/etiquetas/crear/", form, validationMessage(err))
			return
		}
		s.renderError(c, err)
		return
	}

	s.setFlash(c, flashSuccess, "Etiqueta creada correctamente.")
	c.Redirect(http.StatusFound, "/crm/etiquetas/")
}

func (s *Server) EditTagForm(c *gin.Context) {
	id := c.Param("id")

	tag, err := s.tagSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		s.renderError(c, err)
		return
	}

	s.renderTagForm(c, http.StatusOK, "Editar etiqueta", "/crm/etiquetas/"+id+"/editar/", tagForm{Name: tag.Name, Color: tag.Color}, "")
}

func (s *Server) UpdateTag(c *gin.Context) {
	id := c.Param("id")

	var form tagForm
	_ = c.ShouldBind(&form)

	_, err := s.tagSvc.Update(c.Request.Context(), tagdomain.UpdateTagRequest{
		ID:    id,
		Name:  form.Name,
		Color: form.Color,
	})
	if err != nil {
		if isValidationError(err) {
			s.renderTagForm(c, http.StatusOK, "Editar etiqueta", "/crm/etiquetas/"+id+"/editar/", form, validationMessage(err))
			return
		}
		s.renderError(c, err)
		return
	}

	s.setFlash(c, flashSuccess, "Etiqueta actualizada correctamente.")
	c.Redirect(http.StatusFound, "/crm/etiquetas/")
}

func (s *Server) ConfirmDeleteTag(c *gin.Context) {
	id := c.Param("id")

	tag, err := s.tagSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		s.renderError(c, err)
		return
	}

	s.render(c, http.StatusOK, "confirm_delete.html", gin.H{
		"Titulo":      "Eliminar etiqueta",
		"Descripcion": tag.Name,
		"Accion":      "/crm/etiquetas/" + id + "/eliminar/",
		"Volver":      "/crm/etiquetas/",
	})
}

func (s *Server) DeleteTag(c *gin.Context) {
	if err := s.tagSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		s.renderError(c, err)
		return
	}

	s.setFlash(c, flashSuccess, "Etiqueta eliminada.")
	c.Redirect(http.StatusFound, "/crm/etiquetas/")
}

func (s *Server) renderTagForm(c *gin.Context, status int, title, action string, form tagForm, errMsg string) {
	data := gin.H{
		"Titulo":     "Etiquetas: " + title,
		"Encabezado": title,
		"Accion":     action,
		"Form":       form,
	}
	if errMsg != "" {
		data["Flash"] = &Flash{Level: flashError, Message: errMsg}
	}
	s.render(c, status, "tag_form.html", data)
}
