package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	companydomain "github.com/thelightspeed/crm/internal/company/domain"
	"github.com/thelightspeed/crm/pkg/db/pagination"
)

type companyForm struct {
	Name    string `form:"nombre"`
	Website string `form:"sitio_web"`
	Address string `form:"direccion"`
	Phone   string `form:"telefono"`
}

func (s *Server) ListCompanies(c *gin.Context) {
	var page pagination.Pagination
	_ = c.ShouldBindQuery(&page)

	resp, err := s.companySvc.List(c.Request.Context(), companydomain.ListCompanyRequest{Page: page})
	if err != nil {
		s.renderError(c, err)
		return
	}

	s.render(c, http.StatusOK, "company_list.html", gin.H{
		"Titulo":   "Empresas",
		"Empresas": resp.Companies,
		"Pagina":   resp.PageInfo,
	})
}

func (s *Server) NewCompanyForm(c *gin.Context) {
	s.renderCompanyForm(c, http.StatusOK, "Nueva empresa", "/crm/empresas/crear/", companyForm{}, "")
}

func (s *Server) CreateCompany(c *gin.Context) {
	var form companyForm
	_ = c.ShouldBind(&form)

	_, err := s.companySvc.Create(c.Request.Context(), companydomain.CreateCompanyRequest{
		Name:    form.Name,
		Website: form.Website,
		Address: form.Address,
		Phone:   form.Phone,
	})
	if err != nil {
		if isValidationError(err) {
			s.renderCompanyForm(c, http.StatusOK, "Nueva empresa", "/crm/empresas/crear/", form, validationMessage(err))
			return
		}
		s.renderError(c, err)
		return
	}

	s.setFlash(c, flashSuccess, "Empresa creada correctamente.")
	c.Redirect(http.StatusFound, "/crm/empresas/")
}

func (s *Server) EditCompanyForm(c *gin.Context) {
	id := c.Param("id")

	company, err := s.companySvc.GetByID(c.Request.Context(), id)
	if err != nil {
		s.renderError(c, err)
		return
	}

	form := companyForm{
		Name:    company.Name,
		Website: company.Website,
		Address: company.Address,
		Phone:   company.Phone,
	}
	s.renderCompanyForm(c, http.StatusOK, "Editar empresa", "/crm/empresas/"+id+"/editar/", form, "")
}

func (s *Server) UpdateCompany(c *gin.Context) {
	id := c.Param("id")

	var form companyForm
	_ = c.ShouldBind(&form)

	_, err := s.companySvc.Update(c.Request.Context(), companydomain.UpdateCompanyRequest{
		ID:      id,
		Name:    form.Name,
		Website: form.Website,
		Address: form.Address,
		Phone:   form.Phone,
	})
	if err != nil {
		if isValidationError(err) {
			s.renderCompanyForm(c, http.StatusOK, "Editar empresa", "/crm/empresas/"+id+"/editar/", form, validationMessage(err))
			return
		}
		s.renderError(c, err)
		return
	}

	s.setFlash(c, flashSuccess, "Empresa actualizada correctamente.")
	c.Redirect(http.StatusFound, "/crm/empresas/")
}

func (s *Server) ConfirmDeleteCompany(c *gin.Context) {
	id := c.Param("id")

	company, err := s.companySvc.GetByID(c.Request.Context(), id)
	if err != nil {
		s.renderError(c, err)
		return
	}

	s.render(c, http.StatusOK, "confirm_delete.html", gin.H{
		"Titulo":      "Eliminar empresa",
		"Descripcion": company.Name,
		"Accion":      "/crm/empresas/" + id + "/eliminar/",
		"Volver":      "/crm/empresas/",
	})
}

func (s *Server) DeleteCompany(c *gin.Context) {
	if err := s.companySvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		s.renderError(c, err)
		return
	}

	s.setFlash(c, flashSuccess, "Empresa eliminada. Sus contactos quedan sin empresa.")
	c.Redirect(http.StatusFound, "/crm/empresas/")
}

func (s *Server) renderCompanyForm(c *gin.Context, status int, title, action string, form companyForm, errMsg string) {
	data := gin.H{
		"Titulo":     "Empresas: " + title,
		"Encabezado": title,
		"Accion":     action,
		"Form":       form,
	}
	if errMsg != "" {
		data["Flash"] = &Flash{Level: flashError, Message: errMsg}
	}
	s.render(c, status, "company_form.html", data)
}
