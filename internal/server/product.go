package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	productdomain "github.com/thelightspeed/crm/internal/product/domain"
	"github.com/thelightspeed/crm/pkg/money"
)

type productForm struct {
	Name     string `form:"nombre"`
	Quantity string `form:"cantidad"`
	Price    string `form:"precio"`
}

func (s *Server) ListProducts(c *gin.Context) {
	products, err := s.productSvc.ListAll(c.Request.Context())
	if err != nil {
		s.renderError(c, err)
		return
	}

	s.render(c, http.StatusOK, "product_list.html", gin.H{
		"Titulo":    "Productos",
		"Productos": products,
	})
}

func (s *Server) NewProductForm(c *gin.Context) {
	s.renderProductForm(c, http.StatusOK, "Nuevo producto", "/productos/crear/", productForm{}, "")
}

func (s *Server) CreateProduct(c *gin.Context) {
	var form productForm
	_ = c.ShouldBind(&form)

	_, err := s.productSvc.Create(c.Request.Context(), productdomain.CreateProductRequest{
		Name:     form.Name,
		Quantity: form.Quantity,
		Price:    form.Price,
	})
	if err != nil {
		if isValidationError(err) {
			s.renderProductForm(c, http.StatusOK, "Nuevo producto", "/productos/crear/", form, validationMessage(err))
			return
		}
		s.renderError(c, err)
		return
	}

	s.setFlash(c, flashSuccess, "Producto creado correctamente.")
	c.Redirect(http.StatusFound, "/productos/")
}

func (s *Server) EditProductForm(c *gin.Context) {
	id := c.Param("id")

	product, err := s.productSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		s.renderError(c, err)
		return
	}

	form := productForm{
		Name:     product.Name,
		Quantity: strconv.FormatInt(product.Quantity, 10),
		Price:    money.FormatCents(product.PriceCents),
	}
	s.renderProductForm(c, http.StatusOK, "Editar producto", "/productos/"+id+"/editar/", form, "")
}

func (s *Server) UpdateProduct(c *gin.Context) {
	id := c.Param("id")

	var form productForm
	_ = c.ShouldBind(&form)

	_, err := s.productSvc.Update(c.Request.Context(), productdomain.UpdateProductRequest{
		ID:       id,
		Name:     form.Name,
		Quantity: form.Quantity,
		Price:    form.Price,
	})
	if err != nil {
		if isValidationError(err) {
			s.renderProductForm(c, http.StatusOK, "Editar producto", "/productos/"+id+"/editar/", form, validationMessage(err))
			return
		}
		s.renderError(c, err)
		return
	}

	s.setFlash(c, flashSuccess, "Producto actualizado correctamente.")
	c.Redirect(http.StatusFound, "/productos/")
}

func (s *Server) ConfirmDeleteProduct(c *gin.Context) {
	id := c.Param("id")

	product, err := s.productSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		s.renderError(c, err)
		return
	}

	s.render(c, http.StatusOK, "confirm_delete.html", gin.H{
		"Titulo":      "Eliminar producto",
		"Descripcion": product.Name,
		"Accion":      "/productos/" + id + "/eliminar/",
		"Volver":      "/productos/",
	})
}

func (s *Server) DeleteProduct(c *gin.Context) {
	if err := s.productSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		s.renderError(c, err)
		return
	}

	s.setFlash(c, flashSuccess, "Producto eliminado.")
	c.Redirect(http.StatusFound, "/productos/")
}

func (s *Server) renderProductForm(c *gin.Context, status int, title, action string, form productForm, errMsg string) {
	data := gin.H{
		"Titulo":     "Productos: " + title,
		"Encabezado": title,
		"Accion":     action,
		"Form":       form,
	}
	if errMsg != "" {
		data["Flash"] = &Flash{Level: flashError, Message: errMsg}
	}
	s.render(c, status, "product_form.html", data)
}
