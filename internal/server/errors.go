package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	activitydomain "github.com/thelightspeed/crm/internal/activity/domain"
	companydomain "github.com/thelightspeed/crm/internal/company/domain"
	contactdomain "github.com/thelightspeed/crm/internal/contact/domain"
	opportunitydomain "github.com/thelightspeed/crm/internal/opportunity/domain"
	productdomain "github.com/thelightspeed/crm/internal/product/domain"
	tagdomain "github.com/thelightspeed/crm/internal/tag/domain"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// renderError maps a service error to the matching error page. Validation
// errors never reach here; form handlers surface those inline.
func (s *Server) renderError(c *gin.Context, err error) {
	if isNotFoundError(err) {
		s.render(c, http.StatusNotFound, "error.html", gin.H{
			"Titulo":  "No encontrado",
			"Mensaje": "El registro solicitado no existe.",
		})
		return
	}

	zap.L().Error("request failed",
		zap.String("path", c.Request.URL.Path),
		zap.Error(err),
	)
	s.render(c, http.StatusInternalServerError, "error.html", gin.H{
		"Titulo":  "Error interno",
		"Mensaje": "Ocurrió un error inesperado. Inténtalo de nuevo.",
	})
}

func isNotFoundError(err error) bool {
	switch {
	case errors.Is(err, companydomain.ErrNotFound),
		errors.Is(err, tagdomain.ErrNotFound),
		errors.Is(err, contactdomain.ErrNotFound),
		errors.Is(err, opportunitydomain.ErrNotFound),
		errors.Is(err, activitydomain.ErrNotFound),
		errors.Is(err, productdomain.ErrNotFound),
		errors.Is(err, companydomain.ErrInvalidID),
		errors.Is(err, tagdomain.ErrInvalidID),
		errors.Is(err, contactdomain.ErrInvalidID),
		errors.Is(err, opportunitydomain.ErrInvalidID),
		errors.Is(err, activitydomain.ErrInvalidID),
		errors.Is(err, productdomain.ErrInvalidID),
		errors.Is(err, gorm.ErrRecordNotFound):
		return true
	default:
		return false
	}
}

func isValidationError(err error) bool {
	switch {
	case errors.Is(err, companydomain.ErrInvalidName),
		errors.Is(err, tagdomain.ErrInvalidName),
		errors.Is(err, tagdomain.ErrDuplicateName),
		errors.Is(err, contactdomain.ErrInvalidName),
		errors.Is(err, contactdomain.ErrInvalidEmail),
		errors.Is(err, contactdomain.ErrInvalidCompany),
		errors.Is(err, contactdomain.ErrInvalidTag),
		errors.Is(err, opportunitydomain.ErrInvalidTitle),
		errors.Is(err, opportunitydomain.ErrInvalidValue),
		errors.Is(err, opportunitydomain.ErrInvalidCloseDate),
		errors.Is(err, opportunitydomain.ErrInvalidContact),
		errors.Is(err, opportunitydomain.ErrInvalidState),
		errors.Is(err, activitydomain.ErrInvalidType),
		errors.Is(err, activitydomain.ErrInvalidTitle),
		errors.Is(err, activitydomain.ErrInvalidWhen),
		errors.Is(err, activitydomain.ErrInvalidContact),
		errors.Is(err, activitydomain.ErrInvalidOpportunity),
		errors.Is(err, productdomain.ErrInvalidName),
		errors.Is(err, productdomain.ErrInvalidQuantity),
		errors.Is(err, productdomain.ErrInvalidPrice):
		return true
	default:
		return false
	}
}

// validationMessage translates a validation sentinel for display on the
// re-rendered form.
func validationMessage(err error) string {
	switch {
	case errors.Is(err, companydomain.ErrInvalidName),
		errors.Is(err, tagdomain.ErrInvalidName),
		errors.Is(err, contactdomain.ErrInvalidName),
		errors.Is(err, productdomain.ErrInvalidName):
		return "El nombre es obligatorio."
	case errors.Is(err, tagdomain.ErrDuplicateName):
		return "Ya existe una etiqueta con ese nombre."
	case errors.Is(err, contactdomain.ErrInvalidEmail):
		return "El correo electrónico no es válido."
	case errors.Is(err, contactdomain.ErrInvalidCompany):
		return "La empresa seleccionada no existe."
	case errors.Is(err, contactdomain.ErrInvalidTag):
		return "Alguna etiqueta seleccionada no existe."
	case errors.Is(err, opportunitydomain.ErrInvalidTitle),
		errors.Is(err, activitydomain.ErrInvalidTitle):
		return "El título es obligatorio."
	case errors.Is(err, opportunitydomain.ErrInvalidValue):
		return "El valor no es un importe válido."
	case errors.Is(err, opportunitydomain.ErrInvalidCloseDate):
		return "La fecha estimada de cierre no es válida."
	case errors.Is(err, opportunitydomain.ErrInvalidContact),
		errors.Is(err, activitydomain.ErrInvalidContact):
		return "El contacto seleccionado no existe."
	case errors.Is(err, opportunitydomain.ErrInvalidState):
		return "El estado no es válido."
	case errors.Is(err, activitydomain.ErrInvalidType):
		return "El tipo de actividad no es válido."
	case errors.Is(err, activitydomain.ErrInvalidWhen):
		return "La fecha no es válida."
	case errors.Is(err, activitydomain.ErrInvalidOpportunity):
		return "La oportunidad seleccionada no existe."
	case errors.Is(err, productdomain.ErrInvalidQuantity):
		return "La cantidad no es válida."
	case errors.Is(err, productdomain.ErrInvalidPrice):
		return "El precio no es válido."
	default:
		return "Los datos enviados no son válidos."
	}
}
