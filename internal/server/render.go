package server

import (
	"embed"
	"html/template"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/thelightspeed/crm/pkg/money"
	"gorm.io/datatypes"
)

//go:embed templates/*.html
var templateFS embed.FS

func pageTemplates() *template.Template {
	funcs := template.FuncMap{
		"dinero":    money.FormatCents,
		"fecha":     formatDate,
		"fechaHora": formatDateTime,
	}
	return template.Must(template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html"))
}

func formatDate(v any) string {
	switch t := v.(type) {
	case time.Time:
		return t.Format("02/01/2006")
	case datatypes.Date:
		return time.Time(t).Format("02/01/2006")
	default:
		return ""
	}
}

func formatDateTime(t time.Time) string {
	return t.Format("02/01/2006 15:04")
}

// render wraps c.HTML adding the site name and the pending flash notice.
func (s *Server) render(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["Sitio"] = s.cfg.SiteName
	if _, ok := data["Flash"]; !ok {
		data["Flash"] = s.popFlash(c)
	}
	c.HTML(status, name, data)
}
