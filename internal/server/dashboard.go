package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	opportunitydomain "github.com/thelightspeed/crm/internal/opportunity/domain"
)

type stateCount struct {
	State string
	Count int64
}

func (s *Server) Dashboard(c *gin.Context) {
	summary, err := s.dashboardSvc.Summary(c.Request.Context())
	if err != nil {
		s.renderError(c, err)
		return
	}

	counts := make([]stateCount, 0, len(opportunitydomain.States()))
	for _, state := range opportunitydomain.States() {
		counts = append(counts, stateCount{State: state, Count: summary.CountsByState[state]})
	}

	s.render(c, http.StatusOK, "dashboard.html", gin.H{
		"Titulo":              "Panel",
		"TotalContactos":      summary.ContactCount,
		"TotalOportunidades":  summary.OpportunityCount,
		"ValorPipeline":       summary.PipelineValueCents,
		"ConteosPorEstado":    counts,
		"ActividadesReciente": summary.RecentActivities,
	})
}
