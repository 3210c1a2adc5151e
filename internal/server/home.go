package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) Home(c *gin.Context) {
	s.render(c, http.StatusOK, "home.html", gin.H{
		"Titulo": s.cfg.SiteName,
	})
}
