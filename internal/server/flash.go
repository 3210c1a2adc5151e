package server

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const flashCookie = "crm_notice"

// Flash is a one-shot notice surfaced on the next rendered page.
type Flash struct {
	Level   string
	Message string
}

const (
	flashSuccess = "exito"
	flashError   = "error"
)

// SetCookie query-escapes the value and Cookie unescapes it, so the
// raw "level|message" string round-trips as-is.
func (s *Server) setFlash(c *gin.Context, level, message string) {
	c.SetCookie(flashCookie, level+"|"+message, 60, "/", "", false, true)
}

// popFlash consumes the pending notice, if any.
func (s *Server) popFlash(c *gin.Context) *Flash {
	value, err := c.Cookie(flashCookie)
	if err != nil || value == "" {
		return nil
	}
	c.SetCookie(flashCookie, "", -1, "/", "", false, true)

	level, message, ok := strings.Cut(value, "|")
	if !ok {
		return nil
	}
	return &Flash{Level: level, Message: message}
}
