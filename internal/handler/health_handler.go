package handler

import (
	"net/http"

	"aeon_dashboard/internal/repository/postgres"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	db *postgres.DB
}

func NewHealthHandler(db *postgres.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Handle reports ok only once bootstrap completed and the datastore answers.
func (h *HealthHandler) Handle(c *gin.Context) {
	if !h.db.Ready() {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "bootstrap has not completed"})
		return
	}
	if err := h.db.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
