package handler

import (
	"net/http"

	"aeon_dashboard/internal/dispatch"
	"aeon_dashboard/internal/pkg"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type QueryHandler struct {
	dispatcher *dispatch.Dispatcher
	log        *logrus.Entry
}

type QueryReq struct {
	Action string         `json:"action"`
	Params map[string]any `json:"params"`
}

func NewQueryHandler(dispatcher *dispatch.Dispatcher, log *logrus.Entry) *QueryHandler {
	return &QueryHandler{dispatcher: dispatcher, log: log}
}

// Handle is the single action-dispatch endpoint. An unknown action name
// comes back as 400; every other failure, validation included, is a 500
// carrying the message verbatim, with the cause logged server-side.
func (h *QueryHandler) Handle(c *gin.Context) {
	var req QueryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.Action == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "action is required"})
		return
	}

	data, err := h.dispatcher.Dispatch(c.Request.Context(), req.Action, req.Params)
	if err != nil {
		if pkg.IsUnknownAction(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if h.log != nil {
			h.log.WithError(err).WithField("action", req.Action).Error("action failed")
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": data})
}
