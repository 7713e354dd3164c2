package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/placer-backend/internal/services"
)

type StatusHandler struct {
	statusService services.StatusService
}

func NewStatusHandler(statusService services.StatusService) *StatusHandler {
	return &StatusHandler{statusService: statusService}
}

// POST /api/status
func (sh *StatusHandler) Create(c *gin.Context) {
	var req struct {
		ClientName string `json:"client_name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	check, err := sh.statusService.Create(c.Request.Context(), req.ClientName)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, check)
}

// GET /api/status
func (sh *StatusHandler) List(c *gin.Context) {
	checks, err := sh.statusService.List(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, checks)
}
