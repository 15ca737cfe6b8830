package audit

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/careloop/caregiver-api/internal/handler"
	"github.com/careloop/caregiver-api/internal/service/audit"
)

type Handler struct {
	service *audit.Service
}

func NewHandler(service *audit.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	logs := r.Group("/audit")
	{
		logs.GET("/logs", h.ListLogs)
	}
}

// ListLogs returns audit entries, newest first, optionally filtered by
// entityId, userId, or action.
func (h *Handler) ListLogs(c *gin.Context) {
	filters := make(map[string]interface{})

	if v := c.Query("entityId"); v != "" {
		filters["entity_id"] = v
	}
	if v := c.Query("userId"); v != "" {
		filters["user_id"] = v
	}
	if v := c.Query("action"); v != "" {
		filters["action"] = v
	}

	logs, err := h.service.List(c.Request.Context(), filters)
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(logs))
}
