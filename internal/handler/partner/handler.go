package partner

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/careloop/caregiver-api/internal/handler"
	"github.com/careloop/caregiver-api/internal/model"
	"github.com/careloop/caregiver-api/internal/service/partner"
)

type Handler struct {
	service partner.Service
}

func NewHandler(service partner.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	p := r.Group("/partner")
	{
		p.POST("/generate", h.GenerateCode)
		p.GET("/:code", h.ResolveCode)
	}
}

func (h *Handler) GenerateCode(c *gin.Context) {
	var req model.GeneratePartnerCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	code, err := h.service.Generate(c.Request.Context(), req.UserID)
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Partner code generated successfully",
		"userId":      req.UserID,
		"partnerCode": code,
	})
}

func (h *Handler) ResolveCode(c *gin.Context) {
	userID, err := h.service.Resolve(c.Request.Context(), c.Param("code"))
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Partner code resolved successfully",
		"userId":  userID,
	})
}
