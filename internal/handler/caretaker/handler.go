package caretaker

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/careloop/caregiver-api/internal/handler"
	"github.com/careloop/caregiver-api/internal/model"
	"github.com/careloop/caregiver-api/internal/service/caretaker"
)

type Handler struct {
	service caretaker.Service
}

func NewHandler(service caretaker.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	ct := r.Group("/caretaker")
	{
		ct.POST("/add", h.AddCaretaker)
		ct.GET("/get", h.GetCaretakers)
		ct.POST("/update", h.UpdateCaretaker)
		ct.DELETE("/delete", h.DeleteCaretaker)
	}

	r.GET("/caretakers/all", h.ListByOrganization)
}

func (h *Handler) AddCaretaker(c *gin.Context) {
	var req model.CreateCaretakerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	created, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Caretaker added successfully",
		"id":      created.ID.String(),
	})
}

func (h *Handler) GetCaretakers(c *gin.Context) {
	patientID := c.Query("patientId")
	if patientID == "" {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("missing patientId"))
		return
	}

	caretakers, err := h.service.ListByPatient(c.Request.Context(), patientID)
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, caretakers)
}

func (h *Handler) UpdateCaretaker(c *gin.Context) {
	var req model.UpdateCaretakerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	id, err := uuid.Parse(req.ID)
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid caretaker ID"))
		return
	}

	if _, err := h.service.Update(c.Request.Context(), id, &req); err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Caretaker updated successfully"})
}

func (h *Handler) DeleteCaretaker(c *gin.Context) {
	var req model.DeleteCaretakerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	id, err := uuid.Parse(req.ID)
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid caretaker ID"))
		return
	}

	if err := h.service.Delete(c.Request.Context(), id, req.PatientID); err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Caretaker deleted successfully"})
}

func (h *Handler) ListByOrganization(c *gin.Context) {
	organizationID := c.Query("organizationId")
	if organizationID == "" {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("missing organizationId"))
		return
	}

	caretakers, err := h.service.ListByOrganization(c.Request.Context(), organizationID)
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, caretakers)
}
