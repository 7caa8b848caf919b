package handlers

import (
	"ClinicBridge/middlewares"
	"ClinicBridge/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ConsultantHandler struct {
	service *services.ConsultantService
}

func NewConsultantHandler(service *services.ConsultantService) *ConsultantHandler {
	return &ConsultantHandler{service: service}
}

func (h *ConsultantHandler) ListConsultants(c *gin.Context) {
	actor, ok := middlewares.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	consultants, err := h.service.ListWithStats(actor)
	if err != nil {
		middlewares.HttpErrorFrom(c, err)
		return
	}
	c.JSON(200, consultants)
}

func (h *ConsultantHandler) CreateConsultant(c *gin.Context) {
	actor, ok := middlewares.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var input services.CreateConsultantInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	consultant, err := h.service.Create(actor, input)
	if err != nil {
		middlewares.HttpErrorFrom(c, err)
		return
	}
	c.JSON(201, consultant)
}
