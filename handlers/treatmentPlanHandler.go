package handlers

import (
	"ClinicBridge/middlewares"
	"ClinicBridge/models"
	"ClinicBridge/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

type TreatmentPlanHandler struct {
	service *services.TreatmentPlanService
}

func NewTreatmentPlanHandler(service *services.TreatmentPlanService) *TreatmentPlanHandler {
	return &TreatmentPlanHandler{service: service}
}

func (h *TreatmentPlanHandler) CreateTreatmentPlan(c *gin.Context) {
	actor, ok := middlewares.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var input services.CreateTreatmentPlanInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	plan, err := h.service.Create(actor, c.Param("patient_id"), input)
	if err != nil {
		middlewares.HttpErrorFrom(c, err)
		return
	}
	c.JSON(201, plan)
}

func (h *TreatmentPlanHandler) UpdateTreatmentPlan(c *gin.Context) {
	actor, ok := middlewares.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var upd models.TreatmentPlanUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	plan, err := h.service.Update(actor, c.Param("treatment_plan_id"), upd)
	if err != nil {
		middlewares.HttpErrorFrom(c, err)
		return
	}
	c.JSON(200, plan)
}
