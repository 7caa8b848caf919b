package handlers

import (
	"ClinicBridge/middlewares"
	"ClinicBridge/models"
	"ClinicBridge/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

type PatientHandler struct {
	service *services.PatientService
}

func NewPatientHandler(service *services.PatientService) *PatientHandler {
	return &PatientHandler{service: service}
}

func (h *PatientHandler) ListPatients(c *gin.Context) {
	actor, ok := middlewares.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}
	c.JSON(200, h.service.ListEnriched(actor))
}

func (h *PatientHandler) GetPatientDetail(c *gin.Context) {
	actor, ok := middlewares.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	detail, err := h.service.GetDetail(actor, c.Param("patient_id"))
	if err != nil {
		middlewares.HttpErrorFrom(c, err)
		return
	}
	c.JSON(200, detail)
}

func (h *PatientHandler) CreatePatient(c *gin.Context) {
	actor, ok := middlewares.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var input services.CreatePatientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	patient, err := h.service.Create(actor, input)
	if err != nil {
		middlewares.HttpErrorFrom(c, err)
		return
	}
	c.JSON(201, patient)
}

func (h *PatientHandler) UpdatePatient(c *gin.Context) {
	actor, ok := middlewares.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var upd models.PatientUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	patient, err := h.service.Update(actor, c.Param("patient_id"), upd)
	if err != nil {
		middlewares.HttpErrorFrom(c, err)
		return
	}
	c.JSON(200, patient)
}
