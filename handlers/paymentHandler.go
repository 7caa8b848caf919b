package handlers

import (
	"ClinicBridge/middlewares"
	"ClinicBridge/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	service *services.PaymentService
}

func NewPaymentHandler(service *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{service: service}
}

func (h *PaymentHandler) RecordPayment(c *gin.Context) {
	actor, ok := middlewares.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var input services.RecordPaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	payment, err := h.service.Record(actor, c.Param("patient_id"), input)
	if err != nil {
		middlewares.HttpErrorFrom(c, err)
		return
	}
	c.JSON(201, payment)
}
