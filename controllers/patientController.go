package controllers

import (
	"ClinicBridge/handlers"

	"github.com/gin-gonic/gin"
)

// SetupPatientRoutes registers the clinical data routes. All of them
// require an authenticated session.
func SetupPatientRoutes(
	router *gin.Engine,
	sessionAuth gin.HandlerFunc,
	patientHandler *handlers.PatientHandler,
	consultantHandler *handlers.ConsultantHandler,
	treatmentPlanHandler *handlers.TreatmentPlanHandler,
	paymentHandler *handlers.PaymentHandler,
	imageHandler *handlers.ImageHandler,
	dashboardHandler *handlers.DashboardHandler,
) {
	api := router.Group("/api").Use(sessionAuth)

	api.GET("/dashboard/stats", dashboardHandler.GetStats)
	api.GET("/dashboard/activities", dashboardHandler.GetRecentActivities)

	api.GET("/consultants", consultantHandler.ListConsultants)
	api.POST("/consultants", consultantHandler.CreateConsultant)

	api.GET("/patients", patientHandler.ListPatients)
	api.GET("/patients/:patient_id", patientHandler.GetPatientDetail)
	api.POST("/patients", patientHandler.CreatePatient)
	api.PUT("/patients/:patient_id", patientHandler.UpdatePatient)

	api.POST("/patients/:patient_id/treatment-plans", treatmentPlanHandler.CreateTreatmentPlan)
	api.PUT("/treatment-plans/:treatment_plan_id", treatmentPlanHandler.UpdateTreatmentPlan)

	api.POST("/patients/:patient_id/payments", paymentHandler.RecordPayment)

	api.POST("/patients/:patient_id/images", imageHandler.UploadImage)
	api.DELETE("/images/:image_id", imageHandler.DeleteImage)
}
