package services

import (
	"ClinicBridge/models"
	"ClinicBridge/repositories"
	"ClinicBridge/utils"
	"fmt"
	"strings"
	"time"
)

// CreateTreatmentPlanInput carries the fields of a new plan step.
type CreateTreatmentPlanInput struct {
	StepNumber      int        `json:"step_number"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	ScheduledDate   *time.Time `json:"scheduled_date"`
	Cost            float64    `json:"cost"`
	Status          string     `json:"status"`
	PaymentRequired *bool      `json:"payment_required"`
}

// TreatmentPlanService manages the lifecycle of treatment plan steps.
type TreatmentPlanService struct {
	planRepo     *repositories.TreatmentPlanRepository
	patientRepo  *repositories.PatientRepository
	activityRepo *repositories.ActivityRepository
}

func NewTreatmentPlanService(
	planRepo *repositories.TreatmentPlanRepository,
	patientRepo *repositories.PatientRepository,
	activityRepo *repositories.ActivityRepository,
) *TreatmentPlanService {
	return &TreatmentPlanService{planRepo: planRepo, patientRepo: patientRepo, activityRepo: activityRepo}
}

// Create adds a plan step to a patient. Status defaults to scheduled and
// payment is required unless the payload says otherwise.
func (s *TreatmentPlanService) Create(actor *models.User, patientID string, input CreateTreatmentPlanInput) (*models.TreatmentPlan, error) {
	if _, ok := s.patientRepo.GetByID(patientID); !ok {
		return nil, utils.NotFoundError("patient not found")
	}
	if err := utils.ValidateNewTreatmentPlan(strings.TrimSpace(input.Title), input.StepNumber); err != nil {
		return nil, utils.ValidationError("%v", err)
	}

	status := input.Status
	if status == "" {
		status = models.StepScheduled
	}
	paymentRequired := true
	if input.PaymentRequired != nil {
		paymentRequired = *input.PaymentRequired
	}

	plan := s.planRepo.Create(&models.TreatmentPlan{
		PatientID:       patientID,
		StepNumber:      input.StepNumber,
		Title:           input.Title,
		Description:     input.Description,
		ScheduledDate:   input.ScheduledDate,
		Cost:            input.Cost,
		Status:          status,
		PaymentRequired: paymentRequired,
	})

	s.activityRepo.Create(&models.Activity{
		UserID:      actor.ID,
		PatientID:   patientID,
		Action:      models.ActionTreatmentPlanCreated,
		Description: fmt.Sprintf("Created treatment plan step: %s", plan.Title),
		Metadata:    map[string]string{"treatmentPlanId": plan.ID},
	})
	return plan, nil
}

// Update applies a partial update to a plan step.
func (s *TreatmentPlanService) Update(actor *models.User, id string, upd models.TreatmentPlanUpdate) (*models.TreatmentPlan, error) {
	plan, ok := s.planRepo.Update(id, upd)
	if !ok {
		return nil, utils.NotFoundError("treatment plan not found")
	}

	s.activityRepo.Create(&models.Activity{
		UserID:      actor.ID,
		PatientID:   plan.PatientID,
		Action:      models.ActionTreatmentPlanUpdated,
		Description: fmt.Sprintf("Updated treatment plan: %s", plan.Title),
		Metadata:    map[string]string{"treatmentPlanId": plan.ID},
	})
	return plan, nil
}
