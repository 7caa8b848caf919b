package services

import (
	"ClinicBridge/models"
	"ClinicBridge/repositories"
	"ClinicBridge/utils"
	"fmt"
)

// RecordPaymentInput carries the fields of a new payment record.
type RecordPaymentInput struct {
	Amount          float64 `json:"amount"`
	PaymentMethod   string  `json:"payment_method"`
	Notes           string  `json:"notes"`
	TreatmentPlanID string  `json:"treatment_plan_id"`
}

// PaymentService records payments and keeps the owning patient's running
// balance in step.
type PaymentService struct {
	paymentRepo  *repositories.PaymentRepository
	patientRepo  *repositories.PatientRepository
	activityRepo *repositories.ActivityRepository
}

func NewPaymentService(
	paymentRepo *repositories.PaymentRepository,
	patientRepo *repositories.PatientRepository,
	activityRepo *repositories.ActivityRepository,
) *PaymentService {
	return &PaymentService{paymentRepo: paymentRepo, patientRepo: patientRepo, activityRepo: activityRepo}
}

// Record creates a payment and applies it to the patient's balance.
// Over-payment is allowed: the balance may exceed the total cost, at
// which point the status is "completed". The patient is verified before
// the payment row exists; if it vanishes between the two steps the row
// is removed again so no orphan payment survives.
func (s *PaymentService) Record(actor *models.User, patientID string, input RecordPaymentInput) (*models.Payment, error) {
	if err := utils.ValidateNewPayment(input.Amount); err != nil {
		return nil, utils.ValidationError("%v", err)
	}
	if _, ok := s.patientRepo.GetByID(patientID); !ok {
		return nil, utils.NotFoundError("patient not found")
	}

	payment := s.paymentRepo.Create(&models.Payment{
		PatientID:       patientID,
		TreatmentPlanID: input.TreatmentPlanID,
		Amount:          input.Amount,
		PaymentMethod:   input.PaymentMethod,
		Notes:           input.Notes,
		RecordedBy:      actor.ID,
	})

	if _, ok := s.patientRepo.ApplyPayment(patientID, payment.Amount); !ok {
		s.paymentRepo.Delete(payment.ID)
		return nil, utils.NotFoundError("patient not found")
	}

	s.activityRepo.Create(&models.Activity{
		UserID:      actor.ID,
		PatientID:   patientID,
		Action:      models.ActionPaymentRecorded,
		Description: fmt.Sprintf("Recorded payment: $%.2f", payment.Amount),
		Metadata:    map[string]string{"paymentId": payment.ID, "amount": fmt.Sprintf("%.2f", payment.Amount)},
	})
	return payment, nil
}
