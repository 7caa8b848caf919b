package services

import (
	"ClinicBridge/models"
	"ClinicBridge/repositories"
	"ClinicBridge/utils"
	"fmt"
	"strings"
	"time"
)

// CreatePatientInput carries the caller-supplied fields of a new patient.
// The sequential patient identifier and the record id are assigned by the
// store, never by the caller.
type CreatePatientInput struct {
	Name            string     `json:"name"`
	Email           string     `json:"email"`
	Phone           string     `json:"phone"`
	DateOfBirth     *time.Time `json:"date_of_birth"`
	ConsultantID    string     `json:"consultant_id"`
	ClinicID        string     `json:"clinic_id"`
	ChiefComplaint  string     `json:"chief_complaint"`
	TreatmentType   string     `json:"treatment_type"`
	TreatmentStatus string     `json:"treatment_status"`
	TotalCost       float64    `json:"total_cost"`
	NextAppointment *time.Time `json:"next_appointment"`
	ClinicalNotes   string     `json:"clinical_notes"`
}

// PatientService carries the patient-facing domain operations and the
// read views built on top of them.
type PatientService struct {
	patientRepo    *repositories.PatientRepository
	consultantRepo *repositories.ConsultantRepository
	userRepo       *repositories.UserRepository
	planRepo       *repositories.TreatmentPlanRepository
	imageRepo      *repositories.MedicalImageRepository
	paymentRepo    *repositories.PaymentRepository
	activityRepo   *repositories.ActivityRepository
	access         *AccessService
}

func NewPatientService(
	patientRepo *repositories.PatientRepository,
	consultantRepo *repositories.ConsultantRepository,
	userRepo *repositories.UserRepository,
	planRepo *repositories.TreatmentPlanRepository,
	imageRepo *repositories.MedicalImageRepository,
	paymentRepo *repositories.PaymentRepository,
	activityRepo *repositories.ActivityRepository,
	access *AccessService,
) *PatientService {
	return &PatientService{
		patientRepo:    patientRepo,
		consultantRepo: consultantRepo,
		userRepo:       userRepo,
		planRepo:       planRepo,
		imageRepo:      imageRepo,
		paymentRepo:    paymentRepo,
		activityRepo:   activityRepo,
		access:         access,
	}
}

// Create registers a new patient. A clinician-originated creation binds
// the patient to the acting clinic; a consultant-originated creation must
// name the clinic in the payload. Statuses default to active/pending with
// a zero balance.
func (s *PatientService) Create(actor *models.User, input CreatePatientInput) (*models.Patient, error) {
	if err := utils.ValidateNewPatient(strings.TrimSpace(input.Name), input.ConsultantID); err != nil {
		return nil, utils.ValidationError("%v", err)
	}

	clinicID := input.ClinicID
	if actor.CurrentRole == models.RoleClinician {
		clinicID = actor.ID
	}
	if clinicID == "" {
		return nil, utils.ValidationError("clinic_id is required")
	}

	treatmentStatus := input.TreatmentStatus
	if treatmentStatus == "" {
		treatmentStatus = models.TreatmentActive
	}

	patient := s.patientRepo.Create(&models.Patient{
		Name:            input.Name,
		Email:           input.Email,
		Phone:           input.Phone,
		DateOfBirth:     input.DateOfBirth,
		ConsultantID:    input.ConsultantID,
		ClinicID:        clinicID,
		ChiefComplaint:  input.ChiefComplaint,
		TreatmentType:   input.TreatmentType,
		TreatmentStatus: treatmentStatus,
		TotalCost:       input.TotalCost,
		AmountPaid:      0,
		PaymentStatus:   models.PaymentPending,
		NextAppointment: input.NextAppointment,
		ClinicalNotes:   input.ClinicalNotes,
	})

	s.activityRepo.Create(&models.Activity{
		UserID:      actor.ID,
		PatientID:   patient.ID,
		Action:      models.ActionPatientCreated,
		Description: fmt.Sprintf("Created new patient: %s", patient.Name),
		Metadata:    map[string]string{"patientId": patient.ID},
	})
	return patient, nil
}

// Update applies a partial update to a patient and records the changed
// field names in the audit trail.
func (s *PatientService) Update(actor *models.User, id string, upd models.PatientUpdate) (*models.Patient, error) {
	existing, ok := s.patientRepo.GetByID(id)
	if !ok {
		return nil, utils.NotFoundError("patient not found")
	}
	if !s.access.CanAccessPatient(actor, existing) {
		return nil, utils.ForbiddenError("access denied")
	}

	patient, ok := s.patientRepo.Update(id, upd)
	if !ok {
		return nil, utils.NotFoundError("patient not found")
	}

	s.activityRepo.Create(&models.Activity{
		UserID:      actor.ID,
		PatientID:   patient.ID,
		Action:      models.ActionPatientUpdated,
		Description: fmt.Sprintf("Updated patient: %s", existing.Name),
		Metadata: map[string]string{
			"patientId": patient.ID,
			"updates":   strings.Join(upd.ChangedFields(), ","),
		},
	})
	return patient, nil
}

// ListEnriched returns the caller's visible patients, each annotated with
// its consultant's user record and its clinic record. A dangling
// reference leaves the field unset rather than failing the list.
func (s *PatientService) ListEnriched(actor *models.User) []models.EnrichedPatient {
	patients := s.access.VisiblePatients(actor)
	result := make([]models.EnrichedPatient, 0, len(patients))
	for _, p := range patients {
		enriched := models.EnrichedPatient{Patient: p}
		if consultant, ok := s.consultantRepo.GetByID(p.ConsultantID); ok {
			if consultantUser, ok := s.userRepo.GetByID(consultant.UserID); ok {
				enriched.Consultant = consultantUser
			}
		}
		if clinic, ok := s.userRepo.GetByID(p.ClinicID); ok {
			enriched.Clinic = clinic
		}
		result = append(result, enriched)
	}
	return result
}

// GetDetail returns one patient with its ordered treatment history.
// The primary lookup is fatal (NotFound); the caller must pass the access
// check or the whole call fails Forbidden.
func (s *PatientService) GetDetail(actor *models.User, id string) (*models.PatientDetail, error) {
	patient, ok := s.patientRepo.GetByID(id)
	if !ok {
		return nil, utils.NotFoundError("patient not found")
	}
	if !s.access.CanAccessPatient(actor, patient) {
		return nil, utils.ForbiddenError("access denied")
	}

	return &models.PatientDetail{
		Patient:        *patient,
		TreatmentPlans: s.planRepo.GetByPatient(id),
		MedicalImages:  s.imageRepo.GetByPatient(id),
		Payments:       s.paymentRepo.GetByPatient(id),
	}, nil
}
