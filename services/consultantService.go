package services

import (
	"ClinicBridge/models"
	"ClinicBridge/repositories"
	"ClinicBridge/utils"
	"fmt"
	"time"
)

// CreateConsultantInput carries the fields of a new consultant-clinic
// relationship. The clinic is always the acting clinician.
type CreateConsultantInput struct {
	UserID    string     `json:"user_id"`
	Specialty string     `json:"specialty"`
	NextVisit *time.Time `json:"next_visit"`
}

// ConsultantService manages consultant-clinic relationships; listing and
// creation are clinician-exclusive.
type ConsultantService struct {
	consultantRepo *repositories.ConsultantRepository
	patientRepo    *repositories.PatientRepository
	userRepo       *repositories.UserRepository
	activityRepo   *repositories.ActivityRepository
	access         *AccessService
}

func NewConsultantService(
	consultantRepo *repositories.ConsultantRepository,
	patientRepo *repositories.PatientRepository,
	userRepo *repositories.UserRepository,
	activityRepo *repositories.ActivityRepository,
	access *AccessService,
) *ConsultantService {
	return &ConsultantService{
		consultantRepo: consultantRepo,
		patientRepo:    patientRepo,
		userRepo:       userRepo,
		activityRepo:   activityRepo,
		access:         access,
	}
}

// ListWithStats returns the clinic's active consultants, each annotated
// with the consultant's user record and a patient count. A missing user
// record leaves the field unset; the access check failing fails the
// whole call.
func (s *ConsultantService) ListWithStats(actor *models.User) ([]models.ConsultantWithStats, error) {
	if !s.access.CanManageConsultants(actor) {
		return nil, utils.ForbiddenError("access denied")
	}

	consultants := s.access.VisibleConsultants(actor.ID)
	result := make([]models.ConsultantWithStats, 0, len(consultants))
	for _, c := range consultants {
		entry := models.ConsultantWithStats{
			Consultant:   c,
			PatientCount: len(s.patientRepo.GetByConsultant(c.ID)),
		}
		if user, ok := s.userRepo.GetByID(c.UserID); ok {
			entry.User = user
		}
		result = append(result, entry)
	}
	return result, nil
}

// Create adds a consultant relationship for the acting clinic. At most
// one relationship may exist per (user, clinic) pair, active or not.
func (s *ConsultantService) Create(actor *models.User, input CreateConsultantInput) (*models.Consultant, error) {
	if !s.access.CanManageConsultants(actor) {
		return nil, utils.ForbiddenError("access denied")
	}
	if input.UserID == "" {
		return nil, utils.ValidationError("user_id is required")
	}
	if _, exists := s.consultantRepo.GetByUserAndClinic(input.UserID, actor.ID); exists {
		return nil, utils.ConflictError("consultant already exists for this clinic")
	}

	consultant := s.consultantRepo.Create(&models.Consultant{
		UserID:    input.UserID,
		ClinicID:  actor.ID,
		Specialty: input.Specialty,
		NextVisit: input.NextVisit,
		IsActive:  true,
	})

	s.activityRepo.Create(&models.Activity{
		UserID:      actor.ID,
		Action:      models.ActionConsultantAdded,
		Description: fmt.Sprintf("Added new consultant: %s", consultant.Specialty),
		Metadata:    map[string]string{"consultantId": consultant.ID},
	})
	return consultant, nil
}
