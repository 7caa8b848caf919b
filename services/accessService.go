package services

import (
	"ClinicBridge/models"
	"ClinicBridge/repositories"
)

// AccessService is the single source of truth for role-scoped visibility.
// Every entry point consults it instead of re-deriving the rules. Scoping
// is always evaluated against the user's CurrentRole, never the full roles
// set: the same person can act as clinician for one clinic and consultant
// for another.
type AccessService struct {
	patientRepo    *repositories.PatientRepository
	consultantRepo *repositories.ConsultantRepository
}

func NewAccessService(patientRepo *repositories.PatientRepository, consultantRepo *repositories.ConsultantRepository) *AccessService {
	return &AccessService{patientRepo: patientRepo, consultantRepo: consultantRepo}
}

// VisiblePatients returns the patients the user may see under the active
// role. Clinicians see the patients of their clinic; consultants see the
// union of patients across every relationship row they hold, one subset
// per clinic.
func (s *AccessService) VisiblePatients(user *models.User) []models.Patient {
	if user == nil {
		return nil
	}
	switch user.CurrentRole {
	case models.RoleClinician:
		return s.patientRepo.GetByClinic(user.ID)
	case models.RoleConsultant:
		var result []models.Patient
		for _, c := range s.consultantRepo.GetByUser(user.ID) {
			result = append(result, s.patientRepo.GetByConsultant(c.ID)...)
		}
		return result
	default:
		return nil
	}
}

// VisiblePatientIDs is VisiblePatients reduced to an id set, for
// membership checks and payment aggregation.
func (s *AccessService) VisiblePatientIDs(user *models.User) map[string]bool {
	patients := s.VisiblePatients(user)
	ids := make(map[string]bool, len(patients))
	for _, p := range patients {
		ids[p.ID] = true
	}
	return ids
}

// CanAccessPatient reports whether the user may read or mutate the given
// patient under the same rule as VisiblePatients. It fails closed: any
// nil input or unmatched role yields false, never an error.
func (s *AccessService) CanAccessPatient(user *models.User, patient *models.Patient) bool {
	if user == nil || patient == nil {
		return false
	}
	switch user.CurrentRole {
	case models.RoleClinician:
		return patient.ClinicID == user.ID
	case models.RoleConsultant:
		for _, c := range s.consultantRepo.GetByUser(user.ID) {
			if c.ID == patient.ConsultantID {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// VisibleConsultants returns a clinic's active consultant relationships.
func (s *AccessService) VisibleConsultants(clinicID string) []models.Consultant {
	return s.consultantRepo.GetByClinic(clinicID)
}

// CanManageConsultants reports whether the user may list or create
// consultant relationships; that is clinician-exclusive.
func (s *AccessService) CanManageConsultants(user *models.User) bool {
	return user != nil && user.CurrentRole == models.RoleClinician
}
