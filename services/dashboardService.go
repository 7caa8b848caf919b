package services

import (
	"ClinicBridge/models"
	"ClinicBridge/repositories"
	"time"
)

// recentActivityLimit caps the dashboard activity feed.
const recentActivityLimit = 10

// DashboardService assembles the role-dependent aggregates for the
// dashboard without duplicating any state.
type DashboardService struct {
	patientRepo    *repositories.PatientRepository
	consultantRepo *repositories.ConsultantRepository
	paymentRepo    *repositories.PaymentRepository
	activityRepo   *repositories.ActivityRepository
	access         *AccessService
}

func NewDashboardService(
	patientRepo *repositories.PatientRepository,
	consultantRepo *repositories.ConsultantRepository,
	paymentRepo *repositories.PaymentRepository,
	activityRepo *repositories.ActivityRepository,
	access *AccessService,
) *DashboardService {
	return &DashboardService{
		patientRepo:    patientRepo,
		consultantRepo: consultantRepo,
		paymentRepo:    paymentRepo,
		activityRepo:   activityRepo,
		access:         access,
	}
}

// Stats computes the four dashboard metrics for the caller's active role.
// For clinicians the consultant count is the clinic's active consultants;
// for consultants it is the number of clinics the user is active at.
func (s *DashboardService) Stats(user *models.User) models.DashboardStats {
	patients := s.access.VisiblePatients(user)

	var consultants int
	switch user.CurrentRole {
	case models.RoleClinician:
		consultants = len(s.consultantRepo.GetByClinic(user.ID))
	case models.RoleConsultant:
		for _, c := range s.consultantRepo.GetByUser(user.ID) {
			if c.IsActive {
				consultants++
			}
		}
	}

	now := time.Now()
	stats := models.DashboardStats{Consultants: consultants}
	patientIDs := make(map[string]bool, len(patients))
	for _, p := range patients {
		patientIDs[p.ID] = true
		if p.TreatmentStatus == models.TreatmentActive {
			stats.ActivePatients++
		}
		if p.NextAppointment != nil && p.NextAppointment.After(now) {
			stats.Appointments++
		}
	}
	for _, payment := range s.paymentRepo.GetForPatients(patientIDs) {
		stats.Revenue += payment.Amount
	}
	return stats
}

// RecentActivities returns the ten newest audit entries visible to the
// caller. Clinicians see clinic-wide activity (global entries plus those
// tied to their patients); consultants see only actions they themselves
// performed. The asymmetry is intentional.
func (s *DashboardService) RecentActivities(user *models.User) []models.Activity {
	if user.CurrentRole == models.RoleClinician {
		return s.activityRepo.RecentForPatients(s.access.VisiblePatientIDs(user), recentActivityLimit)
	}
	return s.activityRepo.RecentByUser(user.ID, recentActivityLimit)
}
