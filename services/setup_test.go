package services

import (
	"ClinicBridge/models"
	"ClinicBridge/repositories"
	"testing"
)

// testEnv wires the services against real in-memory repositories so the
// tests exercise the same paths the server does.
type testEnv struct {
	userRepo       *repositories.UserRepository
	consultantRepo *repositories.ConsultantRepository
	patientRepo    *repositories.PatientRepository
	planRepo       *repositories.TreatmentPlanRepository
	imageRepo      *repositories.MedicalImageRepository
	paymentRepo    *repositories.PaymentRepository
	activityRepo   *repositories.ActivityRepository

	access      *AccessService
	patients    *PatientService
	consultants *ConsultantService
	plans       *TreatmentPlanService
	payments    *PaymentService
	images      *ImageService
	dashboard   *DashboardService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		userRepo:       repositories.NewUserRepository(),
		consultantRepo: repositories.NewConsultantRepository(),
		patientRepo:    repositories.NewPatientRepository(),
		planRepo:       repositories.NewTreatmentPlanRepository(),
		imageRepo:      repositories.NewMedicalImageRepository(),
		paymentRepo:    repositories.NewPaymentRepository(),
		activityRepo:   repositories.NewActivityRepository(),
	}
	env.access = NewAccessService(env.patientRepo, env.consultantRepo)
	env.patients = NewPatientService(env.patientRepo, env.consultantRepo, env.userRepo, env.planRepo, env.imageRepo, env.paymentRepo, env.activityRepo, env.access)
	env.consultants = NewConsultantService(env.consultantRepo, env.patientRepo, env.userRepo, env.activityRepo, env.access)
	env.plans = NewTreatmentPlanService(env.planRepo, env.patientRepo, env.activityRepo)
	env.payments = NewPaymentService(env.paymentRepo, env.patientRepo, env.activityRepo)
	env.images = NewImageService(env.imageRepo, env.patientRepo, env.activityRepo)
	env.dashboard = NewDashboardService(env.patientRepo, env.consultantRepo, env.paymentRepo, env.activityRepo, env.access)
	return env
}

func (env *testEnv) addClinician(name string) *models.User {
	return env.userRepo.Create(&models.User{
		Username:    name,
		Name:        name,
		Email:       name + "@clinic.test",
		Roles:       []string{models.RoleClinician},
		CurrentRole: models.RoleClinician,
		ClinicName:  name + " clinic",
	})
}

func (env *testEnv) addConsultantUser(name string) *models.User {
	return env.userRepo.Create(&models.User{
		Username:    name,
		Name:        name,
		Email:       name + "@consult.test",
		Roles:       []string{models.RoleConsultant},
		CurrentRole: models.RoleConsultant,
		Specialty:   "orthodontics",
	})
}

func (env *testEnv) addConsultant(userID, clinicID string) *models.Consultant {
	return env.consultantRepo.Create(&models.Consultant{
		UserID:    userID,
		ClinicID:  clinicID,
		Specialty: "orthodontics",
		IsActive:  true,
	})
}

func (env *testEnv) addPatient(name, consultantID, clinicID string) *models.Patient {
	return env.patientRepo.Create(&models.Patient{
		Name:            name,
		ConsultantID:    consultantID,
		ClinicID:        clinicID,
		TreatmentStatus: models.TreatmentActive,
		PaymentStatus:   models.PaymentPending,
	})
}
