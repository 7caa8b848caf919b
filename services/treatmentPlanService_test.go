package services

import (
	"ClinicBridge/models"
	"ClinicBridge/utils"
	"testing"
)

func TestCreateTreatmentPlanDefaults(t *testing.T) {
	env := newTestEnv(t)
	clinic := env.addClinician("clinic")
	rel := env.addConsultant(env.addConsultantUser("specialist").ID, clinic.ID)
	patient := env.addPatient("Alice", rel.ID, clinic.ID)

	plan, err := env.plans.Create(clinic, patient.ID, CreateTreatmentPlanInput{
		StepNumber: 1,
		Title:      "Initial consultation",
		Cost:       150,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if plan.Status != models.StepScheduled {
		t.Fatalf("Status = %q, want scheduled default", plan.Status)
	}
	if !plan.PaymentRequired {
		t.Fatalf("PaymentRequired defaults to true")
	}

	optOut := false
	free, err := env.plans.Create(clinic, patient.ID, CreateTreatmentPlanInput{
		StepNumber:      2,
		Title:           "Follow-up",
		PaymentRequired: &optOut,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if free.PaymentRequired {
		t.Fatalf("explicit opt-out ignored")
	}

	if _, err := env.plans.Create(clinic, patient.ID, CreateTreatmentPlanInput{StepNumber: 3}); utils.KindOf(err) != utils.KindValidation {
		t.Fatalf("missing title: %v", err)
	}
	if _, err := env.plans.Create(clinic, "missing", CreateTreatmentPlanInput{Title: "x"}); utils.KindOf(err) != utils.KindNotFound {
		t.Fatalf("unknown patient: %v", err)
	}
}

func TestUpdateTreatmentPlan(t *testing.T) {
	env := newTestEnv(t)
	clinic := env.addClinician("clinic")
	rel := env.addConsultant(env.addConsultantUser("specialist").ID, clinic.ID)
	patient := env.addPatient("Alice", rel.ID, clinic.ID)

	plan, err := env.plans.Create(clinic, patient.ID, CreateTreatmentPlanInput{StepNumber: 1, Title: "First"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	done := models.StepCompleted
	updated, err := env.plans.Update(clinic, plan.ID, models.TreatmentPlanUpdate{Status: &done})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Status != models.StepCompleted {
		t.Fatalf("Status = %q after update", updated.Status)
	}
	if updated.Title != "First" {
		t.Fatalf("unrelated field changed: %q", updated.Title)
	}

	if _, err := env.plans.Update(clinic, "missing", models.TreatmentPlanUpdate{Status: &done}); utils.KindOf(err) != utils.KindNotFound {
		t.Fatalf("unknown plan: %v", err)
	}

	if got := env.activityRepo.CountByAction(models.ActionTreatmentPlanUpdated); got != 1 {
		t.Fatalf("treatment_plan_updated activities = %d, want 1", got)
	}
}
