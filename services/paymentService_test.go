package services

import (
	"ClinicBridge/models"
	"ClinicBridge/utils"
	"testing"
)

func TestRecordPaymentUpdatesBalance(t *testing.T) {
	env := newTestEnv(t)
	clinic := env.addClinician("clinic")
	rel := env.addConsultant(env.addConsultantUser("specialist").ID, clinic.ID)
	patient := env.addPatient("Alice", rel.ID, clinic.ID)
	cost := 100.0
	env.patientRepo.Update(patient.ID, models.PatientUpdate{TotalCost: &cost})

	payment, err := env.payments.Record(clinic, patient.ID, RecordPaymentInput{Amount: 40, PaymentMethod: "card"})
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if payment.RecordedBy != clinic.ID {
		t.Fatalf("RecordedBy = %q", payment.RecordedBy)
	}

	after, _ := env.patientRepo.GetByID(patient.ID)
	if after.AmountPaid != 40 || after.PaymentStatus != models.PaymentCurrent {
		t.Fatalf("after partial payment: paid=%v status=%q", after.AmountPaid, after.PaymentStatus)
	}

	// Over-payment is accepted and completes the balance.
	if _, err := env.payments.Record(clinic, patient.ID, RecordPaymentInput{Amount: 80}); err != nil {
		t.Fatalf("Record over-payment: %v", err)
	}
	after, _ = env.patientRepo.GetByID(patient.ID)
	if after.AmountPaid != 120 || after.PaymentStatus != models.PaymentCompleted {
		t.Fatalf("after over-payment: paid=%v status=%q", after.AmountPaid, after.PaymentStatus)
	}

	if got := env.activityRepo.CountByAction(models.ActionPaymentRecorded); got != 2 {
		t.Fatalf("payment_recorded activities = %d, want 2", got)
	}
}

func TestRecordPaymentValidation(t *testing.T) {
	env := newTestEnv(t)
	clinic := env.addClinician("clinic")
	rel := env.addConsultant(env.addConsultantUser("specialist").ID, clinic.ID)
	patient := env.addPatient("Alice", rel.ID, clinic.ID)

	if _, err := env.payments.Record(clinic, patient.ID, RecordPaymentInput{Amount: 0}); utils.KindOf(err) != utils.KindValidation {
		t.Fatalf("zero amount: %v", err)
	}
	if _, err := env.payments.Record(clinic, patient.ID, RecordPaymentInput{Amount: -5}); utils.KindOf(err) != utils.KindValidation {
		t.Fatalf("negative amount: %v", err)
	}
	if _, err := env.payments.Record(clinic, "missing", RecordPaymentInput{Amount: 10}); utils.KindOf(err) != utils.KindNotFound {
		t.Fatalf("unknown patient: %v", err)
	}

	// Nothing was recorded for the failed attempts.
	if got := len(env.paymentRepo.GetByPatient(patient.ID)); got != 0 {
		t.Fatalf("failed attempts left %d payment rows", got)
	}
}

func TestRecordPaymentCompensatesWhenPatientVanishes(t *testing.T) {
	env := newTestEnv(t)
	clinic := env.addClinician("clinic")
	rel := env.addConsultant(env.addConsultantUser("specialist").ID, clinic.ID)
	patient := env.addPatient("Alice", rel.ID, clinic.ID)

	// Simulate the patient disappearing between the pre-check and the
	// balance application by deleting through a stale reference.
	env.patientRepo.Delete(patient.ID)

	if _, err := env.payments.Record(clinic, patient.ID, RecordPaymentInput{Amount: 10}); utils.KindOf(err) != utils.KindNotFound {
		t.Fatalf("payment against deleted patient: %v", err)
	}
	if got := len(env.paymentRepo.GetByPatient(patient.ID)); got != 0 {
		t.Fatalf("orphan payment rows survived: %d", got)
	}
}
