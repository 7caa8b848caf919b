package utils

import "testing"

func TestValidateNewPatient(t *testing.T) {
	if err := ValidateNewPatient("Alice Smith", "consultant-1"); err != nil {
		t.Fatalf("valid patient rejected: %v", err)
	}
	if err := ValidateNewPatient("", "consultant-1"); err == nil {
		t.Fatalf("empty name accepted")
	}
	if err := ValidateNewPatient("Alice Smith", ""); err == nil {
		t.Fatalf("missing consultant accepted")
	}
}

func TestValidateNewTreatmentPlan(t *testing.T) {
	if err := ValidateNewTreatmentPlan("Root canal", 1); err != nil {
		t.Fatalf("valid step rejected: %v", err)
	}
	if err := ValidateNewTreatmentPlan("", 1); err == nil {
		t.Fatalf("untitled step accepted")
	}
	if err := ValidateNewTreatmentPlan("Root canal", -1); err == nil {
		t.Fatalf("negative step number accepted")
	}
}

func TestValidateNewPayment(t *testing.T) {
	if err := ValidateNewPayment(50); err != nil {
		t.Fatalf("valid amount rejected: %v", err)
	}
	if err := ValidateNewPayment(0); err == nil {
		t.Fatalf("zero amount accepted")
	}
	if err := ValidateNewPayment(-5); err == nil {
		t.Fatalf("negative amount accepted")
	}
}
