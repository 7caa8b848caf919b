package repositories

import (
	"ClinicBridge/models"
	"fmt"
	"sync"
	"testing"
)

func TestPatientCreateAssignsSequentialIDs(t *testing.T) {
	repo := NewPatientRepository()

	first := repo.Create(&models.Patient{Name: "Alice", ConsultantID: "c1", ClinicID: "cl1"})
	second := repo.Create(&models.Patient{Name: "Bob", ConsultantID: "c1", ClinicID: "cl1"})

	if first.PatientID != "00001" {
		t.Fatalf("first PatientID = %q, want 00001", first.PatientID)
	}
	if second.PatientID != "00002" {
		t.Fatalf("second PatientID = %q, want 00002", second.PatientID)
	}
	if first.ID == second.ID {
		t.Fatalf("internal ids must be unique, both were %q", first.ID)
	}

	// Deleting a patient never frees its sequence number.
	repo.Delete(second.ID)
	third := repo.Create(&models.Patient{Name: "Carol", ConsultantID: "c1", ClinicID: "cl1"})
	if third.PatientID != "00003" {
		t.Fatalf("after a deletion PatientID = %q, want 00003", third.PatientID)
	}
}

func TestPatientCreateConcurrentIDsAreUnique(t *testing.T) {
	repo := NewPatientRepository()
	const n = 50

	var wg sync.WaitGroup
	results := make(chan string, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			p := repo.Create(&models.Patient{Name: fmt.Sprintf("p%d", i), ConsultantID: "c1", ClinicID: "cl1"})
			results <- p.PatientID
		}(i)
	}
	wg.Wait()
	close(results)

	seen := make(map[string]bool, n)
	for id := range results {
		if seen[id] {
			t.Fatalf("duplicate PatientID %q under concurrent creates", id)
		}
		seen[id] = true
	}
	if len(seen) != n {
		t.Fatalf("got %d distinct ids, want %d", len(seen), n)
	}
}

func TestPatientUpdateMergesOnlySetFields(t *testing.T) {
	repo := NewPatientRepository()
	created := repo.Create(&models.Patient{
		Name:            "Alice",
		Phone:           "555-0100",
		ConsultantID:    "c1",
		ClinicID:        "cl1",
		TreatmentStatus: models.TreatmentActive,
	})

	name := "Alice Smith"
	updated, ok := repo.Update(created.ID, models.PatientUpdate{Name: &name})
	if !ok {
		t.Fatalf("update reported patient missing")
	}
	if updated.Name != "Alice Smith" {
		t.Fatalf("Name = %q after update", updated.Name)
	}
	if updated.Phone != "555-0100" {
		t.Fatalf("Phone changed by unrelated update: %q", updated.Phone)
	}
	if updated.ConsultantID != "c1" || updated.ClinicID != "cl1" {
		t.Fatalf("ownership fields must not change: %q %q", updated.ConsultantID, updated.ClinicID)
	}
	if !updated.UpdatedAt.After(created.UpdatedAt) && !updated.UpdatedAt.Equal(created.UpdatedAt) {
		t.Fatalf("UpdatedAt went backwards")
	}
}

func TestPatientUpdateUnknownID(t *testing.T) {
	repo := NewPatientRepository()
	name := "ghost"
	if _, ok := repo.Update("nope", models.PatientUpdate{Name: &name}); ok {
		t.Fatalf("update of unknown id succeeded")
	}
}

func TestApplyPaymentStatusTransitions(t *testing.T) {
	repo := NewPatientRepository()
	p := repo.Create(&models.Patient{
		Name:          "Alice",
		ConsultantID:  "c1",
		ClinicID:      "cl1",
		TotalCost:     100,
		PaymentStatus: models.PaymentPending,
	})

	after, ok := repo.ApplyPayment(p.ID, 40)
	if !ok {
		t.Fatalf("ApplyPayment reported patient missing")
	}
	if after.AmountPaid != 40 || after.PaymentStatus != models.PaymentCurrent {
		t.Fatalf("after partial payment: paid=%v status=%q", after.AmountPaid, after.PaymentStatus)
	}

	after, _ = repo.ApplyPayment(p.ID, 70)
	if after.AmountPaid != 110 {
		t.Fatalf("over-payment must accumulate, got %v", after.AmountPaid)
	}
	if after.PaymentStatus != models.PaymentCompleted {
		t.Fatalf("status = %q once paid >= total cost", after.PaymentStatus)
	}
}

func TestPatientCopyOnReturn(t *testing.T) {
	repo := NewPatientRepository()
	created := repo.Create(&models.Patient{Name: "Alice", ConsultantID: "c1", ClinicID: "cl1"})

	created.Name = "mutated"
	stored, ok := repo.GetByID(created.ID)
	if !ok {
		t.Fatalf("patient missing")
	}
	if stored.Name != "Alice" {
		t.Fatalf("mutating a returned patient leaked into the store: %q", stored.Name)
	}
}

func TestPatientScopedLookups(t *testing.T) {
	repo := NewPatientRepository()
	repo.Create(&models.Patient{Name: "a", ConsultantID: "c1", ClinicID: "cl1"})
	repo.Create(&models.Patient{Name: "b", ConsultantID: "c2", ClinicID: "cl1"})
	repo.Create(&models.Patient{Name: "c", ConsultantID: "c1", ClinicID: "cl2"})

	if got := len(repo.GetByClinic("cl1")); got != 2 {
		t.Fatalf("GetByClinic(cl1) = %d patients, want 2", got)
	}
	if got := len(repo.GetByConsultant("c1")); got != 2 {
		t.Fatalf("GetByConsultant(c1) = %d patients, want 2", got)
	}
	if got := len(repo.GetByClinic("unknown")); got != 0 {
		t.Fatalf("GetByClinic(unknown) = %d patients, want 0", got)
	}
}
