package repositories

import (
	"ClinicBridge/models"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// PatientRepository stores patients and owns the human-readable patient
// sequence. The sequence is a monotonic counter advanced under the same
// lock that inserts the patient, so two concurrent creations can never
// receive the same number.
type PatientRepository struct {
	mu       sync.RWMutex
	patients map[string]*models.Patient
	lastSeq  int
}

func NewPatientRepository() *PatientRepository {
	return &PatientRepository{patients: make(map[string]*models.Patient)}
}

func copyPatient(p *models.Patient) *models.Patient {
	cp := *p
	return &cp
}

// Create assigns the primary key, the next sequential patient identifier
// (zero-padded to 5 digits) and both timestamps, then stores the patient.
func (r *PatientRepository) Create(patient *models.Patient) *models.Patient {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastSeq++
	now := time.Now()

	stored := copyPatient(patient)
	stored.ID = uuid.New().String()
	stored.PatientID = fmt.Sprintf("%05d", r.lastSeq)
	stored.CreatedAt = now
	stored.UpdatedAt = now
	r.patients[stored.ID] = stored
	return copyPatient(stored)
}

func (r *PatientRepository) GetByID(id string) (*models.Patient, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.patients[id]
	if !ok {
		return nil, false
	}
	return copyPatient(p), true
}

func (r *PatientRepository) GetByClinic(clinicID string) []models.Patient {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []models.Patient
	for _, p := range r.patients {
		if p.ClinicID == clinicID {
			result = append(result, *copyPatient(p))
		}
	}
	return result
}

func (r *PatientRepository) GetByConsultant(consultantID string) []models.Patient {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []models.Patient
	for _, p := range r.patients {
		if p.ConsultantID == consultantID {
			result = append(result, *copyPatient(p))
		}
	}
	return result
}

// Update applies the set fields of the update command, refreshes
// UpdatedAt and returns the updated record, or false if the id is
// unknown.
func (r *PatientRepository) Update(id string, upd models.PatientUpdate) (*models.Patient, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.patients[id]
	if !ok {
		return nil, false
	}
	if upd.Name != nil {
		p.Name = *upd.Name
	}
	if upd.Email != nil {
		p.Email = *upd.Email
	}
	if upd.Phone != nil {
		p.Phone = *upd.Phone
	}
	if upd.DateOfBirth != nil {
		p.DateOfBirth = upd.DateOfBirth
	}
	if upd.ChiefComplaint != nil {
		p.ChiefComplaint = *upd.ChiefComplaint
	}
	if upd.TreatmentType != nil {
		p.TreatmentType = *upd.TreatmentType
	}
	if upd.TreatmentStatus != nil {
		p.TreatmentStatus = *upd.TreatmentStatus
	}
	if upd.ProgressPercentage != nil {
		p.ProgressPercentage = *upd.ProgressPercentage
	}
	if upd.TotalCost != nil {
		p.TotalCost = *upd.TotalCost
	}
	if upd.PaymentStatus != nil {
		p.PaymentStatus = *upd.PaymentStatus
	}
	if upd.NextAppointment != nil {
		p.NextAppointment = upd.NextAppointment
	}
	if upd.ClinicalNotes != nil {
		p.ClinicalNotes = *upd.ClinicalNotes
	}
	p.UpdatedAt = time.Now()
	return copyPatient(p), true
}

// ApplyPayment adds the amount to the patient's running balance and
// recomputes the payment status in one locked step: "completed" once the
// balance reaches the total cost, otherwise "current". It never
// reintroduces "overdue" or "pending".
func (r *PatientRepository) ApplyPayment(id string, amount float64) (*models.Patient, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.patients[id]
	if !ok {
		return nil, false
	}
	p.AmountPaid += amount
	if p.AmountPaid >= p.TotalCost {
		p.PaymentStatus = models.PaymentCompleted
	} else {
		p.PaymentStatus = models.PaymentCurrent
	}
	p.UpdatedAt = time.Now()
	return copyPatient(p), true
}

// Delete removes a patient if present and reports whether it was.
func (r *PatientRepository) Delete(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.patients[id]; !ok {
		return false
	}
	delete(r.patients, id)
	return true
}
