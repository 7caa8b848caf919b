package repositories

import (
	"ClinicBridge/models"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// PaymentRepository stores payment records. PaymentDate is set at
// creation, never caller-supplied.
type PaymentRepository struct {
	mu       sync.RWMutex
	payments map[string]*models.Payment
	order    []string
}

func NewPaymentRepository() *PaymentRepository {
	return &PaymentRepository{payments: make(map[string]*models.Payment)}
}

func copyPayment(p *models.Payment) *models.Payment {
	cp := *p
	return &cp
}

func (r *PaymentRepository) Create(payment *models.Payment) *models.Payment {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := copyPayment(payment)
	stored.ID = uuid.New().String()
	stored.PaymentDate = time.Now()
	r.payments[stored.ID] = stored
	r.order = append(r.order, stored.ID)
	return copyPayment(stored)
}

func (r *PaymentRepository) GetByID(id string) (*models.Payment, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.payments[id]
	if !ok {
		return nil, false
	}
	return copyPayment(p), true
}

// GetByPatient returns a patient's payments most recent first.
func (r *PaymentRepository) GetByPatient(patientID string) []models.Payment {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []models.Payment
	for _, id := range r.order {
		if p, ok := r.payments[id]; ok && p.PatientID == patientID {
			result = append(result, *copyPayment(p))
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].PaymentDate.After(result[j].PaymentDate)
	})
	return result
}

// GetForPatients returns all payments belonging to the given patient id
// set, in no particular order.
func (r *PaymentRepository) GetForPatients(patientIDs map[string]bool) []models.Payment {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []models.Payment
	for _, id := range r.order {
		if p, ok := r.payments[id]; ok && patientIDs[p.PatientID] {
			result = append(result, *copyPayment(p))
		}
	}
	return result
}

// Delete removes a payment if present and reports whether it was. Used
// only to compensate a payment whose patient vanished before the balance
// could be applied.
func (r *PaymentRepository) Delete(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.payments[id]; !ok {
		return false
	}
	delete(r.payments, id)
	return true
}
