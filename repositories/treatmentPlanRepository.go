package repositories

import (
	"ClinicBridge/models"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// TreatmentPlanRepository stores treatment plan steps. Insertion order is
// remembered so that steps sharing a step number list in the order they
// were created.
type TreatmentPlanRepository struct {
	mu    sync.RWMutex
	plans map[string]*models.TreatmentPlan
	order []string
}

func NewTreatmentPlanRepository() *TreatmentPlanRepository {
	return &TreatmentPlanRepository{plans: make(map[string]*models.TreatmentPlan)}
}

func copyPlan(p *models.TreatmentPlan) *models.TreatmentPlan {
	cp := *p
	return &cp
}

func (r *TreatmentPlanRepository) Create(plan *models.TreatmentPlan) *models.TreatmentPlan {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := copyPlan(plan)
	stored.ID = uuid.New().String()
	stored.CreatedAt = time.Now()
	r.plans[stored.ID] = stored
	r.order = append(r.order, stored.ID)
	return copyPlan(stored)
}

func (r *TreatmentPlanRepository) GetByID(id string) (*models.TreatmentPlan, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.plans[id]
	if !ok {
		return nil, false
	}
	return copyPlan(p), true
}

// GetByPatient returns a patient's plan steps ascending by step number,
// ties in insertion order.
func (r *TreatmentPlanRepository) GetByPatient(patientID string) []models.TreatmentPlan {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []models.TreatmentPlan
	for _, id := range r.order {
		if p, ok := r.plans[id]; ok && p.PatientID == patientID {
			result = append(result, *copyPlan(p))
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].StepNumber < result[j].StepNumber
	})
	return result
}

func (r *TreatmentPlanRepository) Update(id string, upd models.TreatmentPlanUpdate) (*models.TreatmentPlan, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.plans[id]
	if !ok {
		return nil, false
	}
	if upd.StepNumber != nil {
		p.StepNumber = *upd.StepNumber
	}
	if upd.Title != nil {
		p.Title = *upd.Title
	}
	if upd.Description != nil {
		p.Description = *upd.Description
	}
	if upd.ScheduledDate != nil {
		p.ScheduledDate = upd.ScheduledDate
	}
	if upd.CompletedDate != nil {
		p.CompletedDate = upd.CompletedDate
	}
	if upd.Cost != nil {
		p.Cost = *upd.Cost
	}
	if upd.Status != nil {
		p.Status = *upd.Status
	}
	if upd.PaymentRequired != nil {
		p.PaymentRequired = *upd.PaymentRequired
	}
	return copyPlan(p), true
}
