package repositories

import (
	"ClinicBridge/models"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ConsultantRepository stores consultant-clinic relationship rows.
type ConsultantRepository struct {
	mu          sync.RWMutex
	consultants map[string]*models.Consultant
}

func NewConsultantRepository() *ConsultantRepository {
	return &ConsultantRepository{consultants: make(map[string]*models.Consultant)}
}

func copyConsultant(c *models.Consultant) *models.Consultant {
	cp := *c
	return &cp
}

func (r *ConsultantRepository) Create(consultant *models.Consultant) *models.Consultant {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := copyConsultant(consultant)
	stored.ID = uuid.New().String()
	stored.CreatedAt = time.Now()
	r.consultants[stored.ID] = stored
	return copyConsultant(stored)
}

func (r *ConsultantRepository) GetByID(id string) (*models.Consultant, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.consultants[id]
	if !ok {
		return nil, false
	}
	return copyConsultant(c), true
}

// GetByClinic returns the active relationships of a clinic.
func (r *ConsultantRepository) GetByClinic(clinicID string) []models.Consultant {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []models.Consultant
	for _, c := range r.consultants {
		if c.ClinicID == clinicID && c.IsActive {
			result = append(result, *copyConsultant(c))
		}
	}
	return result
}

// GetByUser returns every relationship row of a consultant user, active
// or not.
func (r *ConsultantRepository) GetByUser(userID string) []models.Consultant {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []models.Consultant
	for _, c := range r.consultants {
		if c.UserID == userID {
			result = append(result, *copyConsultant(c))
		}
	}
	return result
}

// GetByUserAndClinic finds the relationship for a (user, clinic) pair
// regardless of its active state.
func (r *ConsultantRepository) GetByUserAndClinic(userID, clinicID string) (*models.Consultant, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.consultants {
		if c.UserID == userID && c.ClinicID == clinicID {
			return copyConsultant(c), true
		}
	}
	return nil, false
}

func (r *ConsultantRepository) Update(id string, upd models.ConsultantUpdate) (*models.Consultant, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.consultants[id]
	if !ok {
		return nil, false
	}
	if upd.Specialty != nil {
		c.Specialty = *upd.Specialty
	}
	if upd.NextVisit != nil {
		c.NextVisit = upd.NextVisit
	}
	if upd.IsActive != nil {
		c.IsActive = *upd.IsActive
	}
	return copyConsultant(c), true
}
