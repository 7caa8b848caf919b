package repositories

import (
	"ClinicBridge/models"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MedicalImageRepository stores image records; the file bytes themselves
// live with the file-storage collaborator and are tracked by reference.
type MedicalImageRepository struct {
	mu     sync.RWMutex
	images map[string]*models.MedicalImage
	order  []string
}

func NewMedicalImageRepository() *MedicalImageRepository {
	return &MedicalImageRepository{images: make(map[string]*models.MedicalImage)}
}

func copyImage(img *models.MedicalImage) *models.MedicalImage {
	cp := *img
	return &cp
}

func (r *MedicalImageRepository) Create(image *models.MedicalImage) *models.MedicalImage {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := copyImage(image)
	stored.ID = uuid.New().String()
	stored.UploadedAt = time.Now()
	r.images[stored.ID] = stored
	r.order = append(r.order, stored.ID)
	return copyImage(stored)
}

func (r *MedicalImageRepository) GetByID(id string) (*models.MedicalImage, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	img, ok := r.images[id]
	if !ok {
		return nil, false
	}
	return copyImage(img), true
}

// GetByPatient returns a patient's images most recent first.
func (r *MedicalImageRepository) GetByPatient(patientID string) []models.MedicalImage {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []models.MedicalImage
	for _, id := range r.order {
		if img, ok := r.images[id]; ok && img.PatientID == patientID {
			result = append(result, *copyImage(img))
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].UploadedAt.After(result[j].UploadedAt)
	})
	return result
}

// Delete removes an image record if present and reports whether it was.
func (r *MedicalImageRepository) Delete(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.images[id]; !ok {
		return false
	}
	delete(r.images, id)
	return true
}
