package repositories

import (
	"ClinicBridge/models"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ActivityRepository is the append-only audit log. Activities are never
// updated or deleted.
type ActivityRepository struct {
	mu         sync.RWMutex
	activities map[string]*models.Activity
	order      []string
}

func NewActivityRepository() *ActivityRepository {
	return &ActivityRepository{activities: make(map[string]*models.Activity)}
}

func copyActivity(a *models.Activity) *models.Activity {
	cp := *a
	if a.Metadata != nil {
		cp.Metadata = make(map[string]string, len(a.Metadata))
		for k, v := range a.Metadata {
			cp.Metadata[k] = v
		}
	}
	return &cp
}

func (r *ActivityRepository) Create(activity *models.Activity) *models.Activity {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := copyActivity(activity)
	stored.ID = uuid.New().String()
	stored.CreatedAt = time.Now()
	r.activities[stored.ID] = stored
	r.order = append(r.order, stored.ID)
	return copyActivity(stored)
}

// RecentByUser returns the newest activities generated by the given
// actor, most recent first, at most limit entries.
func (r *ActivityRepository) RecentByUser(userID string, limit int) []models.Activity {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []models.Activity
	for i := len(r.order) - 1; i >= 0; i-- {
		if a, ok := r.activities[r.order[i]]; ok && a.UserID == userID {
			result = append(result, *copyActivity(a))
		}
	}
	return sortAndClip(result, limit)
}

// RecentForPatients returns the newest activities that are either global
// (no patient) or tied to one of the given patients, most recent first,
// at most limit entries.
func (r *ActivityRepository) RecentForPatients(patientIDs map[string]bool, limit int) []models.Activity {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []models.Activity
	for i := len(r.order) - 1; i >= 0; i-- {
		a, ok := r.activities[r.order[i]]
		if !ok {
			continue
		}
		if a.PatientID == "" || patientIDs[a.PatientID] {
			result = append(result, *copyActivity(a))
		}
	}
	return sortAndClip(result, limit)
}

// CountByAction reports how many activities carry the given action tag.
func (r *ActivityRepository) CountByAction(action string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0
	for _, a := range r.activities {
		if a.Action == action {
			n++
		}
	}
	return n
}

func sortAndClip(activities []models.Activity, limit int) []models.Activity {
	sort.SliceStable(activities, func(i, j int) bool {
		return activities[i].CreatedAt.After(activities[j].CreatedAt)
	})
	if limit > 0 && len(activities) > limit {
		activities = activities[:limit]
	}
	return activities
}
