package repositories

import (
	"ClinicBridge/models"
	"sync"
	"time"

	"github.com/google/uuid"
)

// UserRepository is the in-memory store for user accounts. All entity
// state lives in process memory; each repository guards its own map with
// a read-write mutex so concurrent requests stay consistent.
type UserRepository struct {
	mu    sync.RWMutex
	users map[string]*models.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[string]*models.User)}
}

func copyUser(u *models.User) *models.User {
	cp := *u
	cp.Roles = append([]string(nil), u.Roles...)
	return &cp
}

// Create assigns the identifier and creation time, stores the user and
// returns the stored record. Uniqueness of username/email is the caller's
// concern.
func (r *UserRepository) Create(user *models.User) *models.User {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := copyUser(user)
	stored.ID = uuid.New().String()
	stored.CreatedAt = time.Now()
	r.users[stored.ID] = stored
	return copyUser(stored)
}

func (r *UserRepository) GetByID(id string) (*models.User, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, false
	}
	return copyUser(u), true
}

func (r *UserRepository) GetByUsername(username string) (*models.User, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Username == username {
			return copyUser(u), true
		}
	}
	return nil, false
}

func (r *UserRepository) GetByEmail(email string) (*models.User, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email == email {
			return copyUser(u), true
		}
	}
	return nil, false
}

// Update applies the set fields of the update command and returns the
// updated record, or false if the id is unknown.
func (r *UserRepository) Update(id string, upd models.UserUpdate) (*models.User, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return nil, false
	}
	if upd.Name != nil {
		u.Name = *upd.Name
	}
	if upd.Email != nil {
		u.Email = *upd.Email
	}
	if upd.Password != nil {
		u.Password = *upd.Password
	}
	if upd.CurrentRole != nil {
		u.CurrentRole = *upd.CurrentRole
	}
	if upd.Specialty != nil {
		u.Specialty = *upd.Specialty
	}
	if upd.ClinicName != nil {
		u.ClinicName = *upd.ClinicName
	}
	return copyUser(u), true
}
