package models

import (
	"time"
)

// Roles a user may hold. A user can hold both and switches between them
// per session; CurrentRole decides which scoping rules apply.
const (
	RoleClinician  = "clinician"
	RoleConsultant = "consultant"
)

// User represents an account in the system. A clinic is a User with the
// clinician role; a visiting specialist is a User with the consultant role.
type User struct {
	ID          string    `json:"id"`
	Username    string    `json:"username"`
	Password    string    `json:"-"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Roles       []string  `json:"roles"`
	CurrentRole string    `json:"current_role"`
	Specialty   string    `json:"specialty,omitempty"`
	ClinicName  string    `json:"clinic_name,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// HasRole reports whether the user holds the given role at all,
// independent of which role is currently active.
func (u *User) HasRole(role string) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Consultant binds one consultant-role user to one clinic. A specialist
// visiting several clinics has one row per clinic, each carrying its own
// specialty and visit schedule.
type Consultant struct {
	ID        string     `json:"id"`
	UserID    string     `json:"user_id"`
	ClinicID  string     `json:"clinic_id"`
	Specialty string     `json:"specialty"`
	NextVisit *time.Time `json:"next_visit,omitempty"`
	IsActive  bool       `json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`
}

// UserUpdate lists the account fields a profile update may change.
// Identifiers and the roles set are deliberately absent.
type UserUpdate struct {
	Name        *string `json:"name,omitempty"`
	Email       *string `json:"email,omitempty"`
	Password    *string `json:"-"`
	CurrentRole *string `json:"current_role,omitempty"`
	Specialty   *string `json:"specialty,omitempty"`
	ClinicName  *string `json:"clinic_name,omitempty"`
}

// ConsultantUpdate lists the mutable fields of a consultant relationship.
// The (user, clinic) pair itself is immutable once created.
type ConsultantUpdate struct {
	Specialty *string    `json:"specialty,omitempty"`
	NextVisit *time.Time `json:"next_visit,omitempty"`
	IsActive  *bool      `json:"is_active,omitempty"`
}
