package services

import (
	"ClinicBridge/models"
	"ClinicBridge/repositories"
	"ClinicBridge/utils"
	"context"
)

// RegisterInput carries the fields of a new account registration. The
// payload arrives schema-validated from the boundary; business invariants
// (uniqueness, role membership) are enforced here.
type RegisterInput struct {
	Username    string   `json:"username"`
	Password    string   `json:"password"`
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Roles       []string `json:"roles"`
	CurrentRole string   `json:"current_role"`
	Specialty   string   `json:"specialty"`
	ClinicName  string   `json:"clinic_name"`
}

// Mailer delivers password-reset codes.
type Mailer interface {
	SendResetCode(email, code string) error
}

// UserService manages accounts: registration, authentication, role
// switching, profile updates and the password-reset flow.
type UserService struct {
	userRepo     *repositories.UserRepository
	activityRepo *repositories.ActivityRepository
	codes        utils.ResetCodeStore
	mailer       Mailer
}

func NewUserService(userRepo *repositories.UserRepository, activityRepo *repositories.ActivityRepository, codes utils.ResetCodeStore, mailer Mailer) *UserService {
	return &UserService{userRepo: userRepo, activityRepo: activityRepo, codes: codes, mailer: mailer}
}

// Register creates an account. Username and email must be unique, the
// roles set must be a non-empty subset of the known roles, and the
// active role must be one of them. Passwords are stored bcrypt-hashed.
func (s *UserService) Register(input RegisterInput) (*models.User, error) {
	if err := utils.ValidateRegistration(input.Username, input.Email, input.Password); err != nil {
		return nil, utils.ValidationError("%v", err)
	}
	if len(input.Roles) == 0 {
		return nil, utils.ValidationError("at least one role is required")
	}
	for _, role := range input.Roles {
		if role != models.RoleClinician && role != models.RoleConsultant {
			return nil, utils.ValidationError("unknown role: %s", role)
		}
	}
	currentRole := input.CurrentRole
	if currentRole == "" {
		currentRole = input.Roles[0]
	}
	if !containsRole(input.Roles, currentRole) {
		return nil, utils.InvalidRoleError("current role must be one of the user's roles")
	}

	if _, exists := s.userRepo.GetByUsername(input.Username); exists {
		return nil, utils.ConflictError("username already exists")
	}
	if _, exists := s.userRepo.GetByEmail(input.Email); exists {
		return nil, utils.ConflictError("email already exists")
	}

	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := s.userRepo.Create(&models.User{
		Username:    input.Username,
		Password:    hashed,
		Name:        input.Name,
		Email:       input.Email,
		Roles:       input.Roles,
		CurrentRole: currentRole,
		Specialty:   input.Specialty,
		ClinicName:  input.ClinicName,
	})
	return user, nil
}

// Authenticate verifies the username/password pair. The error message
// never reveals which of the two was wrong.
func (s *UserService) Authenticate(username, password string) (*models.User, error) {
	user, ok := s.userRepo.GetByUsername(username)
	if !ok || !utils.CheckPassword(user.Password, password) {
		return nil, utils.ForbiddenError("invalid credentials")
	}
	return user, nil
}

// GetByID returns an account or NotFound.
func (s *UserService) GetByID(id string) (*models.User, error) {
	user, ok := s.userRepo.GetByID(id)
	if !ok {
		return nil, utils.NotFoundError("user not found")
	}
	return user, nil
}

// SwitchRole changes the user's active role. This is the only operation
// that changes which scoping rules subsequently apply to the same user.
func (s *UserService) SwitchRole(userID, newRole string) (*models.User, error) {
	user, ok := s.userRepo.GetByID(userID)
	if !ok {
		return nil, utils.NotFoundError("user not found")
	}
	if !user.HasRole(newRole) {
		return nil, utils.InvalidRoleError("role %q is not assigned to this user", newRole)
	}

	updated, ok := s.userRepo.Update(userID, models.UserUpdate{CurrentRole: &newRole})
	if !ok {
		return nil, utils.NotFoundError("user not found")
	}
	return updated, nil
}

// UpdateProfile applies profile field changes. Role and password are
// managed by their own operations and are ignored here; an email change
// must not collide with another account.
func (s *UserService) UpdateProfile(userID string, upd models.UserUpdate) (*models.User, error) {
	upd.CurrentRole = nil
	upd.Password = nil
	if upd.Email != nil {
		if existing, ok := s.userRepo.GetByEmail(*upd.Email); ok && existing.ID != userID {
			return nil, utils.ConflictError("email already exists")
		}
	}

	user, ok := s.userRepo.Update(userID, upd)
	if !ok {
		return nil, utils.NotFoundError("user not found")
	}
	return user, nil
}

// SendResetCode generates a short-lived reset code for the account and
// mails it to the account's address.
func (s *UserService) SendResetCode(ctx context.Context, email string) error {
	user, ok := s.userRepo.GetByEmail(email)
	if !ok {
		return utils.NotFoundError("no account for that email")
	}
	code := utils.GenerateResetCode()
	if err := utils.SetResetCode(ctx, s.codes, user.Email, code); err != nil {
		return err
	}
	return s.mailer.SendResetCode(user.Email, code)
}

// ResetPassword verifies the reset code and replaces the password.
func (s *UserService) ResetPassword(ctx context.Context, email, code, newPassword string) error {
	if err := utils.ValidatePasswordReset(code, newPassword); err != nil {
		return utils.ValidationError("%v", err)
	}
	stored, err := utils.GetResetCode(ctx, s.codes, email)
	if err != nil {
		return err
	}
	if stored == nil || *stored != code {
		return utils.ForbiddenError("invalid reset code")
	}

	user, ok := s.userRepo.GetByEmail(email)
	if !ok {
		return utils.NotFoundError("no account for that email")
	}
	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}
	if _, ok := s.userRepo.Update(user.ID, models.UserUpdate{Password: &hashed}); !ok {
		return utils.NotFoundError("user not found")
	}
	return utils.DeleteResetCode(ctx, s.codes, email)
}

func containsRole(roles []string, role string) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}
