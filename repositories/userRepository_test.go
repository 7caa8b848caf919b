package repositories

import (
	"ClinicBridge/models"
	"testing"
)

func TestUserLookups(t *testing.T) {
	repo := NewUserRepository()
	created := repo.Create(&models.User{
		Username: "drsmith",
		Email:    "drsmith@example.test",
		Roles:    []string{models.RoleClinician},
	})

	if _, ok := repo.GetByID(created.ID); !ok {
		t.Fatalf("GetByID missed")
	}
	if _, ok := repo.GetByUsername("drsmith"); !ok {
		t.Fatalf("GetByUsername missed")
	}
	if _, ok := repo.GetByEmail("drsmith@example.test"); !ok {
		t.Fatalf("GetByEmail missed")
	}
	if _, ok := repo.GetByUsername("nobody"); ok {
		t.Fatalf("GetByUsername hit on unknown name")
	}
}

func TestUserRolesSliceIsCopied(t *testing.T) {
	repo := NewUserRepository()
	created := repo.Create(&models.User{
		Username: "drsmith",
		Roles:    []string{models.RoleClinician, models.RoleConsultant},
	})

	created.Roles[0] = "mutated"
	stored, _ := repo.GetByID(created.ID)
	if stored.Roles[0] != models.RoleClinician {
		t.Fatalf("mutating a returned roles slice leaked into the store")
	}
}
