package service

import (
	"path/filepath"
	"testing"

	"github.com/GautamRaj-12/legal-blogs-by-rohan-backend/internal/config"
	"github.com/GautamRaj-12/legal-blogs-by-rohan-backend/internal/database"
	"github.com/GautamRaj-12/legal-blogs-by-rohan-backend/internal/util"

	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Init(config.DatabaseConfig{
		Path: filepath.Join(t.TempDir(), "test.db"),
	})
	if err != nil {
		t.Fatalf("init test database: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	return db
}

func newTestIssuer() *util.TokenIssuer {
	return util.NewTokenIssuer(config.JWTConfig{
		AccessSecret:      "test-access-secret",
		RefreshSecret:     "test-refresh-secret",
		Issuer:            "test",
		AccessExpireMins:  5,
		RefreshExpireDays: 1,
	})
}

func newTestUserService(t *testing.T) *UserService {
	t.Helper()
	// low bcrypt cost keeps the test suite fast
	return NewUserService(newTestDB(t), newTestIssuer(), 4)
}

func mustRegister(t *testing.T, users *UserService, username, email string) uint {
	t.Helper()
	profile, err := users.Register(RegisterInput{
		Username: username,
		Email:    email,
		FullName: "Test User",
		Password: "pw",
	})
	if err != nil {
		t.Fatalf("Register(%q) error = %v, want nil", username, err)
	}
	return profile.ID
}
