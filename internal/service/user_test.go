package service

import (
	"net/http"
	"testing"

	"github.com/GautamRaj-12/legal-blogs-by-rohan-backend/internal/apperr"
	"github.com/GautamRaj-12/legal-blogs-by-rohan-backend/internal/models"
)

func wantStatus(t *testing.T, err error, status int) {
	t.Helper()
	if err == nil {
		t.Fatalf("error = nil, want status %d", status)
	}
	if got := apperr.From(err).Status; got != status {
		t.Fatalf("error status = %d (%v), want %d", got, err, status)
	}
}

func TestRegister_MissingFields(t *testing.T) {
	users := newTestUserService(t)

	_, err := users.Register(RegisterInput{
		Username: "u1",
		Email:    "",
		FullName: "Name",
		Password: "pw",
	})
	wantStatus(t, err, http.StatusBadRequest)
}

func TestRegister_ReturnsPublicProfile(t *testing.T) {
	users := newTestUserService(t)

	profile, err := users.Register(RegisterInput{
		Username: "Rohan",
		Email:    "rohan@example.com",
		FullName: "Rohan Sharma",
		Password: "pw",
	})
	if err != nil {
		t.Fatalf("Register() error = %v, want nil", err)
	}
	if profile.ID == 0 {
		t.Error("profile.ID = 0, want assigned id")
	}
	if profile.Username != "rohan" {
		t.Errorf("profile.Username = %q, want lowercased %q", profile.Username, "rohan")
	}

	// stored hash must not be the plaintext password
	var stored models.User
	if err := users.DB.First(&stored, profile.ID).Error; err != nil {
		t.Fatalf("load stored user: %v", err)
	}
	if stored.PasswordHash == "pw" || stored.PasswordHash == "" {
		t.Error("password stored unhashed")
	}
	if stored.RefreshToken != "" {
		t.Errorf("new user RefreshToken = %q, want empty", stored.RefreshToken)
	}
}

func TestRegister_DuplicateUsernameOrEmail(t *testing.T) {
	users := newTestUserService(t)
	mustRegister(t, users, "u1", "e1@x.com")

	_, err := users.Register(RegisterInput{
		Username: "u1", Email: "other@x.com", FullName: "N", Password: "pw",
	})
	wantStatus(t, err, http.StatusConflict)

	_, err = users.Register(RegisterInput{
		Username: "u2", Email: "e1@x.com", FullName: "N", Password: "pw",
	})
	wantStatus(t, err, http.StatusConflict)
}

func TestLogin_Success(t *testing.T) {
	users := newTestUserService(t)
	id := mustRegister(t, users, "u1", "e1@x.com")

	result, err := users.Login(LoginInput{Username: "u1", Password: "pw"})
	if err != nil {
		t.Fatalf("Login() error = %v, want nil", err)
	}
	if result.AccessToken == "" || result.RefreshToken == "" {
		t.Error("Login() returned empty token pair")
	}
	if result.User.ID != id {
		t.Errorf("result.User.ID = %d, want %d", result.User.ID, id)
	}

	// refresh token must be persisted on the user row
	var stored models.User
	if err := users.DB.First(&stored, id).Error; err != nil {
		t.Fatalf("load stored user: %v", err)
	}
	if stored.RefreshToken != result.RefreshToken {
		t.Error("stored refresh token does not match issued token")
	}
}

func TestLogin_ByEmail(t *testing.T) {
	users := newTestUserService(t)
	mustRegister(t, users, "u1", "e1@x.com")

	if _, err := users.Login(LoginInput{Email: "e1@x.com", Password: "pw"}); err != nil {
		t.Fatalf("Login(by email) error = %v, want nil", err)
	}
}

func TestLogin_NoIdentifier(t *testing.T) {
	users := newTestUserService(t)

	_, err := users.Login(LoginInput{Password: "pw"})
	wantStatus(t, err, http.StatusBadRequest)
}

func TestLogin_UnknownUser(t *testing.T) {
	users := newTestUserService(t)

	_, err := users.Login(LoginInput{Username: "ghost", Password: "pw"})
	wantStatus(t, err, http.StatusNotFound)
}

func TestLogin_WrongPasswordLeavesStateUnchanged(t *testing.T) {
	users := newTestUserService(t)
	id := mustRegister(t, users, "u1", "e1@x.com")

	if _, err := users.Login(LoginInput{Username: "u1", Password: "pw"}); err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	var before models.User
	if err := users.DB.First(&before, id).Error; err != nil {
		t.Fatalf("load user: %v", err)
	}

	_, err := users.Login(LoginInput{Username: "u1", Password: "wrong"})
	wantStatus(t, err, http.StatusUnauthorized)

	var after models.User
	if err := users.DB.First(&after, id).Error; err != nil {
		t.Fatalf("load user: %v", err)
	}
	if after.RefreshToken != before.RefreshToken {
		t.Error("failed login mutated the stored refresh token")
	}
}

func TestRefresh_RotatesAndInvalidatesOldToken(t *testing.T) {
	users := newTestUserService(t)
	mustRegister(t, users, "u1", "e1@x.com")

	result, err := users.Login(LoginInput{Username: "u1", Password: "pw"})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	old := result.RefreshToken

	pair, err := users.Refresh(old)
	if err != nil {
		t.Fatalf("Refresh() error = %v, want nil", err)
	}
	if pair.RefreshToken == old {
		t.Error("Refresh() did not rotate the refresh token")
	}

	// the previous token is now dead
	_, err = users.Refresh(old)
	wantStatus(t, err, http.StatusUnauthorized)

	// the rotated token still works
	if _, err := users.Refresh(pair.RefreshToken); err != nil {
		t.Fatalf("Refresh(rotated) error = %v, want nil", err)
	}
}

func TestRefresh_MissingOrGarbageToken(t *testing.T) {
	users := newTestUserService(t)

	_, err := users.Refresh("")
	wantStatus(t, err, http.StatusUnauthorized)

	_, err = users.Refresh("not-a-jwt")
	wantStatus(t, err, http.StatusUnauthorized)
}

func TestRefresh_ValidTokenNotMatchingStored(t *testing.T) {
	users := newTestUserService(t)
	id := mustRegister(t, users, "u1", "e1@x.com")

	if _, err := users.Login(LoginInput{Username: "u1", Password: "pw"}); err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	// a verifiable token for the right user that was never stored
	forged, err := users.Tokens.IssueRefreshToken(id)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	_, err = users.Refresh(forged)
	wantStatus(t, err, http.StatusUnauthorized)
}

func TestLogout_ClearsRefreshToken(t *testing.T) {
	users := newTestUserService(t)
	id := mustRegister(t, users, "u1", "e1@x.com")

	result, err := users.Login(LoginInput{Username: "u1", Password: "pw"})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	if err := users.Logout(id); err != nil {
		t.Fatalf("Logout() error = %v, want nil", err)
	}

	var stored models.User
	if err := users.DB.First(&stored, id).Error; err != nil {
		t.Fatalf("load user: %v", err)
	}
	if stored.RefreshToken != "" {
		t.Errorf("RefreshToken after logout = %q, want empty", stored.RefreshToken)
	}

	// the previously valid refresh token no longer works
	_, err = users.Refresh(result.RefreshToken)
	wantStatus(t, err, http.StatusUnauthorized)

	// idempotent
	if err := users.Logout(id); err != nil {
		t.Fatalf("second Logout() error = %v, want nil", err)
	}
}
