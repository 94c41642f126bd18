package service_test

import (
	"errors"
	"testing"
	"time"

	"studyhub_backend/internal/config"
	"studyhub_backend/internal/model"
	"studyhub_backend/internal/repository"
	"studyhub_backend/internal/service"
	"studyhub_backend/internal/util"
)

func newAuthService(t *testing.T) *service.AuthService {
	t.Helper()
	db := newTestDB(t)
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret-test-secret-test-secret"
	cfg.JWT.ExpireTime = time.Hour
	return service.NewAuthService(repository.NewUserRepository(db), cfg)
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newAuthService(t)

	user := &model.User{Name: "Alice", Email: "alice@test.local", Password: "s3cret", Role: model.Student}
	if err := svc.Register(user); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if user.Password == "s3cret" {
		t.Fatalf("password must be stored hashed")
	}

	token, err := svc.Login("alice@test.local", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	claims, err := util.ParseJWT(token, "test-secret-test-secret-test-secret")
	if err != nil {
		t.Fatalf("token did not parse: %v", err)
	}
	if claims.UserID != user.ID || claims.Email != user.Email {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc := newAuthService(t)

	if err := svc.Register(&model.User{Name: "Alice", Email: "alice@test.local", Password: "x"}); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	err := svc.Register(&model.User{Name: "Other", Email: "alice@test.local", Password: "y"})
	if !errors.Is(err, util.ErrEmailRegistered) {
		t.Fatalf("expected duplicate email error, got %v", err)
	}
}

func TestLoginRejectsBadPasswordAndUnknownUser(t *testing.T) {
	svc := newAuthService(t)

	if err := svc.Register(&model.User{Name: "Alice", Email: "alice@test.local", Password: "right"}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if _, err := svc.Login("alice@test.local", "wrong"); err == nil {
		t.Fatalf("expected bad password to fail")
	}
	if _, err := svc.Login("nobody@test.local", "right"); err == nil {
		t.Fatalf("expected unknown user to fail")
	}
}
