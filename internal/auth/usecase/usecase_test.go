package usecase

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/streamflix/streamflix-server/internal/auth"
	"github.com/streamflix/streamflix-server/internal/config"
	"github.com/streamflix/streamflix-server/internal/models"
	"github.com/streamflix/streamflix-server/pkg/logger"
)

type stubAuthRepo struct {
	auth.Repository
	userByEmail *models.User
	emailErr    error
	registered  *models.User
}

func (s *stubAuthRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	if s.emailErr != nil {
		return nil, s.emailErr
	}
	return s.userByEmail, nil
}

func (s *stubAuthRepo) Register(ctx context.Context, user *models.User) (*models.User, error) {
	created := *user
	created.UserID = uuid.New()
	s.registered = &created
	return &created, nil
}

func testLogger() logger.Logger {
	log := logger.NewApiLogger(&config.Config{Logger: config.Logger{Level: "error"}})
	log.InitLogger()
	return log
}

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{JwtSecretKey: "test-secret"},
		Logger: config.Logger{Level: "error"},
	}
}

func TestRegisterNewUser(t *testing.T) {
	repo := &stubAuthRepo{emailErr: sql.ErrNoRows}
	uc := NewAuthUseCase(testConfig(), repo, testLogger())

	out, err := uc.Register(context.Background(), &models.User{
		Email:    "viewer@example.com",
		Name:     "Viewer",
		Password: "secretpass",
	})
	if err != nil {
		t.Fatal(err)
	}
	if out.Token == "" {
		t.Error("no token issued on register")
	}
	if out.User.Password != "" {
		t.Error("password leaked in the register response")
	}
	if repo.registered == nil || repo.registered.Password == "secretpass" {
		t.Error("password stored unhashed")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := &stubAuthRepo{userByEmail: &models.User{Email: "viewer@example.com"}}
	uc := NewAuthUseCase(testConfig(), repo, testLogger())

	_, err := uc.Register(context.Background(), &models.User{
		Email:    "viewer@example.com",
		Name:     "Viewer",
		Password: "secretpass",
	})
	if err == nil {
		t.Fatal("expected an error for a duplicate email")
	}
	if !strings.Contains(err.Error(), "already exists") {
		t.Errorf("err = %v", err)
	}
}

func TestRegisterLookupFailure(t *testing.T) {
	repo := &stubAuthRepo{emailErr: errors.New("connection refused")}
	uc := NewAuthUseCase(testConfig(), repo, testLogger())

	_, err := uc.Register(context.Background(), &models.User{
		Email:    "viewer@example.com",
		Name:     "Viewer",
		Password: "secretpass",
	})
	if err == nil {
		t.Fatal("expected an error when the duplicate check cannot run")
	}
	if strings.Contains(err.Error(), "already exists") {
		t.Errorf("repository failure misreported as a duplicate: %v", err)
	}
	if repo.registered != nil {
		t.Error("user was inserted despite the failed duplicate check")
	}
}

func TestLogin(t *testing.T) {
	stored := &models.User{UserID: uuid.New(), Email: "viewer@example.com", Password: "secretpass"}
	if err := stored.HashPassword(); err != nil {
		t.Fatal(err)
	}
	uc := NewAuthUseCase(testConfig(), &stubAuthRepo{userByEmail: stored}, testLogger())

	out, err := uc.Login(context.Background(), &models.LoginInput{
		Email:    "viewer@example.com",
		Password: "secretpass",
	})
	if err != nil {
		t.Fatal(err)
	}
	if out.Token == "" {
		t.Error("no token issued on login")
	}
	if out.User.Password != "" {
		t.Error("password leaked in the login response")
	}
}

func TestLoginWrongPassword(t *testing.T) {
	stored := &models.User{UserID: uuid.New(), Email: "viewer@example.com", Password: "secretpass"}
	if err := stored.HashPassword(); err != nil {
		t.Fatal(err)
	}
	uc := NewAuthUseCase(testConfig(), &stubAuthRepo{userByEmail: stored}, testLogger())

	_, err := uc.Login(context.Background(), &models.LoginInput{
		Email:    "viewer@example.com",
		Password: "wrongpass",
	})
	if err == nil || err.Error() != "invalid credentials" {
		t.Fatalf("err = %v, want the uniform invalid credentials error", err)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	uc := NewAuthUseCase(testConfig(), &stubAuthRepo{emailErr: sql.ErrNoRows}, testLogger())

	_, err := uc.Login(context.Background(), &models.LoginInput{
		Email:    "nobody@example.com",
		Password: "secretpass",
	})
	if err == nil || err.Error() != "invalid credentials" {
		t.Fatalf("err = %v, want the uniform invalid credentials error", err)
	}
}
