package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/streamflix/streamflix-server/internal/config"
	"github.com/streamflix/streamflix-server/internal/models"
)

func jwtConfig(secret string) *config.Config {
	return &config.Config{Server: config.ServerConfig{JwtSecretKey: secret}}
}

func TestJWTTokenRoundTrip(t *testing.T) {
	cfg := jwtConfig("test-secret")
	user := &models.User{
		UserID: uuid.New(),
		Email:  "viewer@example.com",
		Name:   "Viewer",
	}

	token, err := GenerateJWTToken(user, cfg)
	if err != nil {
		t.Fatal(err)
	}

	claims, err := ValidateToken(token, cfg.Server.JwtSecretKey)
	if err != nil {
		t.Fatal(err)
	}
	if claims.UserID != user.UserID.String() {
		t.Errorf("UserID = %q, want %q", claims.UserID, user.UserID)
	}
	if claims.Email != user.Email {
		t.Errorf("Email = %q, want %q", claims.Email, user.Email)
	}
	if claims.Name != user.Name {
		t.Errorf("Name = %q, want %q", claims.Name, user.Name)
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, err := GenerateJWTToken(&models.User{UserID: uuid.New(), Email: "a@b.c"}, jwtConfig("right"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ValidateToken(token, "wrong"); err == nil {
		t.Fatal("expected validation to fail with the wrong secret")
	}
}

func TestValidateTokenGarbage(t *testing.T) {
	if _, err := ValidateToken("not.a.token", "secret"); err == nil {
		t.Fatal("expected validation to fail for a malformed token")
	}
}
