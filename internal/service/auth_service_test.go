package service

import (
	"testing"
	"time"

	"github.com/shahisiiii/quiz-platform/internal/config"
	"github.com/shahisiiii/quiz-platform/internal/model"
)

func testAuthService() *AuthService {
	return NewAuthService(&config.Config{
		JWTSecret:     "test-secret",
		AccessExpiry:  time.Minute,
		RefreshExpiry: time.Hour,
		BcryptCost:    4, // min cost keeps tests fast
	})
}

func TestTokenPairRoundTrip(t *testing.T) {
	auth := testAuthService()
	user := &model.User{ID: 42, Role: model.RoleAdmin}

	pair, err := auth.GenerateTokenPair(user)
	if err != nil {
		t.Fatalf("GenerateTokenPair: %v", err)
	}
	if pair.Access == "" || pair.Refresh == "" {
		t.Fatal("empty token in pair")
	}

	claims, err := auth.ValidateAccessToken(pair.Access)
	if err != nil {
		t.Fatalf("ValidateAccessToken: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("user_id = %d, want 42", claims.UserID)
	}
	if claims.Role != model.RoleAdmin {
		t.Errorf("role = %q, want admin", claims.Role)
	}
	if claims.TokenType != TokenTypeAccess {
		t.Errorf("token_type = %q, want access", claims.TokenType)
	}
}

func TestValidateRejectsRefreshToken(t *testing.T) {
	auth := testAuthService()
	pair, err := auth.GenerateTokenPair(&model.User{ID: 1, Role: model.RoleUser})
	if err != nil {
		t.Fatalf("GenerateTokenPair: %v", err)
	}

	if _, err := auth.ValidateAccessToken(pair.Refresh); err == nil {
		t.Fatal("refresh token accepted as access token")
	}
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	auth := testAuthService()
	pair, err := auth.GenerateTokenPair(&model.User{ID: 1, Role: model.RoleUser})
	if err != nil {
		t.Fatalf("GenerateTokenPair: %v", err)
	}

	if _, err := auth.Refresh(pair.Access); err == nil {
		t.Fatal("access token accepted by refresh")
	}
}

func TestRefreshMintsAccessToken(t *testing.T) {
	auth := testAuthService()
	pair, err := auth.GenerateTokenPair(&model.User{ID: 7, Role: model.RoleUser})
	if err != nil {
		t.Fatalf("GenerateTokenPair: %v", err)
	}

	access, err := auth.Refresh(pair.Refresh)
	if err != nil {
		t.Fatalf("Refresh: %v", err)
	}

	claims, err := auth.ValidateAccessToken(access)
	if err != nil {
		t.Fatalf("ValidateAccessToken: %v", err)
	}
	if claims.UserID != 7 || claims.Role != model.RoleUser {
		t.Errorf("claims = %d/%s, want 7/user", claims.UserID, claims.Role)
	}
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	auth := testAuthService()
	pair, err := auth.GenerateTokenPair(&model.User{ID: 1, Role: model.RoleUser})
	if err != nil {
		t.Fatalf("GenerateTokenPair: %v", err)
	}

	other := NewAuthService(&config.Config{
		JWTSecret:    "different-secret",
		AccessExpiry: time.Minute,
	})
	if _, err := other.ValidateAccessToken(pair.Access); err == nil {
		t.Fatal("token signed with another secret was accepted")
	}
}

func TestPasswordHashing(t *testing.T) {
	auth := testAuthService()

	hash, err := auth.HashPassword("s3cret-pass")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "s3cret-pass" {
		t.Fatal("password stored in plaintext")
	}

	if err := auth.CheckPassword(hash, "s3cret-pass"); err != nil {
		t.Errorf("CheckPassword correct: %v", err)
	}
	if err := auth.CheckPassword(hash, "wrong-pass"); err == nil {
		t.Error("CheckPassword accepted wrong password")
	}
}
