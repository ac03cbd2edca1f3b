package jwt

import (
	"errors"
	"testing"

	"Pento-Service/domain"
)

func newTestService() *jwtService {
	return &jwtService{secretKey: "unit-test-secret", issuer: "PENTO"}
}

func TestGenerateTokenUserRoundTrip(t *testing.T) {
	svc := newTestService()

	token := svc.GenerateTokenUser("4b8bafae-431d-4f32-a4db-1f5bb1f43d27", "member")
	if token == "" {
		t.Fatal("expected a signed token")
	}

	userID, role, err := svc.GetUserIDByToken(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if userID != "4b8bafae-431d-4f32-a4db-1f5bb1f43d27" {
		t.Errorf("unexpected user id %q", userID)
	}
	if role != "member" {
		t.Errorf("unexpected role %q", role)
	}
}

func TestGetUserIDByTokenRejectsGarbage(t *testing.T) {
	svc := newTestService()

	if _, _, err := svc.GetUserIDByToken("not.a.token"); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestGetUserIDByTokenRejectsWrongKey(t *testing.T) {
	signer := &jwtService{secretKey: "another-secret", issuer: "PENTO"}
	token := signer.GenerateTokenUser("4b8bafae-431d-4f32-a4db-1f5bb1f43d27", "member")

	svc := newTestService()
	if _, _, err := svc.GetUserIDByToken(token); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}
