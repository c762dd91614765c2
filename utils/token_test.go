package utils

import (
	"testing"

	"wedding-backend/config"
)

func TestAdminTokenValidates(t *testing.T) {
	config.C.JWTSecret = "test-secret"

	token, err := GenerateAdminToken()
	if err != nil {
		t.Fatalf("GenerateAdminToken: %v", err)
	}

	if err := ValidateAdminToken(token); err != nil {
		t.Errorf("ValidateAdminToken: unexpected error: %v", err)
	}
}

func TestAdminTokenRejectsTampering(t *testing.T) {
	config.C.JWTSecret = "test-secret"

	token, err := GenerateAdminToken()
	if err != nil {
		t.Fatalf("GenerateAdminToken: %v", err)
	}

	if err := ValidateAdminToken(token + "x"); err == nil {
		t.Error("expected error for tampered token")
	}

	if err := ValidateAdminToken("not-a-jwt"); err == nil {
		t.Error("expected error for garbage token")
	}

	// A token minted under a different secret must not validate.
	config.C.JWTSecret = "other-secret"
	otherToken, err := GenerateAdminToken()
	if err != nil {
		t.Fatalf("GenerateAdminToken: %v", err)
	}
	config.C.JWTSecret = "test-secret"

	if err := ValidateAdminToken(otherToken); err == nil {
		t.Error("expected error for token signed with a different secret")
	}
}
