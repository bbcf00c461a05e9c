// file: utils/jwt_test.go
package utils

import (
	"testing"

	"GOTCTF/models"
)

func TestTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	InitJWT()

	team := models.Team{
		ID:       7,
		TeamName: "House Stark",
		Role:     models.RoleParticipant,
	}
	token, err := GenerateToken(team)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.TeamID != 7 || claims.TeamName != "House Stark" || claims.Role != models.RoleParticipant {
		t.Fatalf("claims mismatch: %+v", claims)
	}
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	InitJWT()

	if _, err := ParseToken("not-a-token"); err == nil {
		t.Fatal("garbage token must not parse")
	}
}
