package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"replate-backend/domain"
)

func TestGenerateAndResolveToken(t *testing.T) {
	svc := NewJWTService()

	token := svc.GenerateTokenUser("student-1", "student")
	require.NotEmpty(t, token)

	userID, role, err := svc.GetUserIDByToken(token)
	require.NoError(t, err)
	assert.Equal(t, "student-1", userID)
	assert.Equal(t, "student", role)
}

func TestGetUserIDByTokenRejectsGarbage(t *testing.T) {
	svc := NewJWTService()

	_, _, err := svc.GetUserIDByToken("not.a.token")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestGetUserIDByTokenRejectsForeignSignature(t *testing.T) {
	svc := NewJWTService()
	other := &jwtService{secretKey: "some-other-secret", issuer: "REPLATE"}

	token := other.GenerateTokenUser("admin-1", "admin")
	_, _, err := svc.GetUserIDByToken(token)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}
