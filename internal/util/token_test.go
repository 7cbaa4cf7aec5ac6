package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	ConfigureTokens("test-secret", time.Hour)

	token, err := GenerateToken(42, "Auditor")
	require.NoError(t, err)

	userID, role, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)
	assert.Equal(t, "Auditor", role)
}

func TestValidateToken_Rejects(t *testing.T) {
	ConfigureTokens("test-secret", time.Hour)
	token, err := GenerateToken(1, "user")
	require.NoError(t, err)

	_, _, err = ValidateToken(token + "x")
	assert.ErrorIs(t, err, ErrInvalidToken)

	ConfigureTokens("other-secret", time.Hour)
	_, _, err = ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, _, err = ValidateToken("garbage")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
