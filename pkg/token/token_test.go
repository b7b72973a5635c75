package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueVerifyRoundtrip(t *testing.T) {
	svc := NewService("test-secret", 7*24*time.Hour)

	signed, err := svc.Issue(42, "user@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	claims := svc.Verify(signed)
	require.NotNil(t, claims)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "user@example.com", claims.Email)
}

func TestVerifyFailsClosed(t *testing.T) {
	svc := NewService("test-secret", 7*24*time.Hour)

	t.Run("expired token", func(t *testing.T) {
		expired := NewService("test-secret", -time.Hour)
		signed, err := expired.Issue(1, "user@example.com")
		require.NoError(t, err)

		assert.Nil(t, svc.Verify(signed))
	})

	t.Run("different secret", func(t *testing.T) {
		other := NewService("another-secret", time.Hour)
		signed, err := other.Issue(1, "user@example.com")
		require.NoError(t, err)

		assert.Nil(t, svc.Verify(signed))
	})

	t.Run("malformed token", func(t *testing.T) {
		assert.Nil(t, svc.Verify("not-a-token"))
		assert.Nil(t, svc.Verify(""))
		assert.Nil(t, svc.Verify("a.b.c"))
	})
}
