package token_test

import (
	"testing"
	"time"

	"empleaworks-backend/pkg/token"

	"github.com/stretchr/testify/assert"
)

func TestIssueAndVerify(t *testing.T) {
	m := token.NewManager("test-secret", time.Hour)

	t.Run("Should round-trip the claims", func(t *testing.T) {
		tok, err := m.Issue("user1", "ana@example.com", "candidate")
		assert.NoError(t, err)
		assert.NotEmpty(t, tok)

		claims, err := m.Verify(tok)
		assert.NoError(t, err)
		assert.Equal(t, "user1", claims.UserID)
		assert.Equal(t, "ana@example.com", claims.Email)
		assert.Equal(t, "candidate", claims.Role)
	})

	t.Run("Should reject a token signed with a different secret", func(t *testing.T) {
		other := token.NewManager("other-secret", time.Hour)
		tok, err := other.Issue("user1", "ana@example.com", "candidate")
		assert.NoError(t, err)

		_, err = m.Verify(tok)
		assert.ErrorIs(t, err, token.ErrInvalidToken)
	})

	t.Run("Should reject an expired token", func(t *testing.T) {
		expired := token.NewManager("test-secret", -time.Minute)
		tok, err := expired.Issue("user1", "ana@example.com", "candidate")
		assert.NoError(t, err)

		_, err = m.Verify(tok)
		assert.ErrorIs(t, err, token.ErrInvalidToken)
	})

	t.Run("Should reject garbage input", func(t *testing.T) {
		_, err := m.Verify("not-a-token")
		assert.ErrorIs(t, err, token.ErrInvalidToken)
	})
}
