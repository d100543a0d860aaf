package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pharmanet/internal/model"
)

func sessionUser() *model.User {
	return &model.User{
		ID:        42,
		FirstName: "Jordan",
		LastName:  "Reyes",
		Email:     "jordan@example.com",
		Phone:     "555-0147",
		Address:   "12 Elm Street",
	}
}

func TestSessionService_IssueAndParse(t *testing.T) {
	svc := NewSessionService("test-secret")

	token, err := svc.Issue(sessionUser())
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.Parse(token)
	assert.NoError(t, err)

	// The session carries the full display field set copied at login, so
	// gated pages never re-read the user row.
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "Jordan", claims.FirstName)
	assert.Equal(t, "Reyes", claims.LastName)
	assert.Equal(t, "jordan@example.com", claims.Email)
	assert.Equal(t, "555-0147", claims.Phone)
	assert.Equal(t, "12 Elm Street", claims.Address)
	assert.NotEmpty(t, claims.ID)
}

func TestSessionService_ParseRejectsBadTokens(t *testing.T) {
	svc := NewSessionService("test-secret")
	token, err := svc.Issue(sessionUser())
	assert.NoError(t, err)

	t.Run("wrong secret", func(t *testing.T) {
		other := NewSessionService("other-secret")
		_, err := other.Parse(token)
		assert.Error(t, err)
	})

	t.Run("tampered token", func(t *testing.T) {
		_, err := svc.Parse(token + "x")
		assert.Error(t, err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.Parse("not-a-token")
		assert.Error(t, err)
	})
}
