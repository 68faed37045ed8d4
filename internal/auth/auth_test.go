package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestaopub/contratos-service/internal/auth"
	"github.com/gestaopub/contratos-service/internal/model"
)

func demoUser() model.User {
	return model.User{
		ID:    "1",
		Name:  "Admin User",
		Email: "admin@example.com",
		Role:  model.RoleAdmin,
	}
}

func TestIssueAndParse(t *testing.T) {
	issuer := auth.NewIssuer("test-secret", time.Hour)
	parser := auth.NewParser("test-secret")

	token, err := issuer.Issue(demoUser())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	principal, err := parser.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "1", principal.UserID)
	assert.Equal(t, "Admin User", principal.Name)
	assert.Equal(t, "admin@example.com", principal.Email)
	assert.Equal(t, model.RoleAdmin, principal.Role)
	assert.True(t, principal.IsAdmin())
}

func TestParseWrongSecret(t *testing.T) {
	issuer := auth.NewIssuer("test-secret", time.Hour)
	parser := auth.NewParser("other-secret")

	token, err := issuer.Issue(demoUser())
	require.NoError(t, err)

	_, err = parser.Parse(token)
	require.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestParseExpiredToken(t *testing.T) {
	issuer := auth.NewIssuer("test-secret", -time.Minute)
	parser := auth.NewParser("test-secret")

	token, err := issuer.Issue(demoUser())
	require.NoError(t, err)

	_, err = parser.Parse(token)
	require.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestParseGarbage(t *testing.T) {
	parser := auth.NewParser("test-secret")

	_, err := parser.Parse("not-a-token")
	require.ErrorIs(t, err, auth.ErrInvalidToken)
}
