package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Domenick1991/booktofly/internal/domain"
)

var testSecret = []byte("0123456789abcdef0123456789abcdef")

func TestTokenIssuer_IssueAndVerify(t *testing.T) {
	issuer := NewTokenIssuer(testSecret, "booktofly", "booktofly-clients")

	token, err := issuer.Issue("alice", RoleUser, time.Hour)
	require.NoError(t, err)

	identity, err := issuer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", identity.Subject)
	assert.Equal(t, RoleUser, identity.Role)
}

func TestTokenIssuer_Verify_Expired(t *testing.T) {
	issuer := NewTokenIssuer(testSecret, "booktofly", "booktofly-clients")

	token, err := issuer.Issue("alice", RoleUser, -time.Minute)
	require.NoError(t, err)

	_, err = issuer.Verify(token)
	assert.True(t, errors.Is(err, domain.ErrUnauthorized))
}

func TestTokenIssuer_Verify_WrongSecret(t *testing.T) {
	issuer := NewTokenIssuer(testSecret, "booktofly", "booktofly-clients")
	other := NewTokenIssuer([]byte("another-secret-of-32-bytes-xxxxx"), "booktofly", "booktofly-clients")

	token, err := issuer.Issue("alice", RoleAdmin, time.Hour)
	require.NoError(t, err)

	_, err = other.Verify(token)
	assert.True(t, errors.Is(err, domain.ErrUnauthorized))
}

func TestTokenIssuer_Verify_WrongAudience(t *testing.T) {
	issuer := NewTokenIssuer(testSecret, "booktofly", "booktofly-clients")
	other := NewTokenIssuer(testSecret, "booktofly", "someone-else")

	token, err := issuer.Issue("alice", RoleUser, time.Hour)
	require.NoError(t, err)

	_, err = other.Verify(token)
	assert.True(t, errors.Is(err, domain.ErrUnauthorized))
}

func TestTokenIssuer_RoleRoundTrip(t *testing.T) {
	issuer := NewTokenIssuer(testSecret, "booktofly", "booktofly-clients")

	for _, role := range []Role{RoleUser, RoleAdmin, RoleUserChange, RoleAdminChange} {
		token, err := issuer.Issue("bob", role, time.Minute)
		require.NoError(t, err)

		identity, err := issuer.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, role, identity.Role)
	}
}
