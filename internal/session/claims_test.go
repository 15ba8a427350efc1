package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seranise/kedesh-go/internal/apitest"
)

func TestDecodeClaims(t *testing.T) {
	t.Run("reads the identity fields without verifying", func(t *testing.T) {
		tok := apitest.AccessToken("Asha Mkwawa", "asha@kedesh.example", false, time.Now().Add(time.Hour))

		claims, err := DecodeClaims(tok)

		require.NoError(t, err)
		assert.Equal(t, "Asha Mkwawa", claims.FullName)
		assert.Equal(t, "asha@kedesh.example", claims.Email)
		assert.False(t, claims.IsSuperuser)
		require.NotNil(t, claims.ExpiresAt)
	})

	t.Run("carries the superuser claim through", func(t *testing.T) {
		tok := apitest.AccessToken("Admin", "admin@kedesh.example", true, time.Now().Add(time.Hour))

		claims, err := DecodeClaims(tok)

		require.NoError(t, err)
		assert.True(t, claims.IsSuperuser)
	})

	t.Run("a malformed token errors instead of panicking", func(t *testing.T) {
		_, err := DecodeClaims("not-a-jwt")

		assert.Error(t, err)
	})

	t.Run("an empty token errors", func(t *testing.T) {
		_, err := DecodeClaims("")

		assert.Error(t, err)
	})
}
