package mocks

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"pet-adoptions/internal/domain/users"
)

func TestGenerator_Users(t *testing.T) {
	gen, err := NewGenerator()
	require.NoError(t, err)

	fixed := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	gen.now = func() time.Time { return fixed }

	items := gen.Users(25)
	require.Len(t, items, 25)

	seen := make(map[string]bool, len(items))
	for _, u := range items {
		assert.NotEmpty(t, u.ID)
		assert.False(t, seen[u.ID], "duplicated id %s", u.ID)
		seen[u.ID] = true

		assert.NotEmpty(t, u.FirstName)
		assert.NotEmpty(t, u.LastName)
		assert.NotEmpty(t, u.Email)
		assert.Contains(t, []users.Role{users.RoleUser, users.RoleAdmin}, u.Role)
		assert.Empty(t, u.Pets)
		assert.Equal(t, fixed, u.CreatedAt)
	}

	// todos comparten el mismo hash, y corresponde al password mock
	hash := items[0].Password
	for _, u := range items {
		assert.Equal(t, hash, u.Password)
	}
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte(MockPassword)))
}

func TestGenerator_Pets(t *testing.T) {
	gen, err := NewGenerator()
	require.NoError(t, err)

	fixed := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	gen.now = func() time.Time { return fixed }

	items := gen.Pets(40)
	require.Len(t, items, 40)

	for _, p := range items {
		assert.NotEmpty(t, p.ID)
		assert.NotEmpty(t, p.Name)
		assert.Contains(t, speciesPool, p.Species)
		assert.False(t, p.Adopted, "mock pets arrancan disponibles")
		assert.Empty(t, p.OwnerUserID)
		require.NotNil(t, p.BirthDate)
		assert.True(t, p.BirthDate.Before(fixed) || p.BirthDate.Equal(fixed))
		assert.True(t, strings.HasPrefix(p.Image, "http"), "image debe ser una URL, got %q", p.Image)
	}
}

func TestGenerator_ZeroCount(t *testing.T) {
	gen, err := NewGenerator()
	require.NoError(t, err)

	assert.Empty(t, gen.Users(0))
	assert.Empty(t, gen.Pets(0))
}
