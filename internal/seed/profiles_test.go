package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/passportpals/passportpals-backend/internal/repository"
)

var _ repository.ProfileStore = (*Store)(nil)

func TestStore_DemoUser(t *testing.T) {
	s := NewStore()

	demo := s.DemoUser()
	require.NotNil(t, demo)
	assert.Equal(t, DemoUserID, demo.ID)

	byID, ok := s.ByID(DemoUserID)
	require.True(t, ok)
	assert.Equal(t, demo.ID, byID.ID)

	byEmail, ok := s.ByEmail(demo.Email)
	require.True(t, ok)
	assert.Equal(t, demo.ID, byEmail.ID)
}
