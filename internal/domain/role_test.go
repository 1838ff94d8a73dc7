package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type roleNamer struct{}

func (roleNamer) Customer() (string, error) { return "customer", nil }
func (roleNamer) Provider() (string, error) { return "provider", nil }
func (roleNamer) Salon() (string, error)    { return "salon", nil }
func (roleNamer) Seller() (string, error)   { return "seller", nil }
func (roleNamer) Admin() (string, error)    { return "admin", nil }

func TestVisitRoleCoversEveryRole(t *testing.T) {
	for _, r := range Roles {
		got, err := VisitRole[string](r, roleNamer{})
		require.NoError(t, err)
		assert.Equal(t, string(r), got)
	}

	_, err := VisitRole[string](Role("guest"), roleNamer{})
	assert.True(t, IsValidation(err))
}

func TestParseRole(t *testing.T) {
	r, err := ParseRole(" Provider ")
	require.NoError(t, err)
	assert.Equal(t, RoleProvider, r)
	assert.True(t, r.OffersServices())

	_, err = ParseRole("guest")
	assert.Error(t, err)

	assert.False(t, RoleAdmin.SelfService())
	assert.True(t, RoleSeller.SelfService())
}
