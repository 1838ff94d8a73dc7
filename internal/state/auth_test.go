package state

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"salonmarket/internal/domain"
)

func TestReduceAuth(t *testing.T) {
	s := ReduceAuth(AuthState{}, SetUser{UserID: 7})
	s = ReduceAuth(s, SetRole{Role: domain.RoleProvider})
	assert.True(t, s.Authenticated)
	assert.Equal(t, domain.RoleProvider, s.Role)

	s = ReduceAuth(s, SignedOut{})
	assert.Equal(t, AuthState{}, s)
}

func TestReduceFavorites_Toggle(t *testing.T) {
	s := ReduceFavorites(FavoritesState{}, ToggleFavorite{ID: "p1"})
	s = ReduceFavorites(s, ToggleFavorite{ID: "p2"})
	assert.True(t, s.Has("p1"))

	s = ReduceFavorites(s, ToggleFavorite{ID: "p1"})
	assert.False(t, s.Has("p1"))
	assert.Equal(t, []string{"p2"}, s.IDs)
}
