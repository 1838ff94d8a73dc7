package services

import (
	"context"
	"fmt"
	"strings"

	"salonmarket/internal/domain"
	"salonmarket/internal/domain/models"
	"salonmarket/internal/state"
	"salonmarket/internal/utils"
)

// Favorite targets are namespaced because product and provider ids overlap.
const (
	FavoriteProductPrefix  = "product:"
	FavoriteProviderPrefix = "provider:"
)

type ProfileService struct {
	Users     UserStore
	Favorites FavoritesStore
	Products  ProductStore
	Providers ProviderStore
	RequestID string
}

func (s ProfileService) Get(ctx context.Context, userID int64) (models.User, error) {
	return s.Users.GetProfile(ctx, userID)
}

// Update applies only the fields present in upd.
func (s ProfileService) Update(ctx context.Context, userID int64, upd models.ProfileUpdate) (models.User, error) {
	if upd.FullName != nil && strings.TrimSpace(*upd.FullName) == "" {
		return models.User{}, domain.ValidationError{Field: "fullName", Msg: "must not be empty"}
	}
	if upd.Bio != nil && len(*upd.Bio) > 1000 {
		return models.User{}, domain.ValidationError{Field: "bio", Msg: "must be at most 1000 characters"}
	}
	if err := s.Users.UpdateProfile(ctx, userID, upd); err != nil {
		return models.User{}, err
	}
	utils.LogEvent(s.RequestID, "profile", "update", fmt.Sprintf("user_id=%d", userID))
	return s.Users.GetProfile(ctx, userID)
}

func (s ProfileService) ListFavorites(ctx context.Context, userID int64) (state.FavoritesState, error) {
	ids, err := s.Favorites.List(ctx, userID)
	if err != nil {
		return state.FavoritesState{}, err
	}
	return state.FavoritesState{IDs: ids}, nil
}

// ToggleFavorite flips membership of a product or provider and returns the new list.
func (s ProfileService) ToggleFavorite(ctx context.Context, userID int64, target string) (state.FavoritesState, error) {
	target = strings.TrimSpace(target)
	if err := s.checkTarget(ctx, target); err != nil {
		return state.FavoritesState{}, err
	}

	current, err := s.ListFavorites(ctx, userID)
	if err != nil {
		return state.FavoritesState{}, err
	}
	next := state.ReduceFavorites(current, state.ToggleFavorite{ID: target})

	added, err := s.Favorites.Toggle(ctx, userID, target)
	if err != nil {
		return state.FavoritesState{}, err
	}
	if added != next.Has(target) {
		// another request raced us; report what the store holds
		return s.ListFavorites(ctx, userID)
	}
	return next, nil
}

func (s ProfileService) checkTarget(ctx context.Context, target string) error {
	switch {
	case strings.HasPrefix(target, FavoriteProductPrefix):
		_, err := s.Products.GetByID(ctx, strings.TrimPrefix(target, FavoriteProductPrefix))
		return err
	case strings.HasPrefix(target, FavoriteProviderPrefix):
		_, err := s.Providers.GetByID(ctx, strings.TrimPrefix(target, FavoriteProviderPrefix))
		return err
	}
	return domain.ValidationError{Field: "targetId", Msg: `must start with "product:" or "provider:"`}
}

// ListUsers is the admin user directory.
func (s ProfileService) ListUsers(ctx context.Context, p domain.Pagination) ([]models.User, domain.Pagination, error) {
	p = p.Normalize()
	users, total, err := s.Users.ListUsers(ctx, p)
	if err != nil {
		return nil, p, err
	}
	p.Total = total
	return users, p, nil
}
