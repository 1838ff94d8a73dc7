package state

type FavoritesState struct {
	IDs []string `json:"ids"`
}

func (s FavoritesState) Has(id string) bool {
	for _, v := range s.IDs {
		if v == id {
			return true
		}
	}
	return false
}

type FavoritesAction interface{ favoritesAction() }

// ToggleFavorite adds id when absent and removes it when present.
type ToggleFavorite struct{ ID string }

func (ToggleFavorite) favoritesAction() {}

func ReduceFavorites(s FavoritesState, a FavoritesAction) FavoritesState {
	switch act := a.(type) {
	case ToggleFavorite:
		out := make([]string, 0, len(s.IDs)+1)
		found := false
		for _, v := range s.IDs {
			if v == act.ID {
				found = true
				continue
			}
			out = append(out, v)
		}
		if !found {
			out = append(out, act.ID)
		}
		return FavoritesState{IDs: out}
	}
	return s
}
