package state

import "salonmarket/internal/domain"

type AuthState struct {
	UserID        int64       `json:"userId,omitempty"`
	Role          domain.Role `json:"role,omitempty"`
	Authenticated bool        `json:"authenticated"`
}

type AuthAction interface{ authAction() }

// SetUser with a zero UserID clears the user.
type SetUser struct{ UserID int64 }

type SetRole struct{ Role domain.Role }

type SignedOut struct{}

func (SetUser) authAction()   {}
func (SetRole) authAction()   {}
func (SignedOut) authAction() {}

func ReduceAuth(s AuthState, a AuthAction) AuthState {
	switch act := a.(type) {
	case SetUser:
		s.UserID = act.UserID
		s.Authenticated = act.UserID != 0
		if !s.Authenticated {
			s.Role = ""
		}
	case SetRole:
		s.Role = act.Role
	case SignedOut:
		return AuthState{}
	}
	return s
}
