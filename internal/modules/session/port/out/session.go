package out

import (
	"context"

	"studyrank/internal/modules/session/domain"
)

// AccountAPI is the remote capability for creating the session identity.
type AccountAPI interface {
	CreateUser(ctx context.Context, name, email string) (domain.User, error)
}

// SessionStore persists the current user across runs. Load returns
// apperrors.ErrNoSession when no session is stored; a corrupt payload also
// loads as absent, never as an error.
type SessionStore interface {
	Save(ctx context.Context, user domain.User) error
	Load(ctx context.Context) (domain.User, error)
	Clear(ctx context.Context) error
}
