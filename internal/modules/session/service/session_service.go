package service

import (
	"context"
	"strings"

	"studyrank/internal/modules/session/domain"
	sessionout "studyrank/internal/modules/session/port/out"
	apperrors "studyrank/internal/platform/errors"
)

type SessionService struct {
	api sessionout.AccountAPI
}

func NewSessionService(api sessionout.AccountAPI) *SessionService {
	return &SessionService{api: api}
}

// Register validates locally and creates the user remotely. Validation
// failures never reach the network.
func (s *SessionService) Register(ctx context.Context, name, email string) (domain.User, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(email) == "" {
		return domain.User{}, apperrors.Invalid("name and email are required")
	}
	return s.api.CreateUser(ctx, name, email)
}
