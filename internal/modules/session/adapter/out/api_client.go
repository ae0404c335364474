package out

import (
	"context"

	"studyrank/internal/modules/session/domain"
	sessionout "studyrank/internal/modules/session/port/out"
	"studyrank/internal/platform/rest"
)

type APIClient struct {
	rest *rest.Client
}

func NewAPIClient(client *rest.Client) sessionout.AccountAPI {
	return &APIClient{rest: client}
}

type createUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (c *APIClient) CreateUser(ctx context.Context, name, email string) (domain.User, error) {
	var user domain.User
	err := c.rest.PostJSON(ctx, "create user", "/users", createUserRequest{Name: name, Email: email}, &user)
	if err != nil {
		return domain.User{}, err
	}
	return user, nil
}
