package akapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// CreateUserRequest is the payload for creating a regular account.
type CreateUserRequest struct {
	Name     string   `json:"name"`
	Username string   `json:"username"`
	Email    string   `json:"email,omitempty"`
	Path     string   `json:"path"`
	Groups   []string `json:"groups"`
}

// UserUpdate is a partial update of an existing account.
type UserUpdate struct {
	Groups []string `json:"groups"`
}

type sessionUser struct {
	User User `json:"user"`
}

// FindUsers lists accounts, optionally filtered by exact username.
func (c *Client) FindUsers(ctx context.Context, username string) ([]User, error) {
	query := url.Values{}
	if username != "" {
		query.Set("username", username)
	}

	return find[User](ctx, c, "/core/users/", query)
}

// GetSelf returns the account the bearer token belongs to. A Forbidden
// error means the token is not (or no longer) valid.
func (c *Client) GetSelf(ctx context.Context) (User, error) {
	resp, err := c.do(ctx, http.MethodGet, "/core/users/me/", nil, nil)
	if err != nil {
		return User{}, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusForbidden:
		return User{}, &ForbiddenError{Resource: "current user"}
	default:
		return User{}, unexpectedStatus(resp)
	}

	session, err := decodeInto[sessionUser](resp)
	if err != nil {
		return User{}, err
	}
	return session.User, nil
}

// CreateAccount creates a regular account.
func (c *Client) CreateAccount(ctx context.Context, req CreateUserRequest) (User, error) {
	resp, err := c.do(ctx, http.MethodPost, "/core/users/", nil, req)
	if err != nil {
		return User{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return User{}, unexpectedStatus(resp)
	}

	return decodeInto[User](resp)
}

// CreateServiceAccount creates a service account without an attached group.
// Authentik rejects duplicate usernames with a 400, surfaced as
// AlreadyExists.
func (c *Client) CreateServiceAccount(ctx context.Context, name string) error {
	body := struct {
		Name        string `json:"name"`
		CreateGroup bool   `json:"create_group"`
	}{Name: name, CreateGroup: false}

	resp, err := c.do(ctx, http.MethodPost, "/core/users/service_account/", nil, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		return nil
	case http.StatusBadRequest:
		return &AlreadyExistsError{Resource: fmt.Sprintf("service account %q", name)}
	default:
		return unexpectedStatus(resp)
	}
}

// DeleteAccount deletes an account by pk.
func (c *Client) DeleteAccount(ctx context.Context, pk int) error {
	resp, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/core/users/%d/", pk), nil, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusNoContent:
		return nil
	case http.StatusBadRequest, http.StatusNotFound:
		return &NotFoundError{Resource: fmt.Sprintf("user %d", pk)}
	default:
		return unexpectedStatus(resp)
	}
}

// SetPassword sets the password of an account.
func (c *Client) SetPassword(ctx context.Context, pk int, password string) error {
	body := struct {
		Password string `json:"password"`
	}{Password: password}

	resp, err := c.do(ctx, http.MethodPost, fmt.Sprintf("/core/users/%d/set_password/", pk), nil, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent {
		return unexpectedStatus(resp)
	}
	return nil
}

// UpdateUser partially updates an account.
func (c *Client) UpdateUser(ctx context.Context, pk int, update UserUpdate) error {
	resp, err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/core/users/%d/", pk), nil, update)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return unexpectedStatus(resp)
	}
	return nil
}
