package akapi

import (
	"context"
	"fmt"
	"net/http"
)

// CreateToken creates an API token. Duplicate identifiers surface as
// AlreadyExists.
func (c *Client) CreateToken(ctx context.Context, token Token) error {
	resp, err := c.do(ctx, http.MethodPost, "/core/tokens/", nil, token)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusCreated:
		return nil
	case http.StatusBadRequest:
		return &AlreadyExistsError{Resource: fmt.Sprintf("token %q", token.Identifier)}
	default:
		return unexpectedStatus(resp)
	}
}

// DeleteToken deletes a token by identifier.
func (c *Client) DeleteToken(ctx context.Context, identifier string) error {
	resp, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/core/tokens/%s/", identifier), nil, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusNoContent:
		return nil
	case http.StatusNotFound:
		return &NotFoundError{Resource: fmt.Sprintf("token %q", identifier)}
	default:
		return unexpectedStatus(resp)
	}
}

// ViewTokenKey returns the secret key of a token by identifier.
func (c *Client) ViewTokenKey(ctx context.Context, identifier string) (string, error) {
	resp, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/core/tokens/%s/view_key/", identifier), nil, nil)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return "", &NotFoundError{Resource: fmt.Sprintf("token %q", identifier)}
	default:
		return "", unexpectedStatus(resp)
	}

	key, err := decodeInto[struct {
		Key string `json:"key"`
	}](resp)
	if err != nil {
		return "", err
	}
	return key.Key, nil
}
