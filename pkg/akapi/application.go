package akapi

import (
	"context"
	"fmt"
	"net/http"
)

// GetApplication returns an application by slug. A nil result without an
// error means the application does not exist.
func (c *Client) GetApplication(ctx context.Context, slug string) (*Application, error) {
	resp, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/core/applications/%s/", slug), nil, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, nil
	default:
		return nil, unexpectedStatus(resp)
	}

	app, err := decodeInto[Application](resp)
	if err != nil {
		return nil, err
	}
	return &app, nil
}

// CreateApplication creates an application.
func (c *Client) CreateApplication(ctx context.Context, app Application) (Application, error) {
	resp, err := c.do(ctx, http.MethodPost, "/core/applications/", nil, app)
	if err != nil {
		return Application{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return Application{}, unexpectedStatus(resp)
	}

	return decodeInto[Application](resp)
}

// PatchApplication updates an existing application by slug.
func (c *Client) PatchApplication(ctx context.Context, slug string, app Application) (Application, error) {
	resp, err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/core/applications/%s/", slug), nil, app)
	if err != nil {
		return Application{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Application{}, unexpectedStatus(resp)
	}

	return decodeInto[Application](resp)
}

// DeleteApplication deletes an application by slug.
func (c *Client) DeleteApplication(ctx context.Context, slug string) error {
	resp, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/core/applications/%s/", slug), nil, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusNoContent:
		return nil
	case http.StatusBadRequest, http.StatusNotFound:
		return &NotFoundError{Resource: fmt.Sprintf("application %q", slug)}
	default:
		return unexpectedStatus(resp)
	}
}
