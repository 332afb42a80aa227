package akapi

import (
	"context"
	"fmt"
	"net/http"
)

// GetFlow returns a flow by slug.
func (c *Client) GetFlow(ctx context.Context, slug string) (Flow, error) {
	resp, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/flows/instances/%s/", slug), nil, nil)
	if err != nil {
		return Flow{}, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return Flow{}, &NotFoundError{Resource: fmt.Sprintf("flow %q", slug)}
	default:
		return Flow{}, unexpectedStatus(resp)
	}

	return decodeInto[Flow](resp)
}

// DeleteFlow deletes a flow by slug.
func (c *Client) DeleteFlow(ctx context.Context, slug string) error {
	resp, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/flows/instances/%s/", slug), nil, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusNoContent:
		return nil
	case http.StatusNotFound:
		return &NotFoundError{Resource: fmt.Sprintf("flow %q", slug)}
	default:
		return unexpectedStatus(resp)
	}
}
