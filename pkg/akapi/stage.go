package akapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// FindStages lists stages across all flows, optionally filtered by name.
func (c *Client) FindStages(ctx context.Context, name string) ([]Stage, error) {
	query := url.Values{}
	if name != "" {
		query.Set("name", name)
	}

	return find[Stage](ctx, c, "/stages/all/", query)
}

// DeleteStage deletes a stage by pk.
func (c *Client) DeleteStage(ctx context.Context, pk string) error {
	resp, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/stages/all/%s/", pk), nil, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusNoContent:
		return nil
	case http.StatusNotFound:
		return &NotFoundError{Resource: fmt.Sprintf("stage %s", pk)}
	default:
		return unexpectedStatus(resp)
	}
}
