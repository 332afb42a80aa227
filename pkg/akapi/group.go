package akapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// CreateGroupRequest is the payload for creating a group.
type CreateGroupRequest struct {
	Name        string `json:"name"`
	IsSuperuser bool   `json:"is_superuser"`
	Parent      string `json:"parent,omitempty"`
	Users       []int  `json:"users"`
}

// FindGroups lists groups, optionally filtered by exact name.
func (c *Client) FindGroups(ctx context.Context, name string) ([]Group, error) {
	query := url.Values{}
	if name != "" {
		query.Set("name", name)
	}

	return find[Group](ctx, c, "/core/groups/", query)
}

// CreateGroup creates a group. Duplicate names surface as AlreadyExists.
func (c *Client) CreateGroup(ctx context.Context, req CreateGroupRequest) (Group, error) {
	resp, err := c.do(ctx, http.MethodPost, "/core/groups/", nil, req)
	if err != nil {
		return Group{}, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusCreated:
	case http.StatusBadRequest:
		return Group{}, &AlreadyExistsError{Resource: fmt.Sprintf("group %q", req.Name)}
	default:
		return Group{}, unexpectedStatus(resp)
	}

	return decodeInto[Group](resp)
}

// DeleteGroup deletes a group by pk.
func (c *Client) DeleteGroup(ctx context.Context, pk string) error {
	resp, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/core/groups/%s/", pk), nil, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusNoContent:
		return nil
	case http.StatusBadRequest, http.StatusNotFound:
		return &NotFoundError{Resource: fmt.Sprintf("group %s", pk)}
	default:
		return unexpectedStatus(resp)
	}
}
