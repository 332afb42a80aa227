package akapi

import (
	"context"
	"net/url"
)

// FindScopeMappings lists scope mappings, optionally filtered by name.
func (c *Client) FindScopeMappings(ctx context.Context, name string) ([]ScopeMapping, error) {
	query := url.Values{}
	if name != "" {
		query.Set("name", name)
	}

	return find[ScopeMapping](ctx, c, "/propertymappings/scope/", query)
}
