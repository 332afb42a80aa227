package akapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// FindProviders searches providers of any component type.
func (c *Client) FindProviders(ctx context.Context, search string) ([]Provider, error) {
	query := url.Values{}
	if search != "" {
		query.Set("search", search)
	}

	return find[Provider](ctx, c, "/providers/all/", query)
}

// FindOAuthProviders lists OAuth2 providers, optionally filtered by name.
func (c *Client) FindOAuthProviders(ctx context.Context, name string) ([]OAuthProvider, error) {
	query := url.Values{}
	if name != "" {
		query.Set("name", name)
	}

	return find[OAuthProvider](ctx, c, "/providers/oauth2/", query)
}

// CreateOAuthProvider creates an OAuth2 provider.
func (c *Client) CreateOAuthProvider(ctx context.Context, provider OAuthProvider) (OAuthProvider, error) {
	resp, err := c.do(ctx, http.MethodPost, "/providers/oauth2/", nil, provider)
	if err != nil {
		return OAuthProvider{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return OAuthProvider{}, unexpectedStatus(resp)
	}

	return decodeInto[OAuthProvider](resp)
}

// PatchOAuthProvider updates an existing OAuth2 provider in place.
func (c *Client) PatchOAuthProvider(ctx context.Context, pk int, provider OAuthProvider) (OAuthProvider, error) {
	resp, err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/providers/oauth2/%d/", pk), nil, provider)
	if err != nil {
		return OAuthProvider{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return OAuthProvider{}, unexpectedStatus(resp)
	}

	return decodeInto[OAuthProvider](resp)
}

// DeleteOAuthProvider deletes an OAuth2 provider by pk.
func (c *Client) DeleteOAuthProvider(ctx context.Context, pk int) error {
	resp, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/providers/oauth2/%d/", pk), nil, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusNoContent:
		return nil
	case http.StatusNotFound:
		return &NotFoundError{Resource: fmt.Sprintf("oauth2 provider %d", pk)}
	default:
		return unexpectedStatus(resp)
	}
}
