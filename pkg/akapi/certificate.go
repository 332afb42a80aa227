package akapi

import (
	"context"
	"net/url"
	"strconv"
)

// FindCertificates lists certificate-key pairs by name. hasKey restricts
// the results to pairs with a private key, which is required for signing.
func (c *Client) FindCertificates(ctx context.Context, name string, hasKey bool) ([]Certificate, error) {
	query := url.Values{}
	if name != "" {
		query.Set("name", name)
	}
	query.Set("has_key", strconv.FormatBool(hasKey))

	return find[Certificate](ctx, c, "/crypto/certificatekeypairs/", query)
}
