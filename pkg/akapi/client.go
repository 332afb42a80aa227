package akapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/dsluijk/authentik-operator/pkg/controller/metrics"
)

const (
	apiPath        = "/api/v3"
	requestTimeout = 120 * time.Second
	userAgent      = "authentik-operator/" + Version

	// List endpoints request a single oversized page and treat it as the
	// complete result set. Instances managed by this operator stay far
	// below this cardinality.
	listPageSize = "1000"
)

// Version of the operator, reported to Authentik via the user agent.
const Version = "0.2.0"

// Opts contains configuration options for the client
type Opts struct {
	// Instance and Namespace locate the Authentik deployment. The client
	// talks to it through the cluster-internal Service DNS name.
	Instance  string
	Namespace string

	// Token is the bearer credential attached to every request.
	Token string

	// URL overrides the address derived from Instance and Namespace.
	// Only used in tests.
	URL string
}

// Client is a typed client for the Authentik API of a single instance.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient creates a client for the Authentik API of one instance.
func NewClient(opts Opts) *Client {
	baseURL := opts.URL
	if baseURL == "" {
		baseURL = fmt.Sprintf("http://authentik-%s.%s", opts.Instance, opts.Namespace)
	}

	return &Client{
		baseURL: baseURL,
		token:   opts.Token,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

// WithToken returns a copy of the client authenticating with a different
// bearer token.
func (c *Client) WithToken(token string) *Client {
	return &Client{
		baseURL:    c.baseURL,
		token:      token,
		httpClient: c.httpClient,
	}
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+apiPath+path, reader)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	if len(query) > 0 {
		req.URL.RawQuery = query.Encode()
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.AkApiRequestsTotal.WithLabelValues(method, metrics.LabelError).Inc()
		metrics.AkApiRequestErrors.Inc()
		return nil, fmt.Errorf("executing request %s %s: %w", method, path, err)
	}

	metrics.AkApiRequestsTotal.WithLabelValues(method, strconv.Itoa(resp.StatusCode)).Inc()
	return resp, nil
}

// unexpectedStatus drains the response body into an UnexpectedStatusError.
func unexpectedStatus(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)
	return &UnexpectedStatusError{
		Method: resp.Request.Method,
		Path:   resp.Request.URL.Path,
		Status: resp.StatusCode,
		Body:   string(body),
	}
}

func decodeInto[T any](resp *http.Response) (T, error) {
	var out T
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return out, fmt.Errorf("decoding response: %w", err)
	}
	return out, nil
}

// find queries a paginated list endpoint and returns the first page as the
// complete result set.
func find[T any](ctx context.Context, c *Client, path string, query url.Values) ([]T, error) {
	if query == nil {
		query = url.Values{}
	}
	query.Set("page_size", listPageSize)

	resp, err := c.do(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, unexpectedStatus(resp)
	}

	page, err := decodeInto[paginated[T]](resp)
	if err != nil {
		return nil, err
	}
	return page.Results, nil
}
