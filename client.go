// Package workshop is a client for the Steam Web API workshop endpoints:
// published file details, collection children, search, and subscription
// management.
//
// An anonymous client can fetch file and collection details. Search and
// the subscription calls need an API key (get one from
// https://steamcommunity.com/dev/apikey) or a proxy domain — a third-party
// host implementing the same request contract that injects its own key
// server-side.
package workshop

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/steamwebapi/workshop/internal/api"
)

// Version of the library, reported in the User-Agent of every request.
const Version = "1.0.0"

// DefaultDomain is the official Steam Web API host.
const DefaultDomain = "api.steampowered.com"

const defaultBaseURL = "https://" + DefaultDomain

// Mode describes how a client is authorized, which in turn decides which
// operations are legal.
type Mode int

const (
	// ModeAnonymous permits file and collection detail lookups only.
	ModeAnonymous Mode = iota
	// ModeAPIKey permits every operation; the key travels with each
	// privileged request.
	ModeAPIKey
	// ModeProxied permits every operation; the proxy host is trusted to
	// inject its own key server-side.
	ModeProxied
)

func (m Mode) String() string {
	switch m {
	case ModeAnonymous:
		return "anonymous"
	case ModeAPIKey:
		return "apikey"
	case ModeProxied:
		return "proxied"
	default:
		return "unknown"
	}
}

// Client is a stateful façade over the workshop endpoints. Configuration
// is expected to be set before concurrent use begins; the setters are not
// synchronized against in-flight calls.
type Client struct {
	baseURL   string
	apiKey    string
	http      *http.Client
	userAgent string
}

// New constructs a Client. With no options the client is anonymous and
// talks to api.steampowered.com with a 30 second request timeout.
func New(opts ...Option) (*Client, error) {
	c := &Client{
		baseURL:   defaultBaseURL,
		http:      &http.Client{Timeout: 30 * time.Second},
		userAgent: "go-steamworkshop/v" + Version,
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	c.wrapTransportWithUserAgent()
	return c, nil
}

// SetAPIKey configures the key sent with privileged calls. An empty key
// returns the client to anonymous or proxied access.
func (c *Client) SetAPIKey(key string) {
	c.apiKey = key
}

// SetProxyDomain routes all requests to a third-party host implementing
// the Steam request contract. A bare host is addressed over https; an
// explicit scheme is kept as given. An empty domain restores the official
// host.
func (c *Client) SetProxyDomain(domain string) {
	switch {
	case domain == "":
		c.baseURL = defaultBaseURL
	case strings.Contains(domain, "://"):
		c.baseURL = strings.TrimSuffix(domain, "/")
	default:
		c.baseURL = "https://" + domain
	}
}

// Mode reports how the client is authorized. A configured key wins over a
// proxy domain when both are set.
func (c *Client) Mode() Mode {
	switch {
	case c.apiKey != "":
		return ModeAPIKey
	case c.baseURL != defaultBaseURL:
		return ModeProxied
	default:
		return ModeAnonymous
	}
}

func (c *Client) authorized() bool { return c.Mode() != ModeAnonymous }

// wrapTransportWithUserAgent wraps the HTTP client's transport so every
// outbound request carries the library's User-Agent.
func (c *Client) wrapTransportWithUserAgent() {
	base := c.http.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	c.http.Transport = &userAgentTransport{base: base, userAgent: c.userAgent}
}

// userAgentTransport wraps an http.RoundTripper to stamp the User-Agent
// header onto every request.
type userAgentTransport struct {
	base      http.RoundTripper
	userAgent string
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	cloned := req.Clone(req.Context())
	cloned.Header.Set("User-Agent", t.userAgent)
	return t.base.RoundTrip(cloned)
}

// --------------------------------------------------------------------
// Published file operations - delegated to internal/api
// --------------------------------------------------------------------

// GetPublishedFileDetails fetches the latest WorkshopItem for each id.
// Ids that fail to parse as uint64 fail fast with a BadRequestError before
// any network call. Entries for deleted, banned, or missing files are
// dropped from the result. Steam accepts at most 100 ids per call.
func (c *Client) GetPublishedFileDetails(ctx context.Context, fileIDs []string) ([]WorkshopItem, error) {
	items, err := api.PublishedFileDetails(ctx, c.http, c.baseURL, fileIDs)
	observe("get_published_file_details", err)
	return items, err
}

// GetCollectionDetails returns the ordered child ids of a collection,
// which can be fed directly back into GetPublishedFileDetails. ok is
// false, with no error, when fileID is not a collection.
func (c *Client) GetCollectionDetails(ctx context.Context, fileID string) (children []string, ok bool, err error) {
	children, ok, err = api.CollectionChildren(ctx, c.http, c.baseURL, fileID)
	observe("get_collection_details", err)
	return children, ok, err
}

// --------------------------------------------------------------------
// Privileged operations - require an API key or a proxy domain
// --------------------------------------------------------------------

// SearchItems searches published files for the given query text. It fails
// with ErrNotAuthorized, without any network call, unless an API key or a
// proxy domain is configured. A search that matches nothing returns an
// empty list, not an error.
func (c *Client) SearchItems(ctx context.Context, query string, opts *SearchOptions) ([]WorkshopItem, error) {
	if !c.authorized() {
		return nil, ErrNotAuthorized
	}
	items, err := api.QueryFiles(ctx, c.http, c.baseURL, c.apiKey, query, opts)
	observe("search_items", err)
	return items, err
}

// CanSubscribe reports whether the user behind the API key may subscribe
// to the published file. A malformed or missing response field reads as
// false rather than an error.
func (c *Client) CanSubscribe(ctx context.Context, fileID string) (bool, error) {
	if !c.authorized() {
		return false, ErrNotAuthorized
	}
	can, err := api.CanSubscribe(ctx, c.http, c.baseURL, c.apiKey, fileID)
	observe("can_subscribe", err)
	return can, err
}

// Subscribe subscribes the keyed user to the published file. notify asks
// Steam to notify the user's client. Success is defined by the HTTP
// status alone.
func (c *Client) Subscribe(ctx context.Context, fileID string, notify bool) error {
	if !c.authorized() {
		return ErrNotAuthorized
	}
	err := api.Subscribe(ctx, c.http, c.baseURL, c.apiKey, fileID, notify)
	observe("subscribe", err)
	return err
}

// Unsubscribe removes the keyed user's subscription to the published
// file. Success is defined by the HTTP status alone.
func (c *Client) Unsubscribe(ctx context.Context, fileID string) error {
	if !c.authorized() {
		return ErrNotAuthorized
	}
	err := api.Unsubscribe(ctx, c.http, c.baseURL, c.apiKey, fileID)
	observe("unsubscribe", err)
	return err
}
