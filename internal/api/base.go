package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"github.com/steamwebapi/workshop/internal/types"
)

// resultOK is the per-entry result code Steam uses for a live published
// file; anything else marks a deleted, banned, or missing item.
const resultOK = 1

// HTTPClient is the slice of *http.Client this layer needs; the façade
// injects its configured client so transport wrappers apply uniformly.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// postForm issues a form-encoded POST and decodes the JSON body into out.
// out may be nil for calls whose success is the HTTP status alone.
func postForm(ctx context.Context, hc HTTPClient, op, rawURL string, form url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, rawURL, strings.NewReader(form.Encode()))
	if err != nil {
		return &types.RequestError{Op: op, Err: err}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return do(hc, op, req, out)
}

// getJSON issues a GET with query parameters and decodes the JSON body
// into out.
func getJSON(ctx context.Context, hc HTTPClient, op, rawURL string, query url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return &types.RequestError{Op: op, Err: err}
	}
	req.URL.RawQuery = query.Encode()
	return do(hc, op, req, out)
}

func do(hc HTTPClient, op string, req *http.Request, out any) error {
	resp, err := hc.Do(req)
	if err != nil {
		return &types.RequestError{Op: op, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &types.RequestError{Op: op, Status: resp.StatusCode}
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &types.RequestError{Op: op, Err: err}
	}
	return nil
}
