package workshop

import (
	"context"
	"net/http"
	"testing"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func TestMode(t *testing.T) {
	cases := []struct {
		name   string
		key    string
		domain string
		want   Mode
	}{
		{"anonymous", "", "", ModeAnonymous},
		{"keyed", "SECRET", "", ModeAPIKey},
		{"proxied", "", "steamproxy.example.com", ModeProxied},
		{"key wins over proxy", "SECRET", "steamproxy.example.com", ModeAPIKey},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, err := New()
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			c.SetAPIKey(tc.key)
			c.SetProxyDomain(tc.domain)
			if got := c.Mode(); got != tc.want {
				t.Fatalf("Mode() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestSetProxyDomain(t *testing.T) {
	c, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	c.SetProxyDomain("steamproxy.example.com")
	if c.baseURL != "https://steamproxy.example.com" {
		t.Fatalf("bare host should gain https, got %q", c.baseURL)
	}

	c.SetProxyDomain("http://127.0.0.1:9000/")
	if c.baseURL != "http://127.0.0.1:9000" {
		t.Fatalf("explicit scheme should be kept, got %q", c.baseURL)
	}

	c.SetProxyDomain("")
	if c.baseURL != defaultBaseURL || c.Mode() != ModeAnonymous {
		t.Fatalf("empty domain should restore the default host, got %q", c.baseURL)
	}
}

func TestPrivilegedOps_NotAuthorizedWithoutKeyOrProxy(t *testing.T) {
	var calls int
	rt := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		calls++
		return &http.Response{StatusCode: http.StatusOK, Body: http.NoBody, Header: make(http.Header)}, nil
	})
	c, err := New(WithHTTPClient(&http.Client{Transport: rt}))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	ctx := context.Background()
	if _, err := c.SearchItems(ctx, "test", &SearchOptions{Count: 10, AppID: 550}); !IsNotAuthorized(err) {
		t.Fatalf("SearchItems: expected ErrNotAuthorized, got %v", err)
	}
	if _, err := c.CanSubscribe(ctx, "122447941"); !IsNotAuthorized(err) {
		t.Fatalf("CanSubscribe: expected ErrNotAuthorized, got %v", err)
	}
	if err := c.Subscribe(ctx, "2855027013", false); !IsNotAuthorized(err) {
		t.Fatalf("Subscribe: expected ErrNotAuthorized, got %v", err)
	}
	if err := c.Unsubscribe(ctx, "2855027013"); !IsNotAuthorized(err) {
		t.Fatalf("Unsubscribe: expected ErrNotAuthorized, got %v", err)
	}
	if calls != 0 {
		t.Fatalf("authorization must fail before any network call, saw %d", calls)
	}
}

func TestUserAgentStampedOnEveryRequest(t *testing.T) {
	var got string
	rt := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		got = r.Header.Get("User-Agent")
		return &http.Response{StatusCode: http.StatusOK, Body: http.NoBody, Header: make(http.Header)}, nil
	})
	c, err := New(WithHTTPClient(&http.Client{Transport: rt}), WithAPIKey("SECRET"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	_ = c.Subscribe(context.Background(), "2855027013", false)
	if got != "go-steamworkshop/v"+Version {
		t.Fatalf("User-Agent = %q", got)
	}
}

func TestErrorPredicates(t *testing.T) {
	if !IsBadRequest(&BadRequestError{Field: "publishedfileid", Value: "x"}) {
		t.Fatalf("IsBadRequest false for BadRequestError")
	}
	if !IsRequestError(&RequestError{Op: "subscribe", Status: 500}) {
		t.Fatalf("IsRequestError false for RequestError")
	}
	if IsBadRequest(ErrNotAuthorized) || IsRequestError(ErrNotAuthorized) {
		t.Fatalf("predicates should not overlap")
	}
}
