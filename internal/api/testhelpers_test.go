package api

import "net/http"

// countingClient records how many requests reached the transport, to
// prove fail-fast paths never touch the network.
type countingClient struct {
	calls int
}

func (c *countingClient) Do(*http.Request) (*http.Response, error) {
	c.calls++
	return &http.Response{StatusCode: http.StatusOK, Body: http.NoBody, Header: make(http.Header)}, nil
}
