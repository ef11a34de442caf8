package fakes

import (
	"io"
	"net/http"
	"strings"
	"sync"
)

// CountingTransport is an http.RoundTripper that serves a canned JSON
// response and counts how many requests reached it. Handler tests use
// it to assert that no network call happens when the credential is
// unavailable, and to inspect the constructed request.
type CountingTransport struct {
	mu sync.Mutex

	// Status and Body are served for every request. Status defaults
	// to 200 when unset.
	Status int
	Body   string

	// Requests records every request that reached the transport.
	Requests []*http.Request
}

// RoundTrip serves the canned response.
func (t *CountingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	t.mu.Lock()
	t.Requests = append(t.Requests, req)
	status := t.Status
	body := t.Body
	t.mu.Unlock()

	if status == 0 {
		status = http.StatusOK
	}
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(body)),
		Request:    req,
	}, nil
}

// Calls returns how many requests reached the transport.
func (t *CountingTransport) Calls() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.Requests)
}

var _ http.RoundTripper = (*CountingTransport)(nil)
