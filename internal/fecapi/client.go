// Package fecapi issues the two read operations this integration needs
// against the FEC API: committee typeahead search and per-committee
// filing listings. The API key comes from an injected credential
// source and appears only inside outbound request URLs; every error
// leaving this package is redacted before it is constructed.
package fecapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/systmms/fecops/internal/credential"
)

// requestTimeout bounds every call to the remote API.
const requestTimeout = 30 * time.Second

// maxErrorBody caps how much of a failure response is carried into the
// error message.
const maxErrorBody = 2048

// Config assembles a Client.
type Config struct {
	// BaseURL of the FEC API, without a trailing slash.
	BaseURL string

	// Source yields the API key per request.
	Source credential.Source

	// HTTPClient overrides the default client. Nil gets a client with
	// the standard timeout. The connection pool is shared read-only
	// across concurrent calls.
	HTTPClient *http.Client
}

// Client is a read-only FEC API client. Safe for concurrent use; each
// call blocks only its own invocation.
type Client struct {
	base   string
	source credential.Source
	http   *http.Client
}

// NewClient builds a client from cfg, filling in defaults.
func NewClient(cfg Config) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: requestTimeout}
	}
	return &Client{
		base:   cfg.BaseURL,
		source: cfg.Source,
		http:   httpClient,
	}
}

// SearchCommittees looks up committees by name via the typeahead
// endpoint. The endpoint does not honor a paging parameter, so results
// are truncated to the requested limit client-side. An empty result
// list is success, not an error.
func (c *Client) SearchCommittees(ctx context.Context, req SearchRequest) ([]Committee, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	key, err := c.source.APIKey(ctx)
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("api_key", key)
	params.Set("q", req.Query)

	var payload struct {
		Results []Committee `json:"results"`
	}
	if err := c.get(ctx, "search_committees", "/names/committees/", params, &payload); err != nil {
		return nil, err
	}

	results := payload.Results
	if len(results) > req.Limit {
		results = results[:req.Limit]
	}
	if results == nil {
		results = []Committee{}
	}
	return results, nil
}

// GetFilings lists filings for one committee. Optional filters are
// added to the query string only when set. An empty result list is
// success, not an error.
func (c *Client) GetFilings(ctx context.Context, req FilingsRequest) ([]Filing, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	key, err := c.source.APIKey(ctx)
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("api_key", key)
	params.Set("per_page", strconv.Itoa(req.Limit))
	params.Set("sort", req.Sort)
	params.Set("most_recent", strconv.FormatBool(req.MostRecentOnly))
	if req.FormType != "" {
		params.Set("form_type", req.FormType)
	}
	if req.Cycle != 0 {
		params.Set("cycle", strconv.Itoa(req.Cycle))
	}
	if req.ReportType != "" {
		params.Set("report_type", req.ReportType)
	}

	var payload struct {
		Results []filingRecord `json:"results"`
	}
	path := fmt.Sprintf("/committee/%s/filings/", url.PathEscape(req.CommitteeID))
	if err := c.get(ctx, "get_filings", path, params, &payload); err != nil {
		return nil, err
	}

	filings := make([]Filing, 0, len(payload.Results))
	for _, record := range payload.Results {
		filings = append(filings, record.summary())
	}
	return filings, nil
}

// get issues one bounded GET and decodes a 2xx JSON body into out.
// Any failure comes back as a *QueryError with a redacted message.
func (c *Client) get(ctx context.Context, op, path string, params url.Values, out interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	reqURL := c.base + path + "?" + params.Encode()
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return newTransportError(op, err)
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return newTransportError(op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return newStatusError(op, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return newTransportError(op, fmt.Errorf("decoding response: %w", err))
	}
	return nil
}
