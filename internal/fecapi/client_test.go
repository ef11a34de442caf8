package fecapi_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ferrors "github.com/systmms/fecops/internal/errors"
	"github.com/systmms/fecops/internal/fecapi"
)

// staticSource is a credential source that always yields the same key.
type staticSource string

func (s staticSource) APIKey(ctx context.Context) (string, error) {
	return string(s), nil
}

// capture records the queries the server saw so tests can assert on the
// exact outbound parameters.
type capture struct {
	paths   []string
	queries []url.Values
}

func newTestClient(t *testing.T, status int, body string) (*fecapi.Client, *capture) {
	t.Helper()

	cap := &capture{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cap.paths = append(cap.paths, r.URL.Path)
		cap.queries = append(cap.queries, r.URL.Query())
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	client := fecapi.NewClient(fecapi.Config{
		BaseURL: srv.URL,
		Source:  staticSource("TEST_KEY_123"),
	})
	return client, cap
}

func TestSearchCommittees(t *testing.T) {
	t.Parallel()

	body := `{"results": [
		{"id": "C00000001", "name": "ACTBLUE"},
		{"id": "C00000002", "name": "ACT NOW PAC"},
		{"id": "C00000003", "name": "ACTION FUND"}
	]}`
	client, cap := newTestClient(t, http.StatusOK, body)

	results, err := client.SearchCommittees(context.Background(), fecapi.SearchRequest{
		Query: "ACT",
		Limit: 2,
	})
	require.NoError(t, err)

	// The endpoint ignores paging, so truncation happens client-side.
	require.Len(t, results, 2)
	assert.Equal(t, "ACTBLUE", results[0]["name"])

	require.Len(t, cap.queries, 1)
	assert.Equal(t, "/names/committees/", cap.paths[0])
	assert.Equal(t, "ACT", cap.queries[0].Get("q"))
	assert.Equal(t, "TEST_KEY_123", cap.queries[0].Get("api_key"))
	assert.Empty(t, cap.queries[0].Get("per_page"))
}

func TestSearchCommitteesEmptyResultIsSuccess(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, http.StatusOK, `{"results": []}`)

	results, err := client.SearchCommittees(context.Background(), fecapi.SearchRequest{
		Query: "no such committee",
		Limit: 20,
	})
	require.NoError(t, err)
	assert.NotNil(t, results)
	assert.Empty(t, results)
}

func TestSearchCommitteesRejectsEmptyQuery(t *testing.T) {
	t.Parallel()

	client, cap := newTestClient(t, http.StatusOK, `{"results": []}`)

	_, err := client.SearchCommittees(context.Background(), fecapi.SearchRequest{
		Query: "   ",
		Limit: 20,
	})
	require.Error(t, err)
	assert.True(t, ferrors.IsValidation(err))
	assert.Empty(t, cap.queries, "invalid input must be rejected before any network access")
}

func TestGetFilings(t *testing.T) {
	t.Parallel()

	body := `{"results": [{
		"file_number": 1896341,
		"form_type": "F3",
		"receipt_date": "2024-10-15T00:00:00",
		"coverage_start_date": "2024-07-01T00:00:00",
		"coverage_end_date": "2024-09-30T00:00:00",
		"total_receipts": 1234567.89,
		"total_disbursements": 987654.32,
		"amendment_indicator": "N"
	}]}`
	client, cap := newTestClient(t, http.StatusOK, body)

	filings, err := client.GetFilings(context.Background(), fecapi.FilingsRequest{
		CommitteeID:    "C00089482",
		Limit:          10,
		MostRecentOnly: true,
	})
	require.NoError(t, err)

	require.Len(t, filings, 1)
	require.NotNil(t, filings[0].FilingID)
	assert.Equal(t, int64(1896341), *filings[0].FilingID)
	assert.Equal(t, "F3", filings[0].FormType)
	require.NotNil(t, filings[0].TotalReceipts)
	assert.InDelta(t, 1234567.89, *filings[0].TotalReceipts, 0.001)

	require.Len(t, cap.queries, 1)
	q := cap.queries[0]
	assert.Equal(t, "/committee/C00089482/filings/", cap.paths[0])
	assert.Equal(t, "10", q.Get("per_page"))
	assert.Equal(t, "-receipt_date", q.Get("sort"))
	assert.Equal(t, "true", q.Get("most_recent"))

	// Unset filters must not appear in the outbound query at all.
	assert.False(t, q.Has("form_type"))
	assert.False(t, q.Has("cycle"))
	assert.False(t, q.Has("report_type"))
}

func TestGetFilingsSendsOptionalFilters(t *testing.T) {
	t.Parallel()

	client, cap := newTestClient(t, http.StatusOK, `{"results": []}`)

	_, err := client.GetFilings(context.Background(), fecapi.FilingsRequest{
		CommitteeID:    "C00089482",
		Limit:          5,
		FormType:       "F3X",
		Cycle:          2024,
		ReportType:     "Q3",
		Sort:           "coverage_end_date",
		MostRecentOnly: false,
	})
	require.NoError(t, err)

	require.Len(t, cap.queries, 1)
	q := cap.queries[0]
	assert.Equal(t, "F3X", q.Get("form_type"))
	assert.Equal(t, "2024", q.Get("cycle"))
	assert.Equal(t, "Q3", q.Get("report_type"))
	assert.Equal(t, "coverage_end_date", q.Get("sort"))
	assert.Equal(t, "false", q.Get("most_recent"))
}

func TestGetFilingsClampsLimit(t *testing.T) {
	t.Parallel()

	client, cap := newTestClient(t, http.StatusOK, `{"results": []}`)

	_, err := client.GetFilings(context.Background(), fecapi.FilingsRequest{
		CommitteeID: "C00089482",
		Limit:       150,
	})
	require.NoError(t, err)

	require.Len(t, cap.queries, 1)
	assert.Equal(t, "100", cap.queries[0].Get("per_page"))
}

func TestGetFilingsValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		req  fecapi.FilingsRequest
	}{
		{
			name: "malformed_committee_id",
			req:  fecapi.FilingsRequest{CommitteeID: "H8MI13250", Limit: 10},
		},
		{
			name: "committee_id_too_short",
			req:  fecapi.FilingsRequest{CommitteeID: "C123", Limit: 10},
		},
		{
			name: "zero_limit",
			req:  fecapi.FilingsRequest{CommitteeID: "C00089482", Limit: 0},
		},
		{
			name: "negative_limit",
			req:  fecapi.FilingsRequest{CommitteeID: "C00089482", Limit: -5},
		},
		{
			name: "sort_field_not_in_allow_list",
			req:  fecapi.FilingsRequest{CommitteeID: "C00089482", Limit: 10, Sort: "candidate_name"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			client, cap := newTestClient(t, http.StatusOK, `{"results": []}`)

			_, err := client.GetFilings(context.Background(), tt.req)
			require.Error(t, err)
			assert.True(t, ferrors.IsValidation(err))
			assert.Empty(t, cap.queries, "invalid input must be rejected before any network access")
		})
	}
}

func TestGetFilingsAcceptsLowercaseCommitteeID(t *testing.T) {
	t.Parallel()

	client, cap := newTestClient(t, http.StatusOK, `{"results": []}`)

	_, err := client.GetFilings(context.Background(), fecapi.FilingsRequest{
		CommitteeID: "c00089482",
		Limit:       10,
	})
	require.NoError(t, err)
	require.Len(t, cap.paths, 1)
	assert.Equal(t, "/committee/c00089482/filings/", cap.paths[0])
}

func TestStatusErrorIsRedacted(t *testing.T) {
	t.Parallel()

	// An upstream error body that echoes the request URL, key included.
	body := `{"error": "rate limit exceeded for /names/committees/?api_key=TEST_KEY_123&q=ACT"}`
	client, _ := newTestClient(t, http.StatusTooManyRequests, body)

	_, err := client.SearchCommittees(context.Background(), fecapi.SearchRequest{
		Query: "ACT",
		Limit: 20,
	})
	require.Error(t, err)

	var qerr *fecapi.QueryError
	require.ErrorAs(t, err, &qerr)
	assert.Equal(t, http.StatusTooManyRequests, qerr.StatusCode)
	assert.NotContains(t, err.Error(), "TEST_KEY_123")
	assert.Contains(t, err.Error(), "REDACTED")
}

func TestTransportErrorIsRedacted(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	client := fecapi.NewClient(fecapi.Config{
		BaseURL: srv.URL,
		Source:  staticSource("TEST_KEY_123"),
	})

	_, err := client.SearchCommittees(context.Background(), fecapi.SearchRequest{
		Query: "ACT",
		Limit: 20,
	})
	require.Error(t, err)

	// Go transport errors embed the full request URL, key and all.
	var qerr *fecapi.QueryError
	require.ErrorAs(t, err, &qerr)
	assert.NotContains(t, err.Error(), "TEST_KEY_123")
}

func TestMalformedResponseBody(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, http.StatusOK, `{"results": [`)

	_, err := client.SearchCommittees(context.Background(), fecapi.SearchRequest{
		Query: "ACT",
		Limit: 20,
	})
	require.Error(t, err)

	var qerr *fecapi.QueryError
	require.ErrorAs(t, err, &qerr)
	assert.Contains(t, err.Error(), "decoding response")
}
