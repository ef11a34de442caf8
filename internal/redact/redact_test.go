package redact_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/systmms/fecops/internal/redact"
)

func TestQueryParam(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "bare_parameter",
			in:   "api_key=DEMO123SECRET",
			want: "api_key=REDACTED",
		},
		{
			name: "inside_url",
			in:   "GET https://api.open.fec.gov/v1/names/committees/?api_key=XYZ789&q=Harris failed",
			want: "GET https://api.open.fec.gov/v1/names/committees/?api_key=REDACTED&q=Harris failed",
		},
		{
			name: "case_insensitive",
			in:   "API_KEY=abc123def Api_Key=zzz999",
			want: "API_KEY=REDACTED Api_Key=REDACTED",
		},
		{
			name: "every_occurrence",
			in:   "first api_key=one then api_key=two",
			want: "first api_key=REDACTED then api_key=REDACTED",
		},
		{
			name: "wrapped_error_chain",
			in:   `fec api get_filings error: Get "https://example/filings/?api_key=SECRET&per_page=10": context deadline exceeded`,
			want: `fec api get_filings error: Get "https://example/filings/?api_key=REDACTED&per_page=10": context deadline exceeded`,
		},
		{
			name: "no_key_present",
			in:   "connection refused",
			want: "connection refused",
		},
		{
			name: "empty_string",
			in:   "",
			want: "",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := redact.QueryParam(tt.in)
			assert.Equal(t, tt.want, got)

			// Idempotence: a second pass must not change the output.
			assert.Equal(t, got, redact.QueryParam(got))
		})
	}
}

func TestQueryParamNeverLeaksValue(t *testing.T) {
	t.Parallel()

	secrets := []string{"XYZ", "abcDEF123", "a-b_c.d", "0123456789abcdef"}
	for _, secret := range secrets {
		out := redact.QueryParam("error at ?api_key=" + secret + "&page=1")
		assert.NotContains(t, out, "api_key="+secret)
	}
}

func TestLiteral(t *testing.T) {
	t.Parallel()

	t.Run("masks_all_occurrences", func(t *testing.T) {
		t.Parallel()
		out := redact.Literal("key SECRET1 appears twice: SECRET1", "SECRET1")
		assert.Equal(t, "key REDACTED appears twice: REDACTED", out)
	})

	t.Run("skips_trivial_values", func(t *testing.T) {
		t.Parallel()
		// A three-character "secret" would shred unrelated text.
		out := redact.Literal("the key abc is short", "abc")
		assert.Equal(t, "the key abc is short", out)
	})

	t.Run("multiple_secrets", func(t *testing.T) {
		t.Parallel()
		out := redact.Literal("one FIRSTKEY two SECONDKEY", "FIRSTKEY", "SECONDKEY")
		assert.NotContains(t, out, "FIRSTKEY")
		assert.NotContains(t, out, "SECONDKEY")
	})
}

func TestError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", redact.Error(nil))
	assert.Equal(t,
		"request failed: api_key=REDACTED",
		redact.Error(errors.New("request failed: api_key=TOPSECRET")),
	)
}
