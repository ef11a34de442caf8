package fecapi

import (
	"regexp"
	"strings"

	ferrors "github.com/systmms/fecops/internal/errors"
)

// Limit bounds accepted by the FEC API. Requests above MaxLimit are
// clamped, requests at or below zero are rejected before any network
// or credential access.
const (
	MinLimit = 1
	MaxLimit = 100
)

// DefaultSort orders filings newest-received first, matching what a
// reporter looking at a committee wants by default.
const DefaultSort = "-receipt_date"

// sortableFields is the allow-list for the filings sort parameter.
var sortableFields = map[string]bool{
	"receipt_date":        true,
	"coverage_start_date": true,
	"coverage_end_date":   true,
	"total_receipts":      true,
	"total_disbursements": true,
	"report_year":         true,
	"cycle":               true,
}

// Committee IDs look like C00089482: a C followed by eight digits.
var committeeIDPattern = regexp.MustCompile(`^[Cc][0-9]{8}$`)

// SearchRequest asks for committees matching a free-text query.
type SearchRequest struct {
	Query string
	Limit int
}

// Validate rejects malformed input and clamps the limit. The search
// endpoint ignores paging parameters, so the limit is applied
// client-side after the response arrives.
func (r *SearchRequest) Validate() error {
	if strings.TrimSpace(r.Query) == "" {
		return ferrors.ValidationError{Field: "query", Message: "query must not be empty"}
	}
	return clampLimit(&r.Limit)
}

// FilingsRequest asks for filings submitted by one committee.
// Optional filters are sent only when set; zero values are omitted
// from the outbound call entirely.
type FilingsRequest struct {
	CommitteeID string
	Limit       int
	FormType    string // e.g. F3, F3P, F3X
	Cycle       int    // two-year election cycle, e.g. 2024
	ReportType  string // e.g. Q1, Q2, Q3, MY, YE, 12G, 30G
	Sort        string // field name, optional leading '-' for descending

	// MostRecentOnly excludes superseded amendments. Maps to the
	// API's most_recent flag.
	MostRecentOnly bool
}

// Validate rejects malformed input, clamps the limit, and checks the
// sort field against the allow-list.
func (r *FilingsRequest) Validate() error {
	if !committeeIDPattern.MatchString(r.CommitteeID) {
		return ferrors.ValidationError{
			Field:   "committee_id",
			Value:   r.CommitteeID,
			Message: "must be a committee ID like C00089482",
		}
	}
	if err := clampLimit(&r.Limit); err != nil {
		return err
	}
	if r.Sort == "" {
		r.Sort = DefaultSort
	}
	if !sortableFields[strings.TrimPrefix(r.Sort, "-")] {
		return ferrors.ValidationError{
			Field:   "sort",
			Value:   r.Sort,
			Message: "not a sortable field; use one of receipt_date, coverage_start_date, coverage_end_date, total_receipts, total_disbursements, report_year, cycle (optionally prefixed with '-')",
		}
	}
	return nil
}

func clampLimit(limit *int) error {
	if *limit < MinLimit {
		return ferrors.ValidationError{
			Field:   "limit",
			Value:   *limit,
			Message: "must be a positive integer",
		}
	}
	if *limit > MaxLimit {
		*limit = MaxLimit
	}
	return nil
}

// Committee is a raw committee record from the typeahead search
// endpoint, passed through untouched.
type Committee map[string]interface{}

// Filing is the summary view of one filing record, shaped down to the
// fields that matter for finding and comparing reports. Numeric fields
// are pointers because the API returns null for filings without
// financial summaries.
type Filing struct {
	FilingID           *int64   `json:"filing_id"`
	FormType           string   `json:"form_type"`
	ReceiptDate        string   `json:"receipt_date"`
	CoverageStartDate  string   `json:"coverage_start_date"`
	CoverageEndDate    string   `json:"coverage_end_date"`
	TotalReceipts      *float64 `json:"total_receipts"`
	TotalDisbursements *float64 `json:"total_disbursements"`
	AmendmentIndicator string   `json:"amendment_indicator"`
}

// filingRecord is the wire shape of a filing as the API returns it.
type filingRecord struct {
	FileNumber         *int64   `json:"file_number"`
	FormType           string   `json:"form_type"`
	ReceiptDate        string   `json:"receipt_date"`
	CoverageStartDate  string   `json:"coverage_start_date"`
	CoverageEndDate    string   `json:"coverage_end_date"`
	TotalReceipts      *float64 `json:"total_receipts"`
	TotalDisbursements *float64 `json:"total_disbursements"`
	AmendmentIndicator string   `json:"amendment_indicator"`
}

func (w filingRecord) summary() Filing {
	return Filing{
		FilingID:           w.FileNumber,
		FormType:           w.FormType,
		ReceiptDate:        w.ReceiptDate,
		CoverageStartDate:  w.CoverageStartDate,
		CoverageEndDate:    w.CoverageEndDate,
		TotalReceipts:      w.TotalReceipts,
		TotalDisbursements: w.TotalDisbursements,
		AmendmentIndicator: w.AmendmentIndicator,
	}
}
