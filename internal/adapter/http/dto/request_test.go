package dto

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vkmindia80/reconcile/internal/statement"
)

func TestUploadStatementRequest_ToUseCaseInput(t *testing.T) {
	tests := []struct {
		name        string
		request     *UploadStatementRequest
		expectError bool
	}{
		{
			name: "valid request",
			request: &UploadStatementRequest{
				AccountID:      "acc-1",
				StatementDate:  "2025-10-31",
				OpeningBalance: decimal.RequireFromString("1000.00"),
				ClosingBalance: decimal.RequireFromString("3374.50"),
				Format:         "csv",
				Statement:      "date,description,amount\n",
				UploadedBy:     "alice",
			},
		},
		{
			name: "malformed date",
			request: &UploadStatementRequest{
				AccountID:     "acc-1",
				StatementDate: "31/10/2025",
			},
			expectError: true,
		},
		{
			name: "empty date passes through for domain validation",
			request: &UploadStatementRequest{
				AccountID: "acc-1",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.request.ToUseCaseInput()

			if tt.expectError {
				if err == nil {
					t.Fatalf("expected error, got nil")
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.AccountID != tt.request.AccountID {
				t.Fatalf("expected account %q, got %q", tt.request.AccountID, got.AccountID)
			}
		})
	}
}

func TestUploadStatementRequest_StatementDateParsedUTC(t *testing.T) {
	req := &UploadStatementRequest{
		AccountID:     "acc-1",
		StatementDate: "2025-10-31",
	}

	got, err := req.ToUseCaseInput()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := time.Date(2025, 10, 31, 0, 0, 0, 0, time.UTC)
	if !got.StatementDate.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got.StatementDate)
	}
}

func TestUploadStatementRequest_AutoMatchDefault(t *testing.T) {
	autoMatchOff := false

	tests := []struct {
		name    string
		request *UploadStatementRequest
		want    bool
	}{
		{"defaults to true", &UploadStatementRequest{StatementDate: "2025-10-31"}, true},
		{"explicit false", &UploadStatementRequest{StatementDate: "2025-10-31", AutoMatch: &autoMatchOff}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.request.ToUseCaseInput()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.AutoMatch != tt.want {
				t.Fatalf("expected AutoMatch=%v, got %v", tt.want, got.AutoMatch)
			}
		})
	}
}

func TestUploadStatementRequest_EmptyFormatMeansAutoDetect(t *testing.T) {
	req := &UploadStatementRequest{
		AccountID:     "acc-1",
		StatementDate: "2025-10-31",
	}

	got, err := req.ToUseCaseInput()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Format != statement.FormatAuto {
		t.Fatalf("expected auto format, got %q", got.Format)
	}
}

func TestMatchRequest_ToUseCaseInput(t *testing.T) {
	confidence := 0.42
	req := &MatchRequest{
		LedgerTransactionID: "tx-1",
		MatchedBy:           "alice",
		ConfidenceScore:     &confidence,
	}

	got := req.ToUseCaseInput("sess-1", "entry-1")
	if got.SessionID != "sess-1" || got.EntryID != "entry-1" {
		t.Fatalf("expected IDs to be threaded through, got %+v", got)
	}
	if got.LedgerTransactionID != "tx-1" || got.MatchedBy != "alice" {
		t.Fatalf("unexpected input: %+v", got)
	}
	if got.ConfidenceScore == nil || *got.ConfidenceScore != 0.42 {
		t.Fatalf("expected confidence override 0.42, got %v", got.ConfidenceScore)
	}
}

func TestCompleteSessionRequest_ToUseCaseInput(t *testing.T) {
	notes := "period closed with one unmatched fee"
	req := &CompleteSessionRequest{
		CompletedBy: "bob",
		Notes:       &notes,
	}

	got := req.ToUseCaseInput("sess-1")
	if got.SessionID != "sess-1" || got.CompletedBy != "bob" {
		t.Fatalf("unexpected input: %+v", got)
	}
	if got.Notes == nil || *got.Notes != notes {
		t.Fatalf("expected notes to be carried, got %v", got.Notes)
	}
}
