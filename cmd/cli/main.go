package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "reconcile-cli",
		Short: "Reconcile CLI tool",
		Long:  `A command line interface for interacting with the reconciliation API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the reconciliation API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	rootCmd.AddCommand(uploadCmd())
	rootCmd.AddCommand(sessionsCmd())
	rootCmd.AddCommand(reportCmd())
	rootCmd.AddCommand(completeCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func uploadCmd() *cobra.Command {
	var (
		accountID      string
		statementDate  string
		openingBalance string
		closingBalance string
		format         string
		autoMatch      bool
		uploadedBy     string
	)

	cmd := &cobra.Command{
		Use:   "upload <statement-file>",
		Short: "Upload a bank statement and start a reconciliation session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read statement file: %w", err)
			}

			payload := map[string]any{
				"account_id":      accountID,
				"statement_date":  statementDate,
				"opening_balance": openingBalance,
				"closing_balance": closingBalance,
				"statement":       string(data),
				"auto_match":      autoMatch,
				"uploaded_by":     uploadedBy,
			}
			if format != "" {
				payload["format"] = format
			}

			return postJSON("/api/v1/reconciliations", payload, http.StatusCreated)
		},
	}

	cmd.Flags().StringVar(&accountID, "account", "", "Ledger account ID")
	cmd.Flags().StringVar(&statementDate, "date", "", "Statement date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&openingBalance, "opening", "0", "Declared opening balance")
	cmd.Flags().StringVar(&closingBalance, "closing", "0", "Declared closing balance")
	cmd.Flags().StringVar(&format, "format", "", "Statement format (csv or ofx, empty for auto-detect)")
	cmd.Flags().BoolVar(&autoMatch, "auto-match", true, "Run the auto-matcher after parsing")
	cmd.Flags().StringVar(&uploadedBy, "by", "", "Uploading user")
	cmd.MarkFlagRequired("account")
	cmd.MarkFlagRequired("date")
	cmd.MarkFlagRequired("by")

	return cmd
}

func sessionsCmd() *cobra.Command {
	var (
		accountID string
		limit     int
	)

	cmd := &cobra.Command{
		Use:   "sessions",
		Short: "List reconciliation sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := fmt.Sprintf("/api/v1/reconciliations?limit=%d", limit)
			if accountID != "" {
				path += "&account_id=" + accountID
			}
			return getJSON(path)
		},
	}

	cmd.Flags().StringVar(&accountID, "account", "", "Filter by account ID")
	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of sessions")

	return cmd
}

func reportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report <session-id>",
		Short: "Show the reconciliation report for a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return getJSON("/api/v1/reconciliations/" + args[0] + "/report")
		},
	}
}

func completeCmd() *cobra.Command {
	var (
		completedBy string
		notes       string
	)

	cmd := &cobra.Command{
		Use:   "complete <session-id>",
		Short: "Finalize a reconciliation session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload := map[string]any{
				"completed_by": completedBy,
			}
			if notes != "" {
				payload["notes"] = notes
			}
			return postJSON("/api/v1/reconciliations/"+args[0]+"/complete", payload, http.StatusOK)
		},
	}

	cmd.Flags().StringVar(&completedBy, "by", "", "Completing user")
	cmd.Flags().StringVar(&notes, "notes", "", "Closing notes")
	cmd.MarkFlagRequired("by")

	return cmd
}

func getJSON(path string) error {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(baseURL + path)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	return printResponse(resp, http.StatusOK)
}

func postJSON(path string, payload any, wantStatus int) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode payload: %w", err)
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Post(baseURL+path, "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	return printResponse(resp, wantStatus)
}

func printResponse(resp *http.Response, wantStatus int) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != wantStatus {
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, truncate(string(body), 200))
	}

	var pretty any
	if err := json.Unmarshal(body, &pretty); err != nil {
		fmt.Println(string(body))
		return nil
	}

	printJSON(pretty)
	return nil
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("%v\n", v)
		return
	}
	fmt.Println(string(out))
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
