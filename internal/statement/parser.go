// Package statement parses uploaded bank statement files (CSV and OFX/QFX)
// into normalized bank entries. Parsing never touches persistent state.
package statement

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vkmindia80/reconcile/internal/domain"
)

// Format is the declared (or detected) statement file format.
type Format string

const (
	FormatAuto Format = ""
	FormatCSV  Format = "csv"
	FormatOFX  Format = "ofx"
)

// Entry is one normalized line item in file order. Sequence is the stable
// local ID assigned during parsing.
type Entry struct {
	Sequence       int
	Date           time.Time
	Description    string
	Amount         decimal.Decimal
	Reference      *string
	RunningBalance *decimal.Decimal
}

// Result holds the parsed entries plus the count of rows/blocks that were
// dropped for missing a required field. Skips are soft: they never fail the
// overall parse.
type Result struct {
	Entries []Entry
	Skipped int
}

// Parse converts raw statement bytes into normalized entries. An empty format
// triggers auto-detection. A file that is neither recognizable CSV nor OFX/QFX
// fails hard with domain.ErrUnsupportedFormat.
func Parse(data []byte, format Format) (*Result, error) {
	switch format {
	case FormatCSV:
		return parseCSV(data)
	case FormatOFX:
		return parseOFX(data)
	case FormatAuto:
		if looksLikeOFX(data) {
			return parseOFX(data)
		}
		return parseCSV(data)
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, format)
	}
}

func looksLikeOFX(data []byte) bool {
	head := strings.ToUpper(string(data[:min(len(data), 4096)]))

	return strings.Contains(head, "OFXHEADER") ||
		strings.Contains(head, "<OFX>") ||
		strings.Contains(head, "<STMTTRN>")
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
