package statement

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vkmindia80/reconcile/internal/domain"
)

// Date layouts are tried in order; the first successful parse wins.
var dateLayouts = []string{
	"2006-01-02",
	"01/02/2006",
	"02-01-2006",
	"2006/01/02",
	"01-02-2006",
	"Jan 2, 2006",
	"2 Jan 2006",
}

// csvLayout maps logical statement fields to column indexes. An index of -1
// means the column is absent.
type csvLayout struct {
	date        int
	description int
	amount      int
	debit       int
	credit      int
	balance     int
	reference   int
}

func (l csvLayout) valid() bool {
	return l.date >= 0 && (l.amount >= 0 || l.debit >= 0 || l.credit >= 0)
}

func parseCSV(data []byte) (*Result, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: no CSV header row", domain.ErrUnsupportedFormat)
	}

	layout := detectCSVLayout(header)
	if !layout.valid() {
		return nil, fmt.Errorf("%w: CSV header has no date/amount columns", domain.ErrUnsupportedFormat)
	}

	result := &Result{}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Malformed row, not a malformed file.
			result.Skipped++
			continue
		}

		entry, ok := parseCSVRecord(record, layout)
		if !ok {
			result.Skipped++
			continue
		}

		entry.Sequence = len(result.Entries)
		result.Entries = append(result.Entries, entry)
	}

	return result, nil
}

func detectCSVLayout(header []string) csvLayout {
	layout := csvLayout{date: -1, description: -1, amount: -1, debit: -1, credit: -1, balance: -1, reference: -1}

	for i, col := range header {
		name := strings.ToLower(strings.TrimSpace(col))
		switch {
		case layout.date < 0 && strings.Contains(name, "date"):
			layout.date = i
		case layout.description < 0 && (name == "description" || name == "memo" || name == "narrative" || name == "details" || name == "payee"):
			layout.description = i
		case layout.debit < 0 && (name == "debit" || name == "withdrawal"):
			layout.debit = i
		case layout.credit < 0 && (name == "credit" || name == "deposit"):
			layout.credit = i
		case layout.amount < 0 && name == "amount":
			layout.amount = i
		case layout.balance < 0 && strings.Contains(name, "balance"):
			layout.balance = i
		case layout.reference < 0 && (name == "reference" || name == "ref" || name == "transaction id" || name == "txn id"):
			layout.reference = i
		}
	}

	return layout
}

func parseCSVRecord(record []string, layout csvLayout) (Entry, bool) {
	var entry Entry

	date, ok := parseDate(field(record, layout.date))
	if !ok {
		return entry, false
	}
	entry.Date = date

	amount, ok := parseRecordAmount(record, layout)
	if !ok {
		return entry, false
	}
	entry.Amount = amount

	entry.Description = strings.TrimSpace(field(record, layout.description))

	if ref := strings.TrimSpace(field(record, layout.reference)); ref != "" {
		entry.Reference = &ref
	}

	if raw := field(record, layout.balance); strings.TrimSpace(raw) != "" {
		if balance, err := parseAmount(raw); err == nil {
			entry.RunningBalance = &balance
		}
	}

	return entry, true
}

// parseRecordAmount resolves the signed amount for either CSV layout. In the
// debit/credit layout the final amount is credit - debit.
func parseRecordAmount(record []string, layout csvLayout) (decimal.Decimal, bool) {
	if layout.amount >= 0 {
		amount, err := parseAmount(field(record, layout.amount))
		if err != nil {
			return decimal.Zero, false
		}
		return amount, true
	}

	debitRaw := strings.TrimSpace(field(record, layout.debit))
	creditRaw := strings.TrimSpace(field(record, layout.credit))
	if debitRaw == "" && creditRaw == "" {
		return decimal.Zero, false
	}

	debit := decimal.Zero
	if debitRaw != "" {
		var err error
		if debit, err = parseAmount(debitRaw); err != nil {
			return decimal.Zero, false
		}
	}

	credit := decimal.Zero
	if creditRaw != "" {
		var err error
		if credit, err = parseAmount(creditRaw); err != nil {
			return decimal.Zero, false
		}
	}

	return credit.Sub(debit), true
}

func parseDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), true
		}
	}

	return time.Time{}, false
}

// parseAmount strips currency symbols, thousands separators and accounting
// parentheses before parsing the decimal value.
func parseAmount(raw string) (decimal.Decimal, error) {
	cleaned := strings.TrimSpace(raw)

	negative := false
	if strings.HasPrefix(cleaned, "(") && strings.HasSuffix(cleaned, ")") {
		negative = true
		cleaned = cleaned[1 : len(cleaned)-1]
	}

	cleaned = strings.Map(func(r rune) rune {
		switch r {
		case '$', '€', '£', '¥', ',', ' ':
			return -1
		}
		return r
	}, cleaned)

	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, err
	}

	if negative {
		amount = amount.Neg()
	}

	return amount, nil
}

func field(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return record[idx]
}
