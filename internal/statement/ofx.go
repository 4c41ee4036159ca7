package statement

import (
	"fmt"
	"strings"
	"time"

	"github.com/vkmindia80/reconcile/internal/domain"
)

// parseOFX handles both the SGML and XML variants of OFX/QFX. Each STMTTRN
// block becomes one entry; blocks missing DTPOSTED or TRNAMT are skipped and
// counted, never fatal.
func parseOFX(data []byte) (*Result, error) {
	body := string(data)

	blocks := extractBlocks(body, "STMTTRN")
	if len(blocks) == 0 {
		return nil, fmt.Errorf("%w: no STMTTRN blocks found", domain.ErrUnsupportedFormat)
	}

	result := &Result{}
	for _, block := range blocks {
		entry, ok := parseSTMTTRN(block)
		if !ok {
			result.Skipped++
			continue
		}

		entry.Sequence = len(result.Entries)
		result.Entries = append(result.Entries, entry)
	}

	return result, nil
}

func parseSTMTTRN(block string) (Entry, bool) {
	var entry Entry

	posted := tagValue(block, "DTPOSTED")
	if len(posted) < 8 {
		return entry, false
	}

	date, err := time.Parse("20060102", posted[:8])
	if err != nil {
		return entry, false
	}
	entry.Date = date.UTC()

	amount, err := parseAmount(tagValue(block, "TRNAMT"))
	if err != nil {
		return entry, false
	}
	entry.Amount = amount

	name := tagValue(block, "NAME")
	memo := tagValue(block, "MEMO")
	switch {
	case name != "" && memo != "":
		entry.Description = name + " " + memo
	case name != "":
		entry.Description = name
	default:
		entry.Description = memo
	}

	if fitID := tagValue(block, "FITID"); fitID != "" {
		entry.Reference = &fitID
	}

	return entry, true
}

// asciiUpper upper-cases ASCII letters only. Unlike strings.ToUpper it
// never changes byte length, so indices found in the result are valid
// offsets into the input even when NAME/MEMO content is non-ASCII.
func asciiUpper(s string) string {
	b := []byte(s)
	for i, c := range b {
		if 'a' <= c && c <= 'z' {
			b[i] = c - 'a' + 'A'
		}
	}
	return string(b)
}

// extractBlocks returns the text of every <TAG>...</TAG> block. SGML-variant
// files may omit the closing tag, in which case a block runs to the next
// opening tag or end of input.
func extractBlocks(body, tag string) []string {
	upper := asciiUpper(body)
	open := "<" + tag + ">"
	closing := "</" + tag + ">"

	var blocks []string
	for pos := 0; ; {
		start := strings.Index(upper[pos:], open)
		if start < 0 {
			break
		}
		start += pos + len(open)

		end := len(body)
		if i := strings.Index(upper[start:], closing); i >= 0 {
			end = start + i
		} else if i := strings.Index(upper[start:], open); i >= 0 {
			end = start + i
		}

		blocks = append(blocks, body[start:end])
		pos = end
	}

	return blocks
}

// tagValue extracts an SGML/XML leaf value: the text after <TAG> up to the
// next element or line break.
func tagValue(block, tag string) string {
	upper := asciiUpper(block)
	open := "<" + tag + ">"

	start := strings.Index(upper, open)
	if start < 0 {
		return ""
	}
	start += len(open)

	end := len(block)
	if i := strings.IndexAny(block[start:], "<\r\n"); i >= 0 {
		end = start + i
	}

	return strings.TrimSpace(block[start:end])
}
