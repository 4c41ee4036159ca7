package statement

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sgmlStatement = `OFXHEADER:100
DATA:OFXSGML
VERSION:102

<OFX>
<BANKMSGSRSV1>
<STMTTRNRS>
<STMTRS>
<BANKTRANLIST>
<STMTTRN>
<TRNTYPE>DEBIT
<DTPOSTED>20251001120000[-5:EST]
<TRNAMT>-125.50
<FITID>2025100101
<NAME>Amazon Purchase
</STMTTRN>
<STMTTRN>
<TRNTYPE>CREDIT
<DTPOSTED>20251003
<TRNAMT>2500.00
<FITID>2025100302
<NAME>ACME Corp
<MEMO>Payroll
</STMTTRN>
</BANKTRANLIST>
</STMTRS>
</STMTTRNRS>
</BANKMSGSRSV1>
</OFX>
`

const xmlStatement = `<?xml version="1.0" encoding="UTF-8"?>
<OFX>
  <BANKMSGSRSV1>
    <STMTTRN>
      <DTPOSTED>20251005</DTPOSTED>
      <TRNAMT>-42.00</TRNAMT>
      <FITID>abc-1</FITID>
      <MEMO>Card payment</MEMO>
    </STMTTRN>
  </BANKMSGSRSV1>
</OFX>
`

func TestParseOFXSGML(t *testing.T) {
	result, err := parseOFX([]byte(sgmlStatement))
	require.NoError(t, err)
	require.Len(t, result.Entries, 2)
	assert.Equal(t, 0, result.Skipped)

	first := result.Entries[0]
	assert.Equal(t, time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC), first.Date)
	assert.True(t, first.Amount.Equal(decimal.RequireFromString("-125.50")))
	assert.Equal(t, "Amazon Purchase", first.Description)
	require.NotNil(t, first.Reference)
	assert.Equal(t, "2025100101", *first.Reference)

	second := result.Entries[1]
	assert.Equal(t, "ACME Corp Payroll", second.Description)
	assert.True(t, second.Amount.Equal(decimal.RequireFromString("2500.00")))
}

func TestParseOFXXML(t *testing.T) {
	result, err := parseOFX([]byte(xmlStatement))
	require.NoError(t, err)
	require.Len(t, result.Entries, 1)

	entry := result.Entries[0]
	assert.Equal(t, time.Date(2025, 10, 5, 0, 0, 0, 0, time.UTC), entry.Date)
	assert.Equal(t, "Card payment", entry.Description)
}

func TestParseOFXSkipsIncompleteBlocks(t *testing.T) {
	data := []byte(`<OFX><STMTTRN><DTPOSTED>20251001<TRNAMT>-1.00</STMTTRN>` +
		`<STMTTRN><NAME>No date or amount</STMTTRN></OFX>`)

	result, err := parseOFX(data)
	require.NoError(t, err)
	assert.Len(t, result.Entries, 1)
	assert.Equal(t, 1, result.Skipped)
}

func TestParseOFXNoBlocks(t *testing.T) {
	_, err := parseOFX([]byte("<OFX></OFX>"))
	require.Error(t, err)
}

func TestParseOFXNonASCIIDescriptions(t *testing.T) {
	// "ɐ" (U+0250) upper-cases to "Ɐ" (U+2C6F), growing from 2 to 3
	// UTF-8 bytes. Tag offsets must stay byte-accurate regardless.
	padded := strings.Repeat("ɐ", 40)
	data := []byte(`<OFX><BANKTRANLIST>
<STMTTRN>
<DTPOSTED>20251001
<TRNAMT>-10.00
<NAME>Café ` + padded + `
</STMTTRN>
<STMTTRN>
<DTPOSTED>20251002
<TRNAMT>-20.00
<NAME>Bäckerei Müller
<MEMO>Gebühr
</STMTTRN>
</BANKTRANLIST></OFX>`)

	result, err := parseOFX(data)
	require.NoError(t, err)
	require.Len(t, result.Entries, 2)
	assert.Equal(t, 0, result.Skipped)
	assert.Equal(t, "Café "+padded, result.Entries[0].Description)
	assert.Equal(t, "Bäckerei Müller Gebühr", result.Entries[1].Description)
}

func TestASCIIUpperPreservesLength(t *testing.T) {
	in := "stmttrn ɐéü mixed"
	out := asciiUpper(in)
	assert.Equal(t, len(in), len(out))
	assert.Equal(t, "STMTTRN ɐéü MIXED", out)
}
