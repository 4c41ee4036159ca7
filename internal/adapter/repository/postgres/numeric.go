package postgres

import (
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

// toDecimal converts a scanned pgtype.Numeric into a decimal.Decimal.
func toDecimal(n pgtype.Numeric) (decimal.Decimal, error) {
	if !n.Valid {
		return decimal.Zero, nil
	}

	d, err := decimal.NewFromString(n.Int.String())
	if err != nil {
		return decimal.Zero, err
	}

	if n.Exp != 0 {
		d = d.Shift(n.Exp)
	}

	return d, nil
}

// toDecimalPtr converts a nullable numeric column, returning nil for NULL.
func toDecimalPtr(n pgtype.Numeric) (*decimal.Decimal, error) {
	if !n.Valid {
		return nil, nil
	}

	d, err := toDecimal(n)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// decimalArg renders a decimal for a numeric placeholder. pgx encodes the
// string straight into the numeric column without a float round trip.
func decimalArg(d decimal.Decimal) string {
	return d.String()
}

// decimalPtrArg renders an optional decimal, passing NULL through.
func decimalPtrArg(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}
	s := d.String()
	return &s
}
