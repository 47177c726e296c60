// Package apdnumeric converts CrateDB NUMERIC columns to
// github.com/cockroachdb/apd values, for callers standardized on apd
// instead of shopspring/decimal.
package apdnumeric

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/cockroachdb/apd"

	cratetype "github.com/lgtm-migrator/crate-go"
)

// Register installs ToDecimal for NUMERIC columns on c.
func Register(c *cratetype.Converter) {
	c.Set(cratetype.Numeric, ToDecimal)
}

// ToDecimal converts the textual or numeric form CrateDB sends for
// NUMERIC columns into an *apd.Decimal. NULL converts to nil.
func ToDecimal(value any) (any, error) {
	if value == nil {
		return nil, nil
	}

	var s string
	switch v := value.(type) {
	case string:
		s = v
	case json.Number:
		s = v.String()
	case float64:
		s = strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		s = strconv.FormatFloat(float64(v), 'f', -1, 32)
	case int:
		return apd.New(int64(v), 0), nil
	case int64:
		return apd.New(v, 0), nil
	default:
		return nil, fmt.Errorf("cannot convert %T to apd.Decimal", value)
	}

	d, _, err := apd.NewFromString(s)
	if err != nil {
		return nil, err
	}
	return d, nil
}
