// Package numeric converts CrateDB NUMERIC columns to
// github.com/shopspring/decimal values.
package numeric

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"

	cratetype "github.com/lgtm-migrator/crate-go"
)

// Register installs ToDecimal for NUMERIC columns on c.
func Register(c *cratetype.Converter) {
	c.Set(cratetype.Numeric, ToDecimal)
}

// ToDecimal converts the textual or numeric form CrateDB sends for
// NUMERIC columns into a decimal.Decimal. NULL converts to nil.
func ToDecimal(value any) (any, error) {
	if value == nil {
		return nil, nil
	}

	switch v := value.(type) {
	case string:
		return decimal.NewFromString(v)
	case json.Number:
		return decimal.NewFromString(v.String())
	case float64:
		return decimal.NewFromFloat(v), nil
	case float32:
		return decimal.NewFromFloat(float64(v)), nil
	case int:
		return decimal.New(int64(v), 0), nil
	case int64:
		return decimal.New(v, 0), nil
	case uint64:
		// uint64 could be greater than int64 so convert to string then to decimal
		return decimal.NewFromString(strconv.FormatUint(v, 10))
	default:
		return nil, fmt.Errorf("cannot convert %T to decimal.Decimal", value)
	}
}
