// Package uuid converts UUID values carried in CrateDB columns to
// github.com/gofrs/uuid values. CrateDB has no dedicated UUID column
// type, so the conversion is opt-in: register it for the type code of
// the columns that carry UUIDs, usually TEXT.
package uuid

import (
	"fmt"

	"github.com/gofrs/uuid"

	cratetype "github.com/lgtm-migrator/crate-go"
)

// Register installs ToUUID for TEXT columns on c. Every TEXT column
// converted through c must then hold UUIDs.
func Register(c *cratetype.Converter) {
	c.Set(cratetype.Text, ToUUID)
}

// ToUUID converts the canonical textual form into a uuid.UUID. NULL
// converts to nil.
func ToUUID(value any) (any, error) {
	if value == nil {
		return nil, nil
	}

	switch v := value.(type) {
	case string:
		return uuid.FromString(v)
	case []byte:
		return uuid.FromBytes(v)
	case [16]byte:
		return uuid.UUID(v), nil
	default:
		return nil, fmt.Errorf("cannot convert %T to uuid.UUID", value)
	}
}
