package cratetype

import (
	"fmt"
	"math"

	"github.com/goccy/go-json"
)

// TypeDescriptor describes the type of one result column. A descriptor
// with a nil Elem is a scalar column. A descriptor with a non-nil Elem is
// an Array column whose element type is Elem, nested to arbitrary depth
// for arrays of arrays. A non-nil Elem is only valid when Code is Array.
type TypeDescriptor struct {
	Code DataType
	Elem *TypeDescriptor
}

// ScalarType returns the descriptor of a scalar column.
func ScalarType(code DataType) TypeDescriptor {
	return TypeDescriptor{Code: code}
}

// ArrayType returns the descriptor of an array column with the given
// element type.
func ArrayType(elem TypeDescriptor) TypeDescriptor {
	e := elem
	return TypeDescriptor{Code: Array, Elem: &e}
}

// IsArray reports whether the descriptor describes a collection column.
func (td TypeDescriptor) IsArray() bool {
	return td.Elem != nil
}

func (td TypeDescriptor) String() string {
	if td.Elem != nil {
		return fmt.Sprintf("%v<%v>", td.Code, *td.Elem)
	}
	return td.Code.String()
}

// UnmarshalJSON decodes the col_types representation of a single column
// type: a JSON number for scalars or a [100, inner] pair for arrays.
func (td *TypeDescriptor) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseTypeDescriptor(raw)
	if err != nil {
		return err
	}
	*td = parsed
	return nil
}

// UnmarshalTypeDescriptors decodes a full col_types JSON array, one
// descriptor per result column.
func UnmarshalTypeDescriptors(data []byte) ([]TypeDescriptor, error) {
	var tds []TypeDescriptor
	if err := json.Unmarshal(data, &tds); err != nil {
		return nil, err
	}
	return tds, nil
}

// ParseTypeDescriptor builds a TypeDescriptor from an already-decoded
// col_types entry: a number for scalar columns or a two-element sequence
// [100, inner] for array columns. Unknown scalar codes parse fine; only
// the shape is validated here. Malformed shapes fail with
// *InvalidTypeDescriptorError.
func ParseTypeDescriptor(raw any) (TypeDescriptor, error) {
	switch v := raw.(type) {
	case []any:
		if len(v) != 2 {
			return TypeDescriptor{}, &InvalidTypeDescriptorError{
				Reason: fmt.Sprintf("collection type must have 2 elements, got %d", len(v)),
			}
		}
		outer, err := parseTypeCode(v[0])
		if err != nil {
			return TypeDescriptor{}, err
		}
		if outer != Array {
			return TypeDescriptor{}, &InvalidTypeDescriptorError{
				Reason: fmt.Sprintf("data type %v is not a collection type", outer),
			}
		}
		elem, err := ParseTypeDescriptor(v[1])
		if err != nil {
			return TypeDescriptor{}, err
		}
		return ArrayType(elem), nil
	default:
		code, err := parseTypeCode(raw)
		if err != nil {
			return TypeDescriptor{}, err
		}
		return ScalarType(code), nil
	}
}

func parseTypeCode(raw any) (DataType, error) {
	switch v := raw.(type) {
	case DataType:
		return v, nil
	case int:
		return DataType(v), nil
	case int32:
		return DataType(v), nil
	case int64:
		return DataType(v), nil
	case float64:
		if v != math.Trunc(v) || v < math.MinInt32 || v > math.MaxInt32 {
			return 0, &InvalidTypeDescriptorError{
				Reason: fmt.Sprintf("type code %v is not an integer", v),
			}
		}
		return DataType(v), nil
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, &InvalidTypeDescriptorError{
				Reason: fmt.Sprintf("type code %v is not an integer", v),
			}
		}
		return DataType(n), nil
	default:
		return 0, &InvalidTypeDescriptorError{
			Reason: fmt.Sprintf("type code must be a number, got %T", raw),
		}
	}
}
