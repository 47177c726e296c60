// Package cratetype converts the column types of the CrateDB HTTP
// interface to native Go values.
//
// A query response carries one numeric type code per column in its
// col_types field. cratetype maps those codes to conversion functions,
// resolves nested ARRAY descriptors into reusable plans, and applies the
// plans to raw row values. It does not speak HTTP and does not execute
// statements; it only converts values a result reader already decoded.
package cratetype

import "fmt"

// DataType is a numeric column type code as defined by the CrateDB HTTP
// interface.
type DataType int32

// CrateDB column type codes. The codes arrive verbatim from the server in
// the col_types field of a query response and must match the documented
// numbering exactly.
// https://crate.io/docs/crate/reference/en/latest/interfaces/http.html#column-types
const (
	Null               DataType = 0
	NotSupported       DataType = 1
	Char               DataType = 2
	Boolean            DataType = 3
	Text               DataType = 4
	IP                 DataType = 5
	Double             DataType = 6
	Real               DataType = 7
	SmallInt           DataType = 8
	Integer            DataType = 9
	BigInt             DataType = 10
	TimestampWithTZ    DataType = 11
	Object             DataType = 12
	GeoPoint           DataType = 13
	GeoShape           DataType = 14
	TimestampWithoutTZ DataType = 15
	UncheckedObject    DataType = 16
	RegProc            DataType = 19
	Time               DataType = 20
	OIDVector          DataType = 21
	Numeric            DataType = 22
	RegClass           DataType = 23
	Date               DataType = 24
	Bit                DataType = 25
	JSON               DataType = 26
	Character          DataType = 27

	// Array marks a collection column. It never stands alone in a
	// col_types entry; the server sends it as the first element of a
	// [100, inner] pair where inner is the element type.
	Array DataType = 100
)

var dataTypeNames = map[DataType]string{
	Null:               "null",
	NotSupported:       "not_supported",
	Char:               "char",
	Boolean:            "boolean",
	Text:               "text",
	IP:                 "ip",
	Double:             "double precision",
	Real:               "real",
	SmallInt:           "smallint",
	Integer:            "integer",
	BigInt:             "bigint",
	TimestampWithTZ:    "timestamp with time zone",
	Object:             "object",
	GeoPoint:           "geo_point",
	GeoShape:           "geo_shape",
	TimestampWithoutTZ: "timestamp without time zone",
	UncheckedObject:    "unchecked_object",
	RegProc:            "regproc",
	Time:               "time",
	OIDVector:          "oidvector",
	Numeric:            "numeric",
	RegClass:           "regclass",
	Date:               "date",
	Bit:                "bit",
	JSON:               "json",
	Character:          "character",
	Array:              "array",
}

func (dt DataType) String() string {
	if name, ok := dataTypeNames[dt]; ok {
		return name
	}
	return fmt.Sprintf("unknown type code %d", int32(dt))
}

// Known reports whether dt is part of the documented type set.
func (dt DataType) Known() bool {
	_, ok := dataTypeNames[dt]
	return ok
}

// DataTypeForCode maps a wire code to its DataType. Codes outside the
// documented set fail with *UnknownTypeCodeError. Converters built
// without the strict option never call this; they fall back to their
// default function instead so that new server types keep working.
func DataTypeForCode(code int32) (DataType, error) {
	dt := DataType(code)
	if !dt.Known() {
		return 0, &UnknownTypeCodeError{Code: code}
	}
	return dt, nil
}
