package cratetype_test

import (
	"fmt"

	cratetype "github.com/lgtm-migrator/crate-go"
)

// Example_customConverter demonstrates overriding the conversion for one
// column type while keeping the built-in conversions for the rest.
func Example_customConverter() {
	converter := cratetype.NewDefaultConverter()
	converter.Set(cratetype.Boolean, func(value any) (any, error) {
		if value == nil {
			return nil, nil
		}
		if value.(bool) {
			return "yes", nil
		}
		return "no", nil
	})

	colTypes, err := cratetype.UnmarshalTypeDescriptors([]byte(`[4, 3, [100, 5]]`))
	if err != nil {
		fmt.Println(err)
		return
	}

	rows, err := converter.RowConverter(colTypes)
	if err != nil {
		fmt.Println(err)
		return
	}

	row, err := rows.ConvertRow([]any{"foo", true, []any{"10.10.10.1", "10.10.10.2"}})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(row)
	// Output:
	// [foo yes [10.10.10.1 10.10.10.2]]
}
