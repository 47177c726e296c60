package cratetype

import "fmt"

// RowConverter converts whole result rows. It resolves every column type
// once at construction, so converting any number of rows never touches
// the registry again.
type RowConverter struct {
	plans []Plan
}

// RowConverter builds a RowConverter for the given column types, one
// descriptor per column in result order. Resolution failures are
// annotated with the column index.
func (c *Converter) RowConverter(colTypes []TypeDescriptor) (*RowConverter, error) {
	plans := make([]Plan, len(colTypes))
	for i, td := range colTypes {
		plan, err := c.Resolve(td)
		if err != nil {
			return nil, ColumnConversionError{ColumnIndex: i, Err: err}
		}
		plans[i] = plan
	}
	return &RowConverter{plans: plans}, nil
}

// ConvertRow converts one raw row into a new slice of the same length.
// The row must have exactly one value per resolved column.
func (rc *RowConverter) ConvertRow(row []any) ([]any, error) {
	if len(row) != len(rc.plans) {
		return nil, fmt.Errorf("row has %d values, expected %d", len(row), len(rc.plans))
	}
	converted := make([]any, len(row))
	for i, value := range row {
		v, err := rc.plans[i].Convert(value)
		if err != nil {
			return nil, ColumnConversionError{ColumnIndex: i, Err: err}
		}
		converted[i] = v
	}
	return converted, nil
}

// ConvertRows converts a batch of raw rows, preserving row order. The
// first failing value aborts the batch; callers that want to skip bad
// rows convert row by row instead.
func (rc *RowConverter) ConvertRows(rows [][]any) ([][]any, error) {
	converted := make([][]any, len(rows))
	for i, row := range rows {
		r, err := rc.ConvertRow(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		converted[i] = r
	}
	return converted, nil
}
