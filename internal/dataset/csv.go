package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
)

// LoadCSV parses headerless "tag,date" rows, preserving order.
// Rows with a missing or extra column are rejected.
func LoadCSV(r io.Reader) (*Dataset, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // column count is checked per row below

	ds := &Dataset{}
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse csv: %w", err)
		}
		if len(record) != 2 {
			line, _ := cr.FieldPos(0)
			return nil, &ParseError{
				Line: line,
				Err:  fmt.Errorf("%w: want 2 columns, got %d", ErrMalformedRow, len(record)),
			}
		}
		ds.tags = append(ds.tags, record[0])
		ds.dates = append(ds.dates, record[1])
	}
	return ds, nil
}
