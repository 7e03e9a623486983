package dataset

import (
	"fmt"

	"github.com/parquet-go/parquet-go"
)

// Row is the parquet schema of a dataset file.
type Row struct {
	Tag  string `parquet:"tag"`
	Date string `parquet:"date"`
}

// LoadParquet reads a parquet file with string columns tag and date.
func LoadParquet(path string) (*Dataset, error) {
	rows, err := parquet.ReadFile[Row](path)
	if err != nil {
		return nil, fmt.Errorf("read parquet %s: %w", path, err)
	}

	ds := &Dataset{
		tags:  make([]string, 0, len(rows)),
		dates: make([]string, 0, len(rows)),
	}
	for _, r := range rows {
		ds.tags = append(ds.tags, r.Tag)
		ds.dates = append(ds.dates, r.Date)
	}
	return ds, nil
}

// WriteParquet writes d to path in the format LoadParquet reads.
func WriteParquet(path string, d *Dataset) error {
	rows := make([]Row, d.Len())
	for i := range rows {
		rows[i] = Row{Tag: d.tags[i], Date: d.dates[i]}
	}
	if err := parquet.WriteFile(path, rows); err != nil {
		return fmt.Errorf("write parquet %s: %w", path, err)
	}
	return nil
}
