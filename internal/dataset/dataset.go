// Package dataset loads the (tag, date) pairs the param sources draw from.
package dataset

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// FileName is the dataset file name expected next to a track.
const FileName = "queries.csv"

var (
	// ErrEmpty signals a draw from a dataset without rows.
	ErrEmpty = errors.New("dataset is empty")
	// ErrMalformedRow signals a row without exactly two columns.
	ErrMalformedRow = errors.New("malformed row")
)

// ParseError reports where a dataset file failed to parse.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string { return fmt.Sprintf("line %d: %v", e.Line, e.Err) }
func (e *ParseError) Unwrap() error { return e.Err }

// Dataset holds two parallel sequences of equal length. Immutable after load.
type Dataset struct {
	tags  []string
	dates []string
}

// New builds a dataset from parallel slices.
func New(tags, dates []string) (*Dataset, error) {
	if len(tags) != len(dates) {
		return nil, fmt.Errorf("tags and dates differ in length: %d != %d", len(tags), len(dates))
	}
	return &Dataset{
		tags:  append([]string(nil), tags...),
		dates: append([]string(nil), dates...),
	}, nil
}

// Len returns the number of rows.
func (d *Dataset) Len() int { return len(d.tags) }

// Tags returns a copy of the tag column.
func (d *Dataset) Tags() []string { return append([]string(nil), d.tags...) }

// Dates returns a copy of the date column.
func (d *Dataset) Dates() []string { return append([]string(nil), d.dates...) }

// RandomTag draws a tag uniformly using rng.
func (d *Dataset) RandomTag(rng *rand.Rand) (string, error) {
	return pick(rng, d.tags)
}

// RandomDate draws a date uniformly using rng.
func (d *Dataset) RandomDate(rng *rand.Rand) (string, error) {
	return pick(rng, d.dates)
}

func pick(rng *rand.Rand, values []string) (string, error) {
	if len(values) == 0 {
		return "", ErrEmpty
	}
	return values[rng.IntN(len(values))], nil
}

// Load reads a dataset file, choosing the format by extension.
func Load(path string) (*Dataset, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".parquet":
		return LoadParquet(path)
	default:
		f, err := os.Open(filepath.Clean(path))
		if err != nil {
			return nil, fmt.Errorf("open dataset: %w", err)
		}
		defer func() { _ = f.Close() }()

		ds, err := LoadCSV(f)
		if err != nil {
			return nil, fmt.Errorf("load dataset %s: %w", path, err)
		}
		return ds, nil
	}
}

// DefaultPath returns data/queries.csv relative to the module root.
func DefaultPath() string {
	_, b, _, _ := runtime.Caller(0)
	projectRoot := filepath.Dir(filepath.Dir(filepath.Dir(b))) // internal/dataset -> project root
	return filepath.Join(projectRoot, "data", FileName)
}
