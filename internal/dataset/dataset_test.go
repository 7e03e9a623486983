package dataset

import (
	"errors"
	"io/fs"
	"math/rand/v2"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestLoadCSV_PreservesOrder(t *testing.T) {
	ds, err := LoadCSV(strings.NewReader("java,2015-01-01\npython,2016-02-02\ngo,2017-03-03\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ds.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", ds.Len())
	}
	if got := ds.Tags(); !slices.Equal(got, []string{"java", "python", "go"}) {
		t.Errorf("Tags() = %v", got)
	}
	if got := ds.Dates(); !slices.Equal(got, []string{"2015-01-01", "2016-02-02", "2017-03-03"}) {
		t.Errorf("Dates() = %v", got)
	}
}

func TestLoadCSV_QuotedFields(t *testing.T) {
	ds, err := LoadCSV(strings.NewReader(`"c,sharp",2015-01-01` + "\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := ds.Tags()[0]; got != "c,sharp" {
		t.Errorf("tag = %q", got)
	}
}

func TestLoadCSV_Empty(t *testing.T) {
	ds, err := LoadCSV(strings.NewReader(""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ds.Len() != 0 || len(ds.Dates()) != 0 {
		t.Errorf("expected empty dataset, got %d rows", ds.Len())
	}
}

func TestLoadCSV_MalformedRows(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantLine int
	}{
		{"missing date", "java,2015-01-01\npython\n", 2},
		{"extra column", "java,2015-01-01,x\n", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadCSV(strings.NewReader(tt.input))
			if !errors.Is(err, ErrMalformedRow) {
				t.Fatalf("expected ErrMalformedRow, got %v", err)
			}
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("expected *ParseError, got %T", err)
			}
			if pe.Line != tt.wantLine {
				t.Errorf("Line = %d, want %d", pe.Line, tt.wantLine)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.csv"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected fs.ErrNotExist, got %v", err)
	}
}

func TestLoad_CSVFile(t *testing.T) {
	path := writeFile(t, FileName, "a,2020-01-01\nb,2020-02-01\n")
	ds, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ds.Len() != 2 {
		t.Errorf("Len() = %d", ds.Len())
	}
}

func TestParquet_RoundTrip(t *testing.T) {
	src, err := New([]string{"a", "b", "c"}, []string{"d1", "d2", "d3"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	path := filepath.Join(t.TempDir(), "queries.parquet")
	if err := WriteParquet(path, src); err != nil {
		t.Fatalf("WriteParquet: %v", err)
	}

	ds, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !slices.Equal(ds.Tags(), src.Tags()) || !slices.Equal(ds.Dates(), src.Dates()) {
		t.Errorf("got tags=%v dates=%v", ds.Tags(), ds.Dates())
	}
}

func TestNew_LengthMismatch(t *testing.T) {
	if _, err := New([]string{"a"}, nil); err == nil {
		t.Fatal("expected error")
	}
}

func TestRandom_Empty(t *testing.T) {
	ds, _ := New(nil, nil)
	rng := rand.New(rand.NewPCG(4, 4))
	if _, err := ds.RandomTag(rng); !errors.Is(err, ErrEmpty) {
		t.Errorf("RandomTag: expected ErrEmpty, got %v", err)
	}
	if _, err := ds.RandomDate(rng); !errors.Is(err, ErrEmpty) {
		t.Errorf("RandomDate: expected ErrEmpty, got %v", err)
	}
}

func TestRandom_Deterministic(t *testing.T) {
	ds, _ := New([]string{"a", "b"}, []string{"2020-01-01", "2020-02-01"})

	draw := func() []string {
		rng := rand.New(rand.NewPCG(4, 4))
		var out []string
		for range 20 {
			tag, err := ds.RandomTag(rng)
			if err != nil {
				t.Fatalf("RandomTag: %v", err)
			}
			date, err := ds.RandomDate(rng)
			if err != nil {
				t.Fatalf("RandomDate: %v", err)
			}
			out = append(out, tag, date)
		}
		return out
	}

	first, second := draw(), draw()
	if !slices.Equal(first, second) {
		t.Errorf("draws differ across runs:\n%v\n%v", first, second)
	}
	for i, v := range first {
		pool := ds.Tags()
		if i%2 == 1 {
			pool = ds.Dates()
		}
		if !slices.Contains(pool, v) {
			t.Errorf("draw %d = %q not in dataset", i, v)
		}
	}
}

func TestTags_ReturnsCopy(t *testing.T) {
	ds, _ := New([]string{"a"}, []string{"d"})
	tags := ds.Tags()
	tags[0] = "mutated"
	if ds.Tags()[0] != "a" {
		t.Error("dataset mutated through Tags()")
	}
}

func TestDefaultPath(t *testing.T) {
	p := DefaultPath()
	if filepath.Base(p) != FileName || filepath.Base(filepath.Dir(p)) != "data" {
		t.Errorf("DefaultPath() = %q", p)
	}
	if _, err := os.Stat(p); err != nil {
		t.Errorf("bundled dataset missing: %v", err)
	}
}
