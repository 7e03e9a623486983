package rally

import (
	"context"
	"slices"
	"testing"

	"github.com/kailas-cloud/nestedbench/internal/domain/query"
)

type stubSource struct{ id string }

func (s *stubSource) Partition(_, _ int) ParamSource { return s }
func (s *stubSource) Size() int                      { return 1 }
func (s *stubSource) Params() (query.Request, error) { return query.Request{}, nil }

func factoryFor(id string) ParamSourceFactory {
	return func(_ *Track, _ Params) (ParamSource, error) { return &stubSource{id: id}, nil }
}

func TestRegistry_RegisterAndLookup(t *testing.T) {
	r := NewRegistry(MetaData{}, nil)
	r.RegisterParamSource("b-source", factoryFor("b"))
	r.RegisterParamSource("a-source", factoryFor("a"))
	r.RegisterRunner("refresh", func(_ context.Context, _ Client, _ Params) error { return nil })

	if got := r.ParamSourceNames(); !slices.Equal(got, []string{"a-source", "b-source"}) {
		t.Errorf("ParamSourceNames() = %v", got)
	}
	if got := r.RunnerNames(); !slices.Equal(got, []string{"refresh"}) {
		t.Errorf("RunnerNames() = %v", got)
	}
	if _, ok := r.Runner("refresh"); !ok {
		t.Error("refresh runner not found")
	}
	if _, ok := r.ParamSource("missing"); ok {
		t.Error("unexpected lookup hit for missing source")
	}
}

func TestRegistry_ReplaceOnDuplicate(t *testing.T) {
	r := NewRegistry(MetaData{}, nil)
	r.RegisterParamSource("s", factoryFor("first"))
	r.RegisterParamSource("s", factoryFor("second"))

	f, ok := r.ParamSource("s")
	if !ok {
		t.Fatal("source not found")
	}
	src, _ := f(&Track{}, Params{})
	if id := src.(*stubSource).id; id != "second" {
		t.Errorf("got source %q, want second", id)
	}
	if n := len(r.ParamSourceNames()); n != 1 {
		t.Errorf("len(names) = %d", n)
	}
}

func TestRegistry_MetaData(t *testing.T) {
	v := Version{Major: 1, Minor: 2, Patch: 3}
	r := NewRegistry(MetaData{RallyVersion: &v}, nil)
	if got := r.MetaData().RallyVersion; got == nil || *got != v {
		t.Errorf("RallyVersion = %v", got)
	}
	if NewRegistry(MetaData{}, nil).MetaData().RallyVersion != nil {
		t.Error("expected nil RallyVersion")
	}
}
