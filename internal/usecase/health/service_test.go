package health

import (
	"context"
	"errors"
	"slices"
	"testing"
)

// --- Mocks ---

type mockPinger struct {
	err error
}

func (m *mockPinger) Ping(_ context.Context) error { return m.err }

type mockSource struct {
	err error
}

func (m *mockSource) CheckSource(_ context.Context) error { return m.err }

// --- Tests ---

func TestCheck_AllHealthy(t *testing.T) {
	svc := New(&mockPinger{}, map[string]SourceChecker{"term-query-source": &mockSource{}})
	r := svc.Check(context.Background())

	if r.Status != Healthy {
		t.Errorf("expected %q, got %q", Healthy, r.Status)
	}
	if r.Checks["cluster"] != CheckOK {
		t.Errorf("expected cluster %q, got %q", CheckOK, r.Checks["cluster"])
	}
	if r.Checks["source:term-query-source"] != CheckOK {
		t.Errorf("expected source %q, got %q", CheckOK, r.Checks["source:term-query-source"])
	}
	if len(r.Errors) != 0 {
		t.Errorf("unexpected errors: %v", r.Errors)
	}
}

func TestCheck_ClusterDown(t *testing.T) {
	down := errors.New("conn refused")
	svc := New(&mockPinger{err: down}, map[string]SourceChecker{"s": &mockSource{}})
	r := svc.Check(context.Background())

	if r.Status != Degraded {
		t.Errorf("expected %q, got %q", Degraded, r.Status)
	}
	if r.Checks["cluster"] != CheckError {
		t.Errorf("expected cluster %q, got %q", CheckError, r.Checks["cluster"])
	}
	if !errors.Is(r.Errors["cluster"], down) {
		t.Errorf("cluster error = %v", r.Errors["cluster"])
	}
	if r.Checks["source:s"] != CheckOK {
		t.Errorf("expected source %q, got %q", CheckOK, r.Checks["source:s"])
	}
}

func TestCheck_SourceError(t *testing.T) {
	svc := New(&mockPinger{}, map[string]SourceChecker{
		"a": &mockSource{},
		"b": &mockSource{err: errors.New("empty")},
	})
	r := svc.Check(context.Background())

	if r.Status != Degraded {
		t.Errorf("expected %q, got %q", Degraded, r.Status)
	}
	if r.Checks["source:b"] != CheckError {
		t.Error("expected source:b error")
	}
	if r.Checks["source:a"] != CheckOK {
		t.Error("expected source:a ok")
	}
}

func TestCheck_NoCluster(t *testing.T) {
	svc := New(nil, map[string]SourceChecker{"s": &mockSource{}})
	r := svc.Check(context.Background())

	if r.Status != Healthy {
		t.Errorf("expected %q, got %q", Healthy, r.Status)
	}
	if _, ok := r.Checks["cluster"]; ok {
		t.Error("cluster check should be absent when cluster is nil")
	}
}

func TestReport_Names(t *testing.T) {
	svc := New(&mockPinger{}, map[string]SourceChecker{"z": &mockSource{}, "a": &mockSource{}})
	got := svc.Check(context.Background()).Names()
	want := []string{"cluster", "source:a", "source:z"}
	if !slices.Equal(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
}
