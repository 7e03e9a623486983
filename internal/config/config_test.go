package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kailas-cloud/nestedbench/internal/paramsource"
	"github.com/kailas-cloud/nestedbench/internal/rally"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadFile_Full(t *testing.T) {
	t.Setenv("NESTEDBENCH_TEST_PASSWORD", "s3cret")
	path := writeConfig(t, `
track:
  name: so-nested
  dir: /tracks/nested
  seed: 0
  harness_version: "0.9.1"
params:
  use_request_cache: true
  inner_hits_size: 100
  size: 100
elasticsearch:
  urls: ["http://localhost:9200"]
  username: elastic
  password: ${NESTEDBENCH_TEST_PASSWORD}
metrics:
  enabled: true
logging:
  level: debug
`)
	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Track.Name != "so-nested" || cfg.Track.Dir != "/tracks/nested" {
		t.Errorf("Track = %+v", cfg.Track)
	}
	if cfg.Track.Seed == nil || *cfg.Track.Seed != 0 {
		t.Errorf("explicit zero seed not preserved: %v", cfg.Track.Seed)
	}
	if cfg.Elasticsearch.Password != "s3cret" {
		t.Errorf("password = %q, want env-expanded value", cfg.Elasticsearch.Password)
	}

	p := rally.Params(cfg.Params)
	if b, err := p.Bool("use_request_cache"); err != nil || !b {
		t.Errorf("use_request_cache = %v, %v", b, err)
	}
	if n, err := p.Int("inner_hits_size"); err != nil || n != 100 {
		t.Errorf("inner_hits_size = %v, %v", n, err)
	}

	meta := cfg.Track.MetaData()
	if meta.RallyVersion == nil || *meta.RallyVersion != (rally.Version{Major: 0, Minor: 9, Patch: 1}) {
		t.Errorf("RallyVersion = %v", meta.RallyVersion)
	}
}

func TestLoadFile_Defaults(t *testing.T) {
	cfg, err := LoadFile(writeConfig(t, "logging:\n  level: info\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Track.Name != "nested" {
		t.Errorf("Track.Name = %q", cfg.Track.Name)
	}
	if cfg.Track.Seed == nil || *cfg.Track.Seed != paramsource.DefaultSeed {
		t.Errorf("Track.Seed = %v", cfg.Track.Seed)
	}
	if cfg.Params == nil {
		t.Error("Params is nil")
	}
	if cfg.Elasticsearch.ReadinessTimeout != 10 {
		t.Errorf("ReadinessTimeout = %d", cfg.Elasticsearch.ReadinessTimeout)
	}
	if cfg.Track.MetaData().RallyVersion != nil {
		t.Error("expected absent version metadata")
	}
}

func TestLoadFile_EnvDefault(t *testing.T) {
	path := writeConfig(t, "elasticsearch:\n  urls: [\"${NESTEDBENCH_UNSET_URL:-http://es:9200}\"]\n")
	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := cfg.Elasticsearch.URLs[0]; got != "http://es:9200" {
		t.Errorf("url = %q", got)
	}
}

func TestLoadFile_Missing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"empty", Config{}, false},
		{"bad harness version", Config{Track: TrackConfig{HarnessVersion: "latest"}}, true},
		{"parquet dataset", Config{Track: TrackConfig{DatasetPath: "q.parquet"}}, false},
		{"json dataset", Config{Track: TrackConfig{DatasetPath: "q.json"}}, true},
		{"url without scheme", Config{Elasticsearch: ElasticsearchConfig{URLs: []string{"localhost:9200"}}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoad_BundledLocal(t *testing.T) {
	cfg, err := Load("local")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := rally.Params(cfg.Params).Bool("use_request_cache"); err != nil {
		t.Errorf("bundled local config lacks use_request_cache: %v", err)
	}
}
