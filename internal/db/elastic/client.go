// Package elastic implements db.Store over the olivere Elasticsearch client.
package elastic

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/olivere/elastic/v7"
	"go.uber.org/zap"

	"github.com/kailas-cloud/nestedbench/internal/db"
)

// Compile-time check: Store implements db.Store.
var _ db.Store = (*Store)(nil)

// allIndices names a cluster-wide refresh.
const allIndices = "_all"

// Config holds connection parameters for an Elasticsearch cluster.
type Config struct {
	URLs     []string
	Username string
	Password string
	// Sniff discovers the remaining cluster nodes; off for single-node and proxied setups.
	Sniff      bool
	HTTPClient *http.Client
	Logger     *zap.Logger
}

// Store implements db.Store via olivere/elastic.
type Store struct {
	client *elastic.Client
	url    string
	logger *zap.Logger
}

// NewStore creates a client. No request is made until the first call.
func NewStore(cfg Config) (*Store, error) {
	if len(cfg.URLs) == 0 {
		return nil, db.ErrNoURLs
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	opts := []elastic.ClientOptionFunc{
		elastic.SetURL(cfg.URLs...),
		elastic.SetSniff(cfg.Sniff),
		elastic.SetHealthcheck(false),
	}
	if cfg.Username != "" {
		opts = append(opts, elastic.SetBasicAuth(cfg.Username, cfg.Password))
	}
	if cfg.HTTPClient != nil {
		opts = append(opts, elastic.SetHttpClient(cfg.HTTPClient))
	}

	client, err := elastic.NewClient(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}
	return &Store{client: client, url: cfg.URLs[0], logger: logger}, nil
}

// Ping checks connectivity against the first configured URL.
func (s *Store) Ping(ctx context.Context) error {
	_, code, err := s.client.Ping(s.url).Do(ctx)
	if err != nil {
		return &db.Error{Op: db.OpPing, Err: err}
	}
	if code >= http.StatusBadRequest {
		return &db.Error{Op: db.OpPing, Err: fmt.Errorf("status %d", code)}
	}
	return nil
}

// Refresh refreshes index; "" and "_all" refresh every index.
func (s *Store) Refresh(ctx context.Context, index string) error {
	var indices []string
	if index != "" && index != allIndices {
		indices = []string{index}
	}

	res, err := s.client.Refresh(indices...).Do(ctx)
	if err != nil {
		return &db.Error{Op: db.OpRefresh, Err: err}
	}
	if res.Shards != nil && res.Shards.Failed > 0 {
		s.logger.Warn("Refresh completed with shard failures",
			zap.String("index", index),
			zap.Int("total", res.Shards.Total),
			zap.Int("failed", res.Shards.Failed),
		)
	}
	return nil
}

// Close stops background goroutines of the client.
func (s *Store) Close() {
	s.client.Stop()
}

// WaitForReady polls Ping until the cluster responds or timeout expires.
func (s *Store) WaitForReady(ctx context.Context, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return fmt.Errorf("timeout waiting for cluster: %w", ctx.Err())
		case <-ticker.C:
			if err := s.Ping(ctx); err == nil {
				return nil
			}
		}
	}
}
