package rally

import (
	"maps"
	"slices"
	"sync"

	"go.uber.org/zap"
)

// InMemoryRegistry is a Registry backed by maps. Safe for concurrent use.
type InMemoryRegistry struct {
	mu      sync.RWMutex
	meta    MetaData
	sources map[string]ParamSourceFactory
	runners map[string]Runner
	logger  *zap.Logger
}

// NewRegistry creates an empty registry reporting meta. logger can be nil.
func NewRegistry(meta MetaData, logger *zap.Logger) *InMemoryRegistry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InMemoryRegistry{
		meta:    meta,
		sources: make(map[string]ParamSourceFactory),
		runners: make(map[string]Runner),
		logger:  logger,
	}
}

// RegisterParamSource stores factory under name, replacing any earlier entry.
func (r *InMemoryRegistry) RegisterParamSource(name string, factory ParamSourceFactory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sources[name]; ok {
		r.logger.Warn("Param source re-registered", zap.String("name", name))
	}
	r.sources[name] = factory
}

// RegisterRunner stores runner under name, replacing any earlier entry.
func (r *InMemoryRegistry) RegisterRunner(name string, runner Runner) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.runners[name]; ok {
		r.logger.Warn("Runner re-registered", zap.String("name", name))
	}
	r.runners[name] = runner
}

// MetaData returns the harness metadata.
func (r *InMemoryRegistry) MetaData() MetaData { return r.meta }

// ParamSource looks up a registered factory.
func (r *InMemoryRegistry) ParamSource(name string) (ParamSourceFactory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.sources[name]
	return f, ok
}

// Runner looks up a registered runner.
func (r *InMemoryRegistry) Runner(name string) (Runner, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	run, ok := r.runners[name]
	return run, ok
}

// ParamSourceNames returns registered param source names, sorted.
func (r *InMemoryRegistry) ParamSourceNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.sources))
}

// RunnerNames returns registered runner names, sorted.
func (r *InMemoryRegistry) RunnerNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.runners))
}

