package dataset

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"crossdash/internal/crossfilter"
)

// Loader produces a named table. Invoked at most once per name; the
// manager caches the result for the session.
type Loader func(ctx context.Context) (Table, error)

// Manager is the registry of named datasets. Registration happens at
// startup; loading is lazy.
type Manager struct {
	mu      sync.Mutex
	loaders map[string]Loader
	cache   map[string]Table
}

func NewManager() *Manager {
	return &Manager{
		loaders: make(map[string]Loader),
		cache:   make(map[string]Table),
	}
}

// Register adds a loader under name. Registering a name twice is a
// configuration error.
func (m *Manager) Register(name string, load Loader) error {
	if name == "" {
		return &crossfilter.ConfigurationError{Msg: "empty dataset name"}
	}
	if load == nil {
		return &crossfilter.ConfigurationError{Msg: fmt.Sprintf("dataset %q has nil loader", name)}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.loaders[name]; ok {
		return &crossfilter.ConfigurationError{Msg: fmt.Sprintf("dataset %q registered twice", name)}
	}
	m.loaders[name] = load
	return nil
}

// Load returns the table for name, loading it on first use.
func (m *Manager) Load(ctx context.Context, name string) (Table, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if t, ok := m.cache[name]; ok {
		return t, nil
	}
	load, ok := m.loaders[name]
	if !ok {
		msg := fmt.Sprintf("unknown dataset %q", name)
		if names := m.names(); len(names) > 0 {
			msg = fmt.Sprintf("unknown dataset %q, registered: %s", name, strings.Join(names, ", "))
		}
		return nil, &crossfilter.ConfigurationError{Msg: msg}
	}
	t, err := load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load dataset %q: %w", name, err)
	}
	m.cache[name] = t
	return t, nil
}

// names returns the registered dataset names, sorted. Caller holds mu.
func (m *Manager) names() []string {
	out := make([]string, 0, len(m.loaders))
	for n := range m.loaders {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
