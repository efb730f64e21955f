package target

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/Arize-ai/phoenix-sub007/internal/config"
	"github.com/Arize-ai/phoenix-sub007/internal/util"
)

// Manager builds and caches clients for the configured targets.
// It handles concurrent health checking and graceful shutdown.
type Manager struct {
	// clients is a map of target name to client
	clients map[string]*Client

	// mu protects concurrent access to the clients map
	// Using RWMutex for read-heavy access patterns
	mu sync.RWMutex

	// cfg is the configuration manager targets are resolved from
	cfg *config.Manager

	// timeout applied to each client's HTTP requests
	timeout time.Duration

	// logger for structured logging
	logger *slog.Logger

	// closed indicates if the manager has been closed
	closed bool
}

// NewManager creates a new target manager
func NewManager(cfg *config.Manager, timeout time.Duration, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}

	return &Manager{
		clients: make(map[string]*Client),
		cfg:     cfg,
		timeout: timeout,
		logger:  logger,
		closed:  false,
	}
}

// Resolve returns a client for the named target, building and caching one
// on first use. An empty name falls back to the configured default target.
func (m *Manager) Resolve(name string) (*Client, error) {
	resolvedName, tc, ok := m.cfg.ResolveTarget(name)
	if !ok {
		if name == "" {
			return nil, fmt.Errorf("%w: no target specified and no default configured", util.ErrTargetNotFound)
		}
		return nil, fmt.Errorf("%w: %q", util.ErrTargetNotFound, name)
	}

	m.mu.RLock()
	if m.closed {
		m.mu.RUnlock()
		return nil, fmt.Errorf("manager is closed")
	}
	if client, cached := m.clients[resolvedName]; cached {
		m.mu.RUnlock()
		return client, nil
	}
	m.mu.RUnlock()

	client, err := NewClient(resolvedName, tc, m.timeout, m.logger)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return nil, fmt.Errorf("manager is closed")
	}
	// Another goroutine may have raced us here; keep the first one stored.
	if existing, cached := m.clients[resolvedName]; cached {
		return existing, nil
	}
	m.clients[resolvedName] = client

	m.logger.Debug("resolved target", "target", resolvedName, "url", client.URL)
	return client, nil
}

// GetClient returns the cached client for a specific target
// Returns an error if the target has not been resolved yet
func (m *Manager) GetClient(name string) (*Client, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, fmt.Errorf("manager is closed")
	}

	client, ok := m.clients[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", util.ErrTargetNotFound, name)
	}

	return client, nil
}

// GetClientNames returns all cached target names
func (m *Manager) GetClientNames() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, 0, len(m.clients))
	for name := range m.clients {
		names = append(names, name)
	}

	return names
}

// HasClient returns true if a client for the target is cached
func (m *Manager) HasClient(name string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.clients[name]
	return ok
}

// Count returns the number of cached clients
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.clients)
}

// PingAll health checks every enabled target concurrently and returns one
// status per target.
func (m *Manager) PingAll(ctx context.Context) []HealthStatus {
	m.logger.Debug("starting health checks")

	names := m.cfg.EnabledTargets()
	if len(names) == 0 {
		m.logger.Warn("no enabled targets to health check")
		return []HealthStatus{}
	}

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		results = make([]HealthStatus, 0, len(names))
	)

	// Semaphore to limit concurrent pings (avoid overwhelming the system)
	sem := make(chan struct{}, 10)

	for _, name := range names {
		wg.Add(1)

		go func(targetName string) {
			defer wg.Done()

			// Acquire semaphore
			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				mu.Lock()
				results = append(results, HealthStatus{TargetName: targetName, Error: ctx.Err()})
				mu.Unlock()
				return
			}

			client, err := m.Resolve(targetName)
			if err != nil {
				m.logger.Error("failed to build target client",
					"target", targetName,
					"error", err)
				mu.Lock()
				results = append(results, HealthStatus{TargetName: targetName, Error: err})
				mu.Unlock()
				return
			}

			m.logger.Debug("pinging target", "target", targetName)

			status := client.Ping(ctx)

			mu.Lock()
			results = append(results, status)
			mu.Unlock()

			if status.Healthy {
				m.logger.Debug("health check passed", "target", targetName)
			} else {
				m.logger.Warn("health check failed",
					"target", targetName,
					"error", status.Error)
			}
		}(name)
	}

	wg.Wait()

	m.logger.Info("health checks completed",
		"total", len(results),
		"healthy", countHealthy(results))

	return results
}

// Close clears the client cache and marks the manager as closed
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		m.logger.Debug("manager already closed")
		return
	}

	m.logger.Info("closing target manager", "clients", len(m.clients))

	// The underlying HTTP clients have no explicit Close; dropping the map
	// lets idle connections be garbage collected.
	m.clients = make(map[string]*Client)
	m.closed = true

	m.logger.Debug("target manager closed")
}

// IsClosed returns true if the manager has been closed
func (m *Manager) IsClosed() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.closed
}

// countHealthy counts the number of healthy targets in the results
func countHealthy(results []HealthStatus) int {
	count := 0
	for _, status := range results {
		if status.Healthy {
			count++
		}
	}
	return count
}
