// Package views tracks which rendered views have been made stale by a
// mutation. Signaling is fire-and-forget and ordering-insensitive:
// repeated signals for the same view collapse into one.
package views

import (
	"sync"

	"go.uber.org/zap"
)

// Well-known view paths signaled by the pipelines.
const (
	Dashboard              = "/dashboard"
	DashboardContacts      = "/dashboard/contacts"
	DashboardInquiries     = "/dashboard/inquiries"
	DashboardRegistrations = "/dashboard/registrations"
	DashboardUsers         = "/dashboard/users"
	Plots                  = "/plots"
)

// Tracker records stale view paths. Consumers drain the set when they
// rebuild their caches.
type Tracker struct {
	log *zap.Logger

	mu    sync.Mutex
	stale map[string]struct{}
}

// NewTracker returns a Tracker logging each signal through log.
func NewTracker(log *zap.Logger) *Tracker {
	return &Tracker{log: log, stale: make(map[string]struct{})}
}

// Invalidate marks the given view paths stale. Safe for concurrent use;
// marking an already-stale path is a no-op.
func (t *Tracker) Invalidate(paths ...string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, p := range paths {
		if _, ok := t.stale[p]; !ok {
			t.stale[p] = struct{}{}
			t.log.Debug("view invalidated", zap.String("path", p))
		}
	}
}

// Drain returns the stale paths recorded since the last call and resets
// the set.
func (t *Tracker) Drain() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	paths := make([]string, 0, len(t.stale))
	for p := range t.stale {
		paths = append(paths, p)
	}
	t.stale = make(map[string]struct{})
	return paths
}
