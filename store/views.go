package store

import "sync"

// ViewTracker keeps a monotonic version per user per list view. A bump
// tells the presentation layer the list it rendered is stale.
type ViewTracker struct {
	mu       sync.Mutex
	versions map[uint]map[string]uint64
}

func NewViewTracker() *ViewTracker {
	return &ViewTracker{
		versions: make(map[uint]map[string]uint64),
	}
}

func (t *ViewTracker) Bump(userID uint, view string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	user, ok := t.versions[userID]
	if !ok {
		user = make(map[string]uint64)
		t.versions[userID] = user
	}
	user[view]++
}

func (t *ViewTracker) Version(userID uint, view string) uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.versions[userID][view]
}
