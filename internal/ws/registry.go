package ws

import "sync"

// Registry maps a user id to that user's single live connection. It is the
// only shared mutable state of the live-delivery core, so every connection
// lifecycle and every HTTP handler may hit it concurrently. Operations are
// plain in-memory map accesses under a RWMutex; no network write ever
// happens while the lock is held.
type Registry struct {
	mu    sync.RWMutex
	conns map[string]*Client
}

func NewRegistry() *Registry {
	return &Registry{conns: make(map[string]*Client)}
}

// Register installs c as the current connection for userID. A user holds at
// most one slot: if a connection is already registered it is replaced and
// returned so the caller can dispose of it.
func (r *Registry) Register(userID string, c *Client) *Client {
	r.mu.Lock()
	prev := r.conns[userID]
	r.conns[userID] = c
	r.mu.Unlock()

	if prev == c {
		return nil
	}
	return prev
}

// Remove deletes the mapping for userID. Removing an unknown user is a no-op.
func (r *Registry) Remove(userID string) {
	r.mu.Lock()
	delete(r.conns, userID)
	r.mu.Unlock()
}

// detach deletes the mapping for c's user only if it still points at c, and
// reports whether it did. A connection that was superseded by a newer one
// must not evict its replacement during teardown.
func (r *Registry) detach(c *Client) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if cur, ok := r.conns[c.userID]; ok && cur == c {
		delete(r.conns, c.userID)
		return true
	}
	return false
}

// Lookup returns the current connection for userID, if any.
func (r *Registry) Lookup(userID string) (*Client, bool) {
	r.mu.RLock()
	c, ok := r.conns[userID]
	r.mu.RUnlock()
	return c, ok
}

// Snapshot returns the currently registered connections. Fan-out senders
// iterate the snapshot so writes happen outside the registry lock.
func (r *Registry) Snapshot() []*Client {
	r.mu.RLock()
	defer r.mu.RUnlock()

	clients := make([]*Client, 0, len(r.conns))
	for _, c := range r.conns {
		clients = append(clients, c)
	}
	return clients
}

// Count returns the number of registered connections.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.conns)
}
