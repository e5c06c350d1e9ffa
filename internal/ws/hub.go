package ws

import (
	"context"
	"log/slog"
)

// User status values announced to peers.
const (
	StatusOnline  = "online"
	StatusOffline = "offline"
)

// PresenceStore mirrors a user's online state into shared storage (Redis)
// so HTTP handlers can answer "who is online" without touching the hub.
// Mirroring is best effort; failures are logged, never propagated.
type PresenceStore interface {
	SetUserOnline(ctx context.Context, userID string) error
	SetUserOffline(ctx context.Context, userID string) error
}

// Hub owns the connection registry and exposes the two narrow APIs the rest
// of the application uses to reach connected users: Notify for a single
// recipient and Announce for presence fan-out. One Hub is created at server
// start and injected into every component that pushes events.
type Hub struct {
	registry *Registry
	presence PresenceStore
	logger   *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc
}

// NewHub creates a hub with an empty registry. presence may be nil.
func NewHub(presence PresenceStore, logger *slog.Logger) *Hub {
	if logger == nil {
		logger = slog.Default()
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Hub{
		registry: NewRegistry(),
		presence: presence,
		logger:   logger,
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Stop releases the hub's context at server shutdown.
func (h *Hub) Stop() {
	h.cancel()
}

// Registry exposes the connection registry for read-side consumers.
func (h *Hub) Registry() *Registry {
	return h.registry
}

// Attach installs c as its user's current connection and announces the
// transition to online. If the user already had a connection the old one is
// superseded and actively closed; its pumps exit instead of lingering until
// the idle timeout.
func (h *Hub) Attach(c *Client) {
	if prev := h.registry.Register(c.userID, c); prev != nil {
		prev.close()
		h.logger.Info("superseded previous connection", "userID", c.userID)
	}

	if h.presence != nil {
		if err := h.presence.SetUserOnline(h.ctx, c.userID); err != nil {
			h.logger.Error("failed to mirror online state", "userID", c.userID, "error", err)
		}
	}

	h.logger.Info("user connected", "userID", c.userID, "connections", h.registry.Count())
	h.Announce(c.userID, StatusOnline)
}

// Detach removes c from the registry and announces offline. It is safe to
// call from every teardown path; only the call that actually removes the
// registry entry announces, so concurrent peer-close and error-close races
// produce exactly one offline transition. A superseded connection no longer
// owns its slot and detaches silently.
func (h *Hub) Detach(c *Client) {
	if !h.registry.detach(c) {
		return
	}

	if h.presence != nil {
		if err := h.presence.SetUserOffline(h.ctx, c.userID); err != nil {
			h.logger.Error("failed to mirror offline state", "userID", c.userID, "error", err)
		}
	}

	h.logger.Info("user disconnected", "userID", c.userID, "connections", h.registry.Count())
	h.Announce(c.userID, StatusOffline)
}

// Announce writes a status envelope to every registered connection,
// including the subject's own if still present. Delivery is per recipient:
// a dead or slow peer drops its copy without affecting the rest.
func (h *Hub) Announce(userID, status string) {
	frame, err := Encode(Event{Kind: KindStatus, UserID: userID, Status: status})
	if err != nil {
		h.logger.Error("failed to encode status event", "userID", userID, "error", err)
		return
	}

	for _, c := range h.registry.Snapshot() {
		if !c.enqueue(frame) {
			h.logger.Debug("dropped status frame", "to", c.userID)
		}
	}
}

// Notify pushes one notification to one user. Business handlers call this
// after the corresponding state change is durably stored; an offline
// recipient is normal operation, not an error, so the caller's transaction
// never learns whether live delivery happened.
func (h *Hub) Notify(userID string, n Notification) {
	c, ok := h.registry.Lookup(userID)
	if !ok {
		return
	}

	frame, err := Encode(Event{Kind: KindNotification, Notification: &n})
	if err != nil {
		h.logger.Error("failed to encode notification", "userID", userID, "error", err)
		return
	}

	if !c.enqueue(frame) {
		h.logger.Debug("dropped notification", "to", userID)
	}
}

// sendTo relays an envelope to a single user if connected, silently
// no-opping otherwise.
func (h *Hub) sendTo(userID string, ev Event) {
	c, ok := h.registry.Lookup(userID)
	if !ok {
		return
	}

	frame, err := Encode(ev)
	if err != nil {
		h.logger.Error("failed to encode event", "kind", ev.Kind, "error", err)
		return
	}

	if !c.enqueue(frame) {
		h.logger.Debug("dropped frame", "kind", ev.Kind, "to", userID)
	}
}
