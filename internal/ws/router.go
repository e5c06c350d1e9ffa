package ws

import "time"

// route interprets one inbound frame from c's user and re-dispatches it to
// the addressed recipient. Malformed frames, unknown kinds, and frames with
// missing required fields are dropped without a reply; the connection stays
// open. The sender never gets an acknowledgment either way: reliability for
// chat content comes from the durable HTTP path, not this channel.
func (h *Hub) route(c *Client, data []byte) {
	ev, err := Decode(data)
	if err != nil {
		h.logger.Debug("dropping malformed frame", "from", c.userID, "error", err)
		return
	}

	switch ev.Kind {
	case KindTyping:
		if ev.To == "" || ev.MatchID == "" {
			return
		}
		h.sendTo(ev.To, Event{
			Kind:    KindTyping,
			From:    c.userID,
			MatchID: ev.MatchID,
		})

	case KindChat:
		if ev.To == "" || ev.Text == "" || ev.MatchID == "" {
			return
		}
		// The timestamp is stamped server side at dispatch so clients
		// cannot spoof it and clock skew stays out of the picture.
		h.sendTo(ev.To, Event{
			Kind:      KindChat,
			From:      c.userID,
			Text:      ev.Text,
			MatchID:   ev.MatchID,
			CreatedAt: time.Now().UTC().Format(time.RFC3339),
		})

	default:
		h.logger.Debug("dropping frame with unhandled kind", "from", c.userID, "kind", ev.Kind)
	}
}
