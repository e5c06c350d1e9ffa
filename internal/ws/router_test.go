package ws

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouteChatRelaysToRecipient(t *testing.T) {
	hub := NewHub(nil, nil)
	a := newClient("a", nil)
	b := newClient("b", nil)
	hub.Registry().Register("a", a)
	hub.Registry().Register("b", b)

	before := time.Now().UTC().Truncate(time.Second)
	hub.route(a, []byte(`{"kind":"chat","to":"b","text":"hello","matchId":"m1"}`))

	evs := drainEvents(t, b)
	require.Len(t, evs, 1)
	ev := evs[0]
	assert.Equal(t, KindChat, ev.Kind)
	assert.Equal(t, "a", ev.From)
	assert.Equal(t, "hello", ev.Text)
	assert.Equal(t, "m1", ev.MatchID)
	assert.Empty(t, ev.To, "recipient address is not echoed back out")

	stamped, err := time.Parse(time.RFC3339, ev.CreatedAt)
	require.NoError(t, err)
	assert.False(t, stamped.Before(before), "timestamp must be stamped at dispatch time")

	// The sender gets no acknowledgment either way
	assert.Empty(t, drainEvents(t, a))
}

func TestRouteTypingRelaysFromAndMatch(t *testing.T) {
	hub := NewHub(nil, nil)
	a := newClient("a", nil)
	b := newClient("b", nil)
	hub.Registry().Register("a", a)
	hub.Registry().Register("b", b)

	hub.route(a, []byte(`{"kind":"typing","to":"b","matchId":"m1"}`))

	evs := drainEvents(t, b)
	require.Len(t, evs, 1)
	assert.Equal(t, Event{Kind: KindTyping, From: "a", MatchID: "m1"}, evs[0])
}

func TestRouteToUnregisteredRecipientIsNoop(t *testing.T) {
	hub := NewHub(nil, nil)
	a := newClient("a", nil)
	hub.Registry().Register("a", a)

	assert.NotPanics(t, func() {
		hub.route(a, []byte(`{"kind":"typing","to":"ghost","matchId":"m1"}`))
		hub.route(a, []byte(`{"kind":"chat","to":"ghost","text":"hi","matchId":"m1"}`))
	})
	assert.Empty(t, drainEvents(t, a))
}

func TestRouteDropsFramesMissingRequiredFields(t *testing.T) {
	hub := NewHub(nil, nil)
	a := newClient("a", nil)
	b := newClient("b", nil)
	hub.Registry().Register("a", a)
	hub.Registry().Register("b", b)

	frames := []string{
		`{"kind":"typing","to":"b"}`,                // no matchId
		`{"kind":"typing","matchId":"m1"}`,          // no to
		`{"kind":"chat","to":"b","matchId":"m1"}`,   // no text
		`{"kind":"chat","to":"b","text":""}`,        // empty text
		`{"kind":"chat","text":"hi","matchId":"m"}`, // no to
	}
	for _, frame := range frames {
		hub.route(a, []byte(frame))
	}

	assert.Empty(t, drainEvents(t, b))
}

func TestRouteDropsMalformedAndUnknownFrames(t *testing.T) {
	hub := NewHub(nil, nil)
	a := newClient("a", nil)
	b := newClient("b", nil)
	hub.Registry().Register("a", a)
	hub.Registry().Register("b", b)

	assert.NotPanics(t, func() {
		hub.route(a, []byte(`{not json`))
		hub.route(a, []byte(`"a plain string"`))
		hub.route(a, []byte(`{"kind":"status","userId":"a","status":"online"}`))
		hub.route(a, []byte(`{"kind":"selfdestruct","to":"b"}`))
	})

	// Clients cannot forge status envelopes or invent kinds
	assert.Empty(t, drainEvents(t, b))
}
