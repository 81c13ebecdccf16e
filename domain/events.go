package domain

import "time"

// SessionEventType identifies a session lifecycle transition.
type SessionEventType string

const (
	// SessionEstablished fires after a successful credential exchange has
	// installed a token and profile.
	SessionEstablished SessionEventType = "SESSION_ESTABLISHED"
	// SessionCleared fires after the session is removed, whether by explicit
	// logout or by a 401 on any authenticated request. Clearing an already
	// empty session does not fire.
	SessionCleared SessionEventType = "SESSION_CLEARED"
)

// SessionEvent is published to registered observers on session transitions.
// The navigation layer uses these to route between the authenticated and
// unauthenticated flows.
type SessionEvent struct {
	Type      SessionEventType
	Teacher   *Teacher
	Timestamp time.Time
}

// SessionListener receives session lifecycle events. Listeners are invoked
// synchronously on the mutating goroutine and must not call back into the
// store's mutation methods.
type SessionListener func(SessionEvent)

// NewSessionEvent builds an event stamped with the current time.
func NewSessionEvent(eventType SessionEventType, teacher *Teacher) SessionEvent {
	return SessionEvent{
		Type:      eventType,
		Teacher:   teacher,
		Timestamp: time.Now().UTC(),
	}
}
