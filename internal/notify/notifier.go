package notify

import (
	"sort"
	"sync"
	"time"
)

type Level string

const (
	LevelSuccess Level = "success"
	LevelWarning Level = "warning"
	LevelInfo    Level = "info"
)

// Message is a transient user-facing signal. Key scopes deduplication: two
// messages for the same owner with the same key replace each other instead of
// stacking (the cart keys stock warnings by product id).
type Message struct {
	Key   string    `json:"key"`
	Level Level     `json:"level"`
	Text  string    `json:"text"`
	At    time.Time `json:"at"`
}

// Notifier receives signals raised by state transitions. Dispatch is kept
// apart from the transitions themselves so the transition logic stays pure
// and testable without a UI harness.
type Notifier interface {
	Notify(owner string, m Message)
}

// Discard drops every message. Useful in tests and for the event consumer.
type Discard struct{}

func (Discard) Notify(string, Message) {}

// Transient holds undelivered messages in memory until they are drained or
// expire. At most one live message per (owner, key).
type Transient struct {
	ttl time.Duration

	mu   sync.Mutex
	msgs map[string]map[string]Message
}

func NewTransient(ttl time.Duration) *Transient {
	return &Transient{
		ttl:  ttl,
		msgs: make(map[string]map[string]Message),
	}
}

func (t *Transient) Notify(owner string, m Message) {
	if m.At.IsZero() {
		m.At = time.Now()
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	byKey, ok := t.msgs[owner]
	if !ok {
		byKey = make(map[string]Message)
		t.msgs[owner] = byKey
	}
	byKey[m.Key] = m
}

// Drain returns the owner's live messages in chronological order and removes
// them. Expired messages are dropped silently.
func (t *Transient) Drain(owner string, now time.Time) []Message {
	t.mu.Lock()
	defer t.mu.Unlock()

	byKey, ok := t.msgs[owner]
	if !ok {
		return nil
	}
	delete(t.msgs, owner)

	out := make([]Message, 0, len(byKey))
	for _, m := range byKey {
		if now.Sub(m.At) > t.ttl {
			continue
		}
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].At.Before(out[j].At) })
	return out
}
