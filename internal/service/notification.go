package service

import (
	"sync"

	"github.com/rs/zerolog"
)

type NotificationKind string

const (
	NotificationSuccess NotificationKind = "success"
	NotificationError   NotificationKind = "error"
)

// Notification is the user-facing toast emitted after every mutating
// operation: what happened, to which entity, and whether it worked.
type Notification struct {
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Kind        NotificationKind `json:"kind"`
}

type Notifier interface {
	Notify(notification Notification)
}

// LogNotifier writes notifications to the structured log. The HTTP layer
// additionally returns them in mutation responses so a client can toast them.
type LogNotifier struct {
	log zerolog.Logger
}

func NewLogNotifier(log zerolog.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

// Buffer retains the most recent notification so the HTTP layer can attach it
// to the mutation response, forwarding everything to the wrapped notifier.
type Buffer struct {
	next Notifier

	mu   sync.Mutex
	last *Notification
}

func NewBuffer(next Notifier) *Buffer {
	return &Buffer{next: next}
}

func (b *Buffer) Notify(notification Notification) {
	if b.next != nil {
		b.next.Notify(notification)
	}
	b.mu.Lock()
	b.last = &notification
	b.mu.Unlock()
}

// Pop removes and returns the last notification, if any.
func (b *Buffer) Pop() (Notification, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.last == nil {
		return Notification{}, false
	}
	notification := *b.last
	b.last = nil
	return notification, true
}

func (n *LogNotifier) Notify(notification Notification) {
	event := n.log.Info()
	if notification.Kind == NotificationError {
		event = n.log.Warn()
	}
	event.
		Str("title", notification.Title).
		Str("description", notification.Description).
		Str("kind", string(notification.Kind)).
		Msg("notification")
}
