// Package notify delivers transient user-facing notifications: every
// terminal workflow outcome produces exactly one of these, with a short
// title and a descriptive message.
package notify

import (
	"fmt"
	"io"
	"sync"
)

// Variant is the tone of a notification.
type Variant int

const (
	// Info is the default, informational tone.
	Info Variant = iota
	// Destructive marks failures and negative outcomes.
	Destructive
)

type Notification struct {
	Title   string
	Message string
	Variant Variant
}

// Notifier receives workflow notifications. Implementations must not block
// and must not fail the calling workflow.
type Notifier interface {
	Notify(n Notification)
}

// WriterNotifier prints notifications to a writer, one per line, prefixing
// destructive ones so they stand out in a terminal session.
type WriterNotifier struct {
	mu sync.Mutex
	w  io.Writer
}

func NewWriterNotifier(w io.Writer) *WriterNotifier {
	return &WriterNotifier{w: w}
}

func (n *WriterNotifier) Notify(notification Notification) {
	n.mu.Lock()
	defer n.mu.Unlock()

	prefix := ""
	if notification.Variant == Destructive {
		prefix = "!! "
	}
	fmt.Fprintf(n.w, "%s%s: %s\n", prefix, notification.Title, notification.Message)
}

// Recorder collects notifications for assertions in tests.
type Recorder struct {
	mu            sync.Mutex
	Notifications []Notification
}

func (r *Recorder) Notify(n Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Notifications = append(r.Notifications, n)
}

// Last returns the most recent notification, or false when none were sent.
func (r *Recorder) Last() (Notification, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.Notifications) == 0 {
		return Notification{}, false
	}
	return r.Notifications[len(r.Notifications)-1], true
}

// Count returns the number of notifications received.
func (r *Recorder) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.Notifications)
}
