package cart

import (
	"sync"
	"time"
)

// DefaultDismissAfter is how long a transient message stays visible.
const DefaultDismissAfter = 4 * time.Second

type MessageKind string

const (
	MessageInfo    MessageKind = "info"
	MessageSuccess MessageKind = "success"
	MessageError   MessageKind = "error"
)

type Message struct {
	Kind MessageKind `json:"type"`
	Text string      `json:"message"`
}

// Feedback holds one transient status message ("added to cart", checkout
// errors) and auto-dismisses it after a fixed delay. Setting a new message
// resets the timer.
type Feedback struct {
	mu       sync.Mutex
	msg      *Message
	timer    *time.Timer
	after    time.Duration
	onChange func()
}

// NewFeedback creates a feedback slot. A non-positive delay falls back to
// DefaultDismissAfter. onChange may be nil; it fires on set and on
// auto-dismiss.
func NewFeedback(after time.Duration, onChange func()) *Feedback {
	if after <= 0 {
		after = DefaultDismissAfter
	}
	return &Feedback{after: after, onChange: onChange}
}

func (f *Feedback) Set(kind MessageKind, text string) {
	f.mu.Lock()
	f.msg = &Message{Kind: kind, Text: text}
	if f.timer != nil {
		f.timer.Stop()
	}
	f.timer = time.AfterFunc(f.after, f.dismiss)
	f.mu.Unlock()
	f.fire()
}

// Clear drops the current message and cancels the pending dismissal.
func (f *Feedback) Clear() {
	f.mu.Lock()
	cleared := f.msg != nil
	f.msg = nil
	if f.timer != nil {
		f.timer.Stop()
		f.timer = nil
	}
	f.mu.Unlock()
	if cleared {
		f.fire()
	}
}

// Message returns the currently visible message, or nil.
func (f *Feedback) Message() *Message {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.msg
}

func (f *Feedback) dismiss() {
	f.mu.Lock()
	f.msg = nil
	f.timer = nil
	f.mu.Unlock()
	f.fire()
}

func (f *Feedback) fire() {
	if f.onChange != nil {
		f.onChange()
	}
}
