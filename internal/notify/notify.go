// Package notify dispatches advisory desktop notifications.
package notify

import "github.com/gen2brain/beeep"

// Notifier delivers a desktop notification. Delivery is advisory only; it
// must never block or fail the session.
type Notifier interface {
	Notify(title, message string)
}

// Desktop sends notifications through the OS notification facility.
// Failures (no daemon, no facility) are swallowed.
type Desktop struct{}

func (Desktop) Notify(title, message string) {
	_ = beeep.Notify(title, message, "")
}

// Nop drops all notifications.
type Nop struct{}

func (Nop) Notify(string, string) {}
