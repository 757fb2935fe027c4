// ============================================================================
// Bookstore Patterns - Design pattern demos over a toy bookstore
// ============================================================================
//
// Package:     observer
// Description: Notification service broadcasting to subscribed notifiers
// Author:      Tom7834
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package observer

import (
	"fmt"
	"io"
	"slices"
)

// Observer receives broadcast messages
type Observer interface {
	Update(message string)
}

// EmailNotifier delivers messages by email
type EmailNotifier struct{ Out io.Writer }

// Update implements Observer
func (n *EmailNotifier) Update(message string) { fmt.Fprintf(n.Out, "Email: %s\n", message) }

// SMSNotifier delivers messages by SMS
type SMSNotifier struct{ Out io.Writer }

// Update implements Observer
func (n *SMSNotifier) Update(message string) { fmt.Fprintf(n.Out, "SMS: %s\n", message) }

// PushNotifier delivers push notifications
type PushNotifier struct{ Out io.Writer }

// Update implements Observer
func (n *PushNotifier) Update(message string) { fmt.Fprintf(n.Out, "Push: %s\n", message) }

// NotificationService is the subject observers subscribe to
type NotificationService struct {
	observers []Observer
}

// Subscribe adds o; an observer subscribed twice is notified twice
func (s *NotificationService) Subscribe(o Observer) {
	s.observers = append(s.observers, o)
}

// Unsubscribe removes the first subscription of o; unknown observers are
// ignored
func (s *NotificationService) Unsubscribe(o Observer) {
	if i := slices.Index(s.observers, o); i >= 0 {
		s.observers = slices.Delete(s.observers, i, i+1)
	}
}

// Notify sends message to every observer in subscription order
func (s *NotificationService) Notify(message string) {
	for _, o := range s.observers {
		o.Update(message)
	}
}

// Len returns the number of subscriptions
func (s *NotificationService) Len() int { return len(s.observers) }
