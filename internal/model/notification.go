package model

import "time"

// NotificationType controls how the consuming UI renders a notification.
type NotificationType string

const (
	// NotifyInfo is a neutral message.
	NotifyInfo NotificationType = "info"
	// NotifySuccess confirms a completed action.
	NotifySuccess NotificationType = "success"
	// NotifyWarning flags something worth attention.
	NotifyWarning NotificationType = "warning"
	// NotifyError reports a failure.
	NotifyError NotificationType = "error"
)

// Notification is a transient UI message. Notifications are never persisted;
// they self-expire after a duration chosen at creation.
type Notification struct {
	Timestamp time.Time        `json:"timestamp"`
	ID        string           `json:"id"`
	Message   string           `json:"message"`
	Type      NotificationType `json:"type"`
}
