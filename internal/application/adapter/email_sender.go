// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "context"

// SendEmailInput represents an email to be sent.
type SendEmailInput struct {
	To      string
	Subject string
	HTML    string
	Text    string
}

// SendEmailResult represents the result of sending an email.
type SendEmailResult struct {
	ProviderID string
}

// EmailSender defines the interface for sending emails.
type EmailSender interface {
	// Send sends an email.
	Send(ctx context.Context, input SendEmailInput) (*SendEmailResult, error)
}

// ShareNotificationInput carries the data for a list-shared notification.
type ShareNotificationInput struct {
	GranteeEmail    string
	GranteeUsername string
	OwnerUsername   string
	ListName        string
	PermissionLevel string
}

// ShareNotifier notifies a user that a list was shared with them.
// Delivery is best-effort; failures must never fail the share operation.
type ShareNotifier interface {
	NotifyListShared(ctx context.Context, input ShareNotificationInput) error
}
