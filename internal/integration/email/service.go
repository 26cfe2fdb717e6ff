// Package email provides email sending functionality.
package email

import (
	"context"
	"fmt"
	"html"

	"github.com/shoplist/backend/internal/application/adapter"
)

// Service builds and sends notification emails.
type Service struct {
	sender adapter.EmailSender
}

// NewService creates a new email service.
func NewService(sender adapter.EmailSender) *Service {
	return &Service{
		sender: sender,
	}
}

// NotifyListShared sends a notification that a list was shared with the grantee.
func (s *Service) NotifyListShared(ctx context.Context, input adapter.ShareNotificationInput) error {
	subject := fmt.Sprintf("%s shared a shopping list with you", input.OwnerUsername)

	text := fmt.Sprintf(
		"Hi %s,\n\n%s shared the shopping list %q with you (%s access).\n\nOpen the app to start shopping together.\n",
		input.GranteeUsername, input.OwnerUsername, input.ListName, input.PermissionLevel,
	)

	htmlBody := fmt.Sprintf(
		"<p>Hi %s,</p><p><strong>%s</strong> shared the shopping list <strong>%s</strong> with you (%s access).</p><p>Open the app to start shopping together.</p>",
		html.EscapeString(input.GranteeUsername),
		html.EscapeString(input.OwnerUsername),
		html.EscapeString(input.ListName),
		html.EscapeString(input.PermissionLevel),
	)

	_, err := s.sender.Send(ctx, adapter.SendEmailInput{
		To:      input.GranteeEmail,
		Subject: subject,
		HTML:    htmlBody,
		Text:    text,
	})
	return err
}

// Ensure Service implements adapter.ShareNotifier.
var _ adapter.ShareNotifier = (*Service)(nil)
