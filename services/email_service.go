package services

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"

	"github.com/triplogue/triplogue-backend/config"
	"github.com/triplogue/triplogue-backend/logger"
	"github.com/triplogue/triplogue-backend/types"
)

// EmailService sends trip invitation emails through Resend. All sends are
// best-effort; callers log and continue on failure.
type EmailService struct {
	client      *resend.Client
	fromAddress string
	fromName    string
	frontendURL string
}

// NewEmailService returns nil when no API key is configured, which disables
// invitation emails entirely.
func NewEmailService(cfg *config.EmailConfig, frontendURL string) *EmailService {
	if cfg.ResendAPIKey == "" {
		logger.GetLogger().Info("No Resend API key configured, invitation emails disabled")
		return nil
	}
	return &EmailService{
		client:      resend.NewClient(cfg.ResendAPIKey),
		fromAddress: cfg.FromAddress,
		fromName:    cfg.FromName,
		frontendURL: frontendURL,
	}
}

// SendInvitation emails the invitee that they were added to a trip.
func (s *EmailService) SendInvitation(ctx context.Context, toEmail string, trip *types.Trip, inviterName string) error {
	subject := fmt.Sprintf("%s added you to a trip to %s", inviterName, trip.Destination)
	html := fmt.Sprintf(
		`<p>%s added you to their trip to <strong>%s</strong> (%s – %s).</p>
		<p><a href="%s/trips/%d">Open the trip</a> to start planning together.</p>`,
		inviterName, trip.Destination, trip.StartDate, trip.EndDate, s.frontendURL, trip.ID,
	)

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", s.fromName, s.fromAddress),
		To:      []string{toEmail},
		Subject: subject,
		Html:    html,
	}

	_, err := s.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return fmt.Errorf("failed to send invitation email: %w", err)
	}
	return nil
}
