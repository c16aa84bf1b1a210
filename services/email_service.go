package services

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"pulse-api/config"
)

// MailSender is the transport behind the email service. The production
// implementation is a gomail dialer.
type MailSender interface {
	DialAndSend(m ...*gomail.Message) error
}

type EmailService struct {
	config *config.Config
	sender MailSender
}

func NewEmailService(cfg *config.Config) *EmailService {
	dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword)
	return &EmailService{
		config: cfg,
		sender: dialer,
	}
}

// NewEmailServiceWithSender swaps the transport, used by tests.
func NewEmailServiceWithSender(cfg *config.Config, sender MailSender) *EmailService {
	return &EmailService{
		config: cfg,
		sender: sender,
	}
}

// SendCommentNotification emails a post owner that someone commented.
func (es *EmailService) SendCommentNotification(to, ownerName, commenterName, commentText, postDescription string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", fmt.Sprintf("%s <%s>", es.config.FromName, es.config.FromEmail))
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("%s commented on your post!", commenterName))

	excerpt := excerpt(postDescription)

	htmlBody := fmt.Sprintf(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
    <h2 style="color: #2196f3;">New comment on your post!</h2>
    <p>Hello <strong>%s</strong>,</p>
    <p><strong>%s</strong> commented on your post:</p>
    <div style="background-color: #f5f5f5; padding: 15px; border-radius: 8px; margin: 20px 0;">
        <p style="margin: 0; font-style: italic;">"%s"</p>
    </div>
    <p><strong>Comment:</strong></p>
    <div style="background-color: #e3f2fd; padding: 15px; border-radius: 8px; margin: 20px 0;">
        <p style="margin: 0;">"%s"</p>
    </div>
    <p>Visit the platform to reply!</p>
    <hr style="margin: 30px 0;">
    <p style="color: #666; font-size: 12px;">This is an automated notification. Please do not reply to this email.</p>
</div>`, ownerName, commenterName, excerpt, commentText)

	textBody := fmt.Sprintf(`Hello %s,

%s commented on your post:

"%s"

Comment: "%s"

Visit the platform to reply!

This is an automated notification. Please do not reply to this email.
`, ownerName, commenterName, excerpt, commentText)

	m.SetBody("text/plain", textBody)
	m.AddAlternative("text/html", htmlBody)

	if err := es.sender.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send comment notification: %w", err)
	}
	return nil
}

// SendLikeNotification emails a post owner that someone liked their post.
func (es *EmailService) SendLikeNotification(to, ownerName, likerName, postDescription string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", fmt.Sprintf("%s <%s>", es.config.FromName, es.config.FromEmail))
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("%s liked your post!", likerName))

	excerpt := excerpt(postDescription)

	htmlBody := fmt.Sprintf(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
    <h2 style="color: #e91e63;">New like on your post!</h2>
    <p>Hello <strong>%s</strong>,</p>
    <p><strong>%s</strong> liked your post:</p>
    <div style="background-color: #f5f5f5; padding: 15px; border-radius: 8px; margin: 20px 0;">
        <p style="margin: 0; font-style: italic;">"%s"</p>
    </div>
    <p>Visit the platform for more details!</p>
    <hr style="margin: 30px 0;">
    <p style="color: #666; font-size: 12px;">This is an automated notification. Please do not reply to this email.</p>
</div>`, ownerName, likerName, excerpt)

	textBody := fmt.Sprintf(`Hello %s,

%s liked your post:

"%s"

Visit the platform for more details!

This is an automated notification. Please do not reply to this email.
`, ownerName, likerName, excerpt)

	m.SetBody("text/plain", textBody)
	m.AddAlternative("text/html", htmlBody)

	if err := es.sender.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send like notification: %w", err)
	}
	return nil
}

func excerpt(description string) string {
	if len(description) > 100 {
		return description[:100] + "..."
	}
	return description
}
