package email

import (
	"fmt"
	"net/smtp"
	"strconv"

	"github.com/rs/zerolog"
)

// MailingService defines the interface for outbound mail. Delivery is
// fire-and-forget from the caller's perspective.
type MailingService interface {
	SendRegistrationMail(toEmail, userUUID string) error
}

// SMTPConfig holds configuration for the SMTP server
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromName  string
	FromEmail string
	FrontURL  string
}

type smtpMailingService struct {
	config SMTPConfig
	logger zerolog.Logger
}

// NewMailingService creates a new SMTP-backed MailingService
func NewMailingService(config SMTPConfig, logger zerolog.Logger) MailingService {
	return &smtpMailingService{
		config: config,
		logger: logger,
	}
}

// SendRegistrationMail invites an approved member to complete their account.
// Without SMTP credentials the mail is only logged, which keeps local
// development working.
func (s *smtpMailingService) SendRegistrationMail(toEmail, userUUID string) error {
	registerURL := fmt.Sprintf("%s/account/confirm?uuid=%s", s.config.FrontURL, userUUID)

	if s.config.Username == "" || s.config.Password == "" {
		s.logger.Warn().
			Str("toEmail", toEmail).
			Str("registerURL", registerURL).
			Msg("SMTP credentials not configured - registration mail not sent")
		return nil
	}

	subject := "Inscription sur le site web du BDE"
	body := fmt.Sprintf(`
		<html>
		<body>
			<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
				<h2 style="color: #333;">Bienvenue !</h2>
				<p>Votre demande a &eacute;t&eacute; accept&eacute;e. Finalisez votre inscription sur le site du BDE :</p>
				<div style="text-align: center; margin: 30px 0;">
					<a href="%s" style="background-color: #4a86e8; color: white; padding: 12px 24px; text-decoration: none; border-radius: 4px; font-weight: bold;">Finaliser mon inscription</a>
				</div>
				<p>Ou rendez-vous directement sur : %s</p>
			</div>
		</body>
		</html>`, registerURL, registerURL)

	message := fmt.Sprintf("From: %s <%s>\r\n", s.config.FromName, s.config.FromEmail)
	message += fmt.Sprintf("To: %s\r\n", toEmail)
	message += fmt.Sprintf("Subject: %s\r\n", subject)
	message += "MIME-Version: 1.0\r\n"
	message += "Content-Type: text/html; charset=\"UTF-8\"\r\n"
	message += "\r\n" + body

	addr := s.config.Host + ":" + strconv.Itoa(s.config.Port)
	auth := smtp.PlainAuth("", s.config.Username, s.config.Password, s.config.Host)

	if err := smtp.SendMail(addr, auth, s.config.FromEmail, []string{toEmail}, []byte(message)); err != nil {
		return fmt.Errorf("failed to send registration mail: %w", err)
	}

	s.logger.Info().Str("toEmail", toEmail).Msg("Registration mail sent")
	return nil
}
