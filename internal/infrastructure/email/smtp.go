// Package email sends transactional mail over SMTP.
package email

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
}

type SMTPEmailService struct {
	config SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTPEmailService(config SMTPConfig) *SMTPEmailService {
	dialer := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)

	return &SMTPEmailService{
		config: config,
		dialer: dialer,
	}
}

// SendSolutionReviewedEmail tells a solution author their submission verdict.
func (s *SMTPEmailService) SendSolutionReviewedEmail(to, name, ticketTitle string, approved bool) error {
	var subject, outcome, followup string
	if approved {
		subject = "Your solution was approved"
		outcome = "approved and added to the knowledge base"
		followup = "You earned credits for this resolution, and more each time it is reused."
	} else {
		subject = "Your solution was rejected"
		outcome = "rejected by the reviewer"
		followup = "The ticket has been handed back to its creator, who may reopen it."
	}

	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Hi %s,</h2>
			<p>Your solution for ticket %s was %s.</p>
			<p>%s</p>
		</body>
		</html>
	`, name, ticketTitle, outcome, followup)

	plainBody := fmt.Sprintf(`
Hi %s,

Your solution for ticket %s was %s.

%s
	`, name, ticketTitle, outcome, followup)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) sendEmail(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.config.FromAddress, s.config.FromName))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}
	return nil
}
