package email

import (
	"crypto/tls"
	"fmt"
	"net/smtp"
	"strings"
)

// SMTPConfig - настройки SMTP сервера
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
	FromName  string
	UseTLS    bool
}

// SMTPProvider реализует Provider для SMTP
type SMTPProvider struct {
	config *SMTPConfig
	auth   smtp.Auth
}

// NewSMTPProvider создает новый SMTP провайдер
func NewSMTPProvider(config *SMTPConfig) *SMTPProvider {
	var auth smtp.Auth
	if config.Username != "" && config.Password != "" {
		auth = smtp.PlainAuth("", config.Username, config.Password, config.Host)
	}

	return &SMTPProvider{
		config: config,
		auth:   auth,
	}
}

// Send отправляет простое email сообщение
func (p *SMTPProvider) Send(email *Email) error {
	if err := p.Validate(); err != nil {
		return err
	}

	message := p.buildMessage(email)
	addr := fmt.Sprintf("%s:%d", p.config.Host, p.config.Port)

	if p.config.UseTLS {
		tlsConfig := &tls.Config{
			ServerName: p.config.Host,
		}

		conn, err := tls.Dial("tcp", addr, tlsConfig)
		if err != nil {
			return fmt.Errorf("failed to dial TLS: %w", err)
		}
		defer conn.Close()

		client, err := smtp.NewClient(conn, p.config.Host)
		if err != nil {
			return fmt.Errorf("failed to create client: %w", err)
		}
		defer client.Close()

		return p.sendWithClient(client, email, message)
	}

	return smtp.SendMail(addr, p.auth, p.config.FromEmail, email.To, message)
}

// SendWelcome отправляет приветственное письмо после регистрации
func (p *SMTPProvider) SendWelcome(to, name string) error {
	greeting := "Welcome to ArtLink!"
	if name != "" {
		greeting = fmt.Sprintf("Welcome to ArtLink, %s!", name)
	}

	return p.Send(&Email{
		To:      []string{to},
		Subject: "Welcome to ArtLink",
		Body:    greeting + "\r\n\r\nYour account has been created.",
	})
}

// SendBookingNotice уведомляет артиста о новой заявке
func (p *SMTPProvider) SendBookingNotice(to, clientName, eventType string) error {
	from := clientName
	if from == "" {
		from = "a client"
	}

	return p.Send(&Email{
		To:      []string{to},
		Subject: "New booking request",
		Body:    fmt.Sprintf("You have a new booking request from %s for: %s", from, eventType),
	})
}

// Validate проверяет конфигурацию SMTP
func (p *SMTPProvider) Validate() error {
	if p.config.Host == "" {
		return fmt.Errorf("SMTP host is required")
	}

	if p.config.Port <= 0 || p.config.Port > 65535 {
		return fmt.Errorf("invalid SMTP port: %d", p.config.Port)
	}

	return nil
}

// Close закрывает соединение (для SMTP обычно не требуется)
func (p *SMTPProvider) Close() error {
	return nil
}

func (p *SMTPProvider) sendWithClient(client *smtp.Client, email *Email, message []byte) error {
	if p.auth != nil {
		if err := client.Auth(p.auth); err != nil {
			return fmt.Errorf("SMTP auth failed: %w", err)
		}
	}

	if err := client.Mail(p.config.FromEmail); err != nil {
		return err
	}
	for _, rcpt := range email.To {
		if err := client.Rcpt(rcpt); err != nil {
			return err
		}
	}

	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(message); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}

	return client.Quit()
}

// buildMessage строит MIME сообщение из структуры Email
func (p *SMTPProvider) buildMessage(email *Email) []byte {
	builder := &strings.Builder{}

	from := p.config.FromEmail
	if p.config.FromName != "" {
		from = fmt.Sprintf("%s <%s>", p.config.FromName, p.config.FromEmail)
	}

	builder.WriteString(fmt.Sprintf("From: %s\r\n", from))
	builder.WriteString(fmt.Sprintf("To: %s\r\n", strings.Join(email.To, ",")))
	builder.WriteString(fmt.Sprintf("Subject: %s\r\n", email.Subject))
	builder.WriteString("MIME-Version: 1.0\r\n")
	builder.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n\r\n")
	builder.WriteString(email.Body)

	return []byte(builder.String())
}
