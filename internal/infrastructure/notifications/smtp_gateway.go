package notifications

import (
	"context"
	"fmt"
	"log"
	"net/smtp"
	"os"
	"strings"

	"carport_quotes/internal/domain/entities"
	"carport_quotes/internal/usecase/interfaces"
)

// SMTPGateway sends the inquiry confirmation email.
//
// Mock mode (NOTIFICATION_GATEWAY_MOCK=1/true/yes/on/mock, or an unset SMTP_HOST)
// only logs the message, so local stacks work without a mail server. Supported
// env vars:
//   - SMTP_HOST, SMTP_PORT (default: 587)
//   - SMTP_USERNAME, SMTP_PASSWORD
//   - SMTP_FROM_EMAIL, SMTP_FROM_NAME

type SMTPGateway struct {
	host      string
	port      string
	username  string
	password  string
	fromEmail string
	fromName  string
	mockMode  bool
}

var _ interfaces.INotificationGateway = (*SMTPGateway)(nil)

func NewSMTPGatewayFromEnv() *SMTPGateway {
	g := &SMTPGateway{
		host:      os.Getenv("SMTP_HOST"),
		port:      getenvDefault("SMTP_PORT", "587"),
		username:  os.Getenv("SMTP_USERNAME"),
		password:  os.Getenv("SMTP_PASSWORD"),
		fromEmail: os.Getenv("SMTP_FROM_EMAIL"),
		fromName:  getenvDefault("SMTP_FROM_NAME", "Carport Quotes"),
	}
	if isNotificationGatewayMockEnabled() || g.host == "" {
		log.Printf("[notification][gateway] mock mode enabled")
		g.mockMode = true
	}
	return g
}

func (g *SMTPGateway) SendInquiryConfirmation(ctx context.Context, customer entities.Customer, inquiry entities.Inquiry) error {
	subject := "We received your carport quote request"
	body := confirmationBody(customer, inquiry)

	if g.mockMode {
		log.Printf("[notification][gateway] mock send to=%s inquiry_id=%s", customer.Email, inquiry.ID)
		return nil
	}

	if g.username == "" || g.password == "" || g.fromEmail == "" {
		return fmt.Errorf("notification gateway not properly configured")
	}

	from := g.fromEmail
	if g.fromName != "" {
		from = fmt.Sprintf("%s <%s>", g.fromName, g.fromEmail)
	}

	msg := fmt.Sprintf("From: %s\r\n", from) +
		fmt.Sprintf("To: %s\r\n", customer.Email) +
		fmt.Sprintf("Subject: %s\r\n", subject) +
		"MIME-Version: 1.0\r\n" +
		"Content-Type: text/plain; charset=UTF-8\r\n" +
		"\r\n" +
		body

	auth := smtp.PlainAuth("", g.username, g.password, g.host)
	addr := g.host + ":" + g.port

	if err := smtp.SendMail(addr, auth, g.fromEmail, []string{customer.Email}, []byte(msg)); err != nil {
		log.Printf("[notification][gateway] send failed to=%s inquiry_id=%s err=%v", customer.Email, inquiry.ID, err)
		return err
	}

	log.Printf("[notification][gateway] confirmation sent to=%s inquiry_id=%s", customer.Email, inquiry.ID)
	return nil
}

func confirmationBody(customer entities.Customer, inquiry entities.Inquiry) string {
	shedLength := "none"
	if inquiry.ShedLength != nil {
		shedLength = fmt.Sprintf("%g cm", *inquiry.ShedLength)
	}
	shedWidth := "none"
	if inquiry.ShedWidth != nil {
		shedWidth = fmt.Sprintf("%g cm", *inquiry.ShedWidth)
	}

	return fmt.Sprintf(`Hello %s,

We received your carport quote request and it is now under review.

Carport: %g x %g cm
Shed length: %s
Shed width: %s

A salesman will contact you with a quote shortly.

Reference: %s
`, customer.Name, inquiry.CarportLength, inquiry.CarportWidth, shedLength, shedWidth, inquiry.ID)
}

func isNotificationGatewayMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("NOTIFICATION_GATEWAY_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
