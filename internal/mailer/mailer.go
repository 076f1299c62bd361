// Package mailer renders and delivers the order confirmation emails.
// Delivery failures are reported as results, never as panics or fatal
// errors: a lost email degrades the confirmation, not the order.
package mailer

import (
	"fmt"
	"log"

	"gopkg.in/gomail.v2"

	"github.com/acasiostore/storefront-golang/internal/config"
	"github.com/acasiostore/storefront-golang/internal/models"
)

// DeliveryError wraps any transport or auth failure from the mail layer.
type DeliveryError struct {
	Recipient string
	Err       error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("mail delivery to %s failed: %v", e.Recipient, e.Err)
}

func (e *DeliveryError) Unwrap() error { return e.Err }

// Sender delivers one rendered message. The SMTP implementation is the
// production one; tests substitute their own.
type Sender interface {
	Send(to, subject, htmlBody string) error
}

// SMTPSender sends mail through gomail with STARTTLS, the transport the
// store account expects on port 587.
type SMTPSender struct {
	dialer *gomail.Dialer
	from   string
	store  string
}

// NewSMTPSender builds the production sender from the app config.
func NewSMTPSender(cfg *config.Config, store config.StoreInfo) *SMTPSender {
	return &SMTPSender{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword),
		from:   cfg.SMTPUsername,
		store:  store.Name,
	}
}

// Send delivers one HTML message. Any dialer error comes back as a
// DeliveryError; nothing is retried here.
func (s *SMTPSender) Send(to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.from, s.store)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return &DeliveryError{Recipient: to, Err: err}
	}
	return nil
}

// Result says which of the two order notifications actually went out.
type Result int

const (
	// NoneSent: neither message was delivered, or only the customer
	// copy went out and the store never heard about the order.
	NoneSent Result = iota
	// AdminOnlySent: the store was alerted but the customer receipt
	// failed; the admin follows up manually.
	AdminOnlySent
	// BothSent: customer receipt and admin alert both delivered.
	BothSent
)

func (r Result) String() string {
	switch r {
	case BothSent:
		return "bothSent"
	case AdminOnlySent:
		return "adminOnlySent"
	default:
		return "noneSent"
	}
}

// Service is the order notification service: it renders the two emails
// and pushes them through the configured sender.
type Service struct {
	Sender     Sender
	AdminEmail string
	Store      config.StoreInfo
}

// NewService wires a notification service.
func NewService(sender Sender, adminEmail string, store config.StoreInfo) *Service {
	return &Service{Sender: sender, AdminEmail: adminEmail, Store: store}
}

// SendOrderNotifications delivers the customer receipt and then the
// admin alert for one order snapshot. Each failure is logged and folded
// into the result; the caller completes checkout regardless.
func (s *Service) SendOrderNotifications(order models.OrderSnapshot) Result {
	content, err := BuildOrderContent(order, s.Store)
	if err != nil {
		// Template rendering only breaks if the templates themselves
		// are broken; treat it like a full delivery failure.
		log.Printf("Failed to render order emails for %s: %v", order.Reference, err)
		return NoneSent
	}

	customerSent := s.deliver(order.Customer.Email,
		fmt.Sprintf("Order Confirmation - %s", s.Store.Name), content.CustomerHTML)
	adminSent := s.deliver(s.AdminEmail,
		fmt.Sprintf("New Order from %s", order.Customer.Name), content.AdminHTML)

	switch {
	case customerSent && adminSent:
		return BothSent
	case adminSent:
		return AdminOnlySent
	default:
		return NoneSent
	}
}

func (s *Service) deliver(to, subject, htmlBody string) bool {
	if err := s.Sender.Send(to, subject, htmlBody); err != nil {
		log.Printf("Email to %s failed: %v", to, err)
		return false
	}
	log.Printf("Email sent to %s", to)
	return true
}
