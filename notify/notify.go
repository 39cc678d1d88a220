// Package notify delivers waitlist and contact notifications.
//
// A Dispatcher turns form submissions into Messages and hands them to a
// Sender. Deliveries are fire-once: nothing is retried or stored.
package notify

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Template ids understood by the senders.
const (
	TemplateWaitlistNotification = "waitlist_notification"
	TemplateWaitlistThankYou     = "waitlist_thankyou"
	TemplateContactNotification  = "contact_notification"
)

var (
	// ErrInvalidEmail is returned before any delivery is attempted.
	ErrInvalidEmail = errors.New("invalid email address")
	// ErrDeliveryFailed is returned by Signup when every delivery failed,
	// and by Contact when its single delivery failed.
	ErrDeliveryFailed = errors.New("notification delivery failed")
	// ErrEmptyMessage is returned by Contact for a blank message body.
	ErrEmptyMessage = errors.New("empty contact message")
)

// IST is India Standard Time, used for human-readable timestamps.
var IST = time.FixedZone("IST", 5*60*60+30*60)

// Message is one outbound notification.
type Message struct {
	ID       string
	Template string
	Params   map[string]string
}

// Sender delivers a single message.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// SenderFunc adapts a function to Sender.
type SenderFunc func(ctx context.Context, msg Message) error

// Send calls f.
func (f SenderFunc) Send(ctx context.Context, msg Message) error { return f(ctx, msg) }

// SignupResult reports which of the two signup deliveries succeeded.
type SignupResult struct {
	ID                 string
	NotificationSent   bool
	AcknowledgmentSent bool
}

// ContactMessage is a submission of the contact form.
type ContactMessage struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// Dispatcher fans form submissions out to a Sender.
type Dispatcher struct {
	sender Sender
	to     string
	logger *zap.Logger
	now    func() time.Time
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithLogger sets the dispatcher logger.
func WithLogger(l *zap.Logger) Option {
	return func(d *Dispatcher) { d.logger = l }
}

// WithClock overrides the time source used for timestamps.
func WithClock(now func() time.Time) Option {
	return func(d *Dispatcher) { d.now = now }
}

// NewDispatcher returns a Dispatcher sending internal notifications to the
// address to.
func NewDispatcher(sender Sender, to string, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		sender: sender,
		to:     to,
		logger: zap.NewNop(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// ValidateEmail normalizes and checks a bare email address.
func ValidateEmail(email string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" || len(email) > 254 {
		return "", ErrInvalidEmail
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email || addr.Name != "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidEmail, email)
	}
	at := strings.LastIndexByte(email, '@')
	if at < 1 || !strings.Contains(email[at+1:], ".") {
		return "", fmt.Errorf("%w: %q", ErrInvalidEmail, email)
	}
	return email, nil
}

func (d *Dispatcher) timestamp() string {
	return d.now().In(IST).Format("02/01/2006, 3:04:05 pm")
}

// Signup sends the internal notification and the subscriber acknowledgment
// in parallel. Each delivery stands alone: one failing does not cancel the
// other. The error is non-nil only when both failed.
func (d *Dispatcher) Signup(ctx context.Context, email string) (SignupResult, error) {
	email, err := ValidateEmail(email)
	if err != nil {
		return SignupResult{}, err
	}
	res := SignupResult{ID: uuid.NewString()}
	log := d.logger.With(zap.String("signup_id", res.ID))

	notification := Message{
		ID:       res.ID,
		Template: TemplateWaitlistNotification,
		Params: map[string]string{
			"subscriber_email": email,
			"timestamp":        d.timestamp(),
			"to_email":         d.to,
		},
	}
	ack := Message{
		ID:       res.ID,
		Template: TemplateWaitlistThankYou,
		Params: map[string]string{
			"subscriber_email": email,
			"to_email":         email,
		},
	}

	var notifyErr, ackErr error
	var g errgroup.Group
	g.Go(func() error {
		notifyErr = d.sender.Send(ctx, notification)
		return nil
	})
	g.Go(func() error {
		ackErr = d.sender.Send(ctx, ack)
		return nil
	})
	_ = g.Wait()

	res.NotificationSent = notifyErr == nil
	res.AcknowledgmentSent = ackErr == nil
	if notifyErr != nil {
		log.Warn("waitlist notification failed", zap.Error(notifyErr))
	}
	if ackErr != nil {
		log.Warn("waitlist acknowledgment failed", zap.Error(ackErr))
	}
	if notifyErr != nil && ackErr != nil {
		return res, fmt.Errorf("%w: %w", ErrDeliveryFailed, errors.Join(notifyErr, ackErr))
	}
	log.Info("waitlist signup dispatched",
		zap.Bool("notification", res.NotificationSent),
		zap.Bool("acknowledgment", res.AcknowledgmentSent))
	return res, nil
}

// Contact sends a contact form submission as a single notification.
func (d *Dispatcher) Contact(ctx context.Context, msg ContactMessage) (string, error) {
	email, err := ValidateEmail(msg.Email)
	if err != nil {
		return "", err
	}
	body := strings.TrimSpace(msg.Message)
	if body == "" {
		return "", ErrEmptyMessage
	}
	subject := strings.TrimSpace(msg.Subject)
	if subject == "" {
		subject = "New Contact Form Message"
	}
	id := uuid.NewString()
	err = d.sender.Send(ctx, Message{
		ID:       id,
		Template: TemplateContactNotification,
		Params: map[string]string{
			"from_name":  strings.TrimSpace(msg.Name),
			"from_email": email,
			"subject":    subject,
			"message":    body,
			"timestamp":  d.timestamp(),
			"to_email":   d.to,
		},
	})
	if err != nil {
		d.logger.Warn("contact notification failed", zap.String("message_id", id), zap.Error(err))
		return id, fmt.Errorf("%w: %w", ErrDeliveryFailed, err)
	}
	d.logger.Info("contact message dispatched", zap.String("message_id", id))
	return id, nil
}
