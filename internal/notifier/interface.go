package notifier

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_notifier.go lessonbot/internal/notifier Notifier

// Notifier delivers a verification code to an email address. Domain
// eligibility is checked by the caller, not here.
type Notifier interface {
	// Send delivers the code. A non-nil error means delivery failed;
	// it wraps ErrDeliveryFailed.
	Send(ctx context.Context, input *SendInput) error
}

// SendInput contains parameters for sending a verification code
type SendInput struct {
	// Email is the recipient address
	Email string

	// Code is the 5-digit verification code
	Code int
}

// NotifierError is a custom error type for delivery errors
type NotifierError string

// Error implements the error interface
func (e NotifierError) Error() string {
	return string(e)
}

// ErrDeliveryFailed is returned (wrapped) when the email could not be
// delivered. Kept distinct from the domain-eligibility rejection, which
// never reaches the notifier.
const ErrDeliveryFailed NotifierError = "failed to deliver verification email"
