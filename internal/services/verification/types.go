package verification

import (
	"go.uber.org/zap"

	"lessonbot/internal/common/codes"
	"lessonbot/internal/notifier"
	verificationRepo "lessonbot/internal/repositories/verification"
)

// DeliveryFailureFunc is invoked when the asynchronous email send for a
// chat fails, after the pending code has been invalidated
type DeliveryFailureFunc func(chatID int64, email string, err error)

// Config holds configuration for the verification service
type Config struct {
	// Domain is the required institutional email suffix, without the
	// leading @
	Domain string

	// Repository and collaborator dependencies
	CodeRepo verificationRepo.Repository
	Notifier notifier.Notifier
	Codes    codes.Generator

	// Dispatch runs the delivery as an independent unit of work so that
	// a slow SMTP server cannot stall intent dispatch. Defaults to a
	// plain goroutine; tests pass a synchronous function.
	Dispatch func(func())

	// OnDeliveryFailure reports an asynchronous delivery failure back to
	// the waiting session. Optional.
	OnDeliveryFailure DeliveryFailureFunc

	// Logger defaults to a no-op logger
	Logger *zap.Logger
}

// IssueInput contains parameters for issuing a code
type IssueInput struct {
	// ChatID is the chat identity requesting verification
	ChatID int64

	// Email is the address the code is delivered to
	Email string
}

// IssueOutput contains the result of issuing a code
type IssueOutput struct {
	// Code is the value that was bound and dispatched
	Code int
}

// CheckInput contains parameters for checking a submitted code
type CheckInput struct {
	// ChatID is the chat identity whose pending code is checked
	ChatID int64

	// Submitted is the raw user input; non-numeric text counts as a
	// mismatch, not a distinct error
	Submitted string
}

// CheckOutput contains the result of checking a code
type CheckOutput struct {
	// Matched indicates whether the submitted value equals the bound
	// code
	Matched bool
}

// InvalidateInput contains parameters for discarding a pending code
type InvalidateInput struct {
	// ChatID is the chat identity whose code is discarded
	ChatID int64
}
