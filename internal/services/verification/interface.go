package verification

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go lessonbot/internal/services/verification Service

// Service defines the interface for the email verification protocol
// shared by registration and login
type Service interface {
	// Issue generates a one-time code for the chat, binds it, and hands
	// delivery off to the notifier. Non-institutional addresses are
	// rejected before any delivery attempt.
	Issue(ctx context.Context, input *IssueInput) (*IssueOutput, error)

	// Check consumes the pending code and compares it to the submitted
	// value. The code is gone after this call whatever the outcome.
	Check(ctx context.Context, input *CheckInput) (*CheckOutput, error)

	// Invalidate discards any pending code for the chat
	Invalidate(ctx context.Context, input *InvalidateInput) error
}
