package verification

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go lessonbot/internal/repositories/verification Repository

// Repository defines the interface for pending verification-code storage.
// A chat identity holds at most one pending code at a time.
type Repository interface {
	// BindCode stores a pending code for a chat identity, overwriting any
	// prior unconsumed code
	BindCode(ctx context.Context, input *BindCodeInput) error

	// ConsumeCode retrieves and removes the pending code for a chat
	// identity. The code is gone after this call whatever the caller
	// decides about the match.
	ConsumeCode(ctx context.Context, input *ConsumeCodeInput) (*ConsumeCodeOutput, error)

	// ClearCode removes any pending code for a chat identity
	ClearCode(ctx context.Context, input *ClearCodeInput) error
}
