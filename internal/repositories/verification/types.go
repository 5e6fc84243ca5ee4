package verification

// BindCodeInput contains parameters for binding a code
type BindCodeInput struct {
	// ChatID is the chat identity the code is bound to
	ChatID int64

	// Code is the 5-digit verification code
	Code int
}

// ConsumeCodeInput contains parameters for consuming a code
type ConsumeCodeInput struct {
	// ChatID is the chat identity whose code is consumed
	ChatID int64
}

// ConsumeCodeOutput contains the consumed code
type ConsumeCodeOutput struct {
	// Code is the code that was bound
	Code int
}

// ClearCodeInput contains parameters for clearing a code
type ClearCodeInput struct {
	// ChatID is the chat identity whose code is removed
	ChatID int64
}
