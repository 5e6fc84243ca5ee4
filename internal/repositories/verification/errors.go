package verification

// VerificationError is a custom error type for code-store errors
type VerificationError string

// Error implements the error interface
func (e VerificationError) Error() string {
	return string(e)
}

// ErrCodeNotFound is returned when no pending code exists for the chat,
// either because none was issued or because it expired
const ErrCodeNotFound VerificationError = "no pending verification code"
