package conversation

// EngineError is a custom error type for conversation engine errors
type EngineError string

// Error implements the error interface
func (e EngineError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig       EngineError = "config cannot be nil"
	ErrNilSessions     EngineError = "session store cannot be nil"
	ErrNilRepository   EngineError = "repository cannot be nil"
	ErrNilVerification EngineError = "verification service cannot be nil"
	ErrNilBooking      EngineError = "booking service cannot be nil"
)
