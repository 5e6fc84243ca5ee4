package verification

// ServiceError is a custom error type for verification errors
type ServiceError string

// Error implements the error interface
func (e ServiceError) Error() string {
	return string(e)
}

// Define errors
const (
	// ErrInvalidDomain is returned when the email is not on the
	// institutional domain. The notifier is never invoked in this case.
	ErrInvalidDomain ServiceError = "email is not an institutional address"

	ErrNilConfig    ServiceError = "config cannot be nil"
	ErrNilCodeRepo  ServiceError = "code repository cannot be nil"
	ErrNilNotifier  ServiceError = "notifier cannot be nil"
	ErrNilGenerator ServiceError = "code generator cannot be nil"
	ErrEmptyDomain  ServiceError = "institutional domain cannot be empty"
)
