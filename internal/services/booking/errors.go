package booking

// ServiceError is a custom error type for booking errors
type ServiceError string

// Error implements the error interface
func (e ServiceError) Error() string {
	return string(e)
}

// Define errors
const (
	// ErrNoSeatsLeft is returned when every seat on the lesson is taken
	ErrNoSeatsLeft ServiceError = "no seats left on this lesson"

	// ErrAlreadyBooked is returned when the user already holds a booking
	// for the lesson
	ErrAlreadyBooked ServiceError = "lesson is already booked by this user"

	ErrNilConfig     ServiceError = "config cannot be nil"
	ErrNilRepository ServiceError = "repository cannot be nil"
)
