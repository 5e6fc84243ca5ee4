package campus

// CampusError is a custom error type for repository errors
type CampusError string

// Error implements the error interface
func (e CampusError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrUserNotFound      CampusError = "user not found"
	ErrLessonNotFound    CampusError = "lesson not found"
	ErrBookingNotFound   CampusError = "booking not found"
	ErrDuplicateEmail    CampusError = "email already registered"
	ErrDuplicateBooking  CampusError = "user already booked for this lesson"
	ErrCapacityExhausted CampusError = "no seats left for this lesson"
)
