package campus

import (
	"time"

	"lessonbot/internal/models"
)

// CheckEmailExistsInput contains parameters for the email uniqueness check
type CheckEmailExistsInput struct {
	// Email is the address to look up
	Email string
}

// InsertUserInput contains the fields of the user to persist
type InsertUserInput struct {
	// User is the fully collected user record
	User *models.User
}

// GetUserInfoInput contains parameters for retrieving a user
type GetUserInfoInput struct {
	// Email is the address of the registered user
	Email string
}

// ListLessonsInput contains parameters for listing lessons
type ListLessonsInput struct {
	// Course and Year select the lessons the user is eligible for
	Course string
	Year   int

	// From and To bound the date window, inclusive on both ends
	From time.Time
	To   time.Time
}

// ListLessonsOutput contains the lessons found
type ListLessonsOutput struct {
	// Lessons is ordered by date then start time, ascending
	Lessons []*models.Lesson
}

// GetLessonInput contains parameters for retrieving a lesson
type GetLessonInput struct {
	// LessonID is the lesson's unique identifier
	LessonID int64
}

// IsUserBookedInput contains parameters for the booking lookup
type IsUserBookedInput struct {
	// Email identifies the user
	Email string

	// LessonID identifies the lesson
	LessonID int64
}

// IsUserBookedOutput contains the result of the booking lookup
type IsUserBookedOutput struct {
	// Booked indicates whether a booking exists
	Booked bool

	// BookingID is the booking's id when Booked is true
	BookingID string
}

// ListBookingsInput contains parameters for listing a user's bookings
type ListBookingsInput struct {
	// Email identifies the user
	Email string
}

// ListBookingsOutput contains the bookings found
type ListBookingsOutput struct {
	// Bookings is ordered by the booked lesson's date then start time
	Bookings []*models.Booking
}

// GetBookingInput contains parameters for retrieving a booking
type GetBookingInput struct {
	// BookingID is the booking's unique identifier
	BookingID string
}

// InsertBookingInput contains the booking to persist
type InsertBookingInput struct {
	// Booking carries the id and timestamp assigned by the caller
	Booking *models.Booking
}

// CancelBookingInput contains parameters for cancelling a booking
type CancelBookingInput struct {
	// BookingID is the booking to delete
	BookingID string

	// LessonID is the lesson whose seat is released
	LessonID int64
}
