package booking

import (
	"go.uber.org/zap"

	"lessonbot/internal/common/clock"
	"lessonbot/internal/common/uuid"
	"lessonbot/internal/models"
	"lessonbot/internal/repositories/campus"
)

// Config holds configuration for the booking service
type Config struct {
	// Repository dependency
	Repository campus.Repository

	// Clock and UUIDer are injectable for tests
	Clock  clock.Clock
	UUIDer uuid.UUID

	// WindowDays is the width of the upcoming-lessons window. Defaults
	// to 7.
	WindowDays int

	// Logger defaults to a no-op logger
	Logger *zap.Logger
}

// ListUpcomingInput contains parameters for listing upcoming lessons
type ListUpcomingInput struct {
	// Email identifies the registered user whose course and year select
	// the lessons
	Email string
}

// ListUpcomingOutput contains the lessons found
type ListUpcomingOutput struct {
	// Lessons is ordered by date then start time, ascending
	Lessons []*models.Lesson
}

// ReserveInput contains parameters for reserving a seat
type ReserveInput struct {
	// Email identifies the user taking the seat
	Email string

	// LessonID identifies the lesson
	LessonID int64
}

// ReserveOutput contains the booking that was recorded
type ReserveOutput struct {
	// Booking carries the assigned id and timestamp
	Booking *models.Booking
}

// ReleaseInput contains parameters for cancelling a booking
type ReleaseInput struct {
	// BookingID is the booking to cancel
	BookingID string
}

// IsBookedInput contains parameters for the booking lookup
type IsBookedInput struct {
	// Email identifies the user
	Email string

	// LessonID identifies the lesson
	LessonID int64
}

// IsBookedOutput contains the result of the booking lookup
type IsBookedOutput struct {
	// Booked indicates whether a booking exists
	Booked bool

	// BookingID is the booking's id when Booked is true
	BookingID string
}

// GetLessonInput contains parameters for retrieving a lesson
type GetLessonInput struct {
	// LessonID is the lesson's unique identifier
	LessonID int64
}

// GetBookingInput contains parameters for retrieving a booking
type GetBookingInput struct {
	// BookingID is the booking's unique identifier
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
