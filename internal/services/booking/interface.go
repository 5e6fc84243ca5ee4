package booking

import (
	"context"

	"lessonbot/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go lessonbot/internal/services/booking Service

// Service defines the interface for lesson browsing and seat reservation
type Service interface {
	// ListUpcoming retrieves the lessons the user can attend over the
	// next week, recomputed from the current time on every call
	ListUpcoming(ctx context.Context, input *ListUpcomingInput) (*ListUpcomingOutput, error)

	// Reserve takes a seat on a lesson and records the booking. Returns
	// ErrNoSeatsLeft when capacity is exhausted and ErrAlreadyBooked when
	// the user already holds a booking for the lesson.
	Reserve(ctx context.Context, input *ReserveInput) (*ReserveOutput, error)

	// Release cancels a booking and gives its seat back
	Release(ctx context.Context, input *ReleaseInput) error

	// IsBooked reports whether the user holds a booking for a lesson
	IsBooked(ctx context.Context, input *IsBookedInput) (*IsBookedOutput, error)

	// GetLesson retrieves a lesson by id
	GetLesson(ctx context.Context, input *GetLessonInput) (*models.Lesson, error)

	// GetBooking retrieves a booking by id
	GetBooking(ctx context.Context, input *GetBookingInput) (*models.Booking, error)

	// ListBookings retrieves all bookings held by a user
	ListBookings(ctx context.Context, input *ListBookingsInput) (*ListBookingsOutput, error)
}
