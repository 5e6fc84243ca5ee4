package campus

import (
	"context"

	"lessonbot/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go lessonbot/internal/repositories/campus Repository

// Repository defines the interface for course, user, lesson and booking
// persistence. All implementations take bound parameters only; no query
// text is ever built from user-controlled values.
type Repository interface {
	// ListCourses retrieves the names of all degree courses
	ListCourses(ctx context.Context) ([]string, error)

	// CheckEmailExists reports whether a user with this email is registered
	CheckEmailExists(ctx context.Context, input *CheckEmailExistsInput) (bool, error)

	// InsertUser persists a new user
	InsertUser(ctx context.Context, input *InsertUserInput) error

	// GetUserInfo retrieves a registered user by email
	GetUserInfo(ctx context.Context, input *GetUserInfoInput) (*models.User, error)

	// ListLessons retrieves the lessons for a course and year within a
	// date window, ordered by date then start time
	ListLessons(ctx context.Context, input *ListLessonsInput) (*ListLessonsOutput, error)

	// GetLesson retrieves a lesson by id
	GetLesson(ctx context.Context, input *GetLessonInput) (*models.Lesson, error)

	// IsUserBooked reports whether the user holds a booking for a lesson
	IsUserBooked(ctx context.Context, input *IsUserBookedInput) (*IsUserBookedOutput, error)

	// ListBookings retrieves all bookings held by a user, ordered by the
	// date then start time of the booked lesson
	ListBookings(ctx context.Context, input *ListBookingsInput) (*ListBookingsOutput, error)

	// GetBooking retrieves a booking by id
	GetBooking(ctx context.Context, input *GetBookingInput) (*models.Booking, error)

	// InsertBooking reserves a seat and records the booking as one atomic
	// operation. The seat decrement is conditional on remaining capacity;
	// ErrCapacityExhausted is returned when no seat is left and nothing is
	// written. ErrDuplicateBooking is returned when the user already holds
	// a booking for the lesson.
	InsertBooking(ctx context.Context, input *InsertBookingInput) error

	// CancelBooking deletes a booking and releases its seat as one atomic
	// operation
	CancelBooking(ctx context.Context, input *CancelBookingInput) error
}
