package models

import "time"

// Booking represents a reserved seat at a lesson.
// At most one booking exists per (lesson, user email) pair.
type Booking struct {
	// ID is the unique identifier for this booking
	ID string

	// CreatedAt is when the booking was made
	CreatedAt time.Time

	// LessonID is the lesson the seat was reserved for
	LessonID int64

	// UserEmail is the email of the user who booked
	UserEmail string
}
