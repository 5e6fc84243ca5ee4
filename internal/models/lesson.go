package models

import "time"

// Lesson represents a bookable lesson slot
type Lesson struct {
	// ID is the unique identifier for this lesson
	ID int64

	// Date is the day the lesson takes place
	Date time.Time

	// StartTime and EndTime are clock times in "15:04" form
	StartTime string
	EndTime   string

	// Description is a free-form description of the lesson
	Description string

	// Seats is the number of remaining bookable seats, never negative
	Seats int

	// Subject is the name of the subject being taught
	Subject string

	// Room is the name of the room the lesson is held in
	Room string

	// ProfessorFirst and ProfessorLast identify the professor
	ProfessorFirst string
	ProfessorLast  string

	// Course and Year restrict who can see and book the lesson
	Course string
	Year   int
}
