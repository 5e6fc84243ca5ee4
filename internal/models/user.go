package models

// User represents a registered student
type User struct {
	// Email is the institutional email address, unique across users
	Email string

	// FirstName is the student's first name
	FirstName string

	// LastName is the student's surname
	LastName string

	// Course is the degree course the student is enrolled in
	Course string

	// Year is the year of enrollment, between 1 and 3
	Year int
}
