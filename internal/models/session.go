package models

import "time"

// ConversationState identifies where a chat is in the conversation flow
type ConversationState string

const (
	// StateStart is the entry menu offering registration or login
	StateStart ConversationState = "start_menu"

	// StateRegistering collects the registration field the pointer is on
	StateRegistering ConversationState = "registering"

	// StateConfirming waits for the user to confirm or discard the value
	// just entered for the current registration field
	StateConfirming ConversationState = "confirming"

	// StateEmailVerifying waits for the registration verification code
	StateEmailVerifying ConversationState = "email_verifying"

	// StateCourseSelecting waits for a course choice from the course grid
	StateCourseSelecting ConversationState = "course_selecting"

	// StateLoginEmail waits for the email to log in with
	StateLoginEmail ConversationState = "login_email"

	// StateLoginVerifying waits for the login verification code
	StateLoginVerifying ConversationState = "login_verifying"

	// StateMainMenu is the authenticated landing menu
	StateMainMenu ConversationState = "main_menu"

	// StateBrowsing shows the upcoming lessons list
	StateBrowsing ConversationState = "browsing"

	// StateLessonView shows a single lesson with its booking actions
	StateLessonView ConversationState = "lesson_view"

	// StateBookingsList shows the user's bookings
	StateBookingsList ConversationState = "bookings_list"

	// StateBookingView shows a single booking with its cancel action
	StateBookingView ConversationState = "booking_view"
)

// ChatSession holds the in-progress conversation state for one chat
// identity. It lives only in memory for the duration of a conversation
// and is never persisted.
type ChatSession struct {
	// ChatID is the chat identity this session belongs to
	ChatID int64

	// State is the current conversation state
	State ConversationState

	// FieldIndex is the position in the fixed registration field order,
	// used by confirm/back to pick the next and previous prompts
	FieldIndex int

	// Partially entered registration fields. Email doubles as the login
	// email and as the binding for a pending verification code.
	FirstName string
	LastName  string
	Email     string
	Course    string
	Year      int

	// LastActive is when the session last handled an intent
	LastActive time.Time
}
