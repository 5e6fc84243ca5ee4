package conversation

import (
	"go.uber.org/zap"

	"lessonbot/internal/repositories/campus"
	"lessonbot/internal/services/booking"
	"lessonbot/internal/services/verification"
	"lessonbot/internal/sessions"
)

// IntentKind distinguishes free text from a button press
type IntentKind string

const (
	// IntentText is a typed message
	IntentText IntentKind = "text"

	// IntentChoice is a selection of one of the offered choices; the
	// payload carries the choice token
	IntentChoice IntentKind = "choice"
)

// Intent is one inbound user action tagged with its chat identity
type Intent struct {
	// ChatID is the chat identity the intent belongs to
	ChatID int64

	// Kind is text or choice
	Kind IntentKind

	// Payload is the typed text or the chosen token
	Payload string
}

// Choice is one selectable option offered by a prompt
type Choice struct {
	// Label is the text shown on the button
	Label string

	// Token is the opaque value returned as a choice intent payload
	Token string
}

// Prompt is the outbound reply to an intent
type Prompt struct {
	// Text is the message body
	Text string

	// Choices is the ordered option set, empty for plain messages
	Choices []Choice

	// Columns is how many choices are laid out per row. Zero means one
	// per row.
	Columns int
}

// Config holds configuration for the conversation engine
type Config struct {
	// Collaborator dependencies
	Sessions     *sessions.Store
	Repository   campus.Repository
	Verification verification.Service
	Booking      booking.Service

	// Logger defaults to a no-op logger
	Logger *zap.Logger
}

// HandleIntentInput contains the intent to handle
type HandleIntentInput struct {
	Intent *Intent
}

// HandleIntentOutput contains the prompt to send back
type HandleIntentOutput struct {
	Prompt *Prompt
}
