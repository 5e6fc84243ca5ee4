package conversation

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"lessonbot/internal/models"
	"lessonbot/internal/repositories/campus"
	"lessonbot/internal/services/booking"
	"lessonbot/internal/services/verification"
	"lessonbot/internal/sessions"
)

// Registration field pointer positions, in the fixed collection order
const (
	fieldName = iota
	fieldSurname
	fieldEmail
	fieldEmailVerify
	fieldCourse
	fieldYear
	fieldCount
)

// Choice tokens. Lesson and booking tokens are prefixed with the entity
// id appended.
const (
	tokenRegister = "register"
	tokenLogin    = "login"
	tokenConfirm  = "confirm"
	tokenBack     = "back"
	tokenMenu     = "menu"
	tokenRetry    = "retry"
	tokenLessons  = "lessons"
	tokenBookings = "bookings"

	lessonTokenPrefix  = "lesson-"
	bookTokenPrefix    = "book-"
	bookingTokenPrefix = "booking-"
	cancelTokenPrefix  = "cancel-"
)

// Commands accepted as text in every state
const (
	commandStart = "/start"
	commandExit  = "/exit"
)

type handlerFunc func(ctx context.Context, session *models.ChatSession, payload string) *Prompt

// engine implements the Service interface. Each conversation state maps
// intent kinds to handlers through an explicit transition table; there
// is no arithmetic on state values.
type engine struct {
	sessions     *sessions.Store
	repository   campus.Repository
	verification verification.Service
	booking      booking.Service
	logger       *zap.Logger
	transitions  map[models.ConversationState]map[IntentKind]handlerFunc
}

// New creates a new conversation engine
func New(cfg *Config) (*engine, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Sessions == nil {
		return nil, ErrNilSessions
	}

	if cfg.Repository == nil {
		return nil, ErrNilRepository
	}

	if cfg.Verification == nil {
		return nil, ErrNilVerification
	}

	if cfg.Booking == nil {
		return nil, ErrNilBooking
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	e := &engine{
		sessions:     cfg.Sessions,
		repository:   cfg.Repository,
		verification: cfg.Verification,
		booking:      cfg.Booking,
		logger:       logger,
	}

	e.transitions = map[models.ConversationState]map[IntentKind]handlerFunc{
		models.StateStart: {
			IntentChoice: e.handleStartChoice,
		},
		models.StateRegistering: {
			IntentText: e.handleFieldText,
		},
		models.StateConfirming: {
			IntentChoice: e.handleConfirmChoice,
		},
		models.StateEmailVerifying: {
			IntentText: e.handleRegistrationCode,
		},
		models.StateCourseSelecting: {
			IntentChoice: e.handleCourseChoice,
		},
		models.StateLoginEmail: {
			IntentText: e.handleLoginEmail,
		},
		models.StateLoginVerifying: {
			IntentText: e.handleLoginCode,
		},
		models.StateMainMenu: {
			IntentChoice: e.handleMainMenuChoice,
		},
		models.StateBrowsing: {
			IntentChoice: e.handleBrowsingChoice,
		},
		models.StateLessonView: {
			IntentChoice: e.handleLessonViewChoice,
		},
		models.StateBookingsList: {
			IntentChoice: e.handleBookingsListChoice,
		},
		models.StateBookingView: {
			IntentChoice: e.handleBookingViewChoice,
		},
	}

	return e, nil
}

// HandleIntent interprets an inbound intent against the chat's session
func (e *engine) HandleIntent(ctx context.Context, input *HandleIntentInput) (*HandleIntentOutput, error) {
	if input == nil || input.Intent == nil {
		return nil, errors.New("input and intent cannot be nil")
	}

	intent := input.Intent
	session, release := e.sessions.Acquire(intent.ChatID)
	defer release()

	if intent.Kind == IntentText {
		switch intent.Payload {
		case commandStart:
			return &HandleIntentOutput{Prompt: e.restart(ctx, session)}, nil
		case commandExit:
			return &HandleIntentOutput{Prompt: e.exit(ctx, session)}, nil
		}
	}

	handler := e.transitions[session.State][intent.Kind]
	if handler == nil {
		return &HandleIntentOutput{Prompt: e.fallbackPrompt()}, nil
	}

	return &HandleIntentOutput{Prompt: handler(ctx, session, intent.Payload)}, nil
}

// restart wipes the session and shows the entry menu
func (e *engine) restart(ctx context.Context, session *models.ChatSession) *Prompt {
	e.invalidatePendingCode(ctx, session)
	e.sessions.Reset(session)
	return e.startPrompt()
}

// exit wipes the session and ends the conversation
func (e *engine) exit(ctx context.Context, session *models.ChatSession) *Prompt {
	e.invalidatePendingCode(ctx, session)
	e.sessions.Reset(session)
	e.sessions.Clear(session.ChatID)
	return &Prompt{Text: "A presto!"}
}

// invalidatePendingCode discards a bound verification code when the
// session is abandoned mid-verification
func (e *engine) invalidatePendingCode(ctx context.Context, session *models.ChatSession) {
	if session.State != models.StateEmailVerifying && session.State != models.StateLoginVerifying {
		return
	}

	err := e.verification.Invalidate(ctx, &verification.InvalidateInput{
		ChatID: session.ChatID,
	})
	if err != nil {
		e.logger.Warn("failed to invalidate pending code",
			zap.Int64("chat_id", session.ChatID),
			zap.Error(err))
	}
}

func (e *engine) handleStartChoice(ctx context.Context, session *models.ChatSession, payload string) *Prompt {
	switch payload {
	case tokenRegister:
		session.State = models.StateRegistering
		session.FieldIndex = fieldName
		return promptForField(fieldName)
	case tokenLogin:
		session.State = models.StateLoginEmail
		return &Prompt{Text: "Inserisci la tua email per accedere"}
	}
	return e.startPrompt()
}

func (e *engine) startPrompt() *Prompt {
	return &Prompt{
		Text: "Benvenuto! Cosa vuoi fare?",
		Choices: []Choice{
			{Label: "Registrati", Token: tokenRegister},
			{Label: "Login", Token: tokenLogin},
		},
	}
}

// fallbackPrompt handles intents the current state has no transition
// for, e.g. typed text on a button-driven screen
func (e *engine) fallbackPrompt() *Prompt {
	return &Prompt{Text: "Usa i pulsanti del messaggio sopra per continuare, oppure /start per ricominciare e /exit per uscire."}
}

// failurePrompt reports an external failure without losing the flow;
// the user can resubmit the same intent
func (e *engine) failurePrompt() *Prompt {
	return &Prompt{Text: "Qualcosa e' andato storto. Riprova."}
}

// failureConfirmPrompt is the failure report for confirm screens. Those
// are edited in place, so the confirm/back keyboard must survive the
// failure for the intent to be resubmittable.
func (e *engine) failureConfirmPrompt() *Prompt {
	prompt := e.failurePrompt()
	prompt.Choices = []Choice{
		{Label: "Conferma", Token: tokenConfirm},
		{Label: "Indietro", Token: tokenBack},
	}
	return prompt
}
