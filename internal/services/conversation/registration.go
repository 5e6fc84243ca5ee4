package conversation

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"lessonbot/internal/models"
	"lessonbot/internal/repositories/campus"
	"lessonbot/internal/services/verification"
)

const (
	nameMinLen = 3
	nameMaxLen = 20

	yearMin = 1
	yearMax = 3
)

// promptForField asks for the registration field at the given pointer
// position
func promptForField(index int) *Prompt {
	switch index {
	case fieldName:
		return &Prompt{Text: "Inserisci il tuo nome"}
	case fieldSurname:
		return &Prompt{Text: "Inserisci il tuo cognome"}
	case fieldEmail:
		return &Prompt{Text: "Inserisci la tua email istituzionale"}
	case fieldYear:
		return &Prompt{Text: "Inserisci il tuo anno di corso (1-3)"}
	}
	return &Prompt{Text: "Inserisci il valore richiesto"}
}

// confirmPrompt asks the user to confirm or discard the value just
// entered for the current field
func confirmPrompt(value string) *Prompt {
	return &Prompt{
		Text: fmt.Sprintf("Confermi \"%s\"?", value),
		Choices: []Choice{
			{Label: "Conferma", Token: tokenConfirm},
			{Label: "Indietro", Token: tokenBack},
		},
	}
}

// handleFieldText validates the typed value for the field the pointer is
// on. A valid value moves the session to Confirming; an invalid one
// re-prompts the same field with the reason.
func (e *engine) handleFieldText(ctx context.Context, session *models.ChatSession, payload string) *Prompt {
	value := strings.TrimSpace(payload)

	switch session.FieldIndex {
	case fieldName, fieldSurname:
		// Length is counted in characters, not bytes; accented names
		// must not shift the bounds
		if length := utf8.RuneCountInString(value); length < nameMinLen || length > nameMaxLen {
			return &Prompt{Text: fmt.Sprintf("Il valore deve essere lungo tra %d e %d caratteri. Riprova.", nameMinLen, nameMaxLen)}
		}
		if session.FieldIndex == fieldName {
			session.FirstName = value
		} else {
			session.LastName = value
		}

	case fieldEmail:
		email := strings.ToLower(value)
		exists, err := e.repository.CheckEmailExists(ctx, &campus.CheckEmailExistsInput{
			Email: email,
		})
		if err != nil {
			e.logger.Error("email uniqueness check failed", zap.Error(err))
			return e.failurePrompt()
		}
		if exists {
			return &Prompt{Text: "Questa email risulta gia' registrata. Inserisci un'altra email."}
		}
		session.Email = email
		value = email

	case fieldYear:
		year, err := strconv.Atoi(value)
		if err != nil || year < yearMin || year > yearMax {
			return &Prompt{Text: fmt.Sprintf("L'anno deve essere un numero tra %d e %d. Riprova.", yearMin, yearMax)}
		}
		session.Year = year

	default:
		return e.fallbackPrompt()
	}

	session.State = models.StateConfirming
	return confirmPrompt(value)
}

// handleConfirmChoice advances the field pointer on confirm or discards
// the just-entered value on back
func (e *engine) handleConfirmChoice(ctx context.Context, session *models.ChatSession, payload string) *Prompt {
	switch payload {
	case tokenConfirm:
		return e.advanceField(ctx, session)
	case tokenBack:
		return e.discardField(ctx, session)
	}
	return confirmPrompt(currentFieldValue(session))
}

// advanceField moves the pointer one position forward and enters
// whatever the next field requires. Past the last field the collected
// user is persisted in one call.
func (e *engine) advanceField(ctx context.Context, session *models.ChatSession) *Prompt {
	session.FieldIndex++

	switch session.FieldIndex {
	case fieldSurname, fieldEmail, fieldYear:
		session.State = models.StateRegistering
		return promptForField(session.FieldIndex)
	case fieldEmailVerify:
		return e.enterEmailVerify(ctx, session)
	case fieldCourse:
		return e.enterCourseSelection(ctx, session)
	case fieldCount:
		return e.persistUser(ctx, session)
	}

	return e.fallbackPrompt()
}

// discardField drops the value being confirmed and re-collects the same
// field; the pointer never moves back past it
func (e *engine) discardField(ctx context.Context, session *models.ChatSession) *Prompt {
	switch session.FieldIndex {
	case fieldName:
		session.FirstName = ""
	case fieldSurname:
		session.LastName = ""
	case fieldEmail:
		session.Email = ""
	case fieldCourse:
		session.Course = ""
		return e.enterCourseSelection(ctx, session)
	case fieldYear:
		session.Year = 0
	}

	session.State = models.StateRegistering
	return promptForField(session.FieldIndex)
}

// enterEmailVerify issues a verification code for the confirmed email.
// A non-institutional address steps the pointer back to the email field
// instead of advancing; this is the one asymmetric transition.
func (e *engine) enterEmailVerify(ctx context.Context, session *models.ChatSession) *Prompt {
	_, err := e.verification.Issue(ctx, &verification.IssueInput{
		ChatID: session.ChatID,
		Email:  session.Email,
	})
	if err != nil {
		if errors.Is(err, verification.ErrInvalidDomain) {
			session.Email = ""
			session.FieldIndex = fieldEmail
			session.State = models.StateRegistering
			return &Prompt{Text: "L'email non appartiene al dominio istituzionale. Inserisci di nuovo la tua email."}
		}

		e.logger.Error("failed to issue verification code", zap.Error(err))
		session.FieldIndex = fieldEmail
		session.State = models.StateConfirming
		return e.failureConfirmPrompt()
	}

	session.State = models.StateEmailVerifying
	return &Prompt{Text: "Ti abbiamo inviato un codice di verifica via email. Inseriscilo qui."}
}

// handleRegistrationCode checks the submitted code. The code is one-shot:
// any mismatch also invalidates the email and returns to email entry.
func (e *engine) handleRegistrationCode(ctx context.Context, session *models.ChatSession, payload string) *Prompt {
	out, err := e.verification.Check(ctx, &verification.CheckInput{
		ChatID:    session.ChatID,
		Submitted: payload,
	})
	if err != nil {
		e.logger.Error("failed to check verification code", zap.Error(err))
		return e.failurePrompt()
	}

	if !out.Matched {
		session.Email = ""
		session.FieldIndex = fieldEmail
		session.State = models.StateRegistering
		return &Prompt{Text: "Codice errato. Inserisci di nuovo la tua email."}
	}

	return e.enterCourseSelection(ctx, session)
}

// enterCourseSelection presents the degree courses as a 2-per-row grid.
// When the course list cannot be fetched the session stays on course
// selection with a retry button, so an edited-in-place screen is never
// left without a way forward.
func (e *engine) enterCourseSelection(ctx context.Context, session *models.ChatSession) *Prompt {
	session.FieldIndex = fieldCourse
	session.State = models.StateCourseSelecting

	courses, err := e.repository.ListCourses(ctx)
	if err != nil {
		e.logger.Error("failed to list courses", zap.Error(err))
		prompt := e.failurePrompt()
		prompt.Choices = []Choice{
			{Label: "Riprova", Token: tokenRetry},
		}
		return prompt
	}

	return coursePrompt(courses)
}

func coursePrompt(courses []string) *Prompt {
	choices := make([]Choice, 0, len(courses))
	for _, course := range courses {
		choices = append(choices, Choice{Label: course, Token: course})
	}
	return &Prompt{
		Text:    "Seleziona il tuo corso di laurea",
		Choices: choices,
		Columns: 2,
	}
}

// handleCourseChoice sets the course field and immediately enters
// Confirming; there is no free-text entry for this field
func (e *engine) handleCourseChoice(ctx context.Context, session *models.ChatSession, payload string) *Prompt {
	if payload == tokenRetry {
		return e.enterCourseSelection(ctx, session)
	}

	courses, err := e.repository.ListCourses(ctx)
	if err != nil {
		e.logger.Error("failed to list courses", zap.Error(err))
		return e.failurePrompt()
	}

	valid := false
	for _, course := range courses {
		if course == payload {
			valid = true
			break
		}
	}
	if !valid {
		return coursePrompt(courses)
	}

	session.Course = payload
	session.State = models.StateConfirming
	return confirmPrompt(payload)
}

// persistUser writes the fully collected user in one call and ends the
// registration session
func (e *engine) persistUser(ctx context.Context, session *models.ChatSession) *Prompt {
	err := e.repository.InsertUser(ctx, &campus.InsertUserInput{
		User: &models.User{
			Email:     session.Email,
			FirstName: session.FirstName,
			LastName:  session.LastName,
			Course:    session.Course,
			Year:      session.Year,
		},
	})
	if err != nil {
		if errors.Is(err, campus.ErrDuplicateEmail) {
			session.Email = ""
			session.FieldIndex = fieldEmail
			session.State = models.StateRegistering
			return &Prompt{Text: "Questa email risulta gia' registrata. Inserisci un'altra email."}
		}

		e.logger.Error("failed to persist user", zap.Error(err))
		session.FieldIndex = fieldYear
		session.State = models.StateConfirming
		return e.failureConfirmPrompt()
	}

	e.logger.Info("user registered", zap.Int64("chat_id", session.ChatID))
	e.sessions.Reset(session)
	return &Prompt{Text: "Registrazione completata! Usa /start per accedere."}
}

// currentFieldValue renders the value being confirmed for re-prompts
func currentFieldValue(session *models.ChatSession) string {
	switch session.FieldIndex {
	case fieldName:
		return session.FirstName
	case fieldSurname:
		return session.LastName
	case fieldEmail:
		return session.Email
	case fieldCourse:
		return session.Course
	case fieldYear:
		return strconv.Itoa(session.Year)
	}
	return ""
}
