package conversation

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"lessonbot/internal/models"
	"lessonbot/internal/repositories/campus"
	"lessonbot/internal/services/verification"
)

// handleLoginEmail starts the login verification for a registered email.
// An unregistered address ends the conversation with a registration
// hint.
func (e *engine) handleLoginEmail(ctx context.Context, session *models.ChatSession, payload string) *Prompt {
	email := strings.ToLower(strings.TrimSpace(payload))

	exists, err := e.repository.CheckEmailExists(ctx, &campus.CheckEmailExistsInput{
		Email: email,
	})
	if err != nil {
		e.logger.Error("email lookup failed", zap.Error(err))
		return e.failurePrompt()
	}
	if !exists {
		e.sessions.Reset(session)
		return &Prompt{Text: "Questa email non risulta registrata. Usa /start e registrati prima di accedere."}
	}

	_, err = e.verification.Issue(ctx, &verification.IssueInput{
		ChatID: session.ChatID,
		Email:  email,
	})
	if err != nil {
		if errors.Is(err, verification.ErrInvalidDomain) {
			return &Prompt{Text: "L'email non appartiene al dominio istituzionale. Inserisci di nuovo la tua email."}
		}

		e.logger.Error("failed to issue login code", zap.Error(err))
		return e.failurePrompt()
	}

	session.Email = email
	session.State = models.StateLoginVerifying
	return &Prompt{Text: "Ti abbiamo inviato un codice di verifica via email. Inseriscilo qui."}
}

// handleLoginCode checks the submitted login code and lands the user on
// the main menu with their persisted profile loaded
func (e *engine) handleLoginCode(ctx context.Context, session *models.ChatSession, payload string) *Prompt {
	out, err := e.verification.Check(ctx, &verification.CheckInput{
		ChatID:    session.ChatID,
		Submitted: payload,
	})
	if err != nil {
		e.logger.Error("failed to check login code", zap.Error(err))
		return e.failurePrompt()
	}

	if !out.Matched {
		session.Email = ""
		session.State = models.StateLoginEmail
		return &Prompt{Text: "Codice errato. Inserisci di nuovo la tua email."}
	}

	user, err := e.repository.GetUserInfo(ctx, &campus.GetUserInfoInput{
		Email: session.Email,
	})
	if err != nil {
		e.logger.Error("failed to load user profile", zap.Error(err))
		session.Email = ""
		session.State = models.StateLoginEmail
		return e.failurePrompt()
	}

	session.FirstName = user.FirstName
	session.LastName = user.LastName
	session.Course = user.Course
	session.Year = user.Year
	session.State = models.StateMainMenu

	e.logger.Info("user logged in", zap.Int64("chat_id", session.ChatID))
	return e.mainMenuPrompt(session)
}
