package conversation

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"lessonbot/internal/models"
	"lessonbot/internal/services/booking"
)

// mainMenuPrompt greets the logged-in user with the top-level actions
func (e *engine) mainMenuPrompt(session *models.ChatSession) *Prompt {
	session.State = models.StateMainMenu
	return &Prompt{
		Text: fmt.Sprintf("Ciao %s! Cosa vuoi fare?", session.FirstName),
		Choices: []Choice{
			{Label: "Lezioni", Token: tokenLessons},
			{Label: "Le mie prenotazioni", Token: tokenBookings},
		},
	}
}

func (e *engine) handleMainMenuChoice(ctx context.Context, session *models.ChatSession, payload string) *Prompt {
	switch payload {
	case tokenLessons:
		return e.showLessonList(ctx, session)
	case tokenBookings:
		return e.showBookingsList(ctx, session)
	}
	return e.mainMenuPrompt(session)
}

// showLessonList lists the week's lessons, one button per lesson,
// recomputed on every call
func (e *engine) showLessonList(ctx context.Context, session *models.ChatSession) *Prompt {
	out, err := e.booking.ListUpcoming(ctx, &booking.ListUpcomingInput{
		Email: session.Email,
	})
	if err != nil {
		e.logger.Error("failed to list upcoming lessons", zap.Error(err))
		return e.failurePrompt()
	}

	session.State = models.StateBrowsing

	if len(out.Lessons) == 0 {
		return &Prompt{
			Text: "Nessuna lezione disponibile nei prossimi 7 giorni.",
			Choices: []Choice{
				{Label: "Menu", Token: tokenMenu},
			},
		}
	}

	choices := make([]Choice, 0, len(out.Lessons)+1)
	for _, lesson := range out.Lessons {
		choices = append(choices, Choice{
			Label: lessonButtonLabel(lesson),
			Token: lessonTokenPrefix + strconv.FormatInt(lesson.ID, 10),
		})
	}
	choices = append(choices, Choice{Label: "Menu", Token: tokenMenu})

	return &Prompt{
		Text:    "Lezioni della settimana:",
		Choices: choices,
	}
}

func lessonButtonLabel(lesson *models.Lesson) string {
	return fmt.Sprintf("%s ⌚ %s | %s", lesson.Date.Format("02/01"), lesson.StartTime, lesson.Subject)
}

func (e *engine) handleBrowsingChoice(ctx context.Context, session *models.ChatSession, payload string) *Prompt {
	switch {
	case payload == tokenMenu:
		return e.mainMenuPrompt(session)
	case strings.HasPrefix(payload, lessonTokenPrefix):
		lessonID, err := strconv.ParseInt(strings.TrimPrefix(payload, lessonTokenPrefix), 10, 64)
		if err != nil {
			return e.fallbackPrompt()
		}
		return e.showLesson(ctx, session, lessonID, "")
	}
	return e.fallbackPrompt()
}

// showLesson renders the lesson detail with the action fitting the
// user's standing: book when seats remain, view when already booked
func (e *engine) showLesson(ctx context.Context, session *models.ChatSession, lessonID int64, notice string) *Prompt {
	lesson, err := e.booking.GetLesson(ctx, &booking.GetLessonInput{
		LessonID: lessonID,
	})
	if err != nil {
		e.logger.Error("failed to load lesson", zap.Error(err))
		return e.failurePrompt()
	}

	booked, err := e.booking.IsBooked(ctx, &booking.IsBookedInput{
		Email:    session.Email,
		LessonID: lessonID,
	})
	if err != nil {
		e.logger.Error("failed to look up booking", zap.Error(err))
		return e.failurePrompt()
	}

	session.State = models.StateLessonView

	var b strings.Builder
	if notice != "" {
		b.WriteString(notice)
		b.WriteString("\n\n")
	}
	b.WriteString(lessonDetailText(lesson))

	choices := make([]Choice, 0, 3)
	switch {
	case booked.Booked:
		choices = append(choices, Choice{
			Label: "Vedi prenotazione",
			Token: bookingTokenPrefix + booked.BookingID,
		})
	case lesson.Seats > 0:
		choices = append(choices, Choice{
			Label: "Prenota",
			Token: bookTokenPrefix + strconv.FormatInt(lesson.ID, 10),
		})
	default:
		b.WriteString("\n\nPosti esauriti.")
	}
	choices = append(choices,
		Choice{Label: "Indietro", Token: tokenLessons},
		Choice{Label: "Menu", Token: tokenMenu},
	)

	return &Prompt{Text: b.String(), Choices: choices}
}

func lessonDetailText(lesson *models.Lesson) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", lesson.Subject)
	fmt.Fprintf(&b, "Data: %s\n", lesson.Date.Format("02/01/2006"))
	fmt.Fprintf(&b, "Orario: %s - %s\n", lesson.StartTime, lesson.EndTime)
	fmt.Fprintf(&b, "Aula: %s\n", lesson.Room)
	fmt.Fprintf(&b, "Docente: %s %s\n", lesson.ProfessorFirst, lesson.ProfessorLast)
	if lesson.Description != "" {
		fmt.Fprintf(&b, "%s\n", lesson.Description)
	}
	fmt.Fprintf(&b, "Posti rimasti: %d", lesson.Seats)
	return b.String()
}

func (e *engine) handleLessonViewChoice(ctx context.Context, session *models.ChatSession, payload string) *Prompt {
	switch {
	case payload == tokenMenu:
		return e.mainMenuPrompt(session)
	case payload == tokenLessons:
		return e.showLessonList(ctx, session)
	case strings.HasPrefix(payload, bookTokenPrefix):
		lessonID, err := strconv.ParseInt(strings.TrimPrefix(payload, bookTokenPrefix), 10, 64)
		if err != nil {
			return e.fallbackPrompt()
		}
		return e.reserveSeat(ctx, session, lessonID)
	case strings.HasPrefix(payload, bookingTokenPrefix):
		return e.showBooking(ctx, session, strings.TrimPrefix(payload, bookingTokenPrefix), "")
	}
	return e.fallbackPrompt()
}

// reserveSeat books the lesson for the logged-in user. Losing the last
// seat to another user re-renders the lesson with the exhaustion
// notice; a duplicate attempt lands on the existing booking.
func (e *engine) reserveSeat(ctx context.Context, session *models.ChatSession, lessonID int64) *Prompt {
	out, err := e.booking.Reserve(ctx, &booking.ReserveInput{
		Email:    session.Email,
		LessonID: lessonID,
	})
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrNoSeatsLeft):
			return e.showLesson(ctx, session, lessonID, "Posti esauriti, qualcuno ti ha preceduto.")
		case errors.Is(err, booking.ErrAlreadyBooked):
			existing, lookupErr := e.booking.IsBooked(ctx, &booking.IsBookedInput{
				Email:    session.Email,
				LessonID: lessonID,
			})
			if lookupErr == nil && existing.Booked {
				return e.showBooking(ctx, session, existing.BookingID, "Hai gia' prenotato questa lezione.")
			}
			return e.showLesson(ctx, session, lessonID, "Hai gia' prenotato questa lezione.")
		}

		e.logger.Error("failed to reserve seat", zap.Error(err))
		return e.failurePrompt()
	}

	return e.showBooking(ctx, session, out.Booking.ID, "Prenotazione effettuata!")
}

// showBookingsList lists the user's bookings, one button per booking
func (e *engine) showBookingsList(ctx context.Context, session *models.ChatSession) *Prompt {
	out, err := e.booking.ListBookings(ctx, &booking.ListBookingsInput{
		Email: session.Email,
	})
	if err != nil {
		e.logger.Error("failed to list bookings", zap.Error(err))
		return e.failurePrompt()
	}

	session.State = models.StateBookingsList

	if len(out.Bookings) == 0 {
		return &Prompt{
			Text: "Non hai prenotazioni attive.",
			Choices: []Choice{
				{Label: "Menu", Token: tokenMenu},
			},
		}
	}

	choices := make([]Choice, 0, len(out.Bookings)+1)
	for _, bk := range out.Bookings {
		label := "Prenotazione"
		lesson, lessonErr := e.booking.GetLesson(ctx, &booking.GetLessonInput{
			LessonID: bk.LessonID,
		})
		if lessonErr == nil {
			label = lessonButtonLabel(lesson)
		}
		choices = append(choices, Choice{
			Label: label,
			Token: bookingTokenPrefix + bk.ID,
		})
	}
	choices = append(choices, Choice{Label: "Menu", Token: tokenMenu})

	return &Prompt{
		Text:    "Le tue prenotazioni:",
		Choices: choices,
	}
}

func (e *engine) handleBookingsListChoice(ctx context.Context, session *models.ChatSession, payload string) *Prompt {
	switch {
	case payload == tokenMenu:
		return e.mainMenuPrompt(session)
	case strings.HasPrefix(payload, bookingTokenPrefix):
		return e.showBooking(ctx, session, strings.TrimPrefix(payload, bookingTokenPrefix), "")
	}
	return e.fallbackPrompt()
}

// showBooking renders the booking detail with its cancel action
func (e *engine) showBooking(ctx context.Context, session *models.ChatSession, bookingID string, notice string) *Prompt {
	bk, err := e.booking.GetBooking(ctx, &booking.GetBookingInput{
		BookingID: bookingID,
	})
	if err != nil {
		e.logger.Error("failed to load booking", zap.Error(err))
		return e.failurePrompt()
	}

	lesson, err := e.booking.GetLesson(ctx, &booking.GetLessonInput{
		LessonID: bk.LessonID,
	})
	if err != nil {
		e.logger.Error("failed to load booked lesson", zap.Error(err))
		return e.failurePrompt()
	}

	session.State = models.StateBookingView

	var b strings.Builder
	if notice != "" {
		b.WriteString(notice)
		b.WriteString("\n\n")
	}
	b.WriteString("La tua prenotazione:\n\n")
	b.WriteString(lessonDetailText(lesson))

	return &Prompt{
		Text: b.String(),
		Choices: []Choice{
			{Label: "Annulla prenotazione", Token: cancelTokenPrefix + bk.ID},
			{Label: "Menu", Token: tokenMenu},
		},
	}
}

func (e *engine) handleBookingViewChoice(ctx context.Context, session *models.ChatSession, payload string) *Prompt {
	switch {
	case payload == tokenMenu:
		return e.mainMenuPrompt(session)
	case strings.HasPrefix(payload, cancelTokenPrefix):
		return e.cancelBooking(ctx, session, strings.TrimPrefix(payload, cancelTokenPrefix))
	}
	return e.fallbackPrompt()
}

// cancelBooking releases the seat and returns to the main menu
func (e *engine) cancelBooking(ctx context.Context, session *models.ChatSession, bookingID string) *Prompt {
	err := e.booking.Release(ctx, &booking.ReleaseInput{
		BookingID: bookingID,
	})
	if err != nil {
		e.logger.Error("failed to cancel booking", zap.Error(err))
		return e.failurePrompt()
	}

	prompt := e.mainMenuPrompt(session)
	prompt.Text = "Prenotazione annullata.\n\n" + prompt.Text
	return prompt
}
