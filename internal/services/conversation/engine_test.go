package conversation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"lessonbot/internal/models"
	"lessonbot/internal/repositories/campus"
	campusMocks "lessonbot/internal/repositories/campus/mocks"
	"lessonbot/internal/services/booking"
	bookingMocks "lessonbot/internal/services/booking/mocks"
	"lessonbot/internal/services/verification"
	verificationMocks "lessonbot/internal/services/verification/mocks"
	"lessonbot/internal/sessions"
)

type ConversationEngineTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockRepo         *campusMocks.MockRepository
	mockVerification *verificationMocks.MockService
	mockBooking      *bookingMocks.MockService
	store            *sessions.Store
	engine           *engine
	ctx              context.Context

	// Fixtures
	testChatID  int64
	testEmail   string
	testCourses []string
	testUser    *models.User
	testLesson  *models.Lesson
}

func TestConversationEngineTestSuite(t *testing.T) {
	suite.Run(t, new(ConversationEngineTestSuite))
}

func (s *ConversationEngineTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = campusMocks.NewMockRepository(s.ctrl)
	s.mockVerification = verificationMocks.NewMockService(s.ctrl)
	s.mockBooking = bookingMocks.NewMockService(s.ctrl)
	s.store = sessions.New(nil)
	s.ctx = context.Background()

	s.testChatID = int64(4242)
	s.testEmail = "user@studenti.unipg.it"
	s.testCourses = []string{"Informatica", "Matematica", "Fisica"}
	s.testUser = &models.User{
		Email:     s.testEmail,
		FirstName: "Alice",
		LastName:  "Rossi",
		Course:    "Informatica",
		Year:      2,
	}
	s.testLesson = &models.Lesson{
		ID:        7,
		Date:      time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC),
		StartTime: "09:00",
		EndTime:   "11:00",
		Seats:     3,
		Subject:   "Analisi Matematica",
		Room:      "A2",
		Course:    "Informatica",
		Year:      2,
	}

	eng, err := New(&Config{
		Sessions:     s.store,
		Repository:   s.mockRepo,
		Verification: s.mockVerification,
		Booking:      s.mockBooking,
	})
	s.Require().NoError(err)
	s.engine = eng
}

func (s *ConversationEngineTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

// send pushes one intent through the engine and returns the prompt
func (s *ConversationEngineTestSuite) send(kind IntentKind, payload string) *Prompt {
	out, err := s.engine.HandleIntent(s.ctx, &HandleIntentInput{
		Intent: &Intent{
			ChatID:  s.testChatID,
			Kind:    kind,
			Payload: payload,
		},
	})
	s.Require().NoError(err)
	s.Require().NotNil(out)
	s.Require().NotNil(out.Prompt)
	return out.Prompt
}

func (s *ConversationEngineTestSuite) sessionState() models.ConversationState {
	session, release := s.store.Acquire(s.testChatID)
	defer release()
	return session.State
}

func (s *ConversationEngineTestSuite) tokens(prompt *Prompt) []string {
	tokens := make([]string, 0, len(prompt.Choices))
	for _, c := range prompt.Choices {
		tokens = append(tokens, c.Token)
	}
	return tokens
}

// walkToEmailEntry drives a fresh session to the email field
func (s *ConversationEngineTestSuite) walkToEmailEntry() {
	s.send(IntentChoice, tokenRegister)
	s.send(IntentText, "Alice")
	s.send(IntentChoice, tokenConfirm)
	s.send(IntentText, "Rossi")
	s.send(IntentChoice, tokenConfirm)
}

func (s *ConversationEngineTestSuite) TestNew_Validation() {
	_, err := New(nil)
	s.Require().ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{Sessions: s.store})
	s.Require().ErrorIs(err, ErrNilRepository)
}

func (s *ConversationEngineTestSuite) TestStart_TextFallsBack() {
	prompt := s.send(IntentText, "ciao")
	s.Contains(prompt.Text, "pulsanti")
	s.Equal(models.StateStart, s.sessionState())
}

func (s *ConversationEngineTestSuite) TestStart_RegisterChoice() {
	prompt := s.send(IntentChoice, tokenRegister)
	s.Contains(prompt.Text, "nome")
	s.Equal(models.StateRegistering, s.sessionState())
}

func (s *ConversationEngineTestSuite) TestRegistration_ShortNameRejected() {
	s.send(IntentChoice, tokenRegister)

	prompt := s.send(IntentText, "Al")
	s.Contains(prompt.Text, "tra 3 e 20")
	s.Equal(models.StateRegistering, s.sessionState())

	// Same field is still being collected
	prompt = s.send(IntentText, "Alice")
	s.Contains(prompt.Text, "Alice")
	s.Equal(models.StateConfirming, s.sessionState())
}

func (s *ConversationEngineTestSuite) TestRegistration_NameLengthCountsCharacters() {
	s.send(IntentChoice, tokenRegister)

	// Two characters in three bytes is still too short
	prompt := s.send(IntentText, "Lù")
	s.Contains(prompt.Text, "tra 3 e 20")
	s.Equal(models.StateRegistering, s.sessionState())

	// Twenty characters holding an accent exceed twenty bytes but fit
	prompt = s.send(IntentText, "Àbcdefghijklmnopqrst")
	s.Contains(prompt.Text, "Àbcdefghijklmnopqrst")
	s.Equal(models.StateConfirming, s.sessionState())
}

func (s *ConversationEngineTestSuite) TestRegistration_BackRecollectsSameField() {
	s.send(IntentChoice, tokenRegister)
	s.send(IntentText, "Alice")
	s.send(IntentChoice, tokenConfirm)
	s.send(IntentText, "Rossi")

	prompt := s.send(IntentChoice, tokenBack)
	s.Contains(prompt.Text, "cognome")
	s.Equal(models.StateRegistering, s.sessionState())

	// The discarded value is gone; the pointer never moved
	session, release := s.store.Acquire(s.testChatID)
	s.Empty(session.LastName)
	s.Equal("Alice", session.FirstName)
	release()

	prompt = s.send(IntentText, "Bianchi")
	s.Contains(prompt.Text, "Bianchi")
}

func (s *ConversationEngineTestSuite) TestRegistration_DuplicateEmailRejected() {
	s.walkToEmailEntry()

	s.mockRepo.EXPECT().CheckEmailExists(s.ctx, &campus.CheckEmailExistsInput{
		Email: s.testEmail,
	}).Return(true, nil)

	prompt := s.send(IntentText, s.testEmail)
	s.Contains(prompt.Text, "gia' registrata")
	s.Equal(models.StateRegistering, s.sessionState())
}

func (s *ConversationEngineTestSuite) TestRegistration_InvalidDomainRollsBackToEmail() {
	s.walkToEmailEntry()

	s.mockRepo.EXPECT().CheckEmailExists(s.ctx, &campus.CheckEmailExistsInput{
		Email: "user@gmail.com",
	}).Return(false, nil)

	prompt := s.send(IntentText, "user@gmail.com")
	s.Contains(prompt.Text, "user@gmail.com")

	// Confirming the non-institutional address steps the pointer back to
	// the email field instead of advancing to verification
	s.mockVerification.EXPECT().Issue(s.ctx, &verification.IssueInput{
		ChatID: s.testChatID,
		Email:  "user@gmail.com",
	}).Return(nil, verification.ErrInvalidDomain)

	prompt = s.send(IntentChoice, tokenConfirm)
	s.Contains(prompt.Text, "dominio istituzionale")
	s.Equal(models.StateRegistering, s.sessionState())

	session, release := s.store.Acquire(s.testChatID)
	s.Empty(session.Email)
	release()
}

func (s *ConversationEngineTestSuite) TestRegistration_CodeMismatchReturnsToEmail() {
	s.walkToEmailEntry()

	s.mockRepo.EXPECT().CheckEmailExists(s.ctx, gomock.Any()).Return(false, nil)
	s.mockVerification.EXPECT().Issue(s.ctx, gomock.Any()).
		Return(&verification.IssueOutput{Code: 54321}, nil)

	s.send(IntentText, s.testEmail)
	s.send(IntentChoice, tokenConfirm)
	s.Equal(models.StateEmailVerifying, s.sessionState())

	s.mockVerification.EXPECT().Check(s.ctx, &verification.CheckInput{
		ChatID:    s.testChatID,
		Submitted: "11111",
	}).Return(&verification.CheckOutput{Matched: false}, nil)

	prompt := s.send(IntentText, "11111")
	s.Contains(prompt.Text, "Codice errato")
	s.Equal(models.StateRegistering, s.sessionState())

	// Email binding is invalidated along with the code
	session, release := s.store.Acquire(s.testChatID)
	s.Empty(session.Email)
	release()
}

// TestRegistration_FullWalk drives the complete scenario: a too-short
// name, a non-institutional email, then a clean run through code,
// course grid and year to a single persisted user.
func (s *ConversationEngineTestSuite) TestRegistration_FullWalk() {
	s.send(IntentChoice, tokenRegister)

	prompt := s.send(IntentText, "Al")
	s.Contains(prompt.Text, "tra 3 e 20")

	s.send(IntentText, "Alice")
	s.send(IntentChoice, tokenConfirm)
	s.send(IntentText, "Rossi")
	s.send(IntentChoice, tokenConfirm)

	s.mockRepo.EXPECT().CheckEmailExists(s.ctx, gomock.Any()).Return(false, nil)
	s.send(IntentText, "user@gmail.com")

	s.mockVerification.EXPECT().Issue(s.ctx, gomock.Any()).
		Return(nil, verification.ErrInvalidDomain)
	prompt = s.send(IntentChoice, tokenConfirm)
	s.Contains(prompt.Text, "dominio istituzionale")

	s.mockRepo.EXPECT().CheckEmailExists(s.ctx, gomock.Any()).Return(false, nil)
	s.send(IntentText, s.testEmail)

	s.mockVerification.EXPECT().Issue(s.ctx, &verification.IssueInput{
		ChatID: s.testChatID,
		Email:  s.testEmail,
	}).Return(&verification.IssueOutput{Code: 54321}, nil)
	prompt = s.send(IntentChoice, tokenConfirm)
	s.Contains(prompt.Text, "codice di verifica")

	s.mockVerification.EXPECT().Check(s.ctx, &verification.CheckInput{
		ChatID:    s.testChatID,
		Submitted: "54321",
	}).Return(&verification.CheckOutput{Matched: true}, nil)
	s.mockRepo.EXPECT().ListCourses(s.ctx).Return(s.testCourses, nil)

	prompt = s.send(IntentText, "54321")
	s.Contains(prompt.Text, "corso di laurea")
	s.Equal(2, prompt.Columns)
	s.Equal([]string{"Informatica", "Matematica", "Fisica"}, s.tokens(prompt))

	s.mockRepo.EXPECT().ListCourses(s.ctx).Return(s.testCourses, nil)
	prompt = s.send(IntentChoice, "Informatica")
	s.Contains(prompt.Text, "Informatica")
	s.Equal(models.StateConfirming, s.sessionState())

	prompt = s.send(IntentChoice, tokenConfirm)
	s.Contains(prompt.Text, "anno di corso")

	prompt = s.send(IntentText, "5")
	s.Contains(prompt.Text, "tra 1 e 3")

	s.send(IntentText, "2")

	s.mockRepo.EXPECT().InsertUser(s.ctx, &campus.InsertUserInput{
		User: s.testUser,
	}).Return(nil)

	prompt = s.send(IntentChoice, tokenConfirm)
	s.Contains(prompt.Text, "Registrazione completata")
	s.Equal(models.StateStart, s.sessionState())
}

func (s *ConversationEngineTestSuite) TestRegistration_UnknownCourseReprompts() {
	s.walkToEmailEntry()

	s.mockRepo.EXPECT().CheckEmailExists(s.ctx, gomock.Any()).Return(false, nil)
	s.mockVerification.EXPECT().Issue(s.ctx, gomock.Any()).
		Return(&verification.IssueOutput{Code: 54321}, nil)
	s.send(IntentText, s.testEmail)
	s.send(IntentChoice, tokenConfirm)

	s.mockVerification.EXPECT().Check(s.ctx, gomock.Any()).
		Return(&verification.CheckOutput{Matched: true}, nil)
	s.mockRepo.EXPECT().ListCourses(s.ctx).Return(s.testCourses, nil).Times(2)

	s.send(IntentText, "54321")
	prompt := s.send(IntentChoice, "Giurisprudenza")
	s.Contains(prompt.Text, "corso di laurea")
	s.Equal(models.StateCourseSelecting, s.sessionState())
}

func (s *ConversationEngineTestSuite) TestRegistration_CourseListFailureOffersRetry() {
	s.walkToEmailEntry()

	s.mockRepo.EXPECT().CheckEmailExists(s.ctx, gomock.Any()).Return(false, nil)
	s.mockVerification.EXPECT().Issue(s.ctx, gomock.Any()).
		Return(&verification.IssueOutput{Code: 54321}, nil)
	s.send(IntentText, s.testEmail)
	s.send(IntentChoice, tokenConfirm)

	s.mockVerification.EXPECT().Check(s.ctx, gomock.Any()).
		Return(&verification.CheckOutput{Matched: true}, nil)
	gomock.InOrder(
		s.mockRepo.EXPECT().ListCourses(s.ctx).Return(nil, errors.New("database unavailable")),
		s.mockRepo.EXPECT().ListCourses(s.ctx).Return(s.testCourses, nil),
	)

	// The failure keeps the user on course selection with a retry
	// button instead of a dead-end screen
	prompt := s.send(IntentText, "54321")
	s.Contains(prompt.Text, "andato storto")
	s.Equal([]string{tokenRetry}, s.tokens(prompt))
	s.Equal(models.StateCourseSelecting, s.sessionState())

	prompt = s.send(IntentChoice, tokenRetry)
	s.Contains(prompt.Text, "corso di laurea")
	s.Equal(s.testCourses, s.tokens(prompt))
}

func (s *ConversationEngineTestSuite) TestLogin_HappyPath() {
	s.send(IntentChoice, tokenLogin)
	s.Equal(models.StateLoginEmail, s.sessionState())

	s.mockRepo.EXPECT().CheckEmailExists(s.ctx, &campus.CheckEmailExistsInput{
		Email: s.testEmail,
	}).Return(true, nil)
	s.mockVerification.EXPECT().Issue(s.ctx, &verification.IssueInput{
		ChatID: s.testChatID,
		Email:  s.testEmail,
	}).Return(&verification.IssueOutput{Code: 54321}, nil)

	prompt := s.send(IntentText, s.testEmail)
	s.Contains(prompt.Text, "codice di verifica")
	s.Equal(models.StateLoginVerifying, s.sessionState())

	s.mockVerification.EXPECT().Check(s.ctx, gomock.Any()).
		Return(&verification.CheckOutput{Matched: true}, nil)
	s.mockRepo.EXPECT().GetUserInfo(s.ctx, &campus.GetUserInfoInput{
		Email: s.testEmail,
	}).Return(s.testUser, nil)

	prompt = s.send(IntentText, "54321")
	s.Contains(prompt.Text, "Ciao Alice")
	s.Equal([]string{tokenLessons, tokenBookings}, s.tokens(prompt))
	s.Equal(models.StateMainMenu, s.sessionState())
}

func (s *ConversationEngineTestSuite) TestLogin_UnregisteredEmailEndsFlow() {
	s.send(IntentChoice, tokenLogin)

	s.mockRepo.EXPECT().CheckEmailExists(s.ctx, gomock.Any()).Return(false, nil)

	prompt := s.send(IntentText, "nobody@studenti.unipg.it")
	s.Contains(prompt.Text, "non risulta registrata")
	s.Equal(models.StateStart, s.sessionState())
}

func (s *ConversationEngineTestSuite) TestLogin_CodeMismatchReturnsToEmail() {
	s.send(IntentChoice, tokenLogin)

	s.mockRepo.EXPECT().CheckEmailExists(s.ctx, gomock.Any()).Return(true, nil)
	s.mockVerification.EXPECT().Issue(s.ctx, gomock.Any()).
		Return(&verification.IssueOutput{Code: 54321}, nil)
	s.send(IntentText, s.testEmail)

	s.mockVerification.EXPECT().Check(s.ctx, gomock.Any()).
		Return(&verification.CheckOutput{Matched: false}, nil)

	prompt := s.send(IntentText, "99999")
	s.Contains(prompt.Text, "Codice errato")
	s.Equal(models.StateLoginEmail, s.sessionState())
}

// login drives a fresh session to the main menu
func (s *ConversationEngineTestSuite) login() {
	s.send(IntentChoice, tokenLogin)
	s.mockRepo.EXPECT().CheckEmailExists(s.ctx, gomock.Any()).Return(true, nil)
	s.mockVerification.EXPECT().Issue(s.ctx, gomock.Any()).
		Return(&verification.IssueOutput{Code: 54321}, nil)
	s.send(IntentText, s.testEmail)
	s.mockVerification.EXPECT().Check(s.ctx, gomock.Any()).
		Return(&verification.CheckOutput{Matched: true}, nil)
	s.mockRepo.EXPECT().GetUserInfo(s.ctx, gomock.Any()).Return(s.testUser, nil)
	s.send(IntentText, "54321")
}

func (s *ConversationEngineTestSuite) TestMenu_LessonListAndDetail() {
	s.login()

	s.mockBooking.EXPECT().ListUpcoming(s.ctx, &booking.ListUpcomingInput{
		Email: s.testEmail,
	}).Return(&booking.ListUpcomingOutput{
		Lessons: []*models.Lesson{s.testLesson},
	}, nil)

	prompt := s.send(IntentChoice, tokenLessons)
	s.Equal(models.StateBrowsing, s.sessionState())
	s.Require().Len(prompt.Choices, 2)
	s.Equal("11/03 ⌚ 09:00 | Analisi Matematica", prompt.Choices[0].Label)
	s.Equal("lesson-7", prompt.Choices[0].Token)

	s.mockBooking.EXPECT().GetLesson(s.ctx, &booking.GetLessonInput{LessonID: 7}).
		Return(s.testLesson, nil)
	s.mockBooking.EXPECT().IsBooked(s.ctx, &booking.IsBookedInput{
		Email:    s.testEmail,
		LessonID: 7,
	}).Return(&booking.IsBookedOutput{Booked: false}, nil)

	prompt = s.send(IntentChoice, "lesson-7")
	s.Equal(models.StateLessonView, s.sessionState())
	s.Contains(prompt.Text, "Analisi Matematica")
	s.Contains(prompt.Text, "Posti rimasti: 3")
	s.Contains(s.tokens(prompt), "book-7")
}

func (s *ConversationEngineTestSuite) TestMenu_BookedLessonShowsBookingButton() {
	s.login()

	s.mockBooking.EXPECT().GetLesson(s.ctx, gomock.Any()).Return(s.testLesson, nil)
	s.mockBooking.EXPECT().IsBooked(s.ctx, gomock.Any()).
		Return(&booking.IsBookedOutput{Booked: true, BookingID: "bk-1"}, nil)
	s.mockBooking.EXPECT().ListUpcoming(s.ctx, gomock.Any()).
		Return(&booking.ListUpcomingOutput{Lessons: []*models.Lesson{s.testLesson}}, nil)

	s.send(IntentChoice, tokenLessons)
	prompt := s.send(IntentChoice, "lesson-7")
	s.Contains(s.tokens(prompt), "booking-bk-1")
	s.NotContains(s.tokens(prompt), "book-7")
}

func (s *ConversationEngineTestSuite) TestMenu_ReserveShowsBooking() {
	s.login()

	s.mockBooking.EXPECT().ListUpcoming(s.ctx, gomock.Any()).
		Return(&booking.ListUpcomingOutput{Lessons: []*models.Lesson{s.testLesson}}, nil)
	s.mockBooking.EXPECT().GetLesson(s.ctx, gomock.Any()).Return(s.testLesson, nil).Times(2)
	s.mockBooking.EXPECT().IsBooked(s.ctx, gomock.Any()).
		Return(&booking.IsBookedOutput{Booked: false}, nil)

	s.send(IntentChoice, tokenLessons)
	s.send(IntentChoice, "lesson-7")

	bk := &models.Booking{ID: "bk-1", LessonID: 7, UserEmail: s.testEmail}
	s.mockBooking.EXPECT().Reserve(s.ctx, &booking.ReserveInput{
		Email:    s.testEmail,
		LessonID: 7,
	}).Return(&booking.ReserveOutput{Booking: bk}, nil)
	s.mockBooking.EXPECT().GetBooking(s.ctx, &booking.GetBookingInput{BookingID: "bk-1"}).
		Return(bk, nil)

	prompt := s.send(IntentChoice, "book-7")
	s.Contains(prompt.Text, "Prenotazione effettuata")
	s.Contains(s.tokens(prompt), "cancel-bk-1")
	s.Equal(models.StateBookingView, s.sessionState())
}

func (s *ConversationEngineTestSuite) TestMenu_ReserveLosesLastSeat() {
	s.login()

	s.mockBooking.EXPECT().ListUpcoming(s.ctx, gomock.Any()).
		Return(&booking.ListUpcomingOutput{Lessons: []*models.Lesson{s.testLesson}}, nil)
	s.mockBooking.EXPECT().IsBooked(s.ctx, gomock.Any()).
		Return(&booking.IsBookedOutput{Booked: false}, nil).Times(2)

	full := *s.testLesson
	full.Seats = 0
	gomock.InOrder(
		s.mockBooking.EXPECT().GetLesson(s.ctx, gomock.Any()).Return(s.testLesson, nil),
		s.mockBooking.EXPECT().GetLesson(s.ctx, gomock.Any()).Return(&full, nil),
	)

	s.send(IntentChoice, tokenLessons)
	s.send(IntentChoice, "lesson-7")

	s.mockBooking.EXPECT().Reserve(s.ctx, gomock.Any()).
		Return(nil, booking.ErrNoSeatsLeft)

	prompt := s.send(IntentChoice, "book-7")
	s.Contains(prompt.Text, "qualcuno ti ha preceduto")
	s.Contains(prompt.Text, "Posti esauriti")
	s.Equal(models.StateLessonView, s.sessionState())
}

func (s *ConversationEngineTestSuite) TestMenu_CancelBooking() {
	s.login()

	bk := &models.Booking{ID: "bk-1", LessonID: 7, UserEmail: s.testEmail}
	s.mockBooking.EXPECT().ListBookings(s.ctx, &booking.ListBookingsInput{
		Email: s.testEmail,
	}).Return(&booking.ListBookingsOutput{Bookings: []*models.Booking{bk}}, nil)
	s.mockBooking.EXPECT().GetLesson(s.ctx, gomock.Any()).Return(s.testLesson, nil).Times(2)

	prompt := s.send(IntentChoice, tokenBookings)
	s.Equal(models.StateBookingsList, s.sessionState())
	s.Contains(s.tokens(prompt), "booking-bk-1")

	s.mockBooking.EXPECT().GetBooking(s.ctx, gomock.Any()).Return(bk, nil)
	prompt = s.send(IntentChoice, "booking-bk-1")
	s.Contains(s.tokens(prompt), "cancel-bk-1")

	s.mockBooking.EXPECT().Release(s.ctx, &booking.ReleaseInput{
		BookingID: "bk-1",
	}).Return(nil)

	prompt = s.send(IntentChoice, "cancel-bk-1")
	s.Contains(prompt.Text, "Prenotazione annullata")
	s.Equal(models.StateMainMenu, s.sessionState())
}

func (s *ConversationEngineTestSuite) TestCommand_StartRestartsAnywhere() {
	s.send(IntentChoice, tokenRegister)
	s.send(IntentText, "Alice")

	prompt := s.send(IntentText, commandStart)
	s.Contains(prompt.Text, "Benvenuto")
	s.Equal(models.StateStart, s.sessionState())

	session, release := s.store.Acquire(s.testChatID)
	s.Empty(session.FirstName)
	release()
}

func (s *ConversationEngineTestSuite) TestCommand_ExitInvalidatesPendingCode() {
	s.walkToEmailEntry()

	s.mockRepo.EXPECT().CheckEmailExists(s.ctx, gomock.Any()).Return(false, nil)
	s.mockVerification.EXPECT().Issue(s.ctx, gomock.Any()).
		Return(&verification.IssueOutput{Code: 54321}, nil)
	s.send(IntentText, s.testEmail)
	s.send(IntentChoice, tokenConfirm)

	s.mockVerification.EXPECT().Invalidate(s.ctx, &verification.InvalidateInput{
		ChatID: s.testChatID,
	}).Return(nil)

	prompt := s.send(IntentText, commandExit)
	s.Contains(prompt.Text, "A presto")
	s.Equal(models.StateStart, s.sessionState())
}

func (s *ConversationEngineTestSuite) TestCommand_ExitMidRegistration() {
	s.send(IntentChoice, tokenRegister)
	s.send(IntentText, "Alice")

	prompt := s.send(IntentText, commandExit)
	s.Contains(prompt.Text, "A presto")

	// The next contact starts from a clean slate
	prompt = s.send(IntentChoice, tokenRegister)
	s.Contains(prompt.Text, "nome")
}
