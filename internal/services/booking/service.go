package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"lessonbot/internal/common/clock"
	"lessonbot/internal/common/uuid"
	"lessonbot/internal/models"
	"lessonbot/internal/repositories/campus"
)

// service implements the Service interface
type service struct {
	repository campus.Repository
	clock      clock.Clock
	uuider     uuid.UUID
	windowDays int
	logger     *zap.Logger
}

// New creates a new booking service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Repository == nil {
		return nil, ErrNilRepository
	}

	clk := cfg.Clock
	if clk == nil {
		clk = &clock.DefaultClock{}
	}

	uuider := cfg.UUIDer
	if uuider == nil {
		uuider = uuid.New()
	}

	windowDays := cfg.WindowDays
	if windowDays <= 0 {
		windowDays = 7
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &service{
		repository: cfg.Repository,
		clock:      clk,
		uuider:     uuider,
		windowDays: windowDays,
		logger:     logger,
	}, nil
}

// ListUpcoming retrieves the lessons the user can attend over the window
func (s *service) ListUpcoming(ctx context.Context, input *ListUpcomingInput) (*ListUpcomingOutput, error) {
	if input == nil || input.Email == "" {
		return nil, errors.New("input and email cannot be empty")
	}

	user, err := s.repository.GetUserInfo(ctx, &campus.GetUserInfoInput{
		Email: input.Email,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load user profile: %w", err)
	}

	now := s.clock.Now()
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	to := from.AddDate(0, 0, s.windowDays)

	out, err := s.repository.ListLessons(ctx, &campus.ListLessonsInput{
		Course: user.Course,
		Year:   user.Year,
		From:   from,
		To:     to,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list lessons: %w", err)
	}

	return &ListUpcomingOutput{
		Lessons: out.Lessons,
	}, nil
}

// Reserve takes a seat on a lesson and records the booking
func (s *service) Reserve(ctx context.Context, input *ReserveInput) (*ReserveOutput, error) {
	if input == nil || input.Email == "" {
		return nil, errors.New("input and email cannot be empty")
	}

	booking := &models.Booking{
		ID:        s.uuider.NewUUID(),
		CreatedAt: s.clock.Now(),
		LessonID:  input.LessonID,
		UserEmail: input.Email,
	}

	err := s.repository.InsertBooking(ctx, &campus.InsertBookingInput{
		Booking: booking,
	})
	if err != nil {
		switch {
		case errors.Is(err, campus.ErrCapacityExhausted):
			return nil, ErrNoSeatsLeft
		case errors.Is(err, campus.ErrDuplicateBooking):
			return nil, ErrAlreadyBooked
		}
		return nil, fmt.Errorf("failed to insert booking: %w", err)
	}

	s.logger.Info("seat reserved",
		zap.String("booking_id", booking.ID),
		zap.Int64("lesson_id", booking.LessonID))

	return &ReserveOutput{
		Booking: booking,
	}, nil
}

// Release cancels a booking and gives its seat back
func (s *service) Release(ctx context.Context, input *ReleaseInput) error {
	if input == nil || input.BookingID == "" {
		return errors.New("input and booking ID cannot be empty")
	}

	booking, err := s.repository.GetBooking(ctx, &campus.GetBookingInput{
		BookingID: input.BookingID,
	})
	if err != nil {
		return fmt.Errorf("failed to load booking: %w", err)
	}

	err = s.repository.CancelBooking(ctx, &campus.CancelBookingInput{
		BookingID: booking.ID,
		LessonID:  booking.LessonID,
	})
	if err != nil {
		return fmt.Errorf("failed to cancel booking: %w", err)
	}

	s.logger.Info("seat released",
		zap.String("booking_id", booking.ID),
		zap.Int64("lesson_id", booking.LessonID))

	return nil
}

// IsBooked reports whether the user holds a booking for a lesson
func (s *service) IsBooked(ctx context.Context, input *IsBookedInput) (*IsBookedOutput, error) {
	if input == nil || input.Email == "" {
		return nil, errors.New("input and email cannot be empty")
	}

	out, err := s.repository.IsUserBooked(ctx, &campus.IsUserBookedInput{
		Email:    input.Email,
		LessonID: input.LessonID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to look up booking: %w", err)
	}

	return &IsBookedOutput{
		Booked:    out.Booked,
		BookingID: out.BookingID,
	}, nil
}

// GetLesson retrieves a lesson by id
func (s *service) GetLesson(ctx context.Context, input *GetLessonInput) (*models.Lesson, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	return s.repository.GetLesson(ctx, &campus.GetLessonInput{
		LessonID: input.LessonID,
	})
}

// GetBooking retrieves a booking by id
func (s *service) GetBooking(ctx context.Context, input *GetBookingInput) (*models.Booking, error) {
	if input == nil || input.BookingID == "" {
		return nil, errors.New("input and booking ID cannot be empty")
	}

	return s.repository.GetBooking(ctx, &campus.GetBookingInput{
		BookingID: input.BookingID,
	})
}

// ListBookings retrieves all bookings held by a user
func (s *service) ListBookings(ctx context.Context, input *ListBookingsInput) (*ListBookingsOutput, error) {
	if input == nil || input.Email == "" {
		return nil, errors.New("input and email cannot be empty")
	}

	out, err := s.repository.ListBookings(ctx, &campus.ListBookingsInput{
		Email: input.Email,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	return &ListBookingsOutput{
		Bookings: out.Bookings,
	}, nil
}
