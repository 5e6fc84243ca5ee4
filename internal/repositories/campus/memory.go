package campus

import (
	"context"
	"errors"
	"sort"
	"sync"

	"lessonbot/internal/models"
)

// memoryRepository implements the Repository interface in memory.
// All operations run under one mutex, which gives InsertBooking and
// CancelBooking the same all-or-nothing semantics as the Postgres
// transactions. Used in tests and for local development without a
// database.
type memoryRepository struct {
	mu       sync.Mutex
	courses  []string
	users    map[string]*models.User
	lessons  map[int64]*models.Lesson
	bookings map[string]*models.Booking
}

// NewMemory creates a new in-memory campus repository
func NewMemory() *memoryRepository {
	return &memoryRepository{
		users:    make(map[string]*models.User),
		lessons:  make(map[int64]*models.Lesson),
		bookings: make(map[string]*models.Booking),
	}
}

// SeedCourses replaces the course list
func (r *memoryRepository) SeedCourses(courses []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.courses = append([]string(nil), courses...)
}

// SeedLesson adds or replaces a lesson
func (r *memoryRepository) SeedLesson(lesson *models.Lesson) {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *lesson
	r.lessons[lesson.ID] = &copied
}

// ListCourses retrieves the names of all degree courses
func (r *memoryRepository) ListCourses(ctx context.Context) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.courses...), nil
}

// CheckEmailExists reports whether a user with this email is registered
func (r *memoryRepository) CheckEmailExists(ctx context.Context, input *CheckEmailExistsInput) (bool, error) {
	if input == nil || input.Email == "" {
		return false, errors.New("input and email cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.users[input.Email]
	return ok, nil
}

// InsertUser persists a new user
func (r *memoryRepository) InsertUser(ctx context.Context, input *InsertUserInput) error {
	if input == nil || input.User == nil {
		return errors.New("input and user cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[input.User.Email]; ok {
		return ErrDuplicateEmail
	}

	copied := *input.User
	r.users[copied.Email] = &copied
	return nil
}

// GetUserInfo retrieves a registered user by email
func (r *memoryRepository) GetUserInfo(ctx context.Context, input *GetUserInfoInput) (*models.User, error) {
	if input == nil || input.Email == "" {
		return nil, errors.New("input and email cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[input.Email]
	if !ok {
		return nil, ErrUserNotFound
	}

	copied := *user
	return &copied, nil
}

// ListLessons retrieves the lessons for a course and year within a date window
func (r *memoryRepository) ListLessons(ctx context.Context, input *ListLessonsInput) (*ListLessonsOutput, error) {
	if input == nil || input.Course == "" {
		return nil, errors.New("input and course cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	var lessons []*models.Lesson
	for _, lesson := range r.lessons {
		if lesson.Course != input.Course || lesson.Year != input.Year {
			continue
		}
		if lesson.Date.Before(input.From) || lesson.Date.After(input.To) {
			continue
		}
		copied := *lesson
		lessons = append(lessons, &copied)
	}

	sort.Slice(lessons, func(i, j int) bool {
		if !lessons[i].Date.Equal(lessons[j].Date) {
			return lessons[i].Date.Before(lessons[j].Date)
		}
		return lessons[i].StartTime < lessons[j].StartTime
	})

	return &ListLessonsOutput{
		Lessons: lessons,
	}, nil
}

// GetLesson retrieves a lesson by id
func (r *memoryRepository) GetLesson(ctx context.Context, input *GetLessonInput) (*models.Lesson, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	lesson, ok := r.lessons[input.LessonID]
	if !ok {
		return nil, ErrLessonNotFound
	}

	copied := *lesson
	return &copied, nil
}

// IsUserBooked reports whether the user holds a booking for a lesson
func (r *memoryRepository) IsUserBooked(ctx context.Context, input *IsUserBookedInput) (*IsUserBookedOutput, error) {
	if input == nil || input.Email == "" {
		return nil, errors.New("input and email cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, booking := range r.bookings {
		if booking.UserEmail == input.Email && booking.LessonID == input.LessonID {
			return &IsUserBookedOutput{
				Booked:    true,
				BookingID: booking.ID,
			}, nil
		}
	}

	return &IsUserBookedOutput{Booked: false}, nil
}

// ListBookings retrieves all bookings held by a user
func (r *memoryRepository) ListBookings(ctx context.Context, input *ListBookingsInput) (*ListBookingsOutput, error) {
	if input == nil || input.Email == "" {
		return nil, errors.New("input and email cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	var bookings []*models.Booking
	for _, booking := range r.bookings {
		if booking.UserEmail == input.Email {
			copied := *booking
			bookings = append(bookings, &copied)
		}
	}

	sort.Slice(bookings, func(i, j int) bool {
		li, iok := r.lessons[bookings[i].LessonID]
		lj, jok := r.lessons[bookings[j].LessonID]
		if !iok || !jok {
			return bookings[i].ID < bookings[j].ID
		}
		if !li.Date.Equal(lj.Date) {
			return li.Date.Before(lj.Date)
		}
		return li.StartTime < lj.StartTime
	})

	return &ListBookingsOutput{
		Bookings: bookings,
	}, nil
}

// GetBooking retrieves a booking by id
func (r *memoryRepository) GetBooking(ctx context.Context, input *GetBookingInput) (*models.Booking, error) {
	if input == nil || input.BookingID == "" {
		return nil, errors.New("input and booking ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	booking, ok := r.bookings[input.BookingID]
	if !ok {
		return nil, ErrBookingNotFound
	}

	copied := *booking
	return &copied, nil
}

// InsertBooking reserves a seat and records the booking atomically
func (r *memoryRepository) InsertBooking(ctx context.Context, input *InsertBookingInput) error {
	if input == nil || input.Booking == nil {
		return errors.New("input and booking cannot be nil")
	}

	booking := input.Booking
	if booking.ID == "" {
		return errors.New("booking ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	lesson, ok := r.lessons[booking.LessonID]
	if !ok {
		return ErrLessonNotFound
	}

	for _, existing := range r.bookings {
		if existing.UserEmail == booking.UserEmail && existing.LessonID == booking.LessonID {
			return ErrDuplicateBooking
		}
	}

	if lesson.Seats <= 0 {
		return ErrCapacityExhausted
	}

	lesson.Seats--
	copied := *booking
	r.bookings[copied.ID] = &copied
	return nil
}

// CancelBooking deletes a booking and releases its seat atomically
func (r *memoryRepository) CancelBooking(ctx context.Context, input *CancelBookingInput) error {
	if input == nil || input.BookingID == "" {
		return errors.New("input and booking ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.bookings[input.BookingID]; !ok {
		return ErrBookingNotFound
	}

	delete(r.bookings, input.BookingID)

	if lesson, ok := r.lessons[input.LessonID]; ok {
		lesson.Seats++
	}

	return nil
}
