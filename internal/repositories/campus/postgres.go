package campus

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"lessonbot/internal/models"
)

// uniqueViolation is the Postgres error code for unique constraint breaks
const uniqueViolation = "23505"

// Config holds configuration for the Postgres repository
type Config struct {
	// DB is an open database handle
	DB *sql.DB
}

// postgresRepository implements the Repository interface using Postgres
type postgresRepository struct {
	db *sql.DB
}

// NewPostgres creates a new Postgres-backed campus repository
func NewPostgres(cfg *Config) (*postgresRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.DB == nil {
		return nil, errors.New("database handle cannot be nil")
	}

	if err := cfg.DB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &postgresRepository{
		db: cfg.DB,
	}, nil
}

// ListCourses retrieves the names of all degree courses
func (r *postgresRepository) ListCourses(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT name FROM courses ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}
	defer rows.Close()

	var courses []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan course: %w", err)
		}
		courses = append(courses, name)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read courses: %w", err)
	}

	return courses, nil
}

// CheckEmailExists reports whether a user with this email is registered
func (r *postgresRepository) CheckEmailExists(ctx context.Context, input *CheckEmailExistsInput) (bool, error) {
	if input == nil || input.Email == "" {
		return false, errors.New("input and email cannot be empty")
	}

	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`,
		input.Email,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check email: %w", err)
	}

	return exists, nil
}

// InsertUser persists a new user
func (r *postgresRepository) InsertUser(ctx context.Context, input *InsertUserInput) error {
	if input == nil || input.User == nil {
		return errors.New("input and user cannot be nil")
	}

	user := input.User
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (email, first_name, last_name, course, year)
		 VALUES ($1, $2, $3, $4, $5)`,
		user.Email, user.FirstName, user.LastName, user.Course, user.Year,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}

	return nil
}

// GetUserInfo retrieves a registered user by email
func (r *postgresRepository) GetUserInfo(ctx context.Context, input *GetUserInfoInput) (*models.User, error) {
	if input == nil || input.Email == "" {
		return nil, errors.New("input and email cannot be empty")
	}

	var user models.User
	err := r.db.QueryRowContext(ctx,
		`SELECT email, first_name, last_name, course, year FROM users WHERE email = $1`,
		input.Email,
	).Scan(&user.Email, &user.FirstName, &user.LastName, &user.Course, &user.Year)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

// ListLessons retrieves the lessons for a course and year within a date window
func (r *postgresRepository) ListLessons(ctx context.Context, input *ListLessonsInput) (*ListLessonsOutput, error) {
	if input == nil || input.Course == "" {
		return nil, errors.New("input and course cannot be empty")
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, date, start_time, end_time, description, seats, subject,
		        room, professor_first, professor_last, course, year
		 FROM lessons
		 WHERE course = $1 AND year = $2 AND date BETWEEN $3 AND $4
		 ORDER BY date, start_time`,
		input.Course, input.Year, input.From, input.To,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list lessons: %w", err)
	}
	defer rows.Close()

	var lessons []*models.Lesson
	for rows.Next() {
		lesson, err := scanLesson(rows)
		if err != nil {
			return nil, err
		}
		lessons = append(lessons, lesson)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read lessons: %w", err)
	}

	return &ListLessonsOutput{
		Lessons: lessons,
	}, nil
}

// GetLesson retrieves a lesson by id
func (r *postgresRepository) GetLesson(ctx context.Context, input *GetLessonInput) (*models.Lesson, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	row := r.db.QueryRowContext(ctx,
		`SELECT id, date, start_time, end_time, description, seats, subject,
		        room, professor_first, professor_last, course, year
		 FROM lessons WHERE id = $1`,
		input.LessonID,
	)

	lesson, err := scanLesson(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrLessonNotFound
		}
		return nil, err
	}

	return lesson, nil
}

// IsUserBooked reports whether the user holds a booking for a lesson
func (r *postgresRepository) IsUserBooked(ctx context.Context, input *IsUserBookedInput) (*IsUserBookedOutput, error) {
	if input == nil || input.Email == "" {
		return nil, errors.New("input and email cannot be empty")
	}

	var bookingID string
	err := r.db.QueryRowContext(ctx,
		`SELECT id FROM bookings WHERE lesson_id = $1 AND user_email = $2`,
		input.LessonID, input.Email,
	).Scan(&bookingID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &IsUserBookedOutput{Booked: false}, nil
		}
		return nil, fmt.Errorf("failed to look up booking: %w", err)
	}

	return &IsUserBookedOutput{
		Booked:    true,
		BookingID: bookingID,
	}, nil
}

// ListBookings retrieves all bookings held by a user
func (r *postgresRepository) ListBookings(ctx context.Context, input *ListBookingsInput) (*ListBookingsOutput, error) {
	if input == nil || input.Email == "" {
		return nil, errors.New("input and email cannot be empty")
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT b.id, b.created_at, b.lesson_id, b.user_email
		 FROM bookings b
		 JOIN lessons l ON l.id = b.lesson_id
		 WHERE b.user_email = $1
		 ORDER BY l.date, l.start_time`,
		input.Email,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer rows.Close()

	var bookings []*models.Booking
	for rows.Next() {
		var booking models.Booking
		if err := rows.Scan(&booking.ID, &booking.CreatedAt, &booking.LessonID, &booking.UserEmail); err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read bookings: %w", err)
	}

	return &ListBookingsOutput{
		Bookings: bookings,
	}, nil
}

// GetBooking retrieves a booking by id
func (r *postgresRepository) GetBooking(ctx context.Context, input *GetBookingInput) (*models.Booking, error) {
	if input == nil || input.BookingID == "" {
		return nil, errors.New("input and booking ID cannot be empty")
	}

	var booking models.Booking
	err := r.db.QueryRowContext(ctx,
		`SELECT id, created_at, lesson_id, user_email FROM bookings WHERE id = $1`,
		input.BookingID,
	).Scan(&booking.ID, &booking.CreatedAt, &booking.LessonID, &booking.UserEmail)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}

	return &booking, nil
}

// InsertBooking reserves a seat and records the booking atomically.
// The decrement is conditional on remaining capacity so that two
// concurrent callers can never both take the last seat: whichever
// UPDATE matches zero rows loses, and the transaction writes nothing.
func (r *postgresRepository) InsertBooking(ctx context.Context, input *InsertBookingInput) error {
	if input == nil || input.Booking == nil {
		return errors.New("input and booking cannot be nil")
	}

	booking := input.Booking
	if booking.ID == "" {
		return errors.New("booking ID cannot be empty")
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`UPDATE lessons SET seats = seats - 1 WHERE id = $1 AND seats > 0`,
		booking.LessonID,
	)
	if err != nil {
		return fmt.Errorf("failed to reserve seat: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		// Zero rows means either a full lesson or an unknown id;
		// distinguish them so both backends report the same sentinel
		var exists bool
		err := tx.QueryRowContext(ctx,
			`SELECT EXISTS (SELECT 1 FROM lessons WHERE id = $1)`,
			booking.LessonID,
		).Scan(&exists)
		if err != nil {
			return fmt.Errorf("failed to check lesson: %w", err)
		}
		if !exists {
			return ErrLessonNotFound
		}
		return ErrCapacityExhausted
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO bookings (id, created_at, lesson_id, user_email)
		 VALUES ($1, $2, $3, $4)`,
		booking.ID, booking.CreatedAt, booking.LessonID, booking.UserEmail,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateBooking
		}
		return fmt.Errorf("failed to insert booking: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit booking: %w", err)
	}

	return nil
}

// CancelBooking deletes a booking and releases its seat atomically
func (r *postgresRepository) CancelBooking(ctx context.Context, input *CancelBookingInput) error {
	if input == nil || input.BookingID == "" {
		return errors.New("input and booking ID cannot be empty")
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`DELETE FROM bookings WHERE id = $1`,
		input.BookingID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete booking: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return ErrBookingNotFound
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE lessons SET seats = seats + 1 WHERE id = $1`,
		input.LessonID,
	)
	if err != nil {
		return fmt.Errorf("failed to release seat: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit cancellation: %w", err)
	}

	return nil
}

// scanner covers both *sql.Row and *sql.Rows
type scanner interface {
	Scan(dest ...any) error
}

func scanLesson(s scanner) (*models.Lesson, error) {
	var lesson models.Lesson
	err := s.Scan(
		&lesson.ID, &lesson.Date, &lesson.StartTime, &lesson.EndTime,
		&lesson.Description, &lesson.Seats, &lesson.Subject, &lesson.Room,
		&lesson.ProfessorFirst, &lesson.ProfessorLast, &lesson.Course, &lesson.Year,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan lesson: %w", err)
	}
	return &lesson, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}
