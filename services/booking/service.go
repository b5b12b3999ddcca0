package booking

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"serenity/database/repository"
	"serenity/models"
)

// The create endpoint only checks that required fields are present; the full
// field rules live client-side in the form validation. Missing any of them
// yields this fixed message.
const missingFieldsMessage = "Missing required fields: name, email, service, date, time"

// DefaultBookingService implements BookingService over an injected store.
type DefaultBookingService struct {
	Repo   repository.BookingRepository
	Logger *zap.Logger
}

// NewBookingService wires a booking service around the given repository.
func NewBookingService(repo repository.BookingRepository, logger *zap.Logger) *DefaultBookingService {
	return &DefaultBookingService{Repo: repo, Logger: logger}
}

func (s *DefaultBookingService) ListBookings() []models.Booking {
	return s.Repo.GetAll()
}

func (s *DefaultBookingService) GetBooking(id int) (*models.Booking, error) {
	b, err := s.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return nil, NewNotFoundError("Booking not found")
		}
		return nil, err
	}
	return b, nil
}

// CreateBooking validates presence of the required fields, defaults the
// optional ones, and appends a pending record to the store.
func (s *DefaultBookingService) CreateBooking(input models.BookingInput) (*models.Booking, error) {
	if input.Name == "" || input.Email == "" || input.Service == "" || input.Date == "" || input.Time == "" {
		return nil, NewValidationError(missingFieldsMessage)
	}

	record := s.Repo.Create(models.Booking{
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		Service:   input.Service,
		Date:      input.Date,
		Time:      input.Time,
		Notes:     input.Notes,
		Status:    models.BookingStatusPending,
		CreatedAt: time.Now().UTC(),
	})

	s.Logger.Info("booking created",
		zap.Int("id", record.ID),
		zap.String("service", record.Service),
		zap.String("date", record.Date),
		zap.String("time", record.Time),
	)
	return &record, nil
}

// UpdateBookingStatus overwrites the record's status. An empty status leaves
// the record untouched and returns it as-is. Unknown status values are
// rejected rather than stored verbatim.
func (s *DefaultBookingService) UpdateBookingStatus(id int, status string) (*models.Booking, error) {
	if status == "" {
		return s.GetBooking(id)
	}

	next := models.BookingStatus(status)
	if !next.IsValid() {
		return nil, NewValidationError(fmt.Sprintf("Invalid status: %s", status))
	}

	b, err := s.Repo.UpdateStatus(id, next)
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return nil, NewNotFoundError("Booking not found")
		}
		return nil, err
	}

	s.Logger.Info("booking status updated", zap.Int("id", id), zap.String("status", status))
	return b, nil
}

func (s *DefaultBookingService) DeleteBooking(id int) error {
	if err := s.Repo.Delete(id); err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return NewNotFoundError("Booking not found")
		}
		return err
	}
	s.Logger.Info("booking deleted", zap.Int("id", id))
	return nil
}
