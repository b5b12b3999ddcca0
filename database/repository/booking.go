package repository

import (
	"errors"
	"sync"

	"serenity/models"
)

// ErrBookingNotFound is returned when a booking lookup misses.
var ErrBookingNotFound = errors.New("booking not found")

// BookingRepository is the in-memory booking collection. Records live only
// for the lifetime of the process.
type BookingRepository interface {
	GetAll() []models.Booking
	GetByID(id int) (*models.Booking, error)
	Create(booking models.Booking) models.Booking
	UpdateStatus(id int, status models.BookingStatus) (*models.Booking, error)
	Delete(id int) error
}

// memoryBookingRepo guards the collection with a single mutex so that
// concurrent handlers cannot interleave read-modify-write cycles. The id
// counter is monotonic: ids are never reused after a delete.
type memoryBookingRepo struct {
	mu       sync.Mutex
	bookings []models.Booking
	nextID   int
}

// NewMemoryBookingRepo returns an empty booking store.
func NewMemoryBookingRepo() BookingRepository {
	return &memoryBookingRepo{nextID: 1}
}

func (r *memoryBookingRepo) GetAll() []models.Booking {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Booking, len(r.bookings))
	copy(out, r.bookings)
	return out
}

func (r *memoryBookingRepo) GetByID(id int) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.bookings {
		if r.bookings[i].ID == id {
			b := r.bookings[i]
			return &b, nil
		}
	}
	return nil, ErrBookingNotFound
}

func (r *memoryBookingRepo) Create(booking models.Booking) models.Booking {
	r.mu.Lock()
	defer r.mu.Unlock()
	booking.ID = r.nextID
	r.nextID++
	r.bookings = append(r.bookings, booking)
	return booking
}

func (r *memoryBookingRepo) UpdateStatus(id int, status models.BookingStatus) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.bookings {
		if r.bookings[i].ID == id {
			r.bookings[i].Status = status
			b := r.bookings[i]
			return &b, nil
		}
	}
	return nil, ErrBookingNotFound
}

func (r *memoryBookingRepo) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.bookings {
		if r.bookings[i].ID == id {
			r.bookings = append(r.bookings[:i], r.bookings[i+1:]...)
			return nil
		}
	}
	return ErrBookingNotFound
}
