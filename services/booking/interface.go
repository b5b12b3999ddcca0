package booking

import "serenity/models"

// BookingService owns the booking collection's business rules.
type BookingService interface {
	ListBookings() []models.Booking
	GetBooking(id int) (*models.Booking, error)
	CreateBooking(input models.BookingInput) (*models.Booking, error)
	UpdateBookingStatus(id int, status string) (*models.Booking, error)
	DeleteBooking(id int) error
}
