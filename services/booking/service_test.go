package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"serenity/database/repository"
	"serenity/models"
)

func newTestService() *DefaultBookingService {
	return NewBookingService(repository.NewMemoryBookingRepo(), zap.NewNop())
}

func validInput() models.BookingInput {
	return models.BookingInput{
		Name:    "Jo",
		Email:   "jo@x.com",
		Service: "1",
		Date:    "2099-01-01",
		Time:    "10:00",
	}
}

func TestCreateBooking_AssignsDefaults(t *testing.T) {
	svc := newTestService()

	record, err := svc.CreateBooking(validInput())
	require.NoError(t, err)

	assert.Equal(t, 1, record.ID)
	assert.Equal(t, models.BookingStatusPending, record.Status)
	assert.Equal(t, "", record.Phone)
	assert.Equal(t, "", record.Notes)
	assert.False(t, record.CreatedAt.IsZero())
}

func TestCreateBooking_MissingRequiredField(t *testing.T) {
	svc := newTestService()

	input := validInput()
	input.Service = ""

	_, err := svc.CreateBooking(input)
	require.Error(t, err)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "Missing required fields: name, email, service, date, time", vErr.Message)

	// The collection is untouched.
	assert.Empty(t, svc.ListBookings())
}

func TestCreateBooking_PreservesInsertionOrder(t *testing.T) {
	svc := newTestService()

	first := validInput()
	second := validInput()
	second.Name = "Sam"

	_, err := svc.CreateBooking(first)
	require.NoError(t, err)
	_, err = svc.CreateBooking(second)
	require.NoError(t, err)

	all := svc.ListBookings()
	require.Len(t, all, 2)
	assert.Equal(t, "Jo", all[0].Name)
	assert.Equal(t, "Sam", all[1].Name)
}

func TestCreateBooking_IDsAreMonotonicAcrossDeletes(t *testing.T) {
	svc := newTestService()

	a, err := svc.CreateBooking(validInput())
	require.NoError(t, err)
	b, err := svc.CreateBooking(validInput())
	require.NoError(t, err)

	require.NoError(t, svc.DeleteBooking(a.ID))

	c, err := svc.CreateBooking(validInput())
	require.NoError(t, err)

	// A fresh id, not a reuse of the deleted one or a collision with b.
	assert.NotEqual(t, a.ID, c.ID)
	assert.NotEqual(t, b.ID, c.ID)
	assert.Greater(t, c.ID, b.ID)
}

func TestUpdateBookingStatus_OverwritesStatus(t *testing.T) {
	svc := newTestService()
	record, err := svc.CreateBooking(validInput())
	require.NoError(t, err)

	updated, err := svc.UpdateBookingStatus(record.ID, "confirmed")
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusConfirmed, updated.Status)

	fetched, err := svc.GetBooking(record.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusConfirmed, fetched.Status)
}

func TestUpdateBookingStatus_EmptyStatusIsNoOp(t *testing.T) {
	svc := newTestService()
	record, err := svc.CreateBooking(validInput())
	require.NoError(t, err)

	updated, err := svc.UpdateBookingStatus(record.ID, "")
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusPending, updated.Status)
}

func TestUpdateBookingStatus_RejectsUnknownStatus(t *testing.T) {
	svc := newTestService()
	record, err := svc.CreateBooking(validInput())
	require.NoError(t, err)

	_, err = svc.UpdateBookingStatus(record.ID, "teleported")
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "Invalid status: teleported", vErr.Message)

	// The record is unchanged.
	fetched, err := svc.GetBooking(record.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusPending, fetched.Status)
}

func TestUpdateBookingStatus_NotFound(t *testing.T) {
	svc := newTestService()

	_, err := svc.UpdateBookingStatus(999, "confirmed")
	var nfErr *NotFoundError
	require.ErrorAs(t, err, &nfErr)
	assert.Equal(t, "Booking not found", nfErr.Message)
}

func TestDeleteBooking_SecondDeleteFails(t *testing.T) {
	svc := newTestService()
	record, err := svc.CreateBooking(validInput())
	require.NoError(t, err)

	require.NoError(t, svc.DeleteBooking(record.ID))
	assert.Empty(t, svc.ListBookings())

	err = svc.DeleteBooking(record.ID)
	var nfErr *NotFoundError
	require.ErrorAs(t, err, &nfErr)
}
