package client_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"serenity/client"
	"serenity/database/repository"
	"serenity/handlers"
	"serenity/models"
	"serenity/routes"
	"serenity/services/booking"
)

func newAPIServer(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger := zap.NewNop()

	bookingService := booking.NewBookingService(repository.NewMemoryBookingRepo(), logger)
	hb := &handlers.HandlerBundle{
		Services: handlers.NewServiceHandler(repository.NewMemoryServiceRepo()),
		Bookings: handlers.NewBookingHandler(bookingService, logger),
		Contact:  handlers.NewContactHandler(logger),
	}

	router := gin.New()
	routes.RegisterRoutes(router, hb)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func TestClient_RoundTrip(t *testing.T) {
	srv := newAPIServer(t)
	c := client.New(srv.URL)
	ctx := context.Background()

	health, err := c.Health(ctx)
	require.NoError(t, err)
	assert.Equal(t, "OK", health.Status)

	services, err := c.Services(ctx)
	require.NoError(t, err)
	require.Len(t, services, 6)

	svc, err := c.Service(ctx, services[0].ID)
	require.NoError(t, err)
	assert.Equal(t, services[0].Title, svc.Title)

	record, err := c.CreateBooking(ctx, models.BookingInput{
		Name:    "Jo",
		Email:   "jo@x.com",
		Service: "1",
		Date:    "2099-01-01",
		Time:    "10:00",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, record.ID)
	assert.Equal(t, models.BookingStatusPending, record.Status)

	updated, err := c.UpdateBookingStatus(ctx, record.ID, models.BookingStatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusConfirmed, updated.Status)

	all, err := c.Bookings(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)

	msg, err := c.DeleteBooking(ctx, record.ID)
	require.NoError(t, err)
	assert.Equal(t, "Booking deleted successfully", msg)

	ack, err := c.SubmitContact(ctx, models.ContactInput{
		Name: "Jo", Email: "jo@x.com", Message: "hello",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, ack)
}

func TestClient_SurfacesServerErrorMessage(t *testing.T) {
	srv := newAPIServer(t)
	c := client.New(srv.URL)

	_, err := c.CreateBooking(context.Background(), models.BookingInput{Name: "Jo"})
	require.Error(t, err)

	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "Missing required fields: name, email, service, date, time", apiErr.Message)
}

func TestClient_FallsBackToStatusCodeMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("not json at all"))
	}))
	defer srv.Close()

	c := client.New(srv.URL)
	_, err := c.Bookings(context.Background())

	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Equal(t, "HTTP error! status: 500", apiErr.Message)
}

func TestClient_NetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // nothing is listening anymore

	c := client.New(srv.URL)
	_, err := c.Bookings(context.Background())

	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Zero(t, apiErr.StatusCode)
	assert.Equal(t, "An unexpected error occurred", apiErr.Message)
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "Friday, January 1, 2100", client.FormatDate("2100-01-01"))
	assert.Equal(t, "junk", client.FormatDate("junk"))
}

func TestFormatTime(t *testing.T) {
	assert.Equal(t, "9:00 AM", client.FormatTime("09:00"))
	assert.Equal(t, "6:00 PM", client.FormatTime("18:00"))
	assert.Equal(t, "junk", client.FormatTime("junk"))
}
