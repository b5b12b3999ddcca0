package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"serenity/models"
	"serenity/services/booking"
)

// BookingHandler exposes the booking CRUD endpoints.
type BookingHandler struct {
	Svc    booking.BookingService
	Logger *zap.Logger
}

// NewBookingHandler wires the handler to the booking service.
func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Svc: svc, Logger: logger}
}

// ListBookings handles GET /api/bookings.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	c.JSON(http.StatusOK, h.Svc.ListBookings())
}

// CreateBooking handles POST /api/bookings.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var input models.BookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.Logger.Warn("CreateBooking: invalid request body", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	record, err := h.Svc.CreateBooking(input)
	if err != nil {
		h.respondError(c, "CreateBooking", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Booking created successfully",
		"booking": record,
	})
}

// UpdateBookingStatus handles PATCH /api/bookings/:id.
func (h *BookingHandler) UpdateBookingStatus(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}

	var body struct {
		Status string `json:"status"`
	}
	// An absent body is the same as an empty status update.
	if err := c.ShouldBindJSON(&body); err != nil && !errors.Is(err, io.EOF) {
		h.Logger.Warn("UpdateBookingStatus: invalid request body", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	record, err := h.Svc.UpdateBookingStatus(id, body.Status)
	if err != nil {
		h.respondError(c, "UpdateBookingStatus", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Booking updated successfully",
		"booking": record,
	})
}

// DeleteBooking handles DELETE /api/bookings/:id.
func (h *BookingHandler) DeleteBooking(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}

	if err := h.Svc.DeleteBooking(id); err != nil {
		h.respondError(c, "DeleteBooking", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Booking deleted successfully"})
}

// bookingID parses the :id param. A non-numeric id can never match a record,
// so it reports the same 404 a missing record would.
func bookingID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		return 0, false
	}
	return id, true
}

func (h *BookingHandler) respondError(c *gin.Context, op string, err error) {
	var vErr *booking.ValidationError
	var nfErr *booking.NotFoundError
	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Message})
	case errors.As(err, &nfErr):
		c.JSON(http.StatusNotFound, gin.H{"error": nfErr.Message})
	default:
		h.Logger.Error(op+": unexpected failure", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong!"})
	}
}
