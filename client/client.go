package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"serenity/config"
	"serenity/models"
)

// unexpectedErrorMessage is surfaced for failures with no usable response,
// e.g. connection refused or a timeout.
const unexpectedErrorMessage = "An unexpected error occurred"

// APIError is the single error shape every client failure collapses to.
// StatusCode is zero when no response was received.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// Client talks to the booking API. All failures are returned as *APIError.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option customizes a Client.
type Option func(*Client)

// WithTimeout overrides the default request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithHTTPClient substitutes the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		c.httpClient = h
	}
}

// NewFromConfig builds a client from the loaded application config.
func NewFromConfig() *Client {
	return New(
		config.AppConfig.APIBaseURL,
		WithTimeout(time.Duration(config.AppConfig.ClientTimeoutSeconds)*time.Second),
	)
}

// New returns a client for the API at baseURL, e.g. "http://localhost:3001".
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// call performs a JSON request. A non-2xx response is normalized to the
// server's error message when the body carries one, otherwise to a generic
// message with the status code.
func (c *Client) call(ctx context.Context, method, path string, body, out any) error {
	var payload *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return &APIError{Message: unexpectedErrorMessage}
		}
		payload = bytes.NewReader(data)
	} else {
		payload = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return &APIError{Message: unexpectedErrorMessage}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &APIError{Message: unexpectedErrorMessage}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errBody struct {
			Error string `json:"error"`
		}
		if decodeErr := json.NewDecoder(resp.Body).Decode(&errBody); decodeErr == nil && errBody.Error != "" {
			return &APIError{StatusCode: resp.StatusCode, Message: errBody.Error}
		}
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("HTTP error! status: %d", resp.StatusCode),
		}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return &APIError{StatusCode: resp.StatusCode, Message: unexpectedErrorMessage}
		}
	}
	return nil
}

// HealthResponse is the health-check body.
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Health checks the API's health endpoint.
func (c *Client) Health(ctx context.Context) (*HealthResponse, error) {
	var out HealthResponse
	if err := c.call(ctx, http.MethodGet, "/api/health", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Services fetches all available treatments.
func (c *Client) Services(ctx context.Context) ([]models.Service, error) {
	var out []models.Service
	if err := c.call(ctx, http.MethodGet, "/api/services", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Service fetches a single treatment by id.
func (c *Client) Service(ctx context.Context, id int) (*models.Service, error) {
	var out models.Service
	if err := c.call(ctx, http.MethodGet, fmt.Sprintf("/api/services/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Bookings fetches all stored bookings.
func (c *Client) Bookings(ctx context.Context) ([]models.Booking, error) {
	var out []models.Booking
	if err := c.call(ctx, http.MethodGet, "/api/bookings", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

type bookingEnvelope struct {
	Message string          `json:"message"`
	Booking *models.Booking `json:"booking"`
}

// CreateBooking submits a new booking and returns the stored record.
func (c *Client) CreateBooking(ctx context.Context, input models.BookingInput) (*models.Booking, error) {
	var out bookingEnvelope
	if err := c.call(ctx, http.MethodPost, "/api/bookings", input, &out); err != nil {
		return nil, err
	}
	if out.Booking == nil {
		return nil, &APIError{Message: unexpectedErrorMessage}
	}
	return out.Booking, nil
}

// UpdateBookingStatus changes a booking's status and returns the updated record.
func (c *Client) UpdateBookingStatus(ctx context.Context, id int, status models.BookingStatus) (*models.Booking, error) {
	body := map[string]models.BookingStatus{"status": status}
	var out bookingEnvelope
	if err := c.call(ctx, http.MethodPatch, fmt.Sprintf("/api/bookings/%d", id), body, &out); err != nil {
		return nil, err
	}
	if out.Booking == nil {
		return nil, &APIError{Message: unexpectedErrorMessage}
	}
	return out.Booking, nil
}

// DeleteBooking removes a booking and returns the server's confirmation.
func (c *Client) DeleteBooking(ctx context.Context, id int) (string, error) {
	var out struct {
		Message string `json:"message"`
	}
	if err := c.call(ctx, http.MethodDelete, fmt.Sprintf("/api/bookings/%d", id), nil, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

// SubmitContact sends a contact form submission and returns the acknowledgment.
func (c *Client) SubmitContact(ctx context.Context, input models.ContactInput) (string, error) {
	var out struct {
		Message string `json:"message"`
		Status  string `json:"status"`
	}
	if err := c.call(ctx, http.MethodPost, "/api/contact", input, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}
