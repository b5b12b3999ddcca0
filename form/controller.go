package form

import (
	"context"
	"strconv"

	"serenity/models"
)

// SubmissionState is the form's submission lifecycle phase.
type SubmissionState string

const (
	StateIdle       SubmissionState = "idle"
	StateSubmitting SubmissionState = "submitting"
	StateSuccess    SubmissionState = "success"
	StateError      SubmissionState = "error"
)

// BookingAPI is the transport the controller submits drafts through.
// *client.Client satisfies it.
type BookingAPI interface {
	CreateBooking(ctx context.Context, input models.BookingInput) (*models.Booking, error)
}

// Controller is the booking form state machine: it owns the draft, per-field
// errors, touch tracking and the submission lifecycle. It follows UI
// event-loop semantics — events run to completion one at a time — and is not
// safe for concurrent use.
type Controller struct {
	api      BookingAPI
	services []models.Service

	draft   Draft
	errors  FieldErrors
	touched map[Field]bool
	state   SubmissionState
	booking *models.Booking
	errMsg  string

	preselectID   string
	preselectDone bool
	serviceChosen bool
}

// NewController returns an idle controller submitting through api.
func NewController(api BookingAPI) *Controller {
	return &Controller{
		api:     api,
		errors:  FieldErrors{},
		touched: map[Field]bool{},
		state:   StateIdle,
	}
}

// SetCatalog supplies the loaded service catalog. A pending preselection is
// applied at this point if its id resolves.
func (c *Controller) SetCatalog(services []models.Service) {
	c.services = services
	c.applyPreselect()
}

// Preselect requests that the given service id (e.g. from a deep link) be
// filled in once the catalog is available. It never overrides a service the
// user has already picked.
func (c *Controller) Preselect(serviceID string) {
	c.preselectID = serviceID
	c.applyPreselect()
}

func (c *Controller) applyPreselect() {
	if c.preselectDone || c.serviceChosen || c.preselectID == "" || len(c.services) == 0 {
		return
	}
	if c.serviceByID(c.preselectID) == nil {
		return
	}
	c.draft.Service = c.preselectID
	c.preselectDone = true
}

// Change records a field edit. Editing clears any submission-level error so
// the user sees it only until they start correcting the form.
func (c *Controller) Change(field Field, value string) {
	c.setDraftValue(field, value)
	if field == FieldService {
		c.serviceChosen = true
	}
	delete(c.errors, FieldGeneral)
}

// Blur marks the field as touched and validates it. Validation runs on blur
// rather than on every keystroke.
func (c *Controller) Blur(field Field) {
	c.touched[field] = true
	if msg := ValidateField(field, c.draft.Value(field)); msg != "" {
		c.errors[field] = msg
	} else {
		delete(c.errors, field)
	}
}

// Submit validates the whole draft and, when clean, sends it through the
// transport. An invalid draft aborts locally: all fields become touched so
// their errors show, and the transport is never called. While a submission is
// in flight further Submit calls are no-ops.
func (c *Controller) Submit(ctx context.Context) {
	if c.state == StateSubmitting {
		return
	}

	for _, field := range draftFields {
		c.touched[field] = true
	}

	errs := ValidateForm(c.draft)
	c.errors = errs
	if HasErrors(errs) {
		return
	}

	c.state = StateSubmitting
	input := models.BookingInput{
		Name:    c.draft.Name,
		Email:   c.draft.Email,
		Phone:   FormatPhoneNumber(c.draft.Phone),
		Service: c.draft.Service,
		Date:    c.draft.Date,
		Time:    c.draft.Time,
		Notes:   c.draft.Notes,
	}

	record, err := c.api.CreateBooking(ctx, input)
	if err != nil {
		// The draft stays intact so the user can retry.
		c.state = StateError
		c.errMsg = err.Error()
		c.errors[FieldGeneral] = c.errMsg
		return
	}

	c.state = StateSuccess
	c.booking = record
	c.errMsg = ""
	c.draft = Draft{}
	c.errors = FieldErrors{}
	c.touched = map[Field]bool{}
}

// Reset returns the controller to idle after a success or error, e.g. the
// "book another" action. The draft is left as-is; only a successful submit
// clears it.
func (c *Controller) Reset() {
	c.state = StateIdle
	c.booking = nil
	c.errMsg = ""
}

// State returns the submission lifecycle phase.
func (c *Controller) State() SubmissionState {
	return c.state
}

// Draft returns a copy of the in-progress form data.
func (c *Controller) Draft() Draft {
	return c.draft
}

// Errors returns a copy of the current field errors. A submission-level
// error, if present, sits under FieldGeneral.
func (c *Controller) Errors() FieldErrors {
	out := FieldErrors{}
	for f, msg := range c.errors {
		out[f] = msg
	}
	return out
}

// VisibleError returns the field's error message if it should be rendered:
// errors exist as soon as validation runs, but only show once the field has
// been touched.
func (c *Controller) VisibleError(field Field) (string, bool) {
	msg, ok := c.errors[field]
	if !ok || !c.touched[field] {
		return "", false
	}
	return msg, true
}

// Touched reports whether the user has blurred the field at least once.
func (c *Controller) Touched(field Field) bool {
	return c.touched[field]
}

// Booking returns the stored record after a successful submission.
func (c *Controller) Booking() *models.Booking {
	return c.booking
}

// ErrorMessage returns the submission-level error message, if any.
func (c *Controller) ErrorMessage() string {
	return c.errMsg
}

// SelectedService resolves the draft's service value against the catalog.
func (c *Controller) SelectedService() *models.Service {
	return c.serviceByID(c.draft.Service)
}

func (c *Controller) serviceByID(id string) *models.Service {
	for i := range c.services {
		if strconv.Itoa(c.services[i].ID) == id {
			svc := c.services[i]
			return &svc
		}
	}
	return nil
}

func (c *Controller) setDraftValue(field Field, value string) {
	switch field {
	case FieldName:
		c.draft.Name = value
	case FieldEmail:
		c.draft.Email = value
	case FieldPhone:
		c.draft.Phone = value
	case FieldService:
		c.draft.Service = value
	case FieldDate:
		c.draft.Date = value
	case FieldTime:
		c.draft.Time = value
	case FieldNotes:
		c.draft.Notes = value
	}
}
