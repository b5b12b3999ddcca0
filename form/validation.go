package form

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

// Field names a booking form field.
type Field string

const (
	FieldName    Field = "name"
	FieldEmail   Field = "email"
	FieldPhone   Field = "phone"
	FieldService Field = "service"
	FieldDate    Field = "date"
	FieldTime    Field = "time"
	FieldNotes   Field = "notes"

	// FieldGeneral carries submission-level errors not tied to one field.
	FieldGeneral Field = "general"
)

// draftFields lists the fields a draft carries, in form order.
var draftFields = []Field{
	FieldName, FieldEmail, FieldPhone, FieldService, FieldDate, FieldTime, FieldNotes,
}

// Draft is the in-progress booking form data.
type Draft struct {
	Name    string
	Email   string
	Phone   string
	Service string // string form of a Service ID
	Date    string // "YYYY-MM-DD"
	Time    string // "HH:MM"
	Notes   string
}

// Value returns the draft's value for the named field.
func (d Draft) Value(f Field) string {
	switch f {
	case FieldName:
		return d.Name
	case FieldEmail:
		return d.Email
	case FieldPhone:
		return d.Phone
	case FieldService:
		return d.Service
	case FieldDate:
		return d.Date
	case FieldTime:
		return d.Time
	case FieldNotes:
		return d.Notes
	}
	return ""
}

// FieldErrors maps field names to error messages. A field with no entry is
// valid.
type FieldErrors map[Field]string

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	// Optional leading +, then a leading digit 1-9, then up to 15 more digits.
	phonePattern    = regexp.MustCompile(`^\+?[1-9][0-9]{0,15}$`)
	phoneSeparators = regexp.MustCompile(`[\s\-()]`)
)

// ValidateField checks a single field value and returns an error message, or
// "" when the value is acceptable.
func ValidateField(field Field, value string) string {
	return validateFieldAt(field, value, time.Now())
}

func validateFieldAt(field Field, value string, now time.Time) string {
	switch field {
	case FieldName:
		if strings.TrimSpace(value) == "" {
			return "Name is required"
		}
		if utf8.RuneCountInString(strings.TrimSpace(value)) < 2 {
			return "Name must be at least 2 characters"
		}

	case FieldEmail:
		if strings.TrimSpace(value) == "" {
			return "Email is required"
		}
		if !emailPattern.MatchString(value) {
			return "Please enter a valid email address"
		}

	case FieldPhone:
		// Optional, but must be plausible when provided.
		if value != "" && !phonePattern.MatchString(FormatPhoneNumber(value)) {
			return "Please enter a valid phone number"
		}

	case FieldService:
		if value == "" {
			return "Please select a treatment service"
		}

	case FieldDate:
		if value == "" {
			return "Please select a date"
		}
		selected, err := time.ParseInLocation("2006-01-02", value, now.Location())
		if err != nil {
			return "Please select a date"
		}
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		if selected.Before(today) {
			return "Please select a date in the future"
		}

	case FieldTime:
		if value == "" {
			return "Please select a time"
		}
	}
	return ""
}

// ValidateForm checks every draft field and collects the failures.
func ValidateForm(draft Draft) FieldErrors {
	errs := FieldErrors{}
	for _, field := range draftFields {
		if msg := ValidateField(field, draft.Value(field)); msg != "" {
			errs[field] = msg
		}
	}
	return errs
}

// HasErrors reports whether any field failed validation.
func HasErrors(errs FieldErrors) bool {
	for _, msg := range errs {
		if msg != "" {
			return true
		}
	}
	return false
}

// FormatPhoneNumber strips spaces, dashes and parentheses from a phone number.
// Applied to the submitted value, not just during validation.
func FormatPhoneNumber(phone string) string {
	return phoneSeparators.ReplaceAllString(phone, "")
}

// FormatDateForInput renders a date as "YYYY-MM-DD".
func FormatDateForInput(t time.Time) string {
	return t.Format("2006-01-02")
}

// MinBookingDate is the earliest bookable date (today).
func MinBookingDate() string {
	return FormatDateForInput(time.Now())
}

// MaxBookingDate is the latest bookable date (three months out).
func MaxBookingDate() string {
	return FormatDateForInput(time.Now().AddDate(0, 3, 0))
}

// AvailableTimeSlots returns the fixed hourly appointment slots.
func AvailableTimeSlots() []string {
	return []string{
		"09:00",
		"10:00",
		"11:00",
		"12:00",
		"13:00",
		"14:00",
		"15:00",
		"16:00",
		"17:00",
		"18:00",
	}
}
