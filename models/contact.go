package models

// ContactInput is a contact form submission. It is acknowledged and logged,
// nothing is stored.
type ContactInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}
