// Package contact implements the contact record and the in-memory store
// that owns the contact list.
package contact

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ID uniquely identifies a stored contact. It is assigned once at creation.
type ID = uuid.UUID

// Contact is a single address book entry.
type Contact struct {
	ID    ID     `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Phone string `json:"phone" yaml:"phone"`
	Email string `json:"email" yaml:"email"`
}

// String returns the display form "name | phone | email".
func (c Contact) String() string {
	return c.Name + " | " + c.Phone + " | " + c.Email
}

// ErrValidation is matched by every *ValidationError via errors.Is.
var ErrValidation = errors.New("contact: validation failed")

// ErrNotFound indicates no stored contact has the requested ID.
var ErrNotFound = errors.New("contact: not found")

// ValidationError reports a required field that is empty after trimming.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("contact: %s is required (name and phone cannot be empty)", e.Field)
}

// Is lets errors.Is(err, ErrValidation) match any ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// fields holds trimmed, validated contact fields.
type fields struct {
	name, phone, email string
}

// validate trims all inputs and checks the required ones.
// Nothing is mutated when it returns an error.
func validate(name, phone, email string) (fields, error) {
	f := fields{
		name:  strings.TrimSpace(name),
		phone: strings.TrimSpace(phone),
		email: strings.TrimSpace(email),
	}
	if f.name == "" {
		return fields{}, &ValidationError{Field: "name"}
	}
	if f.phone == "" {
		return fields{}, &ValidationError{Field: "phone"}
	}
	return f, nil
}

// New builds a validated Contact with a fresh ID.
func New(name, phone, email string) (Contact, error) {
	f, err := validate(name, phone, email)
	if err != nil {
		return Contact{}, err
	}
	return Contact{
		ID:    uuid.New(),
		Name:  f.name,
		Phone: f.phone,
		Email: f.email,
	}, nil
}

// Samples returns the demonstration contacts loaded at startup.
func Samples() []Contact {
	data := [][3]string{
		{"Alice Smith", "123-456-7890", "alice@example.com"},
		{"Bob Johnson", "098-765-4321", "bob@example.com"},
		{"Charlie Brown", "111-222-3333", "charlie@example.com"},
		{"David Lee", "555-123-4567", "david@example.com"},
	}
	out := make([]Contact, 0, len(data))
	for _, d := range data {
		c, err := New(d[0], d[1], d[2])
		if err != nil {
			panic(err)
		}
		out = append(out, c)
	}
	return out
}
