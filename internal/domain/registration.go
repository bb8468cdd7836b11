package domain

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// RegistrationStatus is the booking state of a registration.
type RegistrationStatus string

const (
	RegistrationPending     RegistrationStatus = "Pending"
	RegistrationConfirmed   RegistrationStatus = "Confirmed"
	RegistrationCancelled   RegistrationStatus = "Cancelled"
	RegistrationWaitingList RegistrationStatus = "WaitingList"
)

// Valid reports whether s is one of the defined registration states.
func (s RegistrationStatus) Valid() bool {
	switch s {
	case RegistrationPending, RegistrationConfirmed, RegistrationCancelled, RegistrationWaitingList:
		return true
	}
	return false
}

func (s RegistrationStatus) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("unknown registration status %q", string(s))
	}
	return []byte(s), nil
}

func (s *RegistrationStatus) UnmarshalText(b []byte) error {
	v := RegistrationStatus(b)
	if !v.Valid() {
		return fmt.Errorf("unknown registration status %q", string(b))
	}
	*s = v
	return nil
}

// PaymentStatus is the payment state of a registration.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "Pending"
	PaymentCompleted PaymentStatus = "Completed"
	PaymentFailed    PaymentStatus = "Failed"
	PaymentRefunded  PaymentStatus = "Refunded"
)

// Valid reports whether s is one of the defined payment states.
func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentPending, PaymentCompleted, PaymentFailed, PaymentRefunded:
		return true
	}
	return false
}

func (s PaymentStatus) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("unknown payment status %q", string(s))
	}
	return []byte(s), nil
}

func (s *PaymentStatus) UnmarshalText(b []byte) error {
	v := PaymentStatus(b)
	if !v.Valid() {
		return fmt.Errorf("unknown payment status %q", string(b))
	}
	*s = v
	return nil
}

// Registration is a user's booking of an event and/or a package.
// swagger:model Registration
type Registration struct {
	ID            uuid.UUID          `json:"id"`
	UserID        uuid.UUID          `json:"user_id"`
	EventID       *uuid.UUID         `json:"event_id"`
	PackageID     *uuid.UUID         `json:"package_id"`
	Status        RegistrationStatus `json:"status"`
	PaymentStatus PaymentStatus      `json:"payment_status"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
	AmountPaid    float64            `json:"amount_paid"`
}

// NewRegistration returns a pending, unpaid registration with a fresh id.
func NewRegistration(userID uuid.UUID, eventID, packageID *uuid.UUID, now time.Time) *Registration {
	return &Registration{
		ID:            uuid.New(),
		UserID:        userID,
		EventID:       eventID,
		PackageID:     packageID,
		Status:        RegistrationPending,
		PaymentStatus: PaymentPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// RecordID returns the storage identifier of the registration.
func (r *Registration) RecordID() uuid.UUID { return r.ID }

// RegistrationRepository defines storage operations for registrations.
type RegistrationRepository interface {
	Create(ctx context.Context, reg *Registration) error
	GetByID(ctx context.Context, id uuid.UUID) (*Registration, error)
	List(ctx context.Context) ([]*Registration, error)
	// ListByUserID returns the user's registrations, newest first.
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]*Registration, error)
}

// RegistrationService books events and packages for authenticated users.
type RegistrationService interface {
	Register(ctx context.Context, userID uuid.UUID, eventID, packageID *uuid.UUID) (*Registration, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]*Registration, error)
}
