package domain

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Experience is the self-declared experience level of a user.
type Experience string

const (
	ExperienceBeginner     Experience = "Beginner"
	ExperienceIntermediate Experience = "Intermediate"
	ExperienceAdvanced     Experience = "Advanced"
	ExperienceProfessional Experience = "Professional"
)

// Valid reports whether e is one of the defined experience levels.
func (e Experience) Valid() bool {
	switch e {
	case ExperienceBeginner, ExperienceIntermediate, ExperienceAdvanced, ExperienceProfessional:
		return true
	}
	return false
}

func (e Experience) MarshalText() ([]byte, error) {
	if !e.Valid() {
		return nil, fmt.Errorf("unknown experience level %q", string(e))
	}
	return []byte(e), nil
}

func (e *Experience) UnmarshalText(b []byte) error {
	v := Experience(b)
	if !v.Valid() {
		return fmt.Errorf("unknown experience level %q", string(b))
	}
	*e = v
	return nil
}

// User represents a registered user.
// swagger:model User
type User struct {
	ID           uuid.UUID  `json:"id"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"password_hash"`
	FirstName    string     `json:"first_name"`
	LastName     string     `json:"last_name"`
	Phone        *string    `json:"phone"`
	Experience   Experience `json:"dance_experience"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	IsActive     bool       `json:"is_active"`
}

// NewUser returns an active User with a fresh id and both timestamps set to now.
func NewUser(email, passwordHash, firstName, lastName string, phone *string, experience Experience, now time.Time) *User {
	return &User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: passwordHash,
		FirstName:    firstName,
		LastName:     lastName,
		Phone:        phone,
		Experience:   experience,
		CreatedAt:    now,
		UpdatedAt:    now,
		IsActive:     true,
	}
}

// RecordID returns the storage identifier of the user.
func (u *User) RecordID() uuid.UUID { return u.ID }

// UserProfile is the public view of a user, without the password hash.
// swagger:model UserProfile
type UserProfile struct {
	ID         uuid.UUID  `json:"id"`
	Email      string     `json:"email"`
	FirstName  string     `json:"first_name"`
	LastName   string     `json:"last_name"`
	Phone      *string    `json:"phone"`
	Experience Experience `json:"dance_experience"`
	CreatedAt  time.Time  `json:"created_at"`
}

// Profile strips sensitive fields from u.
func (u *User) Profile() *UserProfile {
	return &UserProfile{
		ID:         u.ID,
		Email:      u.Email,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		Phone:      u.Phone,
		Experience: u.Experience,
		CreatedAt:  u.CreatedAt,
	}
}

// AuthResult is returned by register and login.
// swagger:model AuthResult
type AuthResult struct {
	Token string       `json:"token"`
	User  *UserProfile `json:"user"`
}

// TokenClaims is what a verified token yields.
type TokenClaims struct {
	UserID    uuid.UUID
	Email     string
	ExpiresAt time.Time
}

// PasswordHasher hashes and verifies passwords. Implementations may use bcrypt, argon2, etc.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// TokenIssuer issues tokens (e.g. JWT) for an authenticated user.
type TokenIssuer interface {
	Issue(userID uuid.UUID, email string, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a token and returns the subject and email embedded in it.
type TokenVerifier interface {
	Verify(token string) (*TokenClaims, error)
}

// UserRepository defines the interface for user storage.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context) ([]*User, error)
}

// RegisterParams carries an already validated sign-up request.
type RegisterParams struct {
	Email      string
	Password   string
	FirstName  string
	LastName   string
	Phone      *string
	Experience Experience
}

// AuthService registers users and logs them in.
type AuthService interface {
	Register(ctx context.Context, params RegisterParams) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
}

// UserService exposes profile reads for authenticated users.
type UserService interface {
	GetProfile(ctx context.Context, id uuid.UUID) (*UserProfile, error)
}
