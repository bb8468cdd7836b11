package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"eventbooking/internal/domain"
)

// DefaultTokenExpiry is the lifetime of tokens issued on register and login.
const DefaultTokenExpiry = 30 * 24 * time.Hour

type authService struct {
	users       domain.UserRepository
	hasher      domain.PasswordHasher
	issuer      domain.TokenIssuer
	emails      domain.EmailService
	tokenExpiry time.Duration
	logger      zerolog.Logger
	now         func() time.Time
}

// NewAuthService creates an AuthService. emails may be nil, in which case no welcome email is sent.
func NewAuthService(users domain.UserRepository, hasher domain.PasswordHasher, issuer domain.TokenIssuer, emails domain.EmailService, tokenExpiry time.Duration, logger zerolog.Logger) domain.AuthService {
	if tokenExpiry <= 0 {
		tokenExpiry = DefaultTokenExpiry
	}
	return &authService{
		users:       users,
		hasher:      hasher,
		issuer:      issuer,
		emails:      emails,
		tokenExpiry: tokenExpiry,
		logger:      logger,
		now:         time.Now,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register checks the email index, then creates the user. Two concurrent
// registrations of one email can both pass the check; the later index write wins.
func (s *authService) Register(ctx context.Context, params domain.RegisterParams) (*domain.AuthResult, error) {
	email := normalizeEmail(params.Email)
	_, err := s.users.GetByEmail(ctx, email)
	if err == nil {
		return nil, domain.ErrDuplicateEmail
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	hash, err := s.hasher.Hash(params.Password)
	if err != nil {
		return nil, err
	}
	experience := params.Experience
	if experience == "" {
		experience = domain.ExperienceBeginner
	}
	user := domain.NewUser(email, hash, strings.TrimSpace(params.FirstName), strings.TrimSpace(params.LastName),
		params.Phone, experience, s.now().UTC())
	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	result, err := s.authResult(user)
	if err != nil {
		return nil, err
	}
	if s.emails != nil {
		welcome := &domain.WelcomeMessageEmailData{Email: user.Email, FirstName: user.FirstName}
		if err := s.emails.SendWelcomeMessage(ctx, welcome); err != nil {
			s.logger.Warn().Err(err).Str("user_id", user.ID.String()).Msg("welcome email not sent")
		}
	}
	return result, nil
}

// Login checks the active flag before the password.
func (s *authService) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	user, err := s.users.GetByEmail(ctx, normalizeEmail(email))
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if !user.IsActive {
		return nil, domain.ErrAccountDisabled
	}
	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to verify password: %w", err)
	}
	return s.authResult(user)
}

func (s *authService) authResult(user *domain.User) (*domain.AuthResult, error) {
	token, err := s.issuer.Issue(user.ID, user.Email, s.tokenExpiry)
	if err != nil {
		return nil, err
	}
	return &domain.AuthResult{Token: token, User: user.Profile()}, nil
}
