package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"eventbooking/internal/domain"
)

type registrationService struct {
	registrations domain.RegistrationRepository
	events        domain.EventRepository
	packages      domain.PackageRepository
	users         domain.UserRepository
	emails        domain.EmailService
	logger        zerolog.Logger
	now           func() time.Time
}

// NewRegistrationService returns a RegistrationService. emails may be nil.
func NewRegistrationService(registrations domain.RegistrationRepository, events domain.EventRepository, packages domain.PackageRepository, users domain.UserRepository, emails domain.EmailService, logger zerolog.Logger) domain.RegistrationService {
	return &registrationService{
		registrations: registrations,
		events:        events,
		packages:      packages,
		users:         users,
		emails:        emails,
		logger:        logger,
		now:           time.Now,
	}
}

// Register stores a pending registration and bumps the event's participant
// count. The counter update is best effort and may overshoot MaxParticipants.
func (s *registrationService) Register(ctx context.Context, userID uuid.UUID, eventID, packageID *uuid.UUID) (*domain.Registration, error) {
	reg := domain.NewRegistration(userID, eventID, packageID, s.now().UTC())
	if err := s.registrations.Create(ctx, reg); err != nil {
		return nil, fmt.Errorf("failed to create registration: %w", err)
	}
	if eventID != nil {
		if err := s.events.IncrementParticipants(ctx, *eventID); err != nil {
			s.logger.Warn().Err(err).Str("event_id", eventID.String()).Msg("failed to increment participants")
		}
	}
	s.sendConfirmation(ctx, reg)
	return reg, nil
}

func (s *registrationService) sendConfirmation(ctx context.Context, reg *domain.Registration) {
	if s.emails == nil {
		return
	}
	user, err := s.users.GetByID(ctx, reg.UserID)
	if err != nil {
		s.logger.Warn().Err(err).Str("user_id", reg.UserID.String()).Msg("registration email skipped")
		return
	}
	data := &domain.RegistrationEmailData{
		Email:          user.Email,
		FirstName:      user.FirstName,
		RegistrationID: reg.ID.String(),
		Status:         string(reg.Status),
	}
	if reg.EventID != nil {
		if e, err := s.events.GetByID(ctx, *reg.EventID); err == nil {
			data.EventTitle = e.Title
		} else if !errors.Is(err, domain.ErrNotFound) {
			s.logger.Warn().Err(err).Msg("event lookup for registration email failed")
		}
	}
	if reg.PackageID != nil {
		if p, err := s.packages.GetByID(ctx, *reg.PackageID); err == nil {
			data.PackageName = p.Name
		} else if !errors.Is(err, domain.ErrNotFound) {
			s.logger.Warn().Err(err).Msg("package lookup for registration email failed")
		}
	}
	if err := s.emails.SendRegistrationConfirmation(ctx, data); err != nil {
		s.logger.Warn().Err(err).Str("registration_id", reg.ID.String()).Msg("registration email not sent")
	}
}

func (s *registrationService) ListForUser(ctx context.Context, userID uuid.UUID) ([]*domain.Registration, error) {
	return s.registrations.ListByUserID(ctx, userID)
}
