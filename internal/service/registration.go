package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/wb-go/wbf/logger"

	"github.com/FrankMwesigwa/ntlp-conf/internal/domain"
	"github.com/FrankMwesigwa/ntlp-conf/internal/fees"
	"github.com/FrankMwesigwa/ntlp-conf/internal/service/ports"
)

const (
	defaultPageLimit = 10
	maxPageLimit     = 100
)

type RegistrationService struct {
	repo   ports.RegistrationRepo
	logger logger.Logger
}

func NewRegistrationService(repo ports.RegistrationRepo, logger logger.Logger) *RegistrationService {
	return &RegistrationService{
		repo:   repo,
		logger: logger,
	}
}

// Submit validates a submission, prices it, assigns a payment reference and
// persists it. The fee and currency are derived from the registration type
// here and never recomputed afterwards.
func (s *RegistrationService) Submit(ctx context.Context, input *domain.RegistrationInput) (*domain.SubmissionResult, error) {
	if verr := domain.ValidateRegistration(input); verr != nil {
		return nil, verr
	}

	// Cheap duplicate check before the insert; the unique constraint on
	// email is what actually decides a concurrent race.
	if _, err := s.repo.GetByEmail(ctx, input.Email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrRegistrationNotFound) {
		return nil, fmt.Errorf("check email: %w", err)
	}

	fee, err := fees.ForType(domain.RegistrationType(input.RegistrationType))
	if err != nil {
		return nil, err
	}

	reg := newRegistration(input, fee)

	if err = s.repo.Create(ctx, reg); err != nil {
		// A reference collision is the one failure worth a second try
		// with a fresh reference. Anything else propagates.
		if errors.Is(err, domain.ErrReferenceTaken) {
			reg.PaymentReference = NewPaymentReference()
			err = s.repo.Create(ctx, reg)
		}
		if err != nil {
			return nil, err
		}
	}

	s.logger.Info("registration submitted",
		logger.Int64("registration_id", reg.ID),
		logger.String("registration_type", string(reg.RegistrationType)),
		logger.String("payment_reference", reg.PaymentReference),
	)

	return &domain.SubmissionResult{
		ID:                 reg.ID,
		Email:              reg.Email,
		FirstName:          reg.FirstName,
		LastName:           reg.LastName,
		RegistrationType:   reg.RegistrationType,
		RegistrationFee:    reg.RegistrationFee,
		Currency:           reg.Currency,
		PaymentReference:   reg.PaymentReference,
		PaymentStatus:      reg.PaymentStatus,
		RegistrationStatus: reg.RegistrationStatus,
	}, nil
}

func (s *RegistrationService) Get(ctx context.Context, id int64) (*domain.Registration, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *RegistrationService) GetByEmail(ctx context.Context, email string) (*domain.Registration, error) {
	return s.repo.GetByEmail(ctx, email)
}

func (s *RegistrationService) List(ctx context.Context, f domain.ListFilter) (*domain.RegistrationPage, error) {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = defaultPageLimit
	}
	if f.Limit > maxPageLimit {
		f.Limit = maxPageLimit
	}

	regs, total, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}

	totalPages := (total + f.Limit - 1) / f.Limit
	offset := (f.Page - 1) * f.Limit

	return &domain.RegistrationPage{
		Registrations: regs,
		Pagination: domain.Pagination{
			CurrentPage:        f.Page,
			TotalPages:         totalPages,
			TotalRegistrations: total,
			HasNextPage:        offset+f.Limit < total,
			HasPrevPage:        f.Page > 1,
		},
	}, nil
}

// AdminUpdateInput is the narrow admin patch. Anything beyond these four
// fields never reaches the store.
type AdminUpdateInput struct {
	PaymentStatus      string
	RegistrationStatus string
	PaymentDate        *time.Time
	ConfirmationDate   *time.Time
}

func (s *RegistrationService) AdminUpdate(ctx context.Context, id int64, input AdminUpdateInput) (*domain.Registration, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	var details []domain.FieldViolation
	patch := domain.StatusPatch{
		PaymentDate:      input.PaymentDate,
		ConfirmationDate: input.ConfirmationDate,
	}
	if input.PaymentStatus != "" {
		ps := domain.PaymentStatus(input.PaymentStatus)
		if !validPaymentStatus(ps) {
			details = append(details, domain.FieldViolation{
				Field:   "paymentStatus",
				Message: "paymentStatus must be one of pending, paid, failed, refunded",
			})
		}
		patch.PaymentStatus = &ps
	}
	if input.RegistrationStatus != "" {
		rs := domain.RegistrationStatus(input.RegistrationStatus)
		if !validRegistrationStatus(rs) {
			details = append(details, domain.FieldViolation{
				Field:   "registrationStatus",
				Message: "registrationStatus must be one of pending, confirmed, cancelled",
			})
		}
		patch.RegistrationStatus = &rs
	}
	if len(details) > 0 {
		return nil, &domain.ValidationError{Details: details}
	}

	updated, err := s.repo.UpdateStatus(ctx, id, patch)
	if err != nil {
		return nil, fmt.Errorf("update registration: %w", err)
	}

	s.logger.Info("registration updated",
		logger.Int64("registration_id", id),
	)

	return updated, nil
}

// UpdatePayment records a payment outcome. A paid status also confirms the
// registration; both fields land in the same store update so no read can see
// a paid but unconfirmed record.
func (s *RegistrationService) UpdatePayment(ctx context.Context, id int64, paymentStatus string, paymentDate *time.Time) (*domain.PaymentUpdateResult, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	if paymentStatus == "" {
		return nil, domain.ErrPaymentStatusRequired
	}
	ps := domain.PaymentStatus(paymentStatus)
	if !validPaymentStatus(ps) {
		return nil, &domain.ValidationError{Details: []domain.FieldViolation{{
			Field:   "paymentStatus",
			Message: "paymentStatus must be one of pending, paid, failed, refunded",
		}}}
	}

	patch := domain.StatusPatch{
		PaymentStatus: &ps,
		PaymentDate:   paymentDate,
	}
	if ps == domain.PaymentStatusPaid {
		confirmed := domain.RegistrationStatusConfirmed
		now := time.Now().UTC()
		patch.RegistrationStatus = &confirmed
		patch.ConfirmationDate = &now
	}

	updated, err := s.repo.UpdateStatus(ctx, id, patch)
	if err != nil {
		return nil, fmt.Errorf("update payment status: %w", err)
	}

	s.logger.Info("payment status updated",
		logger.Int64("registration_id", id),
		logger.String("payment_status", string(updated.PaymentStatus)),
		logger.String("registration_status", string(updated.RegistrationStatus)),
	)

	return &domain.PaymentUpdateResult{
		ID:                 updated.ID,
		PaymentStatus:      updated.PaymentStatus,
		RegistrationStatus: updated.RegistrationStatus,
		PaymentDate:        updated.PaymentDate,
		ConfirmationDate:   updated.ConfirmationDate,
	}, nil
}

// Cancel soft-cancels a registration. Cancelling twice is not an error.
func (s *RegistrationService) Cancel(ctx context.Context, id int64) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}

	if err := s.repo.Cancel(ctx, id); err != nil {
		return fmt.Errorf("cancel registration: %w", err)
	}

	s.logger.Info("registration cancelled",
		logger.Int64("registration_id", id),
	)

	return nil
}

func (s *RegistrationService) Stats(ctx context.Context) (*domain.RegistrationStats, error) {
	return s.repo.Stats(ctx)
}

func newRegistration(input *domain.RegistrationInput, fee fees.Fee) *domain.Registration {
	reg := &domain.Registration{
		Title:                input.Title,
		FirstName:            input.FirstName,
		LastName:             input.LastName,
		Email:                input.Email,
		PhoneNumber:          input.PhoneNumber,
		Country:              input.Country,
		City:                 optional(input.City),
		Organization:         input.Organization,
		JobTitle:             input.JobTitle,
		ProfessionalCategory: input.ProfessionalCategory,
		YearsOfExperience:    optional(input.YearsOfExperience),
		RegistrationType:     domain.RegistrationType(input.RegistrationType),
		RegistrationFee:      fee.Amount,
		Currency:             fee.Currency,
		DietaryRequirements:  input.DietaryRequirements,
		AccommodationNeeded:  input.AccommodationNeeded,
		SpecialNeeds:         optional(input.SpecialNeeds),
		// Newsletter subscription is opt-out.
		NewsletterSubscription: input.NewsletterSubscription == nil || *input.NewsletterSubscription,
		TermsAccepted:          input.TermsAccepted,
		PhotographyConsent:     input.PhotographyConsent != nil && *input.PhotographyConsent,
		PaymentStatus:          domain.PaymentStatusPending,
		PaymentReference:       NewPaymentReference(),
		RegistrationStatus:     domain.RegistrationStatusPending,
	}
	if reg.AccommodationNeeded == "" {
		reg.AccommodationNeeded = "no"
	}
	return reg
}

func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

func validPaymentStatus(s domain.PaymentStatus) bool {
	switch s {
	case domain.PaymentStatusPending, domain.PaymentStatusPaid,
		domain.PaymentStatusFailed, domain.PaymentStatusRefunded:
		return true
	}
	return false
}

func validRegistrationStatus(s domain.RegistrationStatus) bool {
	switch s {
	case domain.RegistrationStatusPending, domain.RegistrationStatusConfirmed,
		domain.RegistrationStatusCancelled:
		return true
	}
	return false
}
