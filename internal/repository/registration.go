package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/FrankMwesigwa/ntlp-conf/internal/domain"
)

const (
	emailConstraint     = "registrations_email_key"
	referenceConstraint = "registrations_payment_reference_key"
)

const registrationColumns = `id, title, first_name, last_name, email, phone_number, country, city,
	organization, job_title, professional_category, years_of_experience,
	registration_type, registration_fee, currency,
	dietary_requirements, accommodation_needed, special_needs,
	newsletter_subscription, terms_accepted, photography_consent,
	payment_status, payment_reference, registration_status,
	payment_date, confirmation_date, created_at, updated_at`

type RegistrationRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewRegistrationRepo(db *dbpg.DB) *RegistrationRepository {
	return &RegistrationRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Create inserts a new registration and fills in the store-assigned id and
// timestamps. Email and payment-reference uniqueness is enforced by the
// database constraints, so two concurrent submissions with the same email
// cannot both land; the loser sees the conflict error.
func (r *RegistrationRepository) Create(ctx context.Context, reg *domain.Registration) error {
	query := `INSERT INTO registrations (
				title, first_name, last_name, email, phone_number, country, city,
				organization, job_title, professional_category, years_of_experience,
				registration_type, registration_fee, currency,
				dietary_requirements, accommodation_needed, special_needs,
				newsletter_subscription, terms_accepted, photography_consent,
				payment_status, payment_reference, registration_status)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
					  $15, $16, $17, $18, $19, $20, $21, $22, $23)
			  RETURNING id, created_at, updated_at`

	err := r.db.Master.QueryRowContext(
		ctx, query,
		reg.Title, reg.FirstName, reg.LastName, reg.Email, reg.PhoneNumber,
		reg.Country, reg.City, reg.Organization, reg.JobTitle,
		reg.ProfessionalCategory, reg.YearsOfExperience,
		reg.RegistrationType, reg.RegistrationFee, reg.Currency,
		reg.DietaryRequirements, reg.AccommodationNeeded, reg.SpecialNeeds,
		reg.NewsletterSubscription, reg.TermsAccepted, reg.PhotographyConsent,
		reg.PaymentStatus, reg.PaymentReference, reg.RegistrationStatus,
	).Scan(&reg.ID, &reg.CreatedAt, &reg.UpdatedAt)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			if pgErr.Constraint == referenceConstraint {
				return domain.ErrReferenceTaken
			}
			return domain.ErrEmailTaken
		}
		return fmt.Errorf("insert registration: %w", err)
	}

	return nil
}

func (r *RegistrationRepository) GetByID(ctx context.Context, id int64) (*domain.Registration, error) {
	query := `SELECT ` + registrationColumns + `
			  FROM registrations
			  WHERE id=$1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get registration: %w", err)
	}

	return scanRegistration(row)
}

func (r *RegistrationRepository) GetByEmail(ctx context.Context, email string) (*domain.Registration, error) {
	query := `SELECT ` + registrationColumns + `
			  FROM registrations
			  WHERE email=$1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, email)
	if err != nil {
		return nil, fmt.Errorf("get registration by email: %w", err)
	}

	return scanRegistration(row)
}

// List returns one page of registrations ordered by creation time descending
// plus the total match count for the same filter.
func (r *RegistrationRepository) List(ctx context.Context, f domain.ListFilter) ([]*domain.Registration, int, error) {
	where, args := buildListWhere(f)

	countQuery := `SELECT COUNT(*) FROM registrations` + where
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, countQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("count registrations: %w", err)
	}
	var total int
	if err = row.Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("scan count: %w", err)
	}

	offset := (f.Page - 1) * f.Limit
	pageArgs := append(args, f.Limit, offset)
	query := fmt.Sprintf(`SELECT `+registrationColumns+`
			  FROM registrations%s
			  ORDER BY created_at DESC
			  LIMIT $%d OFFSET $%d`, where, len(args)+1, len(args)+2)

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, pageArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("list registrations: %w", err)
	}
	defer rows.Close()

	var res []*domain.Registration
	for rows.Next() {
		reg, err := scanRegistrationRow(rows)
		if err != nil {
			return nil, 0, err
		}
		res = append(res, reg)
	}

	return res, total, rows.Err()
}

// UpdateStatus applies the restricted admin patch in a single UPDATE, so a
// paid payment and its confirmation always land together.
func (r *RegistrationRepository) UpdateStatus(ctx context.Context, id int64, patch domain.StatusPatch) (*domain.Registration, error) {
	query := `UPDATE registrations
			  SET payment_status = COALESCE($2, payment_status),
				  registration_status = COALESCE($3, registration_status),
				  payment_date = COALESCE($4, payment_date),
				  confirmation_date = COALESCE($5, confirmation_date),
				  updated_at = NOW()
			  WHERE id = $1
			  RETURNING ` + registrationColumns

	var paymentStatus, registrationStatus any
	if patch.PaymentStatus != nil {
		paymentStatus = string(*patch.PaymentStatus)
	}
	if patch.RegistrationStatus != nil {
		registrationStatus = string(*patch.RegistrationStatus)
	}

	row := r.db.Master.QueryRowContext(
		ctx, query, id,
		paymentStatus, registrationStatus,
		patch.PaymentDate, patch.ConfirmationDate,
	)

	return scanRegistration(row)
}

// Cancel marks a registration cancelled. The record is kept; cancelling an
// already-cancelled registration is a no-op.
func (r *RegistrationRepository) Cancel(ctx context.Context, id int64) error {
	query := `UPDATE registrations
			  SET registration_status = $2, updated_at = NOW()
			  WHERE id = $1`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, domain.RegistrationStatusCancelled)
	if err != nil {
		return fmt.Errorf("cancel registration: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("cancel rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrRegistrationNotFound
	}

	return nil
}

func (r *RegistrationRepository) Stats(ctx context.Context) (*domain.RegistrationStats, error) {
	stats := &domain.RegistrationStats{}

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, `SELECT COUNT(*) FROM registrations`)
	if err != nil {
		return nil, fmt.Errorf("count registrations: %w", err)
	}
	if err = row.Scan(&stats.Total); err != nil {
		return nil, fmt.Errorf("scan total: %w", err)
	}

	for _, dim := range []struct {
		column string
		dest   *[]domain.DimensionCount
	}{
		{"registration_type", &stats.ByType},
		{"registration_status", &stats.ByStatus},
		{"payment_status", &stats.ByPayment},
	} {
		counts, err := r.countBy(ctx, dim.column)
		if err != nil {
			return nil, err
		}
		*dim.dest = counts
	}

	return stats, nil
}

func (r *RegistrationRepository) countBy(ctx context.Context, column string) ([]domain.DimensionCount, error) {
	query := fmt.Sprintf(`SELECT %s, COUNT(*) FROM registrations GROUP BY %s ORDER BY %s`,
		column, column, column)

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("count by %s: %w", column, err)
	}
	defer rows.Close()

	var res []domain.DimensionCount
	for rows.Next() {
		var c domain.DimensionCount
		if err = rows.Scan(&c.Value, &c.Count); err != nil {
			return nil, fmt.Errorf("scan count by %s: %w", column, err)
		}
		res = append(res, c)
	}

	return res, rows.Err()
}

func buildListWhere(f domain.ListFilter) (string, []any) {
	var conds []string
	var args []any

	if f.RegistrationType != "" {
		args = append(args, f.RegistrationType)
		conds = append(conds, fmt.Sprintf("registration_type = $%d", len(args)))
	}
	if f.PaymentStatus != "" {
		args = append(args, f.PaymentStatus)
		conds = append(conds, fmt.Sprintf("payment_status = $%d", len(args)))
	}
	if f.RegistrationStatus != "" {
		args = append(args, f.RegistrationStatus)
		conds = append(conds, fmt.Sprintf("registration_status = $%d", len(args)))
	}
	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf(
			"(first_name ILIKE $%d OR last_name ILIKE $%d OR email ILIKE $%d OR organization ILIKE $%d)",
			n, n, n, n))
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRegistration(row rowScanner) (*domain.Registration, error) {
	reg, err := scanRegistrationRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRegistrationNotFound
		}
		return nil, err
	}
	return reg, nil
}

func scanRegistrationRow(row rowScanner) (*domain.Registration, error) {
	var reg domain.Registration
	err := row.Scan(
		&reg.ID, &reg.Title, &reg.FirstName, &reg.LastName, &reg.Email,
		&reg.PhoneNumber, &reg.Country, &reg.City,
		&reg.Organization, &reg.JobTitle, &reg.ProfessionalCategory, &reg.YearsOfExperience,
		&reg.RegistrationType, &reg.RegistrationFee, &reg.Currency,
		&reg.DietaryRequirements, &reg.AccommodationNeeded, &reg.SpecialNeeds,
		&reg.NewsletterSubscription, &reg.TermsAccepted, &reg.PhotographyConsent,
		&reg.PaymentStatus, &reg.PaymentReference, &reg.RegistrationStatus,
		&reg.PaymentDate, &reg.ConfirmationDate, &reg.CreatedAt, &reg.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan registration: %w", err)
	}
	return &reg, nil
}
