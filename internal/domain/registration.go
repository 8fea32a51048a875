package domain

import "time"

type RegistrationType string

const (
	RegistrationTypeInternational RegistrationType = "international"
	RegistrationTypeRegional      RegistrationType = "regional"
	RegistrationTypeLocal         RegistrationType = "local"
	RegistrationTypeStudent       RegistrationType = "student"
)

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

type RegistrationStatus string

const (
	RegistrationStatusPending   RegistrationStatus = "pending"
	RegistrationStatusConfirmed RegistrationStatus = "confirmed"
	RegistrationStatusCancelled RegistrationStatus = "cancelled"
)

type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyUGX Currency = "UGX"
)

type Registration struct {
	ID                     int64              `json:"id"`
	Title                  string             `json:"title"`
	FirstName              string             `json:"firstName"`
	LastName               string             `json:"lastName"`
	Email                  string             `json:"email"`
	PhoneNumber            string             `json:"phoneNumber"`
	Country                string             `json:"country"`
	City                   *string            `json:"city"`
	Organization           string             `json:"organization"`
	JobTitle               string             `json:"jobTitle"`
	ProfessionalCategory   string             `json:"professionalCategory"`
	YearsOfExperience      *string            `json:"yearsOfExperience"`
	RegistrationType       RegistrationType   `json:"registrationType"`
	RegistrationFee        float64            `json:"registrationFee"`
	Currency               Currency           `json:"currency"`
	DietaryRequirements    string             `json:"dietaryRequirements"`
	AccommodationNeeded    string             `json:"accommodationNeeded"`
	SpecialNeeds           *string            `json:"specialNeeds"`
	NewsletterSubscription bool               `json:"newsletterSubscription"`
	TermsAccepted          bool               `json:"termsAccepted"`
	PhotographyConsent     bool               `json:"photographyConsent"`
	PaymentStatus          PaymentStatus      `json:"paymentStatus"`
	PaymentReference       string             `json:"paymentReference"`
	RegistrationStatus     RegistrationStatus `json:"registrationStatus"`
	PaymentDate            *time.Time         `json:"paymentDate"`
	ConfirmationDate       *time.Time         `json:"confirmationDate"`
	CreatedAt              time.Time          `json:"createdAt"`
	UpdatedAt              time.Time          `json:"-"`
}

// RegistrationInput carries a raw submission. Fee, currency, payment
// reference and both statuses are never taken from the caller.
type RegistrationInput struct {
	Title                  string
	FirstName              string
	LastName               string
	Email                  string
	PhoneNumber            string
	Country                string
	City                   string
	Organization           string
	JobTitle               string
	ProfessionalCategory   string
	YearsOfExperience      string
	RegistrationType       string
	DietaryRequirements    string
	AccommodationNeeded    string
	SpecialNeeds           string
	NewsletterSubscription *bool
	TermsAccepted          bool
	PhotographyConsent     *bool
}

// SubmissionResult is the projection returned to a new registrant.
type SubmissionResult struct {
	ID                 int64              `json:"id"`
	Email              string             `json:"email"`
	FirstName          string             `json:"firstName"`
	LastName           string             `json:"lastName"`
	RegistrationType   RegistrationType   `json:"registrationType"`
	RegistrationFee    float64            `json:"registrationFee"`
	Currency           Currency           `json:"currency"`
	PaymentReference   string             `json:"paymentReference"`
	PaymentStatus      PaymentStatus      `json:"paymentStatus"`
	RegistrationStatus RegistrationStatus `json:"registrationStatus"`
}

// StatusPatch is the restricted admin-update surface. Nil fields are left
// untouched; nothing outside these four fields can be changed post-create.
type StatusPatch struct {
	PaymentStatus      *PaymentStatus
	RegistrationStatus *RegistrationStatus
	PaymentDate        *time.Time
	ConfirmationDate   *time.Time
}

// PaymentUpdateResult is the narrow projection returned by the
// payment-status patch.
type PaymentUpdateResult struct {
	ID                 int64              `json:"id"`
	PaymentStatus      PaymentStatus      `json:"paymentStatus"`
	RegistrationStatus RegistrationStatus `json:"registrationStatus"`
	PaymentDate        *time.Time         `json:"paymentDate"`
	ConfirmationDate   *time.Time         `json:"confirmationDate"`
}

type ListFilter struct {
	RegistrationType   string
	PaymentStatus      string
	RegistrationStatus string
	Search             string
	Page               int
	Limit              int
}

type Pagination struct {
	CurrentPage        int  `json:"currentPage"`
	TotalPages         int  `json:"totalPages"`
	TotalRegistrations int  `json:"totalRegistrations"`
	HasNextPage        bool `json:"hasNextPage"`
	HasPrevPage        bool `json:"hasPrevPage"`
}

type RegistrationPage struct {
	Registrations []*Registration
	Pagination    Pagination
}

type DimensionCount struct {
	Value string
	Count int
}

type RegistrationStats struct {
	Total     int
	ByType    []DimensionCount
	ByStatus  []DimensionCount
	ByPayment []DimensionCount
}
