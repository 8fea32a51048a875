package dto

import (
	"time"

	"github.com/FrankMwesigwa/ntlp-conf/internal/domain"
)

// RegistrationResponse is the read projection of a registration. It omits the
// updatedAt audit column so the mutation timestamp never leaks to API
// consumers.
type RegistrationResponse struct {
	ID                     int64      `json:"id"`
	Title                  string     `json:"title"`
	FirstName              string     `json:"firstName"`
	LastName               string     `json:"lastName"`
	Email                  string     `json:"email"`
	PhoneNumber            string     `json:"phoneNumber"`
	Country                string     `json:"country"`
	City                   *string    `json:"city"`
	Organization           string     `json:"organization"`
	JobTitle               string     `json:"jobTitle"`
	ProfessionalCategory   string     `json:"professionalCategory"`
	YearsOfExperience      *string    `json:"yearsOfExperience"`
	RegistrationType       string     `json:"registrationType"`
	RegistrationFee        float64    `json:"registrationFee"`
	Currency               string     `json:"currency"`
	DietaryRequirements    string     `json:"dietaryRequirements"`
	AccommodationNeeded    string     `json:"accommodationNeeded"`
	SpecialNeeds           *string    `json:"specialNeeds"`
	NewsletterSubscription bool       `json:"newsletterSubscription"`
	TermsAccepted          bool       `json:"termsAccepted"`
	PhotographyConsent     bool       `json:"photographyConsent"`
	PaymentStatus          string     `json:"paymentStatus"`
	PaymentReference       string     `json:"paymentReference"`
	RegistrationStatus     string     `json:"registrationStatus"`
	PaymentDate            *time.Time `json:"paymentDate"`
	ConfirmationDate       *time.Time `json:"confirmationDate"`
	CreatedAt              time.Time  `json:"createdAt"`
}

type RegistrationListResponse struct {
	Registrations []RegistrationResponse `json:"registrations"`
	Pagination    domain.Pagination      `json:"pagination"`
}

type SubmissionResponse struct {
	Message      string                   `json:"message"`
	Registration *domain.SubmissionResult `json:"registration"`
}

type PaymentUpdateResponse struct {
	Message      string                      `json:"message"`
	Registration *domain.PaymentUpdateResult `json:"registration"`
}

type AdminUpdateResponse struct {
	Message      string               `json:"message"`
	Registration RegistrationResponse `json:"registration"`
}

type TypeCount struct {
	RegistrationType string `json:"registrationType"`
	Count            int    `json:"count"`
}

type StatusCount struct {
	RegistrationStatus string `json:"registrationStatus"`
	Count              int    `json:"count"`
}

type PaymentCount struct {
	PaymentStatus string `json:"paymentStatus"`
	Count         int    `json:"count"`
}

type StatsResponse struct {
	TotalRegistrations int            `json:"totalRegistrations"`
	ByType             []TypeCount    `json:"byType"`
	ByStatus           []StatusCount  `json:"byStatus"`
	ByPayment          []PaymentCount `json:"byPayment"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

type MissingFieldsResponse struct {
	Error         string   `json:"error"`
	MissingFields []string `json:"missingFields"`
}

type ValidationDetailsResponse struct {
	Error   string                  `json:"error"`
	Details []domain.FieldViolation `json:"details"`
}

func ToRegistrationResponse(r *domain.Registration) RegistrationResponse {
	return RegistrationResponse{
		ID:                     r.ID,
		Title:                  r.Title,
		FirstName:              r.FirstName,
		LastName:               r.LastName,
		Email:                  r.Email,
		PhoneNumber:            r.PhoneNumber,
		Country:                r.Country,
		City:                   r.City,
		Organization:           r.Organization,
		JobTitle:               r.JobTitle,
		ProfessionalCategory:   r.ProfessionalCategory,
		YearsOfExperience:      r.YearsOfExperience,
		RegistrationType:       string(r.RegistrationType),
		RegistrationFee:        r.RegistrationFee,
		Currency:               string(r.Currency),
		DietaryRequirements:    r.DietaryRequirements,
		AccommodationNeeded:    r.AccommodationNeeded,
		SpecialNeeds:           r.SpecialNeeds,
		NewsletterSubscription: r.NewsletterSubscription,
		TermsAccepted:          r.TermsAccepted,
		PhotographyConsent:     r.PhotographyConsent,
		PaymentStatus:          string(r.PaymentStatus),
		PaymentReference:       r.PaymentReference,
		RegistrationStatus:     string(r.RegistrationStatus),
		PaymentDate:            r.PaymentDate,
		ConfirmationDate:       r.ConfirmationDate,
		CreatedAt:              r.CreatedAt,
	}
}

func ToStatsResponse(s *domain.RegistrationStats) StatsResponse {
	resp := StatsResponse{
		TotalRegistrations: s.Total,
		ByType:             make([]TypeCount, 0, len(s.ByType)),
		ByStatus:           make([]StatusCount, 0, len(s.ByStatus)),
		ByPayment:          make([]PaymentCount, 0, len(s.ByPayment)),
	}
	for _, c := range s.ByType {
		resp.ByType = append(resp.ByType, TypeCount{RegistrationType: c.Value, Count: c.Count})
	}
	for _, c := range s.ByStatus {
		resp.ByStatus = append(resp.ByStatus, StatusCount{RegistrationStatus: c.Value, Count: c.Count})
	}
	for _, c := range s.ByPayment {
		resp.ByPayment = append(resp.ByPayment, PaymentCount{PaymentStatus: c.Value, Count: c.Count})
	}
	return resp
}
