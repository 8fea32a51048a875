package dto

import (
	"time"

	"github.com/FrankMwesigwa/ntlp-conf/internal/domain"
)

// RegistrationRequest deliberately carries no binding tags for the form
// fields: presence and enum checks run through the registration schema so
// the response can name every missing field at once.
type RegistrationRequest struct {
	Title                  string `json:"title"`
	FirstName              string `json:"firstName"`
	LastName               string `json:"lastName"`
	Email                  string `json:"email"`
	PhoneNumber            string `json:"phoneNumber"`
	Country                string `json:"country"`
	City                   string `json:"city"`
	Organization           string `json:"organization"`
	JobTitle               string `json:"jobTitle"`
	ProfessionalCategory   string `json:"professionalCategory"`
	YearsOfExperience      string `json:"yearsOfExperience"`
	RegistrationType       string `json:"registrationType"`
	DietaryRequirements    string `json:"dietaryRequirements"`
	AccommodationNeeded    string `json:"accommodationNeeded"`
	SpecialNeeds           string `json:"specialNeeds"`
	NewsletterSubscription *bool  `json:"newsletterSubscription"`
	TermsAccepted          bool   `json:"termsAccepted"`
	PhotographyConsent     *bool  `json:"photographyConsent"`
}

func (r RegistrationRequest) ToInput() *domain.RegistrationInput {
	return &domain.RegistrationInput{
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
		RegistrationType:       r.RegistrationType,
		DietaryRequirements:    r.DietaryRequirements,
		AccommodationNeeded:    r.AccommodationNeeded,
		SpecialNeeds:           r.SpecialNeeds,
		NewsletterSubscription: r.NewsletterSubscription,
		TermsAccepted:          r.TermsAccepted,
		PhotographyConsent:     r.PhotographyConsent,
	}
}

type AdminUpdateRequest struct {
	PaymentStatus      string     `json:"paymentStatus"`
	RegistrationStatus string     `json:"registrationStatus"`
	PaymentDate        *time.Time `json:"paymentDate"`
	ConfirmationDate   *time.Time `json:"confirmationDate"`
}

type PaymentUpdateRequest struct {
	PaymentStatus string     `json:"paymentStatus"`
	PaymentDate   *time.Time `json:"paymentDate"`
}

type UserRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

type ActivityRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	UserID      int64  `json:"userid" binding:"required"`
}
