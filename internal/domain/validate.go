package domain

import (
	"fmt"
	"net/mail"
	"unicode/utf8"
)

// fieldRule describes one field of the registration form. The whole form is
// validated by walking the schema table, so every field gets the same
// treatment and every violation is reported, not just the first.
type fieldRule struct {
	name     string
	required bool
	enum     []string
	minLen   int
	maxLen   int
	email    bool
	value    func(in *RegistrationInput) string
}

var registrationSchema = []fieldRule{
	{
		name:     "title",
		required: true,
		enum:     []string{"Dr", "Prof", "Mr", "Ms", "Mrs"},
		value:    func(in *RegistrationInput) string { return in.Title },
	},
	{
		name:     "firstName",
		required: true,
		minLen:   2,
		maxLen:   100,
		value:    func(in *RegistrationInput) string { return in.FirstName },
	},
	{
		name:     "lastName",
		required: true,
		minLen:   2,
		maxLen:   100,
		value:    func(in *RegistrationInput) string { return in.LastName },
	},
	{
		name:     "email",
		required: true,
		maxLen:   255,
		email:    true,
		value:    func(in *RegistrationInput) string { return in.Email },
	},
	{
		name:     "phoneNumber",
		required: true,
		minLen:   10,
		maxLen:   20,
		value:    func(in *RegistrationInput) string { return in.PhoneNumber },
	},
	{
		name:     "country",
		required: true,
		maxLen:   100,
		value:    func(in *RegistrationInput) string { return in.Country },
	},
	{
		name:   "city",
		maxLen: 100,
		value:  func(in *RegistrationInput) string { return in.City },
	},
	{
		name:     "organization",
		required: true,
		minLen:   2,
		maxLen:   255,
		value:    func(in *RegistrationInput) string { return in.Organization },
	},
	{
		name:     "jobTitle",
		required: true,
		minLen:   2,
		maxLen:   255,
		value:    func(in *RegistrationInput) string { return in.JobTitle },
	},
	{
		name:     "professionalCategory",
		required: true,
		enum: []string{
			"Medical Doctor",
			"Nurse/Midwife",
			"Public Health Professional",
			"Researcher/Academic",
			"Student",
			"Policy Maker",
			"NGO/Development Partner",
			"Other",
		},
		value: func(in *RegistrationInput) string { return in.ProfessionalCategory },
	},
	{
		name:  "yearsOfExperience",
		enum:  []string{"0-2", "3-5", "6-10", "11-15", "16+"},
		value: func(in *RegistrationInput) string { return in.YearsOfExperience },
	},
	{
		name:     "registrationType",
		required: true,
		enum:     []string{"international", "regional", "local", "student"},
		value:    func(in *RegistrationInput) string { return in.RegistrationType },
	},
	{
		name:  "dietaryRequirements",
		enum:  []string{"vegetarian", "vegan", "halal", "gluten-free", "other"},
		value: func(in *RegistrationInput) string { return in.DietaryRequirements },
	},
	{
		name:  "accommodationNeeded",
		enum:  []string{"no", "yes"},
		value: func(in *RegistrationInput) string { return in.AccommodationNeeded },
	},
	{
		// Unaccepted terms are reported as a missing field, same as the
		// other required inputs.
		name:     "termsAccepted",
		required: true,
		value: func(in *RegistrationInput) string {
			if in.TermsAccepted {
				return "true"
			}
			return ""
		},
	},
}

// ValidateRegistration checks a submission against the schema table.
// Missing required fields are collected separately from per-field rule
// violations; a nil return means the input is acceptable.
func ValidateRegistration(in *RegistrationInput) *ValidationError {
	var missing []string
	var details []FieldViolation

	for _, rule := range registrationSchema {
		v := rule.value(in)
		if v == "" {
			if rule.required {
				missing = append(missing, rule.name)
			}
			continue
		}

		// Bounds count characters, not bytes, so multi-byte names
		// are measured the way the form states them.
		if rule.minLen > 0 && utf8.RuneCountInString(v) < rule.minLen {
			details = append(details, FieldViolation{
				Field:   rule.name,
				Message: fmt.Sprintf("%s must be at least %d characters", rule.name, rule.minLen),
			})
			continue
		}
		if rule.maxLen > 0 && utf8.RuneCountInString(v) > rule.maxLen {
			details = append(details, FieldViolation{
				Field:   rule.name,
				Message: fmt.Sprintf("%s must be at most %d characters", rule.name, rule.maxLen),
			})
			continue
		}
		if rule.email {
			if _, err := mail.ParseAddress(v); err != nil {
				details = append(details, FieldViolation{
					Field:   rule.name,
					Message: "email must be a valid email address",
				})
			}
			continue
		}
		if len(rule.enum) > 0 && !contains(rule.enum, v) {
			details = append(details, FieldViolation{
				Field:   rule.name,
				Message: fmt.Sprintf("%s must be one of the allowed values", rule.name),
			})
		}
	}

	if len(missing) > 0 {
		return &ValidationError{MissingFields: missing}
	}
	if len(details) > 0 {
		return &ValidationError{Details: details}
	}
	return nil
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
