// Package fees maps a registration type to its conference fee.
package fees

import (
	"github.com/FrankMwesigwa/ntlp-conf/internal/domain"
)

type Fee struct {
	Amount   float64
	Currency domain.Currency
}

var schedule = map[domain.RegistrationType]Fee{
	domain.RegistrationTypeInternational: {Amount: 400, Currency: domain.CurrencyUSD},
	domain.RegistrationTypeRegional:      {Amount: 200, Currency: domain.CurrencyUSD},
	domain.RegistrationTypeLocal:         {Amount: 150000, Currency: domain.CurrencyUGX},
	domain.RegistrationTypeStudent:       {Amount: 75000, Currency: domain.CurrencyUGX},
}

// ForType returns the fixed fee for a registration type. Unknown types fail
// with ErrInvalidCategory rather than falling back to a default tier, so a
// gap in upstream validation cannot silently price someone at the local rate.
func ForType(t domain.RegistrationType) (Fee, error) {
	fee, ok := schedule[t]
	if !ok {
		return Fee{}, domain.ErrInvalidCategory
	}
	return fee, nil
}
