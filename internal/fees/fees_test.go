package fees

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FrankMwesigwa/ntlp-conf/internal/domain"
)

func TestForType_Schedule(t *testing.T) {
	tests := []struct {
		regType  domain.RegistrationType
		amount   float64
		currency domain.Currency
	}{
		{domain.RegistrationTypeInternational, 400, domain.CurrencyUSD},
		{domain.RegistrationTypeRegional, 200, domain.CurrencyUSD},
		{domain.RegistrationTypeLocal, 150000, domain.CurrencyUGX},
		{domain.RegistrationTypeStudent, 75000, domain.CurrencyUGX},
	}

	for _, tt := range tests {
		t.Run(string(tt.regType), func(t *testing.T) {
			fee, err := ForType(tt.regType)

			require.NoError(t, err)
			assert.Equal(t, tt.amount, fee.Amount)
			assert.Equal(t, tt.currency, fee.Currency)
		})
	}
}

func TestForType_UnknownType(t *testing.T) {
	_, err := ForType(domain.RegistrationType("vip"))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidCategory)
}

func TestForType_EmptyType(t *testing.T) {
	_, err := ForType(domain.RegistrationType(""))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidCategory)
}
