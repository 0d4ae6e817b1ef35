package appointment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceTable(t *testing.T) {
	cases := []struct {
		code  string
		name  string
		price string
	}{
		{"corte_cabelo", "Corte de Cabelo", "R$ 35,00"},
		{"corte_barba", "Corte de Barba", "R$ 25,00"},
		{"corte_cabelo_barba", "Corte de Cabelo e Barba", "R$ 50,00"},
	}

	for _, tc := range cases {
		st, err := ParseServiceType(tc.code)
		require.NoError(t, err)

		info, ok := st.Info()
		require.True(t, ok)
		assert.Equal(t, tc.name, info.Name)
		assert.Equal(t, tc.price, info.Price)
	}

	assert.Len(t, Services(), 3)
}

func TestParseServiceType_Unknown(t *testing.T) {
	_, err := ParseServiceType("sobrancelha")
	assert.ErrorIs(t, err, ErrInvalidService)
}

func TestFormatBRL(t *testing.T) {
	assert.Equal(t, "R$ 0,05", FormatBRL(5))
	assert.Equal(t, "R$ 35,00", FormatBRL(3500))
	assert.Equal(t, "R$ 1.234,50", FormatBRL(123450))
	assert.Equal(t, "R$ 1.000.000,00", FormatBRL(100000000))
	assert.Equal(t, "-R$ 25,00", FormatBRL(-2500))
}

func TestParsePaymentStatus(t *testing.T) {
	s, err := ParsePaymentStatus("paid")
	require.NoError(t, err)
	assert.Equal(t, PaymentPaid, s)

	s, err = ParsePaymentStatus(" Pending ")
	require.NoError(t, err)
	assert.Equal(t, PaymentPending, s)

	_, err = ParsePaymentStatus("refunded")
	assert.ErrorIs(t, err, ErrInvalidPaymentStatus)
}
