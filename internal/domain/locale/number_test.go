package locale_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rive3FY/magazzino-app/internal/domain/locale"
)

// La virgola italiana deve normalizzare al punto decimale.
func TestDecimal_VirgolaComeSeparatore(t *testing.T) {
	assert.True(t, locale.Decimal("12,5").Equal(decimal.RequireFromString("12.5")))
	assert.True(t, locale.Decimal("1.234").Equal(decimal.RequireFromString("1.234")))
	assert.True(t, locale.Decimal("  7 ").Equal(decimal.NewFromInt(7)))
}

// Valori non numerici normalizzano a zero (politica di import, non errore).
func TestDecimal_NonNumericoValeZero(t *testing.T) {
	assert.True(t, locale.Decimal("abc").IsZero())
	assert.True(t, locale.Decimal("").IsZero())
	assert.True(t, locale.Decimal("   ").IsZero())
	assert.True(t, locale.Decimal("12,5,6").IsZero())
}

// I negativi restano negativi: Decimal non applica vincoli di segno.
func TestDecimal_NegativoAmmesso(t *testing.T) {
	assert.True(t, locale.Decimal("-3,5").Equal(decimal.RequireFromString("-3.5")))
}

// Quantity accetta solo valori finiti strettamente positivi.
func TestQuantity_SoloPositivi(t *testing.T) {
	d, ok := locale.Quantity("12,5")
	require.True(t, ok)
	assert.True(t, d.Equal(decimal.RequireFromString("12.5")))

	_, ok = locale.Quantity("0")
	assert.False(t, ok)

	_, ok = locale.Quantity("-1")
	assert.False(t, ok)

	_, ok = locale.Quantity("abc")
	assert.False(t, ok)

	_, ok = locale.Quantity("")
	assert.False(t, ok)
}
