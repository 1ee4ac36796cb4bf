package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMethodsAreStable(t *testing.T) {
	got := Methods()
	assert.Len(t, got, 4)
	assert.Equal(t, "dana", got[0].Code)
	assert.Equal(t, "bank", got[3].Code)

	// callers may not mutate the shared table
	got[0].Code = "mutated"
	fresh := Methods()
	assert.Equal(t, "dana", fresh[0].Code)
}

func TestByCode(t *testing.T) {
	m, ok := ByCode("gopay")
	assert.True(t, ok)
	assert.Equal(t, "GoPay: 081234567890", m.Display)

	_, ok = ByCode("paypal")
	assert.False(t, ok)
}

func TestName(t *testing.T) {
	assert.Equal(t, "DANA", Method{Display: "DANA: 081234567890"}.Name())
	assert.Equal(t, "BCA", Method{Display: "BCA: 1234567890 a.n. Toko Premium Apps"}.Name())
	assert.Equal(t, "Tunai", Method{Display: "Tunai"}.Name())
}
