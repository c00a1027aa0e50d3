package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputePaymentAmount(t *testing.T) {
	tests := []struct {
		name     string
		base     float64
		expected float64
	}{
		{"mid-band venue price", 50000, 59000},
		{"rounds down", 1001, 1181},
		{"rounds half away from zero", 375, 443},
		{"small amount", 100, 118},
		{"zero", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ComputePaymentAmount(tt.base))
		})
	}
}

func TestDerivePricePerDay(t *testing.T) {
	v := &Venue{PriceMin: 40000, PriceMax: 60000}
	v.DerivePricePerDay()
	assert.Equal(t, float64(50000), v.PricePerDay)

	// Re-deriving after a band change replaces the old value.
	v.PriceMax = 70000
	v.DerivePricePerDay()
	assert.Equal(t, float64(55000), v.PricePerDay)
}
