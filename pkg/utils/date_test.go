package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDateRange(t *testing.T) {
	tests := []struct {
		name          string
		startDate     string
		endDate       string
		expectedStart string
		expectedEnd   string
		expectedOK    bool
	}{
		{
			name:       "Ambas ausentes",
			startDate:  "",
			endDate:    "",
			expectedOK: false,
		},
		{
			name:       "Somente data de início",
			startDate:  "2025-01-01",
			endDate:    "",
			expectedOK: false,
		},
		{
			name:       "Somente data de fim",
			startDate:  "",
			endDate:    "2025-01-31",
			expectedOK: false,
		},
		{
			name:          "Intervalo completo",
			startDate:     " 2025-01-01 ",
			endDate:       "2025-01-31",
			expectedStart: "2025-01-01",
			expectedEnd:   "2025-01-31",
			expectedOK:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, ok := NormalizeDateRange(tt.startDate, tt.endDate)
			assert.Equal(t, tt.expectedStart, start)
			assert.Equal(t, tt.expectedEnd, end)
			assert.Equal(t, tt.expectedOK, ok)
		})
	}
}

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(0))
	assert.Equal(t, 1.23, RoundWithTwoDecimalPlace(1.2345))
	assert.Equal(t, 1.24, RoundWithTwoDecimalPlace(1.235))
}

func TestSafeRatio(t *testing.T) {
	assert.Equal(t, 2.5, SafeRatio(5, 2))
	assert.Equal(t, 0.33, SafeRatio(1, 3))
	assert.Equal(t, 0.0, SafeRatio(5, 0))
}
