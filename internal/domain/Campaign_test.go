package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFetchOptionsNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    FetchOptions
		expected FetchOptions
	}{
		{
			name:  "Defaults aplicados quando os filtros estão vazios",
			input: FetchOptions{},
			expected: FetchOptions{
				Limit:  DefaultFetchLimit,
				Status: []string{"ACTIVE", "PAUSED"},
			},
		},
		{
			name:  "Limite acima do máximo é reduzido",
			input: FetchOptions{Limit: 500},
			expected: FetchOptions{
				Limit:  MaxFetchLimit,
				Status: []string{"ACTIVE", "PAUSED"},
			},
		},
		{
			name:  "Limite negativo volta para o default",
			input: FetchOptions{Limit: -3},
			expected: FetchOptions{
				Limit:  DefaultFetchLimit,
				Status: []string{"ACTIVE", "PAUSED"},
			},
		},
		{
			name:  "Status em minúsculas e fora de ordem são normalizados",
			input: FetchOptions{Limit: 10, Status: []string{"paused", "Active"}},
			expected: FetchOptions{
				Limit:  10,
				Status: []string{"ACTIVE", "PAUSED"},
			},
		},
		{
			name:  "Status em branco são descartados",
			input: FetchOptions{Limit: 10, Status: []string{" archived ", "  ", ""}},
			expected: FetchOptions{
				Limit:  10,
				Status: []string{"ARCHIVED"},
			},
		},
		{
			name: "Data de início sem data de fim é descartada",
			input: FetchOptions{
				Limit:     10,
				Status:    []string{"ACTIVE"},
				StartDate: "2025-01-01",
			},
			expected: FetchOptions{
				Limit:  10,
				Status: []string{"ACTIVE"},
			},
		},
		{
			name: "Intervalo completo é preservado",
			input: FetchOptions{
				Limit:     10,
				Status:    []string{"ACTIVE"},
				StartDate: " 2025-01-01 ",
				EndDate:   "2025-01-31",
			},
			expected: FetchOptions{
				Limit:     10,
				Status:    []string{"ACTIVE"},
				StartDate: "2025-01-01",
				EndDate:   "2025-01-31",
			},
		},
		{
			name:  "ForceRefresh é preservado",
			input: FetchOptions{ForceRefresh: true},
			expected: FetchOptions{
				ForceRefresh: true,
				Limit:        DefaultFetchLimit,
				Status:       []string{"ACTIVE", "PAUSED"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.input.Normalize())
		})
	}
}

func TestFetchOptionsHasDateRange(t *testing.T) {
	assert.False(t, FetchOptions{}.HasDateRange())
	assert.False(t, FetchOptions{StartDate: "2025-01-01"}.HasDateRange())
	assert.True(t, FetchOptions{StartDate: "2025-01-01", EndDate: "2025-01-31"}.HasDateRange())
}

func TestFetchOptionsLowercaseStatus(t *testing.T) {
	opts := FetchOptions{Status: []string{"ACTIVE", "PAUSED"}}
	assert.Equal(t, []string{"active", "paused"}, opts.LowercaseStatus())
}
