package campaigning

import (
	"testing"

	"github.com/snapix-app/snapix-api/infrastructure/integrator/facebook/fbdomain"
	"github.com/snapix-app/snapix-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestBuildPerformanceMetrics(t *testing.T) {
	tests := []struct {
		name     string
		insight  *fbdomain.CampaignInsight
		validate func(t *testing.T, metrics domain.PerformanceMetrics)
	}{
		{
			name:    "Insight nulo produz métricas completas e zeradas",
			insight: nil,
			validate: func(t *testing.T, metrics domain.PerformanceMetrics) {
				assert.Equal(t, domain.PerformanceMetrics{}, metrics)
			},
		},
		{
			name: "Métricas derivadas calculadas e arredondadas",
			insight: &fbdomain.CampaignInsight{
				Spend:           150.0,
				Impressions:     10000,
				Clicks:          300,
				Conversions:     12,
				ConversionValue: 450.0,
				Reach:           8000,
				Frequency:       1.254,
			},
			validate: func(t *testing.T, metrics domain.PerformanceMetrics) {
				assert.Equal(t, 3.0, metrics.CTR)    // 300/10000*100
				assert.Equal(t, 0.5, metrics.CPC)    // 150/300
				assert.Equal(t, 15.0, metrics.CPM)   // 150/10000*1000
				assert.Equal(t, 3.0, metrics.ROAS)   // 450/150
				assert.Equal(t, 12.5, metrics.CPA)   // 150/12
				assert.Equal(t, 1.25, metrics.Frequency)
			},
		},
		{
			name: "Denominadores zerados nunca produzem NaN ou infinito",
			insight: &fbdomain.CampaignInsight{
				Spend:       0,
				Impressions: 0,
				Clicks:      0,
				Conversions: 0,
			},
			validate: func(t *testing.T, metrics domain.PerformanceMetrics) {
				assert.Equal(t, 0.0, metrics.CTR)
				assert.Equal(t, 0.0, metrics.CPC)
				assert.Equal(t, 0.0, metrics.CPM)
				assert.Equal(t, 0.0, metrics.ROAS)
				assert.Equal(t, 0.0, metrics.CPA)
			},
		},
		{
			name: "Gasto sem conversões mantém ROAS e CPA zerados",
			insight: &fbdomain.CampaignInsight{
				Spend:       80.0,
				Impressions: 2000,
				Clicks:      0,
				Conversions: 0,
			},
			validate: func(t *testing.T, metrics domain.PerformanceMetrics) {
				assert.Equal(t, 0.0, metrics.CTR)
				assert.Equal(t, 0.0, metrics.CPC)
				assert.Equal(t, 40.0, metrics.CPM)
				assert.Equal(t, 0.0, metrics.ROAS)
				assert.Equal(t, 0.0, metrics.CPA)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, BuildPerformanceMetrics(tt.insight))
		})
	}
}

func TestFromGraph_Budget(t *testing.T) {
	tests := []struct {
		name           string
		raw            fbdomain.Campaign
		expectedBudget float64
		expectedType   domain.BudgetType
	}{
		{
			name:           "Orçamento diário em centavos convertido para unidades",
			raw:            fbdomain.Campaign{ID: "1", DailyBudget: 2550},
			expectedBudget: 25.5,
			expectedType:   domain.BudgetTypeDaily,
		},
		{
			name:           "Orçamento diário tem precedência sobre o vitalício",
			raw:            fbdomain.Campaign{ID: "2", DailyBudget: 1000, LifetimeBudget: 500000},
			expectedBudget: 10.0,
			expectedType:   domain.BudgetTypeDaily,
		},
		{
			name:           "Orçamento vitalício usado na ausência do diário",
			raw:            fbdomain.Campaign{ID: "3", LifetimeBudget: 500000},
			expectedBudget: 5000.0,
			expectedType:   domain.BudgetTypeLifetime,
		},
		{
			name:           "Sem orçamento definido",
			raw:            fbdomain.Campaign{ID: "4"},
			expectedBudget: 0,
			expectedType:   domain.BudgetTypeNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			campaign := FromGraph(tt.raw, nil, "user@snapix.app", "123")

			assert.Equal(t, tt.expectedBudget, campaign.Budget)
			assert.Equal(t, tt.expectedType, campaign.BudgetType)
		})
	}
}

func TestFromGraph_StatusAndIdentity(t *testing.T) {
	raw := fbdomain.Campaign{
		ID:              "120210000001",
		Name:            "Campanha Verão",
		Status:          "ACTIVE",
		EffectiveStatus: "CAMPAIGN_PAUSED",
		Objective:       "OUTCOME_SALES",
		CreatedTime:     "2026-01-10T12:00:00-0300",
		UpdatedTime:     "2026-02-01T08:30:00-0300",
	}

	insight := &fbdomain.CampaignInsight{Spend: 10, Impressions: 100, Clicks: 5}

	campaign := FromGraph(raw, insight, "user@snapix.app", "9090")

	assert.Equal(t, "120210000001", campaign.MetaCampaignID)
	assert.NotEmpty(t, campaign.ID)
	assert.Equal(t, "active", campaign.Status)
	assert.Equal(t, "campaign_paused", campaign.EffectiveStatus)
	assert.True(t, campaign.IsActive)
	assert.Equal(t, "facebook", campaign.Platform)
	assert.Equal(t, "user@snapix.app", campaign.CreatedBy)
	assert.Equal(t, "9090", campaign.AdAccountID)
	assert.NotNil(t, campaign.CreatedDate)
	assert.NotNil(t, campaign.UpdatedDate)
	assert.Nil(t, campaign.StartDate)
	assert.Equal(t, 5.0, campaign.PerformanceMetrics.CTR)

	paused := FromGraph(fbdomain.Campaign{ID: "2", Status: "PAUSED"}, nil, "user@snapix.app", "9090")
	assert.Equal(t, "paused", paused.Status)
	assert.False(t, paused.IsActive)
}

// O mapeamento é determinístico: aplicar duas vezes sobre a mesma entrada
// produz o mesmo resultado, exceto pelo ID interno gerado
func TestFromGraph_Idempotence(t *testing.T) {
	raw := fbdomain.Campaign{ID: "77", Name: "Retargeting", Status: "ACTIVE", DailyBudget: 1200}
	insight := &fbdomain.CampaignInsight{Spend: 33.3, Impressions: 500, Clicks: 10}

	first := FromGraph(raw, insight, "user@snapix.app", "1")
	second := FromGraph(raw, insight, "user@snapix.app", "1")

	first.ID = ""
	second.ID = ""
	assert.Equal(t, first, second)
}
