package campaigning

import (
	"strings"
	"time"

	"github.com/snapix-app/snapix-api/infrastructure/integrator/facebook/fbdomain"
	"github.com/snapix-app/snapix-api/internal/domain"
	"github.com/snapix-app/snapix-api/pkg/utils"
)

const platformFacebook = "facebook"

// Layouts de data usados pela Graph API
var graphTimeLayouts = []string{
	"2006-01-02T15:04:05-0700",
	time.RFC3339,
	"2006-01-02",
}

// FromGraph monta o objeto de visão da campanha a partir do registro bruto da
// Graph API e do insight do período. Insight nulo (campanha sem entrega ou
// lote com falha) produz o sub-registro de métricas completo e zerado
func FromGraph(raw fbdomain.Campaign, insight *fbdomain.CampaignInsight, userEmail, accountID string) *domain.Campaign {
	budget, budgetType := resolveBudget(raw)

	id, err := utils.GenerateID()
	if err != nil {
		// nanoid só falha por falta de entropia; o meta_campaign_id continua
		// sendo a chave natural do upsert
		id = raw.ID
	}

	return &domain.Campaign{
		ID:                 id,
		MetaCampaignID:     raw.ID,
		Name:               raw.Name,
		Status:             strings.ToLower(raw.Status),
		EffectiveStatus:    strings.ToLower(raw.EffectiveStatus),
		Objective:          raw.Objective,
		Budget:             budget,
		BudgetType:         budgetType,
		CreatedDate:        parseGraphTime(raw.CreatedTime),
		UpdatedDate:        parseGraphTime(raw.UpdatedTime),
		StartDate:          parseGraphTime(raw.StartTime),
		EndDate:            parseGraphTime(raw.StopTime),
		Platform:           platformFacebook,
		IsActive:           raw.Status == "ACTIVE",
		PerformanceMetrics: BuildPerformanceMetrics(insight),
		CreatedBy:          userEmail,
		AdAccountID:        accountID,
	}
}

// BuildPerformanceMetrics calcula o sub-registro de métricas. As razões
// derivadas são protegidas contra divisão por zero: denominador zero produz
// razão zero, nunca NaN ou infinito
func BuildPerformanceMetrics(insight *fbdomain.CampaignInsight) domain.PerformanceMetrics {
	metrics := domain.PerformanceMetrics{}

	if insight == nil {
		return metrics
	}

	metrics.Spend = float64(insight.Spend)
	metrics.Impressions = int64(insight.Impressions)
	metrics.Clicks = int64(insight.Clicks)
	metrics.Conversions = int64(insight.Conversions)
	metrics.ConversionValue = float64(insight.ConversionValue)
	metrics.Reach = int64(insight.Reach)
	metrics.Frequency = utils.RoundWithTwoDecimalPlace(float64(insight.Frequency))

	metrics.CTR = utils.SafeRatio(float64(metrics.Clicks)*100, float64(metrics.Impressions))
	metrics.CPM = utils.SafeRatio(metrics.Spend*1000, float64(metrics.Impressions))
	metrics.CPC = utils.SafeRatio(metrics.Spend, float64(metrics.Clicks))
	metrics.ROAS = utils.SafeRatio(metrics.ConversionValue, metrics.Spend)
	metrics.CPA = utils.SafeRatio(metrics.Spend, float64(metrics.Conversions))

	return metrics
}

// resolveBudget escolhe o orçamento da campanha: diário tem precedência sobre
// o vitalício, ausência dos dois é "none". A Graph API envia centavos
func resolveBudget(raw fbdomain.Campaign) (float64, domain.BudgetType) {
	switch {
	case raw.DailyBudget > 0:
		return float64(raw.DailyBudget) / 100, domain.BudgetTypeDaily
	case raw.LifetimeBudget > 0:
		return float64(raw.LifetimeBudget) / 100, domain.BudgetTypeLifetime
	default:
		return 0, domain.BudgetTypeNone
	}
}

func parseGraphTime(value string) *time.Time {
	if value == "" {
		return nil
	}

	for _, layout := range graphTimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return &t
		}
	}

	return nil
}
