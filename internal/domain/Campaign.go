package domain

import (
	"sort"
	"strings"
	"time"

	"github.com/snapix-app/snapix-api/pkg/utils"
)

type BudgetType string

const (
	BudgetTypeDaily    BudgetType = "daily"
	BudgetTypeLifetime BudgetType = "lifetime"
	BudgetTypeNone     BudgetType = "none"
)

// PerformanceMetrics agrupa os contadores brutos de uma campanha e as razões
// derivadas calculadas no mapeamento. O sub-registro está sempre completo:
// campos ausentes no upstream entram zerados
type PerformanceMetrics struct {
	Spend           float64 `json:"spend"`
	Impressions     int64   `json:"impressions"`
	Clicks          int64   `json:"clicks"`
	Conversions     int64   `json:"conversions"`
	ConversionValue float64 `json:"conversion_value"`
	Reach           int64   `json:"reach"`
	Frequency       float64 `json:"frequency"`
	CTR             float64 `json:"ctr"`
	CPC             float64 `json:"cpc"`
	CPM             float64 `json:"cpm"`
	ROAS            float64 `json:"roas"`
	CPA             float64 `json:"cpa"`
}

// Campaign é o objeto de visão retornado pelo serviço de sincronização,
// idêntico nos caminhos live, cache e fallback de banco
type Campaign struct {
	ID                 string             `json:"id"`
	MetaCampaignID     string             `json:"meta_campaign_id"`
	Name               string             `json:"name"`
	Status             string             `json:"status"` // sempre minúsculo
	EffectiveStatus    string             `json:"effective_status,omitempty"`
	Objective          string             `json:"objective,omitempty"`
	Budget             float64            `json:"budget"` // em unidades da moeda (upstream envia centavos)
	BudgetType         BudgetType         `json:"budget_type"`
	CreatedDate        *time.Time         `json:"created_date,omitempty"`
	UpdatedDate        *time.Time         `json:"updated_date,omitempty"`
	StartDate          *time.Time         `json:"start_date,omitempty"`
	EndDate            *time.Time         `json:"end_date,omitempty"`
	Platform           string             `json:"platform"`
	IsActive           bool               `json:"is_active"`
	PerformanceMetrics PerformanceMetrics `json:"performance_metrics"`
	CreatedBy          string             `json:"created_by,omitempty"`
	AdAccountID        string             `json:"ad_account_id,omitempty"`
}

type CampaignSource string

const (
	CampaignSourceLive     CampaignSource = "live"
	CampaignSourceCache    CampaignSource = "cache"
	CampaignSourceDatabase CampaignSource = "database"
)

// CampaignFetchResult é o contrato de saída do serviço de sincronização
type CampaignFetchResult struct {
	Campaigns []*Campaign    `json:"data"`
	Count     int            `json:"count"`
	Source    CampaignSource `json:"source"`
	Timestamp time.Time      `json:"timestamp"`
}

// FetchOptions são os parâmetros de busca de campanhas
type FetchOptions struct {
	ForceRefresh bool
	Limit        int
	Status       []string
	StartDate    string
	EndDate      string
}

const (
	DefaultFetchLimit = 50
	MaxFetchLimit     = 100
)

// Normalize aplica os defaults e as regras de saneamento dos filtros:
// limite em [1,100], status default {ACTIVE, PAUSED} ordenado, datas em
// branco tratadas como ausentes (regra "ambas ou nenhuma")
func (o FetchOptions) Normalize() FetchOptions {
	if o.Limit <= 0 {
		o.Limit = DefaultFetchLimit
	}
	if o.Limit > MaxFetchLimit {
		o.Limit = MaxFetchLimit
	}

	if len(o.Status) == 0 {
		o.Status = []string{"ACTIVE", "PAUSED"}
	}

	statuses := make([]string, 0, len(o.Status))
	for _, s := range o.Status {
		s = strings.TrimSpace(s)
		if s != "" {
			statuses = append(statuses, strings.ToUpper(s))
		}
	}
	// Ordenar para que consultas semanticamente iguais gerem a mesma chave de cache
	sort.Strings(statuses)
	o.Status = statuses

	o.StartDate, o.EndDate, _ = utils.NormalizeDateRange(o.StartDate, o.EndDate)

	return o
}

// HasDateRange indica se o intervalo de datas deve ser aplicado
func (o FetchOptions) HasDateRange() bool {
	return o.StartDate != "" && o.EndDate != ""
}

// LowercaseStatus retorna o conjunto de status em minúsculas, como  é
// persistido na coluna status das campanhas
func (o FetchOptions) LowercaseStatus() []string {
	statuses := make([]string, 0, len(o.Status))
	for _, s := range o.Status {
		statuses = append(statuses, strings.ToLower(s))
	}
	return statuses
}

// CampaignSummary agrega métricas sobre o conjunto de campanhas do usuário
type CampaignSummary struct {
	TotalCampaigns   int     `json:"total_campaigns"`
	ActiveCampaigns  int     `json:"active_campaigns"`
	TotalSpend       float64 `json:"total_spend"`
	TotalImpressions int64   `json:"total_impressions"`
	TotalClicks      int64   `json:"total_clicks"`
	TotalConversions int64   `json:"total_conversions"`
	AvgCTR           float64 `json:"avg_ctr"`
	AvgCPC           float64 `json:"avg_cpc"`
	AvgROAS          float64 `json:"avg_roas"`
}
