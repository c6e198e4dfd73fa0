package campaigning

import (
	"github.com/snapix-app/snapix-api/infrastructure/integrator/facebook/fbclient"
	"github.com/snapix-app/snapix-api/infrastructure/integrator/facebook/fbdomain"
	"github.com/snapix-app/snapix-api/internal/domain"
)

// CampaignFetcher define a interface de leitura de campanhas do Facebook
type CampaignFetcher interface {
	// ListCampaigns busca os registros de campanha da conta de anúncios
	ListCampaigns(accountID, accessToken string, query *fbclient.CampaignQuery) ([]fbdomain.Campaign, error)

	// GetInsightsForCampaigns busca os insights de um lote de campanhas
	GetInsightsForCampaigns(campaignIDs []string, accessToken string, filters *fbclient.InsightFilters) (map[string]*fbdomain.CampaignInsight, error)
}

// CampaignSyncer é a interface completa do serviço de sincronização de campanhas
type CampaignSyncer interface {
	// FetchCampaignsWithCache é o ponto de entrada principal: cache, busca ao
	// vivo com enriquecimento de insights, persistência e fallback de banco
	FetchCampaignsWithCache(userEmail string, opts domain.FetchOptions) (*domain.CampaignFetchResult, error)

	// RefreshCampaigns invalida o cache do usuário e re-sincroniza
	RefreshCampaigns(userEmail string, opts domain.FetchOptions) (*domain.CampaignFetchResult, error)

	// GetCampaignSummary agrega as métricas do conjunto de campanhas do usuário
	GetCampaignSummary(userEmail string) (*domain.CampaignSummary, error)

	// GetCampaignDetail localiza uma campanha pelo identificador do Facebook
	GetCampaignDetail(userEmail, campaignID string) (*domain.Campaign, error)
}
