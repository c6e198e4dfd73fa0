package campaigning_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/snapix-app/snapix-api/infrastructure/integrator/facebook/fbclient"
	"github.com/snapix-app/snapix-api/infrastructure/integrator/facebook/fbdomain"
	repomocks "github.com/snapix-app/snapix-api/infrastructure/repository/mocks"
	"github.com/snapix-app/snapix-api/internal/config"
	"github.com/snapix-app/snapix-api/internal/domain"
	"github.com/snapix-app/snapix-api/internal/usecases/campaigning"
	"github.com/snapix-app/snapix-api/internal/usecases/campaigning/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const userEmail = "user@snapix.app"

func newTestConfig() *config.Config {
	return &config.Config{
		Cache: config.Cache{
			TTLMinutes: 15,
		},
		CampaignSync: config.CampaignSync{
			InsightsChunkSize: 40,
			ChunkDelay:        time.Millisecond,
		},
	}
}

type testMocks struct {
	fetcher       *mocks.MockCampaignFetcher
	adAccountRepo *repomocks.MockAdAccountRepository
	campaignRepo  *repomocks.MockCampaignRepository
	cacheRepo     *repomocks.MockCacheEntryRepository
}

func newService(t *testing.T) (campaigning.CampaignSyncer, testMocks) {
	ctrl := gomock.NewController(t)

	tm := testMocks{
		fetcher:       mocks.NewMockCampaignFetcher(ctrl),
		adAccountRepo: repomocks.NewMockAdAccountRepository(ctrl),
		campaignRepo:  repomocks.NewMockCampaignRepository(ctrl),
		cacheRepo:     repomocks.NewMockCacheEntryRepository(ctrl),
	}

	service := campaigning.NewService(
		newTestConfig(),
		tm.fetcher,
		tm.adAccountRepo,
		tm.campaignRepo,
		tm.cacheRepo,
	)

	return service, tm
}

func connectedAccount() *domain.AdAccount {
	return &domain.AdAccount{
		ID:          "abc123",
		AccountID:   "9090",
		AccountName: "Conta Principal",
		AccessToken: "EAAtoken",
		Status:      domain.AdAccountStatusConnected,
		CreatedBy:   userEmail,
	}
}

func TestCacheKey(t *testing.T) {
	base := domain.FetchOptions{
		Limit:  50,
		Status: []string{"PAUSED", "ACTIVE"},
	}.Normalize()

	swapped := domain.FetchOptions{
		Limit:  50,
		Status: []string{"active", "paused"},
	}.Normalize()

	// Consultas semanticamente iguais produzem a mesma chave,
	// independente da ordem e da caixa dos status
	assert.Equal(t, campaigning.CacheKey(userEmail, base), campaigning.CacheKey(userEmail, swapped))
	assert.Equal(t, "campaigns_user@snapix.app_ACTIVE,PAUSED_50", campaigning.CacheKey(userEmail, base))

	withDates := domain.FetchOptions{
		Limit:     25,
		Status:    []string{"ACTIVE"},
		StartDate: "2026-01-01",
		EndDate:   "2026-01-31",
	}.Normalize()

	assert.Equal(t, "campaigns_user@snapix.app_2026-01-01_2026-01-31_ACTIVE_25", campaigning.CacheKey(userEmail, withDates))

	// Data solitária é descartada na normalização e não entra na chave
	lonelyDate := domain.FetchOptions{
		Limit:     25,
		Status:    []string{"ACTIVE"},
		StartDate: "2026-01-01",
	}.Normalize()

	assert.Equal(t, "campaigns_user@snapix.app_ACTIVE_25", campaigning.CacheKey(userEmail, lonelyDate))
}

func TestFetchCampaignsWithCache_CacheHit(t *testing.T) {
	service, tm := newService(t)

	cached := []*domain.Campaign{
		{MetaCampaignID: "1", Name: "Campanha A", Status: "active"},
		{MetaCampaignID: "2", Name: "Campanha B", Status: "paused"},
	}
	payload, err := jsoniter.Marshal(cached)
	require.NoError(t, err)

	// Com cache válido, nem a conta nem o Facebook são consultados
	tm.cacheRepo.EXPECT().
		Get(gomock.Any(), userEmail).
		Return(payload, true, nil)

	result, err := service.FetchCampaignsWithCache(userEmail, domain.FetchOptions{})

	require.NoError(t, err)
	assert.Equal(t, domain.CampaignSourceCache, result.Source)
	assert.Equal(t, 2, result.Count)
	assert.Equal(t, "Campanha A", result.Campaigns[0].Name)
}

func TestFetchCampaignsWithCache_NoConnectedAccount(t *testing.T) {
	service, tm := newService(t)

	tm.cacheRepo.EXPECT().
		Get(gomock.Any(), userEmail).
		Return(nil, false, nil)

	tm.adAccountRepo.EXPECT().
		GetConnectedAccount(userEmail).
		Return(nil, nil)

	// Nenhuma chamada ao Facebook é esperada: sem conta conectada o fluxo
	// vai direto para as campanhas persistidas
	tm.campaignRepo.EXPECT().
		ListByCreator(userEmail, []string{"active", "paused"}, uint64(50)).
		Return([]*domain.Campaign{{MetaCampaignID: "c1", Name: "Persistida"}}, nil)

	tm.cacheRepo.EXPECT().
		Put(gomock.Any(), userEmail, gomock.Any(), gomock.Any()).
		Return(nil)

	result, err := service.FetchCampaignsWithCache(userEmail, domain.FetchOptions{})

	require.NoError(t, err)
	assert.Equal(t, domain.CampaignSourceDatabase, result.Source)
	assert.Equal(t, 1, result.Count)
}

func TestFetchCampaignsWithCache_TokenUnusable(t *testing.T) {
	service, tm := newService(t)

	account := connectedAccount()
	account.Status = domain.AdAccountStatusTokenExpired

	tm.cacheRepo.EXPECT().
		Get(gomock.Any(), userEmail).
		Return(nil, false, nil)

	tm.adAccountRepo.EXPECT().
		GetConnectedAccount(userEmail).
		Return(account, nil)

	// Credencial inutilizável equivale a não ter conta: fallback de banco
	tm.campaignRepo.EXPECT().
		ListByCreator(userEmail, []string{"active", "paused"}, uint64(50)).
		Return(nil, nil)

	tm.cacheRepo.EXPECT().
		Put(gomock.Any(), userEmail, gomock.Any(), gomock.Any()).
		Return(nil)

	result, err := service.FetchCampaignsWithCache(userEmail, domain.FetchOptions{})

	require.NoError(t, err)
	assert.Equal(t, domain.CampaignSourceDatabase, result.Source)
	assert.Equal(t, 0, result.Count)
}

func TestFetchCampaignsWithCache_LiveSync(t *testing.T) {
	service, tm := newService(t)

	raws := []fbdomain.Campaign{
		{ID: "c1", Name: "Campanha 1", Status: "ACTIVE", DailyBudget: 2550},
		{ID: "c2", Name: "Campanha 2", Status: "PAUSED"},
	}

	tm.cacheRepo.EXPECT().
		Get(gomock.Any(), userEmail).
		Return(nil, false, nil)

	tm.adAccountRepo.EXPECT().
		GetConnectedAccount(userEmail).
		Return(connectedAccount(), nil)

	tm.fetcher.EXPECT().
		ListCampaigns("9090", "EAAtoken", gomock.Any()).
		Return(raws, nil)

	// Duas campanhas cabem em um único lote
	tm.fetcher.EXPECT().
		GetInsightsForCampaigns([]string{"c1", "c2"}, "EAAtoken", gomock.Any()).
		Return(map[string]*fbdomain.CampaignInsight{
			"c1": {CampaignID: "c1", Spend: 100, Impressions: 5000, Clicks: 100},
		}, nil)

	tm.campaignRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil).Times(2)
	tm.adAccountRepo.EXPECT().TouchLastSync("abc123", gomock.Any()).Return(nil)
	tm.cacheRepo.EXPECT().Put(gomock.Any(), userEmail, gomock.Any(), gomock.Any()).Return(nil)

	result, err := service.FetchCampaignsWithCache(userEmail, domain.FetchOptions{})

	require.NoError(t, err)
	assert.Equal(t, domain.CampaignSourceLive, result.Source)
	require.Equal(t, 2, result.Count)

	// Campanha com insight é enriquecida, a outra fica com métricas zeradas
	assert.Equal(t, 100.0, result.Campaigns[0].PerformanceMetrics.Spend)
	assert.Equal(t, 2.0, result.Campaigns[0].PerformanceMetrics.CTR)
	assert.Equal(t, domain.PerformanceMetrics{}, result.Campaigns[1].PerformanceMetrics)
	assert.Equal(t, 25.5, result.Campaigns[0].Budget)
}

func TestFetchCampaignsWithCache_ChunkFailureIsolation(t *testing.T) {
	service, tm := newService(t)

	// 81 campanhas geram 3 lotes: 40, 40 e 1
	raws := make([]fbdomain.Campaign, 0, 81)
	for i := 0; i < 81; i++ {
		raws = append(raws, fbdomain.Campaign{
			ID:     fmt.Sprintf("c%03d", i),
			Name:   fmt.Sprintf("Campanha %d", i),
			Status: "ACTIVE",
		})
	}

	tm.cacheRepo.EXPECT().Get(gomock.Any(), userEmail).Return(nil, false, nil)
	tm.adAccountRepo.EXPECT().GetConnectedAccount(userEmail).Return(connectedAccount(), nil)
	tm.fetcher.EXPECT().ListCampaigns("9090", "EAAtoken", gomock.Any()).Return(raws, nil)

	enrich := func(ids []string) map[string]*fbdomain.CampaignInsight {
		insights := make(map[string]*fbdomain.CampaignInsight, len(ids))
		for _, id := range ids {
			insights[id] = &fbdomain.CampaignInsight{CampaignID: id, Spend: 10, Impressions: 100, Clicks: 1}
		}
		return insights
	}

	gomock.InOrder(
		tm.fetcher.EXPECT().
			GetInsightsForCampaigns(gomock.Len(40), "EAAtoken", gomock.Any()).
			DoAndReturn(func(ids []string, _ string, _ *fbclient.InsightFilters) (map[string]*fbdomain.CampaignInsight, error) {
				return enrich(ids), nil
			}),
		// O segundo lote falha por inteiro
		tm.fetcher.EXPECT().
			GetInsightsForCampaigns(gomock.Len(40), "EAAtoken", gomock.Any()).
			Return(nil, errors.New("rate limit")),
		tm.fetcher.EXPECT().
			GetInsightsForCampaigns(gomock.Len(1), "EAAtoken", gomock.Any()).
			DoAndReturn(func(ids []string, _ string, _ *fbclient.InsightFilters) (map[string]*fbdomain.CampaignInsight, error) {
				return enrich(ids), nil
			}),
	)

	tm.campaignRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil).Times(81)
	tm.adAccountRepo.EXPECT().TouchLastSync("abc123", gomock.Any()).Return(nil)
	tm.cacheRepo.EXPECT().Put(gomock.Any(), userEmail, gomock.Any(), gomock.Any()).Return(nil)

	result, err := service.FetchCampaignsWithCache(userEmail, domain.FetchOptions{Limit: 100})

	require.NoError(t, err)
	require.Equal(t, 81, result.Count)

	// Lotes 1 e 3 enriquecidos, lote 2 inteiro com métricas zeradas
	assert.Equal(t, 10.0, result.Campaigns[0].PerformanceMetrics.Spend)
	assert.Equal(t, 10.0, result.Campaigns[39].PerformanceMetrics.Spend)
	assert.Equal(t, domain.PerformanceMetrics{}, result.Campaigns[40].PerformanceMetrics)
	assert.Equal(t, domain.PerformanceMetrics{}, result.Campaigns[79].PerformanceMetrics)
	assert.Equal(t, 10.0, result.Campaigns[80].PerformanceMetrics.Spend)
}

func TestFetchCampaignsWithCache_DatabaseFallback(t *testing.T) {
	service, tm := newService(t)

	stored := []*domain.Campaign{
		{MetaCampaignID: "c1", Name: "Persistida", Status: "active"},
	}

	tm.cacheRepo.EXPECT().Get(gomock.Any(), userEmail).Return(nil, false, nil)
	tm.adAccountRepo.EXPECT().GetConnectedAccount(userEmail).Return(connectedAccount(), nil)

	tm.fetcher.EXPECT().
		ListCampaigns("9090", "EAAtoken", gomock.Any()).
		Return(nil, errors.New("facebook unavailable"))

	tm.campaignRepo.EXPECT().
		ListByCreator(userEmail, []string{"active", "paused"}, uint64(50)).
		Return(stored, nil)

	// O resultado do fallback também repovoa o cache
	tm.cacheRepo.EXPECT().
		Put(gomock.Any(), userEmail, gomock.Any(), gomock.Any()).
		Return(nil)

	result, err := service.FetchCampaignsWithCache(userEmail, domain.FetchOptions{})

	require.NoError(t, err)
	assert.Equal(t, domain.CampaignSourceDatabase, result.Source)
	assert.Equal(t, 1, result.Count)
	assert.Equal(t, "Persistida", result.Campaigns[0].Name)
}

func TestFetchCampaignsWithCache_FallbackAlsoFails(t *testing.T) {
	service, tm := newService(t)

	tm.cacheRepo.EXPECT().Get(gomock.Any(), userEmail).Return(nil, false, nil)
	tm.adAccountRepo.EXPECT().GetConnectedAccount(userEmail).Return(connectedAccount(), nil)

	tm.fetcher.EXPECT().
		ListCampaigns("9090", "EAAtoken", gomock.Any()).
		Return(nil, errors.New("facebook unavailable"))

	tm.campaignRepo.EXPECT().
		ListByCreator(userEmail, gomock.Any(), gomock.Any()).
		Return(nil, errors.New("db down"))

	// Falha total nunca propaga: o chamador recebe lista vazia e nada é
	// gravado no cache
	result, err := service.FetchCampaignsWithCache(userEmail, domain.FetchOptions{})

	require.NoError(t, err)
	assert.Equal(t, domain.CampaignSourceDatabase, result.Source)
	assert.Empty(t, result.Campaigns)
	assert.Equal(t, 0, result.Count)
}

func TestFetchCampaignsWithCache_CorruptedCacheEntry(t *testing.T) {
	service, tm := newService(t)

	tm.cacheRepo.EXPECT().
		Get(gomock.Any(), userEmail).
		Return([]byte("{not json"), true, nil)

	// Entrada corrompida é descartada e o fluxo segue para a busca ao vivo
	tm.cacheRepo.EXPECT().Delete(gomock.Any(), userEmail).Return(nil)

	tm.adAccountRepo.EXPECT().GetConnectedAccount(userEmail).Return(connectedAccount(), nil)
	tm.fetcher.EXPECT().ListCampaigns("9090", "EAAtoken", gomock.Any()).Return([]fbdomain.Campaign{}, nil)
	tm.adAccountRepo.EXPECT().TouchLastSync("abc123", gomock.Any()).Return(nil)
	tm.cacheRepo.EXPECT().Put(gomock.Any(), userEmail, gomock.Any(), gomock.Any()).Return(nil)

	result, err := service.FetchCampaignsWithCache(userEmail, domain.FetchOptions{})

	require.NoError(t, err)
	assert.Equal(t, domain.CampaignSourceLive, result.Source)
	assert.Equal(t, 0, result.Count)
}

func TestRefreshCampaigns_InvalidatesCache(t *testing.T) {
	service, tm := newService(t)

	tm.cacheRepo.EXPECT().DeleteByUser(userEmail).Return(nil)

	// ForceRefresh pula a leitura do cache
	tm.adAccountRepo.EXPECT().GetConnectedAccount(userEmail).Return(connectedAccount(), nil)
	tm.fetcher.EXPECT().ListCampaigns("9090", "EAAtoken", gomock.Any()).Return([]fbdomain.Campaign{}, nil)
	tm.adAccountRepo.EXPECT().TouchLastSync("abc123", gomock.Any()).Return(nil)
	tm.cacheRepo.EXPECT().Put(gomock.Any(), userEmail, gomock.Any(), gomock.Any()).Return(nil)

	result, err := service.RefreshCampaigns(userEmail, domain.FetchOptions{})

	require.NoError(t, err)
	assert.Equal(t, domain.CampaignSourceLive, result.Source)
}

func TestGetCampaignSummary(t *testing.T) {
	service, tm := newService(t)

	campaigns := []*domain.Campaign{
		{IsActive: true, PerformanceMetrics: domain.PerformanceMetrics{Spend: 100, Impressions: 1000, Clicks: 50, Conversions: 5, CTR: 5, CPC: 2, ROAS: 3}},
		{IsActive: false, PerformanceMetrics: domain.PerformanceMetrics{Spend: 50, Impressions: 500, Clicks: 10, Conversions: 1, CTR: 2, CPC: 5, ROAS: 1}},
		// Campanha sem impressões entra nos totais mas fica fora das médias
		{IsActive: true, PerformanceMetrics: domain.PerformanceMetrics{Spend: 10}},
	}

	payload, err := jsoniter.Marshal(campaigns)
	require.NoError(t, err)

	// O resumo percorre o mesmo pipeline de busca: aqui servido do cache
	tm.cacheRepo.EXPECT().
		Get("campaigns_user@snapix.app_ACTIVE,COMPLETED,PAUSED_100", userEmail).
		Return(payload, true, nil)

	summary, err := service.GetCampaignSummary(userEmail)

	require.NoError(t, err)
	assert.Equal(t, 3, summary.TotalCampaigns)
	assert.Equal(t, 2, summary.ActiveCampaigns)
	assert.Equal(t, 160.0, summary.TotalSpend)
	assert.Equal(t, int64(1500), summary.TotalImpressions)
	assert.Equal(t, int64(60), summary.TotalClicks)
	assert.Equal(t, int64(6), summary.TotalConversions)
	assert.Equal(t, 3.5, summary.AvgCTR)
	assert.Equal(t, 3.5, summary.AvgCPC)
	assert.Equal(t, 2.0, summary.AvgROAS)
}

func TestGetCampaignDetail(t *testing.T) {
	service, tm := newService(t)

	campaigns := []*domain.Campaign{
		{MetaCampaignID: "111", Name: "Campanha A"},
		{MetaCampaignID: "222", Name: "Campanha B"},
	}

	payload, err := jsoniter.Marshal(campaigns)
	require.NoError(t, err)

	tm.cacheRepo.EXPECT().
		Get("campaigns_user@snapix.app_ACTIVE,PAUSED_100", userEmail).
		Return(payload, true, nil).
		Times(2)

	campaign, err := service.GetCampaignDetail(userEmail, "222")
	require.NoError(t, err)
	assert.Equal(t, "Campanha B", campaign.Name)

	_, err = service.GetCampaignDetail(userEmail, "999")
	require.Error(t, err)
	assert.ErrorIs(t, err, campaigning.ErrCampaignNotFound)
}
