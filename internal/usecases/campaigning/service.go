package campaigning

import (
	"strconv"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/snapix-app/snapix-api/infrastructure/integrator/facebook/fbclient"
	"github.com/snapix-app/snapix-api/infrastructure/integrator/facebook/fbdomain"
	"github.com/snapix-app/snapix-api/infrastructure/repository"
	"github.com/snapix-app/snapix-api/internal/config"
	"github.com/snapix-app/snapix-api/internal/domain"
	"github.com/snapix-app/snapix-api/pkg/apiErrors"
	"github.com/snapix-app/snapix-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Service implementa o CampaignSyncer: a sincronização de campanhas com
// cache, enriquecimento de insights em lotes e fallback de banco
type Service struct {
	cfg                 *config.Config
	facebookService     CampaignFetcher
	adAccountRepository repository.AdAccountRepository
	campaignRepository  repository.CampaignRepository
	cacheRepository     repository.CacheEntryRepository
}

func NewService(
	cfg *config.Config,
	facebookService CampaignFetcher,
	adAccountRepository repository.AdAccountRepository,
	campaignRepository repository.CampaignRepository,
	cacheRepository repository.CacheEntryRepository,
) CampaignSyncer {
	return &Service{
		cfg:                 cfg,
		facebookService:     facebookService,
		adAccountRepository: adAccountRepository,
		campaignRepository:  campaignRepository,
		cacheRepository:     cacheRepository,
	}
}

// CacheKey deriva a chave de cache dos filtros já normalizados. Como o
// conjunto de status sai ordenado da normalização, consultas semanticamente
// iguais produzem a mesma chave independente da ordem informada
func CacheKey(userEmail string, opts domain.FetchOptions) string {
	parts := []string{"campaigns", userEmail}

	if opts.HasDateRange() {
		parts = append(parts, opts.StartDate, opts.EndDate)
	}

	parts = append(parts, strings.Join(opts.Status, ","), strconv.Itoa(opts.Limit))

	return strings.Join(parts, "_")
}

// FetchCampaignsWithCache é o pipeline completo: cache, resolução da conta
// conectada, busca ao vivo com insights, persistência e repovoamento do
// cache. Se o Facebook estiver indisponível, serve as campanhas persistidas
func (s *Service) FetchCampaignsWithCache(userEmail string, opts domain.FetchOptions) (*domain.CampaignFetchResult, error) {
	opts = opts.Normalize()
	cacheKey := CacheKey(userEmail, opts)

	if !opts.ForceRefresh {
		if result := s.lookupCache(cacheKey, userEmail); result != nil {
			return result, nil
		}
	}

	account, err := s.adAccountRepository.GetConnectedAccount(userEmail)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"user_email": userEmail,
			"error":      err.Error(),
		}).Error("campaigns: erro ao resolver conta conectada")
		return nil, NewCampaignError(ErrFetchCampaigns, apiErrors.ErrDatabaseOperation, "Falha ao consultar a conta conectada")
	}

	// Sem conta conectada (ou sem credencial utilizável) não é erro: é o
	// comportamento de usuário convidado, servido pelas campanhas persistidas
	if account == nil || !account.HasUsableToken() {
		logrus.WithField("user_email", userEmail).Debug("campaigns: sem conta utilizável, servindo campanhas persistidas")
		return s.fallbackFromDatabase(cacheKey, userEmail, opts), nil
	}

	campaigns, err := s.syncFromFacebook(account, userEmail, opts)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"user_email": userEmail,
			"account_id": account.AccountID,
			"error":      err.Error(),
		}).Warn("campaigns: Facebook indisponível, servindo campanhas persistidas")
		return s.fallbackFromDatabase(cacheKey, userEmail, opts), nil
	}

	s.storeCache(cacheKey, userEmail, campaigns)

	return &domain.CampaignFetchResult{
		Campaigns: campaigns,
		Count:     len(campaigns),
		Source:    domain.CampaignSourceLive,
		Timestamp: time.Now(),
	}, nil
}

// RefreshCampaigns invalida todas as entradas de cache do usuário e força
// uma nova sincronização
func (s *Service) RefreshCampaigns(userEmail string, opts domain.FetchOptions) (*domain.CampaignFetchResult, error) {
	if err := s.cacheRepository.DeleteByUser(userEmail); err != nil {
		logrus.WithFields(logrus.Fields{
			"user_email": userEmail,
			"error":      err.Error(),
		}).Warn("campaigns: erro ao invalidar cache do usuário")
	}

	opts.ForceRefresh = true

	return s.FetchCampaignsWithCache(userEmail, opts)
}

// lookupCache tenta servir a consulta do cache. Entrada expirada ou
// indecodificável conta como ausência: o pipeline segue para a busca ao vivo
func (s *Service) lookupCache(cacheKey, userEmail string) *domain.CampaignFetchResult {
	payload, found, err := s.cacheRepository.Get(cacheKey, userEmail)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"cache_key": cacheKey,
			"error":     err.Error(),
		}).Warn("campaigns: erro ao consultar o cache")
		return nil
	}

	if !found {
		return nil
	}

	var campaigns []*domain.Campaign
	if err := json.Unmarshal(payload, &campaigns); err != nil {
		logrus.WithFields(logrus.Fields{
			"cache_key": cacheKey,
			"error":     err.Error(),
		}).Warn("campaigns: entrada de cache corrompida, descartando")

		if err := s.cacheRepository.Delete(cacheKey, userEmail); err != nil {
			logrus.WithField("cache_key", cacheKey).Warn("campaigns: erro ao descartar entrada corrompida")
		}
		return nil
	}

	logrus.WithFields(logrus.Fields{
		"cache_key": cacheKey,
		"count":     len(campaigns),
	}).Debug("campaigns: consulta servida do cache")

	return &domain.CampaignFetchResult{
		Campaigns: campaigns,
		Count:     len(campaigns),
		Source:    domain.CampaignSourceCache,
		Timestamp: time.Now(),
	}
}

func (s *Service) storeCache(cacheKey, userEmail string, campaigns []*domain.Campaign) {
	payload, err := json.Marshal(campaigns)
	if err != nil {
		logrus.WithField("cache_key", cacheKey).Warn("campaigns: erro ao serializar campanhas para o cache")
		return
	}

	expiresAt := time.Now().Add(time.Duration(s.cfg.Cache.TTLMinutes) * time.Minute)

	if err := s.cacheRepository.Put(cacheKey, userEmail, payload, expiresAt); err != nil {
		logrus.WithFields(logrus.Fields{
			"cache_key": cacheKey,
			"error":     err.Error(),
		}).Warn("campaigns: erro ao gravar entrada no cache")
	}
}

// syncFromFacebook busca as campanhas ao vivo, enriquece com insights em
// lotes e persiste o resultado. O tamanho do lote e a pausa entre lotes
// protegem o limite de requisições da Graph API
func (s *Service) syncFromFacebook(account *domain.AdAccount, userEmail string, opts domain.FetchOptions) ([]*domain.Campaign, error) {
	query := &fbclient.CampaignQuery{
		Limit:     opts.Limit,
		Status:    opts.Status,
		StartDate: opts.StartDate,
		EndDate:   opts.EndDate,
	}

	raws, err := s.facebookService.ListCampaigns(account.AccountID, account.AccessToken, query)
	if err != nil {
		return nil, err
	}

	campaignIDs := make([]string, 0, len(raws))
	for _, raw := range raws {
		campaignIDs = append(campaignIDs, raw.ID)
	}

	insights := s.collectInsights(campaignIDs, account.AccessToken, opts)

	campaigns := make([]*domain.Campaign, 0, len(raws))
	for _, raw := range raws {
		campaigns = append(campaigns, FromGraph(raw, insights[raw.ID], userEmail, account.AccountID))
	}

	s.persistCampaigns(campaigns, userEmail)

	if err := s.adAccountRepository.TouchLastSync(account.ID, time.Now()); err != nil {
		logrus.WithField("account_id", account.AccountID).Warn("campaigns: erro ao registrar last_sync da conta")
	}

	return campaigns, nil
}

// collectInsights busca os insights em lotes. Falha em um lote inteiro não
// interrompe os demais: as campanhas do lote com falha ficam com métricas
// zeradas no mapeamento. Entre um lote e outro há uma pausa curta para não
// estourar o limite de requisições da Graph API
func (s *Service) collectInsights(campaignIDs []string, accessToken string, opts domain.FetchOptions) map[string]*fbdomain.CampaignInsight {
	insights := make(map[string]*fbdomain.CampaignInsight, len(campaignIDs))

	chunkSize := s.cfg.CampaignSync.InsightsChunkSize
	if chunkSize <= 0 {
		chunkSize = len(campaignIDs)
	}

	filters := &fbclient.InsightFilters{
		StartDate: opts.StartDate,
		EndDate:   opts.EndDate,
	}

	for start := 0; start < len(campaignIDs); start += chunkSize {
		end := start + chunkSize
		if end > len(campaignIDs) {
			end = len(campaignIDs)
		}
		chunk := campaignIDs[start:end]

		chunkInsights, err := s.facebookService.GetInsightsForCampaigns(chunk, accessToken, filters)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"offset": start,
				"size":   len(chunk),
				"error":  err.Error(),
			}).Warn("campaigns: falha no lote de insights, campanhas do lote seguem com métricas zeradas")
		}

		for campaignID, insight := range chunkInsights {
			insights[campaignID] = insight
		}

		if end < len(campaignIDs) {
			time.Sleep(s.cfg.CampaignSync.ChunkDelay)
		}
	}

	return insights
}

func (s *Service) persistCampaigns(campaigns []*domain.Campaign, userEmail string) {
	for _, campaign := range campaigns {
		if err := s.campaignRepository.SaveOrUpdate(campaign); err != nil {
			logrus.WithFields(logrus.Fields{
				"campaign_id": campaign.MetaCampaignID,
				"user_email":  userEmail,
				"error":       err.Error(),
			}).Warn("campaigns: erro ao persistir campanha, seguindo com as demais")
		}
	}
}

// fallbackFromDatabase serve a consulta com as campanhas persistidas da
// última sincronização bem-sucedida. Nunca propaga erro: se o próprio banco
// falhar, devolve lista vazia para o chamador sempre receber uma resposta
func (s *Service) fallbackFromDatabase(cacheKey, userEmail string, opts domain.FetchOptions) *domain.CampaignFetchResult {
	campaigns, err := s.campaignRepository.ListByCreator(userEmail, opts.LowercaseStatus(), uint64(opts.Limit))
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"user_email": userEmail,
			"error":      err.Error(),
		}).Error("campaigns: fallback de banco também falhou, devolvendo lista vazia")
		campaigns = []*domain.Campaign{}
	} else {
		s.storeCache(cacheKey, userEmail, campaigns)
	}

	return &domain.CampaignFetchResult{
		Campaigns: campaigns,
		Count:     len(campaigns),
		Source:    domain.CampaignSourceDatabase,
		Timestamp: time.Now(),
	}
}

// GetCampaignSummary agrega as métricas sobre o conjunto completo de
// campanhas do usuário, obtido pelo mesmo pipeline de busca com cache
func (s *Service) GetCampaignSummary(userEmail string) (*domain.CampaignSummary, error) {
	result, err := s.FetchCampaignsWithCache(userEmail, domain.FetchOptions{
		Limit:  domain.MaxFetchLimit,
		Status: []string{"ACTIVE", "PAUSED", "COMPLETED"},
	})
	if err != nil {
		return nil, err
	}

	summary := &domain.CampaignSummary{
		TotalCampaigns: len(result.Campaigns),
	}

	// As médias consideram só campanhas com impressões, para que campanhas
	// recém-criadas não puxem os indicadores para zero
	var withImpressions float64

	for _, campaign := range result.Campaigns {
		if campaign.IsActive {
			summary.ActiveCampaigns++
		}

		summary.TotalSpend += campaign.PerformanceMetrics.Spend
		summary.TotalImpressions += campaign.PerformanceMetrics.Impressions
		summary.TotalClicks += campaign.PerformanceMetrics.Clicks
		summary.TotalConversions += campaign.PerformanceMetrics.Conversions

		if campaign.PerformanceMetrics.Impressions > 0 {
			withImpressions++
			summary.AvgCTR += campaign.PerformanceMetrics.CTR
			summary.AvgCPC += campaign.PerformanceMetrics.CPC
			summary.AvgROAS += campaign.PerformanceMetrics.ROAS
		}
	}

	if withImpressions > 0 {
		summary.AvgCTR = utils.RoundWithTwoDecimalPlace(summary.AvgCTR / withImpressions)
		summary.AvgCPC = utils.RoundWithTwoDecimalPlace(summary.AvgCPC / withImpressions)
		summary.AvgROAS = utils.RoundWithTwoDecimalPlace(summary.AvgROAS / withImpressions)
	}

	summary.TotalSpend = utils.RoundWithTwoDecimalPlace(summary.TotalSpend)

	return summary, nil
}

// GetCampaignDetail localiza uma campanha específica pelo identificador do
// Facebook, numa varredura linear sobre o conjunto buscado
func (s *Service) GetCampaignDetail(userEmail, campaignID string) (*domain.Campaign, error) {
	result, err := s.FetchCampaignsWithCache(userEmail, domain.FetchOptions{
		Limit: domain.MaxFetchLimit,
	})
	if err != nil {
		return nil, err
	}

	for _, campaign := range result.Campaigns {
		if campaign.MetaCampaignID == campaignID {
			return campaign, nil
		}
	}

	return nil, NewCampaignError(ErrCampaignNotFound, apiErrors.ErrInvalidRequest, "Campanha não encontrada")
}
