package facebook

import (
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/snapix-app/snapix-api/infrastructure/integrator/facebook/fbclient"
	"github.com/snapix-app/snapix-api/infrastructure/integrator/facebook/fbdomain"
	"github.com/snapix-app/snapix-api/internal/config"
)

const accountIDPrefix = "act_"

type FacebookIntegrator struct {
	cfg    *config.Config
	Client fbclient.Client
}

func New(cfg *config.Config, client fbclient.Client) *FacebookIntegrator {
	return &FacebookIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

// NormalizeAccountID remove o prefixo act_ caso já exista e o reaplica,
// garantindo um identificador consistente para a Graph API
func NormalizeAccountID(accountID string) string {
	return accountIDPrefix + strings.TrimPrefix(accountID, accountIDPrefix)
}

// ListCampaigns busca as campanhas de uma conta de anúncios com o filtro de
// status e, quando as duas datas existem, o recorte por updated_time
func (s *FacebookIntegrator) ListCampaigns(accountID, accessToken string, query *fbclient.CampaignQuery) ([]fbdomain.Campaign, error) {
	normalizedID := NormalizeAccountID(accountID)

	campaigns, err := s.Client.GetCampaignsByAccountID(normalizedID, accessToken, query)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": normalizedID,
			"error":      err.Error(),
		}).Error("campaigns: falha ao listar campanhas na Graph API")
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"account_id": normalizedID,
		"count":      len(campaigns),
	}).Debug("campaigns: campanhas obtidas da Graph API")

	return campaigns, nil
}

// GetInsightsForCampaigns busca os insights de um lote de campanhas, uma
// campanha por vez. Falha em uma campanha individual não interrompe o lote:
// a campanha simplesmente fica sem entrada no mapa retornado
func (s *FacebookIntegrator) GetInsightsForCampaigns(campaignIDs []string, accessToken string, filters *fbclient.InsightFilters) (map[string]*fbdomain.CampaignInsight, error) {
	insights := make(map[string]*fbdomain.CampaignInsight, len(campaignIDs))

	for _, campaignID := range campaignIDs {
		insight, err := s.Client.GetCampaignInsightsByID(campaignID, accessToken, filters)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"campaign_id": campaignID,
				"error":       err.Error(),
			}).Warn("campaigns: falha ao buscar insights da campanha, mantendo métricas zeradas")
			continue
		}

		if insight != nil {
			insights[campaignID] = insight
		}
	}

	return insights, nil
}

// ExchangeCodeForToken e ListUserAdAccounts atendem o fluxo de conexão de conta

func (s *FacebookIntegrator) ExchangeCodeForToken(code string) (string, error) {
	return s.Client.ExchangeCodeForToken(code, s.cfg.Facebook.RedirectURL)
}

func (s *FacebookIntegrator) ListUserAdAccounts(accessToken string) ([]fbdomain.AdAccount, error) {
	return s.Client.GetAdAccountsByUser(accessToken)
}
