package fbclient

import (
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/sirupsen/logrus"
	"github.com/snapix-app/snapix-api/infrastructure/integrator/facebook/fbdomain"
)

const insightFields = "campaign_id,spend,impressions,clicks,conversions,conversion_value,reach,frequency"

// InsightFilters define o período dos insights. Sem as duas datas, usa o
// preset dos últimos 30 dias
type InsightFilters struct {
	StartDate string
	EndDate   string
}

type responseCampaignInsights struct {
	Data   []fbdomain.CampaignInsight `json:"data"`
	Paging fbdomain.Paging            `json:"paging"`
}

func (c *FacebookClient) GetCampaignInsightsByID(campaignID, accessToken string, filters *InsightFilters) (*fbdomain.CampaignInsight, error) {
	baseURL := fmt.Sprintf("%s/%s/insights", c.Cfg.Facebook.URL, campaignID)

	params := url.Values{}
	params.Add("fields", insightFields)
	params.Add("level", "campaign")
	params.Add("access_token", accessToken)

	if filters != nil && filters.StartDate != "" && filters.EndDate != "" {
		timeRange := fmt.Sprintf("{\"since\":\"%s\",\"until\":\"%s\"}", filters.StartDate, filters.EndDate)
		params.Add("time_range", timeRange)
	} else {
		params.Add("date_preset", "last_30d")
	}

	body, err := c.doGet(baseURL + "?" + params.Encode())
	if err != nil {
		return nil, err
	}

	var response responseCampaignInsights
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("graph: erro ao decodificar JSON de insights")
		return nil, err
	}

	// Campanha sem entrega no período não tem insights: não é erro
	if len(response.Data) == 0 {
		return nil, nil
	}

	insight := response.Data[0]
	insight.CampaignID = campaignID

	return &insight, nil
}
