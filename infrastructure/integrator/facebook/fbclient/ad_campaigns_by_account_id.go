package fbclient

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/snapix-app/snapix-api/infrastructure/integrator/facebook/fbdomain"
)

const campaignFields = "id,name,status,effective_status,objective,daily_budget,lifetime_budget,created_time,updated_time,start_time,stop_time"

// CampaignQuery são os filtros aceitos pela listagem de campanhas
type CampaignQuery struct {
	Limit     int
	Status    []string
	StartDate string // YYYY-MM-DD; aplicado sobre updated_time quando as duas datas existem
	EndDate   string
}

type graphFilter struct {
	Field    string `json:"field"`
	Operator string `json:"operator"`
	Value    any    `json:"value"`
}

type responseCampaigns struct {
	Data   []fbdomain.Campaign `json:"data"`
	Paging fbdomain.Paging     `json:"paging"`
}

func (c *FacebookClient) GetCampaignsByAccountID(accountID, accessToken string, query *CampaignQuery) ([]fbdomain.Campaign, error) {
	baseURL := fmt.Sprintf("%s/%s/campaigns", c.Cfg.Facebook.URL, accountID)

	params := url.Values{}
	params.Add("fields", campaignFields)
	params.Add("access_token", accessToken)

	if query != nil {
		if query.Limit > 0 {
			params.Add("limit", strconv.Itoa(query.Limit))
		}

		filters := make([]graphFilter, 0, 3)
		if len(query.Status) > 0 {
			filters = append(filters, graphFilter{
				Field:    "effective_status",
				Operator: "IN",
				Value:    query.Status,
			})
		}

		// Intervalo de datas limita campanhas pela última atualização
		if query.StartDate != "" && query.EndDate != "" {
			filters = append(filters,
				graphFilter{Field: "campaign.updated_time", Operator: "GREATER_THAN_OR_EQUAL", Value: query.StartDate},
				graphFilter{Field: "campaign.updated_time", Operator: "LESS_THAN_OR_EQUAL", Value: query.EndDate},
			)
		}

		if len(filters) > 0 {
			filtering, err := json.Marshal(filters)
			if err != nil {
				return nil, err
			}
			params.Add("filtering", string(filtering))
		}
	}

	body, err := c.doGet(baseURL + "?" + params.Encode())
	if err != nil {
		return nil, err
	}

	var response responseCampaigns
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("graph: erro ao decodificar JSON de campanhas")
		return nil, err
	}

	if response.Data == nil {
		return nil, fmt.Errorf("no campaigns data received from Facebook")
	}

	return response.Data, nil
}
