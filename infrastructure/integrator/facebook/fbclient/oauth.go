package fbclient

import (
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/sirupsen/logrus"
	"github.com/snapix-app/snapix-api/infrastructure/integrator/facebook/fbdomain"
)

// ExchangeCodeForToken troca o código do OAuth por um token de acesso do usuário
func (c *FacebookClient) ExchangeCodeForToken(code, redirectURI string) (string, error) {
	baseURL := fmt.Sprintf("%s/oauth/access_token", c.Cfg.Facebook.URL)

	params := url.Values{}
	params.Add("client_id", c.Cfg.Facebook.AppID)
	params.Add("client_secret", c.Cfg.Facebook.AppSecret)
	params.Add("redirect_uri", redirectURI)
	params.Add("code", code)

	body, err := c.doGet(baseURL + "?" + params.Encode())
	if err != nil {
		return "", err
	}

	var response fbdomain.TokenResponse
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("graph: erro ao decodificar JSON do token")
		return "", err
	}

	if response.AccessToken == "" {
		return "", fmt.Errorf("no access token received from Facebook")
	}

	return response.AccessToken, nil
}

type responseAdAccounts struct {
	Data   []fbdomain.AdAccount `json:"data"`
	Paging fbdomain.Paging      `json:"paging"`
}

// GetAdAccountsByUser lista as contas de anúncio acessíveis pelo token do usuário
func (c *FacebookClient) GetAdAccountsByUser(accessToken string) ([]fbdomain.AdAccount, error) {
	baseURL := fmt.Sprintf("%s/me/adaccounts", c.Cfg.Facebook.URL)

	params := url.Values{}
	params.Add("fields", "id,account_id,name,currency,account_status")
	params.Add("limit", "100")
	params.Add("access_token", accessToken)

	body, err := c.doGet(baseURL + "?" + params.Encode())
	if err != nil {
		return nil, err
	}

	var response responseAdAccounts
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("graph: erro ao decodificar JSON de contas de anúncio")
		return nil, err
	}

	return response.Data, nil
}
