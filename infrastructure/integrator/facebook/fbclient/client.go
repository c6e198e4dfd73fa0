package fbclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/snapix-app/snapix-api/infrastructure/integrator/facebook/fbdomain"
	"github.com/snapix-app/snapix-api/internal/config"
)

type Client interface {
	ExchangeCodeForToken(code, redirectURI string) (string, error)
	GetAdAccountsByUser(accessToken string) ([]fbdomain.AdAccount, error)
	GetCampaignsByAccountID(accountID, accessToken string, query *CampaignQuery) ([]fbdomain.Campaign, error)
	GetCampaignInsightsByID(campaignID, accessToken string, filters *InsightFilters) (*fbdomain.CampaignInsight, error)
}

type FacebookClient struct {
	Cfg           *config.Config
	HTTPClient    *http.Client
	RetryAttempts int
	RetryDelay    time.Duration
}

func NewClient(cfg *config.Config) Client {
	return &FacebookClient{
		Cfg: cfg,
		HTTPClient: &http.Client{
			Timeout: cfg.Facebook.RequestTimeout,
		},
		RetryAttempts: cfg.Facebook.RetryAttempts,
		RetryDelay:    cfg.Facebook.RetryDelay,
	}
}

// GraphError carrega o envelope de erro devolvido pela Graph API
type GraphError struct {
	StatusCode int
	Response   fbdomain.ErrorResponse
}

func (e *GraphError) Error() string {
	if e.Response.Error.Message != "" {
		return fmt.Sprintf("graph API error (status %d): %s", e.StatusCode, e.Response.Error.Message)
	}
	return fmt.Sprintf("graph API error (status %d)", e.StatusCode)
}

// IsTokenExpired verifica se um erro qualquer é de credencial expirada na Graph API
func IsTokenExpired(err error) bool {
	var graphErr *GraphError
	if errors.As(err, &graphErr) {
		return graphErr.Response.IsTokenExpired()
	}
	return false
}

// doGet executa uma chamada GET à Graph API com a política de retry:
// até RetryAttempts tentativas em respostas 429/5xx, com backoff linear
// RetryDelay * tentativa. Outros status e falhas de transporte propagam
// imediatamente
func (c *FacebookClient) doGet(url string) ([]byte, error) {
	var lastErr error

	for attempt := 1; attempt <= c.RetryAttempts; attempt++ {
		req, err := http.NewRequest(http.MethodGet, url, nil)
		if err != nil {
			return nil, err
		}

		resp, err := c.HTTPClient.Do(req)
		if err != nil {
			logrus.WithError(err).Error("graph: erro ao fazer a requisição")
			return nil, err
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return nil, err
		}

		if resp.StatusCode == http.StatusOK {
			return body, nil
		}

		graphErr := &GraphError{StatusCode: resp.StatusCode}
		if err := json.Unmarshal(body, &graphErr.Response); err != nil {
			logrus.WithField("status", resp.StatusCode).Warn("graph: resposta de erro sem envelope JSON")
		}

		if resp.StatusCode != http.StatusTooManyRequests && resp.StatusCode < http.StatusInternalServerError {
			return nil, graphErr
		}

		lastErr = graphErr

		if attempt < c.RetryAttempts {
			waitTime := c.RetryDelay * time.Duration(attempt)
			logrus.WithFields(logrus.Fields{
				"status":  resp.StatusCode,
				"attempt": attempt,
				"wait":    waitTime.String(),
			}).Info("graph: limite de requisições ou erro do servidor, aguardando para tentar novamente")
			time.Sleep(waitTime)
		}
	}

	return nil, lastErr
}
