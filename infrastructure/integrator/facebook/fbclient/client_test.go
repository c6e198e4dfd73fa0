package fbclient

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/snapix-app/snapix-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(serverURL string) *FacebookClient {
	cfg := &config.Config{}
	cfg.Facebook.URL = serverURL
	cfg.Facebook.RedirectURL = "https://app.snapix.app/callback"

	return &FacebookClient{
		Cfg:           cfg,
		HTTPClient:    &http.Client{Timeout: 5 * time.Second},
		RetryAttempts: 3,
		RetryDelay:    time.Millisecond,
	}
}

func TestGetCampaignsByAccountID_RetryOnRateLimit(t *testing.T) {
	var mu sync.Mutex
	var attempts []time.Time

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		attempts = append(attempts, time.Now())
		call := len(attempts)
		mu.Unlock()

		// As duas primeiras chamadas são limitadas, a terceira responde
		if call < 3 {
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"error":{"message":"(#17) User request limit reached","code":17}}`))
			return
		}

		w.Write([]byte(`{"data":[{"id":"c1","name":"Campanha 1","status":"ACTIVE"}],"paging":{"cursors":{}}}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	client.RetryDelay = 30 * time.Millisecond

	campaigns, err := client.GetCampaignsByAccountID("act_9090", "token", nil)

	require.NoError(t, err)
	require.Len(t, campaigns, 1)
	assert.Equal(t, "c1", campaigns[0].ID)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, attempts, 3)

	// O backoff é linear: a primeira espera é RetryDelay e a segunda
	// RetryDelay*2, então o segundo intervalo precisa crescer na proporção
	firstGap := attempts[1].Sub(attempts[0])
	secondGap := attempts[2].Sub(attempts[1])
	assert.GreaterOrEqual(t, firstGap, client.RetryDelay)
	assert.GreaterOrEqual(t, secondGap, 2*client.RetryDelay)
	assert.Greater(t, secondGap, firstGap)
}

func TestGetCampaignsByAccountID_NoRetryOnClientError(t *testing.T) {
	var calls int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"message":"Unsupported get request","type":"GraphMethodException","code":100}}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.GetCampaignsByAccountID("act_9090", "token", nil)

	require.Error(t, err)
	// Erro 4xx não é transitório: uma única tentativa
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))

	var graphErr *GraphError
	require.ErrorAs(t, err, &graphErr)
	assert.Equal(t, http.StatusBadRequest, graphErr.StatusCode)
}

func TestGetCampaignsByAccountID_ExhaustsRetries(t *testing.T) {
	var calls int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":{"message":"An unknown error occurred","code":1}}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.GetCampaignsByAccountID("act_9090", "token", nil)

	require.Error(t, err)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestIsTokenExpired(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"message":"Error validating access token","type":"OAuthException","code":190}}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.GetAdAccountsByUser("expired-token")

	require.Error(t, err)
	assert.True(t, IsTokenExpired(err))
}

func TestGetCampaignInsightsByID_EmptyDataIsNotError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Campanha sem entrega no período
		w.Write([]byte(`{"data":[],"paging":{"cursors":{}}}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	insight, err := client.GetCampaignInsightsByID("c1", "token", nil)

	require.NoError(t, err)
	assert.Nil(t, insight)
}

func TestGetCampaignInsightsByID_StringNumbers(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// A Graph API envia métricas como strings
		w.Write([]byte(`{"data":[{"spend":"123.45","impressions":"6789","clicks":"12","reach":"5000","frequency":"1.36"}],"paging":{"cursors":{}}}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	insight, err := client.GetCampaignInsightsByID("c1", "token", &InsightFilters{
		StartDate: "2026-01-01",
		EndDate:   "2026-01-31",
	})

	require.NoError(t, err)
	require.NotNil(t, insight)
	assert.Equal(t, "c1", insight.CampaignID)
	assert.Equal(t, 123.45, float64(insight.Spend))
	assert.Equal(t, int64(6789), int64(insight.Impressions))
	assert.Equal(t, int64(12), int64(insight.Clicks))
}

func TestGetCampaignsByAccountID_StatusFilterInQuery(t *testing.T) {
	var capturedFiltering string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedFiltering = r.URL.Query().Get("filtering")
		w.Write([]byte(`{"data":[],"paging":{"cursors":{}}}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	campaigns, err := client.GetCampaignsByAccountID("act_9090", "token", &CampaignQuery{
		Limit:  25,
		Status: []string{"ACTIVE", "PAUSED"},
	})

	// Lista vazia de dados é resposta válida, não erro
	require.NoError(t, err)
	assert.Empty(t, campaigns)

	assert.Contains(t, capturedFiltering, "effective_status")
	assert.Contains(t, capturedFiltering, "ACTIVE")
}
