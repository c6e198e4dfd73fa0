package handler

import (
	"net/http"

	"github.com/snapix-app/snapix-api/internal/api/handler/router"
	"github.com/snapix-app/snapix-api/internal/usecases/account"
	"github.com/snapix-app/snapix-api/internal/usecases/authenticating"
	"github.com/snapix-app/snapix-api/internal/usecases/campaigning"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: Register(service),
		},
		{
			Path:    "/v1/guest",
			Method:  http.MethodPost,
			Handler: GuestLogin(service),
		},
		{
			Path:    "/v1/me",
			Method:  http.MethodGet,
			Handler: GetMe(service),
		},
	}
}

func Facebook(service account.AccountService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/facebook/callback",
			Method:  http.MethodPost,
			Handler: FacebookCallback(service),
		},
		{
			Path:    "/v1/facebook/select-account",
			Method:  http.MethodPost,
			Handler: SelectAccount(service),
		},
		{
			Path:    "/v1/facebook/account",
			Method:  http.MethodGet,
			Handler: GetConnectedAccount(service),
		},
		{
			Path:    "/v1/facebook/account",
			Method:  http.MethodDelete,
			Handler: DisconnectAccount(service),
		},
	}
}

func Campaigns(service campaigning.CampaignSyncer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/campaigns",
			Method:  http.MethodGet,
			Handler: GetCampaigns(service),
		},
		{
			Path:    "/v1/campaigns/summary",
			Method:  http.MethodGet,
			Handler: GetCampaignSummary(service),
		},
		{
			Path:    "/v1/campaigns/refresh",
			Method:  http.MethodPost,
			Handler: RefreshCampaigns(service),
		},
		{
			// O segmento detail evita conflito de rota com summary e refresh
			Path:    "/v1/campaigns/detail/:id",
			Method:  http.MethodGet,
			Handler: GetCampaignDetail(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: CronStatus(services),
		},
		{
			Path:    "/v1/cron/:type",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
	}
}
