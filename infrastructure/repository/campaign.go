package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/snapix-app/snapix-api/infrastructure/database/postgres"
	"github.com/snapix-app/snapix-api/internal/domain"
)

const campaignsTable = "campaigns"

var campaignColumns = []string{
	"id",
	"meta_campaign_id",
	"name",
	"status",
	"effective_status",
	"objective",
	"budget",
	"budget_type",
	"start_date",
	"end_date",
	"platform",
	"is_active",
	"spend",
	"impressions",
	"clicks",
	"conversions",
	"conversion_value",
	"reach",
	"frequency",
	"ctr",
	"cpc",
	"cpm",
	"roas",
	"cpa",
	"created_by",
	"ad_account_id",
	"created_date",
	"updated_date",
}

type CampaignRepository interface {
	SaveOrUpdate(campaign *domain.Campaign) error
	ListByCreator(userEmail string, statuses []string, limit uint64) ([]*domain.Campaign, error)
}

type campaignRepository struct {
	conn *postgres.Connection
}

func NewCampaignRepository(conn *postgres.Connection) CampaignRepository {
	return &campaignRepository{
		conn: conn,
	}
}

// SaveOrUpdate persiste a campanha usando o meta_campaign_id como chave
// natural: re-sincronizações sobrescrevem as métricas do mesmo registro em
// vez de duplicá-lo
func (r *campaignRepository) SaveOrUpdate(campaign *domain.Campaign) error {
	query, args, err := squirrel.StatementBuilder.
		Insert(campaignsTable).
		Columns(campaignColumns...).
		Values(
			campaign.ID,
			campaign.MetaCampaignID,
			campaign.Name,
			campaign.Status,
			campaign.EffectiveStatus,
			campaign.Objective,
			campaign.Budget,
			campaign.BudgetType,
			campaign.StartDate,
			campaign.EndDate,
			campaign.Platform,
			campaign.IsActive,
			campaign.PerformanceMetrics.Spend,
			campaign.PerformanceMetrics.Impressions,
			campaign.PerformanceMetrics.Clicks,
			campaign.PerformanceMetrics.Conversions,
			campaign.PerformanceMetrics.ConversionValue,
			campaign.PerformanceMetrics.Reach,
			campaign.PerformanceMetrics.Frequency,
			campaign.PerformanceMetrics.CTR,
			campaign.PerformanceMetrics.CPC,
			campaign.PerformanceMetrics.CPM,
			campaign.PerformanceMetrics.ROAS,
			campaign.PerformanceMetrics.CPA,
			campaign.CreatedBy,
			campaign.AdAccountID,
			squirrel.Expr("NOW()"),
			squirrel.Expr("NOW()"),
		).
		Suffix(`ON CONFLICT (meta_campaign_id) DO UPDATE SET
			name = EXCLUDED.name,
			status = EXCLUDED.status,
			effective_status = EXCLUDED.effective_status,
			objective = EXCLUDED.objective,
			budget = EXCLUDED.budget,
			budget_type = EXCLUDED.budget_type,
			start_date = EXCLUDED.start_date,
			end_date = EXCLUDED.end_date,
			platform = EXCLUDED.platform,
			is_active = EXCLUDED.is_active,
			spend = EXCLUDED.spend,
			impressions = EXCLUDED.impressions,
			clicks = EXCLUDED.clicks,
			conversions = EXCLUDED.conversions,
			conversion_value = EXCLUDED.conversion_value,
			reach = EXCLUDED.reach,
			frequency = EXCLUDED.frequency,
			ctr = EXCLUDED.ctr,
			cpc = EXCLUDED.cpc,
			cpm = EXCLUDED.cpm,
			roas = EXCLUDED.roas,
			cpa = EXCLUDED.cpa,
			created_by = EXCLUDED.created_by,
			ad_account_id = EXCLUDED.ad_account_id,
			updated_date = NOW()`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}

// ListByCreator lê as campanhas persistidas do usuário, mais recentes
// primeiro. É a fonte do fallback quando o Facebook está indisponível
func (r *campaignRepository) ListByCreator(userEmail string, statuses []string, limit uint64) ([]*domain.Campaign, error) {
	queryBuilder := squirrel.
		Select(campaignColumns...).
		From(campaignsTable).
		Where(squirrel.Eq{"created_by": userEmail}).
		OrderBy("updated_date DESC").
		PlaceholderFormat(squirrel.Dollar)

	if len(statuses) > 0 {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"status": statuses})
	}

	if limit > 0 {
		queryBuilder = queryBuilder.Limit(limit)
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	defer rows.Close()

	campaigns := make([]*domain.Campaign, 0)
	for rows.Next() {
		campaign := &domain.Campaign{}

		if err := rows.Scan(
			&campaign.ID,
			&campaign.MetaCampaignID,
			&campaign.Name,
			&campaign.Status,
			&campaign.EffectiveStatus,
			&campaign.Objective,
			&campaign.Budget,
			&campaign.BudgetType,
			&campaign.StartDate,
			&campaign.EndDate,
			&campaign.Platform,
			&campaign.IsActive,
			&campaign.PerformanceMetrics.Spend,
			&campaign.PerformanceMetrics.Impressions,
			&campaign.PerformanceMetrics.Clicks,
			&campaign.PerformanceMetrics.Conversions,
			&campaign.PerformanceMetrics.ConversionValue,
			&campaign.PerformanceMetrics.Reach,
			&campaign.PerformanceMetrics.Frequency,
			&campaign.PerformanceMetrics.CTR,
			&campaign.PerformanceMetrics.CPC,
			&campaign.PerformanceMetrics.CPM,
			&campaign.PerformanceMetrics.ROAS,
			&campaign.PerformanceMetrics.CPA,
			&campaign.CreatedBy,
			&campaign.AdAccountID,
			&campaign.CreatedDate,
			&campaign.UpdatedDate,
		); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		campaigns = append(campaigns, campaign)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return campaigns, nil
}
