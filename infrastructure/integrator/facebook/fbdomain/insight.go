package fbdomain

// CampaignInsight é o snapshot de desempenho de uma campanha para um
// intervalo de datas, buscado separadamente do registro da campanha
type CampaignInsight struct {
	CampaignID      string    `json:"campaign_id"`
	Spend           FlexFloat `json:"spend"`
	Impressions     FlexInt   `json:"impressions"`
	Clicks          FlexInt   `json:"clicks"`
	Conversions     FlexInt   `json:"conversions"`
	ConversionValue FlexFloat `json:"conversion_value"`
	Reach           FlexInt   `json:"reach"`
	Frequency       FlexFloat `json:"frequency"`
	DateStart       string    `json:"date_start"`
	DateStop        string    `json:"date_stop"`
}
