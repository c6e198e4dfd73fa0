package fbdomain

type Campaign struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Status          string  `json:"status"`
	EffectiveStatus string  `json:"effective_status"`
	Objective       string  `json:"objective"`
	DailyBudget     FlexInt `json:"daily_budget"`    // em centavos
	LifetimeBudget  FlexInt `json:"lifetime_budget"` // em centavos
	CreatedTime     string  `json:"created_time"`
	UpdatedTime     string  `json:"updated_time"`
	StartTime       string  `json:"start_time"`
	StopTime        string  `json:"stop_time"`
}

type Cursors struct {
	Before string `json:"before"`
	After  string `json:"after"`
}

type Paging struct {
	Cursors Cursors `json:"cursors"`
}
