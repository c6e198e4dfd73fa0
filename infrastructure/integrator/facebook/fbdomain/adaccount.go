package fbdomain

type AdAccount struct {
	ID            string  `json:"id"`         // act_<account_id>
	AccountID     string  `json:"account_id"` // sem prefixo
	Name          string  `json:"name"`
	Currency      string  `json:"currency"`
	AccountStatus FlexInt `json:"account_status"`
}

type TokenResponse struct {
	AccessToken string  `json:"access_token"`
	TokenType   string  `json:"token_type"`
	ExpiresIn   FlexInt `json:"expires_in"`
}
