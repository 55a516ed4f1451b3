package clients

type CreateClientRequest struct {
	Type     string `json:"type" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Document string `json:"document" binding:"required"`
	Email    string `json:"email" validate:"omitempty,email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	City     string `json:"city"`
	State    string `json:"state"`
	UserID   string `json:"userId"`

	CompanyName       string `json:"companyName"`
	TradingName       string `json:"tradingName"`
	StateRegistration string `json:"stateRegistration"`
}

type UpdateClientRequest struct {
	Type     string `json:"type"`
	Name     string `json:"name"`
	Document string `json:"document"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	City     string `json:"city"`
	State    string `json:"state"`

	CompanyName       string `json:"companyName"`
	TradingName       string `json:"tradingName"`
	StateRegistration string `json:"stateRegistration"`
}
