package company

type UpdateCompanyRequest struct {
	Name    string `json:"name"`
	CNPJ    string `json:"cnpj"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email" validate:"omitempty,email"`
}
