package orders

type ItemInput struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	// Total is accepted for wire compatibility but always recomputed
	// server-side; a client-sent value is never persisted.
	Total float64 `json:"total"`
}

type CreateOrderRequest struct {
	Client      string      `json:"client" binding:"required"`
	Date        string      `json:"date" binding:"required"`
	Fleet       string      `json:"fleet" binding:"required"`
	Farm        string      `json:"farm"`
	Description string      `json:"description"`
	Items       []ItemInput `json:"items" binding:"required"`
	UserID      string      `json:"userId"`
}

type UpdateOrderRequest struct {
	Client      string      `json:"client" binding:"required"`
	Date        string      `json:"date" binding:"required"`
	Fleet       string      `json:"fleet" binding:"required"`
	Farm        string      `json:"farm"`
	Description string      `json:"description"`
	Items       []ItemInput `json:"items" binding:"required"`
}

type DashboardStats struct {
	TotalOrders  int64   `json:"totalOrders"`
	TotalRevenue float64 `json:"totalRevenue"`
}
