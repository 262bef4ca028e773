package response_models

type AdminState struct {
	TotalUsers    int64   `json:"totalUsers"`
	TotalCoins    float64 `json:"totalCoins"`
	TotalPayments float64 `json:"totalPayments"`
}

type CreatorState struct {
	TotalTaskQuantity int64   `json:"totalTaskQuantity"`
	TotalPaid         float64 `json:"totalPaid"`
}

type WorkerState struct {
	TotalSubmissions int64   `json:"totalSubmissions"`
	TotalEarnings    float64 `json:"totalEarnings"`
}

type TopEarner struct {
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Image string  `json:"image"`
	Coin  float64 `json:"coin"`
}
