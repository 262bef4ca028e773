package request_models

type CreateWithdrawalRequest struct {
	WorkerEmail   string  `json:"workerEmail" binding:"required,email"`
	WorkerName    string  `json:"workerName"`
	Coin          float64 `json:"coin" binding:"required,gt=0"`
	PaymentSystem string  `json:"paymentSystem"`
	AccountNumber string  `json:"accountNumber"`
}

type ResolveWithdrawalRequest struct {
	WithdrawID string `json:"withdrawId" binding:"required,uuid4"`
}
