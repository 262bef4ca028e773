package db_models

import "gorm.io/datatypes"

// Withdrawal is a worker's pending request to convert coin balance into an
// external payout. Resolving a request deletes the row and debits the
// worker by Coin in the same transaction.
type Withdrawal struct {
	BaseModel
	WorkerEmail   string  `gorm:"index" json:"workerEmail"`
	WorkerName    string  `json:"workerName"`
	Coin          float64 `json:"coin"`
	PaymentSystem string  `json:"paymentSystem"`
	AccountNumber string  `json:"accountNumber"`

	Metadata datatypes.JSON `gorm:"type:jsonb;default:'{}'" json:"metadata,omitempty"`
}
