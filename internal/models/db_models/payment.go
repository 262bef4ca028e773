package db_models

import "gorm.io/datatypes"

// Payment records a confirmed coin purchase. AmountMinor is in processor
// minor units (cents); PurchasedCoin is derived from the confirmed intent
// amount, not from the client.
type Payment struct {
	BaseModel
	Email         string  `gorm:"index" json:"email"`
	AmountMinor   int64   `json:"amount"`
	PurchasedCoin float64 `json:"purchasedCoin"`
	IntentID      string  `gorm:"index" json:"intentId"`

	Metadata datatypes.JSON `gorm:"type:jsonb;default:'{}'" json:"metadata,omitempty"`
}
