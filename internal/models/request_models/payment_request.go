package request_models

type CreateIntentRequest struct {
	// Price is in major currency units; the intent is created for price*100
	// minor units.
	Price float64 `json:"price" binding:"required,gt=0"`
}

type RecordPaymentRequest struct {
	IntentID string `json:"intentId" binding:"required"`
}
