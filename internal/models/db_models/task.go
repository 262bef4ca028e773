package db_models

import "gorm.io/datatypes"

// Task is a unit-of-work listing. TaskQuantity is the number of remaining
// units and is decremented by one per submission with no lower bound.
type Task struct {
	BaseModel
	CreatorEmail   string  `gorm:"index" json:"creatorEmail"`
	Title          string  `json:"title"`
	Detail         string  `json:"detail"`
	Image          string  `json:"image"`
	PayableAmount  float64 `json:"payableAmount"`
	TaskQuantity   int64   `json:"taskQuantity"`
	CompletionDate string  `json:"completionDate"`

	// Free-form descriptive fields submitted by the creator.
	Metadata datatypes.JSON `gorm:"type:jsonb;default:'{}'" json:"metadata,omitempty"`
}
