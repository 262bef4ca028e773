package request_models

import "gorm.io/datatypes"

type CreateTaskRequest struct {
	CreatorEmail   string         `json:"creatorEmail" binding:"required,email"`
	Title          string         `json:"title" binding:"required"`
	Detail         string         `json:"detail"`
	Image          string         `json:"image"`
	PayableAmount  float64        `json:"payableAmount" binding:"required,gt=0"`
	TaskQuantity   int64          `json:"taskQuantity" binding:"required,gt=0"`
	CompletionDate string         `json:"completionDate"`
	Metadata       datatypes.JSON `json:"metadata"`
}

// UpdateTaskRequest carries a partial update of the descriptive fields.
// Nil pointers mean "leave unchanged".
type UpdateTaskRequest struct {
	Title          *string         `json:"title"`
	Detail         *string         `json:"detail"`
	Image          *string         `json:"image"`
	CompletionDate *string         `json:"completionDate"`
	Metadata       *datatypes.JSON `json:"metadata"`
}
