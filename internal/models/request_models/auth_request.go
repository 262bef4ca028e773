package request_models

type TokenRequest struct {
	Email string `json:"email" binding:"required,email"`
}
