package request_models

type RegisterUserRequest struct {
	Email string  `json:"email" binding:"required,email"`
	Name  string  `json:"name"`
	Image string  `json:"image"`
	Role  string  `json:"role"`
	Coin  float64 `json:"coin"`
}

type UpdateRoleRequest struct {
	UpdatedRole string `json:"updatedRole" binding:"required"`
}
