package request

type LoginRequest struct {
	UserEmail    string `json:"userEmail" validate:"required,email"`
	UserPassword string `json:"userPassword" validate:"required"`
}

type CreateUserRequest struct {
	UserName     string `json:"userName" validate:"required"`
	UserEmail    string `json:"userEmail" validate:"required,email"`
	UserPassword string `json:"userPassword" validate:"required,min=6"`
}

type UpdatePasswordRequest struct {
	UserPassword string `json:"userPassword" validate:"required,min=6"`
}
