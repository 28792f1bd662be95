package response

import (
	"fashion-shop/internal/data/entity"
)

// UserResponse never carries the password hash
type UserResponse struct {
	UserID    string          `json:"userId"`
	UserName  string          `json:"userName"`
	UserEmail string          `json:"userEmail"`
	Role      entity.UserRole `json:"role"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		UserID:    user.ID.String(),
		UserName:  user.Name,
		UserEmail: user.Email,
		Role:      user.Role,
	}
}
