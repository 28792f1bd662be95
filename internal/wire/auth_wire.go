package wire

import (
	"fashion-shop/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler) {
	r.Post("/authentication/login", authHandler.Login)
	r.Post("/authentication/createuser", authHandler.CreateUser)
	r.Put("/authentication/updatePassword/{userEmail}", authHandler.UpdateUserPassword)
	r.Get("/authentication/{userEmail}", authHandler.FindUserByEmail)
}
