package usecase

import (
	"fashion-shop/internal/data/repository"
	"fashion-shop/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth    AuthService
	Product ProductService
}

func NewService(repo *repository.Repository, config *utils.Config, tokens *utils.TokenIssuer, log *zap.Logger) *Service {
	return &Service{
		Auth:    NewAuthService(repo.User, tokens, log),
		Product: NewProductService(repo.Product, config.Catalog.PageSize, log),
	}
}
