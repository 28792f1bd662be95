package wire

import (
	"net/http"

	"fashion-shop/internal/adaptor"
	"fashion-shop/internal/data/repository"
	"fashion-shop/internal/usecase"
	"fashion-shop/pkg/middleware"
	"fashion-shop/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired dependencies
type App struct {
	Router *chi.Mux
}

// Wiring initializes services, handlers and routes in dependency order
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	tokens := utils.NewTokenIssuer(config.JWT.Secret, config.JWT.ExpiryHours)

	service := usecase.NewService(repo, config, tokens, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, tokens, config, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	tokens *utils.TokenIssuer,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(config.App.CORSOrigin))

	wireAuth(r, handler.Auth)
	wireProduct(r, handler.Product, tokens, logger)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
