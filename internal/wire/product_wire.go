package wire

import (
	"fashion-shop/internal/adaptor"
	"fashion-shop/pkg/middleware"
	"fashion-shop/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireProduct(
	r chi.Router,
	productHandler *adaptor.ProductHandler,
	tokens *utils.TokenIssuer,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/product", productHandler.GetPaginatedProducts)
	r.Get("/product/all", productHandler.GetAllProducts)
	r.Get("/product/filter", productHandler.FindProductByFilter)
	r.Get("/product/{productId}", productHandler.GetProductInfo)

	// ==================== PROTECTED ROUTES ====================
	// Catalog mutations require a valid bearer token
	auth := middleware.BearerAuth(tokens, log)
	r.With(auth).Post("/product/createproduct", productHandler.CreateProduct)
	r.With(auth).Put("/product/updateProductStock/{productId}", productHandler.UpdateProductStock)
	r.With(auth).Delete("/product/delete/{productId}", productHandler.DeleteProduct)
}
