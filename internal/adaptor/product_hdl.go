package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"fashion-shop/internal/dto/request"
	"fashion-shop/internal/usecase"
	"fashion-shop/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ProductHandler struct {
	service usecase.ProductService
	log     *zap.Logger
}

func NewProductHandler(service usecase.ProductService, log *zap.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		log:     log,
	}
}

// GetProductInfo handles GET /product/{productId}
func (h *ProductHandler) GetProductInfo(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productId")

	product, err := h.service.GetProductInfo(r.Context(), productID)
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			utils.ResponseNotFound(w, "Product not found")
			return
		}
		h.log.Error("Get product info failed", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	utils.ResponseSuccess(w, "Product found", product)
}

// GetAllProducts handles GET /product/all
func (h *ProductHandler) GetAllProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.GetAllProducts(r.Context())
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			utils.ResponseNotFound(w, "There are no product")
			return
		}
		h.log.Error("Get all products failed", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	utils.ResponseSuccess(w, "Products found", products)
}

// GetPaginatedProducts handles GET /product?page=
func (h *ProductHandler) GetPaginatedProducts(w http.ResponseWriter, r *http.Request) {
	page := utils.ParseInt(r.URL.Query().Get("page"), 1)

	products, err := h.service.GetPaginatedProducts(r.Context(), page)
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			utils.ResponseNotFound(w, "There are no product")
			return
		}
		h.log.Error("Get paginated products failed", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	utils.ResponseSuccess(w, "Products found", products)
}

// FindProductByFilter handles GET /product/filter
func (h *ProductHandler) FindProductByFilter(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filterQuery := &request.ProductFilterQuery{
		Page:     utils.ParseInt(query.Get("filterPage"), 1),
		Size:     optionalString(query.Get("productSize")),
		Category: optionalString(query.Get("productCategory")),
		Gender:   optionalString(query.Get("productGender")),
		Brand:    optionalString(query.Get("productBrand")),
	}

	if raw := query.Get("productPrice"); raw != "" {
		price, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			utils.ResponseBadRequest(w, "productPrice must be a number", nil)
			return
		}
		filterQuery.Price = &price
	}

	products, err := h.service.FindProductByFilter(r.Context(), filterQuery)
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			utils.ResponseNotFound(w, "Product not found")
			return
		}
		h.log.Error("Find product by filter failed", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	utils.ResponseSuccess(w, "Products found", products)
}

// CreateProduct handles POST /product/createproduct
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req request.CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	product, err := h.service.CreateProduct(r.Context(), &req)
	if err != nil {
		var vErr *usecase.ValidationError
		// validation failures map to 401 on this endpoint, matching
		// the public API contract
		if errors.As(err, &vErr) {
			utils.ResponseUnauthorized(w, "Create product failed: Validation fail", vErr.Fields)
			return
		}
		h.log.Error("Create product failed", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	utils.ResponseSuccess(w, "Successful Create Product", product)
}

// UpdateProductStock handles PUT /product/updateProductStock/{productId}
func (h *ProductHandler) UpdateProductStock(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productId")

	var req request.UpdateStockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.UpdateProductStock(r.Context(), productID, &req); err != nil {
		var vErr *usecase.ValidationError
		if errors.As(err, &vErr) {
			utils.ResponseBadRequest(w, "Validation failed", vErr.Fields)
			return
		}
		h.log.Error("Update product stock failed", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	utils.ResponseSuccess(w, "OK", nil)
}

// DeleteProduct handles DELETE /product/delete/{productId}
func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productId")

	if err := h.service.DeleteProduct(r.Context(), productID); err != nil {
		var vErr *usecase.ValidationError
		if errors.As(err, &vErr) {
			utils.ResponseBadRequest(w, "Validation failed", vErr.Fields)
			return
		}
		h.log.Error("Delete product failed", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	utils.ResponseSuccess(w, "OK", nil)
}

func optionalString(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
