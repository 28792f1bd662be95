package usecase

import (
	"context"
	"fmt"
	"time"

	"fashion-shop/internal/data/entity"
	"fashion-shop/internal/data/repository"
	"fashion-shop/internal/dto/request"
	"fashion-shop/internal/dto/response"
	"fashion-shop/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ProductService interface {
	GetProductInfo(ctx context.Context, productID string) (*response.ProductResponse, error)
	GetAllProducts(ctx context.Context) ([]response.ProductResponse, error)
	GetPaginatedProducts(ctx context.Context, page int) ([]response.ProductResponse, error)
	FindProductByFilter(ctx context.Context, query *request.ProductFilterQuery) ([]response.ProductResponse, error)
	CreateProduct(ctx context.Context, req *request.CreateProductRequest) (*response.ProductResponse, error)
	UpdateProductStock(ctx context.Context, productID string, req *request.UpdateStockRequest) error
	DeleteProduct(ctx context.Context, productID string) error
}

type productService struct {
	productRepo repository.ProductRepository
	pageSize    int
	log         *zap.Logger
}

func NewProductService(productRepo repository.ProductRepository, pageSize int, log *zap.Logger) ProductService {
	if pageSize < 1 {
		pageSize = 15
	}
	return &productService{
		productRepo: productRepo,
		pageSize:    pageSize,
		log:         log,
	}
}

func (s *productService) GetProductInfo(ctx context.Context, productID string) (*response.ProductResponse, error) {
	id, err := uuid.Parse(productID)
	if err != nil {
		// a malformed id can never match a row
		return nil, ErrNotFound
	}

	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get product", zap.Error(err), zap.String("product_id", productID))
		return nil, fmt.Errorf("get product info: %w", err)
	}
	if product == nil {
		return nil, ErrNotFound
	}

	varieties, err := s.productRepo.FindVarieties(ctx, id)
	if err != nil {
		s.log.Error("Failed to get product varieties", zap.Error(err), zap.String("product_id", productID))
		return nil, fmt.Errorf("get product varieties: %w", err)
	}

	resp := response.ProductToResponse(product, varieties)
	return &resp, nil
}

func (s *productService) GetAllProducts(ctx context.Context) ([]response.ProductResponse, error) {
	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get all products", zap.Error(err))
		return nil, fmt.Errorf("get all products: %w", err)
	}
	if len(products) == 0 {
		return nil, ErrNotFound
	}

	return response.ProductsToResponse(products), nil
}

// GetPaginatedProducts returns one page ordered by ascending product
// id. A page past the end yields ErrNotFound, not an empty list.
func (s *productService) GetPaginatedProducts(ctx context.Context, page int) ([]response.ProductResponse, error) {
	if page < 1 {
		page = 1
	}
	offset := utils.CalculateOffset(page, s.pageSize)

	products, err := s.productRepo.FindPaginated(ctx, s.pageSize, offset)
	if err != nil {
		s.log.Error("Failed to get paginated products",
			zap.Error(err),
			zap.Int("page", page),
		)
		return nil, fmt.Errorf("get paginated products: %w", err)
	}
	if len(products) == 0 {
		return nil, ErrNotFound
	}

	return response.ProductsToResponse(products), nil
}

// FindProductByFilter applies the present filters conjunctively.
// With zero filters it falls back to plain pagination.
func (s *productService) FindProductByFilter(ctx context.Context, query *request.ProductFilterQuery) ([]response.ProductResponse, error) {
	filter := entity.ProductFilter{
		Price:    query.Price,
		Size:     query.Size,
		Category: query.Category,
		Gender:   query.Gender,
		Brand:    query.Brand,
	}

	if filter.Empty() {
		return s.GetPaginatedProducts(ctx, query.Page)
	}

	page := query.Page
	if page < 1 {
		page = 1
	}
	offset := utils.CalculateOffset(page, s.pageSize)

	products, err := s.productRepo.FindByFilter(ctx, filter, s.pageSize, offset)
	if err != nil {
		s.log.Error("Failed to filter products", zap.Error(err), zap.Int("page", page))
		return nil, fmt.Errorf("filter products: %w", err)
	}
	if len(products) == 0 {
		return nil, ErrNotFound
	}

	return response.ProductsToResponse(products), nil
}

func (s *productService) CreateProduct(ctx context.Context, req *request.CreateProductRequest) (*response.ProductResponse, error) {
	if err := NewValidationError(req); err != nil {
		s.log.Warn("Create product validation failed", zap.Error(err))
		return nil, err
	}

	product := &entity.Product{
		ID:          uuid.New(),
		Name:        req.ProductName,
		Brand:       req.ProductBrand,
		Category:    req.ProductCategory,
		Color:       req.ProductColor,
		Description: req.ProductDescription,
		Gender:      req.ProductGender,
		Image:       req.ProductImage,
		Price:       *req.ProductPrice,
		Size:        req.ProductSize,
		Stock:       *req.ProductStock,
		CreatedAt:   time.Now(),
		AmountSold:  0,
	}

	var varieties []*entity.ProductColorVariety
	for _, v := range req.ColorVarieties {
		varieties = append(varieties, &entity.ProductColorVariety{
			ProductID: product.ID,
			Color:     v.Color,
			Sizes:     v.Sizes,
			Stocks:    v.Stocks,
		})
	}

	if err := s.productRepo.Create(ctx, product, varieties); err != nil {
		s.log.Error("Failed to create product", zap.Error(err), zap.String("name", req.ProductName))
		return nil, fmt.Errorf("create product: %w", err)
	}

	s.log.Info("Product created",
		zap.String("product_id", product.ID.String()),
		zap.String("name", product.Name))

	resp := response.ProductToResponse(product, varieties)
	return &resp, nil
}

func (s *productService) UpdateProductStock(ctx context.Context, productID string, req *request.UpdateStockRequest) error {
	if err := NewValidationError(req); err != nil {
		s.log.Warn("Update stock validation failed", zap.Error(err))
		return err
	}

	id, err := uuid.Parse(productID)
	if err != nil {
		return &ValidationError{Fields: map[string]string{"productId": "Must be a valid UUID"}}
	}

	if err := s.productRepo.UpdateStock(ctx, id, *req.ProductStock); err != nil {
		s.log.Error("Failed to update stock", zap.Error(err), zap.String("product_id", productID))
		return fmt.Errorf("update stock: %w", err)
	}

	return nil
}

func (s *productService) DeleteProduct(ctx context.Context, productID string) error {
	id, err := uuid.Parse(productID)
	if err != nil {
		return &ValidationError{Fields: map[string]string{"productId": "Must be a valid UUID"}}
	}

	if err := s.productRepo.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete product", zap.Error(err), zap.String("product_id", productID))
		return fmt.Errorf("delete product: %w", err)
	}

	return nil
}
