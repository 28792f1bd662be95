package repository

import (
	"context"
	"fmt"
	"strings"

	"fashion-shop/internal/data/entity"
	"fashion-shop/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const productColumns = `id, name, brand, category, color, description, gender,
	       image, price, size, stock, created_at, amount_sold`

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product, varieties []*entity.ProductColorVariety) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	FindVarieties(ctx context.Context, productID uuid.UUID) ([]*entity.ProductColorVariety, error)
	FindAll(ctx context.Context) ([]*entity.Product, error)
	FindPaginated(ctx context.Context, limit, offset int) ([]*entity.Product, error)
	FindByFilter(ctx context.Context, filter entity.ProductFilter, limit, offset int) ([]*entity.Product, error)
	UpdateStock(ctx context.Context, id uuid.UUID, stock int) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type productRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewProductRepository(db database.PgxIface, log *zap.Logger) ProductRepository {
	return &productRepository{
		db:  db,
		log: log.With(zap.String("repository", "product")),
	}
}

func (pr *productRepository) Create(ctx context.Context, product *entity.Product, varieties []*entity.ProductColorVariety) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err := pr.db.Exec(ctx, query,
		product.ID,
		product.Name,
		product.Brand,
		product.Category,
		product.Color,
		product.Description,
		product.Gender,
		product.Image,
		product.Price,
		product.Size,
		product.Stock,
		product.CreatedAt,
		product.AmountSold,
	)

	if err != nil {
		pr.log.Error("Failed to create product",
			zap.Error(err),
			zap.String("name", product.Name),
		)
		return fmt.Errorf("create product %s: %w", product.Name, err)
	}

	varietyQuery := `
		INSERT INTO product_color_variety (product_id, color, sizes, stocks)
		VALUES ($1, $2, $3, $4)
	`

	for _, v := range varieties {
		_, err := pr.db.Exec(ctx, varietyQuery, product.ID, v.Color, v.Sizes, v.Stocks)
		if err != nil {
			pr.log.Error("Failed to create product variety",
				zap.Error(err),
				zap.String("product_id", product.ID.String()),
				zap.String("color", v.Color),
			)
			return fmt.Errorf("create variety for product %s: %w", product.ID.String(), err)
		}
	}

	return nil
}

// FindByID returns (nil, nil) when no row matches
func (pr *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	var product entity.Product
	err := pr.db.QueryRow(ctx, query, id).Scan(
		&product.ID,
		&product.Name,
		&product.Brand,
		&product.Category,
		&product.Color,
		&product.Description,
		&product.Gender,
		&product.Image,
		&product.Price,
		&product.Size,
		&product.Stock,
		&product.CreatedAt,
		&product.AmountSold,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		pr.log.Error("Failed to find product by ID",
			zap.Error(err),
			zap.String("product_id", id.String()),
		)
		return nil, fmt.Errorf("find product by ID %s: %w", id.String(), err)
	}

	return &product, nil
}

func (pr *productRepository) FindVarieties(ctx context.Context, productID uuid.UUID) ([]*entity.ProductColorVariety, error) {
	query := `
		SELECT product_id, color, sizes, stocks
		FROM product_color_variety
		WHERE product_id = $1
	`

	rows, err := pr.db.Query(ctx, query, productID)
	if err != nil {
		pr.log.Error("Failed to find product varieties",
			zap.Error(err),
			zap.String("product_id", productID.String()),
		)
		return nil, fmt.Errorf("find varieties for product %s: %w", productID.String(), err)
	}
	defer rows.Close()

	var varieties []*entity.ProductColorVariety
	for rows.Next() {
		var v entity.ProductColorVariety
		if err := rows.Scan(&v.ProductID, &v.Color, &v.Sizes, &v.Stocks); err != nil {
			pr.log.Error("Failed to scan variety row", zap.Error(err))
			return nil, fmt.Errorf("scan variety row: %w", err)
		}
		varieties = append(varieties, &v)
	}

	if err := rows.Err(); err != nil {
		pr.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate variety rows: %w", err)
	}

	return varieties, nil
}

func (pr *productRepository) FindAll(ctx context.Context) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY id ASC`

	rows, err := pr.db.Query(ctx, query)
	if err != nil {
		pr.log.Error("Failed to find all products", zap.Error(err))
		return nil, fmt.Errorf("find all products: %w", err)
	}
	defer rows.Close()

	return pr.collectProducts(rows)
}

// FindPaginated returns one page ordered by ascending product id
func (pr *productRepository) FindPaginated(ctx context.Context, limit, offset int) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY id ASC LIMIT $1 OFFSET $2`

	rows, err := pr.db.Query(ctx, query, limit, offset)
	if err != nil {
		pr.log.Error("Failed to find paginated products",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find products limit %d offset %d: %w", limit, offset, err)
	}
	defer rows.Close()

	return pr.collectProducts(rows)
}

// FindByFilter applies the present filters as a conjunctive predicate
func (pr *productRepository) FindByFilter(ctx context.Context, filter entity.ProductFilter, limit, offset int) ([]*entity.Product, error) {
	conditions, args := buildFilterConditions(filter)

	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT ` + productColumns + ` FROM products`)
	if len(conditions) > 0 {
		queryBuilder.WriteString(" WHERE " + strings.Join(conditions, " AND "))
	}
	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY id ASC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2))
	args = append(args, limit, offset)

	rows, err := pr.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		pr.log.Error("Failed to find products by filter",
			zap.Error(err),
			zap.Int("conditions", len(conditions)),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find products by filter: %w", err)
	}
	defer rows.Close()

	return pr.collectProducts(rows)
}

// buildFilterConditions turns the present filters into ordered
// predicate fragments. Parameter indices are always derived from the
// running argument count, never hardcoded.
func buildFilterConditions(filter entity.ProductFilter) ([]string, []any) {
	conditions := []string{}
	args := []any{}

	appendCondition := func(column string, value any) {
		conditions = append(conditions, fmt.Sprintf("%s = $%d", column, len(args)+1))
		args = append(args, value)
	}

	if filter.Price != nil {
		appendCondition("price", *filter.Price)
	}
	if filter.Size != nil {
		appendCondition("size", *filter.Size)
	}
	if filter.Category != nil {
		appendCondition("category", *filter.Category)
	}
	if filter.Gender != nil {
		appendCondition("gender", *filter.Gender)
	}
	if filter.Brand != nil {
		appendCondition("brand", *filter.Brand)
	}

	return conditions, args
}

func (pr *productRepository) UpdateStock(ctx context.Context, id uuid.UUID, stock int) error {
	query := `UPDATE products SET stock = $1 WHERE id = $2`

	_, err := pr.db.Exec(ctx, query, stock, id)
	if err != nil {
		pr.log.Error("Failed to update product stock",
			zap.Error(err),
			zap.String("product_id", id.String()),
			zap.Int("stock", stock),
		)
		return fmt.Errorf("update stock for product %s: %w", id.String(), err)
	}

	return nil
}

func (pr *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := pr.db.Exec(ctx, `DELETE FROM product_color_variety WHERE product_id = $1`, id); err != nil {
		pr.log.Error("Failed to delete product varieties",
			zap.Error(err),
			zap.String("product_id", id.String()),
		)
		return fmt.Errorf("delete varieties for product %s: %w", id.String(), err)
	}

	_, err := pr.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		pr.log.Error("Failed to delete product",
			zap.Error(err),
			zap.String("product_id", id.String()),
		)
		return fmt.Errorf("delete product %s: %w", id.String(), err)
	}

	pr.log.Info("Product deleted", zap.String("product_id", id.String()))
	return nil
}

func (pr *productRepository) collectProducts(rows pgx.Rows) ([]*entity.Product, error) {
	var products []*entity.Product
	for rows.Next() {
		var product entity.Product
		err := rows.Scan(
			&product.ID,
			&product.Name,
			&product.Brand,
			&product.Category,
			&product.Color,
			&product.Description,
			&product.Gender,
			&product.Image,
			&product.Price,
			&product.Size,
			&product.Stock,
			&product.CreatedAt,
			&product.AmountSold,
		)
		if err != nil {
			pr.log.Error("Failed to scan product row", zap.Error(err))
			return nil, fmt.Errorf("scan product row: %w", err)
		}
		products = append(products, &product)
	}

	if err := rows.Err(); err != nil {
		pr.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate product rows: %w", err)
	}

	return products, nil
}
