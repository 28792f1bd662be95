package response

import (
	"time"

	"fashion-shop/internal/data/entity"
)

type ProductResponse struct {
	ProductID          string                 `json:"productId"`
	ProductName        string                 `json:"productName"`
	ProductBrand       string                 `json:"productBrand"`
	ProductCategory    string                 `json:"productCategory"`
	ProductColor       string                 `json:"productColor"`
	ProductDescription string                 `json:"productDescription"`
	ProductGender      string                 `json:"productGender"`
	ProductImage       string                 `json:"productImage"`
	ProductPrice       float64                `json:"productPrice"`
	ProductSize        string                 `json:"productSize"`
	ProductStock       int                    `json:"productStock"`
	ProductCreatedAt   time.Time              `json:"productCreatedAt"`
	ProductAmountSold  int                    `json:"productAmountSold"`
	ColorVarieties     []ColorVarietyResponse `json:"colorVarieties,omitempty"`
}

type ColorVarietyResponse struct {
	Color  string   `json:"color"`
	Sizes  []string `json:"sizes"`
	Stocks []int32  `json:"stocks"`
}

func ProductToResponse(product *entity.Product, varieties []*entity.ProductColorVariety) ProductResponse {
	resp := ProductResponse{
		ProductID:          product.ID.String(),
		ProductName:        product.Name,
		ProductBrand:       product.Brand,
		ProductCategory:    product.Category,
		ProductColor:       product.Color,
		ProductDescription: product.Description,
		ProductGender:      product.Gender,
		ProductImage:       product.Image,
		ProductPrice:       product.Price,
		ProductSize:        product.Size,
		ProductStock:       product.Stock,
		ProductCreatedAt:   product.CreatedAt,
		ProductAmountSold:  product.AmountSold,
	}

	for _, v := range varieties {
		resp.ColorVarieties = append(resp.ColorVarieties, ColorVarietyResponse{
			Color:  v.Color,
			Sizes:  v.Sizes,
			Stocks: v.Stocks,
		})
	}

	return resp
}

func ProductsToResponse(products []*entity.Product) []ProductResponse {
	responses := make([]ProductResponse, len(products))
	for i, p := range products {
		responses[i] = ProductToResponse(p, nil)
	}
	return responses
}
