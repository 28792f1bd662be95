package request

// Price and Stock are pointers so that a zero value still counts as
// present for the required check.
type CreateProductRequest struct {
	ProductName        string                `json:"productName" validate:"required"`
	ProductBrand       string                `json:"productBrand"`
	ProductCategory    string                `json:"productCategory"`
	ProductColor       string                `json:"productColor"`
	ProductDescription string                `json:"productDescription"`
	ProductGender      string                `json:"productGender"`
	ProductImage       string                `json:"productImage"`
	ProductPrice       *float64              `json:"productPrice" validate:"required,gte=0"`
	ProductSize        string                `json:"productSize"`
	ProductStock       *int                  `json:"productStock" validate:"required,gte=0"`
	ColorVarieties     []ColorVarietyRequest `json:"colorVarieties,omitempty" validate:"omitempty,dive"`
}

type ColorVarietyRequest struct {
	Color  string   `json:"color" validate:"required"`
	Sizes  []string `json:"sizes" validate:"required"`
	Stocks []int32  `json:"stocks" validate:"required"`
}

type UpdateStockRequest struct {
	ProductStock *int `json:"productStock" validate:"required,gte=0"`
}

// ProductFilterQuery carries the optional catalog filters parsed from
// the query string. Nil means the filter was not supplied.
type ProductFilterQuery struct {
	Page     int
	Price    *float64
	Size     *string
	Category *string
	Gender   *string
	Brand    *string
}
