package domain

type ProductStatus string

const (
	ProductInStock    ProductStatus = "In Stock"
	ProductOutOfStock ProductStatus = "Out Of Stock"
)

// ColorStock tracks the per-colour stock breakdown. When a product carries
// colour variants its aggregate Stock is always the sum of these entries.
type ColorStock struct {
	Color string `json:"color"`
	Stock int64  `json:"stock"`
}

// Product's numeric key is what cart, wishlist and order line items carry
// as productId, so catalog JSON exposes it alongside the public id.
type Product struct {
	ID       uint64 `json:"productId" gorm:"primaryKey;autoIncrement"`
	PublicID string `json:"id" gorm:"size:8;uniqueIndex;not null"`

	Name             string  `json:"productName" gorm:"not null"`
	Category         string  `json:"category" gorm:"not null"`
	Price            float64 `json:"price" gorm:"not null"`
	DiscountedPrice  float64 `json:"discountedPrice,omitempty"`
	ShortDescription string  `json:"shortDescription,omitempty"`
	Description      string  `json:"description,omitempty"`

	Stock  int64         `json:"stock"`
	Colors []ColorStock  `json:"colors" gorm:"serializer:json"`
	Status ProductStatus `json:"status" gorm:"size:16;default:'In Stock'"`

	Images   []string `json:"images" gorm:"serializer:json"`
	ImageURL string   `json:"imageUrl"`

	Ratings      float64 `json:"ratings"`
	ReviewsCount int64   `json:"reviewsCount"`
}
