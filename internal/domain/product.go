package domain

import "time"

type Product struct {
	ID            int       `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Price         float64   `json:"price"`
	OriginalPrice *float64  `json:"originalPrice,omitempty"`
	Category      string    `json:"category"`
	Badge         *string   `json:"badge,omitempty"`
	Rating        *float64  `json:"rating,omitempty"`
	ReviewCount   *int      `json:"reviewCount,omitempty"`
	Image         string    `json:"image,omitempty"`
	Images        []string  `json:"images"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// ProductInput carries the fields of a product about to be created. Id and
// timestamps are assigned by the store.
type ProductInput struct {
	Name          string
	Description   string
	Price         float64
	OriginalPrice *float64
	Category      string
	Badge         *string
	Rating        *float64
	ReviewCount   *int
	Image         string
	Images        []string
}

// ProductPatch is a partial update: nil fields are left untouched.
type ProductPatch struct {
	Name          *string
	Description   *string
	Price         *float64
	OriginalPrice *float64
	Category      *string
	Badge         *string
	Rating        *float64
	ReviewCount   *int
	Image         *string
	Images        []string
}

func (p ProductPatch) IsEmpty() bool {
	return p.Name == nil && p.Description == nil && p.Price == nil && p.OriginalPrice == nil &&
		p.Category == nil && p.Badge == nil && p.Rating == nil && p.ReviewCount == nil &&
		p.Image == nil && p.Images == nil
}

type ProductRepository interface {
	CreateProduct(input ProductInput) Product
	GetProduct(id int) (Product, bool)
	UpdateProduct(id int, patch ProductPatch) (Product, bool)
	DeleteProduct(id int) bool
	ListProducts() []Product
}

// Clone returns a deep copy so callers never share slices or pointers with the store.
func (p Product) Clone() Product {
	out := p
	out.OriginalPrice = cloneFloat(p.OriginalPrice)
	out.Rating = cloneFloat(p.Rating)
	if p.Badge != nil {
		b := *p.Badge
		out.Badge = &b
	}
	if p.ReviewCount != nil {
		n := *p.ReviewCount
		out.ReviewCount = &n
	}
	out.Images = append([]string{}, p.Images...)
	return out
}

func cloneFloat(f *float64) *float64 {
	if f == nil {
		return nil
	}
	v := *f
	return &v
}
