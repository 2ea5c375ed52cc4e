package validation

import "storefront/internal/domain"

// ProductCreate is the mandatory-complete schema for a new product.
type ProductCreate struct {
	Name          string   `json:"name" yaml:"name" validate:"required,notblank"`
	Description   string   `json:"description" yaml:"description" validate:"required,notblank"`
	Price         float64  `json:"price" yaml:"price" validate:"gt=0,lte=1000000"`
	OriginalPrice *float64 `json:"originalPrice" yaml:"originalPrice" validate:"omitnil,gt=0,lte=1000000"`
	Category      string   `json:"category" yaml:"category" validate:"required,notblank"`
	Badge         *string  `json:"badge" yaml:"badge"`
	Rating        *float64 `json:"rating" yaml:"rating" validate:"omitnil,gte=0,lte=5"`
	ReviewCount   *int     `json:"reviewCount" yaml:"reviewCount" validate:"omitnil,gte=0"`
	Image         string   `json:"image" yaml:"image" validate:"omitempty,url"`
	Images        []string `json:"images" yaml:"images" validate:"omitempty,dive,url"`
}

func (p ProductCreate) ToInput() domain.ProductInput {
	return domain.ProductInput{
		Name:          p.Name,
		Description:   p.Description,
		Price:         p.Price,
		OriginalPrice: p.OriginalPrice,
		Category:      p.Category,
		Badge:         p.Badge,
		Rating:        p.Rating,
		ReviewCount:   p.ReviewCount,
		Image:         p.Image,
		Images:        p.Images,
	}
}

// ProductPatch has the same rules as ProductCreate with every field optional;
// only supplied fields are checked.
type ProductPatch struct {
	Name          *string  `json:"name" validate:"omitnil,notblank"`
	Description   *string  `json:"description" validate:"omitnil,notblank"`
	Price         *float64 `json:"price" validate:"omitnil,gt=0,lte=1000000"`
	OriginalPrice *float64 `json:"originalPrice" validate:"omitnil,gt=0,lte=1000000"`
	Category      *string  `json:"category" validate:"omitnil,notblank"`
	Badge         *string  `json:"badge"`
	Rating        *float64 `json:"rating" validate:"omitnil,gte=0,lte=5"`
	ReviewCount   *int     `json:"reviewCount" validate:"omitnil,gte=0"`
	Image         *string  `json:"image" validate:"omitnil,url"`
	Images        []string `json:"images" validate:"omitnil,dive,url"`
}

func (p ProductPatch) ToPatch() domain.ProductPatch {
	return domain.ProductPatch{
		Name:          p.Name,
		Description:   p.Description,
		Price:         p.Price,
		OriginalPrice: p.OriginalPrice,
		Category:      p.Category,
		Badge:         p.Badge,
		Rating:        p.Rating,
		ReviewCount:   p.ReviewCount,
		Image:         p.Image,
		Images:        p.Images,
	}
}

// CartLine is the body of POST and PATCH /cart. Quantity is optional on POST.
type CartLine struct {
	ProductID int  `json:"productId" validate:"gte=1"`
	Quantity  *int `json:"quantity" validate:"omitnil,lte=10000"`
}

type WishlistItem struct {
	ProductID int `json:"productId" validate:"gte=1"`
}

type OrderLine struct {
	ProductID int `json:"productId" validate:"gte=1"`
	Quantity  int `json:"quantity" validate:"gte=1,lte=10000"`
}

type OrderRequest struct {
	Items []OrderLine `json:"items" validate:"required,min=1,dive"`
}

type Login struct {
	Username string `json:"username" validate:"required,notblank"`
	Password string `json:"password" validate:"required"`
}

type StatusChange struct {
	Status domain.OrderStatus `json:"status" validate:"required,oneof=confirmed processing shipped delivered cancelled"`
}
