package validation

import (
	"math"
	"testing"

	"storefront/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func validProduct() ProductCreate {
	return ProductCreate{
		Name:        "Headphones",
		Description: "Over-ear",
		Price:       99.5,
		Category:    "Electronics",
		Image:       "https://img.example.com/h.jpg",
	}
}

func fieldNames(t *testing.T, err error) []string {
	t.Helper()
	var de *domain.Error
	require.ErrorAs(t, err, &de)
	require.Equal(t, domain.KindValidation, de.Kind)
	names := make([]string, 0, len(de.Fields))
	for _, f := range de.Fields {
		names = append(names, f.Field)
	}
	return names
}

func TestProductCreateAcceptsValidInput(t *testing.T) {
	p := validProduct()
	p.Rating = ptr(4.5)
	p.ReviewCount = ptr(0)
	p.OriginalPrice = ptr(120.0)
	p.Images = []string{"https://img.example.com/a.jpg"}

	assert.NoError(t, Struct(p))
}

func TestProductCreateRejections(t *testing.T) {
	tests := []struct {
		name  string
		mut   func(p *ProductCreate)
		field string
	}{
		{"missing name", func(p *ProductCreate) { p.Name = "" }, "name"},
		{"blank name", func(p *ProductCreate) { p.Name = "   " }, "name"},
		{"zero price", func(p *ProductCreate) { p.Price = 0 }, "price"},
		{"negative price", func(p *ProductCreate) { p.Price = -1 }, "price"},
		{"rating above five", func(p *ProductCreate) { p.Rating = ptr(5.1) }, "rating"},
		{"negative rating", func(p *ProductCreate) { p.Rating = ptr(-0.5) }, "rating"},
		{"zero original price", func(p *ProductCreate) { p.OriginalPrice = ptr(0.0) }, "originalPrice"},
		{"price above cap", func(p *ProductCreate) { p.Price = 1e308 }, "price"},
		{"original price above cap", func(p *ProductCreate) { p.OriginalPrice = ptr(1e308) }, "originalPrice"},
		{"negative review count", func(p *ProductCreate) { p.ReviewCount = ptr(-1) }, "reviewCount"},
		{"bad image url", func(p *ProductCreate) { p.Image = "not a url" }, "image"},
		{"bad gallery url", func(p *ProductCreate) { p.Images = []string{"https://ok.example.com/a.jpg", "nope"} }, "images[1]"},
		{"missing category", func(p *ProductCreate) { p.Category = "" }, "category"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validProduct()
			tt.mut(&p)
			assert.Contains(t, fieldNames(t, Struct(p)), tt.field)
		})
	}
}

func TestProductCreateReportsEveryField(t *testing.T) {
	err := Struct(ProductCreate{})
	names := fieldNames(t, err)
	assert.ElementsMatch(t, []string{"name", "description", "price", "category"}, names)
	assert.Contains(t, err.Error(), "name is required")
}

func TestProductPatchChecksOnlySuppliedFields(t *testing.T) {
	assert.NoError(t, Struct(ProductPatch{Price: ptr(10.0)}))
	assert.NoError(t, Struct(ProductPatch{}))

	assert.Equal(t, []string{"name"}, fieldNames(t, Struct(ProductPatch{Name: ptr("")})))
	assert.Equal(t, []string{"price"}, fieldNames(t, Struct(ProductPatch{Price: ptr(0.0)})))
	assert.Equal(t, []string{"price"}, fieldNames(t, Struct(ProductPatch{Price: ptr(1e308)})))
	assert.NoError(t, Struct(ProductPatch{Price: ptr(1000000.0)}))
	assert.Equal(t, []string{"rating"}, fieldNames(t, Struct(ProductPatch{Rating: ptr(6.0)})))
	assert.Equal(t, []string{"image"}, fieldNames(t, Struct(ProductPatch{Image: ptr("x")})))
}

func TestOrderRequest(t *testing.T) {
	assert.NoError(t, Struct(OrderRequest{Items: []OrderLine{{ProductID: 1, Quantity: 2}}}))

	assert.Equal(t, []string{"items"}, fieldNames(t, Struct(OrderRequest{})))
	assert.Equal(t, []string{"items"}, fieldNames(t, Struct(OrderRequest{Items: []OrderLine{}})))
	assert.ElementsMatch(t,
		[]string{"items[0].productId", "items[0].quantity"},
		fieldNames(t, Struct(OrderRequest{Items: []OrderLine{{}}})),
	)
}

func TestLineQuantityUpperBound(t *testing.T) {
	assert.NoError(t, Struct(CartLine{ProductID: 1, Quantity: ptr(domain.MaxLineQuantity)}))
	assert.NoError(t, Struct(CartLine{ProductID: 1}))
	assert.Equal(t, []string{"quantity"}, fieldNames(t, Struct(CartLine{ProductID: 1, Quantity: ptr(domain.MaxLineQuantity + 1)})))
	assert.Equal(t, []string{"quantity"}, fieldNames(t, Struct(CartLine{ProductID: 1, Quantity: ptr(math.MaxInt)})))

	assert.Equal(t,
		[]string{"items[0].quantity"},
		fieldNames(t, Struct(OrderRequest{Items: []OrderLine{{ProductID: 1, Quantity: domain.MaxLineQuantity + 1}}})),
	)
}

func TestStatusChange(t *testing.T) {
	assert.NoError(t, Struct(StatusChange{Status: domain.StatusShipped}))

	err := Struct(StatusChange{Status: "lost"})
	var de *domain.Error
	require.ErrorAs(t, err, &de)
	require.Len(t, de.Fields, 1)
	assert.Equal(t, "oneof", de.Fields[0].Rule)
}

func TestLogin(t *testing.T) {
	assert.NoError(t, Struct(Login{Username: "admin", Password: "x"}))
	assert.ElementsMatch(t, []string{"username", "password"}, fieldNames(t, Struct(Login{Username: " "})))
}

func TestProductCreateToInput(t *testing.T) {
	p := validProduct()
	p.Badge = ptr("Sale")
	in := p.ToInput()

	assert.Equal(t, p.Name, in.Name)
	assert.Equal(t, p.Price, in.Price)
	assert.Equal(t, "Sale", *in.Badge)
	assert.Equal(t, p.Image, in.Image)
}
