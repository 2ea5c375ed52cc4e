package delivery

import (
	"net/http"

	"storefront/internal/usecase"
	"storefront/internal/validation"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type ProductHandler struct {
	useCase usecase.ProductUseCase
	log     *logrus.Logger
}

func NewProductHandler(uc usecase.ProductUseCase, logger *logrus.Logger) *ProductHandler {
	return &ProductHandler{
		useCase: uc,
		log:     logger,
	}
}

// RegisterRoutes mounts the product routes. Mutations run behind the admin
// middleware, if any is given.
func (h *ProductHandler) RegisterRoutes(router gin.IRouter, admin ...gin.HandlerFunc) {
	products := router.Group("/products")
	{
		products.GET("", h.ListProducts)
		products.GET("/:id", h.GetProduct)

		mutations := products.Group("", admin...)
		mutations.POST("", h.CreateProduct)
		mutations.PATCH("/:id", h.UpdateProduct)
		mutations.DELETE("/:id", h.DeleteProduct)
	}
}

func (h *ProductHandler) ListProducts(c *gin.Context) {
	products, err := h.useCase.ListProducts(c.Query("category"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req validation.ProductCreate
	if err := bindJSON(c, &req); err != nil {
		h.log.Errorf("Failed to bind JSON for create product: %v", err)
		respondError(c, h.log, err)
		return
	}

	product, err := h.useCase.CreateProduct(req)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	h.log.Infof("Product created successfully: ID %d, Name %s", product.ID, product.Name)
	c.JSON(http.StatusCreated, gin.H{"product": product})
}

func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, err := parseIntID(c.Param("id"), "id")
	if err != nil {
		h.log.Warnf("Invalid product ID parameter: %s", c.Param("id"))
		respondError(c, h.log, err)
		return
	}

	product, err := h.useCase.GetProduct(id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"product": product})
}

func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, err := parseIntID(c.Param("id"), "id")
	if err != nil {
		h.log.Warnf("Invalid product ID parameter for update: %s", c.Param("id"))
		respondError(c, h.log, err)
		return
	}

	var req validation.ProductPatch
	if err := bindJSON(c, &req); err != nil {
		h.log.Errorf("Failed to bind JSON for update product ID %d: %v", id, err)
		respondError(c, h.log, err)
		return
	}

	product, err := h.useCase.UpdateProduct(id, req)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	h.log.Infof("Product updated successfully: ID %d", product.ID)
	c.JSON(http.StatusOK, gin.H{"product": product})
}

func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, err := parseIntID(c.Param("id"), "id")
	if err != nil {
		h.log.Warnf("Invalid product ID parameter for delete: %s", c.Param("id"))
		respondError(c, h.log, err)
		return
	}

	if err := h.useCase.DeleteProduct(id); err != nil {
		respondError(c, h.log, err)
		return
	}

	h.log.Infof("Product deleted successfully: ID %d", id)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
