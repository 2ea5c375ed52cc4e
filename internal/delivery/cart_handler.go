package delivery

import (
	"net/http"

	"storefront/internal/usecase"
	"storefront/internal/validation"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type CartHandler struct {
	useCase       usecase.CartUseCase
	defaultUserID string
	log           *logrus.Logger
}

func NewCartHandler(uc usecase.CartUseCase, defaultUserID string, logger *logrus.Logger) *CartHandler {
	return &CartHandler{
		useCase:       uc,
		defaultUserID: defaultUserID,
		log:           logger,
	}
}

func (h *CartHandler) RegisterRoutes(router gin.IRouter) {
	cart := router.Group("/cart")
	{
		cart.GET("", h.GetCart)
		cart.POST("", h.AddItem)
		cart.PATCH("", h.UpdateItem)
		cart.DELETE("", h.RemoveItem)
	}
}

func (h *CartHandler) GetCart(c *gin.Context) {
	cart := h.useCase.GetCart(userID(c, h.defaultUserID))
	c.JSON(http.StatusOK, gin.H{"cart": cart})
}

func (h *CartHandler) AddItem(c *gin.Context) {
	uid := userID(c, h.defaultUserID)
	var req validation.CartLine
	if err := bindJSON(c, &req); err != nil {
		respondError(c, h.log, err)
		return
	}
	cart, err := h.useCase.AddItem(uid, req)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cart": cart})
}

func (h *CartHandler) UpdateItem(c *gin.Context) {
	uid := userID(c, h.defaultUserID)
	var req validation.CartLine
	if err := bindJSON(c, &req); err != nil {
		respondError(c, h.log, err)
		return
	}
	cart, err := h.useCase.SetItemQuantity(uid, req)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cart": cart})
}

// RemoveItem drops the line named by ?productId=, or empties the cart when no
// product is given.
func (h *CartHandler) RemoveItem(c *gin.Context) {
	uid := userID(c, h.defaultUserID)
	raw := c.Query("productId")
	if raw == "" {
		c.JSON(http.StatusOK, gin.H{"cart": h.useCase.Clear(uid)})
		return
	}
	productID, err := parseIntID(raw, "productId")
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cart": h.useCase.RemoveItem(uid, productID)})
}
