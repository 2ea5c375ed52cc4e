package delivery

import (
	"net/http"

	"storefront/internal/usecase"
	"storefront/internal/validation"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type WishlistHandler struct {
	useCase       usecase.WishlistUseCase
	defaultUserID string
	log           *logrus.Logger
}

func NewWishlistHandler(uc usecase.WishlistUseCase, defaultUserID string, logger *logrus.Logger) *WishlistHandler {
	return &WishlistHandler{
		useCase:       uc,
		defaultUserID: defaultUserID,
		log:           logger,
	}
}

func (h *WishlistHandler) RegisterRoutes(router gin.IRouter) {
	wishlist := router.Group("/wishlist")
	{
		wishlist.GET("", h.GetWishlist)
		wishlist.POST("", h.AddItem)
		wishlist.DELETE("", h.RemoveItem)
	}
}

func (h *WishlistHandler) GetWishlist(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"wishlist": h.useCase.GetWishlist(userID(c, h.defaultUserID))})
}

func (h *WishlistHandler) AddItem(c *gin.Context) {
	uid := userID(c, h.defaultUserID)
	var req validation.WishlistItem
	if err := bindJSON(c, &req); err != nil {
		respondError(c, h.log, err)
		return
	}
	wl, err := h.useCase.AddItem(uid, req)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"wishlist": wl})
}

// RemoveItem takes the product from ?productId= or, failing that, from a
// {"productId": n} body.
func (h *WishlistHandler) RemoveItem(c *gin.Context) {
	uid := userID(c, h.defaultUserID)

	var productID int
	if raw := c.Query("productId"); raw != "" {
		id, err := parseIntID(raw, "productId")
		if err != nil {
			respondError(c, h.log, err)
			return
		}
		productID = id
	} else {
		var req validation.WishlistItem
		if err := bindJSON(c, &req); err != nil {
			respondError(c, h.log, err)
			return
		}
		if err := validation.Struct(req); err != nil {
			respondError(c, h.log, err)
			return
		}
		productID = req.ProductID
	}

	c.JSON(http.StatusOK, gin.H{"wishlist": h.useCase.RemoveItem(uid, productID)})
}
