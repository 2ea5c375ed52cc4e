package delivery

import (
	"net/http"
	"strings"

	"storefront/internal/usecase"
	"storefront/internal/validation"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type OrderHandler struct {
	useCase       usecase.OrderUseCase
	defaultUserID string
	log           *logrus.Logger
}

func NewOrderHandler(uc usecase.OrderUseCase, defaultUserID string, logger *logrus.Logger) *OrderHandler {
	return &OrderHandler{
		useCase:       uc,
		defaultUserID: defaultUserID,
		log:           logger,
	}
}

// RegisterRoutes mounts the order routes. Status changes run behind the admin
// middleware, if any is given.
func (h *OrderHandler) RegisterRoutes(router gin.IRouter, admin ...gin.HandlerFunc) {
	orders := router.Group("/orders")
	{
		orders.GET("", h.ListOrders)
		orders.POST("", h.CreateOrder)
		orders.GET("/:id", h.GetOrder)
		orders.PATCH("/:id/status", append(admin, h.UpdateOrderStatus)...)
	}
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	uid := userID(c, h.defaultUserID)
	h.log.Infof("Processing create order request for user %s", uid)

	var req validation.OrderRequest
	if err := bindJSON(c, &req); err != nil {
		h.log.Errorf("Failed to bind JSON for create order (user %s): %v", uid, err)
		respondError(c, h.log, err)
		return
	}

	order, err := h.useCase.CreateOrder(uid, req)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	h.log.Infof("Order %s created successfully for user %s", order.ID, order.UserID)
	c.JSON(http.StatusCreated, gin.H{"order": order})
}

// ListOrders lists the orders of ?userId=, or every order when it is absent.
func (h *OrderHandler) ListOrders(c *gin.Context) {
	orders := h.useCase.ListOrders(strings.TrimSpace(c.Query("userId")))
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, err := h.useCase.GetOrder(c.Param("id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}

func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	id := c.Param("id")
	var req validation.StatusChange
	if err := bindJSON(c, &req); err != nil {
		h.log.Warnf("Failed to bind JSON for update order %s: %v", id, err)
		respondError(c, h.log, err)
		return
	}

	order, err := h.useCase.UpdateOrderStatus(id, req)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	h.log.Infof("Order status updated successfully for ID %s to '%s'", order.ID, order.Status)
	c.JSON(http.StatusOK, gin.H{"order": order})
}
