package usecase

import (
	"math"
	"strings"

	"storefront/internal/domain"
	"storefront/internal/metrics"
	"storefront/internal/validation"

	"github.com/sirupsen/logrus"
)

type OrderUseCase interface {
	// CreateOrder resolves every line against the catalog and snapshots the
	// current price. If any product is unknown no order is created.
	CreateOrder(userID string, req validation.OrderRequest) (domain.Order, error)
	GetOrder(id string) (domain.Order, error)
	ListOrders(userID string) []domain.Order
	UpdateOrderStatus(id string, req validation.StatusChange) (domain.Order, error)
}

type orderUseCase struct {
	orderRepo   domain.OrderRepository
	productRepo domain.ProductRepository
	log         *logrus.Logger
}

func NewOrderUseCase(orderRepo domain.OrderRepository, productRepo domain.ProductRepository, logger *logrus.Logger) OrderUseCase {
	return &orderUseCase{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		log:         logger,
	}
}

func (uc *orderUseCase) CreateOrder(userID string, req validation.OrderRequest) (domain.Order, error) {
	if strings.TrimSpace(userID) == "" {
		return domain.Order{}, domain.NewValidationError("invalid user ID", domain.FieldError{
			Field: "userId", Rule: "required", Message: "is required",
		})
	}
	if err := validation.Struct(req); err != nil {
		uc.log.Warnf("Use Case: Rejected order for user %s: %v", userID, err)
		return domain.Order{}, err
	}

	items := make([]domain.OrderItem, 0, len(req.Items))
	for i, line := range req.Items {
		product, ok := uc.productRepo.GetProduct(line.ProductID)
		if !ok {
			uc.log.Warnf("Use Case: Order for user %s references unknown product %d (item %d)", userID, line.ProductID, i)
			return domain.Order{}, domain.NewNotFoundError("item %d: product with id %d not found", i, line.ProductID)
		}
		items = append(items, domain.OrderItem{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			Price:     product.Price,
		})
	}

	if total := domain.OrderTotal(items); math.IsInf(total, 0) || math.IsNaN(total) {
		uc.log.Warnf("Use Case: Rejected order for user %s: total is not a finite amount", userID)
		return domain.Order{}, domain.NewValidationError("invalid input: order total is too large", domain.FieldError{
			Field: "items", Rule: "total", Message: "order total must be a finite amount",
		})
	}

	order := uc.orderRepo.CreateOrder(userID, items)
	metrics.RecordOrderCreated(order.Total)
	uc.log.Infof("Use Case: Order %s created successfully for user %s, total %.2f", order.ID, userID, order.Total)
	return order, nil
}

func (uc *orderUseCase) GetOrder(id string) (domain.Order, error) {
	order, ok := uc.orderRepo.GetOrder(id)
	if !ok {
		return domain.Order{}, domain.NewNotFoundError("order with id %s not found", id)
	}
	return order, nil
}

func (uc *orderUseCase) ListOrders(userID string) []domain.Order {
	orders := uc.orderRepo.ListOrders(userID)
	uc.log.Debugf("Use Case: Retrieved %d orders (user filter: '%s')", len(orders), userID)
	return orders
}

func (uc *orderUseCase) UpdateOrderStatus(id string, req validation.StatusChange) (domain.Order, error) {
	if err := validation.Struct(req); err != nil {
		return domain.Order{}, err
	}
	current, ok := uc.orderRepo.GetOrder(id)
	if !ok {
		return domain.Order{}, domain.NewNotFoundError("order with id %s not found", id)
	}
	if current.Status == req.Status {
		uc.log.Infof("Use Case: Order %s already has status '%s'", id, req.Status)
		return current, nil
	}
	if !current.Status.CanTransition(req.Status) {
		uc.log.Warnf("Use Case: Illegal status transition for order %s: '%s' -> '%s'", id, current.Status, req.Status)
		return domain.Order{}, domain.NewConflictError("cannot change order status from '%s' to '%s'", current.Status, req.Status)
	}

	updated, ok := uc.orderRepo.SetOrderStatus(id, req.Status)
	if !ok {
		return domain.Order{}, domain.NewNotFoundError("order with id %s not found", id)
	}
	metrics.RecordOrderStatus(string(updated.Status))
	uc.log.Infof("Use Case: Order status updated successfully for ID %s to %s", updated.ID, updated.Status)
	return updated, nil
}
