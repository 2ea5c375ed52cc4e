package domain

import "time"

type OrderStatus string

const (
	StatusConfirmed  OrderStatus = "confirmed"
	StatusProcessing OrderStatus = "processing"
	StatusShipped    OrderStatus = "shipped"
	StatusDelivered  OrderStatus = "delivered"
	StatusCancelled  OrderStatus = "cancelled"
)

type Order struct {
	ID        string      `json:"id"`
	UserID    string      `json:"userId"`
	Items     []OrderItem `json:"items"`
	Total     float64     `json:"total"`
	Status    OrderStatus `json:"status"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

// OrderItem holds the unit price captured when the order was placed.
type OrderItem struct {
	ProductID int     `json:"productId"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

type OrderRepository interface {
	CreateOrder(userID string, items []OrderItem) Order
	GetOrder(id string) (Order, bool)
	SetOrderStatus(id string, status OrderStatus) (Order, bool)
	ListOrders(userID string) []Order
}

func IsValidStatus(status OrderStatus) bool {
	switch status {
	case StatusConfirmed, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transitions are allowed from status.
func (s OrderStatus) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// CanTransition reports whether an order may move from s to next. Orders advance
// one step at a time along confirmed, processing, shipped, delivered and may be
// cancelled from any non-terminal status.
func (s OrderStatus) CanTransition(next OrderStatus) bool {
	if s.IsTerminal() || !IsValidStatus(next) {
		return false
	}
	if next == StatusCancelled {
		return true
	}
	switch s {
	case StatusConfirmed:
		return next == StatusProcessing
	case StatusProcessing:
		return next == StatusShipped
	case StatusShipped:
		return next == StatusDelivered
	}
	return false
}

func OrderTotal(items []OrderItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

func (o Order) Clone() Order {
	out := o
	out.Items = append([]OrderItem{}, o.Items...)
	return out
}
