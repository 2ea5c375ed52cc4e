package usecase

import (
	"storefront/internal/domain"
	"storefront/internal/validation"

	"github.com/sirupsen/logrus"
)

type CartUseCase interface {
	GetCart(userID string) domain.Cart
	// AddItem merges quantity into the line for the product; nil quantity means 1.
	AddItem(userID string, req validation.CartLine) (domain.Cart, error)
	// SetItemQuantity sets a line's quantity; zero or less removes the line.
	SetItemQuantity(userID string, req validation.CartLine) (domain.Cart, error)
	RemoveItem(userID string, productID int) domain.Cart
	Clear(userID string) domain.Cart
}

type cartUseCase struct {
	cartRepo    domain.CartRepository
	productRepo domain.ProductRepository
	log         *logrus.Logger
}

func NewCartUseCase(cartRepo domain.CartRepository, productRepo domain.ProductRepository, logger *logrus.Logger) CartUseCase {
	return &cartUseCase{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		log:         logger,
	}
}

func (uc *cartUseCase) GetCart(userID string) domain.Cart {
	return uc.cartRepo.GetCart(userID)
}

func (uc *cartUseCase) AddItem(userID string, req validation.CartLine) (domain.Cart, error) {
	if err := validation.Struct(req); err != nil {
		return domain.Cart{}, err
	}
	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}
	if quantity < 1 {
		return domain.Cart{}, domain.NewValidationError("invalid input: quantity must be at least 1", domain.FieldError{
			Field: "quantity", Rule: "gte", Message: "must be at least 1",
		})
	}
	if _, ok := uc.productRepo.GetProduct(req.ProductID); !ok {
		uc.log.Warnf("Use Case: User %s tried to add unknown product %d to cart", userID, req.ProductID)
		return domain.Cart{}, domain.NewNotFoundError("product with id %d not found", req.ProductID)
	}

	var addErr error
	cart := uc.cartRepo.UpdateCart(userID, func(c *domain.Cart) {
		addErr = c.AddItem(req.ProductID, quantity)
	})
	if addErr != nil {
		uc.log.Warnf("Use Case: Rejected adding %d x product %d to cart of user %s: %v", quantity, req.ProductID, userID, addErr)
		return domain.Cart{}, addErr
	}
	uc.log.Infof("Use Case: Added %d x product %d to cart of user %s", quantity, req.ProductID, userID)
	return cart, nil
}

func (uc *cartUseCase) SetItemQuantity(userID string, req validation.CartLine) (domain.Cart, error) {
	if err := validation.Struct(req); err != nil {
		return domain.Cart{}, err
	}
	if req.Quantity == nil {
		return domain.Cart{}, domain.NewValidationError("invalid input: quantity is required", domain.FieldError{
			Field: "quantity", Rule: "required", Message: "is required",
		})
	}
	quantity := *req.Quantity
	if quantity > 0 {
		if _, ok := uc.productRepo.GetProduct(req.ProductID); !ok {
			return domain.Cart{}, domain.NewNotFoundError("product with id %d not found", req.ProductID)
		}
	}

	cart := uc.cartRepo.UpdateCart(userID, func(c *domain.Cart) {
		c.SetQuantity(req.ProductID, quantity)
	})
	uc.log.Infof("Use Case: Set quantity of product %d to %d in cart of user %s", req.ProductID, quantity, userID)
	return cart, nil
}

func (uc *cartUseCase) RemoveItem(userID string, productID int) domain.Cart {
	cart := uc.cartRepo.UpdateCart(userID, func(c *domain.Cart) {
		c.RemoveItem(productID)
	})
	uc.log.Infof("Use Case: Removed product %d from cart of user %s", productID, userID)
	return cart
}

func (uc *cartUseCase) Clear(userID string) domain.Cart {
	uc.cartRepo.SetCart(userID, domain.Cart{UserID: userID, Items: []domain.CartItem{}})
	uc.log.Infof("Use Case: Emptied cart of user %s", userID)
	return uc.cartRepo.GetCart(userID)
}
