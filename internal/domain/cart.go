package domain

import "fmt"

type CartItem struct {
	ProductID int `json:"productId"`
	Quantity  int `json:"quantity"`
}

type Cart struct {
	UserID string     `json:"userId"`
	Items  []CartItem `json:"items"`
}

type Wishlist struct {
	UserID     string `json:"userId"`
	ProductIDs []int  `json:"productIds"`
}

// CartRepository stores one cart per user. GetCart creates an empty cart on
// first access; SetCart replaces the whole cart. UpdateCart runs fn against the
// current cart and stores the result atomically.
type CartRepository interface {
	GetCart(userID string) Cart
	SetCart(userID string, cart Cart)
	UpdateCart(userID string, fn func(cart *Cart)) Cart
}

type WishlistRepository interface {
	GetWishlist(userID string) Wishlist
	SetWishlist(userID string, wishlist Wishlist)
	UpdateWishlist(userID string, fn func(wishlist *Wishlist)) Wishlist
}

// MaxLineQuantity bounds the quantity of a single cart or order line.
const MaxLineQuantity = 10000

// AddItem merges quantity into an existing line for productID or appends a new
// line. A merge that would push the line past MaxLineQuantity leaves the cart
// unchanged and returns a validation error.
func (c *Cart) AddItem(productID, quantity int) error {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			if c.Items[i].Quantity > MaxLineQuantity-quantity {
				return NewValidationError(
					fmt.Sprintf("invalid input: quantity of product %d would exceed %d", productID, MaxLineQuantity),
					FieldError{Field: "quantity", Rule: "lte", Message: fmt.Sprintf("must be at most %d in total", MaxLineQuantity)},
				)
			}
			c.Items[i].Quantity += quantity
			return nil
		}
	}
	c.Items = append(c.Items, CartItem{ProductID: productID, Quantity: quantity})
	return nil
}

// SetQuantity sets the line quantity; a quantity of zero or less removes the line.
func (c *Cart) SetQuantity(productID, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(productID)
		return
	}
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Quantity = quantity
			return
		}
	}
	c.Items = append(c.Items, CartItem{ProductID: productID, Quantity: quantity})
}

func (c *Cart) RemoveItem(productID int) {
	kept := c.Items[:0]
	for _, item := range c.Items {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	c.Items = kept
}

func (c Cart) Clone() Cart {
	out := c
	out.Items = append([]CartItem{}, c.Items...)
	return out
}

// Add appends productID unless it is already present.
func (w *Wishlist) Add(productID int) {
	if w.Contains(productID) {
		return
	}
	w.ProductIDs = append(w.ProductIDs, productID)
}

func (w *Wishlist) Remove(productID int) {
	kept := w.ProductIDs[:0]
	for _, id := range w.ProductIDs {
		if id != productID {
			kept = append(kept, id)
		}
	}
	w.ProductIDs = kept
}

func (w Wishlist) Contains(productID int) bool {
	for _, id := range w.ProductIDs {
		if id == productID {
			return true
		}
	}
	return false
}

func (w Wishlist) Clone() Wishlist {
	out := w
	out.ProductIDs = append([]int{}, w.ProductIDs...)
	return out
}
