package repository

import (
	"sort"
	"strings"
	"sync"
	"time"

	"storefront/internal/domain"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	_ domain.ProductRepository  = (*MemoryStore)(nil)
	_ domain.CartRepository     = (*MemoryStore)(nil)
	_ domain.WishlistRepository = (*MemoryStore)(nil)
	_ domain.OrderRepository    = (*MemoryStore)(nil)
	_ domain.AdminRepository    = (*MemoryStore)(nil)
)

// MemoryStore owns every entity collection of the storefront. All access goes
// through its methods under a single lock, and values are copied on the way in
// and out so no caller holds a reference into the collections.
type MemoryStore struct {
	mu sync.RWMutex

	products      map[int]domain.Product
	lastProductID int

	orders     map[string]domain.Order
	orderSeq   []string
	carts      map[string]domain.Cart
	wishlists  map[string]domain.Wishlist
	admins     map[string]domain.AdminUser
	now        func() time.Time
	newOrderID func() string

	log *logrus.Logger
}

type Option func(*MemoryStore)

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *MemoryStore) { s.now = now }
}

func WithOrderIDGenerator(gen func() string) Option {
	return func(s *MemoryStore) { s.newOrderID = gen }
}

func WithAdmins(admins ...domain.AdminUser) Option {
	return func(s *MemoryStore) {
		for _, a := range admins {
			if _, exists := s.admins[a.Username]; exists {
				s.log.Warnf("Repository: Duplicate admin username '%s' in seed, keeping the first entry", a.Username)
				continue
			}
			s.admins[a.Username] = a
		}
	}
}

// WithSeedProducts creates the given products in order, so they receive ids 1..n.
func WithSeedProducts(inputs ...domain.ProductInput) Option {
	return func(s *MemoryStore) {
		for _, in := range inputs {
			s.createProductLocked(in)
		}
	}
}

func NewMemoryStore(logger *logrus.Logger, opts ...Option) *MemoryStore {
	s := &MemoryStore{
		products:   make(map[int]domain.Product),
		orders:     make(map[string]domain.Order),
		carts:      make(map[string]domain.Cart),
		wishlists:  make(map[string]domain.Wishlist),
		admins:     make(map[string]domain.AdminUser),
		now:        time.Now,
		newOrderID: defaultOrderID,
		log:        logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log.Infof("Repository: Memory store initialized with %d products and %d admins", len(s.products), len(s.admins))
	return s
}

func defaultOrderID() string {
	return "ORD-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
}

// stamp returns the current time, forced strictly after prev.
func (s *MemoryStore) stamp(prev time.Time) time.Time {
	t := s.now()
	if !t.After(prev) {
		t = prev.Add(time.Nanosecond)
	}
	return t
}

// --- Products ---

func (s *MemoryStore) CreateProduct(input domain.ProductInput) domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.createProductLocked(input)
	s.log.Infof("Repository: Product created with ID: %d, Name: %s", p.ID, p.Name)
	return p.Clone()
}

func (s *MemoryStore) createProductLocked(input domain.ProductInput) domain.Product {
	s.lastProductID++
	ts := s.stamp(time.Time{})
	p := domain.Product{
		ID:            s.lastProductID,
		Name:          input.Name,
		Description:   input.Description,
		Price:         input.Price,
		OriginalPrice: input.OriginalPrice,
		Category:      input.Category,
		Badge:         input.Badge,
		Rating:        input.Rating,
		ReviewCount:   input.ReviewCount,
		Image:         input.Image,
		Images:        input.Images,
		CreatedAt:     ts,
		UpdatedAt:     ts,
	}
	if p.Images == nil {
		p.Images = []string{}
		if p.Image != "" {
			p.Images = []string{p.Image}
		}
	}
	p = p.Clone()
	s.products[p.ID] = p
	return p
}

func (s *MemoryStore) GetProduct(id int) (domain.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.products[id]
	if !ok {
		s.log.Debugf("Repository: Product with ID %d not found", id)
		return domain.Product{}, false
	}
	return p.Clone(), true
}

func (s *MemoryStore) UpdateProduct(id int, patch domain.ProductPatch) (domain.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.products[id]
	if !ok {
		s.log.Warnf("Repository: Product with ID %d not found for update", id)
		return domain.Product{}, false
	}

	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.OriginalPrice != nil {
		p.OriginalPrice = patch.OriginalPrice
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.Badge != nil {
		p.Badge = patch.Badge
	}
	if patch.Rating != nil {
		p.Rating = patch.Rating
	}
	if patch.ReviewCount != nil {
		p.ReviewCount = patch.ReviewCount
	}
	if patch.Image != nil {
		p.Image = *patch.Image
	}
	if patch.Images != nil {
		p.Images = patch.Images
	}
	p.UpdatedAt = s.stamp(p.UpdatedAt)

	p = p.Clone()
	s.products[id] = p
	s.log.Infof("Repository: Partial update successful for product ID %d", id)
	return p.Clone(), true
}

func (s *MemoryStore) DeleteProduct(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.products[id]; !ok {
		s.log.Warnf("Repository: Attempted to delete non-existent product ID %d", id)
		return false
	}
	delete(s.products, id)
	s.log.Infof("Repository: Product deleted with ID: %d", id)
	return true
}

// ListProducts returns every product, most recently created first.
func (s *MemoryStore) ListProducts() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	products := make([]domain.Product, 0, len(s.products))
	for _, p := range s.products {
		products = append(products, p.Clone())
	}
	sort.Slice(products, func(i, j int) bool { return products[i].ID > products[j].ID })
	return products
}

// --- Carts ---

func (s *MemoryStore) GetCart(userID string) domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cartLocked(userID).Clone()
}

func (s *MemoryStore) cartLocked(userID string) domain.Cart {
	cart, ok := s.carts[userID]
	if !ok {
		cart = domain.Cart{UserID: userID, Items: []domain.CartItem{}}
		s.carts[userID] = cart
		s.log.Debugf("Repository: Created empty cart for user %s", userID)
	}
	return cart
}

func (s *MemoryStore) SetCart(userID string, cart domain.Cart) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cart = cart.Clone()
	cart.UserID = userID
	s.carts[userID] = cart
}

func (s *MemoryStore) UpdateCart(userID string, fn func(cart *domain.Cart)) domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	cart := s.cartLocked(userID).Clone()
	fn(&cart)
	cart.UserID = userID
	if cart.Items == nil {
		cart.Items = []domain.CartItem{}
	}
	s.carts[userID] = cart.Clone()
	return cart
}

// --- Wishlists ---

func (s *MemoryStore) GetWishlist(userID string) domain.Wishlist {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wishlistLocked(userID).Clone()
}

func (s *MemoryStore) wishlistLocked(userID string) domain.Wishlist {
	wl, ok := s.wishlists[userID]
	if !ok {
		wl = domain.Wishlist{UserID: userID, ProductIDs: []int{}}
		s.wishlists[userID] = wl
		s.log.Debugf("Repository: Created empty wishlist for user %s", userID)
	}
	return wl
}

func (s *MemoryStore) SetWishlist(userID string, wishlist domain.Wishlist) {
	s.mu.Lock()
	defer s.mu.Unlock()
	wishlist = wishlist.Clone()
	wishlist.UserID = userID
	s.wishlists[userID] = wishlist
}

func (s *MemoryStore) UpdateWishlist(userID string, fn func(wishlist *domain.Wishlist)) domain.Wishlist {
	s.mu.Lock()
	defer s.mu.Unlock()
	wl := s.wishlistLocked(userID).Clone()
	fn(&wl)
	wl.UserID = userID
	s.wishlists[userID] = wl.Clone()
	return wl
}

// --- Orders ---

func (s *MemoryStore) CreateOrder(userID string, items []domain.OrderItem) domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.newOrderID()
	for {
		if _, taken := s.orders[id]; !taken {
			break
		}
		s.log.Warnf("Repository: Order ID collision on %s, regenerating", id)
		id = s.newOrderID()
	}

	ts := s.stamp(time.Time{})
	order := domain.Order{
		ID:        id,
		UserID:    userID,
		Items:     append([]domain.OrderItem{}, items...),
		Total:     domain.OrderTotal(items),
		Status:    domain.StatusConfirmed,
		CreatedAt: ts,
		UpdatedAt: ts,
	}
	s.orders[id] = order
	s.orderSeq = append(s.orderSeq, id)
	s.log.Infof("Repository: Order entry created with ID: %s for user: %s", id, userID)
	return order.Clone()
}

func (s *MemoryStore) GetOrder(id string) (domain.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	o, ok := s.orders[id]
	if !ok {
		return domain.Order{}, false
	}
	return o.Clone(), true
}

// SetOrderStatus changes only the status and updatedAt of an order; items and
// total are fixed at creation.
func (s *MemoryStore) SetOrderStatus(id string, status domain.OrderStatus) (domain.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	if !ok {
		s.log.Warnf("Repository: Order with ID %s not found for status update", id)
		return domain.Order{}, false
	}
	o.Status = status
	o.UpdatedAt = s.stamp(o.UpdatedAt)
	s.orders[id] = o
	s.log.Infof("Repository: Order %s status set to '%s'", id, status)
	return o.Clone(), true
}

// ListOrders returns orders newest first. An empty userID lists every order.
func (s *MemoryStore) ListOrders(userID string) []domain.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	orders := []domain.Order{}
	for i := len(s.orderSeq) - 1; i >= 0; i-- {
		o := s.orders[s.orderSeq[i]]
		if userID != "" && o.UserID != userID {
			continue
		}
		orders = append(orders, o.Clone())
	}
	return orders
}

// --- Admins ---

func (s *MemoryStore) FindAdmin(username string) (domain.AdminUser, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.admins[username]
	return a, ok
}

func (s *MemoryStore) Stats() domain.StoreStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.StoreStats{
		Products:  len(s.products),
		Orders:    len(s.orders),
		Carts:     len(s.carts),
		Wishlists: len(s.wishlists),
	}
}
