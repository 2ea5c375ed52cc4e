package usecase

import (
	"storefront/internal/domain"
	"storefront/internal/validation"

	"github.com/sirupsen/logrus"
)

type WishlistUseCase interface {
	GetWishlist(userID string) domain.Wishlist
	AddItem(userID string, req validation.WishlistItem) (domain.Wishlist, error)
	RemoveItem(userID string, productID int) domain.Wishlist
}

type wishlistUseCase struct {
	wishlistRepo domain.WishlistRepository
	productRepo  domain.ProductRepository
	log          *logrus.Logger
}

func NewWishlistUseCase(wishlistRepo domain.WishlistRepository, productRepo domain.ProductRepository, logger *logrus.Logger) WishlistUseCase {
	return &wishlistUseCase{
		wishlistRepo: wishlistRepo,
		productRepo:  productRepo,
		log:          logger,
	}
}

func (uc *wishlistUseCase) GetWishlist(userID string) domain.Wishlist {
	return uc.wishlistRepo.GetWishlist(userID)
}

func (uc *wishlistUseCase) AddItem(userID string, req validation.WishlistItem) (domain.Wishlist, error) {
	if err := validation.Struct(req); err != nil {
		return domain.Wishlist{}, err
	}
	if _, ok := uc.productRepo.GetProduct(req.ProductID); !ok {
		return domain.Wishlist{}, domain.NewNotFoundError("product with id %d not found", req.ProductID)
	}
	wl := uc.wishlistRepo.UpdateWishlist(userID, func(w *domain.Wishlist) {
		w.Add(req.ProductID)
	})
	uc.log.Infof("Use Case: Product %d on wishlist of user %s", req.ProductID, userID)
	return wl, nil
}

func (uc *wishlistUseCase) RemoveItem(userID string, productID int) domain.Wishlist {
	wl := uc.wishlistRepo.UpdateWishlist(userID, func(w *domain.Wishlist) {
		w.Remove(productID)
	})
	uc.log.Infof("Use Case: Removed product %d from wishlist of user %s", productID, userID)
	return wl
}
