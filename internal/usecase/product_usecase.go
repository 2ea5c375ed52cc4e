package usecase

import (
	"strings"

	"storefront/internal/domain"
	"storefront/internal/validation"

	"github.com/sirupsen/logrus"
)

type ProductUseCase interface {
	CreateProduct(req validation.ProductCreate) (domain.Product, error)
	GetProduct(id int) (domain.Product, error)
	UpdateProduct(id int, req validation.ProductPatch) (domain.Product, error)
	DeleteProduct(id int) error
	// ListProducts returns the catalog newest first; a non-empty category
	// keeps only products in that category (case-insensitive).
	ListProducts(category string) ([]domain.Product, error)
}

type productUseCase struct {
	productRepo domain.ProductRepository
	log         *logrus.Logger
}

func NewProductUseCase(repo domain.ProductRepository, logger *logrus.Logger) ProductUseCase {
	return &productUseCase{
		productRepo: repo,
		log:         logger,
	}
}

func (uc *productUseCase) CreateProduct(req validation.ProductCreate) (domain.Product, error) {
	if err := validation.Struct(req); err != nil {
		uc.log.Warnf("Use Case: Rejected product create '%s': %v", req.Name, err)
		return domain.Product{}, err
	}
	uc.log.Infof("Use Case: Attempting to create product '%s'", req.Name)
	created := uc.productRepo.CreateProduct(req.ToInput())
	uc.log.Infof("Use Case: Product '%s' created successfully with ID %d", created.Name, created.ID)
	return created, nil
}

func (uc *productUseCase) GetProduct(id int) (domain.Product, error) {
	if id <= 0 {
		uc.log.Warnf("Use Case: Attempted to get product with invalid ID: %d", id)
		return domain.Product{}, invalidID("product")
	}
	p, ok := uc.productRepo.GetProduct(id)
	if !ok {
		return domain.Product{}, domain.NewNotFoundError("product with id %d not found", id)
	}
	return p, nil
}

func (uc *productUseCase) UpdateProduct(id int, req validation.ProductPatch) (domain.Product, error) {
	if id <= 0 {
		uc.log.Warnf("Use Case: Attempted update with invalid product ID: %d", id)
		return domain.Product{}, invalidID("product")
	}
	patch := req.ToPatch()
	if patch.IsEmpty() {
		uc.log.Warnf("Use Case: Attempted update for product ID %d with no fields", id)
		return domain.Product{}, domain.NewValidationError("no fields provided for update")
	}
	if err := validation.Struct(req); err != nil {
		uc.log.Warnf("Use Case: Rejected update for product ID %d: %v", id, err)
		return domain.Product{}, err
	}

	updated, ok := uc.productRepo.UpdateProduct(id, patch)
	if !ok {
		uc.log.Warnf("Use Case: Product ID %d not found for update", id)
		return domain.Product{}, domain.NewNotFoundError("product with id %d not found", id)
	}
	uc.log.Infof("Use Case: Product updated successfully for ID %d", updated.ID)
	return updated, nil
}

func (uc *productUseCase) DeleteProduct(id int) error {
	if id <= 0 {
		uc.log.Warnf("Use Case: Attempted delete with invalid product ID: %d", id)
		return invalidID("product")
	}
	if !uc.productRepo.DeleteProduct(id) {
		return domain.NewNotFoundError("product with id %d not found", id)
	}
	uc.log.Infof("Use Case: Product deleted successfully for ID %d", id)
	return nil
}

func (uc *productUseCase) ListProducts(category string) ([]domain.Product, error) {
	products := uc.productRepo.ListProducts()
	category = strings.TrimSpace(category)
	if category == "" {
		uc.log.Debugf("Use Case: Retrieved %d products", len(products))
		return products, nil
	}
	filtered := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if strings.EqualFold(p.Category, category) {
			filtered = append(filtered, p)
		}
	}
	uc.log.Debugf("Use Case: Retrieved %d products for category '%s'", len(filtered), category)
	return filtered, nil
}

func invalidID(entity string) error {
	return domain.NewValidationError("invalid "+entity+" ID", domain.FieldError{
		Field:   "id",
		Rule:    "gte",
		Message: "must be a positive integer",
	})
}
