package services

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"techstore/internal/domain"
	"techstore/internal/repos"
)

var ErrInvalidProduct = errors.New("invalid product data")

type ProductService struct {
	Products *repos.ProductRepo
}

func NewProductService(products *repos.ProductRepo) *ProductService {
	return &ProductService{Products: products}
}

// List returns purchasable products for shoppers. Page is 1-based; size is
// clamped to 1..50.
func (s *ProductService) List(page, size int) ([]domain.Product, error) {
	if page < 1 {
		page = 1
	}
	if size < 1 || size > 50 {
		size = 10
	}
	offset := (page - 1) * size
	return s.Products.ListVisible(size, offset)
}

// Get hides soft-deleted and inactive products from shoppers.
func (s *ProductService) Get(id string) (domain.Product, error) {
	p, err := s.Products.Get(id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Product{}, fmt.Errorf("product %s: %w", id, domain.ErrProductNotFound)
	}
	if err != nil {
		return domain.Product{}, err
	}
	if p.IsDeleted || !p.IsActive {
		return domain.Product{}, fmt.Errorf("product %s: %w", id, domain.ErrProductNotFound)
	}
	return p, nil
}

type ProductInput struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	IsActive    bool            `json:"is_active"`
	IsDeleted   bool            `json:"is_deleted"`
	ImageURL    string          `json:"image_url"`
}

func (in ProductInput) check() error {
	if in.Name == "" {
		return fmt.Errorf("name required: %w", ErrInvalidProduct)
	}
	if in.Price.IsNegative() {
		return fmt.Errorf("negative price: %w", ErrInvalidProduct)
	}
	if in.Stock < 0 {
		return fmt.Errorf("negative stock: %w", ErrInvalidProduct)
	}
	return nil
}

// Create adds a new product (admin). New products start active.
func (s *ProductService) Create(in ProductInput) (domain.Product, error) {
	if err := in.check(); err != nil {
		return domain.Product{}, err
	}
	p := domain.Product{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Stock:       in.Stock,
		IsActive:    true,
		ImageURL:    in.ImageURL,
	}
	if err := s.Products.Insert(p); err != nil {
		return domain.Product{}, err
	}
	return s.Products.Get(p.ID)
}

// Update overwrites a product's fields (admin).
func (s *ProductService) Update(id string, in ProductInput) (domain.Product, error) {
	if err := in.check(); err != nil {
		return domain.Product{}, err
	}
	p := domain.Product{
		ID:          id,
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Stock:       in.Stock,
		IsActive:    in.IsActive,
		IsDeleted:   in.IsDeleted,
		ImageURL:    in.ImageURL,
	}
	ok, err := s.Products.Update(p)
	if err != nil {
		return domain.Product{}, err
	}
	if !ok {
		return domain.Product{}, fmt.Errorf("product %s: %w", id, domain.ErrProductNotFound)
	}
	return s.Products.Get(id)
}

// Delete soft-deletes: the row is retained so historical order items keep a
// resolvable product reference.
func (s *ProductService) Delete(id string) error {
	ok, err := s.Products.SoftDelete(id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("product %s: %w", id, domain.ErrProductNotFound)
	}
	return nil
}
