package services

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/youssofmousssa/luxestorebackeend/entity"
	"github.com/youssofmousssa/luxestorebackeend/pkg/apperr"
	"github.com/youssofmousssa/luxestorebackeend/repository"
)

const msgProductNotFound = "Product not found"

type ProductService struct {
	Repo *repository.ProductRepository
}

func NewProductService(repo *repository.ProductRepository) *ProductService {
	return &ProductService{Repo: repo}
}

// ProductInput is the body of create and update. A nil field is "not sent";
// JSON null counts as not sent too.
type ProductInput struct {
	Name        *string            `json:"name"`
	Description *string            `json:"description"`
	Price       *decimal.Decimal   `json:"price"`
	Sizes       *entity.StringList `json:"sizes"`
	Colors      *entity.StringList `json:"colors"`
	ImageURL    *string            `json:"imageURL"`
	StockQty    *decimal.Decimal   `json:"stockQty"`
	Category    *string            `json:"category"`
}

func (in ProductInput) validate() error {
	if in.Price != nil && in.Price.IsNegative() {
		return apperr.Validation("Price must be non-negative")
	}
	if in.StockQty != nil {
		if n, ok := wholeNumber(*in.StockQty); !ok || n < 0 {
			return apperr.Validation("Stock quantity must be a non-negative integer")
		}
	}
	return nil
}

func (s *ProductService) List(ctx context.Context) ([]entity.Product, error) {
	return s.Repo.List(ctx)
}

func (s *ProductService) Get(ctx context.Context, id string) (*entity.Product, error) {
	p, err := s.Repo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound(msgProductNotFound)
	}
	return p, err
}

// Create requires name and price; price 0 is allowed.
func (s *ProductService) Create(ctx context.Context, in ProductInput) (*entity.Product, error) {
	if in.Name == nil || *in.Name == "" || in.Price == nil {
		return nil, apperr.Validation("Name and price required")
	}
	if err := in.validate(); err != nil {
		return nil, err
	}

	p := &entity.Product{
		Name:   *in.Name,
		Price:  *in.Price,
		Sizes:  entity.StringList{},
		Colors: entity.StringList{},
	}
	in.applyTo(p)

	if err := s.Repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return s.Get(ctx, p.ID)
}

// Update merges the sent fields over the stored product. An empty sizes or
// colors list is a value, not an absence.
func (s *ProductService) Update(ctx context.Context, id string, in ProductInput) (*entity.Product, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Price != nil {
		p.Price = *in.Price
	}
	in.applyTo(p)

	if err := s.Repo.Update(ctx, p); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound(msgProductNotFound)
		}
		return nil, err
	}
	return s.Get(ctx, id)
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	err := s.Repo.Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound("Product not found or delete failed")
	}
	return err
}

func (in ProductInput) applyTo(p *entity.Product) {
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Sizes != nil {
		p.Sizes = *in.Sizes
	}
	if in.Colors != nil {
		p.Colors = *in.Colors
	}
	if in.ImageURL != nil {
		p.ImageURL = *in.ImageURL
	}
	if in.StockQty != nil {
		p.StockQty = int(in.StockQty.IntPart())
	}
	if in.Category != nil {
		p.Category = *in.Category
	}
}
