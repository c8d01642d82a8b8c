package services

import (
	"context"

	"github.com/youssofmousssa/luxestorebackeend/entity"
	"github.com/youssofmousssa/luxestorebackeend/pkg/apperr"
	"github.com/youssofmousssa/luxestorebackeend/repository"
)

type CartService struct {
	CartRepo *repository.CartRepository
}

func NewCartService(cr *repository.CartRepository) *CartService {
	return &CartService{CartRepo: cr}
}

// Save replaces the user's cart. Line items are stored as sent.
func (s *CartService) Save(ctx context.Context, userID string, items *entity.LineItems) error {
	if items == nil {
		return apperr.Validation("Invalid cart items")
	}
	cart := &entity.Cart{UserID: userID, Items: *items}
	if cart.Items == nil {
		cart.Items = entity.LineItems{}
	}
	return s.CartRepo.Upsert(ctx, cart)
}

func (s *CartService) Get(ctx context.Context, userID string) (*entity.Cart, error) {
	return s.CartRepo.Get(ctx, userID)
}
