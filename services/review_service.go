package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/youssofmousssa/luxestorebackeend/entity"
	"github.com/youssofmousssa/luxestorebackeend/pkg/apperr"
	"github.com/youssofmousssa/luxestorebackeend/repository"
)

type ReviewService struct {
	repo *repository.ReviewRepository
}

func NewReviewService(repo *repository.ReviewRepository) *ReviewService {
	return &ReviewService{repo: repo}
}

type ReviewInput struct {
	ProductID string           `json:"productId" binding:"required"`
	Rating    *decimal.Decimal `json:"rating" binding:"required"`
	Comment   string           `json:"comment"`
}

// Create validates the rating before touching the store. An unknown
// productId is rejected by the foreign key and surfaces as a storage error.
func (s *ReviewService) Create(ctx context.Context, userID string, in ReviewInput) (*entity.Review, error) {
	if in.ProductID == "" || in.Rating == nil {
		return nil, apperr.Validation("Missing required fields")
	}
	rating, ok := wholeNumber(*in.Rating)
	if !ok || rating < entity.MinRating || rating > entity.MaxRating {
		return nil, apperr.Validation("Rating must be between 1 and 5")
	}

	r := &entity.Review{
		ProductID: in.ProductID,
		UserID:    userID,
		Rating:    rating,
		Comment:   in.Comment,
	}
	if err := s.repo.Create(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *ReviewService) ListByProduct(ctx context.Context, productID string) ([]entity.Review, error) {
	return s.repo.ListByProduct(ctx, productID)
}
