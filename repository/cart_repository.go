package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/youssofmousssa/luxestorebackeend/entity"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

// Upsert replaces the user's cart in one INSERT ... ON CONFLICT(user_id)
// statement, so concurrent saves never interleave a read with a write.
func (r *CartRepository) Upsert(ctx context.Context, cart *entity.Cart) error {
	if cart.UpdatedAt.IsZero() {
		cart.UpdatedAt = time.Now()
	}
	return r.DB.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"items", "updated_at"}),
		}).
		Create(cart).Error
}

// Get returns the user's cart, or an empty cart when none was saved yet.
func (r *CartRepository) Get(ctx context.Context, userID string) (*entity.Cart, error) {
	var c entity.Cart
	err := r.DB.WithContext(ctx).Where("user_id = ?", userID).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &entity.Cart{UserID: userID, Items: entity.LineItems{}}, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}
