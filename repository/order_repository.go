package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/youssofmousssa/luxestorebackeend/entity"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// POST /orders
func (r *OrderRepository) Create(ctx context.Context, o *entity.Order) error {
	return r.DB.WithContext(ctx).Omit(clause.Associations).Create(o).Error
}

// GET /orders/:id
func (r *OrderRepository) FindByID(ctx context.Context, id string) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// GET /orders/user/:userId
func (r *OrderRepository) ListForUser(ctx context.Context, userID string) ([]entity.Order, error) {
	out := []entity.Order{}
	err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

// GET /orders (admin)
func (r *OrderRepository) ListAll(ctx context.Context) ([]entity.Order, error) {
	out := []entity.Order{}
	err := r.DB.WithContext(ctx).Order("created_at DESC").Find(&out).Error
	return out, err
}
