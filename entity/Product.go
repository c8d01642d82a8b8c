package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Product struct {
	ID          string          `gorm:"primaryKey;type:text" json:"id"`
	Name        string          `gorm:"not null" json:"name"`
	Description string          `gorm:"not null" json:"description"`
	Price       decimal.Decimal `gorm:"type:numeric;not null" json:"price"`
	Sizes       StringList      `json:"sizes"`
	Colors      StringList      `json:"colors"`
	ImageURL    string          `gorm:"column:image_url;not null" json:"imageURL"`
	StockQty    int             `gorm:"not null;default:0" json:"stockQty"`
	Category    string          `gorm:"not null" json:"category"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
