package entity

import (
	"time"
)

// Cart holds one row per user; saving replaces Items wholesale.
type Cart struct {
	UserID    string    `gorm:"primaryKey;type:text" json:"userId"`
	User      *User     `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Items     LineItems `gorm:"not null" json:"items"`
	UpdatedAt time.Time `json:"updatedAt"`
}
