package model

import (
	"time"

	"github.com/google/uuid"
)

// CartModel mirrors the 'carts' table. Each user owns exactly one cart.
type CartModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	UserID    uuid.UUID `gorm:"type:uuid;unique;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Items []*CartItemModel `gorm:"foreignKey:CartID"`
}

// TableName explicitly sets the table name for GORM.
func (CartModel) TableName() string {
	return "carts"
}

// CartItemModel mirrors the 'cart_items' table. One row per (cart, item) pair.
type CartItemModel struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	CartID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cart_items_cart_item"`
	ItemID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cart_items_cart_item"`
	Quantity int       `gorm:"not null"`

	Item *ItemModel `gorm:"foreignKey:ItemID"`
}

// TableName explicitly sets the table name for GORM.
func (CartItemModel) TableName() string {
	return "cart_items"
}
