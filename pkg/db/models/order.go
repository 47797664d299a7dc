package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/arjunkhanna/craftkart-backend/pkg/enums"
)

// Order represents a confirmed checkout with its contact snapshot.
type Order struct {
	ID         uuid.UUID         `gorm:"column:id;type:uuid;primaryKey"`
	UserEmail  string            `gorm:"column:user_email;not null"`
	UserName   string            `gorm:"column:user_name;not null"`
	UserPhone  string            `gorm:"column:user_phone;not null"`
	TotalCents int               `gorm:"column:total_cents;not null"`
	Status     enums.OrderStatus `gorm:"column:status;type:text;not null;default:'pending'"`
	Items      []OrderItem       `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt  time.Time         `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time         `gorm:"column:updated_at;autoUpdateTime"`
}
