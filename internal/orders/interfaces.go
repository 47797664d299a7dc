package orders

import (
	"context"

	"github.com/arjunkhanna/craftkart-backend/pkg/db/models"
	"github.com/arjunkhanna/craftkart-backend/pkg/enums"
	"github.com/arjunkhanna/craftkart-backend/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository defines persistence operations for the order tables.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	CreateOrder(ctx context.Context, order *models.Order) (*models.Order, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Order, error)
	List(ctx context.Context, params pagination.Params) ([]models.Order, string, error)
	ListByEmail(ctx context.Context, email string, params pagination.Params) ([]models.Order, string, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status enums.OrderStatus) error
	Stats(ctx context.Context) (*OrderStats, error)
}
