package orders

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/arjunkhanna/craftkart-backend/pkg/db/models"
	"github.com/arjunkhanna/craftkart-backend/pkg/enums"
	"github.com/arjunkhanna/craftkart-backend/pkg/pagination"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:orders_" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Order{}, &models.OrderItem{}))
	return db
}

func seedOrder(t *testing.T, repo Repository, email string, totalCents int, createdAt time.Time) *models.Order {
	t.Helper()
	order := &models.Order{
		UserEmail:  email,
		UserName:   "Asha Rao",
		UserPhone:  "9812345678",
		TotalCents: totalCents,
		Status:     enums.OrderStatusPending,
		Items: []models.OrderItem{
			{ProductName: "Terracotta Diya", PriceCents: totalCents, Quantity: 1},
		},
		CreatedAt: createdAt,
	}
	created, err := repo.CreateOrder(context.Background(), order)
	require.NoError(t, err)
	return created
}

func TestCreateAndFindOrder(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	productID := uuid.New()
	order := &models.Order{
		UserEmail:  "asha@example.com",
		UserName:   "Asha Rao",
		UserPhone:  "9812345678",
		TotalCents: 6000,
		Status:     enums.OrderStatusPending,
		Items: []models.OrderItem{
			{ProductID: &productID, ProductName: "Blue Pottery Bowl", PriceCents: 1000, Quantity: 2},
			{ProductID: nil, ProductName: "Cane Basket", PriceCents: 2000, Quantity: 2},
		},
	}

	created, err := repo.CreateOrder(ctx, order)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)

	found, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, found.Items, 2)
	for _, item := range found.Items {
		assert.Equal(t, created.ID, item.OrderID)
	}
}

func TestListOrdersPaginationAndEmailScope(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		seedOrder(t, repo, "asha@example.com", 1000+i, base.Add(time.Duration(i)*time.Minute))
	}
	seedOrder(t, repo, "vikram@example.com", 9000, base.Add(time.Hour))

	rows, cursor, err := repo.List(ctx, pagination.Params{Limit: 2})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "vikram@example.com", rows[0].UserEmail)
	require.NotEmpty(t, cursor)

	rest, _, err := repo.List(ctx, pagination.Params{Limit: 2, Cursor: cursor})
	require.NoError(t, err)
	assert.Len(t, rest, 2)

	scoped, _, err := repo.ListByEmail(ctx, "  ASHA@example.com ", pagination.Params{})
	require.NoError(t, err)
	assert.Len(t, scoped, 3)
}

func TestUpdateStatus(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	order := seedOrder(t, repo, "asha@example.com", 2500, time.Now().UTC())

	require.NoError(t, repo.UpdateStatus(ctx, order.ID, enums.OrderStatusPaid))
	found, err := repo.FindByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, enums.OrderStatusPaid, found.Status)

	err = repo.UpdateStatus(ctx, uuid.New(), enums.OrderStatusPaid)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepoStats(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	now := time.Now().UTC()
	seedOrder(t, repo, "a@example.com", 1000, now)
	paid := seedOrder(t, repo, "b@example.com", 2000, now.Add(time.Second))
	done := seedOrder(t, repo, "c@example.com", 3000, now.Add(2*time.Second))

	require.NoError(t, repo.UpdateStatus(ctx, paid.ID, enums.OrderStatusPaid))
	require.NoError(t, repo.UpdateStatus(ctx, done.ID, enums.OrderStatusCompleted))

	stats, err := repo.Stats(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, stats.Total)
	assert.EqualValues(t, 1, stats.Pending)
	assert.EqualValues(t, 1, stats.Completed)
}
