package products

import (
	"testing"
	"time"

	"github.com/arjunkhanna/craftkart-backend/pkg/db/models"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:products_" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&models.Product{}); err != nil {
		t.Fatalf("migrate products: %v", err)
	}
	return db
}

type seedOpts struct {
	name       string
	priceCents int
	compareAt  *int
	quantity   int
	category   string
	featured   bool
	createdAt  time.Time
}

func seedProduct(t *testing.T, db *gorm.DB, opts seedOpts) models.Product {
	t.Helper()
	if opts.category == "" {
		opts.category = "pottery"
	}
	if opts.createdAt.IsZero() {
		opts.createdAt = time.Now().UTC()
	}
	product := models.Product{
		ID:                  uuid.New(),
		Name:                opts.name,
		PriceCents:          opts.priceCents,
		CompareAtPriceCents: opts.compareAt,
		Quantity:            opts.quantity,
		Category:            opts.category,
		IsFeatured:          opts.featured,
		CreatedAt:           opts.createdAt,
	}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("seed product %q: %v", opts.name, err)
	}
	return product
}

func intPtr(v int) *int {
	return &v
}

func strPtr(v string) *string {
	return &v
}
