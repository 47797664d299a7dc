package products

import (
	"context"
	"testing"
	"time"

	"github.com/arjunkhanna/craftkart-backend/pkg/enums"
	pkgerrors "github.com/arjunkhanna/craftkart-backend/pkg/errors"
	"github.com/arjunkhanna/craftkart-backend/pkg/pagination"
	"github.com/google/uuid"
)

func TestDecrementIfAvailable(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	product := seedProduct(t, db, seedOpts{name: "Jaipur Blue Vase", priceCents: 120000, quantity: 5})

	if err := repo.DecrementIfAvailable(ctx, product.ID, 3); err != nil {
		t.Fatalf("decrement: %v", err)
	}

	reloaded, err := repo.FindByID(ctx, product.ID)
	if err != nil {
		t.Fatalf("reload product: %v", err)
	}
	if reloaded.Quantity != 2 {
		t.Fatalf("expected quantity 2, got %d", reloaded.Quantity)
	}

	err = repo.DecrementIfAvailable(ctx, product.ID, 3)
	if err == nil {
		t.Fatal("expected insufficient stock error")
	}
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeInsufficientStock {
		t.Fatalf("unexpected error: %v", err)
	}

	// failed decrement must not touch the row
	reloaded, err = repo.FindByID(ctx, product.ID)
	if err != nil {
		t.Fatalf("reload product: %v", err)
	}
	if reloaded.Quantity != 2 {
		t.Fatalf("expected quantity unchanged at 2, got %d", reloaded.Quantity)
	}
}

func TestDecrementIfAvailableMissingProduct(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	repo := NewRepository(db)

	err := repo.DecrementIfAvailable(context.Background(), uuid.New(), 1)
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}

	err = repo.DecrementIfAvailable(context.Background(), uuid.New(), 0)
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error for zero qty, got %v", err)
	}
}

func TestListFiltersAndSorts(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	base := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	seedProduct(t, db, seedOpts{name: "Madhubani Painting", priceCents: 350000, quantity: 3, category: "art", createdAt: base})
	seedProduct(t, db, seedOpts{name: "Channapatna Toy Set", priceCents: 80000, quantity: 10, category: "toys", createdAt: base.Add(time.Minute)})
	seedProduct(t, db, seedOpts{name: "Pashmina Shawl", priceCents: 450000, compareAt: intPtr(600000), quantity: 2, category: "textiles", createdAt: base.Add(2 * time.Minute)})
	seedProduct(t, db, seedOpts{name: "Kalamkari Dupatta", priceCents: 150000, compareAt: intPtr(200000), quantity: 6, category: "textiles", createdAt: base.Add(3 * time.Minute)})

	rows, _, err := repo.List(ctx, pagination.Params{}, ListFilters{Category: strPtr("textiles")})
	if err != nil {
		t.Fatalf("list by category: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 textiles, got %d", len(rows))
	}

	rows, _, err = repo.List(ctx, pagination.Params{}, ListFilters{Query: "shawl"})
	if err != nil {
		t.Fatalf("list by search: %v", err)
	}
	if len(rows) != 1 || rows[0].Name != "Pashmina Shawl" {
		t.Fatalf("unexpected search result: %+v", rows)
	}

	rows, _, err = repo.List(ctx, pagination.Params{}, ListFilters{
		PriceMinCents: intPtr(100000),
		PriceMaxCents: intPtr(400000),
	})
	if err != nil {
		t.Fatalf("list by price range: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 products in range, got %d", len(rows))
	}

	rows, _, err = repo.List(ctx, pagination.Params{}, ListFilters{Sort: enums.ProductSortPriceAsc})
	if err != nil {
		t.Fatalf("list price asc: %v", err)
	}
	if rows[0].Name != "Channapatna Toy Set" || rows[len(rows)-1].Name != "Pashmina Shawl" {
		t.Fatalf("unexpected price ordering: %+v", rows)
	}

	rows, _, err = repo.List(ctx, pagination.Params{}, ListFilters{Sort: enums.ProductSortDiscount})
	if err != nil {
		t.Fatalf("list by discount: %v", err)
	}
	if rows[0].CompareAtPriceCents == nil {
		t.Fatalf("expected discounted products first, got %+v", rows[0])
	}
}

func TestListCursorPagination(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	base := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		seedProduct(t, db, seedOpts{
			name:       "Terracotta Diya " + string(rune('A'+i)),
			priceCents: 5000 + i,
			quantity:   4,
			createdAt:  base.Add(time.Duration(i) * time.Minute),
		})
	}

	first, cursor, err := repo.List(ctx, pagination.Params{Limit: 2}, ListFilters{})
	if err != nil {
		t.Fatalf("first page: %v", err)
	}
	if len(first) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(first))
	}
	if cursor == "" {
		t.Fatal("expected next cursor")
	}

	second, cursor2, err := repo.List(ctx, pagination.Params{Limit: 2, Cursor: cursor}, ListFilters{})
	if err != nil {
		t.Fatalf("second page: %v", err)
	}
	if len(second) != 2 {
		t.Fatalf("expected 2 rows on second page, got %d", len(second))
	}
	for _, a := range first {
		for _, b := range second {
			if a.ID == b.ID {
				t.Fatalf("pages overlap on %s", a.ID)
			}
		}
	}

	third, cursor3, err := repo.List(ctx, pagination.Params{Limit: 2, Cursor: cursor2}, ListFilters{})
	if err != nil {
		t.Fatalf("third page: %v", err)
	}
	if len(third) != 1 {
		t.Fatalf("expected final partial page of 1, got %d", len(third))
	}
	if cursor3 != "" {
		t.Fatalf("expected empty cursor at end, got %q", cursor3)
	}
}

func TestStatsCounters(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	repo := NewRepository(db)

	seedProduct(t, db, seedOpts{name: "Brass Lamp", priceCents: 90000, quantity: 0})
	seedProduct(t, db, seedOpts{name: "Cane Basket", priceCents: 30000, quantity: 3})
	seedProduct(t, db, seedOpts{name: "Silk Stole", priceCents: 110000, quantity: 12})

	stats, err := repo.Stats(context.Background(), 5)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.TotalProducts != 3 {
		t.Fatalf("expected 3 products, got %d", stats.TotalProducts)
	}
	if stats.OutOfStock != 1 {
		t.Fatalf("expected 1 out of stock, got %d", stats.OutOfStock)
	}
	if stats.LowStock != 1 {
		t.Fatalf("expected 1 low stock, got %d", stats.LowStock)
	}
}

func TestFeaturedAndCategories(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	seedProduct(t, db, seedOpts{name: "Warli Wall Plate", priceCents: 70000, quantity: 4, category: "art", featured: true})
	seedProduct(t, db, seedOpts{name: "Dhokra Figurine", priceCents: 130000, quantity: 2, category: "art"})
	seedProduct(t, db, seedOpts{name: "Jute Tote", priceCents: 25000, quantity: 9, category: "bags", featured: true})

	featured, err := repo.Featured(ctx, 8)
	if err != nil {
		t.Fatalf("featured: %v", err)
	}
	if len(featured) != 2 {
		t.Fatalf("expected 2 featured, got %d", len(featured))
	}

	categories, err := repo.Categories(ctx)
	if err != nil {
		t.Fatalf("categories: %v", err)
	}
	if len(categories) != 2 || categories[0] != "art" || categories[1] != "bags" {
		t.Fatalf("unexpected categories: %v", categories)
	}
}
