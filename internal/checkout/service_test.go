package checkout

import (
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	redislib "github.com/redis/go-redis/v9"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/arjunkhanna/craftkart-backend/internal/cart"
	"github.com/arjunkhanna/craftkart-backend/internal/orders"
	"github.com/arjunkhanna/craftkart-backend/internal/products"
	"github.com/arjunkhanna/craftkart-backend/pkg/config"
	"github.com/arjunkhanna/craftkart-backend/pkg/db/models"
	"github.com/arjunkhanna/craftkart-backend/pkg/enums"
	pkgerrors "github.com/arjunkhanna/craftkart-backend/pkg/errors"
	"github.com/arjunkhanna/craftkart-backend/pkg/logger"
)

type fakeRedis struct {
	mu   sync.Mutex
	data map[string]string
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: map[string]string{}}
}

func (f *fakeRedis) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	switch v := value.(type) {
	case string:
		f.data[key] = v
	case []byte:
		f.data[key] = string(v)
	}
	return nil
}

func (f *fakeRedis) Get(ctx context.Context, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	value, ok := f.data[key]
	if !ok {
		return "", redislib.Nil
	}
	return value, nil
}

func (f *fakeRedis) Del(ctx context.Context, keys ...string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, key := range keys {
		delete(f.data, key)
	}
	return nil
}

func (f *fakeRedis) CartKey(sessionID string) string {
	return "ck:cart:" + sessionID
}

func (f *fakeRedis) CheckoutKey(sessionID string) string {
	return "ck:checkout:" + sessionID
}

type gormTxRunner struct {
	db *gorm.DB
}

func (g gormTxRunner) WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return g.db.WithContext(ctx).Transaction(fn)
}

type failingOrderCreator struct{}

func (failingOrderCreator) Create(ctx context.Context, input orders.NewOrderInput) (*orders.OrderDTO, error) {
	return nil, pkgerrors.New(pkgerrors.CodeDependency, "order store unavailable")
}

type harness struct {
	svc       Service
	cartSvc   cart.Service
	db        *gorm.DB
	products  *products.Repository
	cartStore *cart.Store
	flowStore *Store
}

func testCatalogConfig() config.CatalogConfig {
	return config.CatalogConfig{LowStockThreshold: 5, FeaturedLimit: 8}
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	dsn := "file:checkout_" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.Product{}, &models.Order{}, &models.OrderItem{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	redis := newFakeRedis()
	cartStore, err := cart.NewStore(redis, time.Hour)
	if err != nil {
		t.Fatalf("build cart store: %v", err)
	}
	flowStore, err := NewStore(redis, time.Hour)
	if err != nil {
		t.Fatalf("build flow store: %v", err)
	}

	productRepo := products.NewRepository(db)
	orderSvc, err := orders.NewService(orders.NewRepository(db), gormTxRunner{db: db})
	if err != nil {
		t.Fatalf("build order service: %v", err)
	}

	logg := logger.New(logger.Options{ServiceName: "checkout-test", Output: io.Discard})

	svc, err := NewService(ServiceParams{
		FlowStore: flowStore,
		CartStore: cartStore,
		Orders:    orderSvc,
		Stock:     productRepo,
		Logger:    logg,
	})
	if err != nil {
		t.Fatalf("build checkout service: %v", err)
	}

	catalogSvc, err := products.NewService(productRepo, testCatalogConfig())
	if err != nil {
		t.Fatalf("build catalog service: %v", err)
	}
	cartSvc, err := cart.NewService(cartStore, catalogSvc)
	if err != nil {
		t.Fatalf("build cart service: %v", err)
	}

	return &harness{
		svc:       svc,
		cartSvc:   cartSvc,
		db:        db,
		products:  productRepo,
		cartStore: cartStore,
		flowStore: flowStore,
	}
}

func (h *harness) seedProduct(t *testing.T, name string, priceCents, quantity int) uuid.UUID {
	t.Helper()

	product := &models.Product{
		ID:         uuid.New(),
		Name:       name,
		PriceCents: priceCents,
		Quantity:   quantity,
		Category:   "handicrafts",
	}
	if err := h.db.Create(product).Error; err != nil {
		t.Fatalf("seed product: %v", err)
	}
	return product.ID
}

func (h *harness) fillCart(t *testing.T, sessionID string, productID uuid.UUID, qty int) {
	t.Helper()

	if _, err := h.cartSvc.AddItem(context.Background(), sessionID, productID, qty); err != nil {
		t.Fatalf("fill cart: %v", err)
	}
}

func (h *harness) quantityOf(t *testing.T, productID uuid.UUID) int {
	t.Helper()

	var product models.Product
	if err := h.db.First(&product, "id = ?", productID).Error; err != nil {
		t.Fatalf("load product: %v", err)
	}
	return product.Quantity
}

func TestConfirmPaymentSubmitsOrder(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	ctx := context.Background()

	vaseID := h.seedProduct(t, "Jaipur Blue Vase", 1000, 5)
	diyaID := h.seedProduct(t, "Terracotta Diya", 2000, 10)
	h.fillCart(t, "sess-1", vaseID, 2)
	h.fillCart(t, "sess-1", diyaID, 1)

	if _, err := h.svc.Start(ctx, "sess-1"); err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := h.svc.SubmitContact(ctx, "sess-1", ContactRequest{
		Name:  "Meera Sharma",
		Email: "meera@example.com",
		Phone: "9876543210",
	}); err != nil {
		t.Fatalf("submit contact: %v", err)
	}

	result, err := h.svc.ConfirmPayment(ctx, "sess-1")
	if err != nil {
		t.Fatalf("confirm payment: %v", err)
	}
	if result.TotalCents != 4000 || result.Total != "40.00" {
		t.Fatalf("unexpected total %d (%s)", result.TotalCents, result.Total)
	}
	if result.State != enums.CheckoutStateCompleted {
		t.Fatalf("expected completed state, got %s", result.State)
	}

	var order models.Order
	if err := h.db.Preload("Items").First(&order, "id = ?", result.OrderID).Error; err != nil {
		t.Fatalf("load order: %v", err)
	}
	if order.Status != enums.OrderStatusPending {
		t.Fatalf("expected pending order, got %s", order.Status)
	}
	if len(order.Items) != 2 || order.TotalCents != 4000 {
		t.Fatalf("unexpected order %+v", order)
	}
	if order.UserEmail != "meera@example.com" {
		t.Fatalf("unexpected order email %q", order.UserEmail)
	}

	if got := h.quantityOf(t, vaseID); got != 3 {
		t.Fatalf("expected vase stock 3, got %d", got)
	}
	if got := h.quantityOf(t, diyaID); got != 9 {
		t.Fatalf("expected diya stock 9, got %d", got)
	}

	// Cart cleared and flow terminal.
	cartDTO, err := h.cartSvc.Get(ctx, "sess-1")
	if err != nil {
		t.Fatalf("get cart: %v", err)
	}
	if len(cartDTO.Items) != 0 {
		t.Fatalf("expected cart to be cleared, got %+v", cartDTO.Items)
	}
	flow, err := h.svc.Get(ctx, "sess-1")
	if err != nil {
		t.Fatalf("get flow: %v", err)
	}
	if flow.State != enums.CheckoutStateCompleted || flow.OrderID == nil {
		t.Fatalf("unexpected flow %+v", flow)
	}

	if _, err := h.svc.ConfirmPayment(ctx, "sess-1"); codeOf(err) != pkgerrors.CodeStateConflict {
		t.Fatalf("expected state conflict confirming twice, got %v", err)
	}
}

func TestStartRequiresNonEmptyCart(t *testing.T) {
	t.Parallel()

	h := newHarness(t)

	_, err := h.svc.Start(context.Background(), "sess-empty")
	if codeOf(err) != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error for empty cart, got %v", err)
	}

	_, err = h.svc.Get(context.Background(), "sess-empty")
	if codeOf(err) != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found without a started flow, got %v", err)
	}
}

func TestConfirmPaymentInsufficientStockLeavesCartIntact(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	ctx := context.Background()

	shawlID := h.seedProduct(t, "Pashmina Shawl", 45000, 1)
	h.fillCart(t, "sess-2", shawlID, 3)

	if _, err := h.svc.Start(ctx, "sess-2"); err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := h.svc.SubmitContact(ctx, "sess-2", ContactRequest{
		Name:  "Vikram Rao",
		Email: "vikram@example.com",
		Phone: "9123456780",
	}); err != nil {
		t.Fatalf("submit contact: %v", err)
	}

	_, err := h.svc.ConfirmPayment(ctx, "sess-2")
	if codeOf(err) != pkgerrors.CodeInsufficientStock {
		t.Fatalf("expected insufficient stock, got %v", err)
	}

	cartDTO, err := h.cartSvc.Get(ctx, "sess-2")
	if err != nil {
		t.Fatalf("get cart: %v", err)
	}
	if len(cartDTO.Items) != 1 || cartDTO.Items[0].Quantity != 3 {
		t.Fatalf("expected cart to be intact, got %+v", cartDTO.Items)
	}

	flow, err := h.svc.Get(ctx, "sess-2")
	if err != nil {
		t.Fatalf("get flow: %v", err)
	}
	if flow.State != enums.CheckoutStateConfirmingPayment {
		t.Fatalf("expected flow to stay in confirming_payment, got %s", flow.State)
	}
	if got := h.quantityOf(t, shawlID); got != 1 {
		t.Fatalf("expected stock untouched at 1, got %d", got)
	}
}

func TestConfirmPaymentOrderStoreFailureLeavesCartIntact(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	ctx := context.Background()

	vaseID := h.seedProduct(t, "Jaipur Blue Vase", 1000, 5)
	h.fillCart(t, "sess-3", vaseID, 2)

	if _, err := h.svc.Start(ctx, "sess-3"); err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := h.svc.SubmitContact(ctx, "sess-3", ContactRequest{
		Name:  "Asha Patel",
		Email: "asha@example.com",
		Phone: "9988776655",
	}); err != nil {
		t.Fatalf("submit contact: %v", err)
	}

	broken, err := NewService(ServiceParams{
		FlowStore: h.flowStore,
		CartStore: h.cartStore,
		Orders:    failingOrderCreator{},
		Stock:     h.products,
		Logger:    logger.New(logger.Options{ServiceName: "checkout-test", Output: io.Discard}),
	})
	if err != nil {
		t.Fatalf("build broken service: %v", err)
	}

	_, err = broken.ConfirmPayment(ctx, "sess-3")
	if codeOf(err) != pkgerrors.CodeDependency {
		t.Fatalf("expected dependency error, got %v", err)
	}

	cartDTO, err := h.cartSvc.Get(ctx, "sess-3")
	if err != nil {
		t.Fatalf("get cart: %v", err)
	}
	if len(cartDTO.Items) != 1 {
		t.Fatalf("expected cart to be intact, got %+v", cartDTO.Items)
	}
	if got := h.quantityOf(t, vaseID); got != 5 {
		t.Fatalf("expected stock untouched at 5, got %d", got)
	}
}
