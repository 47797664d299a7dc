package cart

import (
	"testing"

	"github.com/google/uuid"
)

func line(id uuid.UUID, name string, priceCents, qty int) Line {
	return Line{
		ProductID:     id,
		Name:          name,
		PriceCents:    priceCents,
		StockQuantity: 10,
		Category:      "pottery",
		Quantity:      qty,
	}
}

func TestAddItemMergesByProduct(t *testing.T) {
	t.Parallel()

	vaseID := uuid.New()
	shawlID := uuid.New()

	c := NewCart()
	c.AddItem(line(vaseID, "Jaipur Blue Vase", 120000, 1))
	c.AddItem(line(shawlID, "Pashmina Shawl", 450000, 2))
	c.AddItem(line(vaseID, "Jaipur Blue Vase", 120000, 3))

	if len(c.Items) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(c.Items))
	}
	for _, item := range c.Items {
		if item.ProductID == vaseID && item.Quantity != 4 {
			t.Fatalf("expected merged quantity 4, got %d", item.Quantity)
		}
	}
	if c.ItemCount() != 6 {
		t.Fatalf("expected item count 6, got %d", c.ItemCount())
	}
}

func TestAddItemDefaultsQuantityToOne(t *testing.T) {
	t.Parallel()

	c := NewCart()
	c.AddItem(line(uuid.New(), "Terracotta Diya", 15000, 0))

	if len(c.Items) != 1 || c.Items[0].Quantity != 1 {
		t.Fatalf("expected single line with quantity 1, got %+v", c.Items)
	}
}

func TestRemoveItemIsNoOpWhenAbsent(t *testing.T) {
	t.Parallel()

	vaseID := uuid.New()
	c := NewCart()
	c.AddItem(line(vaseID, "Jaipur Blue Vase", 120000, 2))

	c.RemoveItem(uuid.New())
	if len(c.Items) != 1 {
		t.Fatalf("expected removal of unknown product to be a no-op, got %d lines", len(c.Items))
	}

	c.RemoveItem(vaseID)
	if !c.IsEmpty() {
		t.Fatal("expected cart to be empty after removing the only line")
	}
}

func TestUpdateQuantityNeverDeletes(t *testing.T) {
	t.Parallel()

	vaseID := uuid.New()
	c := NewCart()
	c.AddItem(line(vaseID, "Jaipur Blue Vase", 120000, 2))

	c.UpdateQuantity(vaseID, 5)
	if c.Items[0].Quantity != 5 {
		t.Fatalf("expected quantity 5, got %d", c.Items[0].Quantity)
	}

	c.UpdateQuantity(vaseID, 0)
	if len(c.Items) != 1 {
		t.Fatal("expected line to survive a zero quantity update")
	}

	c.UpdateQuantity(uuid.New(), 3)
	if len(c.Items) != 1 || c.Items[0].Quantity != 0 {
		t.Fatalf("expected unknown product update to be a no-op, got %+v", c.Items)
	}
}

func TestTotalsUseCentsArithmetic(t *testing.T) {
	t.Parallel()

	c := NewCart()
	c.AddItem(line(uuid.New(), "Bandhani Saree", 550000, 2))
	c.AddItem(line(uuid.New(), "Terracotta Diya", 14999, 3))

	if got := c.TotalCents(); got != 550000*2+14999*3 {
		t.Fatalf("unexpected total %d", got)
	}
	if got := c.ItemCount(); got != 5 {
		t.Fatalf("unexpected item count %d", got)
	}

	c.Clear()
	if !c.IsEmpty() || c.TotalCents() != 0 {
		t.Fatal("expected empty cart after clear")
	}
}
