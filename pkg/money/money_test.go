package money

import "testing"

func TestFormat(t *testing.T) {
	cases := map[int]string{
		0:     "0.00",
		5:     "0.05",
		1000:  "10.00",
		12345: "123.45",
	}
	for cents, want := range cases {
		if got := Format(cents); got != want {
			t.Fatalf("Format(%d) = %q, want %q", cents, got, want)
		}
	}
}

func TestDiscountPercent(t *testing.T) {
	compare := func(v int) *int { return &v }

	if got := DiscountPercent(1000, nil); got != 0 {
		t.Fatalf("expected 0 without compare-at, got %d", got)
	}
	if got := DiscountPercent(1000, compare(1000)); got != 0 {
		t.Fatalf("expected 0 for equal prices, got %d", got)
	}
	if got := DiscountPercent(1500, compare(1000)); got != 0 {
		t.Fatalf("expected 0 when price above compare-at, got %d", got)
	}
	if got := DiscountPercent(750, compare(1000)); got != 25 {
		t.Fatalf("expected 25, got %d", got)
	}
	// 333/999 ~ 66.67% off, rounds to 67.
	if got := DiscountPercent(333, compare(999)); got != 67 {
		t.Fatalf("expected 67, got %d", got)
	}
}
