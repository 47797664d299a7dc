package enums

import "fmt"

// ProductSort names the catalog listing sort orders.
type ProductSort string

const (
	ProductSortDefault   ProductSort = "default"
	ProductSortPriceAsc  ProductSort = "price_asc"
	ProductSortPriceDesc ProductSort = "price_desc"
	ProductSortDiscount  ProductSort = "discount"
)

var validProductSorts = []ProductSort{
	ProductSortDefault,
	ProductSortPriceAsc,
	ProductSortPriceDesc,
	ProductSortDiscount,
}

// IsValid reports whether the value is a known ProductSort.
func (p ProductSort) IsValid() bool {
	for _, candidate := range validProductSorts {
		if candidate == p {
			return true
		}
	}
	return false
}

// ParseProductSort converts raw input into a ProductSort, defaulting empty
// input to ProductSortDefault.
func ParseProductSort(value string) (ProductSort, error) {
	if value == "" {
		return ProductSortDefault, nil
	}
	for _, candidate := range validProductSorts {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid product sort %q", value)
}
