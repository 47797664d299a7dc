package enums

import "fmt"

// CheckoutState names the steps of the checkout flow.
type CheckoutState string

const (
	CheckoutStateCollectingContactInfo CheckoutState = "collecting_contact_info"
	CheckoutStateConfirmingPayment     CheckoutState = "confirming_payment"
	CheckoutStateCompleted             CheckoutState = "completed"
)

var validCheckoutStates = []CheckoutState{
	CheckoutStateCollectingContactInfo,
	CheckoutStateConfirmingPayment,
	CheckoutStateCompleted,
}

// String implements fmt.Stringer.
func (c CheckoutState) String() string {
	return string(c)
}

// IsValid reports whether the value is a known CheckoutState.
func (c CheckoutState) IsValid() bool {
	for _, candidate := range validCheckoutStates {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseCheckoutState converts raw input into a CheckoutState.
func ParseCheckoutState(value string) (CheckoutState, error) {
	for _, candidate := range validCheckoutStates {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid checkout state %q", value)
}
