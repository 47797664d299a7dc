package checkout

import (
	"github.com/google/uuid"

	"github.com/arjunkhanna/craftkart-backend/pkg/enums"
	"github.com/arjunkhanna/craftkart-backend/pkg/money"
)

// ContactRequest is the payload for the contact-collection step.
type ContactRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required"`
	Phone string `json:"phone" validate:"required"`
}

// FlowDTO is the transport shape of the checkout flow.
type FlowDTO struct {
	State   enums.CheckoutState `json:"state"`
	Contact ContactInfo         `json:"contact"`
	OrderID *uuid.UUID          `json:"order_id,omitempty"`
}

// ConfirmResult reports the order produced by a successful confirmation.
type ConfirmResult struct {
	OrderID    uuid.UUID           `json:"order_id"`
	TotalCents int                 `json:"total_cents"`
	Total      string              `json:"total"`
	State      enums.CheckoutState `json:"state"`
}

func toFlowDTO(f *Flow) *FlowDTO {
	return &FlowDTO{
		State:   f.State,
		Contact: f.Contact,
		OrderID: f.OrderID,
	}
}

func toConfirmResult(f *Flow, orderID uuid.UUID, totalCents int) *ConfirmResult {
	return &ConfirmResult{
		OrderID:    orderID,
		TotalCents: totalCents,
		Total:      money.Format(totalCents),
		State:      f.State,
	}
}
