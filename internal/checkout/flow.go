package checkout

import (
	"strings"

	"github.com/google/uuid"

	"github.com/arjunkhanna/craftkart-backend/pkg/enums"
	pkgerrors "github.com/arjunkhanna/craftkart-backend/pkg/errors"
)

// ContactInfo is the self-entered contact draft collected before payment.
type ContactInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Flow is the checkout state machine for a single cart session.
type Flow struct {
	State   enums.CheckoutState `json:"state"`
	Contact ContactInfo         `json:"contact"`
	OrderID *uuid.UUID          `json:"order_id,omitempty"`
}

// NewFlow starts a checkout at the contact-collection step.
func NewFlow() *Flow {
	return &Flow{State: enums.CheckoutStateCollectingContactInfo}
}

// SubmitContact validates the draft and advances to payment confirmation.
// On validation failure the state and any previous draft are unchanged.
func (f *Flow) SubmitContact(draft ContactInfo) error {
	if f.State != enums.CheckoutStateCollectingContactInfo {
		return pkgerrors.New(pkgerrors.CodeStateConflict, "contact info can only be submitted while collecting contact info").
			WithDetails(map[string]any{"state": f.State.String()})
	}

	if details := validateContact(draft); len(details) > 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "invalid contact info").
			WithDetails(details)
	}

	f.Contact = draft
	f.State = enums.CheckoutStateConfirmingPayment
	return nil
}

// Back returns from payment confirmation to contact collection. The draft
// is retained so the form can be prefilled.
func (f *Flow) Back() error {
	if f.State != enums.CheckoutStateConfirmingPayment {
		return pkgerrors.New(pkgerrors.CodeStateConflict, "can only go back from payment confirmation").
			WithDetails(map[string]any{"state": f.State.String()})
	}
	f.State = enums.CheckoutStateCollectingContactInfo
	return nil
}

// BeginConfirm checks that the flow is ready for payment confirmation.
func (f *Flow) BeginConfirm() error {
	if f.State != enums.CheckoutStateConfirmingPayment {
		return pkgerrors.New(pkgerrors.CodeStateConflict, "payment can only be confirmed from payment confirmation").
			WithDetails(map[string]any{"state": f.State.String()})
	}
	return nil
}

// Complete marks the flow terminal and records the submitted order.
func (f *Flow) Complete(orderID uuid.UUID) {
	f.State = enums.CheckoutStateCompleted
	f.OrderID = &orderID
}

func validateContact(draft ContactInfo) map[string]any {
	details := map[string]any{}

	if strings.TrimSpace(draft.Name) == "" {
		details["name"] = "name is required"
	}
	if !hasEmailShape(draft.Email) {
		details["email"] = "email must look like local@domain"
	}
	if len(strings.TrimSpace(draft.Phone)) < 10 {
		details["phone"] = "phone must be at least 10 characters"
	}

	return details
}

func hasEmailShape(email string) bool {
	trimmed := strings.TrimSpace(email)
	at := strings.Index(trimmed, "@")
	return at > 0 && at < len(trimmed)-1
}
