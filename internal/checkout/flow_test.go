package checkout

import (
	"testing"

	"github.com/google/uuid"

	"github.com/arjunkhanna/craftkart-backend/pkg/enums"
	pkgerrors "github.com/arjunkhanna/craftkart-backend/pkg/errors"
)

func validContact() ContactInfo {
	return ContactInfo{
		Name:  "Meera Sharma",
		Email: "meera@example.com",
		Phone: "9876543210",
	}
}

func TestFlowHappyPath(t *testing.T) {
	t.Parallel()

	flow := NewFlow()
	if flow.State != enums.CheckoutStateCollectingContactInfo {
		t.Fatalf("expected collecting state, got %s", flow.State)
	}

	if err := flow.SubmitContact(validContact()); err != nil {
		t.Fatalf("submit contact: %v", err)
	}
	if flow.State != enums.CheckoutStateConfirmingPayment {
		t.Fatalf("expected confirming state, got %s", flow.State)
	}

	if err := flow.BeginConfirm(); err != nil {
		t.Fatalf("begin confirm: %v", err)
	}

	orderID := uuid.New()
	flow.Complete(orderID)
	if flow.State != enums.CheckoutStateCompleted {
		t.Fatalf("expected completed state, got %s", flow.State)
	}
	if flow.OrderID == nil || *flow.OrderID != orderID {
		t.Fatalf("expected order id %s, got %v", orderID, flow.OrderID)
	}
}

func TestSubmitContactValidation(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		draft  ContactInfo
		fields []string
	}{
		{"blank name", ContactInfo{Name: " ", Email: "a@b.com", Phone: "9876543210"}, []string{"name"}},
		{"missing at sign", ContactInfo{Name: "A", Email: "not-an-email", Phone: "9876543210"}, []string{"email"}},
		{"at sign first", ContactInfo{Name: "A", Email: "@domain", Phone: "9876543210"}, []string{"email"}},
		{"at sign last", ContactInfo{Name: "A", Email: "local@", Phone: "9876543210"}, []string{"email"}},
		{"short phone", ContactInfo{Name: "A", Email: "a@b.com", Phone: "12345"}, []string{"phone"}},
		{"everything wrong", ContactInfo{}, []string{"name", "email", "phone"}},
	}

	for _, tc := range cases {
		flow := NewFlow()
		err := flow.SubmitContact(tc.draft)
		typed := pkgerrors.As(err)
		if typed == nil || typed.Code() != pkgerrors.CodeValidation {
			t.Fatalf("%s: expected validation error, got %v", tc.name, err)
		}
		details, ok := typed.Details().(map[string]any)
		if !ok {
			t.Fatalf("%s: expected field details, got %T", tc.name, typed.Details())
		}
		for _, field := range tc.fields {
			if _, present := details[field]; !present {
				t.Fatalf("%s: expected detail for %q, got %v", tc.name, field, details)
			}
		}
		if flow.State != enums.CheckoutStateCollectingContactInfo {
			t.Fatalf("%s: expected state to be unchanged, got %s", tc.name, flow.State)
		}
	}
}

func TestBackRetainsDraft(t *testing.T) {
	t.Parallel()

	flow := NewFlow()
	if err := flow.SubmitContact(validContact()); err != nil {
		t.Fatalf("submit contact: %v", err)
	}

	if err := flow.Back(); err != nil {
		t.Fatalf("back: %v", err)
	}
	if flow.State != enums.CheckoutStateCollectingContactInfo {
		t.Fatalf("expected collecting state, got %s", flow.State)
	}
	if flow.Contact != validContact() {
		t.Fatalf("expected draft to be retained, got %+v", flow.Contact)
	}
}

func TestIllegalTransitionsAreRejected(t *testing.T) {
	t.Parallel()

	flow := NewFlow()

	if err := flow.Back(); codeOf(err) != pkgerrors.CodeStateConflict {
		t.Fatalf("expected state conflict for back while collecting, got %v", err)
	}
	if err := flow.BeginConfirm(); codeOf(err) != pkgerrors.CodeStateConflict {
		t.Fatalf("expected state conflict for confirm while collecting, got %v", err)
	}

	if err := flow.SubmitContact(validContact()); err != nil {
		t.Fatalf("submit contact: %v", err)
	}
	if err := flow.SubmitContact(validContact()); codeOf(err) != pkgerrors.CodeStateConflict {
		t.Fatal("expected state conflict for double contact submission")
	}

	flow.Complete(uuid.New())
	if err := flow.Back(); codeOf(err) != pkgerrors.CodeStateConflict {
		t.Fatal("expected state conflict for back after completion")
	}
	if err := flow.BeginConfirm(); codeOf(err) != pkgerrors.CodeStateConflict {
		t.Fatal("expected state conflict for confirm after completion")
	}
}

func codeOf(err error) pkgerrors.Code {
	typed := pkgerrors.As(err)
	if typed == nil {
		return ""
	}
	return typed.Code()
}
