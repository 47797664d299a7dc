package checkout

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/arjunkhanna/craftkart-backend/internal/cart"
	"github.com/arjunkhanna/craftkart-backend/internal/orders"
	pkgerrors "github.com/arjunkhanna/craftkart-backend/pkg/errors"
	"github.com/arjunkhanna/craftkart-backend/pkg/logger"
	"github.com/arjunkhanna/craftkart-backend/pkg/metrics"
)

const (
	failReasonOrderStore        = "order_store"
	failReasonInsufficientStock = "insufficient_stock"
)

// Service drives the checkout flow for a cart session.
type Service interface {
	Start(ctx context.Context, sessionID string) (*FlowDTO, error)
	Get(ctx context.Context, sessionID string) (*FlowDTO, error)
	SubmitContact(ctx context.Context, sessionID string, req ContactRequest) (*FlowDTO, error)
	Back(ctx context.Context, sessionID string) (*FlowDTO, error)
	ConfirmPayment(ctx context.Context, sessionID string) (*ConfirmResult, error)
}

type cartStore interface {
	Load(ctx context.Context, sessionID string) (*cart.Cart, error)
	Delete(ctx context.Context, sessionID string) error
}

type orderCreator interface {
	Create(ctx context.Context, input orders.NewOrderInput) (*orders.OrderDTO, error)
}

type stockDecrementer interface {
	DecrementIfAvailable(ctx context.Context, id uuid.UUID, qty int) error
}

type service struct {
	flows   *Store
	carts   cartStore
	orders  orderCreator
	stock   stockDecrementer
	metrics *metrics.CheckoutMetrics
	logg    *logger.Logger
}

// ServiceParams bundles the dependencies required to build a checkout service.
type ServiceParams struct {
	FlowStore *Store
	CartStore cartStore
	Orders    orderCreator
	Stock     stockDecrementer
	Metrics   *metrics.CheckoutMetrics
	Logger    *logger.Logger
}

// NewService constructs a checkout service.
func NewService(params ServiceParams) (Service, error) {
	if params.FlowStore == nil {
		return nil, fmt.Errorf("flow store is required")
	}
	if params.CartStore == nil {
		return nil, fmt.Errorf("cart store is required")
	}
	if params.Orders == nil {
		return nil, fmt.Errorf("order service is required")
	}
	if params.Stock == nil {
		return nil, fmt.Errorf("stock decrementer is required")
	}
	if params.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	return &service{
		flows:   params.FlowStore,
		carts:   params.CartStore,
		orders:  params.Orders,
		stock:   params.Stock,
		metrics: params.Metrics,
		logg:    params.Logger,
	}, nil
}

func (s *service) Start(ctx context.Context, sessionID string) (*FlowDTO, error) {
	c, err := s.carts.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if c.IsEmpty() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
	}

	flow := NewFlow()
	if err := s.flows.Save(ctx, sessionID, flow); err != nil {
		return nil, err
	}
	return toFlowDTO(flow), nil
}

func (s *service) Get(ctx context.Context, sessionID string) (*FlowDTO, error) {
	flow, err := s.flows.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return toFlowDTO(flow), nil
}

func (s *service) SubmitContact(ctx context.Context, sessionID string, req ContactRequest) (*FlowDTO, error) {
	flow, err := s.flows.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if err := flow.SubmitContact(ContactInfo{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	}); err != nil {
		return nil, err
	}

	if err := s.flows.Save(ctx, sessionID, flow); err != nil {
		return nil, err
	}
	return toFlowDTO(flow), nil
}

func (s *service) Back(ctx context.Context, sessionID string) (*FlowDTO, error) {
	flow, err := s.flows.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if err := flow.Back(); err != nil {
		return nil, err
	}

	if err := s.flows.Save(ctx, sessionID, flow); err != nil {
		return nil, err
	}
	return toFlowDTO(flow), nil
}

// ConfirmPayment submits the order. The order persists first, then stock is
// decremented line by line, then the cart is cleared. On any failure the flow
// remains in confirming_payment and the cart is untouched.
func (s *service) ConfirmPayment(ctx context.Context, sessionID string) (*ConfirmResult, error) {
	flow, err := s.flows.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := flow.BeginConfirm(); err != nil {
		return nil, err
	}

	c, err := s.carts.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if c.IsEmpty() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
	}

	input := orders.NewOrderInput{
		UserEmail:  flow.Contact.Email,
		UserName:   flow.Contact.Name,
		UserPhone:  flow.Contact.Phone,
		TotalCents: c.TotalCents(),
	}
	for _, line := range c.Items {
		productID := line.ProductID
		input.Items = append(input.Items, orders.NewOrderItem{
			ProductID:   &productID,
			ProductName: line.Name,
			PriceCents:  line.PriceCents,
			Quantity:    line.Quantity,
		})
	}

	order, err := s.orders.Create(ctx, input)
	if err != nil {
		s.metrics.IncFailed(failReasonOrderStore)
		s.logg.Error(s.logg.WithCartSession(ctx, sessionID), "persist order", err)
		return nil, err
	}

	for _, line := range c.Items {
		if err := s.stock.DecrementIfAvailable(ctx, line.ProductID, line.Quantity); err != nil {
			reason := failReasonOrderStore
			if typed := pkgerrors.As(err); typed != nil && typed.Code() == pkgerrors.CodeInsufficientStock {
				reason = failReasonInsufficientStock
			}
			s.metrics.IncFailed(reason)
			logCtx := s.logg.WithCartSession(ctx, sessionID)
			logCtx = s.logg.WithField(logCtx, "order_id", order.ID.String())
			s.logg.Error(logCtx, "decrement stock", err)
			return nil, err
		}
	}

	if err := s.carts.Delete(ctx, sessionID); err != nil {
		return nil, err
	}

	flow.Complete(order.ID)
	if err := s.flows.Save(ctx, sessionID, flow); err != nil {
		return nil, err
	}

	s.metrics.IncCompleted(order.TotalCents)
	return toConfirmResult(flow, order.ID, order.TotalCents), nil
}
