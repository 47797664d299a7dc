package checkout

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	redislib "github.com/redis/go-redis/v9"

	pkgerrors "github.com/arjunkhanna/craftkart-backend/pkg/errors"
)

type storeClient interface {
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, keys ...string) error
	CheckoutKey(sessionID string) string
}

// Store persists checkout flows in Redis alongside the cart, in the same
// session scope.
type Store struct {
	client storeClient
	ttl    time.Duration
}

// NewStore builds a Redis-backed checkout store with the provided TTL.
func NewStore(client storeClient, ttl time.Duration) (*Store, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client is required")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("checkout ttl must be positive")
	}
	return &Store{client: client, ttl: ttl}, nil
}

// Load retrieves the flow for the session. A missing flow is a not-found error.
func (s *Store) Load(ctx context.Context, sessionID string) (*Flow, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart session is required")
	}

	raw, err := s.client.Get(ctx, s.client.CheckoutKey(sessionID))
	if err != nil {
		if errors.Is(err, redislib.Nil) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "no active checkout")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load checkout")
	}

	var f Flow
	if err := json.Unmarshal([]byte(raw), &f); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "decode checkout")
	}
	return &f, nil
}

// Save writes the flow back under the session key, refreshing the TTL.
func (s *Store) Save(ctx context.Context, sessionID string, f *Flow) error {
	if strings.TrimSpace(sessionID) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "cart session is required")
	}
	if f == nil {
		return pkgerrors.New(pkgerrors.CodeInternal, "flow is required")
	}

	payload, err := json.Marshal(f)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode checkout")
	}
	if err := s.client.Set(ctx, s.client.CheckoutKey(sessionID), payload, s.ttl); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save checkout")
	}
	return nil
}

// Delete removes the flow for the session.
func (s *Store) Delete(ctx context.Context, sessionID string) error {
	if strings.TrimSpace(sessionID) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "cart session is required")
	}
	if err := s.client.Del(ctx, s.client.CheckoutKey(sessionID)); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete checkout")
	}
	return nil
}
