package cart

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/huynhtrandev/brewpoint-backend/internal/catalog"
	pkgerrors "github.com/huynhtrandev/brewpoint-backend/pkg/errors"
	"github.com/huynhtrandev/brewpoint-backend/pkg/logger"
	redisclient "github.com/huynhtrandev/brewpoint-backend/pkg/redis"
	"github.com/huynhtrandev/brewpoint-backend/pkg/snapshot"
)

// Service persists per-customer carts as write-through snapshots.
type Service struct {
	store   snapshot.Store
	catalog catalog.Catalog
	logg    *logger.Logger
}

// NewService builds a cart service over the snapshot store and catalog.
func NewService(store snapshot.Store, cat catalog.Catalog, logg *logger.Logger) (*Service, error) {
	if store == nil {
		return nil, fmt.Errorf("snapshot store required")
	}
	if cat == nil {
		return nil, fmt.Errorf("catalog required")
	}
	return &Service{store: store, catalog: cat, logg: logg}, nil
}

// Get loads the customer's cart. An absent snapshot is an empty cart.
func (s *Service) Get(ctx context.Context, customerID string) (*Cart, error) {
	blob, ok, err := s.store.Get(ctx, redisclient.CartKey(customerID))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cart snapshot")
	}
	cart := &Cart{}
	if !ok {
		return cart, nil
	}
	if err := json.Unmarshal(blob, cart); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "decode cart snapshot")
	}
	return cart, nil
}

// Add merges the configuration into the customer's cart and persists it.
func (s *Service) Add(ctx context.Context, customerID string, input AddInput) (*Cart, error) {
	cart, err := s.Get(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if _, err := cart.Add(s.catalog, input); err != nil {
		return nil, err
	}
	if err := s.persist(ctx, customerID, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// Remove drops a line by key and persists the cart.
func (s *Service) Remove(ctx context.Context, customerID, key string) (*Cart, error) {
	cart, err := s.Get(ctx, customerID)
	if err != nil {
		return nil, err
	}
	cart.Remove(key)
	if err := s.persist(ctx, customerID, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// Clear empties the customer's cart and persists the empty state.
func (s *Service) Clear(ctx context.Context, customerID string) error {
	cart := &Cart{}
	if err := s.persist(ctx, customerID, cart); err != nil {
		return err
	}
	if s.logg != nil {
		s.logg.Info(s.logg.WithCustomerID(ctx, customerID), "cart.cleared")
	}
	return nil
}

func (s *Service) persist(ctx context.Context, customerID string, cart *Cart) error {
	blob, err := json.Marshal(cart)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode cart snapshot")
	}
	if err := s.store.Set(ctx, redisclient.CartKey(customerID), blob); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist cart snapshot")
	}
	return nil
}
