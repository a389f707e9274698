package cart

import (
	"context"
	"encoding/json"
	"fmt"

	pkgerrors "github.com/ers220/component-compass/pkg/errors"
)

// Service persists the session cart between the selection and exit pages.
type Service interface {
	Save(ctx context.Context, accessID string, items []Item) error
	Fetch(ctx context.Context, accessID string) ([]Item, error)
	Clear(ctx context.Context, accessID string) error
}

type cartStore interface {
	SaveCart(ctx context.Context, accessID string, payload string) error
	FetchCart(ctx context.Context, accessID string) (string, error)
	ClearCart(ctx context.Context, accessID string) error
}

type service struct {
	store cartStore
}

// ServiceParams bundles the dependencies required to build a cart service.
type ServiceParams struct {
	Sessions cartStore
}

// NewService constructs a cart service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Sessions == nil {
		return nil, fmt.Errorf("session manager is required")
	}
	return &service{store: params.Sessions}, nil
}

func (s *service) Save(ctx context.Context, accessID string, items []Item) error {
	if items == nil {
		items = []Item{}
	}
	payload, err := json.Marshal(items)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode cart")
	}
	return s.store.SaveCart(ctx, accessID, string(payload))
}

func (s *service) Fetch(ctx context.Context, accessID string) ([]Item, error) {
	payload, err := s.store.FetchCart(ctx, accessID)
	if err != nil {
		return nil, err
	}
	if payload == "" {
		return []Item{}, nil
	}
	var items []Item
	if err := json.Unmarshal([]byte(payload), &items); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "decode cart")
	}
	if items == nil {
		items = []Item{}
	}
	return items, nil
}

func (s *service) Clear(ctx context.Context, accessID string) error {
	return s.store.ClearCart(ctx, accessID)
}
