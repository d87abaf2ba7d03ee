package commands

import (
	"context"

	"leen-studio/internal/domain/catalog"
	"leen-studio/internal/pkg/errs"
	"leen-studio/internal/usecase/queries"
	"leen-studio/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrProductNotFound  = errs.New("product not found")
	ErrInvalidPromoCode = errs.New("invalid promo code")
)

// CartCommands is the narrow mutation surface of the cart store. Every
// operation returns the fresh view so the caller never re-derives state.
type CartCommands interface {
	AddItem(ctx context.Context, sessionID uuid.UUID, productID string, silent bool) (*queries.CartView, error)
	RemoveItem(ctx context.Context, sessionID uuid.UUID, productID string) (*queries.CartView, error)
	Clear(ctx context.Context, sessionID uuid.UUID) (*queries.CartView, error)
	ToggleSaved(ctx context.Context, sessionID uuid.UUID, productID string) (*queries.CartView, error)
	MoveToCart(ctx context.Context, sessionID uuid.UUID, productID string) (*queries.CartView, error)
	ApplyPromo(ctx context.Context, sessionID uuid.UUID, code string) (*queries.CartView, error)
	RemovePromo(ctx context.Context, sessionID uuid.UUID) (*queries.CartView, error)
	SetDrawer(ctx context.Context, sessionID uuid.UUID, open bool) (*queries.CartView, error)
}

type cartCommandsImpl struct {
	store shared.SessionStore
}

func NewCartCommands(store shared.SessionStore) CartCommands {
	return &cartCommandsImpl{store: store}
}

// mutate applies fn to the session cart and captures the resulting view.
func (c *cartCommandsImpl) mutate(ctx context.Context, sessionID uuid.UUID, fn func(s *shared.Session) error) (*queries.CartView, error) {
	var view *queries.CartView
	err := c.store.Update(ctx, sessionID, func(s *shared.Session) error {
		if err := fn(s); err != nil {
			return err
		}
		view = queries.NewCartView(s.Cart)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (c *cartCommandsImpl) AddItem(ctx context.Context, sessionID uuid.UUID, productID string, silent bool) (*queries.CartView, error) {
	product, ok := catalog.FindProduct(productID)
	if !ok {
		return nil, ErrProductNotFound
	}
	return c.mutate(ctx, sessionID, func(s *shared.Session) error {
		s.Cart.AddItem(product, silent)
		return nil
	})
}

func (c *cartCommandsImpl) RemoveItem(ctx context.Context, sessionID uuid.UUID, productID string) (*queries.CartView, error) {
	// Removing an unknown id is a no-op, not an error.
	return c.mutate(ctx, sessionID, func(s *shared.Session) error {
		s.Cart.RemoveItem(productID)
		return nil
	})
}

func (c *cartCommandsImpl) Clear(ctx context.Context, sessionID uuid.UUID) (*queries.CartView, error) {
	return c.mutate(ctx, sessionID, func(s *shared.Session) error {
		s.Cart.Clear()
		return nil
	})
}

func (c *cartCommandsImpl) ToggleSaved(ctx context.Context, sessionID uuid.UUID, productID string) (*queries.CartView, error) {
	product, ok := catalog.FindProduct(productID)
	if !ok {
		return nil, ErrProductNotFound
	}
	return c.mutate(ctx, sessionID, func(s *shared.Session) error {
		s.Cart.ToggleSaved(product)
		return nil
	})
}

func (c *cartCommandsImpl) MoveToCart(ctx context.Context, sessionID uuid.UUID, productID string) (*queries.CartView, error) {
	product, ok := catalog.FindProduct(productID)
	if !ok {
		return nil, ErrProductNotFound
	}
	return c.mutate(ctx, sessionID, func(s *shared.Session) error {
		s.Cart.MoveToCart(product)
		return nil
	})
}

func (c *cartCommandsImpl) ApplyPromo(ctx context.Context, sessionID uuid.UUID, code string) (*queries.CartView, error) {
	return c.mutate(ctx, sessionID, func(s *shared.Session) error {
		if err := s.Cart.ApplyPromo(code); err != nil {
			return errs.Mark(err, ErrInvalidPromoCode)
		}
		return nil
	})
}

func (c *cartCommandsImpl) RemovePromo(ctx context.Context, sessionID uuid.UUID) (*queries.CartView, error) {
	return c.mutate(ctx, sessionID, func(s *shared.Session) error {
		s.Cart.RemovePromo()
		return nil
	})
}

func (c *cartCommandsImpl) SetDrawer(ctx context.Context, sessionID uuid.UUID, open bool) (*queries.CartView, error) {
	return c.mutate(ctx, sessionID, func(s *shared.Session) error {
		if open {
			s.Cart.OpenDrawer()
		} else {
			s.Cart.CloseDrawer()
		}
		return nil
	})
}
