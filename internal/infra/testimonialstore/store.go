package testimonialstore

import (
	"context"
	"sync"

	"leen-studio/internal/domain/testimonial"
	"leen-studio/internal/pkg/errs"

	"github.com/google/uuid"
)

// Store is the in-memory testimony list behind the admin dashboard.
// Newest entries come first, matching the dashboard's prepend behavior.
type Store struct {
	mu    sync.RWMutex
	items []*testimonial.Testimonial
}

func New() *Store {
	return &Store{}
}

func (s *Store) List(ctx context.Context) ([]*testimonial.Testimonial, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*testimonial.Testimonial, len(s.items))
	copy(out, s.items)
	return out, nil
}

func (s *Store) FindByID(ctx context.Context, id uuid.UUID) (*testimonial.Testimonial, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, t := range s.items {
		if t.ID() == id {
			return t, nil
		}
	}
	return nil, errs.ErrTestimonialNotFound
}

func (s *Store) Create(ctx context.Context, t *testimonial.Testimonial) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = append([]*testimonial.Testimonial{t}, s.items...)
	return nil
}

func (s *Store) Update(ctx context.Context, t *testimonial.Testimonial) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.items {
		if existing.ID() == t.ID() {
			s.items[i] = t
			return nil
		}
	}
	return errs.ErrTestimonialNotFound
}

func (s *Store) Delete(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.items {
		if existing.ID() == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return errs.ErrTestimonialNotFound
}
