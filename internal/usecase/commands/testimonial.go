package commands

import (
	"context"

	"leen-studio/internal/domain/testimonial"
	"leen-studio/internal/pkg/clock"
	"leen-studio/internal/usecase/shared"

	"github.com/google/uuid"
)

type TestimonialCommands interface {
	Create(ctx context.Context, author, location, text string, rating int) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, author, location, text string, rating int) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type testimonialCommandsImpl struct {
	repo  shared.TestimonialRepository
	clock clock.Clock
}

func NewTestimonialCommands(repo shared.TestimonialRepository, clock clock.Clock) TestimonialCommands {
	return &testimonialCommandsImpl{repo: repo, clock: clock}
}

func (c *testimonialCommandsImpl) Create(ctx context.Context, author, location, text string, rating int) (uuid.UUID, error) {
	t, err := testimonial.New(author, location, text, rating, c.clock.Now())
	if err != nil {
		return uuid.Nil, err
	}
	if err := c.repo.Create(ctx, t); err != nil {
		return uuid.Nil, err
	}
	return t.ID(), nil
}

func (c *testimonialCommandsImpl) Update(ctx context.Context, id uuid.UUID, author, location, text string, rating int) error {
	t, err := c.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := t.Update(author, location, text, rating); err != nil {
		return err
	}
	return c.repo.Update(ctx, t)
}

func (c *testimonialCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return c.repo.Delete(ctx, id)
}
