package queries

import (
	"context"
	"time"

	"leen-studio/internal/usecase/shared"

	"github.com/google/uuid"
)

type TestimonialView struct {
	ID        uuid.UUID `json:"id"`
	Author    string    `json:"author"`
	Location  string    `json:"location"`
	Text      string    `json:"text"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"createdAt"`
}

type TestimonialQueries interface {
	List(ctx context.Context) ([]TestimonialView, error)
}

type testimonialQueriesImpl struct {
	repo shared.TestimonialRepository
}

func NewTestimonialQueries(repo shared.TestimonialRepository) TestimonialQueries {
	return &testimonialQueriesImpl{repo: repo}
}

func (q *testimonialQueriesImpl) List(ctx context.Context) ([]TestimonialView, error) {
	items, err := q.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]TestimonialView, 0, len(items))
	for _, t := range items {
		out = append(out, TestimonialView{
			ID:        t.ID(),
			Author:    t.Author(),
			Location:  t.Location(),
			Text:      t.Text(),
			Rating:    t.Rating(),
			CreatedAt: t.CreatedAt(),
		})
	}
	return out, nil
}
