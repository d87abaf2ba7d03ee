package queries

import (
	"context"

	"leen-studio/internal/usecase/shared"
)

// SoulAlignQueries relays a feeling straight to the aligner. Unlike the
// booking flow this surface propagates the not-configured error so the
// handler can report it; every other failure already resolved to the
// aligner's fallback pair.
type SoulAlignQueries interface {
	Align(ctx context.Context, feeling string) (*AlignmentView, error)
}

type soulAlignQueriesImpl struct {
	aligner shared.SoulAligner
}

func NewSoulAlignQueries(aligner shared.SoulAligner) SoulAlignQueries {
	return &soulAlignQueriesImpl{aligner: aligner}
}

func (q *soulAlignQueriesImpl) Align(ctx context.Context, feeling string) (*AlignmentView, error) {
	alignment, err := q.aligner.Align(ctx, feeling)
	if err != nil {
		return nil, err
	}
	return &AlignmentView{
		Mantra:         alignment.Mantra,
		Recommendation: alignment.Recommendation,
	}, nil
}
