//go:build unit

package testimonialstore_test

import (
	"context"
	"testing"
	"time"

	"leen-studio/internal/domain/testimonial"
	"leen-studio/internal/infra/testimonialstore"
	"leen-studio/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTestimonial(t *testing.T, author string) *testimonial.Testimonial {
	t.Helper()
	entry, err := testimonial.New(author, "Atlanta, GA", "Changed my life.", 5, time.Now())
	require.NoError(t, err)
	return entry
}

func TestNewestFirst(t *testing.T) {
	store := testimonialstore.New()
	ctx := context.Background()

	first := mustTestimonial(t, "Sarah M.")
	second := mustTestimonial(t, "Jess R.")
	require.NoError(t, store.Create(ctx, first))
	require.NoError(t, store.Create(ctx, second))

	items, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Jess R.", items[0].Author())
	assert.Equal(t, "Sarah M.", items[1].Author())
}

func TestFindUpdateDelete(t *testing.T) {
	store := testimonialstore.New()
	ctx := context.Background()

	entry := mustTestimonial(t, "Sarah M.")
	require.NoError(t, store.Create(ctx, entry))

	found, err := store.FindByID(ctx, entry.ID())
	require.NoError(t, err)
	assert.Equal(t, entry.ID(), found.ID())

	require.NoError(t, found.Update("Sarah M.", "Austin, TX", "Still true.", 4))
	require.NoError(t, store.Update(ctx, found))

	items, _ := store.List(ctx)
	assert.Equal(t, "Austin, TX", items[0].Location())

	require.NoError(t, store.Delete(ctx, entry.ID()))
	items, _ = store.List(ctx)
	assert.Empty(t, items)
}

func TestMissingID(t *testing.T) {
	store := testimonialstore.New()
	ctx := context.Background()
	unknown := uuid.New()

	_, err := store.FindByID(ctx, unknown)
	assert.ErrorIs(t, err, errs.ErrTestimonialNotFound)

	assert.ErrorIs(t, store.Delete(ctx, unknown), errs.ErrTestimonialNotFound)
	assert.ErrorIs(t, store.Update(ctx, mustTestimonial(t, "Ghost")), errs.ErrTestimonialNotFound)
}
