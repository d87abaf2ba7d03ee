package testimonial

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyAuthor   = errors.New("author must not be empty")
	ErrEmptyText     = errors.New("text must not be empty")
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
)

// Testimonial is an admin-managed testimony shown on the landing page.
type Testimonial struct {
	id        uuid.UUID
	author    string
	location  string
	text      string
	rating    int
	createdAt time.Time
}

func New(author, location, text string, rating int, now time.Time) (*Testimonial, error) {
	author = strings.TrimSpace(author)
	if author == "" {
		return nil, ErrEmptyAuthor
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyText
	}
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}

	return &Testimonial{
		id:        uuid.New(),
		author:    author,
		location:  strings.TrimSpace(location),
		text:      text,
		rating:    rating,
		createdAt: now,
	}, nil
}

func (t *Testimonial) Update(author, location, text string, rating int) error {
	author = strings.TrimSpace(author)
	if author == "" {
		return ErrEmptyAuthor
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return ErrEmptyText
	}
	if rating < 1 || rating > 5 {
		return ErrInvalidRating
	}

	t.author = author
	t.location = strings.TrimSpace(location)
	t.text = text
	t.rating = rating
	return nil
}

func (t *Testimonial) ID() uuid.UUID        { return t.id }
func (t *Testimonial) Author() string       { return t.author }
func (t *Testimonial) Location() string     { return t.location }
func (t *Testimonial) Text() string         { return t.text }
func (t *Testimonial) Rating() int          { return t.rating }
func (t *Testimonial) CreatedAt() time.Time { return t.createdAt }
