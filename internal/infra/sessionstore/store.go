package sessionstore

import (
	"context"
	"log/slog"
	"sync"

	"leen-studio/internal/usecase/shared"

	"github.com/google/uuid"
)

// Store keeps all sessions in memory, one lock per session so a slow
// simulated checkout in one browser never blocks another. The cart slice
// of each session is mirrored to a JSON snapshot file after every
// successful mutation; everything else is process-lifetime.
type Store struct {
	mu        sync.Mutex
	sessions  map[uuid.UUID]*entry
	snapshots *SnapshotDir
}

type entry struct {
	mu      sync.Mutex
	session *shared.Session
}

func New(snapshots *SnapshotDir) *Store {
	return &Store{
		sessions:  make(map[uuid.UUID]*entry),
		snapshots: snapshots,
	}
}

func (s *Store) get(id uuid.UUID) *entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.sessions[id]
	if !ok {
		session := shared.NewSession(id)
		if restored := s.snapshots.Load(id); restored != nil {
			session.Cart = restored
		}
		e = &entry{session: session}
		s.sessions[id] = e
	}
	return e
}

func (s *Store) Read(ctx context.Context, id uuid.UUID, fn func(*shared.Session)) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	e := s.get(id)
	e.mu.Lock()
	defer e.mu.Unlock()

	fn(e.session)
	return nil
}

func (s *Store) Update(ctx context.Context, id uuid.UUID, fn func(*shared.Session) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	e := s.get(id)
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := fn(e.session); err != nil {
		return err
	}

	if err := s.snapshots.Save(id, e.session.Cart); err != nil {
		// Persistence failures degrade to in-memory state only.
		slog.Warn("failed to write cart snapshot", "session_id", id.String(), "error", err)
	}
	return nil
}
