package sessionstore

import (
	"encoding/json"
	"os"
	"path/filepath"

	"leen-studio/internal/domain/cart"

	"github.com/google/uuid"
)

// SnapshotDir is the local-storage analogue: one JSON file per session
// holding the "cart" and "saved" lists. An empty dir disables persistence
// (used by tests).
type SnapshotDir struct {
	dir string
}

func NewSnapshotDir(dir string) (*SnapshotDir, error) {
	if dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	return &SnapshotDir{dir: dir}, nil
}

func (d *SnapshotDir) path(id uuid.UUID) string {
	return filepath.Join(d.dir, id.String()+".json")
}

// Load deserializes a session's cart. Missing or malformed files are
// treated as "no saved state" and never surface as an error.
func (d *SnapshotDir) Load(id uuid.UUID) *cart.Cart {
	if d.dir == "" {
		return nil
	}

	data, err := os.ReadFile(d.path(id))
	if err != nil {
		return nil
	}

	var snap cart.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil
	}
	return cart.Restore(snap)
}

// Save serializes the cart and saved lists. Called on every state change.
func (d *SnapshotDir) Save(id uuid.UUID, c *cart.Cart) error {
	if d.dir == "" {
		return nil
	}

	data, err := json.Marshal(c.Snapshot())
	if err != nil {
		return err
	}

	tmp := d.path(id) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, d.path(id))
}
