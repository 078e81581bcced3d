// Package storage persists the player record between sessions. The
// record is a single flat document, overwritten in place; there is no
// versioning and no history.
package storage

import (
	"context"
	"errors"

	"github.com/nmoretto/fieldops/types"
)

// ErrNoSave reports that no save record exists yet.
var ErrNoSave = errors.New("no save record")

// Store reads and writes the save record. Load returns ErrNoSave when
// nothing has ever been saved.
type Store interface {
	Save(ctx context.Context, rec types.PlayerRecord) error
	Load(ctx context.Context) (types.PlayerRecord, error)
}
