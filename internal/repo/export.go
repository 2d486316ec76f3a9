package repo

import (
	"context"
	"fmt"

	"github.com/initiative-sh/initiative/internal/world"
	"github.com/vmihailenco/msgpack/v5"
)

// backupVersion is bumped when the envelope layout changes.
const backupVersion = 1

// backup is the wire envelope for export and import.
type backup struct {
	Version int               `msgpack:"version"`
	Things  []*world.Thing    `msgpack:"things"`
	Values  map[string]string `msgpack:"values"`
}

// ImportStats reports what an import brought in.
type ImportStats struct {
	Things  int
	Values  int
	Skipped int // name collisions left untouched
}

// Export serializes the journal and key-value store.
func (r *Repository) Export(ctx context.Context) ([]byte, error) {
	things, err := r.Journal(ctx)
	if err != nil {
		return nil, err
	}

	keys, err := r.db.Keys(ctx, valueDir)
	if err != nil {
		return nil, fmt.Errorf("list values: %w", err)
	}
	values := make(map[string]string, len(keys))
	for _, k := range keys {
		v, err := r.GetValue(ctx, k)
		if err != nil {
			return nil, err
		}
		values[k] = v
	}

	bs, err := msgpack.Marshal(backup{
		Version: backupVersion,
		Things:  things,
		Values:  values,
	})
	if err != nil {
		return nil, fmt.Errorf("encode backup: %w", err)
	}
	return bs, nil
}

// Import merges a previously exported backup into the repository.
// Things whose names collide with existing journal entries are skipped
// rather than overwritten.
func (r *Repository) Import(ctx context.Context, data []byte) (ImportStats, error) {
	var b backup
	if err := msgpack.Unmarshal(data, &b); err != nil {
		return ImportStats{}, fmt.Errorf("decode backup: %w", err)
	}
	if b.Version != backupVersion {
		return ImportStats{}, fmt.Errorf("unsupported backup version %d", b.Version)
	}

	var stats ImportStats
	for _, t := range b.Things {
		if existing, err := r.GetByName(ctx, t.Name()); err == nil && existing.Saved() {
			stats.Skipped++
			continue
		}
		if t.ID == "" {
			t.ID = newID()
		}
		if err := r.put(ctx, t, "import "+t.Name()); err != nil {
			return stats, err
		}
		stats.Things++
	}

	for k, v := range b.Values {
		if err := r.SetValue(ctx, k, v); err != nil {
			return stats, err
		}
		stats.Values++
	}

	r.log.Debug("imported backup",
		"things", stats.Things, "values", stats.Values, "skipped", stats.Skipped)
	return stats, nil
}
