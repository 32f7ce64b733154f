package loader

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/moltscope/moltscope/internal/corpus"
	"github.com/moltscope/moltscope/internal/metrics"
)

// Manager owns the load-build-swap cycle. A reload builds the full index
// before publishing it, so readers only ever see a complete snapshot.
type Manager struct {
	source Source
	holder *corpus.Holder
	logger *zap.Logger
}

// NewManager creates a snapshot manager.
func NewManager(source Source, holder *corpus.Holder, logger *zap.Logger) *Manager {
	return &Manager{source: source, holder: holder, logger: logger}
}

// Reload loads the records, builds a fresh snapshot and swaps it in.
// On failure the previous snapshot stays active.
func (m *Manager) Reload(ctx context.Context) error {
	start := time.Now()

	rec, err := m.source.Load(ctx)
	if err != nil {
		return fmt.Errorf("load corpus: %w", err)
	}

	snap := corpus.Build(rec)
	m.holder.Swap(snap)

	metrics.SnapshotReloadsTotal.Inc()
	metrics.SnapshotPosts.Set(float64(len(snap.Posts)))
	metrics.SnapshotCommunities.Set(float64(len(snap.Communities)))

	m.logger.Info("corpus snapshot loaded",
		zap.Int("posts", len(snap.Posts)),
		zap.Int("communities", len(snap.Communities)),
		zap.Int("tag_edges", len(snap.TagEdges)),
		zap.Int("embeddings", len(snap.Embeddings)),
		zap.Duration("took", time.Since(start)),
	)
	return nil
}
