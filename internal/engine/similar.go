package engine

import (
	"math"
	"sort"

	"github.com/moltscope/moltscope/internal/corpus"
	"github.com/moltscope/moltscope/internal/domain"
)

// Nearest returns up to k posts closest to the anchor in the 2-D embedding
// space, ascending by Euclidean distance. The anchor is always excluded
// from its own result. An anchor without an embedding has no spatial
// representation and yields an empty result, not an error.
//
// The scan is O(n) over the embedded posts, which is fine at tens of
// thousands of points; a grid or k-d tree can replace it behind the same
// contract if the corpus grows.
func Nearest(snap *corpus.Snapshot, anchorID string, k int) []domain.Post {
	if k <= 0 {
		return nil
	}
	anchor, ok := snap.EmbeddingFor(anchorID)
	if !ok {
		return nil
	}

	type candidate struct {
		id   string
		dist float64
	}
	candidates := make([]candidate, 0, len(snap.Embeddings))
	for _, e := range snap.Embeddings {
		if e.PostID == anchorID {
			continue
		}
		candidates = append(candidates, candidate{
			id:   e.PostID,
			dist: math.Hypot(e.X-anchor.X, e.Y-anchor.Y),
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].dist < candidates[j].dist
	})

	posts := make([]domain.Post, 0, k)
	for _, c := range candidates {
		if len(posts) == k {
			break
		}
		// should always resolve given the join invariant
		if p, ok := snap.PostByID(c.id); ok {
			posts = append(posts, p)
		}
	}
	return posts
}
