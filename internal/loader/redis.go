package loader

import (
	"context"
	"errors"
	"fmt"

	"github.com/moltscope/moltscope/internal/corpus"
	"github.com/moltscope/moltscope/internal/db"
)

// kvReader is the consumer interface for the redis source (ISP).
type kvReader interface {
	Get(ctx context.Context, key string) ([]byte, error)
}

// RedisSource reads the record sequences from Redis, one JSON array blob
// per sequence under <prefix><name>.
type RedisSource struct {
	store  kvReader
	prefix string
}

// NewRedisSource creates a Redis-backed corpus source.
func NewRedisSource(store kvReader, prefix string) *RedisSource {
	return &RedisSource{store: store, prefix: prefix}
}

// Load fetches and decodes all sequences. Posts and communities are
// required; missing auxiliary keys load as empty sequences.
func (s *RedisSource) Load(ctx context.Context) (rec corpus.Records, err error) {
	if err = s.fetch(ctx, seqPosts, true, &rec.Posts); err != nil {
		return rec, err
	}
	if err = s.fetch(ctx, seqCommunities, true, &rec.Communities); err != nil {
		return rec, err
	}
	if err = s.fetch(ctx, seqTags, false, &rec.Tags); err != nil {
		return rec, err
	}
	if err = s.fetch(ctx, seqClassNotes, false, &rec.ClassNotes); err != nil {
		return rec, err
	}
	if err = s.fetch(ctx, seqTagEdges, false, &rec.TagEdges); err != nil {
		return rec, err
	}
	if err = s.fetch(ctx, seqEmbeddings, false, &rec.Embeddings); err != nil {
		return rec, err
	}
	if err = s.fetch(ctx, seqCommunityProjections, false, &rec.CommunityProjections); err != nil {
		return rec, err
	}
	return rec, nil
}

func (s *RedisSource) fetch(ctx context.Context, name string, required bool, out any) error {
	data, err := s.store.Get(ctx, s.prefix+name)
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) && !required {
			return nil
		}
		return fmt.Errorf("fetch sequence %s: %w", name, err)
	}
	return decodeSeq(data, name, out)
}
