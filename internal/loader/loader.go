// Package loader materializes the seven corpus record sequences from an
// external source. Loading is the only fallible boundary: structural
// decode errors fail fast here, before any query runs.
package loader

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/moltscope/moltscope/internal/corpus"
	"github.com/moltscope/moltscope/internal/domain"
)

// Source loads one full set of corpus records.
type Source interface {
	Load(ctx context.Context) (corpus.Records, error)
}

// sequence names shared by the file and redis sources.
const (
	seqPosts                = "posts"
	seqCommunities          = "submolts"
	seqTags                 = "post_tags"
	seqClassNotes           = "class_notes"
	seqTagEdges             = "tag_edges"
	seqEmbeddings           = "post_umap"
	seqCommunityProjections = "submolt_umap"
)

// decodeSeq unmarshals one JSON array. A decode failure is a structural
// violation of the load contract and wraps ErrMalformedRecords.
func decodeSeq(data []byte, name string, out any) error {
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: sequence %s: %v", domain.ErrMalformedRecords, name, err)
	}
	return nil
}
