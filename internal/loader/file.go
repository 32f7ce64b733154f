package loader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/moltscope/moltscope/internal/corpus"
)

// FileSource reads the record sequences from JSON array files in one
// directory (posts.json, submolts.json, post_tags.json, class_notes.json,
// tag_edges.json, post_umap.json, submolt_umap.json).
type FileSource struct {
	dir string
}

// NewFileSource creates a file-backed corpus source.
func NewFileSource(dir string) *FileSource {
	return &FileSource{dir: dir}
}

// Load reads and decodes all sequences. Posts and communities are
// required; the auxiliary sequences may be missing and load as empty.
func (s *FileSource) Load(_ context.Context) (rec corpus.Records, err error) {
	if err = s.require(seqPosts, &rec.Posts); err != nil {
		return rec, err
	}
	if err = s.require(seqCommunities, &rec.Communities); err != nil {
		return rec, err
	}
	if err = s.optional(seqTags, &rec.Tags); err != nil {
		return rec, err
	}
	if err = s.optional(seqClassNotes, &rec.ClassNotes); err != nil {
		return rec, err
	}
	if err = s.optional(seqTagEdges, &rec.TagEdges); err != nil {
		return rec, err
	}
	if err = s.optional(seqEmbeddings, &rec.Embeddings); err != nil {
		return rec, err
	}
	if err = s.optional(seqCommunityProjections, &rec.CommunityProjections); err != nil {
		return rec, err
	}
	return rec, nil
}

func (s *FileSource) require(name string, out any) error {
	data, err := os.ReadFile(filepath.Join(s.dir, name+".json"))
	if err != nil {
		return fmt.Errorf("read sequence %s: %w", name, err)
	}
	return decodeSeq(data, name, out)
}

func (s *FileSource) optional(name string, out any) error {
	data, err := os.ReadFile(filepath.Join(s.dir, name+".json"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read sequence %s: %w", name, err)
	}
	return decodeSeq(data, name, out)
}
