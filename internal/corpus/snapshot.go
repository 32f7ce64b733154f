// Package corpus builds the immutable in-memory index over the raw record
// sequences. The snapshot is constructed once per load and never mutated;
// concurrent readers need no locking.
package corpus

import (
	"github.com/moltscope/moltscope/internal/domain"
)

// Records holds the seven raw record sequences handed over by a loader.
type Records struct {
	Posts                []domain.Post                `json:"posts"`
	Communities          []domain.Community           `json:"submolts"`
	Tags                 []domain.Tag                 `json:"post_tags"`
	ClassNotes           []domain.ClassNote           `json:"class_notes"`
	TagEdges             []domain.TagEdge             `json:"tag_edges"`
	Embeddings           []domain.Embedding           `json:"post_umap"`
	CommunityProjections []domain.CommunityProjection `json:"submolt_umap"`
}

// Snapshot is the indexed, read-only view of one corpus load. Slices keep
// the original record order; maps provide O(1) joins on the key fields.
type Snapshot struct {
	Posts                []domain.Post
	Communities          []domain.Community
	TagEdges             []domain.TagEdge
	Embeddings           []domain.Embedding
	CommunityProjections []domain.CommunityProjection

	postByID        map[string]int // index into Posts
	communityByName map[string]int // index into Communities
	tagsByPost      map[string][]domain.Tag
	notesByPost     map[string][]domain.ClassNote
	embeddingByPost map[string]domain.Embedding
	postsByCommunity map[string][]int
	postsByAuthor    map[string][]int
}

// Build indexes the raw records. It is total: malformed optional fields are
// tolerated and simply behave as absent entries in later lookups.
func Build(rec Records) *Snapshot {
	s := &Snapshot{
		Posts:                rec.Posts,
		Communities:          rec.Communities,
		TagEdges:             rec.TagEdges,
		Embeddings:           rec.Embeddings,
		CommunityProjections: rec.CommunityProjections,

		postByID:         make(map[string]int, len(rec.Posts)),
		communityByName:  make(map[string]int, len(rec.Communities)),
		tagsByPost:       make(map[string][]domain.Tag),
		notesByPost:      make(map[string][]domain.ClassNote),
		embeddingByPost:  make(map[string]domain.Embedding, len(rec.Embeddings)),
		postsByCommunity: make(map[string][]int),
		postsByAuthor:    make(map[string][]int),
	}

	for i, p := range rec.Posts {
		s.postByID[p.PostID] = i
		s.postsByCommunity[p.SubmoltName] = append(s.postsByCommunity[p.SubmoltName], i)
		s.postsByAuthor[p.AuthorName] = append(s.postsByAuthor[p.AuthorName], i)
	}
	for i, c := range rec.Communities {
		s.communityByName[c.SubmoltName] = i
	}
	for _, t := range rec.Tags {
		s.tagsByPost[t.PostID] = append(s.tagsByPost[t.PostID], t)
	}
	for _, n := range rec.ClassNotes {
		s.notesByPost[n.PostID] = append(s.notesByPost[n.PostID], n)
	}
	for _, e := range rec.Embeddings {
		s.embeddingByPost[e.PostID] = e
	}

	return s
}

// PostByID resolves a post id. Unknown ids resolve to (zero, false), never an error.
func (s *Snapshot) PostByID(id string) (domain.Post, bool) {
	i, ok := s.postByID[id]
	if !ok {
		return domain.Post{}, false
	}
	return s.Posts[i], true
}

// CommunityByName resolves a submolt name.
func (s *Snapshot) CommunityByName(name string) (domain.Community, bool) {
	i, ok := s.communityByName[name]
	if !ok {
		return domain.Community{}, false
	}
	return s.Communities[i], true
}

// TagsFor returns the tags of a post in insertion order. Nil for unknown ids.
func (s *Snapshot) TagsFor(postID string) []domain.Tag {
	return s.tagsByPost[postID]
}

// NotesFor returns the class notes of a post in insertion order.
func (s *Snapshot) NotesFor(postID string) []domain.ClassNote {
	return s.notesByPost[postID]
}

// EmbeddingFor resolves the 2-D projection of a post. Posts without one
// are absent from similarity and spatial queries.
func (s *Snapshot) EmbeddingFor(postID string) (domain.Embedding, bool) {
	e, ok := s.embeddingByPost[postID]
	return e, ok
}

// PostsInCommunity returns the posts of one submolt in corpus order.
func (s *Snapshot) PostsInCommunity(name string) []domain.Post {
	return s.resolve(s.postsByCommunity[name])
}

// PostsByAuthor returns the posts of one author in corpus order.
func (s *Snapshot) PostsByAuthor(author string) []domain.Post {
	return s.resolve(s.postsByAuthor[author])
}

func (s *Snapshot) resolve(indices []int) []domain.Post {
	if len(indices) == 0 {
		return nil
	}
	posts := make([]domain.Post, len(indices))
	for i, idx := range indices {
		posts[i] = s.Posts[idx]
	}
	return posts
}
