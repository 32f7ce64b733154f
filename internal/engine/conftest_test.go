package engine

import (
	"github.com/moltscope/moltscope/internal/corpus"
	"github.com/moltscope/moltscope/internal/domain"
)

// post builds a minimal post record for tests.
func post(id, author, submolt string, upvotes, comments int) domain.Post {
	return domain.Post{
		PostID:       id,
		Title:        "title of " + id,
		Content:      "content of " + id,
		ContentLen:   len("content of " + id),
		AuthorName:   author,
		SubmoltName:  submolt,
		Upvotes:      upvotes,
		CommentCount: comments,
		CreatedAt:    "2026-01-15T12:00:00Z",
	}
}

// fourPosts is the canonical fixture: A(5,5), B(12,8), C(20,3), D(3,0),
// all in community m1, distinct authors.
func fourPosts() []domain.Post {
	return []domain.Post{
		post("pA", "alice", "m1", 5, 5),
		post("pB", "bob", "m1", 12, 8),
		post("pC", "carol", "m1", 20, 3),
		post("pD", "dave", "m1", 3, 0),
	}
}

func snapshotOf(rec corpus.Records) *corpus.Snapshot {
	return corpus.Build(rec)
}

func fourPostSnapshot() *corpus.Snapshot {
	return snapshotOf(corpus.Records{Posts: fourPosts()})
}

func ids(posts []domain.Post) []string {
	out := make([]string, len(posts))
	for i, p := range posts {
		out[i] = p.PostID
	}
	return out
}

func equalIDs(a []string, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
