package engine

import (
	"testing"

	"github.com/moltscope/moltscope/internal/corpus"
	"github.com/moltscope/moltscope/internal/domain"
)

func TestTopItems_CountsAndTruncates(t *testing.T) {
	posts := []domain.Post{
		post("p1", "alice", "m1", 0, 0),
		post("p2", "bob", "m2", 0, 0),
		post("p3", "alice", "m1", 0, 0),
		post("p4", "carol", "m3", 0, 0),
		post("p5", "alice", "m1", 0, 0),
		post("p6", "bob", "m2", 0, 0),
	}

	got := TopAuthors(posts, 2)
	if len(got) != 2 {
		t.Fatalf("expected 2 items, got %d", len(got))
	}
	if got[0].Key != "alice" || got[0].Count != 3 {
		t.Errorf("expected alice:3 first, got %s:%d", got[0].Key, got[0].Count)
	}
	if got[1].Key != "bob" || got[1].Count != 2 {
		t.Errorf("expected bob:2 second, got %s:%d", got[1].Key, got[1].Count)
	}
}

func TestTopItems_TiesKeepFirstEncounteredOrder(t *testing.T) {
	// four distinct authors, all count 1: the first two encountered win
	got := TopAuthors(fourPosts(), 2)
	if len(got) != 2 || got[0].Key != "alice" || got[1].Key != "bob" {
		t.Fatalf("expected [alice bob], got %+v", got)
	}
}

func TestTopSubmolts_UsesDisplayNameLabel(t *testing.T) {
	posts := fourPosts()
	for i := range posts {
		posts[i].SubmoltDisplayName = "Molt One"
	}

	got := TopSubmolts(posts, 5)
	if len(got) != 1 || got[0].Key != "m1" || got[0].Label != "Molt One" || got[0].Count != 4 {
		t.Fatalf("unexpected ranking %+v", got)
	}
}

func TestTopTags_MultiValuedCounting(t *testing.T) {
	snap := snapshotOf(corpus.Records{
		Posts: fourPosts(),
		Tags: []domain.Tag{
			{PostID: "pA", Tag: "lang:go"},
			{PostID: "pA", Tag: "topic:db"},
			{PostID: "pA", Tag: "meta:ama"},
			{PostID: "pB", Tag: "lang:go"},
		},
	})

	got := TopTags(snap, snap.Posts, 10)
	if len(got) != 3 {
		t.Fatalf("expected 3 distinct tags, got %d", len(got))
	}
	if got[0].Key != "lang:go" || got[0].Count != 2 {
		t.Errorf("expected lang:go:2 first, got %s:%d", got[0].Key, got[0].Count)
	}
}

func TestTopClassNotes(t *testing.T) {
	snap := snapshotOf(corpus.Records{
		Posts: fourPosts(),
		ClassNotes: []domain.ClassNote{
			{PostID: "pA", ClassNote: "spam"},
			{PostID: "pB", ClassNote: "spam"},
			{PostID: "pC", ClassNote: "quality"},
		},
	})

	got := TopClassNotes(snap, snap.Posts, 1)
	if len(got) != 1 || got[0].Key != "spam" || got[0].Count != 2 {
		t.Fatalf("expected [spam:2], got %+v", got)
	}
}

func TestGroupedTags(t *testing.T) {
	snap := snapshotOf(corpus.Records{
		Posts: fourPosts(),
		Tags: []domain.Tag{
			{PostID: "pA", Tag: "topic:db"},
			{PostID: "pB", Tag: "topic:db"},
			{PostID: "pA", Tag: "lang:go"},
			{PostID: "pB", Tag: "untagged"},
			{PostID: "pC", Tag: "topic:web"},
		},
	})

	groups := GroupedTags(snap, snap.Posts)
	if len(groups) != 3 {
		t.Fatalf("expected 3 namespaces, got %d", len(groups))
	}

	// buckets in lexical prefix order
	if groups[0].Namespace != "lang" || groups[1].Namespace != "other" || groups[2].Namespace != "topic" {
		t.Fatalf("unexpected bucket order: %s, %s, %s",
			groups[0].Namespace, groups[1].Namespace, groups[2].Namespace)
	}

	// within a bucket, count descending
	topic := groups[2].Items
	if topic[0].Key != "topic:db" || topic[0].Count != 2 {
		t.Errorf("expected topic:db:2 first in topic bucket, got %+v", topic)
	}

	if groups[1].Items[0].Key != "untagged" {
		t.Errorf("expected untagged in the other bucket, got %+v", groups[1].Items)
	}
}
