package engine

import (
	"testing"

	"github.com/moltscope/moltscope/internal/domain"
)

func histPosts(upvotes ...int) []domain.Post {
	posts := make([]domain.Post, len(upvotes))
	for i, v := range upvotes {
		posts[i] = domain.Post{PostID: string(rune('a' + i)), Upvotes: v}
	}
	return posts
}

func TestHistogram_CountsSumToInputSize(t *testing.T) {
	posts := histPosts(0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10)

	buckets := Histogram(posts, FieldUpvotes, 4)
	if len(buckets) != 4 {
		t.Fatalf("expected 4 buckets, got %d", len(buckets))
	}

	total := 0
	for _, b := range buckets {
		total += b.Count
	}
	if total != len(posts) {
		t.Fatalf("bucket counts sum to %d, want %d", total, len(posts))
	}
}

func TestHistogram_EdgeValuesGoToOneBucket(t *testing.T) {
	// min=0, max=10, bins=2, width=5: value 5 sits exactly on the inner
	// edge and belongs to the bucket it opens; value 10 is the final
	// upper edge and belongs to the last bucket.
	posts := histPosts(0, 5, 10)

	buckets := Histogram(posts, FieldUpvotes, 2)
	if buckets[0].Count != 1 {
		t.Errorf("expected 1 value in [0,5), got %d", buckets[0].Count)
	}
	if buckets[1].Count != 2 {
		t.Errorf("expected 2 values in [5,10], got %d", buckets[1].Count)
	}
}

func TestHistogram_SingleValueCorpus(t *testing.T) {
	posts := histPosts(7, 7, 7)

	buckets := Histogram(posts, FieldUpvotes, 10)
	if len(buckets) != 1 {
		t.Fatalf("expected a single bucket when min == max, got %d", len(buckets))
	}
	b := buckets[0]
	if b.Lo != 7 || b.Hi != 8 || b.Count != 3 {
		t.Fatalf("expected width-1 bucket [7,8) with count 3, got %+v", b)
	}
}

func TestHistogram_FlooredBounds(t *testing.T) {
	// min=0, max=10, bins=3, width=3.33..: bounds floor to 0,3,6,10
	posts := histPosts(0, 10)

	buckets := Histogram(posts, FieldUpvotes, 3)
	if buckets[0].Lo != 0 || buckets[0].Hi != 3 {
		t.Errorf("bucket 0 bounds = [%d,%d), want [0,3)", buckets[0].Lo, buckets[0].Hi)
	}
	if buckets[1].Lo != 3 || buckets[1].Hi != 6 {
		t.Errorf("bucket 1 bounds = [%d,%d), want [3,6)", buckets[1].Lo, buckets[1].Hi)
	}
	if buckets[2].Lo != 6 || buckets[2].Hi != 10 {
		t.Errorf("bucket 2 bounds = [%d,%d], want [6,10]", buckets[2].Lo, buckets[2].Hi)
	}
}

func TestHistogram_EmptyInput(t *testing.T) {
	if got := Histogram(nil, FieldUpvotes, 5); got != nil {
		t.Fatalf("expected nil for empty input, got %+v", got)
	}
}

func TestHistogram_OtherFields(t *testing.T) {
	posts := []domain.Post{
		{PostID: "a", CommentCount: 1, ContentLen: 100, Downvotes: 2},
		{PostID: "b", CommentCount: 9, ContentLen: 900, Downvotes: 2},
	}

	for _, field := range []NumericField{FieldComments, FieldContentLen, FieldDownvotes} {
		buckets := Histogram(posts, field, 2)
		total := 0
		for _, b := range buckets {
			total += b.Count
		}
		if total != 2 {
			t.Errorf("field %s: counts sum to %d, want 2", field, total)
		}
	}
}
