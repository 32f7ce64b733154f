package engine

import (
	"math"

	"github.com/moltscope/moltscope/internal/domain"
)

// NumericField selects a numeric post field for histograms.
type NumericField string

const (
	// FieldUpvotes is the upvote count.
	FieldUpvotes NumericField = "upvotes"
	// FieldDownvotes is the downvote count.
	FieldDownvotes NumericField = "downvotes"
	// FieldComments is the comment count.
	FieldComments NumericField = "comments"
	// FieldContentLen is the content length in characters.
	FieldContentLen NumericField = "content_len"
)

// Bucket is one histogram bucket. Bounds are floored to integers for
// display; the bucket covers [Lo, Hi), except the last bucket which also
// includes its upper edge.
type Bucket struct {
	Lo    int `json:"lo"`
	Hi    int `json:"hi"`
	Count int `json:"count"`
}

// Histogram divides the field values of posts into bins equal-width
// buckets. Every value lands in exactly one bucket, so the counts sum to
// len(posts). When all values are equal a single width-1 bucket holds the
// full count. An empty subset yields nil.
func Histogram(posts []domain.Post, field NumericField, bins int) []Bucket {
	if len(posts) == 0 || bins <= 0 {
		return nil
	}

	lo, hi := fieldValue(posts[0], field), fieldValue(posts[0], field)
	for _, p := range posts[1:] {
		v := fieldValue(p, field)
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	if lo == hi {
		return []Bucket{{Lo: lo, Hi: lo + 1, Count: len(posts)}}
	}

	width := float64(hi-lo) / float64(bins)
	buckets := make([]Bucket, bins)
	for i := range buckets {
		buckets[i].Lo = int(math.Floor(float64(lo) + float64(i)*width))
		buckets[i].Hi = int(math.Floor(float64(lo) + float64(i+1)*width))
	}

	for _, p := range posts {
		v := fieldValue(p, field)
		idx := int(float64(v-lo) / width)
		if idx >= bins {
			// upper edge belongs to the last bucket
			idx = bins - 1
		}
		buckets[idx].Count++
	}
	return buckets
}

func fieldValue(p domain.Post, field NumericField) int {
	switch field {
	case FieldDownvotes:
		return p.Downvotes
	case FieldComments:
		return p.CommentCount
	case FieldContentLen:
		return p.ContentLen
	default:
		return p.Upvotes
	}
}
