package engine

import (
	"sort"

	"github.com/moltscope/moltscope/internal/domain"
)

// SortField selects the post field to sort by.
type SortField string

const (
	// SortByCreated orders by the created_at timestamp. The stored format
	// is lexically sortable, so string comparison is used.
	SortByCreated SortField = "created_at"
	// SortByUpvotes orders by upvote count.
	SortByUpvotes SortField = "upvotes"
	// SortByComments orders by comment count.
	SortByComments SortField = "comments"
	// SortByContentLen orders by content length.
	SortByContentLen SortField = "content_len"
)

// SortPosts returns a sorted copy of posts. The input is never reordered;
// direction is a pure parameter. The sort is stable, so equal keys keep
// their relative corpus order.
func SortPosts(posts []domain.Post, field SortField, desc bool) []domain.Post {
	sorted := make([]domain.Post, len(posts))
	copy(sorted, posts)

	less := lessFunc(field)
	sort.SliceStable(sorted, func(i, j int) bool {
		if desc {
			return less(sorted[j], sorted[i])
		}
		return less(sorted[i], sorted[j])
	})
	return sorted
}

func lessFunc(field SortField) func(a, b domain.Post) bool {
	switch field {
	case SortByUpvotes:
		return func(a, b domain.Post) bool { return a.Upvotes < b.Upvotes }
	case SortByComments:
		return func(a, b domain.Post) bool { return a.CommentCount < b.CommentCount }
	case SortByContentLen:
		return func(a, b domain.Post) bool { return a.ContentLen < b.ContentLen }
	default:
		return func(a, b domain.Post) bool { return a.CreatedAt < b.CreatedAt }
	}
}
