// Package domain holds the corpus record types and the filter specification
// shared by every layer of moltscope.
package domain

// Post is a single submission in the corpus.
type Post struct {
	PostID             string `json:"post_id"`
	Title              string `json:"title"`
	Content            string `json:"content"`
	ContentLen         int    `json:"content_len"`
	AuthorID           string `json:"author_id"`
	AuthorName         string `json:"author_name"`
	SubmoltName        string `json:"submolt_name"`
	SubmoltDisplayName string `json:"submolt_display_name"`
	Upvotes            int    `json:"upvotes"`
	Downvotes          int    `json:"downvotes"`
	CommentCount       int    `json:"comment_count"`
	CreatedAt          string `json:"created_at"` // lexically sortable timestamp
	IsEmptyTitle       bool   `json:"is_empty_title"`
}

// Community is a submolt record.
type Community struct {
	SubmoltName     string `json:"submolt_name"`
	DisplayName     string `json:"display_name"`
	Description     string `json:"description"`
	SubscriberCount int    `json:"subscriber_count"`
}

// Tag is one tag attached to a post. A post may carry any number of tags.
// Tag values are optionally namespaced as "namespace:value".
type Tag struct {
	PostID       string `json:"post_id"`
	Tag          string `json:"tag"`
	TagNamespace string `json:"tag_namespace"`
}

// ClassNote is a classification label attached to a post.
type ClassNote struct {
	PostID    string `json:"post_id"`
	ClassNote string `json:"class_note"`
}

// TagEdge is a precomputed co-occurrence count between two tags.
// The pair is unordered.
type TagEdge struct {
	TagA   string `json:"tag_a"`
	TagB   string `json:"tag_b"`
	Weight int    `json:"weight"`
}

// Embedding is the 2-D projection of a post. Posts without an embedding
// are simply absent from similarity and spatial queries.
type Embedding struct {
	PostID string  `json:"post_id"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
}

// CommunityProjection is the 2-D projection of a community.
type CommunityProjection struct {
	SubmoltName string  `json:"submolt_name"`
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
}
