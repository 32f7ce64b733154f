// Package engine implements the analytical queries over a corpus snapshot.
// Every function is a pure, read-only computation over the immutable index
// and an optionally pre-filtered post subset; callers may run them
// concurrently without locking.
package engine

import (
	"strings"

	"github.com/moltscope/moltscope/internal/corpus"
	"github.com/moltscope/moltscope/internal/domain"
)

// Filter returns the posts matching all active predicates of spec, in
// original corpus order. Predicates are AND-combined; list predicates are
// OR-combined within themselves. An empty spec returns the full corpus;
// contradictory predicates legitimately return an empty slice.
func Filter(snap *corpus.Snapshot, spec domain.FilterSpec) []domain.Post {
	if spec.IsEmpty() {
		return snap.Posts
	}

	submolts := toSet(spec.Submolts)
	authors := toSet(spec.Authors)
	tags := toSet(spec.Tags)
	notes := toSet(spec.ClassNotes)
	ids := toSet(spec.PostIDs)
	search := strings.ToLower(strings.TrimSpace(spec.Search))

	matched := make([]domain.Post, 0, len(snap.Posts))
	for _, p := range snap.Posts {
		if len(submolts) > 0 && !submolts[p.SubmoltName] {
			continue
		}
		if len(authors) > 0 && !authors[p.AuthorName] {
			continue
		}
		if len(tags) > 0 && !hasAnyTag(snap, p.PostID, tags) {
			continue
		}
		if len(notes) > 0 && !hasAnyNote(snap, p.PostID, notes) {
			continue
		}
		if spec.MinUpvotes > 0 && p.Upvotes < spec.MinUpvotes {
			continue
		}
		if spec.MinComments > 0 && p.CommentCount < spec.MinComments {
			continue
		}
		if search != "" && !matchesSearch(p, search) {
			continue
		}
		if len(ids) > 0 && !ids[p.PostID] {
			continue
		}
		matched = append(matched, p)
	}
	return matched
}

func hasAnyTag(snap *corpus.Snapshot, postID string, wanted map[string]bool) bool {
	for _, t := range snap.TagsFor(postID) {
		if wanted[t.Tag] {
			return true
		}
	}
	return false
}

func hasAnyNote(snap *corpus.Snapshot, postID string, wanted map[string]bool) bool {
	for _, n := range snap.NotesFor(postID) {
		if wanted[n.ClassNote] {
			return true
		}
	}
	return false
}

// matchesSearch reports a case-insensitive substring match against title,
// content, or author name. search must already be lowercased.
func matchesSearch(p domain.Post, search string) bool {
	return strings.Contains(strings.ToLower(p.Title), search) ||
		strings.Contains(strings.ToLower(p.Content), search) ||
		strings.Contains(strings.ToLower(p.AuthorName), search)
}

func toSet(items []string) map[string]bool {
	if len(items) == 0 {
		return nil
	}
	set := make(map[string]bool, len(items))
	for _, item := range items {
		set[item] = true
	}
	return set
}
