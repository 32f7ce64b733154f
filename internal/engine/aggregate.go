package engine

import (
	"sort"
	"strings"

	"github.com/moltscope/moltscope/internal/corpus"
	"github.com/moltscope/moltscope/internal/domain"
)

// RankedItem is one entry of a ranked count.
type RankedItem struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
	Label string `json:"label"`
}

// TagGroup is one namespace bucket of GroupedTags.
type TagGroup struct {
	Namespace string       `json:"namespace"`
	Items     []RankedItem `json:"items"`
}

// OtherNamespace is the bucket for tags without a namespace delimiter.
const OtherNamespace = "other"

// TopItems counts distinct keyFn values across posts and returns the limit
// highest counts, descending. Ties keep first-encountered order. labelFn
// may be nil, in which case the key doubles as the label.
func TopItems(posts []domain.Post, keyFn func(domain.Post) string, limit int, labelFn func(domain.Post) string) []RankedItem {
	counts := make(map[string]int)
	labels := make(map[string]string)
	order := make([]string, 0)

	for _, p := range posts {
		key := keyFn(p)
		if _, seen := counts[key]; !seen {
			order = append(order, key)
			if labelFn != nil {
				labels[key] = labelFn(p)
			} else {
				labels[key] = key
			}
		}
		counts[key]++
	}

	return rank(order, counts, labels, limit)
}

// TopSubmolts ranks communities by post count over the subset.
func TopSubmolts(posts []domain.Post, limit int) []RankedItem {
	return TopItems(posts,
		func(p domain.Post) string { return p.SubmoltName },
		limit,
		func(p domain.Post) string { return p.SubmoltDisplayName },
	)
}

// TopAuthors ranks authors by post count over the subset.
func TopAuthors(posts []domain.Post, limit int) []RankedItem {
	return TopItems(posts, func(p domain.Post) string { return p.AuthorName }, limit, nil)
}

// TopTags ranks tags by occurrence over the subset. A post with three tags
// contributes to three counters.
func TopTags(snap *corpus.Snapshot, posts []domain.Post, limit int) []RankedItem {
	return topMulti(posts, limit, func(p domain.Post) []string {
		tags := snap.TagsFor(p.PostID)
		values := make([]string, len(tags))
		for i, t := range tags {
			values[i] = t.Tag
		}
		return values
	})
}

// TopClassNotes ranks classification notes by occurrence over the subset.
func TopClassNotes(snap *corpus.Snapshot, posts []domain.Post, limit int) []RankedItem {
	return topMulti(posts, limit, func(p domain.Post) []string {
		notes := snap.NotesFor(p.PostID)
		values := make([]string, len(notes))
		for i, n := range notes {
			values[i] = n.ClassNote
		}
		return values
	})
}

func topMulti(posts []domain.Post, limit int, valuesFn func(domain.Post) []string) []RankedItem {
	counts := make(map[string]int)
	order := make([]string, 0)

	for _, p := range posts {
		for _, v := range valuesFn(p) {
			if _, seen := counts[v]; !seen {
				order = append(order, v)
			}
			counts[v]++
		}
	}

	return rank(order, counts, nil, limit)
}

// GroupedTags partitions the distinct tags of the subset by namespace
// prefix (the substring before the first ":", or OtherNamespace when no
// delimiter is present). Buckets are ordered by prefix, items within a
// bucket by count descending.
func GroupedTags(snap *corpus.Snapshot, posts []domain.Post) []TagGroup {
	counts := make(map[string]int)
	order := make([]string, 0)
	for _, p := range posts {
		for _, t := range snap.TagsFor(p.PostID) {
			if _, seen := counts[t.Tag]; !seen {
				order = append(order, t.Tag)
			}
			counts[t.Tag]++
		}
	}

	buckets := make(map[string][]string)
	prefixes := make([]string, 0)
	for _, tag := range order {
		ns := OtherNamespace
		if i := strings.Index(tag, ":"); i >= 0 {
			ns = tag[:i]
		}
		if _, seen := buckets[ns]; !seen {
			prefixes = append(prefixes, ns)
		}
		buckets[ns] = append(buckets[ns], tag)
	}
	sort.Strings(prefixes)

	groups := make([]TagGroup, 0, len(prefixes))
	for _, ns := range prefixes {
		groups = append(groups, TagGroup{
			Namespace: ns,
			Items:     rank(buckets[ns], counts, nil, 0),
		})
	}
	return groups
}

// rank sorts keys by count descending, stable on first-encountered order,
// and truncates to limit (0 = unlimited). labels may be nil.
func rank(order []string, counts map[string]int, labels map[string]string, limit int) []RankedItem {
	items := make([]RankedItem, 0, len(order))
	for _, key := range order {
		label := key
		if labels != nil {
			label = labels[key]
		}
		items = append(items, RankedItem{Key: key, Count: counts[key], Label: label})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Count > items[j].Count
	})

	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items
}
