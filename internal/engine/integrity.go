package engine

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/moltscope/moltscope/internal/domain"
)

// Fixed data-quality thresholds.
// TODO(config): expose these via config if integrity checks ever need tuning per corpus.
const (
	// MinDuplicateTitleLen skips grouping on blank or trivial titles.
	MinDuplicateTitleLen = 10
	// MaxDuplicateGroups caps the duplicate report.
	MaxDuplicateGroups = 20

	highUpvoteScan  = 10
	highUpvoteMin   = 10
	longContentScan = 5
	longContentMin  = 5000
)

// Outlier reasons.
const (
	ReasonHighUpvotes = "High Upvotes"
	ReasonLongContent = "Long Content"
)

// DuplicateGroup is a set of posts sharing a normalized title.
type DuplicateGroup struct {
	Title string        `json:"title"`
	Posts []domain.Post `json:"posts"`
}

// Outlier is a post flagged by an extremal-value scan.
type Outlier struct {
	Post   domain.Post `json:"post"`
	Reason string      `json:"reason"`
}

// Duplicates groups posts by trimmed, case-folded title. Titles shorter
// than MinDuplicateTitleLen characters are ignored, as are groups with a
// single member. Groups come back largest first, capped to
// MaxDuplicateGroups.
func Duplicates(posts []domain.Post) []DuplicateGroup {
	byTitle := make(map[string][]domain.Post)
	order := make([]string, 0)
	for _, p := range posts {
		key := strings.ToLower(strings.TrimSpace(p.Title))
		if utf8.RuneCountInString(key) < MinDuplicateTitleLen {
			continue
		}
		if _, seen := byTitle[key]; !seen {
			order = append(order, key)
		}
		byTitle[key] = append(byTitle[key], p)
	}

	groups := make([]DuplicateGroup, 0)
	for _, key := range order {
		if len(byTitle[key]) > 1 {
			groups = append(groups, DuplicateGroup{Title: key, Posts: byTitle[key]})
		}
	}
	sort.SliceStable(groups, func(i, j int) bool {
		return len(groups[i].Posts) > len(groups[j].Posts)
	})
	if len(groups) > MaxDuplicateGroups {
		groups = groups[:MaxDuplicateGroups]
	}
	return groups
}

// Outliers runs two independent fixed-threshold scans: the top posts by
// upvotes exceeding the upvote floor, then the top posts by content length
// exceeding the length floor. Integrity checks assess the whole dataset,
// so callers normally pass the full corpus rather than a filtered subset.
func Outliers(posts []domain.Post) []Outlier {
	var outliers []Outlier

	byUpvotes := SortPosts(posts, SortByUpvotes, true)
	if len(byUpvotes) > highUpvoteScan {
		byUpvotes = byUpvotes[:highUpvoteScan]
	}
	for _, p := range byUpvotes {
		if p.Upvotes > highUpvoteMin {
			outliers = append(outliers, Outlier{Post: p, Reason: ReasonHighUpvotes})
		}
	}

	byLength := SortPosts(posts, SortByContentLen, true)
	if len(byLength) > longContentScan {
		byLength = byLength[:longContentScan]
	}
	for _, p := range byLength {
		if p.ContentLen > longContentMin {
			outliers = append(outliers, Outlier{Post: p, Reason: ReasonLongContent})
		}
	}

	return outliers
}
