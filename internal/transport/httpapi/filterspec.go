package httpapi

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/moltscope/moltscope/internal/domain"
)

// Compact filter spec keys, shared with clients that persist selections in
// URLs. Only non-default fields are ever encoded.
const (
	keySubmolts    = "s"
	keyAuthors     = "a"
	keyTags        = "t"
	keyClassNotes  = "n"
	keyMinUpvotes  = "u"
	keyMinComments = "c"
	keySearch      = "q"
	keyPostIDs     = "p"
)

// DecodeFilterSpec builds a FilterSpec from query parameters. Unknown or
// malformed numeric values behave as "predicate not active" rather than
// erroring; the engine treats the spec as a plain value.
func DecodeFilterSpec(values url.Values) domain.FilterSpec {
	spec := domain.FilterSpec{
		Submolts:   splitList(values.Get(keySubmolts)),
		Authors:    splitList(values.Get(keyAuthors)),
		Tags:       splitList(values.Get(keyTags)),
		ClassNotes: splitList(values.Get(keyClassNotes)),
		Search:     values.Get(keySearch),
		PostIDs:    splitList(values.Get(keyPostIDs)),
	}
	if v, err := strconv.Atoi(values.Get(keyMinUpvotes)); err == nil && v > 0 {
		spec.MinUpvotes = v
	}
	if v, err := strconv.Atoi(values.Get(keyMinComments)); err == nil && v > 0 {
		spec.MinComments = v
	}
	return spec
}

// EncodeFilterSpec serializes only the non-default fields of a spec using
// the compact keys. Decode(Encode(spec)) round-trips the spec.
func EncodeFilterSpec(spec domain.FilterSpec) url.Values {
	values := url.Values{}
	setList(values, keySubmolts, spec.Submolts)
	setList(values, keyAuthors, spec.Authors)
	setList(values, keyTags, spec.Tags)
	setList(values, keyClassNotes, spec.ClassNotes)
	if spec.MinUpvotes > 0 {
		values.Set(keyMinUpvotes, strconv.Itoa(spec.MinUpvotes))
	}
	if spec.MinComments > 0 {
		values.Set(keyMinComments, strconv.Itoa(spec.MinComments))
	}
	if spec.Search != "" {
		values.Set(keySearch, spec.Search)
	}
	setList(values, keyPostIDs, spec.PostIDs)
	return values
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	items := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			items = append(items, p)
		}
	}
	if len(items) == 0 {
		return nil
	}
	return items
}

func setList(values url.Values, key string, items []string) {
	if len(items) > 0 {
		values.Set(key, strings.Join(items, ","))
	}
}
