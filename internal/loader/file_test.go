package loader

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/moltscope/moltscope/internal/domain"
)

func writeSeq(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name+".json"), []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestFileSource_LoadsAllSequences(t *testing.T) {
	dir := t.TempDir()
	writeSeq(t, dir, "posts", `[{"post_id":"p1","author_name":"alice","submolt_name":"m1","upvotes":5}]`)
	writeSeq(t, dir, "submolts", `[{"submolt_name":"m1","display_name":"Molt One"}]`)
	writeSeq(t, dir, "post_tags", `[{"post_id":"p1","tag":"lang:go","tag_namespace":"lang"}]`)
	writeSeq(t, dir, "tag_edges", `[{"tag_a":"go","tag_b":"db","weight":3}]`)
	writeSeq(t, dir, "post_umap", `[{"post_id":"p1","x":0.5,"y":-1.5}]`)

	rec, err := NewFileSource(dir).Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(rec.Posts) != 1 || rec.Posts[0].PostID != "p1" || rec.Posts[0].Upvotes != 5 {
		t.Errorf("posts not decoded: %+v", rec.Posts)
	}
	if len(rec.Communities) != 1 || rec.Communities[0].DisplayName != "Molt One" {
		t.Errorf("communities not decoded: %+v", rec.Communities)
	}
	if len(rec.TagEdges) != 1 || rec.TagEdges[0].Weight != 3 {
		t.Errorf("tag edges not decoded: %+v", rec.TagEdges)
	}
	if len(rec.Embeddings) != 1 || rec.Embeddings[0].Y != -1.5 {
		t.Errorf("embeddings not decoded: %+v", rec.Embeddings)
	}

	// class_notes.json and submolt_umap.json are absent: empty, no error
	if len(rec.ClassNotes) != 0 || len(rec.CommunityProjections) != 0 {
		t.Errorf("missing auxiliary sequences must load empty")
	}
}

func TestFileSource_MissingPostsFails(t *testing.T) {
	dir := t.TempDir()
	writeSeq(t, dir, "submolts", `[]`)

	if _, err := NewFileSource(dir).Load(context.Background()); err == nil {
		t.Fatal("expected error when posts.json is missing")
	}
}

func TestFileSource_MalformedSequenceFailsFast(t *testing.T) {
	dir := t.TempDir()
	writeSeq(t, dir, "posts", `{"not":"an array"}`)
	writeSeq(t, dir, "submolts", `[]`)

	_, err := NewFileSource(dir).Load(context.Background())
	if !errors.Is(err, domain.ErrMalformedRecords) {
		t.Fatalf("expected ErrMalformedRecords, got %v", err)
	}
}
