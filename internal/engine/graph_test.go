package engine

import (
	"fmt"
	"testing"

	"github.com/moltscope/moltscope/internal/domain"
)

func testEdges() []domain.TagEdge {
	return []domain.TagEdge{
		{TagA: "go", TagB: "db", Weight: 8},
		{TagA: "go", TagB: "web", Weight: 2},
		{TagA: "db", TagB: "web", Weight: 1},
	}
}

func TestTagGraph_NodeWeights(t *testing.T) {
	g := TagGraph(testEdges(), 0)

	// go=10, db=9, web=3
	want := map[string]int{"go": 10, "db": 9, "web": 3}
	if len(g.Nodes) != 3 {
		t.Fatalf("expected 3 nodes, got %d", len(g.Nodes))
	}
	for _, n := range g.Nodes {
		if n.Weight != want[n.ID] {
			t.Errorf("node %s weight = %d, want %d", n.ID, n.Weight, want[n.ID])
		}
		if n.Kind != NodeTag {
			t.Errorf("node %s kind = %s, want %s", n.ID, n.Kind, NodeTag)
		}
	}
}

func TestTagGraph_NormalizationRange(t *testing.T) {
	g := TagGraph(testEdges(), 0)

	if len(g.Edges) != 3 {
		t.Fatalf("threshold 0 must keep every positive edge, got %d", len(g.Edges))
	}
	for _, e := range g.Edges {
		if e.Normalized <= 0 || e.Normalized > 100 {
			t.Errorf("edge %s-%s normalized = %f, want (0,100]", e.Source, e.Target, e.Normalized)
		}
	}

	// go-db: 8 / max(10,9) * 100 = 80
	if g.Edges[0].Normalized != 80 {
		t.Errorf("go-db normalized = %f, want 80", g.Edges[0].Normalized)
	}
}

func TestTagGraph_ThresholdDropsEdgesAndOrphans(t *testing.T) {
	// normalized weights: go-db 80, go-web 20, db-web 11.1..
	g := TagGraph(testEdges(), 50)
	if len(g.Edges) != 1 {
		t.Fatalf("expected 1 surviving edge, got %d", len(g.Edges))
	}
	if len(g.Nodes) != 2 {
		t.Fatalf("expected orphan web dropped, got %d nodes", len(g.Nodes))
	}

	if g := TagGraph(testEdges(), 101); len(g.Edges) != 0 || len(g.Nodes) != 0 {
		t.Fatal("threshold above 100 must drop everything")
	}
}

func TestTagGraph_SkipsZeroWeightEdges(t *testing.T) {
	edges := []domain.TagEdge{{TagA: "a", TagB: "b", Weight: 0}}
	if g := TagGraph(edges, 0); len(g.Edges) != 0 {
		t.Fatalf("expected zero-weight edge skipped, got %+v", g.Edges)
	}
}

func TestBridgeGraph_QualifiesBridgeAuthors(t *testing.T) {
	posts := []domain.Post{
		post("p1", "alice", "m1", 0, 0),
		post("p2", "alice", "m2", 0, 0),
		post("p3", "alice", "m2", 0, 0),
		post("p4", "bob", "m1", 0, 0), // single community, not a bridge
		post("p5", "carol", "m1", 0, 0),
		post("p6", "carol", "m3", 0, 0),
	}

	g := BridgeGraph(posts, 0)

	authors := make(map[string]bool)
	for _, n := range g.Nodes {
		if n.Kind == NodeAuthor {
			authors[n.ID] = true
		}
	}
	if len(authors) != 2 || !authors["alice"] || !authors["carol"] {
		t.Fatalf("expected bridge authors {alice carol}, got %v", authors)
	}

	// max pair count is alice-m2 = 2; its edge normalizes to 100
	for _, e := range g.Edges {
		if e.Source == "alice" && e.Target == "m2" {
			if e.Weight != 2 || e.Normalized != 100 {
				t.Errorf("alice-m2 = weight %d norm %f, want 2/100", e.Weight, e.Normalized)
			}
		}
		if e.Normalized <= 0 || e.Normalized > 100 {
			t.Errorf("edge %s-%s normalized out of range: %f", e.Source, e.Target, e.Normalized)
		}
	}
}

func TestBridgeGraph_Threshold(t *testing.T) {
	posts := []domain.Post{
		post("p1", "alice", "m1", 0, 0),
		post("p2", "alice", "m2", 0, 0),
		post("p3", "alice", "m2", 0, 0),
	}

	// pair counts: m1=1 (norm 50), m2=2 (norm 100)
	g := BridgeGraph(posts, 60)
	if len(g.Edges) != 1 || g.Edges[0].Target != "m2" {
		t.Fatalf("expected only the m2 edge to survive, got %+v", g.Edges)
	}
}

func TestBridgeGraph_CapsAuthors(t *testing.T) {
	var posts []domain.Post
	for i := 0; i < MaxBridgeAuthors+5; i++ {
		author := fmt.Sprintf("author%02d", i)
		posts = append(posts,
			domain.Post{PostID: fmt.Sprintf("a%d", i), AuthorName: author, SubmoltName: "m1"},
			domain.Post{PostID: fmt.Sprintf("b%d", i), AuthorName: author, SubmoltName: "m2"},
		)
	}

	g := BridgeGraph(posts, 0)
	authorCount := 0
	for _, n := range g.Nodes {
		if n.Kind == NodeAuthor {
			authorCount++
		}
	}
	if authorCount != MaxBridgeAuthors {
		t.Fatalf("expected %d bridge authors, got %d", MaxBridgeAuthors, authorCount)
	}
}

func TestBridgeGraph_EmptySubset(t *testing.T) {
	g := BridgeGraph(nil, 0)
	if len(g.Nodes) != 0 || len(g.Edges) != 0 {
		t.Fatalf("expected empty graph, got %+v", g)
	}
}
