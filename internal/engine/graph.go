package engine

import (
	"sort"

	"github.com/moltscope/moltscope/internal/domain"
)

// Node kinds exposed on graph nodes.
const (
	NodeTag     = "tag"
	NodeAuthor  = "author"
	NodeSubmolt = "submolt"
)

// MaxBridgeAuthors caps the bipartite graph to the strongest bridge authors.
const MaxBridgeAuthors = 20

// GraphNode is one node of a relationship graph. Weight is exposed for
// downstream sizing; positioning is the renderer's concern.
type GraphNode struct {
	ID     string `json:"id"`
	Kind   string `json:"kind"`
	Weight int    `json:"weight"`
}

// GraphEdge is one weighted edge. Normalized is the edge weight as a
// percentage of the heavier endpoint's total incident weight, in (0, 100].
type GraphEdge struct {
	Source     string  `json:"source"`
	Target     string  `json:"target"`
	Weight     int     `json:"weight"`
	Normalized float64 `json:"normalized"`
}

// Graph is a set of nodes and surviving edges.
type Graph struct {
	Nodes []GraphNode `json:"nodes"`
	Edges []GraphEdge `json:"edges"`
}

// TagGraph builds the tag co-occurrence graph from the precomputed edge
// list. Weights are accumulated in one pass and normalized in a second so
// both stages stay independently testable. Edges whose normalized weight
// falls below threshold (a percentage) are dropped, then nodes left
// without edges.
func TagGraph(edges []domain.TagEdge, threshold float64) Graph {
	nodeWeight := make(map[string]int)
	for _, e := range edges {
		nodeWeight[e.TagA] += e.Weight
		nodeWeight[e.TagB] += e.Weight
	}

	var kept []GraphEdge
	for _, e := range edges {
		if e.Weight <= 0 {
			continue
		}
		heavier := nodeWeight[e.TagA]
		if nodeWeight[e.TagB] > heavier {
			heavier = nodeWeight[e.TagB]
		}
		norm := float64(e.Weight) / float64(heavier) * 100
		if norm < threshold {
			continue
		}
		kept = append(kept, GraphEdge{Source: e.TagA, Target: e.TagB, Weight: e.Weight, Normalized: norm})
	}

	return Graph{
		Nodes: survivingNodes(kept, NodeTag, nodeWeight),
		Edges: kept,
	}
}

// BridgeGraph builds the bipartite author-community graph from a filtered
// post subset. Authors posting in two or more distinct communities qualify
// as bridge authors; the MaxBridgeAuthors strongest (by distinct community
// count) are kept. Edge weight is the post count of the (author, community)
// pair, normalized against the maximum pair count.
func BridgeGraph(posts []domain.Post, threshold float64) Graph {
	pairCounts := make(map[string]map[string]int)
	authorOrder := make([]string, 0)
	for _, p := range posts {
		if pairCounts[p.AuthorName] == nil {
			pairCounts[p.AuthorName] = make(map[string]int)
			authorOrder = append(authorOrder, p.AuthorName)
		}
		pairCounts[p.AuthorName][p.SubmoltName]++
	}

	bridges := make([]string, 0)
	for _, a := range authorOrder {
		if len(pairCounts[a]) >= 2 {
			bridges = append(bridges, a)
		}
	}
	sort.SliceStable(bridges, func(i, j int) bool {
		return len(pairCounts[bridges[i]]) > len(pairCounts[bridges[j]])
	})
	if len(bridges) > MaxBridgeAuthors {
		bridges = bridges[:MaxBridgeAuthors]
	}

	maxPair := 0
	for _, a := range bridges {
		for _, count := range pairCounts[a] {
			if count > maxPair {
				maxPair = count
			}
		}
	}
	if maxPair == 0 {
		return Graph{}
	}

	nodeWeight := make(map[string]int)
	var kept []GraphEdge
	for _, a := range bridges {
		communities := make([]string, 0, len(pairCounts[a]))
		for name := range pairCounts[a] {
			communities = append(communities, name)
		}
		sort.Strings(communities)

		for _, name := range communities {
			count := pairCounts[a][name]
			norm := float64(count) / float64(maxPair) * 100
			if norm < threshold {
				continue
			}
			kept = append(kept, GraphEdge{Source: a, Target: name, Weight: count, Normalized: norm})
			nodeWeight[a] += count
			nodeWeight[name] += count
		}
	}

	nodes := make([]GraphNode, 0)
	seen := make(map[string]bool)
	for _, a := range bridges {
		if nodeWeight[a] > 0 && !seen[a] {
			seen[a] = true
			nodes = append(nodes, GraphNode{ID: a, Kind: NodeAuthor, Weight: nodeWeight[a]})
		}
	}
	for _, e := range kept {
		if !seen[e.Target] {
			seen[e.Target] = true
			nodes = append(nodes, GraphNode{ID: e.Target, Kind: NodeSubmolt, Weight: nodeWeight[e.Target]})
		}
	}

	return Graph{Nodes: nodes, Edges: kept}
}

// survivingNodes collects the endpoints of the kept edges, in first
// appearance order, carrying their accumulated incident weight.
func survivingNodes(edges []GraphEdge, kind string, weight map[string]int) []GraphNode {
	var nodes []GraphNode
	seen := make(map[string]bool)
	for _, e := range edges {
		for _, id := range []string{e.Source, e.Target} {
			if !seen[id] {
				seen[id] = true
				nodes = append(nodes, GraphNode{ID: id, Kind: kind, Weight: weight[id]})
			}
		}
	}
	return nodes
}
