// Package graph builds and renders AUR dependency graphs.
//
// A graph is assembled by walking AUR metadata breadth-first from a set of
// root packages. Dependencies that are not themselves AUR packages appear
// as leaf nodes so the rendered picture shows the full closure, with the
// repo-provided parts clearly at the edge.
package graph

import (
	"context"
	"sort"

	"github.com/aurum-pm/aurum/pkg/engine"
	"github.com/aurum-pm/aurum/pkg/errors"
)

// DefaultMaxDepth bounds the breadth-first walk when no explicit depth is given.
const DefaultMaxDepth = 10

// Node is a single package in the dependency graph.
type Node struct {
	Name    string `json:"name"`
	Version string `json:"version,omitempty"`
	// Remote is true when the package has an AUR record. Leaf
	// dependencies satisfied by the official repos are not remote.
	Remote bool `json:"remote"`
}

// Edge is a directed dependency: From requires To.
type Edge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Graph is a node-link dependency graph rooted at one or more packages.
type Graph struct {
	Roots []string `json:"roots"`
	Nodes []Node   `json:"nodes"`
	Edges []Edge   `json:"edges"`
}

// Options configures graph construction.
type Options struct {
	// MaxDepth limits how far the walk descends from the roots.
	// Zero means DefaultMaxDepth.
	MaxDepth int
	// Refresh bypasses cached metadata lookups.
	Refresh bool
}

// Build walks AUR metadata from the named roots and returns the dependency
// graph. Roots that do not exist in the AUR fail the build; transitive
// dependencies without an AUR record become non-remote leaf nodes.
func Build(ctx context.Context, client engine.MetadataClient, names []string, opts Options) (*Graph, error) {
	maxDepth := opts.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}

	g := &Graph{}
	nodes := map[string]Node{}
	seen := map[string]bool{}
	seenEdge := map[Edge]bool{}

	type item struct {
		name  string
		depth int
	}
	var queue []item
	for _, name := range names {
		name = engine.Ref(name).Name()
		g.Roots = append(g.Roots, name)
		queue = append(queue, item{name: name})
	}

	for len(queue) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		cur := queue[0]
		queue = queue[1:]
		if seen[cur.name] {
			continue
		}
		seen[cur.name] = true

		pkg, err := client.Info(ctx, cur.name, opts.Refresh)
		if err != nil {
			if errors.Is(err, errors.ErrCodePackageNotFound) {
				if cur.depth == 0 {
					return nil, err
				}
				nodes[cur.name] = Node{Name: cur.name}
				continue
			}
			return nil, err
		}

		nodes[cur.name] = Node{Name: cur.name, Version: pkg.Version, Remote: true}
		if cur.depth >= maxDepth {
			continue
		}
		for _, dep := range pkg.AllDepends() {
			depName := engine.Ref(dep).Name()
			e := Edge{From: cur.name, To: depName}
			if !seenEdge[e] {
				seenEdge[e] = true
				g.Edges = append(g.Edges, e)
			}
			queue = append(queue, item{name: depName, depth: cur.depth + 1})
		}
	}

	for _, name := range sortedKeys(nodes) {
		g.Nodes = append(g.Nodes, nodes[name])
	}
	return g, nil
}

func sortedKeys(m map[string]Node) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
