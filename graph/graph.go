// Package graph builds the knowledge graph shown for a publication catalog.
//
// Every publication becomes a node identified by its title, and the nodes
// are chained into a ring in catalog order: node i links to node i+1, and
// the last node links back to the first.
package graph

import (
	"github.com/poiesic/pubcat/core"
)

// DefaultGroup is the group assigned to publication nodes.
const DefaultGroup = 1

// Node is a publication in the graph. Id is the publication title.
type Node struct {
	Id    string `json:"id"`
	Group int    `json:"group"`
}

// Link connects two nodes by id.
type Link struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// Graph is an immutable node-link view of a catalog.
type Graph struct {
	Nodes []Node `json:"nodes"`
	Links []Link `json:"links"`

	catalog *core.Catalog
	index   map[string]int // title -> first catalog position
}

// Build creates the ring graph for c.
// Duplicate titles produce duplicate nodes; lookups resolve to the first.
func Build(c *core.Catalog) *Graph {
	n := c.Len()
	g := &Graph{
		Nodes:   make([]Node, 0, n),
		Links:   make([]Link, 0, n),
		catalog: c,
		index:   make(map[string]int, n),
	}

	for i, pub := range c.All() {
		g.Nodes = append(g.Nodes, Node{Id: pub.Title, Group: DefaultGroup})
		if _, seen := g.index[pub.Title]; !seen {
			g.index[pub.Title] = i
		}
	}

	for i := range g.Nodes {
		target := (i + 1) % n
		g.Links = append(g.Links, Link{
			Source: g.Nodes[i].Id,
			Target: g.Nodes[target].Id,
		})
	}

	return g
}

// Node returns the node for a publication title.
func (g *Graph) Node(title string) (Node, bool) {
	i, ok := g.index[title]
	if !ok {
		return Node{}, false
	}
	return g.Nodes[i], true
}

// Publication resolves a node id back to its publication.
func (g *Graph) Publication(nodeID string) (core.Publication, bool) {
	i, ok := g.index[nodeID]
	if !ok {
		return core.Publication{}, false
	}
	return g.catalog.At(i), true
}

// Neighbors returns the ids linked to or from nodeID, without duplicates,
// in link order.
func (g *Graph) Neighbors(nodeID string) []string {
	seen := make(map[string]bool)
	neighbors := make([]string, 0, 2)
	add := func(id string) {
		if !seen[id] {
			seen[id] = true
			neighbors = append(neighbors, id)
		}
	}
	for _, link := range g.Links {
		if link.Source == nodeID {
			add(link.Target)
		}
		if link.Target == nodeID {
			add(link.Source)
		}
	}
	return neighbors
}
