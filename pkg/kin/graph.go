// Package kin builds a relationship graph over resolved individuals and
// answers parent/child/spouse/sibling and bounded ancestry queries.
package kin

import (
	"errors"
	"fmt"

	"github.com/lineagelabs/gedtree/pkg/gedcom"
)

// ErrUnknownIndividual is returned when a query names an id that is not a
// node in the graph. This signals caller misuse, not bad input data.
var ErrUnknownIndividual = errors.New("unknown individual id")

// edge links two individuals via the family that relates them.
type edge struct {
	id     string
	family string
}

// Graph is a read-only relationship graph built once per document.
// Edges are parent->child and spouse<->spouse, each tagged with the
// family id they came from.
type Graph struct {
	nodes    map[string]bool
	parents  map[string][]edge // child -> parents
	children map[string][]edge // parent -> children, family child order
	spouses  map[string][]edge

	parentFamilies map[string][]string // child -> family ids
	familyChildren map[string][]string // family -> children, input order deduped
}

// Build constructs the relationship graph from a resolved document.
// The resolver has already replaced dangling references with defects, so
// every family link points at a known individual. Duplicate child ids
// within a family collapse to a single edge.
func Build(doc *gedcom.Document) *Graph {
	g := &Graph{
		nodes:          make(map[string]bool, len(doc.Individuals)),
		parents:        make(map[string][]edge),
		children:       make(map[string][]edge),
		spouses:        make(map[string][]edge),
		parentFamilies: make(map[string][]string),
		familyChildren: make(map[string][]string),
	}

	for _, id := range doc.IndividualOrder {
		g.nodes[id] = true
	}

	for _, famID := range doc.FamilyOrder {
		fam := doc.Families[famID]
		spouseIDs := fam.SpouseIDs()

		if len(spouseIDs) == 2 {
			g.spouses[spouseIDs[0]] = append(g.spouses[spouseIDs[0]], edge{spouseIDs[1], famID})
			g.spouses[spouseIDs[1]] = append(g.spouses[spouseIDs[1]], edge{spouseIDs[0], famID})
		}

		seen := make(map[string]bool, len(fam.ChildIDs))
		for _, childID := range fam.ChildIDs {
			if seen[childID] {
				continue
			}
			seen[childID] = true

			g.familyChildren[famID] = append(g.familyChildren[famID], childID)
			g.parentFamilies[childID] = append(g.parentFamilies[childID], famID)
			for _, parentID := range spouseIDs {
				g.children[parentID] = append(g.children[parentID], edge{childID, famID})
				g.parents[childID] = append(g.parents[childID], edge{parentID, famID})
			}
		}
	}

	return g
}

// NodeCount returns the number of individuals in the graph.
func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

// Has reports whether the id is a node in the graph.
func (g *Graph) Has(id string) bool {
	return g.nodes[id]
}

func (g *Graph) check(id string) error {
	if !g.nodes[id] {
		return fmt.Errorf("%w: %q", ErrUnknownIndividual, id)
	}
	return nil
}

// ParentsOf returns the parents of an individual, deduplicated, in the
// order their families appear in the document.
func (g *Graph) ParentsOf(id string) ([]string, error) {
	if err := g.check(id); err != nil {
		return nil, err
	}
	return uniqueIDs(g.parents[id]), nil
}

// ChildrenOf returns the children of an individual. Within each family
// the original input order is preserved.
func (g *Graph) ChildrenOf(id string) ([]string, error) {
	if err := g.check(id); err != nil {
		return nil, err
	}
	return uniqueIDs(g.children[id]), nil
}

// SpousesOf returns the spouses of an individual.
func (g *Graph) SpousesOf(id string) ([]string, error) {
	if err := g.check(id); err != nil {
		return nil, err
	}
	return uniqueIDs(g.spouses[id]), nil
}

// SiblingsOf returns individuals sharing at least one parent family with
// the given id, excluding the id itself.
func (g *Graph) SiblingsOf(id string) ([]string, error) {
	if err := g.check(id); err != nil {
		return nil, err
	}

	var siblings []string
	seen := map[string]bool{id: true}
	for _, famID := range g.parentFamilies[id] {
		for _, childID := range g.familyChildren[famID] {
			if !seen[childID] {
				seen[childID] = true
				siblings = append(siblings, childID)
			}
		}
	}
	return siblings, nil
}

// AncestorsOf walks parent edges breadth-first up to maxDepth generations
// and returns the visited ids in traversal order. A visited set stops
// revisited branches, so cyclic ancestry (a person recorded as their own
// forebear) terminates instead of looping.
func (g *Graph) AncestorsOf(id string, maxDepth int) ([]string, error) {
	if err := g.check(id); err != nil {
		return nil, err
	}
	return g.walk(id, maxDepth, g.parents), nil
}

// DescendantsOf walks child edges breadth-first up to maxDepth
// generations, with the same cycle protection as AncestorsOf.
func (g *Graph) DescendantsOf(id string, maxDepth int) ([]string, error) {
	if err := g.check(id); err != nil {
		return nil, err
	}
	return g.walk(id, maxDepth, g.children), nil
}

// ParentEdges returns parent ids paired with the family that links them,
// for callers that need the via-family attribution.
func (g *Graph) ParentEdges(id string) []ParentEdge {
	edges := make([]ParentEdge, 0, len(g.parents[id]))
	for _, e := range g.parents[id] {
		edges = append(edges, ParentEdge{ParentID: e.id, FamilyID: e.family})
	}
	return edges
}

// ParentEdge is a parent->child edge with its family attribution.
type ParentEdge struct {
	ParentID string
	FamilyID string
}

func (g *Graph) walk(start string, maxDepth int, adjacency map[string][]edge) []string {
	visited := map[string]bool{start: true}
	var result []string

	frontier := []string{start}
	for depth := 0; depth < maxDepth && len(frontier) > 0; depth++ {
		var next []string
		for _, id := range frontier {
			for _, e := range adjacency[id] {
				if visited[e.id] {
					continue
				}
				visited[e.id] = true
				result = append(result, e.id)
				next = append(next, e.id)
			}
		}
		frontier = next
	}
	return result
}

func uniqueIDs(edges []edge) []string {
	var ids []string
	seen := make(map[string]bool, len(edges))
	for _, e := range edges {
		if !seen[e.id] {
			seen[e.id] = true
			ids = append(ids, e.id)
		}
	}
	return ids
}
