package depindex

import (
	"sort"

	"github.com/specialistvlad/rpngrid/internal/cellref"
)

// Edge is a dependent of some target together with the number of times the
// dependent's formula references that target.
type Edge struct {
	Dependent cellref.Coord
	Count     int
}

// Index maps a referenced coordinate to its dependents.
type Index struct {
	edges map[cellref.Coord]map[cellref.Coord]int // Key: target, Value: dependent -> multiplicity
	total int
}

// New creates a new, empty index.
func New() *Index {
	return &Index{
		edges: make(map[cellref.Coord]map[cellref.Coord]int),
	}
}

// Add records that dependent references target once more.
func (ix *Index) Add(target, dependent cellref.Coord) {
	deps, ok := ix.edges[target]
	if !ok {
		deps = make(map[cellref.Coord]int)
		ix.edges[target] = deps
	}
	deps[dependent]++
	ix.total++
}

// Dependents returns the cells that reference target, ordered row-major.
func (ix *Index) Dependents(target cellref.Coord) []Edge {
	deps, ok := ix.edges[target]
	if !ok {
		return nil
	}

	out := make([]Edge, 0, len(deps))
	for dep, n := range deps {
		out = append(out, Edge{Dependent: dep, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Dependent.Less(out[j].Dependent)
	})
	return out
}

// HasDependents reports whether any cell references target.
func (ix *Index) HasDependents(target cellref.Coord) bool {
	return len(ix.edges[target]) > 0
}

// Len returns the number of distinct referenced coordinates.
func (ix *Index) Len() int {
	return len(ix.edges)
}

// EdgeCount returns the number of reference mentions recorded.
func (ix *Index) EdgeCount() int {
	return ix.total
}
