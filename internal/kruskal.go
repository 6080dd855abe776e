package internal

import "sort"

type TreeType int

const (
	Minimum TreeType = iota
	Maximum
)

func (t TreeType) String() string {
	if t == Maximum {
		return "maximum"
	}
	return "minimum"
}

// Disjoint sets over a dense arena of node ids.
type unionFind struct {
	parent []int
	size   []int
}

func (u *unionFind) add() int {
	id := len(u.parent)
	u.parent = append(u.parent, id)
	u.size = append(u.size, 1)
	return id
}

func (u *unionFind) find(id int) int {
	root := id
	for u.parent[root] != root {
		root = u.parent[root]
	}
	// Point everything on the path straight at the root
	for u.parent[id] != root {
		next := u.parent[id]
		u.parent[id] = root
		id = next
	}
	return root
}

// Merge the sets containing a and b. Returns false if they were already one
// set.
func (u *unionFind) union(a, b int) bool {
	rootA, rootB := u.find(a), u.find(b)
	if rootA == rootB {
		return false
	}
	if u.size[rootA] < u.size[rootB] {
		rootA, rootB = rootB, rootA
	}
	u.parent[rootB] = rootA
	u.size[rootA] += u.size[rootB]
	return true
}

// Kruskal's algorithm over segments whose endpoints are graph nodes (equal
// points are the same node). Returns the spanning forest with the smallest
// (Minimum) or largest (Maximum) total length. The input is not modified.
func KruskalTree(segments []LineSegment, treeType TreeType) []LineSegment {
	sorted := append([]LineSegment(nil), segments...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if treeType == Maximum {
			return sorted[i].Length() > sorted[j].Length()
		}
		return sorted[i].Length() < sorted[j].Length()
	})

	ids := make(map[Point]int)
	sets := &unionFind{}
	node := func(p Point) int {
		id, ok := ids[p]
		if !ok {
			id = sets.add()
			ids[p] = id
		}
		return id
	}

	var tree []LineSegment
	for _, segment := range sorted {
		if sets.union(node(segment.P0), node(segment.P1)) {
			tree = append(tree, segment)
		}
	}
	return tree
}
