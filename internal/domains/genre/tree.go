package genre

import (
	"sort"

	"github.com/google/uuid"
)

// TreeNode is a genre with its nested children, for the tree endpoint.
type TreeNode struct {
	Genre
	Children []*TreeNode `json:"children"`
}

// Entry is a flattened tree node. DisplayPath concatenates the names from
// the root down to the node, separated by " / ".
type Entry struct {
	Genre
	DisplayPath string `json:"display_path"`
}

// childIndex groups genres by parent and orders each sibling group by name
// ascending. Roots are keyed by uuid.Nil.
func childIndex(genres []Genre) map[uuid.UUID][]Genre {
	index := make(map[uuid.UUID][]Genre)
	for _, g := range genres {
		key := uuid.Nil
		if g.ParentID != nil {
			key = *g.ParentID
		}
		index[key] = append(index[key], g)
	}
	for key := range index {
		siblings := index[key]
		sort.Slice(siblings, func(i, j int) bool { return siblings[i].Name < siblings[j].Name })
	}
	return index
}

// BuildForest assembles the nested tree from the flat genre set. The depth
// bound makes traversal terminate even on inconsistent parent data.
func BuildForest(genres []Genre) []*TreeNode {
	index := childIndex(genres)

	var build func(parentKey uuid.UUID, depth int) []*TreeNode
	build = func(parentKey uuid.UUID, depth int) []*TreeNode {
		if depth > MaxDepth {
			return nil
		}
		nodes := make([]*TreeNode, 0, len(index[parentKey]))
		for _, g := range index[parentKey] {
			nodes = append(nodes, &TreeNode{
				Genre:    g,
				Children: build(g.ID, depth+1),
			})
		}
		return nodes
	}

	return build(uuid.Nil, 1)
}

// Materialize flattens the genre forest into depth-first pre-order, siblings
// by name ascending, each entry carrying its ancestor display path.
func Materialize(genres []Genre) []Entry {
	index := childIndex(genres)
	entries := make([]Entry, 0, len(genres))

	var walk func(parentKey uuid.UUID, prefix string, depth int)
	walk = func(parentKey uuid.UUID, prefix string, depth int) {
		if depth > MaxDepth {
			return
		}
		for _, g := range index[parentKey] {
			path := g.Name
			if prefix != "" {
				path = prefix + " / " + g.Name
			}
			entries = append(entries, Entry{Genre: g, DisplayPath: path})
			walk(g.ID, path, depth+1)
		}
	}

	walk(uuid.Nil, "", 1)
	return entries
}

// IsDescendant reports whether candidate sits in the subtree rooted at
// ancestorID, by walking candidate's parent chain. The visited set bounds
// the walk on corrupt data.
func IsDescendant(genres []Genre, ancestorID, candidateID uuid.UUID) bool {
	byID := make(map[uuid.UUID]Genre, len(genres))
	for _, g := range genres {
		byID[g.ID] = g
	}

	visited := make(map[uuid.UUID]bool)
	current := candidateID
	for {
		if current == ancestorID {
			return true
		}
		g, ok := byID[current]
		if !ok || g.ParentID == nil || visited[current] {
			return false
		}
		visited[current] = true
		current = *g.ParentID
	}
}

// SubtreeLevels computes the level of every node in the subtree rooted at
// rootID, assuming the root sits at rootLevel. Used to cascade level
// recomputation on reparent.
func SubtreeLevels(genres []Genre, rootID uuid.UUID, rootLevel int) map[uuid.UUID]int {
	index := childIndex(genres)
	levels := map[uuid.UUID]int{rootID: rootLevel}

	var walk func(id uuid.UUID, level int)
	walk = func(id uuid.UUID, level int) {
		for _, child := range index[id] {
			levels[child.ID] = level + 1
			walk(child.ID, level+1)
		}
	}

	walk(rootID, rootLevel)
	return levels
}

// SubtreeDepth returns the number of levels spanned by the subtree rooted at
// rootID (1 when the node is a leaf).
func SubtreeDepth(genres []Genre, rootID uuid.UUID) int {
	index := childIndex(genres)

	var depth func(id uuid.UUID) int
	depth = func(id uuid.UUID) int {
		max := 1
		for _, child := range index[id] {
			if d := 1 + depth(child.ID); d > max {
				max = d
			}
		}
		return max
	}

	return depth(rootID)
}
