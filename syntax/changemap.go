package syntax

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import "fmt"

// ChangeKind classifies what happened to a node.
type ChangeKind int

//go:generate stringer -type ChangeKind
const (
	Unchanged ChangeKind = iota // node has a structural peer on the other side
	Novel                       // node was inserted or deleted
	ReplacedComment             // comment replaced by a similar comment
)

// Change is a node's change tag. Peer is the id of the corresponding node
// on the opposite side; it is only meaningful for Unchanged and
// ReplacedComment.
type Change struct {
	Kind ChangeKind
	Peer NodeID
}

// ChangeMap records the change tag of every node of a diff run. It lives
// outside the nodes so the trees themselves stay read-only during search.
// It starts empty; by the time positions are extracted, every node
// reachable from either root must have an entry.
type ChangeMap struct {
	present []bool
	changes []Change
}

// NewChangeMap returns a change map sized for the arena.
func NewChangeMap(a *Arena) *ChangeMap {
	return &ChangeMap{
		present: make([]bool, a.Len()),
		changes: make([]Change, a.Len()),
	}
}

// Set records the change tag for a node, overwriting any earlier tag.
func (cm *ChangeMap) Set(id NodeID, c Change) {
	cm.changes[id] = c
	cm.present[id] = true
}

// Get returns a node's change tag.
func (cm *ChangeMap) Get(id NodeID) (Change, bool) {
	if int(id) >= len(cm.present) || !cm.present[id] {
		return Change{}, false
	}
	return cm.changes[id], true
}

// MustGet returns a node's change tag and panics if the node has none.
// Missing tags after the differ has run indicate a bug in the search.
func (cm *ChangeMap) MustGet(id NodeID) Change {
	c, ok := cm.Get(id)
	if !ok {
		panic(fmt.Sprintf("syntax: node %d has no change entry", id))
	}
	return c
}

// MarkUnchangedPair tags x and y — and, pairwise, all their descendants —
// as unchanged peers of each other. The two subtrees must cover equal
// content; callers establish that with ContentEqual.
func MarkUnchangedPair(a *Arena, cm *ChangeMap, x, y NodeID) {
	nx, ny := a.Node(x), a.Node(y)
	cm.Set(x, Change{Kind: Unchanged, Peer: y})
	cm.Set(y, Change{Kind: Unchanged, Peer: x})
	if nx.List != ny.List || (nx.List && len(nx.Children) != len(ny.Children)) {
		panic("syntax: unchanged pair with differing shapes")
	}
	if nx.List {
		for i := range nx.Children {
			MarkUnchangedPair(a, cm, nx.Children[i], ny.Children[i])
		}
	}
}

// MarkNovelTree tags a node and all its descendants as novel.
func MarkNovelTree(a *Arena, cm *ChangeMap, id NodeID) {
	n := a.Node(id)
	cm.Set(id, Change{Kind: Novel, Peer: NoNode})
	if n.List {
		for _, child := range n.Children {
			MarkNovelTree(a, cm, child)
		}
	}
}
