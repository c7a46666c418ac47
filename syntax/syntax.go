package syntax

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"

	"github.com/cnf/structhash"

	"github.com/sunlin7/difft"
)

// NodeID identifies a node within its arena. IDs are handed out
// monotonically as nodes are allocated.
type NodeID uint32

// NoNode is the id of the absent node, used for missing parents and
// siblings.
const NoNode NodeID = ^NodeID(0)

// AtomKind categorizes leaf tokens.
type AtomKind int

//go:generate stringer -type AtomKind
const (
	Normal AtomKind = iota
	String
	Comment
	Keyword
)

// Node is a single syntax node: either an atom or a list. Which of the
// two it is, is indicated by List; the zero values of the other variant's
// fields are unused.
//
// A node must not be modified after InitAllInfo has processed its tree.
type Node struct {
	ID   NodeID
	List bool

	// Atom variant.
	Kind AtomKind
	Text string

	// List variant. The node's span extends from the opening delimiter to
	// the closing delimiter and strictly contains every descendant's span.
	Open      string
	Close     string
	OpenSpan  difft.Span
	CloseSpan difft.Span
	Children  []NodeID

	Span difft.Span

	// Populated by InitAllInfo.
	Parent         NodeID
	Prev           NodeID
	Next           NodeID
	NumDescendants uint32
	ContentHash    string
	StructuralHash string
}

// Arena owns all nodes of one diff run. Nodes are freed en masse when the
// arena becomes unreachable; no node outlives its arena.
type Arena struct {
	nodes []Node
}

// NewArena returns an empty arena.
func NewArena() *Arena {
	return &Arena{nodes: make([]Node, 0, 256)}
}

// Len returns the number of allocated nodes.
func (a *Arena) Len() int {
	return len(a.nodes)
}

// Node resolves an id. It panics on ids the arena never handed out —
// a malformed tree is a programming error, not an input error.
func (a *Arena) Node(id NodeID) *Node {
	if int(id) >= len(a.nodes) {
		panic(fmt.Sprintf("syntax: node id %d outside arena of size %d", id, len(a.nodes)))
	}
	return &a.nodes[id]
}

// Atom allocates a leaf node.
func (a *Arena) Atom(kind AtomKind, text string, span difft.Span) NodeID {
	id := NodeID(len(a.nodes))
	a.nodes = append(a.nodes, Node{
		ID:     id,
		Kind:   kind,
		Text:   text,
		Span:   span,
		Parent: NoNode,
		Prev:   NoNode,
		Next:   NoNode,
	})
	return id
}

// List allocates an interior node bracketed by the given delimiters.
// The children must already live in this arena.
func (a *Arena) List(open string, openSpan difft.Span, children []NodeID, close string, closeSpan difft.Span) NodeID {
	id := NodeID(len(a.nodes))
	a.nodes = append(a.nodes, Node{
		ID:        id,
		List:      true,
		Open:      open,
		Close:     close,
		OpenSpan:  openSpan,
		CloseSpan: closeSpan,
		Children:  children,
		Span:      openSpan.Extend(closeSpan),
		Parent:    NoNode,
		Prev:      NoNode,
		Next:      NoNode,
	})
	return id
}

// --- One-shot initialization -----------------------------------------------

// InitAllInfo performs the one-time initialization pass over both trees of
// a diff run: it assigns parent and sibling back-links, descendant counts
// and the content/structural hashes. It must be called exactly once, after
// lowering and before diffing.
func InitAllInfo(a *Arena, lhsRoots, rhsRoots []NodeID) {
	initInfo(a, lhsRoots)
	initInfo(a, rhsRoots)
	tracer().Debugf("initialized %d nodes", a.Len())
}

func initInfo(a *Arena, roots []NodeID) {
	linkSiblings(a, roots, NoNode)
	for _, id := range roots {
		initNode(a, id)
	}
}

func linkSiblings(a *Arena, ids []NodeID, parent NodeID) {
	for i, id := range ids {
		n := a.Node(id)
		n.Parent = parent
		if i > 0 {
			n.Prev = ids[i-1]
		} else {
			n.Prev = NoNode
		}
		if i+1 < len(ids) {
			n.Next = ids[i+1]
		} else {
			n.Next = NoNode
		}
	}
}

// initNode fills in descendant counts and hashes, bottom-up.
func initNode(a *Arena, id NodeID) {
	n := a.Node(id)
	if !n.List {
		n.NumDescendants = 0
		n.ContentHash = hashOf(struct {
			Kind AtomKind
			Text string
		}{n.Kind, n.Text})
		n.StructuralHash = hashOf(struct {
			Atom bool
			Kind AtomKind
		}{true, n.Kind})
		return
	}
	linkSiblings(a, n.Children, id)
	count := uint32(0)
	contents := make([]string, 0, len(n.Children))
	shapes := make([]string, 0, len(n.Children))
	for _, child := range n.Children {
		initNode(a, child)
		c := a.Node(child)
		count += 1 + c.NumDescendants
		contents = append(contents, c.ContentHash)
		shapes = append(shapes, c.StructuralHash)
	}
	n.NumDescendants = count
	n.ContentHash = hashOf(struct {
		Open     string
		Close    string
		Children []string
	}{n.Open, n.Close, contents})
	n.StructuralHash = hashOf(struct {
		Open     string
		Close    string
		Children []string
	}{n.Open, n.Close, shapes})
}

func hashOf(v interface{}) string {
	hash, err := structhash.Hash(v, 1)
	if err != nil { // no reason for this to happen, but API demands it
		panic(err)
	}
	return hash
}

// --- Equality ---------------------------------------------------------------

// ContentEqual reports whether two nodes cover equal content. The hashes
// select candidates; exact comparison decides, so a hash collision can
// never produce a false match.
func ContentEqual(a *Arena, x, y NodeID) bool {
	nx, ny := a.Node(x), a.Node(y)
	if nx.ContentHash != ny.ContentHash {
		return false
	}
	return deepEqual(a, nx, ny)
}

func deepEqual(a *Arena, nx, ny *Node) bool {
	if nx.List != ny.List {
		return false
	}
	if !nx.List {
		return nx.Kind == ny.Kind && nx.Text == ny.Text
	}
	if nx.Open != ny.Open || nx.Close != ny.Close || len(nx.Children) != len(ny.Children) {
		return false
	}
	for i := range nx.Children {
		if !deepEqual(a, a.Node(nx.Children[i]), a.Node(ny.Children[i])) {
			return false
		}
	}
	return true
}

func (n *Node) String() string {
	if n.List {
		return fmt.Sprintf("[#%d %s…%s %s]", n.ID, n.Open, n.Close, n.Span)
	}
	return fmt.Sprintf("[#%d %q %s]", n.ID, n.Text, n.Span)
}
