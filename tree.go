package huffman

import (
	"bytes"
	"container/heap"
	"fmt"
	"io"
	"math"

	"github.com/chronos-tachyon/assert"
)

// NodeIndex identifies a node within a Tree.
type NodeIndex int32

// NoNode is the child index of a leaf.
const NoNode = NodeIndex(-1)

// Node is a single node of a Tree.  A leaf has a valid Symbol and no
// children; an internal node has Symbol == InvalidSymbol and two children.
type Node struct {
	Symbol Symbol
	Weight uint64
	Left   NodeIndex
	Right  NodeIndex
}

// IsLeaf returns true if this node carries a Symbol.
func (n Node) IsLeaf() bool {
	return n.Left == NoNode
}

// Tree is a Huffman prefix tree.  Nodes live in a flat arena and refer to
// their children by index.  Leaves come first, in FrequencyTable order,
// followed by internal nodes in the order they were merged; the root is
// always the last node.
type Tree struct {
	nodes []Node
}

// BuildTree builds the prefix tree for the given frequencies.
//
// Nodes are kept in a min-heap ordered by weight, with ties broken by the
// order in which nodes entered the heap.  The two lightest nodes are merged
// repeatedly, the first popped becoming the left child, until a single root
// remains.  A table with one distinct symbol yields a tree of one leaf.
//
func BuildTree(ft FrequencyTable) Tree {
	numLeaves := ft.Len()
	assert.Assertf(numLeaves > 0, "BuildTree: frequency table is empty")

	nodes := make([]Node, 0, 2*numLeaves-1)
	h := weightHeap{list: make([]nodeAndWeight, 0, numLeaves)}

	for _, e := range ft.entries {
		index := NodeIndex(len(nodes))
		nodes = append(nodes, Node{Symbol: e.Symbol, Weight: e.Freq, Left: NoNode, Right: NoNode})
		h.list = append(h.list, nodeAndWeight{index, e.Freq})
	}
	h.Init()

	for h.Len() > 1 {
		a := heap.Pop(&h).(nodeAndWeight)
		b := heap.Pop(&h).(nodeAndWeight)

		// Compute weightSum using saturating addition
		weightSum := a.weight + b.weight
		if weightSum < a.weight {
			weightSum = math.MaxUint64
		}

		index := NodeIndex(len(nodes))
		nodes = append(nodes, Node{Symbol: InvalidSymbol, Weight: weightSum, Left: a.node, Right: b.node})
		heap.Push(&h, nodeAndWeight{index, weightSum})
	}

	root := heap.Pop(&h).(nodeAndWeight)
	assert.Assertf(int(root.node) == len(nodes)-1, "BuildTree: root %d is not the last node %d", root.node, len(nodes)-1)

	return Tree{nodes: nodes}
}

// Root returns the index of the root node.
func (t Tree) Root() NodeIndex {
	return NodeIndex(len(t.nodes) - 1)
}

// Node returns the node at the given index.
func (t Tree) Node(index NodeIndex) Node {
	return t.nodes[index]
}

// Len returns the total number of nodes, leaves and internal nodes alike.
func (t Tree) Len() int {
	return len(t.nodes)
}

// Dump writes a programmer-readable debugging dump of the Tree to the given
// writer, one node per line, indented by depth.
func (t Tree) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	if len(t.nodes) != 0 {
		t.dumpNode(&buf, t.Root(), 1)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

func (t Tree) dumpNode(buf *bytes.Buffer, index NodeIndex, depth int) {
	for i := 0; i < depth; i++ {
		buf.WriteByte('\t')
	}
	n := t.nodes[index]
	if n.IsLeaf() {
		fmt.Fprintf(buf, "Leaf(%s, %d)\n", n.Symbol, n.Weight)
		return
	}
	fmt.Fprintf(buf, "Internal(%d)\n", n.Weight)
	t.dumpNode(buf, n.Left, depth+1)
	t.dumpNode(buf, n.Right, depth+1)
}

// type nodeAndWeight + type weightHeap {{{

type nodeAndWeight struct {
	node   NodeIndex
	weight uint64
}

// weightHeap orders by weight, then by node index.  Node indices are handed
// out in push order, so equal weights pop first-in, first-out.
type weightHeap struct {
	list []nodeAndWeight
}

func (h *weightHeap) Init() {
	heap.Init(h)
}

func (h *weightHeap) Len() int {
	return len(h.list)
}

func (h *weightHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *weightHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.weight != b.weight {
		return a.weight < b.weight
	}
	return a.node < b.node
}

func (h *weightHeap) Push(x interface{}) {
	h.list = append(h.list, x.(nodeAndWeight))
}

func (h *weightHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*weightHeap)(nil)

// }}}
