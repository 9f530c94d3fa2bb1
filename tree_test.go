package huffman

import (
	"container/heap"
	"strings"
	"testing"
)

func TestBuildTree(t *testing.T) {
	tree := BuildTree(CountFrequencies("aaabbc"))

	expectDump := strings.Join([]string{
		"Tree{\n",
		"\tInternal(6)\n",
		"\t\tLeaf('a', 3)\n",
		"\t\tInternal(3)\n",
		"\t\t\tLeaf('c', 1)\n",
		"\t\t\tLeaf('b', 2)\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = tree.Dump(&buf)
	actualDump := buf.String()

	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}

	if tree.Len() != 5 {
		t.Errorf("expected 5 nodes, got %d", tree.Len())
	}
	if root := tree.Node(tree.Root()); root.IsLeaf() || root.Weight != 6 {
		t.Errorf("wrong root: %#v", root)
	}
}

func TestBuildTree_TieBreak(t *testing.T) {
	ft := MakeFrequencyTable(
		SymbolAndFreq{'a', 2},
		SymbolAndFreq{'b', 2},
		SymbolAndFreq{'c', 1},
		SymbolAndFreq{'d', 1},
	)

	expectDump := strings.Join([]string{
		"Tree{\n",
		"\tInternal(6)\n",
		"\t\tInternal(2)\n",
		"\t\t\tLeaf('c', 1)\n",
		"\t\t\tLeaf('d', 1)\n",
		"\t\tInternal(4)\n",
		"\t\t\tLeaf('a', 2)\n",
		"\t\t\tLeaf('b', 2)\n",
		"}\n",
	}, "")

	for i := 0; i < 50; i++ {
		var buf strings.Builder
		_, _ = BuildTree(ft).Dump(&buf)
		if actualDump := buf.String(); expectDump != actualDump {
			t.Fatalf("run %d: wrong output:\n\texpect: %s\n\tactual: %s", i, expectDump, actualDump)
		}
	}
}

func TestBuildTree_SingleSymbol(t *testing.T) {
	tree := BuildTree(CountFrequencies("aaaa"))
	if tree.Len() != 1 {
		t.Fatalf("expected 1 node, got %d", tree.Len())
	}
	root := tree.Node(tree.Root())
	if !root.IsLeaf() || root.Symbol != 'a' || root.Weight != 4 {
		t.Errorf("wrong root: %#v", root)
	}
}

func TestBuildTree_Empty(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected BuildTree to panic on an empty table")
		}
	}()
	BuildTree(FrequencyTable{})
}

func TestWeightHeap_FIFO(t *testing.T) {
	h := weightHeap{list: []nodeAndWeight{
		{node: 0, weight: 7},
		{node: 1, weight: 3},
		{node: 2, weight: 7},
		{node: 3, weight: 3},
		{node: 4, weight: 1},
	}}
	h.Init()

	expect := []NodeIndex{4, 1, 3, 0, 2}
	for i, want := range expect {
		got := heap.Pop(&h).(nodeAndWeight).node
		if got != want {
			t.Errorf("pop %d: expected node %d, got %d", i, want, got)
		}
	}
}
