package huffman

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"unicode/utf8"

	"github.com/chronos-tachyon/assert"
)

// CodeTable maps each Symbol to its Code and each Code back to its Symbol.
// The two directions are always built together and never modified
// afterward, so a CodeTable may be shared freely.
type CodeTable struct {
	codes   map[Symbol]Code
	symbols map[Code]Symbol
	order   []Symbol
	minSize byte
	maxSize byte
}

// NewCodeTable assigns a Code to every leaf of the Tree.  Walking left
// appends a 0 bit and walking right appends a 1 bit.  A Tree consisting of a
// single leaf assigns the one-bit code "0", since an empty code cannot be
// written to a bitstream.
//
func NewCodeTable(t Tree) CodeTable {
	assert.Assertf(t.Len() > 0, "NewCodeTable: tree is empty")

	var ct CodeTable
	ct.init(t.Len())

	root := t.Node(t.Root())
	if root.IsLeaf() {
		ct.add(root.Symbol, MakeCode(1, 0))
		return ct
	}

	// Walk the tree with an explicit stack.  Only internal nodes are ever
	// pushed; leaves are recorded as soon as they are reached.
	//
	// stackItem.x tracks progress through each internal node:
	//   x=0 → We just arrived at stackItem for the first time
	//   x=1 → We have already processed the left child
	//   x=2 → We have already processed both children

	type stackItem struct {
		node NodeIndex
		code Code
		x    byte
	}

	stack := make([]stackItem, 0, 16)
	visit := func(index NodeIndex, hc Code) {
		assert.Assertf(hc.Size <= maxBitsPerCode, "NewCodeTable: code for node %d exceeds %d bits", index, maxBitsPerCode)
		n := t.Node(index)
		if n.IsLeaf() {
			ct.add(n.Symbol, hc)
			return
		}
		stack = append(stack, stackItem{node: index, code: hc})
	}

	visit(t.Root(), Code{})
	for len(stack) != 0 {
		top := &stack[len(stack)-1]
		x := top.x
		top.x++
		n := t.Node(top.node)
		switch x {
		case 0:
			visit(n.Left, top.code.Append(0))
		case 1:
			visit(n.Right, top.code.Append(1))
		case 2:
			stack = stack[:len(stack)-1]
		}
	}

	// Leaves were reached in tree order; report them in the order their
	// symbols were first seen, which is the order BuildTree stored them.
	ct.order = ct.order[:0]
	for i := NodeIndex(0); t.Node(i).IsLeaf(); i++ {
		ct.order = append(ct.order, t.Node(i).Symbol)
	}
	return ct
}

func (ct *CodeTable) init(capacity int) {
	*ct = CodeTable{
		codes:   make(map[Symbol]Code, capacity),
		symbols: make(map[Code]Symbol, capacity),
		order:   make([]Symbol, 0, capacity),
	}
}

func (ct *CodeTable) add(symbol Symbol, hc Code) {
	if len(ct.order) == 0 {
		ct.minSize = hc.Size
		ct.maxSize = hc.Size
	} else if ct.minSize > hc.Size {
		ct.minSize = hc.Size
	} else if ct.maxSize < hc.Size {
		ct.maxSize = hc.Size
	}
	ct.codes[symbol] = hc
	ct.symbols[hc] = symbol
	ct.order = append(ct.order, symbol)
}

// Encode returns the Code for a Symbol.  The second result is false if the
// Symbol has no Code.
func (ct CodeTable) Encode(symbol Symbol) (Code, bool) {
	hc, found := ct.codes[symbol]
	return hc, found
}

// Decode returns the Symbol for a complete Code.  The second result is false
// if hc is not exactly one of the table's codes.
func (ct CodeTable) Decode(hc Code) (Symbol, bool) {
	symbol, found := ct.symbols[hc]
	if !found {
		return InvalidSymbol, false
	}
	return symbol, true
}

// Len returns the number of symbols in the table.
func (ct CodeTable) Len() int {
	return len(ct.order)
}

// MinSize is the bit length of the shortest legal code.
func (ct CodeTable) MinSize() byte {
	return ct.minSize
}

// MaxSize is the bit length of the longest legal code.
func (ct CodeTable) MaxSize() byte {
	return ct.maxSize
}

// Symbols returns the table's symbols in first-occurrence order.
func (ct CodeTable) Symbols() []Symbol {
	out := make([]Symbol, len(ct.order))
	copy(out, ct.order)
	return out
}

// String returns a brief human-readable description of the table.
func (ct CodeTable) String() string {
	return fmt.Sprintf("(Huffman code table with %d symbols, with coded lengths of %d .. %d bits)", len(ct.order), ct.minSize, ct.maxSize)
}

// Dump writes a programmer-readable debugging dump of the CodeTable to the
// given writer.
func (ct CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", ct.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", ct.maxSize)
	for _, symbol := range ct.order {
		fmt.Fprintf(&buf, "\tEncode(%s) = %s\n", symbol, ct.codes[symbol])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

var _ fmt.Stringer = CodeTable{}

// JSON form {{{

type codeTableEntry struct {
	Symbol Symbol `json:"symbol"`
	Code   string `json:"code"`
}

// MarshalJSON writes the table as a list of {"symbol", "code"} objects in
// first-occurrence order.
func (ct CodeTable) MarshalJSON() ([]byte, error) {
	list := make([]codeTableEntry, len(ct.order))
	for i, symbol := range ct.order {
		list[i] = codeTableEntry{symbol, ct.codes[symbol].BitString()}
	}
	return json.Marshal(list)
}

// UnmarshalJSON restores a table written by MarshalJSON.  The entries must
// form a non-empty prefix code over valid characters: every code at least
// one bit long, no symbol or code repeated, and no code a prefix of another.
func (ct *CodeTable) UnmarshalJSON(raw []byte) error {
	var list []codeTableEntry
	if err := json.Unmarshal(raw, &list); err != nil {
		return err
	}
	if len(list) == 0 {
		return fmt.Errorf("%w: no entries", ErrInvalidTable)
	}

	var tmp CodeTable
	tmp.init(len(list))
	for _, entry := range list {
		if !utf8.ValidRune(rune(entry.Symbol)) {
			return fmt.Errorf("%w: symbol %d is not a valid character", ErrInvalidTable, entry.Symbol)
		}
		hc, err := ParseCode(entry.Code)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidTable, err)
		}
		if hc.Size == 0 {
			return fmt.Errorf("%w: empty code for symbol %s", ErrInvalidTable, entry.Symbol)
		}
		if _, found := tmp.codes[entry.Symbol]; found {
			return fmt.Errorf("%w: duplicate symbol %s", ErrInvalidTable, entry.Symbol)
		}
		if other, found := tmp.symbols[hc]; found {
			return fmt.Errorf("%w: code %s used by both %s and %s", ErrInvalidTable, hc, other, entry.Symbol)
		}
		tmp.add(entry.Symbol, hc)
	}

	if err := checkPrefixFree(tmp.codes); err != nil {
		return err
	}

	*ct = tmp
	return nil
}

var (
	_ json.Marshaler   = CodeTable{}
	_ json.Unmarshaler = (*CodeTable)(nil)
)

// }}}

// checkPrefixFree sorts the codes by bit string.  If any code is a prefix of
// another, it is also a prefix of its immediate successor in that order.
func checkPrefixFree(codes map[Symbol]Code) error {
	sorted := make(byBitString, 0, len(codes))
	for _, hc := range codes {
		sorted = append(sorted, hc)
	}
	sorted.Sort()
	for i := 1; i < len(sorted); i++ {
		if sorted[i].HasPrefix(sorted[i-1]) {
			return fmt.Errorf("%w: code %s is a prefix of %s", ErrInvalidTable, sorted[i-1], sorted[i])
		}
	}
	return nil
}

// type byBitString {{{

type byBitString []Code

func (list byBitString) Sort() {
	sort.Sort(list)
}

func (list byBitString) Len() int {
	return len(list)
}

func (list byBitString) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list byBitString) Less(i, j int) bool {
	return list[i].BitString() < list[j].BitString()
}

var _ sort.Interface = byBitString(nil)

// }}}
