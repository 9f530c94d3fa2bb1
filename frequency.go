package huffman

import (
	"bytes"
	"fmt"
	"io"
)

// SymbolAndFreq pairs a Symbol with its number of occurrences.
type SymbolAndFreq struct {
	Symbol Symbol
	Freq   uint64
}

// FrequencyTable counts the occurrences of each Symbol in a text.  Entries
// are kept in order of first occurrence; that order decides ties when the
// prefix tree is built.
type FrequencyTable struct {
	entries []SymbolAndFreq
	index   map[Symbol]int
}

// CountFrequencies counts every character of text in a single pass.
func CountFrequencies(text string) FrequencyTable {
	var b frequencyBuilder
	for _, ch := range text {
		b.add(Symbol(ch))
	}
	return b.table()
}

// CountSymbols counts every Symbol in symbols in a single pass.
func CountSymbols(symbols []Symbol) FrequencyTable {
	var b frequencyBuilder
	for _, s := range symbols {
		b.add(s)
	}
	return b.table()
}

// MakeFrequencyTable builds a FrequencyTable from explicit entries, in the
// order given.  Repeated symbols are merged into their first entry, and
// entries with a zero count are dropped.
func MakeFrequencyTable(entries ...SymbolAndFreq) FrequencyTable {
	var b frequencyBuilder
	for _, e := range entries {
		if e.Freq != 0 {
			b.addN(e.Symbol, e.Freq)
		}
	}
	return b.table()
}

// Len returns the number of distinct symbols.
func (ft FrequencyTable) Len() int {
	return len(ft.entries)
}

// Total returns the sum of all counts.
func (ft FrequencyTable) Total() uint64 {
	var sum uint64
	for _, e := range ft.entries {
		sum += e.Freq
	}
	return sum
}

// Freq returns the number of occurrences of symbol.
func (ft FrequencyTable) Freq(symbol Symbol) uint64 {
	if i, found := ft.index[symbol]; found {
		return ft.entries[i].Freq
	}
	return 0
}

// Entries returns a copy of the entries in first-occurrence order.
func (ft FrequencyTable) Entries() []SymbolAndFreq {
	out := make([]SymbolAndFreq, len(ft.entries))
	copy(out, ft.entries)
	return out
}

// Dump writes a programmer-readable debugging dump of the FrequencyTable to
// the given writer.
func (ft FrequencyTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("FrequencyTable{\n")
	for _, e := range ft.entries {
		fmt.Fprintf(&buf, "\tFreq(%s) = %d\n", e.Symbol, e.Freq)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

type frequencyBuilder struct {
	entries []SymbolAndFreq
	index   map[Symbol]int
}

func (b *frequencyBuilder) add(symbol Symbol) {
	b.addN(symbol, 1)
}

func (b *frequencyBuilder) addN(symbol Symbol, n uint64) {
	if b.index == nil {
		b.index = make(map[Symbol]int)
	}
	if i, found := b.index[symbol]; found {
		b.entries[i].Freq += n
		return
	}
	b.index[symbol] = len(b.entries)
	b.entries = append(b.entries, SymbolAndFreq{symbol, n})
}

func (b *frequencyBuilder) table() FrequencyTable {
	return FrequencyTable{entries: b.entries, index: b.index}
}
